package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/resolvetax/transcript-service/dto"
	"github.com/resolvetax/transcript-service/utils/tps"
	"github.com/resolvetax/transcript-service/utils/wiparse"
)

// NewReconcileCmd creates the reconcile command.
func NewReconcileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reconcile <file>...",
		Short: "Parse WI transcripts and cross-check the year totals",
		Long: `Reconcile parses one or more wage-and-income transcripts, rolls them up
into year summaries, then re-derives every year's bucket totals straight
from the extracted fields and compares the two paths. Use it when a case's
numbers look off: the per-form troubleshoot rows show exactly which form
contributed what to which bucket.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runReconcileCmd,
	}
	return cmd
}

func runReconcileCmd(cmd *cobra.Command, args []string) error {
	var records []dto.FormRecord
	for _, path := range args {
		text, err := extractLocalText(path)
		if err != nil {
			return err
		}
		filename := filepath.Base(path)
		recs := wiparse.Parse(text, filename).Records()
		owner := tps.ResolveOwner(filename)
		for i := range recs {
			recs[i].Owner = owner
		}
		records = append(records, recs...)
	}

	years := wiparse.GroupByYear(records)
	out := make(map[string]dto.YearReconciliation, len(years))
	allMatch := true
	for year, ys := range years {
		rec := wiparse.Reconcile(ys)
		out[year] = rec
		if !rec.Match {
			allMatch = false
		}
	}

	if err := printJSON(out); err != nil {
		return err
	}
	if !allMatch {
		return fmt.Errorf("one or more years did not reconcile")
	}
	return nil
}
