package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/resolvetax/transcript-service/client"
	"github.com/resolvetax/transcript-service/config"
	"github.com/resolvetax/transcript-service/service"
	"github.com/resolvetax/transcript-service/utils/atparse"
	"github.com/resolvetax/transcript-service/utils/tiparse"
	"github.com/resolvetax/transcript-service/utils/tps"
	"github.com/resolvetax/transcript-service/utils/wiparse"
)

// NewParseCmd creates the parse command.
func NewParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse one transcript file and print the result as JSON",
		Long: `Parse reads a local transcript file and prints the parsed output.

The document kind defaults to wage-and-income; use --kind for account
transcripts (at) and tax investigation sheets (ti). Files ending in .txt
are read as already-extracted text, anything else goes through PDF text
extraction with OCR fallback.

Examples:
  # Parse a wage and income transcript
  transcriptctl parse "WI 23 TP.pdf"

  # Parse an account transcript
  transcriptctl parse --kind at "AT 22 E.pdf"

  # Parse already-extracted text
  transcriptctl parse --kind ti investigation.txt`,
		Args: cobra.ExactArgs(1),
		RunE: runParseCmd,
	}

	cmd.Flags().StringP("kind", "k", "wi", "Document kind: wi, at or ti")
	cmd.Flags().BoolP("records", "r", false, "Print aggregated form records instead of the scoped parse (wi only)")

	return cmd
}

func runParseCmd(cmd *cobra.Command, args []string) error {
	kind, _ := cmd.Flags().GetString("kind")
	records, _ := cmd.Flags().GetBool("records")

	path := args[0]
	text, err := extractLocalText(path)
	if err != nil {
		return err
	}
	filename := filepath.Base(path)

	var out any
	switch kind {
	case "wi":
		result := wiparse.Parse(text, filename)
		if records {
			recs := result.Records()
			owner := tps.ResolveOwner(filename)
			for i := range recs {
				recs[i].Owner = owner
			}
			out = recs
		} else {
			out = result.Scoped()
		}
	case "at":
		rec := atparse.Parse(text, filename)
		rec.Owner = tps.ResolveOwner(filename)
		out = rec
	case "ti":
		out = tiparse.Parse(text, filename)
	default:
		return fmt.Errorf("unknown document kind %q (want wi, at or ti)", kind)
	}

	return printJSON(out)
}

// extractLocalText reads a local file as transcript text. Plain .txt files
// pass through unchanged; everything else is treated as a PDF.
func extractLocalText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	if strings.HasSuffix(strings.ToLower(path), ".txt") {
		return string(data), nil
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return "", err
	}
	extractor := service.NewTextExtractor(
		service.NewPDFProcessor(),
		client.NewTesseractClient(cfg.TesseractDataPath),
	)
	return extractor.Extract(data, filepath.Base(path))
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
