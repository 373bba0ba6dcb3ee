package atparse

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/resolvetax/transcript-service/dto"
)

var (
	periodEndingRe = regexp.MustCompile(`Report for Tax Period Ending:\s*\d{2}-\d{2}-(\d{4})`)
	taxPeriodRe    = regexp.MustCompile(`(?i)TAX PERIOD:\s*[A-Za-z]+\.?\s*\d{1,2},?\s*(\d{4})`)
	anyYearRe      = regexp.MustCompile(`\b(20\d{2})\b`)

	filingStatusRe   = regexp.MustCompile(`(?i)FILING STATUS[:\s]*([^,\n]+)`)
	processingDateRe = regexp.MustCompile(`(?i)PROCESSING DATE[:\s]*([A-Za-z]+\.?\s+\d{1,2},?\s*\d{4})`)

	noReturnFiledRe = regexp.MustCompile(`(?i)no tax return filed|return not filed|unfiled return`)

	// Transaction rows come in two layouts. Compact puts everything on one
	// line (code, description, 8-digit cycle, posting date, amount); spaced
	// breaks the same columns over following lines.
	compactTxnRe = regexp.MustCompile(`(?m)^(\d{3}|n/a)([^\d\n]+?)(\d{8})\s+(\d{2}-\d{2}-\d{4})\s+(-?\$?[\d,]+\.\d{2})`)
	spacedTxnRe  = regexp.MustCompile(`(?m)^(\d{3}|n/a)\s*([^\n]+)\n(?:[\w ]*\n)?(\d{2}-\d{2}-\d{4})\s*\n\$?(-?[\d,]+\.\d{2})`)
)

// amountFields maps record fields to the transcript labels they come from.
// Missing labels leave the field at zero.
var amountPatterns = map[string]*regexp.Regexp{
	"account_balance":       regexp.MustCompile(`(?i)ACCOUNT BALANCE[:\s]*\$?(-?[\d,.]+)`),
	"accrued_interest":      regexp.MustCompile(`(?i)ACCRUED INTEREST[:\s]*\$?(-?[\d,.]+)`),
	"accrued_penalty":       regexp.MustCompile(`(?i)ACCRUED PENALTY[:\s]*\$?(-?[\d,.]+)`),
	"adjusted_gross_income": regexp.MustCompile(`(?i)ADJUSTED GROSS INCOME[:\s]*\$?(-?[\d,.]+)`),
	"taxable_income":        regexp.MustCompile(`(?i)TAXABLE INCOME[:\s]*\$?(-?[\d,.]+)`),
	"tax_per_return":        regexp.MustCompile(`(?i)TAX PER RETURN[:\s]*\$?(-?[\d,.]+)`),
}

// Parse extracts one account transcript's data. Owner attribution is the
// caller's job; everything else comes from the text. Text with none of the
// expected markers yields a record with zero values, not an error.
func Parse(text, filename string) dto.ATRecord {
	rec := dto.ATRecord{
		TaxYear:    taxYear(text),
		SourceFile: filename,
	}

	amounts := make(map[string]float64, len(amountPatterns))
	for key, re := range amountPatterns {
		if m := re.FindStringSubmatch(text); m != nil {
			if v, err := parseAmount(m[1]); err == nil {
				amounts[key] = v
			}
		}
	}
	rec.AccountBalance = amounts["account_balance"]
	rec.AccruedInterest = amounts["accrued_interest"]
	rec.AccruedPenalty = amounts["accrued_penalty"]
	rec.AdjustedGrossIncome = amounts["adjusted_gross_income"]
	rec.TaxableIncome = amounts["taxable_income"]
	rec.TaxPerReturn = amounts["tax_per_return"]
	rec.TotalBalance = rec.AccountBalance + rec.AccruedInterest + rec.AccruedPenalty

	if m := filingStatusRe.FindStringSubmatch(text); m != nil {
		rec.FilingStatus = strings.TrimSpace(m[1])
	}
	if m := processingDateRe.FindStringSubmatch(text); m != nil {
		rec.ProcessingDate = strings.TrimSpace(m[1])
	}

	rec.Transactions = extractTransactions(text)
	rec.ReturnFiled = returnFiled(text, rec.Transactions)
	return rec
}

// taxYear resolves the transcript's tax period, trying the explicit period
// labels before falling back to the first plausible year in the text.
func taxYear(text string) string {
	if m := periodEndingRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	if m := taxPeriodRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	if m := anyYearRe.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return "Unknown"
}

// extractTransactions reads the transaction ledger below the TRANSACTIONS
// heading. The compact single-line layout is tried first; only when it
// yields nothing is the spaced multi-line layout attempted, together with
// the standalone "no tax return filed" marker row.
func extractTransactions(text string) []dto.ATTransaction {
	idx := strings.Index(strings.ToUpper(text), "TRANSACTIONS")
	if idx < 0 {
		return nil
	}
	buf := text[idx:]

	var txns []dto.ATTransaction
	for _, m := range compactTxnRe.FindAllStringSubmatch(buf, -1) {
		txns = append(txns, buildTransaction(m[1], m[2], m[3], m[4], m[5]))
	}
	if txns != nil {
		return txns
	}

	for _, line := range strings.Split(buf, "\n") {
		if noReturnFiledRe.MatchString(line) {
			txns = append(txns, dto.ATTransaction{
				Code:    "n/a",
				Meaning: "No tax return filed",
			})
			break
		}
	}
	for _, m := range spacedTxnRe.FindAllStringSubmatch(buf, -1) {
		txns = append(txns, buildTransaction(m[1], m[2], "", m[3], m[4]))
	}
	return txns
}

func buildTransaction(code, desc, cycle, postDate, amount string) dto.ATTransaction {
	txn := dto.ATTransaction{
		Code:        strings.TrimSpace(code),
		Description: strings.TrimSpace(desc),
		Date:        normalizeDate(postDate),
	}
	if info, ok := LookupCode(txn.Code); ok {
		txn.Meaning = info.Meaning
	} else {
		txn.Meaning = txn.Description
	}
	if len(cycle) == 8 {
		txn.CycleDate = cycle[:4] + "-" + cycle[4:6] + "-" + cycle[6:]
	}
	if v, err := parseAmount(amount); err == nil {
		txn.Amount = v
	}
	return txn
}

// normalizeDate converts the transcript's MM-DD-YYYY posting dates to ISO
// form, passing through anything it cannot parse.
func normalizeDate(s string) string {
	t, err := time.Parse("01-02-2006", s)
	if err != nil {
		return s
	}
	return t.Format("2006-01-02")
}

// returnFiled decides whether the year's return is on file: an explicit
// "no tax return filed" marker wins, otherwise a posted 150 or 599 means
// filed.
func returnFiled(text string, txns []dto.ATTransaction) bool {
	if noReturnFiledRe.MatchString(text) {
		return false
	}
	for _, txn := range txns {
		if txn.Code == "150" || txn.Code == "599" {
			return true
		}
	}
	return false
}

func parseAmount(raw string) (float64, error) {
	cleaned := strings.NewReplacer("$", "", ",", "", " ", "").Replace(raw)
	return strconv.ParseFloat(cleaned, 64)
}
