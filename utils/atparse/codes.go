// Package atparse extracts account transcript data: balances, filing
// status, and the posted transaction ledger with IRS transaction code
// interpretations.
package atparse

// CodeInfo explains one IRS account transaction code.
type CodeInfo struct {
	Code       string
	Meaning    string
	DateNote   string
	AmountNote string
}

// transactionCodes covers the codes a resolution practice actually acts on.
// Unknown codes still parse; they just carry the transcript's own
// description instead of an interpretation.
var transactionCodes = map[string]CodeInfo{
	"150": {"150", "Return filed / tax assessed OR indicator that a return is still missing", "Return-filed date (or IRS input date if scanned)", "Total tax liability assessed"},
	"196": {"196", "Interest charged for late payment", "Interest assessment date", "Interest amount"},
	"290": {"290", "Additional tax assessed", "Assessment date", "Extra tax added"},
	"291": {"291", "Tax abatement (reversal of tax)", "Abatement date", "Tax removed (negative amount)"},
	"300": {"300", "Additional penalty/interest assessed", "Assessment date", "Penalty or interest added"},
	"301": {"301", "Penalty/interest abated", "Abatement date", "Penalty or interest removed (negative)"},
	"306": {"306", "Credit transferred from another tax module", "Transfer posting date", "Credit amount (negative = out, positive = in)"},
	"320": {"320", "Amended return filed (Form 1040-X)", "Amended-return received date", ""},
	"336": {"336", "Interest charged for late payment", "Interest assessment date", "Interest amount"},
	"420": {"420", "Examination (audit) opened", "Audit-opening date", ""},
	"424": {"424", "Examination in process / post-audit", "Audit-status date", ""},
	"430": {"430", "Examination case closed, no change", "Closure date", ""},
	"460": {"460", "Extension of time to file (Form 4868/7004)", "Extension-request date", ""},
	"480": {"480", "Offer-in-Compromise (OIC) pending", "OIC-pending date", ""},
	"482": {"482", "Offer-in-Compromise accepted", "Acceptance date", "Accepted offer amount"},
	"520": {"520", "Litigation / CI / collection freeze (varies by closing code)", "Freeze-start date", ""},
	"530": {"530", "Account classified Currently Not Collectible (CNC)", "CNC-start date", ""},
	"570": {"570", "Additional liability pending / refund freeze", "Freeze-start date", "Amount in dispute (often blank)"},
	"571": {"571", "Additional liability reversed (freeze released)", "Release date", ""},
	"599": {"599", "Return filed by IRS (substitute or scanned copy)", "IRS-input date", ""},
	"610": {"610", "Payment with return", "Payment posting date", "Payment amount (negative = credit)"},
	"670": {"670", "Subsequent payment", "Payment posting date", "Payment amount (negative = credit)"},
	"680": {"680", "Payment applied to civil penalty", "Payment posting date", "Payment amount (negative = credit)"},
	"706": {"706", "Bad-check penalty assessed", "Assessment date", "Penalty amount"},
	"720": {"720", "Credit transferred out to another module", "Transfer date", "Credit transferred (positive = out)"},
	"766": {"766", "Credit to your account (e.g., refundable credit or offset)", "Credit posting date", "Credit amount (negative = credit)"},
	"768": {"768", "Earned Income Credit allowed", "Credit posting date", "EIC amount (negative = credit)"},
	"780": {"780", "Account included in bankruptcy", "Bankruptcy-filed date", ""},
	"806": {"806", "Credit for federal tax withheld", "Return-filed date", "Withholding amount (negative = credit)"},
	"810": {"810", "Refund freeze / manual refund hold", "Freeze-start date", ""},
	"811": {"811", "Refund freeze released", "Release date", ""},
	"846": {"846", "Refund issued", "Refund issue date", "Refund amount (negative = refund sent)"},
	"898": {"898", "TOP (Treasury Offset Program) refund offset", "Offset date", "Offset amount (positive = taken from refund)"},
	"960": {"960", "Appointed representative", "Representation date", ""},
}

// LookupCode returns the interpretation of a transaction code, when known.
func LookupCode(code string) (CodeInfo, bool) {
	info, ok := transactionCodes[code]
	return info, ok
}
