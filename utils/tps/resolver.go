// Package tps attributes transcript documents and their forms to the
// taxpayer or the spouse, based on back-office filename conventions, and
// rolls form totals up into per-owner buckets.
package tps

import (
	"regexp"
	"strings"

	"github.com/resolvetax/transcript-service/dto"
)

var (
	spouseWordRe   = regexp.MustCompile(`(?i)\bS\b|\bSPOUSE\b`)
	spouseATRe     = regexp.MustCompile(`(?i)\bAT\s+\d{2}\s+E\b`)
	taxpayerWordRe = regexp.MustCompile(`(?i)\bTP\b`)
	jointWordRe    = regexp.MustCompile(`(?i)\bCOMBINED\b|\bJOINT\b`)
)

// ResolveOwner maps a transcript filename to the party it belongs to.
// "WI 19 TP" names the taxpayer, "WI S 19" the spouse, and the office's
// older "AT 23 E" convention also marks spouse documents. Joint markers
// yield the empty owner; anything unmarked defaults to the taxpayer.
// Markers are tried in priority order: spouse, then taxpayer, then joint,
// so a filename carrying several markers resolves to the most specific one.
func ResolveOwner(filename string) dto.Owner {
	name := strings.TrimSuffix(filename, ".pdf")
	name = strings.TrimSuffix(name, ".PDF")

	switch {
	case spouseWordRe.MatchString(name), spouseATRe.MatchString(name):
		return dto.OwnerSpouse
	case taxpayerWordRe.MatchString(name):
		return dto.OwnerTaxpayer
	case jointWordRe.MatchString(name):
		return dto.OwnerJoint
	default:
		return dto.OwnerTaxpayer
	}
}
