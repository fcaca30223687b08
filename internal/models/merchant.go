package models

import (
	"regexp"
	"strings"
)

const maxMerchantLength = 60

var (
	whitespaceRun  = regexp.MustCompile(`\s+`)
	storeNumberTail = regexp.MustCompile(`\s+#\d+.*$`)
	longDigitTail   = regexp.MustCompile(`\s+\d{4,}.*$`)
)

// NormalizeMerchant turns a raw bank description into a display
// merchant label: collapsed whitespace, trailing store numbers and
// long digit runs stripped, length capped.
func NormalizeMerchant(description string) string {
	s := strings.TrimSpace(description)
	if s == "" {
		return "Unknown"
	}

	s = whitespaceRun.ReplaceAllString(s, " ")
	s = storeNumberTail.ReplaceAllString(s, "")
	s = longDigitTail.ReplaceAllString(s, "")
	if len(s) > maxMerchantLength {
		s = s[:maxMerchantLength]
	}

	return s
}
