package services

import (
	"strings"

	"github.com/Gmpatem/campus-cart-v2/internal/core/domain/model/submission"
)

// SelectedText is the outcome of field selection: the authoritative order
// text and which of the two form fields it came from.
type SelectedText struct {
	Text   string
	Source submission.Source
}

// SelectOrderText decides which of the two free-text order fields is
// authoritative. It is a pure function of its three inputs.
//
// The fallback chain, in order:
//  1. Both fields empty: no order provided (ok is false).
//  2. Exactly one field populated: that field wins.
//  3. Both populated and the declared type mentions "pickup" or "delivery":
//     field2 wins; if it mentions "order": field1 wins.
//  4. Otherwise whichever raw text is strictly longer wins, ties to field2.
//
// Steps 3 and 4 are best-effort disambiguation of ambiguous submissions, not
// validation; the parser downstream decides whether the chosen text is usable.
func SelectOrderText(field1, field2, declaredType string) (SelectedText, bool) {
	hasField1 := strings.TrimSpace(field1) != ""
	hasField2 := strings.TrimSpace(field2) != ""

	switch {
	case !hasField1 && !hasField2:
		return SelectedText{}, false
	case hasField1 && !hasField2:
		return SelectedText{Text: field1, Source: submission.SourceField1}, true
	case !hasField1:
		return SelectedText{Text: field2, Source: submission.SourceField2}, true
	}

	hint := strings.ToLower(declaredType)
	if strings.Contains(hint, "pickup") || strings.Contains(hint, "delivery") {
		return SelectedText{Text: field2, Source: submission.SourceField2}, true
	}
	if strings.Contains(hint, "order") {
		return SelectedText{Text: field1, Source: submission.SourceField1}, true
	}

	// Undocumented business intent preserved as-is: the longer raw text wins,
	// ties go to field2.
	if len(field1) > len(field2) {
		return SelectedText{Text: field1, Source: submission.SourceField1}, true
	}
	return SelectedText{Text: field2, Source: submission.SourceField2}, true
}
