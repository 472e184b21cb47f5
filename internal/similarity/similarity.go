// Package similarity scores how close a guess is to an expected answer.
package similarity

import (
	"strings"
	"unicode"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var lower = cases.Lower(language.Und)

// Normalize returns the canonical comparison form of s: NFC, lower-cased, trimmed.
func Normalize(s string) string {
	return strings.TrimSpace(lower.String(norm.NFC.String(s)))
}

func newDice() *metrics.SorensenDice {
	m := metrics.NewSorensenDice()
	m.NgramSize = 2
	// inputs are already lower-cased by Normalize
	m.CaseSensitive = true
	return m
}

// Score returns the Sørensen–Dice coefficient of the character bigrams of a and b,
// in [0, 1]. Inputs are normalized and all whitespace is ignored, so
// "to get to the other side" and "To get to the other side!" score close to 1.
func Score(a, b string) float64 {
	first := stripSpace(Normalize(a))
	second := stripSpace(Normalize(b))

	if first == second {
		return 1
	}
	if utf8Len(first) < 2 || utf8Len(second) < 2 {
		return 0
	}
	return strutil.Similarity(first, second, newDice())
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func utf8Len(s string) int {
	return len([]rune(s))
}
