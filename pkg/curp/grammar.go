package curp

import (
	"strings"
	"unicode/utf8"
)

// Length is the fixed size of a CURP.
const Length = 18

// StructuralMessage is reported for every grammar failure, whatever the reason.
const StructuralMessage = "invalid CURP: must contain exactly 18 uppercase alphanumeric characters."

// Reason identifies why a CURP was rejected. The empty reason means valid.
type Reason string

const (
	ReasonNone Reason = ""

	// Structural reasons, checked in this order.
	ReasonLength  Reason = "length"
	ReasonCharset Reason = "charset"
	ReasonCase    Reason = "case"

	// Calendar reasons.
	ReasonNonNumericDate Reason = "non_numeric_date"
	ReasonMonthRange     Reason = "month_range"
	ReasonFebruaryLimit  Reason = "february_limit"
	ReasonDayRange       Reason = "day_range"
)

// GrammarError reports the first structural condition a candidate failed.
type GrammarError struct {
	Reason Reason
}

func (e *GrammarError) Error() string {
	return StructuralMessage
}

// Normalize trims surrounding whitespace and upper-cases raw.
func Normalize(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// CheckGrammar confirms s is exactly 18 ASCII letters or digits with every
// letter upper-case. Positional character classes are not checked here: the
// decoder's offset table and the calendar validator cover the fields that
// need them.
func CheckGrammar(s string) error {
	if utf8.RuneCountInString(s) != Length {
		return &GrammarError{Reason: ReasonLength}
	}
	for _, r := range s {
		if r >= utf8.RuneSelf || !isASCIIAlnum(byte(r)) {
			return &GrammarError{Reason: ReasonCharset}
		}
	}
	// Every rune is ASCII from here on, so bytes and characters coincide.
	for i := 0; i < len(s); i++ {
		if s[i] >= 'a' && s[i] <= 'z' {
			return &GrammarError{Reason: ReasonCase}
		}
	}
	return nil
}

func isASCIIAlnum(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || (b >= '0' && b <= '9')
}
