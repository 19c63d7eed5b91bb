package curp

import (
	"fmt"
	"strconv"
)

// YearPivot splits two-digit years: below it they are read as 20YY,
// from it upwards as 19YY.
const YearPivot = 50

// ValidMessage is reported when a CURP passes every check.
const ValidMessage = "CURP is valid and correctly formatted."

// Status classifies a Verdict.
type Status string

const (
	StatusValid      Status = "valid"
	StatusStructural Status = "structural_error"
	StatusSemantic   Status = "semantic_error"
)

// Verdict is the outcome of validating a CURP.
type Verdict struct {
	Status  Status
	Reason  Reason
	Message string
}

// Valid reports whether the verdict accepts the CURP.
func (v Verdict) Valid() bool {
	return v.Status == StatusValid
}

func validVerdict() Verdict {
	return Verdict{Status: StatusValid, Message: ValidMessage}
}

func structuralVerdict(reason Reason) Verdict {
	return Verdict{Status: StatusStructural, Reason: reason, Message: StructuralMessage}
}

func semanticVerdict(reason Reason, format string, args ...any) Verdict {
	return Verdict{Status: StatusSemantic, Reason: reason, Message: fmt.Sprintf(format, args...)}
}

// ResolveYear expands a two-digit year around YearPivot.
func ResolveYear(yy int) int {
	if yy < YearPivot {
		return 2000 + yy
	}
	return 1900 + yy
}

// IsLeapYear applies the Gregorian rule.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// ValidateDate checks the two-digit year, month and day fields of a CURP.
// Fields that are not made of digits cannot name a date and are rejected
// rather than parsed.
func ValidateDate(yy, mm, dd string) Verdict {
	year, okY := parseDigits(yy)
	month, okM := parseDigits(mm)
	day, okD := parseDigits(dd)
	if !okY || !okM || !okD {
		return semanticVerdict(ReasonNonNumericDate, "invalid CURP: birth date must be numeric (YYMMDD).")
	}
	return CheckCalendar(ResolveYear(year), month, day)
}

// CheckCalendar validates month and day for a four-digit year. Days are only
// bounded from above; a zero day is accepted.
func CheckCalendar(year, month, day int) Verdict {
	if month < 1 || month > 12 {
		return semanticVerdict(ReasonMonthRange, "invalid CURP: birth month must be between 01 and 12.")
	}
	switch month {
	case 2:
		if IsLeapYear(year) {
			if day > 29 {
				return semanticVerdict(ReasonFebruaryLimit, "invalid CURP: February has at most 29 days in a leap year.")
			}
		} else if day > 28 {
			return semanticVerdict(ReasonFebruaryLimit, "invalid CURP: February has at most 28 days in a non-leap year.")
		}
	case 4, 6, 9, 11:
		if day > 30 {
			return semanticVerdict(ReasonDayRange, "invalid CURP: month %02d has at most 30 days.", month)
		}
	default:
		if day > 31 {
			return semanticVerdict(ReasonDayRange, "invalid CURP: month %02d has at most 31 days.", month)
		}
	}
	return validVerdict()
}

// parseDigits accepts only ASCII digits; strconv.Atoi alone would let a
// sign through.
func parseDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
