// Package curp validates and decodes the Clave Única de Registro de
// Población, the 18-character Mexican population registry code.
//
// Validation is purely syntactic and calendrical: the grammar checker
// enforces length and character classes, the decoder slices the fixed
// fields and resolves the birth entity, and the calendar validator checks
// the encoded birth date. The homoclave is extracted but never verified, and
// nothing is looked up against RENAPO.
//
//	res := curp.Analyze(curp.Normalize(" gomj800101hdfnns09 "))
//	res.Verdict.Valid()   // true
//	res.EntityName        // "DISTRITO FEDERAL"
//
// Every function is pure and safe for concurrent use.
package curp

import (
	"errors"
	"unicode"

	dErrors "curpcheck/pkg/domain-errors"
)

// Sentinel causes wrapped by Validate.
var (
	ErrStructural = errors.New("curp: structural error")
	ErrCalendar   = errors.New("curp: invalid birth date")
)

// Result is everything Analyze learns about one input.
type Result struct {
	// Input is the candidate exactly as checked.
	Input   string
	Fields  []Field
	Verdict Verdict

	// Digits and Letters count characters of Input regardless of validity.
	Digits  int
	Letters int

	// Set only when Fields is populated. BirthYear is zero when the year
	// field is not numeric.
	BirthYear  int
	Sex        string
	EntityName string
}

// Values returns the field substrings, empty on a structural failure.
func (r Result) Values() []string {
	out := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		out[i] = f.Value
	}
	return out
}

// Labels returns the field labels, empty on a structural failure.
func (r Result) Labels() []string {
	out := make([]string, len(r.Fields))
	for i, f := range r.Fields {
		out[i] = f.Label
	}
	return out
}

// Analyze checks the grammar of s, decodes its fields and validates the
// birth date. It is total: every string yields a Result. s is checked as
// given; callers accepting user input run it through Normalize first, so a
// lower-case candidate reaching Analyze is a structural error.
func Analyze(s string) Result {
	res := Result{Input: s, Fields: []Field{}}
	res.Digits, res.Letters = countClasses(s)

	fs, err := Decode(s)
	if err != nil {
		var ge *GrammarError
		reason := ReasonLength
		if errors.As(err, &ge) {
			reason = ge.Reason
		}
		res.Verdict = structuralVerdict(reason)
		return res
	}

	res.Fields = fs[:]
	res.Sex = SexLabel(fs[FieldSex].Value)
	res.EntityName = EntityName(fs[FieldEntity].Value)
	if yy, ok := parseDigits(fs[FieldBirthYear].Value); ok {
		res.BirthYear = ResolveYear(yy)
	}
	res.Verdict = ValidateDate(fs[FieldBirthYear].Value, fs[FieldBirthMonth].Value, fs[FieldBirthDay].Value)
	return res
}

// Validate returns nil for a valid CURP and a validation error carrying the
// verdict message otherwise. Like Analyze it does not normalize s.
func Validate(s string) error {
	v := Analyze(s).Verdict
	switch v.Status {
	case StatusValid:
		return nil
	case StatusStructural:
		return dErrors.Wrap(ErrStructural, dErrors.CodeValidation, v.Message)
	default:
		return dErrors.Wrap(ErrCalendar, dErrors.CodeValidation, v.Message)
	}
}

func countClasses(s string) (digits, letters int) {
	for _, r := range s {
		switch {
		case unicode.IsDigit(r):
			digits++
		case unicode.IsLetter(r):
			letters++
		}
	}
	return digits, letters
}
