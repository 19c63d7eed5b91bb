package curp

// Field indexes into a FieldSet.
const (
	FieldPaternalSurname = iota
	FieldMaternalInitial
	FieldGivenNameInitial
	FieldBirthYear
	FieldBirthMonth
	FieldBirthDay
	FieldSex
	FieldEntity
	FieldPaternalConsonant
	FieldMaternalConsonant
	FieldGivenNameConsonant
	FieldHomoclave

	FieldCount
)

// Sex labels. Any marker other than 'H' reads as female; the format has no
// third value and this decoder does not invent one.
const (
	SexMale   = "Male"
	SexFemale = "Female"
)

type span struct {
	start, end int
	name       string
}

// layout holds the fixed offsets of the format, indexed by the Field* constants.
var layout = [FieldCount]span{
	{0, 2, "paternal surname"},
	{2, 3, "maternal surname initial"},
	{3, 4, "given name initial"},
	{4, 6, "birth year"},
	{6, 8, "birth month"},
	{8, 10, "birth day"},
	{10, 11, "sex"},
	{11, 13, "birth entity"},
	{13, 14, "paternal surname internal consonant"},
	{14, 15, "maternal surname internal consonant"},
	{15, 16, "given name internal consonant"},
	{16, 18, "homoclave (RENAPO, unverified)"},
}

// Field is one named slice of a CURP.
type Field struct {
	Name  string
	Value string
	Label string
}

// FieldSet is the ordered decode of a grammar-valid CURP.
type FieldSet [FieldCount]Field

// Decode slices s into its twelve fields. s must already pass CheckGrammar;
// Decode repeats that check so it never slices a short string.
func Decode(s string) (FieldSet, error) {
	var fs FieldSet
	if err := CheckGrammar(s); err != nil {
		return fs, err
	}
	for i, sp := range layout {
		fs[i] = Field{Name: sp.name, Value: s[sp.start:sp.end], Label: sp.name}
	}
	fs[FieldSex].Label = "sex: " + SexLabel(fs[FieldSex].Value)
	fs[FieldEntity].Label = "birth entity: " + EntityName(fs[FieldEntity].Value)
	return fs, nil
}

// SexLabel maps the sex marker to its label.
func SexLabel(marker string) string {
	if marker == "H" {
		return SexMale
	}
	return SexFemale
}
