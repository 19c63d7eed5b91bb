package curp

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	fs, err := Decode("GOMJ800101HDFNNS09")
	require.NoError(t, err)

	want := FieldSet{
		{Name: "paternal surname", Value: "GO", Label: "paternal surname"},
		{Name: "maternal surname initial", Value: "M", Label: "maternal surname initial"},
		{Name: "given name initial", Value: "J", Label: "given name initial"},
		{Name: "birth year", Value: "80", Label: "birth year"},
		{Name: "birth month", Value: "01", Label: "birth month"},
		{Name: "birth day", Value: "01", Label: "birth day"},
		{Name: "sex", Value: "H", Label: "sex: Male"},
		{Name: "birth entity", Value: "DF", Label: "birth entity: DISTRITO FEDERAL"},
		{Name: "paternal surname internal consonant", Value: "N", Label: "paternal surname internal consonant"},
		{Name: "maternal surname internal consonant", Value: "N", Label: "maternal surname internal consonant"},
		{Name: "given name internal consonant", Value: "S", Label: "given name internal consonant"},
		{Name: "homoclave (RENAPO, unverified)", Value: "09", Label: "homoclave (RENAPO, unverified)"},
	}
	if diff := cmp.Diff(want, fs); diff != "" {
		t.Fatalf("Decode mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_FieldsCoverInput(t *testing.T) {
	for _, in := range []string{"GOMJ800101HDFNNS09", "ABCDEFGHIJKLMNOPQR", "000000000000000000"} {
		fs, err := Decode(in)
		require.NoError(t, err, in)

		var b strings.Builder
		for _, f := range fs {
			b.WriteString(f.Value)
		}
		assert.Equal(t, in, b.String())
	}
}

func TestDecode_SexMarker(t *testing.T) {
	fs, err := Decode("GOMJ800101MDFNNS09")
	require.NoError(t, err)
	assert.Equal(t, "sex: Female", fs[FieldSex].Label)

	// Any marker other than H reads as female.
	fs, err = Decode("GOMJ800101XDFNNS09")
	require.NoError(t, err)
	assert.Equal(t, "sex: Female", fs[FieldSex].Label)
}

func TestDecode_UnknownEntityDoesNotFail(t *testing.T) {
	fs, err := Decode("GOMJ800101HQQNNS09")
	require.NoError(t, err)
	assert.Equal(t, "QQ", fs[FieldEntity].Value)
	assert.Equal(t, "birth entity: unknown entity", fs[FieldEntity].Label)
}

func TestDecode_RejectsBadGrammar(t *testing.T) {
	_, err := Decode("SHORT")
	var ge *GrammarError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, ReasonLength, ge.Reason)
}
