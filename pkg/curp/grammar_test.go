package curp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckGrammar(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		reason Reason
	}{
		{"valid", "GOMJ800101HDFNNS09", ReasonNone},
		{"all digits", "123456789012345678", ReasonNone},
		{"empty", "", ReasonLength},
		{"too short", "GOMJ800101HDFNNS0", ReasonLength},
		{"too long", "GOMJ800101HDFNNS091", ReasonLength},
		{"oversized", strings.Repeat("A", 1000), ReasonLength},
		{"inner space", "GOMJ 00101HDFNNS09", ReasonCharset},
		{"hyphen", "GOMJ-00101HDFNNS09", ReasonCharset},
		{"null byte", "GOMJ\x0000101HDFNNS09", ReasonCharset},
		{"accented letter", "MUÑJ800101HDFNNS09", ReasonCharset},
		{"invalid utf8", "GOMJ\xff00101HDFNNS09", ReasonCharset},
		{"lower case", "gomj800101hdfnns09", ReasonCase},
		{"mixed case", "GOMJ800101HDFnNS09", ReasonCase},
		{"charset before case", "gomj-00101hdfnns09", ReasonCharset},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckGrammar(tt.input)
			if tt.reason == ReasonNone {
				require.NoError(t, err)
				return
			}
			var ge *GrammarError
			require.ErrorAs(t, err, &ge)
			assert.Equal(t, tt.reason, ge.Reason)
			assert.Equal(t, StructuralMessage, err.Error())
		})
	}
}

func TestCheckGrammar_CountsCharactersNotBytes(t *testing.T) {
	// 18 runes but 19 bytes: the length check passes, the charset check fails.
	err := CheckGrammar("ÑOMJ800101HDFNNS09")
	var ge *GrammarError
	require.ErrorAs(t, err, &ge)
	assert.Equal(t, ReasonCharset, ge.Reason)
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "GOMJ800101HDFNNS09", Normalize("  gomj800101hdfnns09\n"))
	assert.Equal(t, "", Normalize(" \t "))
}
