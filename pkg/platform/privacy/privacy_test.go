package privacy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskCURP(t *testing.T) {
	assert.Equal(t, "GOMJ**************", MaskCURP("GOMJ800101HDFNNS09"))
	assert.Equal(t, "***", MaskCURP("abc"))
	assert.Equal(t, "", MaskCURP(""))
	assert.Equal(t, "MUÑO*", MaskCURP("MUÑOZ"))
}

func TestAnonymizeIP(t *testing.T) {
	assert.Equal(t, "203.0.113.0", AnonymizeIP("203.0.113.77"))
	assert.Equal(t, "2001:db8:abcd::", AnonymizeIP("2001:db8:abcd:12::1"))
	assert.Equal(t, "invalid", AnonymizeIP("not-an-ip"))
}
