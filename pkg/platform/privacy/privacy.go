// Package privacy redacts personal identifiers before they reach logs.
package privacy

import (
	"net"
	"strings"
	"unicode/utf8"
)

// MaskCURP keeps the four name-derived characters of a CURP and masks the
// rest, which encodes birth date, sex and birth entity.
func MaskCURP(s string) string {
	n := utf8.RuneCountInString(s)
	if n <= 4 {
		return strings.Repeat("*", n)
	}
	var b strings.Builder
	i := 0
	for _, r := range s {
		if i < 4 {
			b.WriteRune(r)
		} else {
			b.WriteByte('*')
		}
		i++
	}
	return b.String()
}

// AnonymizeIP truncates an address to its network prefix: /24 for IPv4,
// /48 for IPv6. Unparseable input is returned as "invalid".
func AnonymizeIP(ip string) string {
	parsed := net.ParseIP(strings.TrimSpace(ip))
	if parsed == nil {
		return "invalid"
	}
	if v4 := parsed.To4(); v4 != nil {
		return v4.Mask(net.CIDRMask(24, 32)).String()
	}
	return parsed.Mask(net.CIDRMask(48, 128)).String()
}
