package pattern

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads an IDA-style signature such as "48 8B 05 ?? ?? ?? ?? 48 85 C0".
// Tokens are separated by whitespace; each is two hex digits or a wildcard
// written as "?" or "??". Wildcard bytes are stored as zero.
func Parse(sig string) (Pattern, error) {
	fields := strings.Fields(sig)
	if len(fields) == 0 {
		return Pattern{}, ErrEmpty
	}

	bytes := make([]byte, len(fields))
	mask := make([]byte, len(fields))
	for i, tok := range fields {
		if tok == "?" || tok == "??" {
			mask[i] = Wild
			continue
		}
		if len(tok) != 2 {
			return Pattern{}, fmt.Errorf("%w %q at %d", ErrSignatureToken, tok, i)
		}
		v, err := strconv.ParseUint(tok, 16, 8)
		if err != nil {
			return Pattern{}, fmt.Errorf("%w %q at %d", ErrSignatureToken, tok, i)
		}
		bytes[i] = byte(v)
		mask[i] = Exact
	}
	return Pattern{bytes: bytes, mask: mask}, nil
}

// MustParse is like Parse but panics on error.
func MustParse(sig string) Pattern {
	p, err := Parse(sig)
	if err != nil {
		panic(err)
	}
	return p
}

// String formats the pattern as an IDA-style signature with "??" wildcards.
func (p Pattern) String() string {
	const hexdigits = "0123456789ABCDEF"

	var sb strings.Builder
	sb.Grow(len(p.bytes) * 3)
	for i, b := range p.bytes {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if p.mask[i] == Wild {
			sb.WriteString("??")
			continue
		}
		sb.WriteByte(hexdigits[b>>4])
		sb.WriteByte(hexdigits[b&0x0F])
	}
	return sb.String()
}
