// Package hex implements hexadecimal encoding with 0x prefix, the way
// JSON APIs expect binary fields to be rendered.
package hex

import (
	"encoding/hex"
	"fmt"
)

// Bytes marshals/unmarshals as hex string with 0x prefix.
// The empty slice marshals as "0x".
type Bytes []byte

func Encode(src []byte) []byte {
	dst := make([]byte, len(src)*2+2)
	copy(dst, "0x")
	hex.Encode(dst[2:], src)
	return dst
}

func Decode(src []byte) ([]byte, error) {
	if len(src) >= 2 && src[0] == '0' && (src[1] == 'x' || src[1] == 'X') {
		src = src[2:]
	}
	if len(src)%2 != 0 {
		return nil, fmt.Errorf("hex string of odd length %d", len(src))
	}
	dst := make([]byte, len(src)/2)
	if _, err := hex.Decode(dst, src); err != nil {
		return nil, err
	}
	return dst, nil
}

func (b Bytes) MarshalText() ([]byte, error) {
	return Encode(b), nil
}

func (b *Bytes) UnmarshalText(src []byte) error {
	res, err := Decode(src)
	if err == nil {
		*b = res
	}
	return err
}
