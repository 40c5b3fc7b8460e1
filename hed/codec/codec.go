// Package codec provides the textual encodings offered by the shell's
// encode and decode commands, keyed by their canonical uppercase names.
package codec

import (
	"encoding/ascii85"
	"encoding/base32"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// A Codec converts between raw bytes and one textual representation.
// Encode never fails; Decode fails on malformed text.
type Codec struct {
	Name   string
	Encode func(src []byte) string
	Decode func(s string) ([]byte, error)
}

var codecs = map[string]Codec{
	"A85":       {Name: "A85", Encode: ascii85Encode, Decode: ascii85Decode},
	"BASE16":    {Name: "BASE16", Encode: base16Encode, Decode: base16Decode},
	"BASE32":    {Name: "BASE32", Encode: base32.StdEncoding.EncodeToString, Decode: base32.StdEncoding.DecodeString},
	"BASE32HEX": {Name: "BASE32HEX", Encode: base32.HexEncoding.EncodeToString, Decode: base32.HexEncoding.DecodeString},
	"BASE64":    {Name: "BASE64", Encode: base64.StdEncoding.EncodeToString, Decode: base64.StdEncoding.DecodeString},
	"BASE85":    {Name: "BASE85", Encode: base85Encode, Decode: base85Decode},
	"HEXLIFY":   {Name: "HEXLIFY", Encode: hex.EncodeToString, Decode: hexlifyDecode},
}

var codecNames = slices.Sorted(maps.Keys(codecs))

// Lookup returns the codec registered under the canonical uppercase name.
func Lookup(name string) (Codec, bool) {
	c, ok := codecs[name]
	return c, ok
}

// Names lists the canonical codec names in sorted order.
func Names() []string {
	return codecNames
}

func ascii85Encode(src []byte) string {
	dst := make([]byte, ascii85.MaxEncodedLen(len(src)))
	n := ascii85.Encode(dst, src)
	return string(dst[:n])
}

func ascii85Decode(s string) ([]byte, error) {
	// a 'z' group expands to four bytes, so 4x the input always fits
	dst := make([]byte, 4*len(s)+4)
	ndst, _, err := ascii85.Decode(dst, []byte(s), true)
	if err != nil {
		return nil, err
	}
	return dst[:ndst], nil
}

func base16Encode(src []byte) string {
	return strings.ToUpper(hex.EncodeToString(src))
}

// base16Decode accepts uppercase digits only. Lowercase input belongs to
// HEXLIFY, which tolerates both cases.
func base16Decode(s string) ([]byte, error) {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < '0' || c > '9') && (c < 'A' || c > 'F') {
			return nil, fmt.Errorf("non-base16 digit found at position %d", i)
		}
	}
	return hex.DecodeString(s)
}

func hexlifyDecode(s string) ([]byte, error) {
	return hex.DecodeString(s)
}
