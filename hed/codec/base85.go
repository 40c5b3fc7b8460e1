package codec

import "fmt"

// RFC 1924 base85. Unlike ascii85 there is no zero-group folding and no
// framing; four input bytes always map to five characters of this alphabet.
const base85Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz!#$%&()*+-;<=>?@^_`{|}~"

var base85DecodeMap = func() (m [256]byte) {
	for i := range m {
		m[i] = 0xff
	}
	for i := 0; i < len(base85Alphabet); i++ {
		m[base85Alphabet[i]] = byte(i)
	}
	return
}()

func base85Encode(src []byte) string {
	dst := make([]byte, 0, (len(src)+3)/4*5)
	for len(src) > 0 {
		var group [4]byte
		n := copy(group[:], src)
		src = src[n:]

		v := uint32(group[0])<<24 | uint32(group[1])<<16 | uint32(group[2])<<8 | uint32(group[3])

		var chunk [5]byte
		for i := 4; i >= 0; i-- {
			chunk[i] = base85Alphabet[v%85]
			v /= 85
		}
		// a trailing group of n bytes keeps only its n+1 leading characters
		dst = append(dst, chunk[:n+1]...)
	}
	return string(dst)
}

func base85Decode(s string) ([]byte, error) {
	if len(s) == 0 {
		return nil, nil
	}
	pad := (5 - len(s)%5) % 5
	dst := make([]byte, 0, (len(s)+pad)/5*4)
	for i := 0; i < len(s); i += 5 {
		var v uint64
		for j := 0; j < 5; j++ {
			c := byte('~') // short trailing chunks decode as if padded with the top character
			if i+j < len(s) {
				c = s[i+j]
			}
			d := base85DecodeMap[c]
			if d == 0xff {
				return nil, fmt.Errorf("bad base85 character at position %d", i+j)
			}
			v = v*85 + uint64(d)
		}
		if v > 0xffffffff {
			return nil, fmt.Errorf("base85 overflow in group starting at position %d", i)
		}
		dst = append(dst, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
	}
	return dst[:len(dst)-pad], nil
}
