// Package digest provides the hash algorithms offered by the shell's hash
// command, keyed by their canonical uppercase names.
package digest

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"hash"
	"maps"
	"slices"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/sha3"
)

var digests = map[string]func() hash.Hash{
	"BLAKE2B":  newBlake2b512,
	"BLAKE2S":  newBlake2s256,
	"MD5":      md5.New,
	"SHA1":     sha1.New,
	"SHA224":   sha256.New224,
	"SHA256":   sha256.New,
	"SHA384":   sha512.New384,
	"SHA3_224": func() hash.Hash { return sha3.New224() },
	"SHA3_256": func() hash.Hash { return sha3.New256() },
	"SHA3_384": func() hash.Hash { return sha3.New384() },
	"SHA3_512": func() hash.Hash { return sha3.New512() },
	"SHA512":   sha512.New,
}

var digestNames = slices.Sorted(maps.Keys(digests))

// Lookup returns the constructor registered under the canonical uppercase name.
func Lookup(name string) (func() hash.Hash, bool) {
	newHash, ok := digests[name]
	return newHash, ok
}

// Names lists the canonical algorithm names in sorted order.
func Names() []string {
	return digestNames
}

// Sum digests data with the named algorithm and renders the result as
// lowercase hexadecimal. The boolean is false for an unknown name.
func Sum(name string, data []byte) (string, bool) {
	newHash, ok := digests[name]
	if !ok {
		return "", false
	}
	h := newHash()
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil)), true
}

// unkeyed constructors cannot fail
func newBlake2b512() hash.Hash {
	h, _ := blake2b.New512(nil)
	return h
}

func newBlake2s256() hash.Hash {
	h, _ := blake2s.New256(nil)
	return h
}
