package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedtool/hed/hed/codec"
)

func TestEncode(t *testing.T) {
	testCases := []struct {
		text      string
		algorithm string
		encoded   string
	}{
		{"hello", "A85", "BOu!rDZ"},
		{"hello", "BASE16", "68656C6C6F"},
		{"hello", "BASE32", "NBSWY3DP"},
		{"hello", "BASE32HEX", "D1IMOR3F"},
		{"hello", "BASE64", "aGVsbG8="},
		{"hello", "BASE85", "Xk~0{Zv"},
		{"hello", "HEXLIFY", "68656c6c6f"},
		// algorithm names are case-insensitive and tolerate surrounding space
		{"hello", "base64", "aGVsbG8="},
		{"hello", "Base64", "aGVsbG8="},
		{"hello", " BASE64 ", "aGVsbG8="},
	}
	for _, tc := range testCases {
		out, err := doCommand(t, CommandEncode, []string{tc.text, tc.algorithm})
		require.NoError(t, err, "%q %q", tc.text, tc.algorithm)
		assert.Equal(t, tc.encoded+"\n", out, "%q %q", tc.text, tc.algorithm)
	}
}

func TestEncodeSyntaxHelp(t *testing.T) {
	out, err := doCommand(t, CommandEncode, nil)
	require.NoError(t, err)
	assert.Equal(t, "Syntax: encode <text> < A85 | BASE16 | BASE32 | BASE32HEX | BASE64 | BASE85 | HEXLIFY >\n", out)
}

func TestEncodeArgumentCount(t *testing.T) {
	for _, args := range [][]string{
		{"hello"},
		{"hello", "BASE64", "extra"},
	} {
		_, err := doCommand(t, CommandEncode, args)
		require.Error(t, err, "%v", args)

		var countErr *ArgumentCountError
		require.ErrorAs(t, err, &countErr, "%v", args)
		assert.Equal(t, CommandEncode, countErr.Name)
		assert.Equal(t, 2, countErr.Want)
		assert.Equal(t, len(args), countErr.Got)
	}
}

func TestEncodeUnknownAlgorithm(t *testing.T) {
	_, err := doCommand(t, CommandEncode, []string{"hello", "BASE58"})
	require.Error(t, err)

	var algorithmErr *UnknownAlgorithmError
	require.ErrorAs(t, err, &algorithmErr)
	assert.Equal(t, "BASE58", algorithmErr.Algorithm)
	assert.Equal(t, codec.Names(), algorithmErr.Valid)
	assert.Contains(t, err.Error(), "Invalid algorithm name: BASE58")
	assert.Contains(t, err.Error(), "BASE32HEX")
}

func TestEncodeHashAlgorithmIsUnknownHere(t *testing.T) {
	// the encode table does not include digests
	_, err := doCommand(t, CommandEncode, []string{"hello", "MD5"})
	var algorithmErr *UnknownAlgorithmError
	require.ErrorAs(t, err, &algorithmErr)
}
