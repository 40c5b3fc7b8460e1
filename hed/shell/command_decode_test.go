package shell

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hedtool/hed/hed/codec"
)

func TestDecode(t *testing.T) {
	testCases := []struct {
		text      string
		algorithm string
		decoded   string
	}{
		{"BOu!rDZ", "A85", "hello"},
		{"68656C6C6F", "BASE16", "hello"},
		{"NBSWY3DP", "BASE32", "hello"},
		{"D1IMOR3F", "BASE32HEX", "hello"},
		{"aGVsbG8=", "BASE64", "hello"},
		{"Xk~0{Zv", "BASE85", "hello"},
		{"68656c6c6f", "HEXLIFY", "hello"},
		{"68656C6C6F", "HEXLIFY", "hello"},
		{"aGVsbG8=", "base64", "hello"},
	}
	for _, tc := range testCases {
		out, err := doCommand(t, CommandDecode, []string{tc.text, tc.algorithm})
		require.NoError(t, err, "%q %q", tc.text, tc.algorithm)
		assert.Equal(t, tc.decoded+"\n", out, "%q %q", tc.text, tc.algorithm)
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	for _, algorithm := range codec.Names() {
		c, _ := codec.Lookup(algorithm)
		for _, text := range []string{"hello", "Hello, World!", "naïve 日本語"} {
			encoded := c.Encode([]byte(text))
			out, err := doCommand(t, CommandDecode, []string{encoded, algorithm})
			require.NoError(t, err, "%s(%q)", algorithm, text)
			assert.Equal(t, text+"\n", out, "%s(%q)", algorithm, text)
		}
	}
}

func TestDecodeSyntaxHelp(t *testing.T) {
	out, err := doCommand(t, CommandDecode, nil)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Syntax: decode <text> < A85 | "), out)
}

func TestDecodeMalformedInput(t *testing.T) {
	testCases := []struct {
		text      string
		algorithm string
	}{
		{"aGVsbG8", "BASE64"},    // missing padding
		{"68656c6c6f", "BASE16"}, // lowercase digits
		{"686", "HEXLIFY"},       // odd length
		{"ab cd", "BASE85"},      // bad character
		{"v123", "A85"},          // bad character
	}
	for _, tc := range testCases {
		_, err := doCommand(t, CommandDecode, []string{tc.text, tc.algorithm})
		require.Error(t, err, "%q %q", tc.text, tc.algorithm)
		assert.Contains(t, err.Error(), "decode "+tc.algorithm, "%q %q", tc.text, tc.algorithm)
	}
}

func TestDecodeRejectsNonTextBytes(t *testing.T) {
	// 0xFF 0xFE does not decode as UTF-8
	_, err := doCommand(t, CommandDecode, []string{"FFFE", "BASE16"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid UTF-8")
}

func TestDecodeArgumentCount(t *testing.T) {
	_, err := doCommand(t, CommandDecode, []string{"aGVsbG8="})
	var countErr *ArgumentCountError
	require.ErrorAs(t, err, &countErr)
	assert.Equal(t, CommandDecode, countErr.Name)
}

func TestDecodeUnknownAlgorithm(t *testing.T) {
	_, err := doCommand(t, CommandDecode, []string{"aGVsbG8=", "UUENCODE"})
	var algorithmErr *UnknownAlgorithmError
	require.ErrorAs(t, err, &algorithmErr)
	assert.Equal(t, codec.Names(), algorithmErr.Valid)
}
