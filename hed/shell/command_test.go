package shell

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// doCommand runs one registered command directly against a buffer.
func doCommand(t *testing.T, name CommandName, args []string) (string, error) {
	t.Helper()
	commandEnv := NewCommandEnv(&ShellOptions{})
	var buf bytes.Buffer
	err := commandEnv.Command(name).Do(args, commandEnv, &buf)
	return buf.String(), err
}

func TestParseCommandName(t *testing.T) {
	testCases := []struct {
		token string
		name  CommandName
	}{
		{"help", CommandHelp},
		{"HELP", CommandHelp},
		{"HeLp", CommandHelp},
		{" help ", CommandHelp},
		{"exit", CommandExit},
		{"encode", CommandEncode},
		{"Decode", CommandDecode},
		{"hash", CommandHash},
	}
	for _, tc := range testCases {
		name, err := ParseCommandName(tc.token)
		require.NoError(t, err, "%q", tc.token)
		assert.Equal(t, tc.name, name, "%q", tc.token)
	}
}

func TestParseCommandNameUnknown(t *testing.T) {
	for _, token := range []string{"", " ", "hel", "helpp", "quit", "encrypt", "hash2"} {
		_, err := ParseCommandName(token)
		require.Error(t, err, "%q", token)

		var unknownErr *UnknownCommandError
		require.ErrorAs(t, err, &unknownErr, "%q", token)
		assert.Equal(t, token, unknownErr.Token)
		assert.Equal(t, "Invalid command name: "+token, err.Error())
	}
}

func TestNewCommandEnvRegistersEveryCommand(t *testing.T) {
	commandEnv := NewCommandEnv(&ShellOptions{})
	for _, name := range CommandNames {
		c := commandEnv.Command(name)
		require.NotNil(t, c, name)
		assert.Equal(t, name, c.Name())
		assert.NotEmpty(t, c.Help(), name)
	}
}

func TestHelp(t *testing.T) {
	out, err := doCommand(t, CommandHelp, nil)
	require.NoError(t, err)
	for _, name := range []string{"help", "exit", "encode", "decode", "hash"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "To encode or decode:")
	assert.Contains(t, out, "To hash:")
}

func TestHelpRejectsArguments(t *testing.T) {
	_, err := doCommand(t, CommandHelp, []string{"encode"})
	require.Error(t, err)

	var countErr *ArgumentCountError
	require.ErrorAs(t, err, &countErr)
	assert.Equal(t, CommandHelp, countErr.Name)
	assert.Equal(t, 0, countErr.Want)
	assert.Equal(t, 1, countErr.Got)
	assert.Equal(t, "This command takes no arguments: HELP", err.Error())
}

func TestExit(t *testing.T) {
	out, err := doCommand(t, CommandExit, nil)
	assert.ErrorIs(t, err, ErrExit)
	assert.Equal(t, "Exiting...\n", out)
}

func TestExitRejectsArguments(t *testing.T) {
	out, err := doCommand(t, CommandExit, []string{"0"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrExit)
	assert.Equal(t, "This command takes no arguments: EXIT", err.Error())
	assert.Empty(t, out)
}

func TestArgumentCountErrorMessage(t *testing.T) {
	err := &ArgumentCountError{Name: CommandEncode, Want: 2, Got: 3}
	assert.Equal(t, "This command takes exactly 2 arguments: ENCODE", err.Error())
}

func TestUnknownAlgorithmErrorMessage(t *testing.T) {
	err := &UnknownAlgorithmError{Algorithm: "ROT13", Valid: []string{"A85", "BASE16"}}
	assert.Equal(t, "Invalid algorithm name: ROT13; Available algorithms: A85, BASE16", err.Error())
	assert.True(t, strings.HasPrefix(err.Error(), "Invalid algorithm name: "))
}
