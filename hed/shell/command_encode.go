package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/hedtool/hed/hed/codec"
)

func init() {
	Commands = append(Commands, &commandEncode{})
}

type commandEncode struct {
}

func (c *commandEncode) Name() CommandName {
	return CommandEncode
}

func (c *commandEncode) Help() string {
	return "apply a textual encoding to text\n" + encodeSyntax(c.Name())
}

func (c *commandEncode) Do(args []string, commandEnv *CommandEnv, writer io.Writer) error {
	if len(args) == 0 {
		fmt.Fprintln(writer, encodeSyntax(c.Name()))
		return nil
	}
	if len(args) != 2 {
		return &ArgumentCountError{Name: c.Name(), Want: 2, Got: len(args)}
	}

	text, algorithm := args[0], args[1]
	enc, found := codec.Lookup(normalizeAlgorithm(algorithm))
	if !found {
		return &UnknownAlgorithmError{Algorithm: algorithm, Valid: codec.Names()}
	}

	fmt.Fprintln(writer, enc.Encode([]byte(text)))

	return nil
}

func encodeSyntax(name CommandName) string {
	return fmt.Sprintf("Syntax: %s <text> < %s >",
		strings.ToLower(string(name)), strings.Join(codec.Names(), " | "))
}
