package shell

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/hedtool/hed/hed/codec"
)

func init() {
	Commands = append(Commands, &commandDecode{})
}

type commandDecode struct {
}

func (c *commandDecode) Name() CommandName {
	return CommandDecode
}

func (c *commandDecode) Help() string {
	return "decode a textual encoding back to text\n" + encodeSyntax(c.Name())
}

func (c *commandDecode) Do(args []string, commandEnv *CommandEnv, writer io.Writer) error {
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

	decoded, err := enc.Decode(text)
	if err != nil {
		return fmt.Errorf("decode %s: %w", enc.Name, err)
	}
	if !utf8.Valid(decoded) {
		return fmt.Errorf("decode %s: decoded bytes are not valid UTF-8 text", enc.Name)
	}

	fmt.Fprintln(writer, string(decoded))

	return nil
}
