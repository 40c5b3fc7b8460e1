package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/hedtool/hed/hed/digest"
)

func init() {
	Commands = append(Commands, &commandHash{})
}

type commandHash struct {
}

func (c *commandHash) Name() CommandName {
	return CommandHash
}

func (c *commandHash) Help() string {
	return "print the digest of text as lowercase hex\n" + hashSyntax()
}

func (c *commandHash) Do(args []string, commandEnv *CommandEnv, writer io.Writer) error {
	if len(args) == 0 {
		fmt.Fprintln(writer, hashSyntax())
		return nil
	}
	if len(args) != 2 {
		return &ArgumentCountError{Name: c.Name(), Want: 2, Got: len(args)}
	}

	text, algorithm := args[0], args[1]
	sum, found := digest.Sum(normalizeAlgorithm(algorithm), []byte(text))
	if !found {
		return &UnknownAlgorithmError{Algorithm: algorithm, Valid: digest.Names()}
	}

	fmt.Fprintln(writer, sum)

	return nil
}

func hashSyntax() string {
	return fmt.Sprintf("Syntax: hash <text> < %s >", strings.Join(digest.Names(), " | "))
}
