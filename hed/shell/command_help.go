package shell

import (
	"fmt"
	"io"
	"strings"
)

func init() {
	Commands = append(Commands, &commandHelp{})
}

type commandHelp struct {
}

func (c *commandHelp) Name() CommandName {
	return CommandHelp
}

func (c *commandHelp) Help() string {
	return "print the usage of every command"
}

func (c *commandHelp) Do(args []string, commandEnv *CommandEnv, writer io.Writer) error {
	if len(args) != 0 {
		return &ArgumentCountError{Name: c.Name(), Want: 0, Got: len(args)}
	}

	fmt.Fprintln(writer)
	fmt.Fprintln(writer, "To encode or decode:")
	fmt.Fprintln(writer, "    encode/decode <text> <algorithm>")
	fmt.Fprintln(writer, "    encode or decode alone lists the algorithms.")
	fmt.Fprintln(writer, "To hash:")
	fmt.Fprintln(writer, "    hash <text> <algorithm>")
	fmt.Fprintln(writer, "    hash alone lists the algorithms.")
	fmt.Fprintln(writer)

	for _, name := range CommandNames {
		helpTexts := strings.SplitN(commandEnv.Command(name).Help(), "\n", 2)
		fmt.Fprintf(writer, "  %-10s\t# %s\n", strings.ToLower(string(name)), helpTexts[0])
	}

	return nil
}
