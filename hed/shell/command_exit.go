package shell

import (
	"fmt"
	"io"
)

func init() {
	Commands = append(Commands, &commandExit{})
}

type commandExit struct {
}

func (c *commandExit) Name() CommandName {
	return CommandExit
}

func (c *commandExit) Help() string {
	return "leave the shell"
}

func (c *commandExit) Do(args []string, commandEnv *CommandEnv, writer io.Writer) error {
	if len(args) != 0 {
		return &ArgumentCountError{Name: c.Name(), Want: 0, Got: len(args)}
	}

	fmt.Fprintln(writer, "Exiting...")

	return ErrExit
}
