package shell

import (
	"errors"
	"fmt"
	"strings"
)

// ErrExit is returned by the exit command; the shell loop recognizes it and
// ends the session instead of reporting it.
var ErrExit = errors.New("exit requested")

// UnknownCommandError reports an input token that is not a recognized
// command. Token is the raw token as the user typed it.
type UnknownCommandError struct {
	Token string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("Invalid command name: %s", e.Token)
}

// ArgumentCountError reports a command invoked with the wrong number of
// arguments. Every command takes a fixed count.
type ArgumentCountError struct {
	Name CommandName
	Want int
	Got  int
}

func (e *ArgumentCountError) Error() string {
	if e.Want == 0 {
		return fmt.Sprintf("This command takes no arguments: %s", e.Name)
	}
	return fmt.Sprintf("This command takes exactly %d arguments: %s", e.Want, e.Name)
}

// UnknownAlgorithmError reports an algorithm name missing from the invoked
// command's table. Valid is that command's full menu.
type UnknownAlgorithmError struct {
	Algorithm string
	Valid     []string
}

func (e *UnknownAlgorithmError) Error() string {
	return fmt.Sprintf("Invalid algorithm name: %s; Available algorithms: %s",
		e.Algorithm, strings.Join(e.Valid, ", "))
}
