package shell

import (
	"fmt"
	"io"
	"strings"
)

// CommandName enumerates the commands the shell understands. The string
// value is the canonical uppercase spelling used in error reports.
type CommandName string

const (
	CommandHelp   CommandName = "HELP"
	CommandExit   CommandName = "EXIT"
	CommandEncode CommandName = "ENCODE"
	CommandDecode CommandName = "DECODE"
	CommandHash   CommandName = "HASH"
)

// CommandNames lists every command in display order.
var CommandNames = []CommandName{
	CommandHelp,
	CommandExit,
	CommandEncode,
	CommandDecode,
	CommandHash,
}

type command interface {
	Name() CommandName
	Help() string
	Do([]string, *CommandEnv, io.Writer) error
}

var (
	Commands = []command{}
)

// ParseCommandName resolves a raw input token to a CommandName. Matching
// trims surrounding space and ignores case; anything else, including an
// empty token, is an unknown command.
func ParseCommandName(token string) (CommandName, error) {
	name := CommandName(strings.ToUpper(strings.TrimSpace(token)))
	for _, known := range CommandNames {
		if name == known {
			return known, nil
		}
	}
	return "", &UnknownCommandError{Token: token}
}

// newCommandMap indexes the registered commands by name. The command set is
// fixed, so a missing or duplicated registration is a programming defect and
// panics rather than surfacing as a runtime error.
func newCommandMap() map[CommandName]command {
	m := make(map[CommandName]command, len(Commands))
	for _, c := range Commands {
		if _, found := m[c.Name()]; found {
			panic(fmt.Sprintf("duplicate command registered: %s", c.Name()))
		}
		m[c.Name()] = c
	}
	for _, name := range CommandNames {
		if _, found := m[name]; !found {
			panic(fmt.Sprintf("no command registered for: %s", name))
		}
	}
	return m
}

// ShellOptions carries the settings resolved from flags and hed.toml.
type ShellOptions struct {
	Prompt      string
	HistoryFile string
	Color       bool
}

// CommandEnv is the session state shared by all commands.
type CommandEnv struct {
	option   *ShellOptions
	commands map[CommandName]command
}

func NewCommandEnv(options *ShellOptions) *CommandEnv {
	return &CommandEnv{
		option:   options,
		commands: newCommandMap(),
	}
}

// Command returns the handler for a parsed name. Registration is total over
// CommandNames, so a parsed name always has a handler.
func (ce *CommandEnv) Command(name CommandName) command {
	return ce.commands[name]
}

func normalizeAlgorithm(algorithm string) string {
	return strings.ToUpper(strings.TrimSpace(algorithm))
}
