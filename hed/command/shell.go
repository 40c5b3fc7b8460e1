package command

import (
	"os"
	"path"

	"github.com/hedtool/hed/hed/shell"
	"github.com/hedtool/hed/hed/util"
)

var (
	shellOptions shell.ShellOptions
	shellPrompt  *string
	shellHistory *string
	shellColor   *string
)

func init() {
	cmdShell.Run = runShell // break init cycle
	shellPrompt = cmdShell.Flag.String("prompt", "", "prompt text, overrides [shell] prompt in hed.toml")
	shellHistory = cmdShell.Flag.String("history", "", "line history file, overrides [shell] history in hed.toml")
	shellColor = cmdShell.Flag.String("color", "", "colored banner on|off, overrides [shell] color in hed.toml")
	cmdShell.IsDebug = cmdShell.Flag.Bool("debug", false, "verbose debug logging")
}

var cmdShell = &Command{
	UsageLine: "shell [-prompt=text] [-history=file] [-color=on|off]",
	Short:     "run the interactive hash, encode and decode shell",
	Long: `run the interactive shell with the help, exit, encode, decode and hash commands.

	Generate hed.toml via "hed scaffold -config=hed"

  `,
}

func runShell(command *Command, args []string) bool {

	util.LoadConfiguration("hed", false)
	v := util.GetViper()
	v.SetDefault("shell.prompt", "[*] -> ")
	v.SetDefault("shell.history", path.Join(os.TempDir(), "hed-shell"))
	v.SetDefault("shell.color", true)

	shellOptions.Prompt = v.GetString("shell.prompt")
	shellOptions.HistoryFile = v.GetString("shell.history")
	shellOptions.Color = v.GetBool("shell.color")

	if *shellPrompt != "" {
		shellOptions.Prompt = *shellPrompt
	}
	if *shellHistory != "" {
		shellOptions.HistoryFile = *shellHistory
	}
	switch *shellColor {
	case "on":
		shellOptions.Color = true
	case "off":
		shellOptions.Color = false
	}

	shell.RunShell(shellOptions)

	return true
}
