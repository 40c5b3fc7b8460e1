package command

import (
	"os"
	"path/filepath"
)

func init() {
	cmdScaffold.Run = runScaffold // break init cycle
}

var cmdScaffold = &Command{
	UsageLine: "scaffold -config=[hed]",
	Short:     "generate basic configuration files",
	Long: `Generate hed.toml with all possible configurations for you to customize.

	The config file is searched in "./", "$HOME/.hed/", and "/etc/hed/".

  `,
}

var (
	outputPath = cmdScaffold.Flag.String("output", "", "if not empty, save the configuration file to this directory")
	config     = cmdScaffold.Flag.String("config", "hed", "[hed] the configuration file to generate")
)

func runScaffold(cmd *Command, args []string) bool {

	content := ""
	switch *config {
	case "hed":
		content = HED_TOML_EXAMPLE
	}
	if content == "" {
		println("need a valid -config option")
		return false
	}

	if *outputPath != "" {
		if err := os.WriteFile(filepath.Join(*outputPath, *config+".toml"), []byte(content), 0644); err != nil {
			println("write config file:", err.Error())
			return false
		}
	} else {
		println(content)
	}
	return true
}

const (
	HED_TOML_EXAMPLE = `
# A sample TOML config file for the hed shell
# Put this file to one of the locations, with descending priority
#    ./hed.toml
#    $HOME/.hed/hed.toml
#    /etc/hed/hed.toml

[shell]
# prompt printed before each input line
prompt = "[*] -> "
# where the line history is kept between sessions
history = "/tmp/hed-shell"
# colored startup banner
color = true
`
)
