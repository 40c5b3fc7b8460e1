package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"go.uber.org/zap"

	"github.com/hedtool/hed/hed/codec"
	"github.com/hedtool/hed/hed/digest"
	"github.com/hedtool/hed/hed/util"
	"github.com/hedtool/hed/hed/util/grace"
)

var (
	line *liner.State
)

func RunShell(options ShellOptions) {
	if options.Prompt == "" {
		options.Prompt = "[*] -> "
	}
	if options.HistoryFile == "" {
		options.HistoryFile = path.Join(os.TempDir(), "hed-shell")
	}

	line = liner.NewLiner()
	defer line.Close()
	grace.OnInterrupt(func() {
		line.Close()
	})

	line.SetCtrlCAborts(true)
	line.SetTabCompletionStyle(liner.TabPrints)

	setCompletionHandler()
	loadHistory(options.HistoryFile)

	defer saveHistory(options.HistoryFile)

	commandEnv := NewCommandEnv(&options)

	printBanner(os.Stdout, options.Color)

	for {
		cmd, err := line.Prompt(options.Prompt)
		if err != nil {
			if err != io.EOF {
				fmt.Printf("%v\n", err)
			}
			return
		}

		if strings.TrimSpace(cmd) != "" {
			line.AppendHistory(cmd)
		}

		if processEachCmd(cmd, commandEnv, os.Stdout) {
			return
		}
	}
}

// processEachCmd parses and runs one input line, reporting any error to
// writer. It returns true when the session should end.
func processEachCmd(cmd string, commandEnv *CommandEnv, writer io.Writer) bool {
	tokens := strings.Split(cmd, " ")

	args := make([]string, len(tokens)-1)
	for i := range args {
		args[i] = strings.TrimSpace(tokens[1+i])
	}

	name, err := ParseCommandName(tokens[0])
	if err != nil {
		fmt.Fprintf(writer, "%v\n", err)
		return false
	}

	if err := commandEnv.Command(name).Do(args, commandEnv, writer); err != nil {
		if errors.Is(err, ErrExit) {
			return true
		}
		fmt.Fprintf(writer, "%v\n", err)
	}

	return false
}

func printBanner(writer io.Writer, colored bool) {
	title := color.New(color.FgYellow)
	accent := color.New(color.FgCyan)
	if !colored {
		title.DisableColor()
		accent.DisableColor()
	}

	title.Fprintf(writer, "\n%s, a tool to hash, encode, and decode text\n", util.Version())

	names := make([]string, 0, len(CommandNames))
	for _, name := range CommandNames {
		names = append(names, strings.ToLower(string(name)))
	}
	accent.Fprintf(writer, "commands: %s\n", strings.Join(names, ", "))

	fmt.Fprintln(writer, `
    To encode or decode:
        encode/decode <text> <algorithm>
        encode or decode alone lists the algorithms.
    To hash:
        hash <text> <algorithm>
        hash alone lists the algorithms.`)
}

func setCompletionHandler() {
	line.SetCompleter(completeLine)
}

func completeLine(l string) (candidates []string) {
	tokens := strings.Split(l, " ")
	if len(tokens) == 1 {
		for _, name := range CommandNames {
			lowered := strings.ToLower(string(name))
			if strings.HasPrefix(lowered, strings.ToLower(tokens[0])) {
				candidates = append(candidates, lowered)
			}
		}
		return
	}

	name, err := ParseCommandName(tokens[0])
	if err != nil {
		return
	}

	var algorithms []string
	switch name {
	case CommandEncode, CommandDecode:
		algorithms = codec.Names()
	case CommandHash:
		algorithms = digest.Names()
	default:
		return
	}

	// complete the trailing token, keeping the rest of the line
	prefix := strings.ToUpper(tokens[len(tokens)-1])
	for _, algorithm := range algorithms {
		if strings.HasPrefix(algorithm, prefix) {
			completed := append(append([]string{}, tokens[:len(tokens)-1]...), algorithm)
			candidates = append(candidates, strings.Join(completed, " "))
		}
	}
	return
}

func loadHistory(historyPath string) {
	if f, err := os.Open(historyPath); err == nil {
		line.ReadHistory(f)
		f.Close()
	}
}

func saveHistory(historyPath string) {
	if f, err := os.Create(historyPath); err != nil {
		zap.L().Warn("cannot create history file", zap.String("path", historyPath), zap.Error(err))
	} else {
		if _, err = line.WriteHistory(f); err != nil {
			zap.L().Warn("cannot write history file", zap.String("path", historyPath), zap.Error(err))
		}
		f.Close()
	}
}
