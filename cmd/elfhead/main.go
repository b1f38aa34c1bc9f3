package main

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/fatih/color"
	"github.com/midbel/cli"
	"github.com/midbel/elfhead"
)

const helpText = `{{.Name}} decodes the file header of ELF objects.

Usage:

  {{.Name}} [command] [arguments]

The commands are:

{{range .Commands}}{{printf "  %-9s %s" .String .Short}}
{{end}}
Without command, {{.Name}} runs show.

Use {{.Name}} [command] -h for more information about its usage.
`

var commands = []*cli.Command{
	{
		Usage:   "show [-c <config>] [-f <format>] <object.o>",
		Short:   "decode and print the header of a relocatable object",
		Alias:   []string{"header"},
		Run:     exitOnError(runShow),
		Default: true,
	},
	{
		Usage: "check <object.o...>",
		Short: "decode the headers of many objects and report failures",
		Alias: []string{"verify"},
		Run:   exitOnError(runCheck),
	},
	{
		Usage: "archive [-c <config>] [-f <format>] <library.a>",
		Short: "list the headers of the objects stored in a static library",
		Alias: []string{"ar"},
		Run:   exitOnError(runArchive),
	},
}

func main() {
	log.SetFlags(0)
	log.SetPrefix(progName() + ": ")
	os.Args = withDefault(os.Args, commands)
	cli.RunAndExit(commands, usage)
}

// withDefault inserts the name of the default command after the program name
// when the first argument does not select a command.
func withDefault(args []string, cmds []*cli.Command) []string {
	var def string
	for _, c := range cmds {
		if c.Default {
			def = commandName(c)
		}
	}
	if def == "" {
		return args
	}
	if len(args) > 1 && isCommand(args[1], cmds) {
		return args
	}
	xs := make([]string, 0, len(args)+1)
	xs = append(xs, args[:1]...)
	xs = append(xs, def)
	return append(xs, args[1:]...)
}

func isCommand(name string, cmds []*cli.Command) bool {
	if name == "help" {
		return true
	}
	for _, c := range cmds {
		if commandName(c) == name {
			return true
		}
		for _, a := range c.Alias {
			if a == name {
				return true
			}
		}
	}
	return false
}

func commandName(c *cli.Command) string {
	fs := strings.Fields(c.Usage)
	if len(fs) == 0 {
		return ""
	}
	return fs[0]
}

func usage() {
	data := struct {
		Name     string
		Commands []*cli.Command
	}{
		Name:     progName(),
		Commands: commands,
	}
	t := template.Must(template.New("help").Parse(helpText))
	t.Execute(os.Stderr, data)

	os.Exit(1)
}

type runFunc func(*cli.Command, []string) error

// exitOnError prints the error returned by run on stderr and terminates the
// process with status 1.
func exitOnError(run runFunc) runFunc {
	return func(cmd *cli.Command, args []string) error {
		err := run(cmd, args)
		if err == nil {
			return nil
		}
		printError(err)
		os.Exit(1)
		return err
	}
}

// printError writes err in red on stderr, prefixed with the program name.
func printError(err error) {
	log.Println(color.RedString("%v", err))
}

func loadConfig(file, format string) (elfhead.Config, error) {
	cfg, err := elfhead.LoadConfig(file)
	if err != nil {
		return cfg, err
	}
	if format != "" {
		cfg.Format = format
	}
	if !cfg.Color {
		color.NoColor = true
	}
	return cfg, cfg.Check()
}

func progName() string {
	return filepath.Base(os.Args[0])
}
