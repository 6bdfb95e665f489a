package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/germanamz/modelpanel/pkg/modelconfig"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Handle subcommands before flag parsing.
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "pick":
			pickCmd := flag.NewFlagSet("pick", flag.ExitOnError)
			pickCmd.Usage = func() {
				fmt.Fprintf(os.Stderr, "Usage: modelpanel pick [flags]\n\nChoose a provider and then a model, and print the resulting config.\n\nFlags:\n")
				pickCmd.PrintDefaults()
			}
			var opts options
			opts.register(pickCmd)
			target := pickCmd.String("target", "primary", "selection to change: primary or compression")
			_ = pickCmd.Parse(os.Args[2:])

			t, err := modelconfig.ParseTarget(*target)
			if err != nil {
				exit(err)
			}
			if err := runPick(opts, t); err != nil {
				exit(err)
			}

			return
		case "show":
			showCmd := flag.NewFlagSet("show", flag.ExitOnError)
			showCmd.Usage = func() {
				fmt.Fprintf(os.Stderr, "Usage: modelpanel show [flags]\n\nPrint the panel rows for the current config.\n\nFlags:\n")
				showCmd.PrintDefaults()
			}
			var opts options
			opts.register(showCmd)
			_ = showCmd.Parse(os.Args[2:])

			if err := runShow(opts); err != nil {
				exit(err)
			}

			return
		case "mcp":
			mcpCmd := flag.NewFlagSet("mcp", flag.ExitOnError)
			mcpCmd.Usage = func() {
				fmt.Fprintf(os.Stderr, "Usage: modelpanel mcp [flags]\n\nServe the panel as MCP tools over stdin/stdout.\n\nFlags:\n")
				mcpCmd.PrintDefaults()
			}
			var opts options
			opts.register(mcpCmd)
			_ = mcpCmd.Parse(os.Args[2:])

			if err := runMCP(opts); err != nil {
				exit(err)
			}

			return
		}
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: modelpanel [flags]\n       modelpanel <command> [flags]\n\nFlags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nCommands:\n  pick    Choose a model from the catalog\n  show    Print the panel rows\n  mcp     Serve the panel as MCP tools over stdio\n")
	}

	var opts options
	opts.register(flag.CommandLine)
	flag.Parse()

	if err := runPanel(opts); err != nil {
		exit(err)
	}
}

// options are the flags shared by every command.
type options struct {
	catalogPath string
	configPath  string
	envFile     string
	logPath     string
	logLevel    string
}

func (o *options) register(fs *flag.FlagSet) {
	fs.StringVar(&o.catalogPath, "catalog", "", "path to a model catalog YAML file (default: built-in catalog)")
	fs.StringVar(&o.configPath, "config", "", "path to the initial model config YAML file (default: built-in defaults)")
	fs.StringVar(&o.envFile, "env", ".env", "path to .env file (ignored if missing)")
	fs.StringVar(&o.logPath, "log", "", "write logs to this file (default: no logging)")
	fs.StringVar(&o.logLevel, "log-level", "info", "log level: debug, info, warn, error")
}

func exit(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
