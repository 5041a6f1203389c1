package main

import (
	"fmt"
	"os"

	"github.com/absurdtty/ttymood/internal/config"
	"github.com/absurdtty/ttymood/internal/mcp"
)

// Version is set via -ldflags at build time.
var Version = "dev"

// cliCommands contains known CLI subcommands.
var cliCommands = map[string]bool{
	"generate": true, "show": true, "signals": true, "render": true,
	"status": true, "uptime": true, "ls": true, "explain": true,
	"doctor": true, "patchnotes": true, "form": true,
	"help": true,
}

// isCLIMode determines if we should run CLI vs MCP server.
func isCLIMode() bool {
	if len(os.Args) < 2 {
		return false // No args → MCP server
	}
	arg := os.Args[1]
	if cliCommands[arg] {
		return true
	}
	if arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" {
		return true
	}
	return false
}

// isTerminal returns true if stdin is a terminal (not piped).
func isTerminal() bool {
	stat, _ := os.Stdin.Stat()
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// printBanner displays a friendly banner when run interactively without args.
func printBanner() {
	fmt.Println(`
  _   _                                 _
 | |_| |_ _  _ _ __  ___  ___  __| |
 |  _|  _| || | '  \/ _ \/ _ \/ _' |
  \__|\__|\_, |_|_|_\___/\___/\__,_|
          |__/

  Mood signature engine for your terminal

  Usage: ttymood <command> [options]
         ttymood --help

  MCP server mode requires piped input.`)
}

func main() {
	// No args + interactive terminal → show banner and exit
	if len(os.Args) < 2 && isTerminal() {
		printBanner()
		return
	}

	baseDir, err := config.DataDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: could not determine data directory: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(baseDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to load config: %v\n", err)
		os.Exit(1)
	}

	if isCLIMode() {
		app := newCLIApp(cfg)
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Unknown argument + terminal → show error (don't start MCP server)
	if len(os.Args) >= 2 && isTerminal() {
		fmt.Fprintf(os.Stderr, "error: unknown command %q (see ttymood --help)\n", os.Args[1])
		os.Exit(1)
	}

	if err := mcp.Serve(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: MCP server failed: %v\n", err)
		os.Exit(1)
	}
}
