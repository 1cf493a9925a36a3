// Command sketch is a headless harness for the sketch runtime. It runs
// the capability layer against the in-memory host, which makes it useful
// for poking at file classification and handle behavior without a real
// host environment attached.
package main

import (
	"fmt"
	"os"

	"github.com/go-sketch/sketch/pkg/errors"
	"github.com/go-sketch/sketch/pkg/host"
)

// Version information set at build time.
var Version = "0.1.0-dev"

// cfg is the optional sketch.yaml configuration, loaded once in main.
var cfg *host.Config

// command is one CLI subcommand.
type command struct {
	name  string
	short string
	usage string
	run   func(args []string) error
}

var commands = []*command{
	{
		name:  "demo",
		short: "Build a headless scene and drive the media clock",
		usage: "sketch demo",
		run:   runDemo,
	},
	{
		name:  "probe",
		short: "Classify files the way the ingestion loader does",
		usage: "sketch probe <file>...",
		run:   runProbe,
	},
	{
		name:  "version",
		short: "Print version information",
		usage: "sketch version",
		run: func([]string) error {
			fmt.Printf("sketch %s (host protocol >= %s)\n", Version, host.MinProtocolVersion)
			return nil
		},
	},
}

func main() {
	var err error
	cfg, err = host.LoadOptional(".")
	if err != nil {
		fmt.Fprintln(os.Stderr, "sketch:", err)
		os.Exit(1)
	}
	errors.SetHandler(&errors.LogHandler{Verbose: cfg.Log.Verbose})

	args := os.Args[1:]
	if len(args) == 0 {
		printHelp()
		return
	}
	name := args[0]
	if name == "help" || name == "--help" || name == "-h" {
		printHelp()
		return
	}

	for _, c := range commands {
		if c.name == name {
			if err := c.run(args[1:]); err != nil {
				fmt.Fprintln(os.Stderr, "sketch:", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Fprintf(os.Stderr, "sketch: unknown command %q\n\n", name)
	printHelp()
	os.Exit(1)
}

func printHelp() {
	fmt.Println("sketch - capability layer harness")
	fmt.Println()
	fmt.Println("Usage: sketch <command> [args]")
	fmt.Println()
	fmt.Println("Commands:")
	for _, c := range commands {
		fmt.Printf("  %-10s %s\n", c.name, c.short)
	}
}
