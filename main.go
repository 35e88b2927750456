// glimpse - concise terminal display for agent session transcripts.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/glimpse/internal/cli"
	"github.com/jeranaias/glimpse/internal/config"
	"github.com/jeranaias/glimpse/internal/display"
	"github.com/jeranaias/glimpse/internal/hooks"
	"github.com/jeranaias/glimpse/internal/replay"
	"github.com/jeranaias/glimpse/internal/ui/styles"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	var (
		configPath  = flag.String("config", "", "path to config.toml (default: ~/.glimpse/config.toml)")
		showVersion = flag.Bool("version", false, "print version and exit")
		listTools   = flag.Bool("tools", false, "list tools with dedicated renderers and exit")
	)
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Printf("glimpse %s (%s, built %s)\n", Version, GitCommit, BuildDate)
		return
	}

	if err := run(*configPath, *listTools, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "glimpse: %v\n", err)
		os.Exit(1)
	}
}

// run loads configuration, mounts the display hooks on a bus, and
// replays the transcript from the given file or stdin.
func run(configPath string, listTools bool, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// Pin the color profile before any style renders so piped output and
	// NO_COLOR environments stay clean.
	lipgloss.SetColorProfile(cli.ColorProfile())
	theme := styles.NewTheme()

	h := display.NewHooks(cfg, theme, os.Stdout, cli.TerminalWidth())

	if listTools {
		for _, tool := range h.Registry().Tools() {
			fmt.Println(tool)
		}
		return nil
	}

	var in io.Reader = os.Stdin
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open transcript: %w", err)
		}
		defer f.Close()
		in = f
	}

	bus := hooks.NewBus()
	h.Mount(bus)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return replay.Run(ctx, in, bus)
}

func usage() {
	fmt.Fprintf(os.Stderr, `glimpse - concise terminal display for agent session transcripts

Usage:
  glimpse [flags] [transcript.jsonl]

Reads a JSONL transcript of session events (or stdin when no file is
given) and renders one-glance summaries of tool calls, results, edit
previews, thinking blocks, and token usage.

Flags:
`)
	flag.PrintDefaults()
}
