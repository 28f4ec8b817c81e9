package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/wordtracker"
	wtslog "github.com/fwojciec/wordtracker/slog"
	"github.com/fwojciec/wordtracker/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
	Repository wordtracker.Repository
	Sources    wordtracker.SourceReader
	Progress   *wtslog.Progress

	// ReportWriter overrides the writer selected by --format.
	ReportWriter wordtracker.ReportWriter

	// History is set when the repository keeps a save history.
	History *sqlite.Repository
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Repo    string `type:"path" env:"WORDTRACKER_REPO" help:"Repository path (default ~/.wordtracker/repository.json, or .db for sqlite)"`
	Store   string `enum:"file,sqlite" default:"file" help:"Repository storage: file or sqlite"`
	Verbose bool   `short:"v" help:"Log progress to stderr"`

	Track TrackCmd `cmd:"" help:"Index text files and print a report (default command)"`
	Stats StatsCmd `cmd:"" help:"Show repository statistics"`
	Clear ClearCmd `cmd:"" help:"Remove every word from the repository"`
}

// TrackCmd is the "track" subcommand.
type TrackCmd struct {
	Files       []string `arg:"" name:"file" help:"Text files to index"`
	Print       string   `enum:"files,lines,all" default:"lines" help:"Report detail: files, lines, or all (adds frequency)"`
	Sort        string   `enum:"alpha,frequency,files" default:"alpha" help:"Report order: alpha, frequency, or files"`
	Format      string   `enum:"text,xml,yaml" default:"text" help:"Report format"`
	Output      string   `short:"o" type:"path" help:"Write the report to a file instead of stdout"`
	Concurrency int      `short:"c" default:"4" help:"Files read concurrently"`
	Reset       bool     `help:"Discard previously tracked words before indexing"`
}

// StatsCmd is the "stats" subcommand.
type StatsCmd struct{}

// ClearCmd is the "clear" subcommand.
type ClearCmd struct {
	Force bool `help:"Confirm clearing"`
}
