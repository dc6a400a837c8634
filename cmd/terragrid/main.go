// SPDX-License-Identifier: MIT

// Command terragrid generates procedural grid maps and queries them.
//
// Every subcommand first obtains a grid: either restored from a saved
// snapshot (--snapshot) or generated from the default configuration, an
// optional YAML file (--config) and flag overrides, in that order. Flags can
// also be set through TERRAGRID_* environment variables, and a .env file in
// the working directory is loaded first when present.
//
//	terragrid --rows 40 --cols 60 --seed ISLANDS generate --out island.json
//	terragrid --snapshot island.json path a00001 aN00060
//	terragrid --snapshot island.json inspect b00012
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
)

const appName = "terragrid"

func main() {
	// .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "%s: loading .env: %v\n", appName, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().Run(ctx, os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}

// app carries state shared by the subcommands of one run.
type app struct {
	log *slog.Logger
}

func envs(name string) cli.ValueSourceChain {
	return cli.EnvVars("TERRAGRID_" + name)
}

// newApp assembles the command tree.
func newApp() *cli.Command {
	a := &app{}

	return &cli.Command{
		Name:  appName,
		Usage: "generate terrain grids, inspect cells and find paths",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML configuration file", Sources: envs("CONFIG")},
			&cli.StringFlag{Name: "snapshot", Aliases: []string{"s"}, Usage: "restore the grid from a saved snapshot (.json, .yaml)", Sources: envs("SNAPSHOT")},
			&cli.IntFlag{Name: "cell-size", Usage: "cell side in pixels", Sources: envs("CELL_SIZE")},
			&cli.IntFlag{Name: "scale", Usage: "grid scale multiplier", Sources: envs("SCALE")},
			&cli.IntFlag{Name: "rows", Usage: "row count (overrides the canvas height)", Sources: envs("ROWS")},
			&cli.IntFlag{Name: "cols", Usage: "column count (overrides the canvas width)", Sources: envs("COLS")},
			&cli.StringFlag{Name: "seed", Usage: "terrain seed text", Sources: envs("SEED")},
			&cli.FloatFlag{Name: "noise-scale", Usage: "coherent noise scale", Sources: envs("NOISE_SCALE")},
			&cli.IntFlag{Name: "octaves", Usage: "coherent noise octaves", Sources: envs("OCTAVES")},
			&cli.FloatFlag{Name: "roughness", Usage: "midpoint displacement roughness", Sources: envs("ROUGHNESS")},
			&cli.StringFlag{Name: "boundary", Usage: "edge policy: clip or wrap", Sources: envs("BOUNDARY")},
			&cli.IntFlag{Name: "workers", Usage: "noise worker goroutines (0: one per row)", Sources: envs("WORKERS")},
			&cli.BoolFlag{Name: "debug", Usage: "verbose logging", Sources: envs("DEBUG")},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level := slog.LevelInfo
			if cmd.Bool("debug") {
				level = slog.LevelDebug
			}
			a.log = slog.New(slog.NewTextHandler(cmd.Root().ErrWriter, &slog.HandlerOptions{Level: level}))
			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "build a grid and report its shape",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "save a snapshot to this file (.json, .yaml)"},
				},
				Action: a.generate,
			},
			{
				Name:      "inspect",
				Usage:     "print one cell",
				ArgsUsage: "<cell-id>",
				Action:    a.inspect,
			},
			{
				Name:      "path",
				Usage:     "find a path between two cells",
				ArgsUsage: "<from> <to>",
				Action:    a.path,
			},
			{
				Name:   "quadrants",
				Usage:  "list quadrants and their sizes",
				Action: a.quadrants,
			},
		},
	}
}
