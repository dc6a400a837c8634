// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/terragrid/blueprint"
	"github.com/katalvlaran/terragrid/grid"
	"github.com/katalvlaran/terragrid/store"
)

// config layers the YAML file and the set flags over the defaults.
func config(cmd *cli.Command) (blueprint.Config, error) {
	cfg := blueprint.DefaultConfig()
	if path := cmd.String("config"); path != "" {
		loaded, err := blueprint.LoadConfig(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	ints := []struct {
		flag string
		dst  *int
	}{
		{"cell-size", &cfg.CellSize},
		{"scale", &cfg.GridScale},
		{"rows", &cfg.Rows},
		{"cols", &cfg.Columns},
		{"octaves", &cfg.NoiseOctaves},
	}
	for _, f := range ints {
		if cmd.IsSet(f.flag) {
			*f.dst = int(cmd.Int(f.flag))
		}
	}
	if cmd.IsSet("noise-scale") {
		cfg.NoiseScale = cmd.Float("noise-scale")
	}
	if cmd.IsSet("roughness") {
		cfg.Roughness = cmd.Float("roughness")
	}
	if cmd.IsSet("seed") {
		cfg.Seed = cmd.String("seed")
	}
	if cmd.IsSet("boundary") {
		cfg.Boundary = blueprint.BoundaryPolicy(cmd.String("boundary"))
	}

	return cfg, nil
}

// load restores the grid from --snapshot or generates a fresh one.
func (a *app) load(ctx context.Context, cmd *cli.Command) (*grid.Grid, error) {
	if path := cmd.String("snapshot"); path != "" {
		snap, err := store.LoadFile(path)
		if err != nil {
			return nil, err
		}
		a.log.Debug("restoring snapshot", "path", path, "cells", len(snap.Cells))
		return grid.Restore(ctx, snap)
	}

	cfg, err := config(cmd)
	if err != nil {
		return nil, err
	}
	bp, err := blueprint.New(ctx, cfg,
		blueprint.WithLogger(a.log),
		blueprint.WithWorkers(int(cmd.Int("workers"))),
	)
	if err != nil {
		return nil, err
	}

	return grid.New(bp)
}

func (a *app) generate(ctx context.Context, cmd *cli.Command) error {
	g, err := a.load(ctx, cmd)
	if err != nil {
		return err
	}
	bp := g.Blueprint()
	rows, cols := bp.Dimensions()
	w := cmd.Root().Writer

	fmt.Fprintf(w, "cells      %d (%d×%d)\n", bp.Len(), rows, cols)
	fmt.Fprintf(w, "quadrants  %d\n", len(bp.Quadrants()))
	fmt.Fprintf(w, "regions    %d\n", bp.Regions())
	hist := bp.Histogram()
	for _, band := range bp.Config().Table() {
		if n := hist[band.Name]; n > 0 {
			fmt.Fprintf(w, "  %-14s %d\n", band.Name, n)
		}
	}

	if out := cmd.String("out"); out != "" {
		if err := store.SaveFile(out, g.Snapshot()); err != nil {
			return err
		}
		a.log.Info("snapshot saved", "path", out)
	}

	return nil
}

func (a *app) inspect(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("inspect: want 1 cell id, got %d arguments", cmd.Args().Len())
	}
	g, err := a.load(ctx, cmd)
	if err != nil {
		return err
	}
	c, err := g.Cell(cmd.Args().First())
	if err != nil {
		return err
	}
	e, _ := g.Blueprint().Entry(c.ID)
	w := cmd.Root().Writer

	fmt.Fprintf(w, "id          %s\n", c.ID)
	fmt.Fprintf(w, "position    row %d, column %d (x=%d, y=%d)\n", c.Row, c.Column, c.X, c.Y)
	fmt.Fprintf(w, "terrain     %s %s (raw %.4f)\n", c.Terrain, e.Color, e.Raw)
	fmt.Fprintf(w, "quadrant    %d\n", c.Quadrant)
	fmt.Fprintf(w, "region      %d\n", c.Region)
	fmt.Fprintf(w, "adjacent    %s\n", strings.Join(c.Adjacent, " "))
	fmt.Fprintf(w, "passable    %t\n", c.Passable)
	fmt.Fprintf(w, "occupied    %t\n", c.Occupied)
	fmt.Fprintf(w, "obstructed  %t\n", c.Obstructed)
	fmt.Fprintf(w, "entitled    %t\n", c.Entitled)
	if len(c.Groups) > 0 {
		fmt.Fprintf(w, "groups      %s\n", strings.Join(c.Groups, " "))
	}

	return nil
}

func (a *app) path(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 2 {
		return fmt.Errorf("path: want 2 cell ids, got %d arguments", cmd.Args().Len())
	}
	g, err := a.load(ctx, cmd)
	if err != nil {
		return err
	}
	p, err := g.Path(cmd.Args().Get(0), cmd.Args().Get(1))
	if err != nil {
		return err
	}
	a.log.Debug("path search done", "expanded", p.Expanded, "found", p.Found)
	w := cmd.Root().Writer
	if !p.Found {
		fmt.Fprintln(w, "no path")
		return nil
	}
	fmt.Fprintln(w, strings.Join(p.Cells, " "))
	fmt.Fprintf(w, "%d steps, cost %d\n", p.Steps(), p.Cost)

	return nil
}

func (a *app) quadrants(ctx context.Context, cmd *cli.Command) error {
	g, err := a.load(ctx, cmd)
	if err != nil {
		return err
	}
	qs := g.Blueprint().Quadrants()
	sort.Slice(qs, func(i, j int) bool { return qs[i].ID < qs[j].ID })
	w := cmd.Root().Writer
	fmt.Fprintf(w, "side %dpx\n", g.Blueprint().QuadrantSide())
	for _, q := range qs {
		fmt.Fprintf(w, "%4d  block (%d, %d)  %d cells\n", q.ID, q.BlockX, q.BlockY, len(q.Cells))
	}

	return nil
}
