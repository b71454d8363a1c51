package main

import (
	"fmt"
	"strings"

	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/driver"
	"github.com/katalvlaran/gridpath/pathfind"
	"github.com/katalvlaran/gridpath/render"
)

func newRunCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Search the board and print every step",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd)
		},
	}
	f := cmd.Flags()
	f.Duration(keyExpandDelay, driver.DefaultExpandDelay, "pause before each settled cell")
	f.Duration(keyTraceDelay, driver.DefaultTraceDelay, "pause before each path cell")
	f.String(keyFrames, "", "write one PNG per step into this directory")
	f.Int(keyCellSize, render.DefaultCellSize, "PNG cell size in pixels")
	f.BoolP(keyQuiet, "q", false, "print only the result")
	return cmd
}

func (a *app) run(cmd *cobra.Command) error {
	cfg, err := a.sessionConfig()
	if err != nil {
		return err
	}
	s, err := driver.NewSession(cfg, a.logger)
	if err != nil {
		return err
	}

	var sinks []driver.Sink
	if !a.v.GetBool(keyQuiet) {
		sinks = append(sinks, render.NewText(a.out, true))
	}
	if dir := a.v.GetString(keyFrames); dir != "" {
		p, err := render.NewPainter(a.v.GetInt(keyCellSize))
		if err != nil {
			return err
		}
		fd, err := render.NewFrameDir(dir, "step", p)
		if err != nil {
			return err
		}
		sinks = append(sinks, fd)
		level.Info(a.logger).Log("msg", "writing frames", "dir", dir)
	}

	res, err := s.Find(cmd.Context(), driver.Multi(sinks...))
	if err != nil {
		return err
	}
	return writeResult(a, res)
}

func writeResult(a *app, res pathfind.Result) error {
	if !res.Found() {
		_, err := fmt.Fprintf(a.out, "no path: settled=%d steps=%d\n", res.Settled, res.Steps)
		return err
	}
	cells := make([]string, len(res.Path))
	for i, c := range res.Path {
		cells[i] = c.String()
	}
	_, err := fmt.Fprintf(a.out, "found: distance=%d settled=%d steps=%d\npath: %s\n",
		res.Distance, res.Settled, res.Steps, strings.Join(cells, " "))
	return err
}
