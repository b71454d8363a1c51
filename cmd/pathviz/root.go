package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/gridpath/driver"
	"github.com/katalvlaran/gridpath/layout"
	"github.com/katalvlaran/gridpath/pathfind"
)

const envPrefix = "PATHVIZ"

// Setting keys. Each one is also the flag name.
const (
	keyConfig      = "config"
	keyVerbose     = "verbose"
	keyLayout      = "layout"
	keyRows        = "rows"
	keyCols        = "cols"
	keyStart       = "start"
	keyDest        = "dest"
	keyWalls       = "walls"
	keyTieBreak    = "tie-break"
	keyExpandDelay = "expand-delay"
	keyTraceDelay  = "trace-delay"
	keyFrames      = "frames"
	keyCellSize    = "cell-size"
	keyQuiet       = "quiet"
)

// app carries what every subcommand needs.
type app struct {
	v      *viper.Viper
	out    io.Writer
	errOut io.Writer
	logger log.Logger
}

func newRootCmd(out, errOut io.Writer) *cobra.Command {
	a := &app{v: viper.New(), out: out, errOut: errOut, logger: log.NewNopLogger()}

	root := &cobra.Command{
		Use:           "pathviz",
		Short:         "Step-by-step shortest paths on a 4-connected grid",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	root.SetOut(out)
	root.SetErr(errOut)

	pf := root.PersistentFlags()
	pf.String(keyConfig, "", "YAML config file")
	pf.BoolP(keyVerbose, "v", false, "log every step")
	pf.String(keyLayout, "", "board layout file ('.' open, '#' wall, 'S' start, 'D' destination)")
	pf.Int(keyRows, layout.DefaultRows, "board rows (ignored with --layout)")
	pf.Int(keyCols, layout.DefaultCols, "board columns (ignored with --layout)")
	pf.String(keyStart, "", "start cell as row,col (default: classic position)")
	pf.String(keyDest, "", "destination cell as row,col (default: classic position)")
	pf.String(keyWalls, "", "extra walls as row,col;row,col;...")
	pf.String(keyTieBreak, pathfind.TieBreakRowMajor.String(), "frontier tie-break: row-major or insertion")

	root.AddCommand(newRunCmd(a), newCheckCmd(a))
	return root
}

// init binds flags, environment and the optional config file, then sets up
// the logger.
func (a *app) init(cmd *cobra.Command) error {
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	if path := a.v.GetString(keyConfig); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("config %s: %w", path, err)
		}
	}

	logger := log.NewLogfmtLogger(log.NewSyncWriter(a.errOut))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC)
	allow := level.AllowInfo()
	if a.v.GetBool(keyVerbose) {
		allow = level.AllowDebug()
	}
	a.logger = level.NewFilter(logger, allow)
	return nil
}

// grid builds the board described by the settings.
func (a *app) grid() (*pathfind.Grid, error) {
	var (
		g   *pathfind.Grid
		err error
	)
	if path := a.v.GetString(keyLayout); path != "" {
		g, err = readLayout(path)
	} else {
		g, err = a.flagGrid()
	}
	if err != nil {
		return nil, err
	}

	walls, err := layout.ParseCoords(a.v.GetString(keyWalls))
	if err != nil {
		return nil, err
	}
	for _, w := range walls {
		if err = g.SetObstacle(w, true); err != nil {
			return nil, fmt.Errorf("wall %v: %w", w, err)
		}
	}
	return g, nil
}

func (a *app) flagGrid() (*pathfind.Grid, error) {
	b := layout.Board{Rows: a.v.GetInt(keyRows), Cols: a.v.GetInt(keyCols)}
	start, dest := b.Endpoints()
	var err error
	if s := a.v.GetString(keyStart); s != "" {
		if start, err = layout.ParseCoord(s); err != nil {
			return nil, err
		}
	}
	if s := a.v.GetString(keyDest); s != "" {
		if dest, err = layout.ParseCoord(s); err != nil {
			return nil, err
		}
	}
	return pathfind.NewGrid(b.Rows, b.Cols, start, dest)
}

func readLayout(path string) (*pathfind.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	g, err := layout.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// sessionConfig turns the settings into a driver config.
func (a *app) sessionConfig() (driver.Config, error) {
	g, err := a.grid()
	if err != nil {
		return driver.Config{}, err
	}
	tb, err := pathfind.ParseTieBreak(a.v.GetString(keyTieBreak))
	if err != nil {
		return driver.Config{}, err
	}
	cfg := driver.DefaultConfig().WithGrid(g)
	cfg.TieBreak = tb
	cfg.ExpandDelay = a.v.GetDuration(keyExpandDelay)
	cfg.TraceDelay = a.v.GetDuration(keyTraceDelay)
	return cfg, nil
}
