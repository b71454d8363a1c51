// Command pathviz runs and renders grid shortest-path searches.
//
//	pathviz run --rows 20 --cols 50 --walls "9,20;10,20;11,20"
//	pathviz run --layout maze.txt --frames out/ --quiet
//	pathviz check --layout maze.txt
//
// Every flag can also come from a YAML file (--config) or from the
// environment as PATHVIZ_<FLAG>, e.g. PATHVIZ_EXPAND_DELAY=0s.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "pathviz:", err)
		os.Exit(1)
	}
}
