// Package gridpath runs shortest-path searches on 4-connected grids one
// observable step at a time, for animating how Dijkstra floods a board.
//
// 🚀 What is gridpath?
//
//	A small, dependency-light toolkit that brings together:
//		• Core search: a pull-based Dijkstra engine over a wall-painted grid
//		• Layouts: plain-text boards ('.', '#', 'S', 'D') and the classic 20×50 board
//		• Rendering: ASCII frames and PNG frames
//		• Driving: a session with reset/paint/find gating and paced playback
//		• CLI: pathviz run / pathviz check
//
// Everything is organized under these packages:
//
//	pathfind/     Grid, Engine, Step, Snapshot, Result (no I/O, no logging)
//	layout/       Parse / Format text boards, coordinate lists, Board defaults
//	render/       Style classification, Text sink, Painter and FrameDir (PNG)
//	driver/       Session, Config, Sink; pacing and go-kit logging
//	cmd/pathviz/  cobra/viper command line
//
// Quick ASCII example, a finished search on a 3×3 board:
//
//	S*o     S start, D destination
//	#*#     * path, o settled, # wall
//	o*D
//
//	go install github.com/katalvlaran/gridpath/cmd/pathviz@latest
package gridpath
