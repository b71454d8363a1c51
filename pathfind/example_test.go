package pathfind_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/pathfind"
)

// ExampleSolve finds the route through the single gap in a walled row.
//
//	S . .
//	# . #
//	. . D
func ExampleSolve() {
	g, _ := pathfind.NewGrid(3, 3, pathfind.Coord{Row: 0, Col: 0}, pathfind.Coord{Row: 2, Col: 2})
	_ = g.ToggleObstacle(pathfind.Coord{Row: 1, Col: 0})
	_ = g.ToggleObstacle(pathfind.Coord{Row: 1, Col: 2})

	res, err := pathfind.Solve(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Outcome, res.Distance, res.Path)
	// Output: found 4 [(0,0) (0,1) (1,1) (2,1) (2,2)]
}

// ExampleEngine_Next pulls a run one step at a time, the way an animating
// driver does.
func ExampleEngine_Next() {
	g, _ := pathfind.NewGrid(1, 3, pathfind.Coord{Row: 0, Col: 0}, pathfind.Coord{Row: 0, Col: 2})
	e, _ := pathfind.New(g)

	for {
		st, err := e.Next()
		if err != nil {
			break // ErrExhausted
		}
		fmt.Printf("%d %s %v d=%d", st.Index, st.Phase, st.Cell, st.Distance)
		if st.Phase == pathfind.PhaseDone {
			fmt.Printf(" %s", st.Outcome)
		}
		fmt.Println()
	}
	// Output:
	// 1 expand (0,1) d=1
	// 2 expand (0,2) d=2
	// 3 trace (0,1) d=1
	// 4 trace (0,0) d=0
	// 5 done (0,2) d=2 found
}

// ExampleGrid_Reachable shows the cells connected to the start when a wall
// row cuts the board in two.
func ExampleGrid_Reachable() {
	g, _ := pathfind.NewGrid(3, 3, pathfind.Coord{Row: 0, Col: 0}, pathfind.Coord{Row: 2, Col: 2})
	for c := 0; c < 3; c++ {
		_ = g.ToggleObstacle(pathfind.Coord{Row: 1, Col: c})
	}
	fmt.Println(g.Reachable(), g.Connected())
	// Output: [(0,0) (0,1) (0,2)] false
}
