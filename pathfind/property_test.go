package pathfind_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/gridpath/pathfind"
)

// PropertySuite checks search invariants over many random boards.
type PropertySuite struct {
	suite.Suite
	rng *rand.Rand
}

func (s *PropertySuite) SetupTest() {
	s.rng = rand.New(rand.NewSource(42))
}

// randomBoard builds a rows×cols board with random endpoints and walls at the
// given density.
func (s *PropertySuite) randomBoard(rows, cols int, density float64) *pathfind.Grid {
	start := at(s.rng.Intn(rows), s.rng.Intn(cols))
	dest := start
	for dest == start {
		dest = at(s.rng.Intn(rows), s.rng.Intn(cols))
	}
	g, err := pathfind.NewGrid(rows, cols, start, dest)
	s.Require().NoError(err)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			p := at(r, c)
			if p == start || p == dest || s.rng.Float64() >= density {
				continue
			}
			s.Require().NoError(g.ToggleObstacle(p))
		}
	}
	return g
}

func (s *PropertySuite) TestOpenBoard_ManhattanDistances() {
	for _, dims := range [][2]int{{1, 2}, {2, 2}, {3, 7}, {6, 6}, {9, 4}} {
		rows, cols := dims[0], dims[1]
		// the far corner is the unique farthest cell, so every cell settles first
		g, err := pathfind.NewGrid(rows, cols, at(0, 0), at(rows-1, cols-1))
		s.Require().NoError(err)

		steps, res := collect(s.T(), g)
		final := steps[len(steps)-1].Snapshot

		settled := 0
		for v := range final.Cells() {
			if !v.IsSettled() {
				continue
			}
			settled++
			s.Equal(v.Coord.Manhattan(at(0, 0)), v.Distance, "%dx%d cell %v", rows, cols, v.Coord)
		}
		s.Equal(rows*cols, settled)
		s.Equal(rows*cols, res.Settled)
		s.Equal(rows-1+cols-1, res.Distance)
	}
}

func (s *PropertySuite) TestSettledDistancesFreeze() {
	for i := 0; i < 40; i++ {
		g := s.randomBoard(6+s.rng.Intn(6), 6+s.rng.Intn(6), 0.25)
		steps, _ := collect(s.T(), g, pathfind.WithTieBreak(pathfind.TieBreak(i%2)))

		frozen := map[pathfind.Coord]int{}
		for _, st := range steps {
			for v := range st.Snapshot.Cells() {
				if d, ok := frozen[v.Coord]; ok {
					s.Require().True(v.IsSettled(), "step %d: %v left the settled state", st.Index, v.Coord)
					s.Require().Equal(d, v.Distance, "step %d: %v changed after settling", st.Index, v.Coord)
					continue
				}
				if v.IsSettled() {
					frozen[v.Coord] = v.Distance
				}
			}
		}
	}
}

func (s *PropertySuite) TestFrontierDistancesNeverIncrease() {
	for i := 0; i < 20; i++ {
		g := s.randomBoard(8, 8, 0.2)
		steps, _ := collect(s.T(), g)

		last := map[pathfind.Coord]int{}
		for _, st := range steps {
			for v := range st.Snapshot.Cells() {
				if !v.Reached() {
					continue
				}
				if d, ok := last[v.Coord]; ok {
					s.Require().LessOrEqual(v.Distance, d, "%v grew from %d", v.Coord, d)
				}
				last[v.Coord] = v.Distance
			}
		}
	}
}

func (s *PropertySuite) TestCompleteness() {
	noPath := 0
	for i := 0; i < 60; i++ {
		g := s.randomBoard(7, 9, 0.35)
		reach := map[pathfind.Coord]bool{}
		for _, c := range g.Reachable() {
			reach[c] = true
		}

		steps, res := collect(s.T(), g)
		final := steps[len(steps)-1].Snapshot

		s.Equal(g.Connected(), res.Found())
		settled := 0
		for v := range final.Cells() {
			if v.IsSettled() {
				settled++
				s.True(reach[v.Coord], "settled %v is not reachable", v.Coord)
			}
			if !reach[v.Coord] {
				s.False(v.Reached(), "unreachable %v got a distance", v.Coord)
			}
		}
		if !res.Found() {
			noPath++
			s.Equal(len(reach), settled, "no-path run must settle every reachable cell")
		}
	}
	s.Positive(noPath, "seed should produce at least one blocked board")
}

func (s *PropertySuite) TestPathValidity() {
	found := 0
	for i := 0; i < 60; i++ {
		g := s.randomBoard(8, 8, 0.25)
		steps, res := collect(s.T(), g)
		if !res.Found() {
			continue
		}
		found++
		final := steps[len(steps)-1].Snapshot

		s.Require().Len(res.Path, res.Distance+1)
		s.Equal(g.Start(), res.Path[0])
		s.Equal(g.Destination(), res.Path[len(res.Path)-1])
		for k := 1; k < len(res.Path); k++ {
			s.Equal(1, res.Path[k-1].Manhattan(res.Path[k]), "path must be an orthogonal chain")
			prev, _ := final.At(res.Path[k-1])
			cur, _ := final.At(res.Path[k])
			s.Equal(prev.Distance+1, cur.Distance)
		}

		s.Equal(res.Distance, final.Count(pathfind.OnPath))
		for _, c := range res.Path[:len(res.Path)-1] {
			v, _ := final.At(c)
			s.True(v.IsOnPath(), "%v should be marked", c)
		}
		s.Len(cellsOf(steps, pathfind.PhaseTrace), res.Distance)
	}
	s.Positive(found)
}

func (s *PropertySuite) TestStepShape() {
	for i := 0; i < 30; i++ {
		g := s.randomBoard(5, 5, 0.3)
		steps, res := collect(s.T(), g)

		expand := len(cellsOf(steps, pathfind.PhaseExpand))
		trace := len(cellsOf(steps, pathfind.PhaseTrace))
		s.Equal(res.Settled-1, expand)
		if res.Found() {
			s.Equal(res.Distance, trace)
		} else {
			s.Zero(trace)
		}
		s.Equal(expand+trace+1, len(steps))
		s.Equal(pathfind.PhaseDone, steps[len(steps)-1].Phase)
	}
}

func TestPropertySuite(t *testing.T) {
	suite.Run(t, new(PropertySuite))
}

func TestTieBreakPolicies_AgreeOnDistances(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 25; i++ {
		var walls []pathfind.Coord
		for r := 0; r < 8; r++ {
			for c := 0; c < 8; c++ {
				if (r == 0 && c == 0) || (r == 7 && c == 7) {
					continue
				}
				if rng.Float64() < 0.3 {
					walls = append(walls, at(r, c))
				}
			}
		}
		a, _ := pathfind.Solve(mustGrid(t, 8, 8, at(0, 0), at(7, 7), walls...))
		b, err := pathfind.Solve(mustGrid(t, 8, 8, at(0, 0), at(7, 7), walls...), pathfind.WithTieBreak(pathfind.TieBreakInsertion))
		require.NoError(t, err)
		require.Equal(t, a.Outcome, b.Outcome)
		require.Equal(t, a.Distance, b.Distance)
	}
}
