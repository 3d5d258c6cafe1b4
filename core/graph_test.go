// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph contracts used by the partition engine:
// undirected mirroring, weight validation, deterministic enumeration, batch
// removal with incident-edge cleanup, cloning and induced views.

package core_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/districtcut/core"
)

// GraphSuite runs against a fresh 4-vertex path A-B-C-D with weights 1,2,3.
type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	s.g = core.NewGraph()
	for _, e := range []struct {
		from, to string
		w        float64
	}{{"A", "B", 1}, {"B", "C", 2}, {"C", "D", 3}} {
		_, err := s.g.AddEdge(e.from, e.to, e.w)
		s.Require().NoError(err)
	}
}

func (s *GraphSuite) TestUndirectedMirror() {
	s.True(s.g.HasEdge("A", "B"))
	s.True(s.g.HasEdge("B", "A"))
	s.False(s.g.HasEdge("A", "C"))
	s.False(s.g.HasEdge("", "A"))
}

func (s *GraphSuite) TestVerticesSortedAndCounts() {
	s.Equal([]string{"A", "B", "C", "D"}, s.g.Vertices())
	s.Equal(4, s.g.VertexCount())
	s.Equal(3, s.g.EdgeCount())
}

func (s *GraphSuite) TestNeighborIDs() {
	ids, err := s.g.NeighborIDs("B")
	s.Require().NoError(err)
	s.Equal([]string{"A", "C"}, ids)

	_, err = s.g.NeighborIDs("Z")
	s.ErrorIs(err, core.ErrVertexNotFound)
	_, err = s.g.Neighbors("")
	s.ErrorIs(err, core.ErrEmptyVertexID)
}

func (s *GraphSuite) TestNeighborsOther() {
	edges, err := s.g.Neighbors("C")
	s.Require().NoError(err)
	s.Require().Len(edges, 2)
	others := []string{edges[0].Other("C"), edges[1].Other("C")}
	s.ElementsMatch([]string{"B", "D"}, others)
	s.Equal("", edges[0].Other("A"))
}

func (s *GraphSuite) TestRemoveVerticesDropsIncidentEdges() {
	before := s.g.VertexCount()
	removed := s.g.RemoveVertices("A", "B")
	s.Equal(2, removed)
	s.Equal(before-2, s.g.VertexCount())
	s.Equal(1, s.g.EdgeCount())
	s.False(s.g.HasEdge("B", "C"))
	s.True(s.g.HasEdge("C", "D"))

	ids, err := s.g.NeighborIDs("C")
	s.Require().NoError(err)
	s.Equal([]string{"D"}, ids)
}

func (s *GraphSuite) TestRemoveVerticesSkipsUnknownAndRepeated() {
	removed := s.g.RemoveVertices("A", "A", "Z", "")
	s.Equal(1, removed)
	s.Equal(3, s.g.VertexCount())
}

func (s *GraphSuite) TestRemoveVertex() {
	s.ErrorIs(s.g.RemoveVertex(""), core.ErrEmptyVertexID)
	s.ErrorIs(s.g.RemoveVertex("Z"), core.ErrVertexNotFound)
	s.NoError(s.g.RemoveVertex("C"))
	s.Equal(1, s.g.EdgeCount())
}

func (s *GraphSuite) TestRemoveEdge() {
	edges := s.g.Edges()
	s.Require().NoError(s.g.RemoveEdge(edges[0].ID))
	s.False(s.g.HasEdge("A", "B"))
	s.ErrorIs(s.g.RemoveEdge(edges[0].ID), core.ErrEdgeNotFound)
	_, err := s.g.GetEdge(edges[0].ID)
	s.ErrorIs(err, core.ErrEdgeNotFound)
}

func (s *GraphSuite) TestCutWeight() {
	s.Equal(2.0, s.g.CutWeight(map[string]bool{"A": true, "B": true}))
	s.Equal(5.0, s.g.CutWeight(map[string]bool{"C": true}))
	s.Equal(0.0, s.g.CutWeight(nil))
}

func (s *GraphSuite) TestCloneIsIndependent() {
	c := s.g.Clone()
	c.RemoveVertices("A", "B")
	s.Equal(4, s.g.VertexCount())
	s.Equal(3, s.g.EdgeCount())
	s.Equal(2, c.VertexCount())

	// Clone continues the edge ID sequence.
	eid, err := c.AddEdge("C", "X", 1)
	s.Require().NoError(err)
	s.Equal("e4", eid)
}

func (s *GraphSuite) TestInducedSubgraph() {
	sub := core.InducedSubgraph(s.g, map[string]bool{"A": true, "B": true, "D": true, "Q": true})
	s.Equal([]string{"A", "B", "D"}, sub.Vertices())
	s.Equal(1, sub.EdgeCount())
	s.True(sub.HasEdge("A", "B"))
	s.Equal(4, s.g.VertexCount())
}

func (s *GraphSuite) TestStats() {
	_ = s.g.AddVertex("Lonely")
	st := s.g.Stats()
	s.Equal(5, st.VertexCount)
	s.Equal(3, st.EdgeCount)
	s.Equal(6.0, st.TotalWeight)
	s.Equal(1, st.IsolatedCount)
	s.Equal(0, st.LoopCount)
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}

// TestAddEdge_Constraints checks weight, loop and multi-edge policies.
func TestAddEdge_Constraints(t *testing.T) {
	g := core.NewGraph()

	_, err := g.AddEdge("", "B", 1)
	require.ErrorIs(t, err, core.ErrEmptyVertexID)
	_, err = g.AddEdge("A", "B", -0.5)
	require.ErrorIs(t, err, core.ErrNegativeWeight)
	_, err = g.AddEdge("A", "B", math.NaN())
	require.ErrorIs(t, err, core.ErrBadWeight)
	_, err = g.AddEdge("A", "B", math.Inf(1))
	require.ErrorIs(t, err, core.ErrBadWeight)
	_, err = g.AddEdge("A", "A", 1)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = g.AddEdge("A", "B", 0)
	require.NoError(t, err)
	_, err = g.AddEdge("B", "A", 2)
	require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)

	multi := core.NewGraph(core.WithMultiEdges(), core.WithLoops())
	require.True(t, multi.Multigraph())
	require.True(t, multi.Looped())
	_, err = multi.AddEdge("A", "B", 1)
	require.NoError(t, err)
	_, err = multi.AddEdge("B", "A", 2)
	require.NoError(t, err)
	_, err = multi.AddEdge("A", "A", 5)
	require.NoError(t, err)

	st := multi.Stats()
	require.Equal(t, 3, st.EdgeCount)
	require.Equal(t, 1, st.LoopCount)
	// Self-loops never cross a cut.
	require.Equal(t, 3.0, multi.CutWeight(map[string]bool{"A": true}))

	require.Equal(t, 1, multi.RemoveVertices("A"))
	require.Equal(t, 0, multi.EdgeCount())
}

// TestConcurrentReadsDuringClone exercises the read-lock paths under the race detector.
func TestConcurrentReadsDuringClone(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 50; i++ {
		_, err := g.AddEdge(string(rune('a'+i%26))+"x", string(rune('a'+(i+1)%26))+"y", float64(i))
		if err != nil {
			require.ErrorIs(t, err, core.ErrMultiEdgeNotAllowed)
		}
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := g.Clone()
			_ = c.Vertices()
			_ = g.Edges()
			_ = g.Stats()
		}()
	}
	wg.Wait()
}
