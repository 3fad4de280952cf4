package raster_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clementinemw/flowgrid/raster"
)

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects degenerate shapes and spacings.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
		opts       []raster.Option
		err        error
	}{
		{"ZeroRows", 0, 4, nil, raster.ErrEmptyGrid},
		{"ZeroCols", 3, 0, nil, raster.ErrEmptyGrid},
		{"NegativeRows", -1, 4, nil, raster.ErrEmptyGrid},
		{"ZeroSpacing", 3, 3, []raster.Option{raster.WithSpacing(0)}, raster.ErrBadSpacing},
		{"NegativeSpacing", 3, 3, []raster.Option{raster.WithSpacing(-2)}, raster.ErrBadSpacing},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := raster.New(tc.rows, tc.cols, tc.opts...)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%d,%d) error = %v; want %v", tc.rows, tc.cols, err, tc.err)
			}
		})
	}
}

// TestIndexCoordinate checks the row-major round trip on a 3×4 grid.
func TestIndexCoordinate(t *testing.T) {
	g, err := raster.New(3, 4)
	require.NoError(t, err)

	require.Equal(t, 12, g.NumNodes())
	for r := 0; r < 3; r++ {
		for c := 0; c < 4; c++ {
			id := g.Index(r, c)
			rr, cc := g.Coordinate(id)
			assert.Equal(t, r, rr)
			assert.Equal(t, c, cc)
		}
	}
	assert.Equal(t, raster.Node(0), g.Index(0, 0))
	assert.Equal(t, raster.Node(11), g.Index(2, 3))

	assert.True(t, g.InBounds(2, 3))
	assert.False(t, g.InBounds(3, 0))
	assert.False(t, g.InBounds(0, 4))
	assert.False(t, g.InBounds(-1, 0))
}

// TestCoordinates verifies node positions under spacing and origin options.
func TestCoordinates(t *testing.T) {
	g, err := raster.New(2, 3, raster.WithSpacing(2.5), raster.WithOrigin(10, 20))
	require.NoError(t, err)

	assert.Equal(t, 10.0, g.NodeX(0))
	assert.Equal(t, 20.0, g.NodeY(0))
	assert.Equal(t, 15.0, g.NodeX(g.Index(0, 2)))
	assert.Equal(t, 22.5, g.NodeY(g.Index(1, 0)))
}

// TestBoundaryInteriorNodes checks the perimeter/interior partition of a
// 3×4 grid: boundary [0..4,7..11], interior [5,6].
func TestBoundaryInteriorNodes(t *testing.T) {
	g, err := raster.New(3, 4)
	require.NoError(t, err)

	wantBoundary := []raster.Node{0, 1, 2, 3, 4, 7, 8, 9, 10, 11}
	assert.Equal(t, wantBoundary, g.BoundaryNodes())
	assert.Equal(t, []raster.Node{5, 6}, g.InteriorNodes())

	for _, b := range wantBoundary {
		assert.Equal(t, raster.StatusFixedValue, g.Status(b), "boundary node %d", b)
	}
	assert.Equal(t, raster.StatusInterior, g.Status(5))
	assert.Equal(t, raster.StatusInterior, g.Status(6))
}

// TestDegenerateShapes covers 1×N and N×1 lattices: all nodes on the
// perimeter, no diagonal links.
func TestDegenerateShapes(t *testing.T) {
	g, err := raster.New(1, 5)
	require.NoError(t, err)
	assert.Len(t, g.BoundaryNodes(), 5)
	assert.Empty(t, g.InteriorNodes())
	assert.Equal(t, 4, g.NumLinks()) // horizontal only
	assert.Equal(t, 0, g.NumDiagonalLinks())
}

//----------------------------------------------------------------------------//
// Link tables
//----------------------------------------------------------------------------//

// TestLinkNumbering pins the link ID layout of a 3×3 grid: vertical 0-5,
// horizontal 6-11, NE diagonal 12-15, NW diagonal 16-19. The diagonal
// numbering in particular is load-bearing: receiver-link IDs reported to
// downstream components depend on it.
func TestLinkNumbering(t *testing.T) {
	g, err := raster.New(3, 3)
	require.NoError(t, err)

	require.Equal(t, 20, g.NumLinks())
	require.Equal(t, 12, g.NumOrthogonalLinks())
	require.Equal(t, 8, g.NumDiagonalLinks())

	type pair struct {
		tail, head raster.Node
	}
	want := map[raster.Link]pair{
		0:  {0, 3}, // vertical
		5:  {5, 8},
		6:  {0, 1}, // horizontal
		11: {7, 8},
		12: {0, 4}, // NE diagonals
		13: {1, 5},
		14: {3, 7},
		15: {4, 8},
		16: {1, 3}, // NW diagonals
		17: {2, 4},
		18: {4, 6},
		19: {5, 7},
	}
	for l, p := range want {
		assert.Equal(t, p.tail, g.LinkTail(l), "tail of link %d", l)
		assert.Equal(t, p.head, g.LinkHead(l), "head of link %d", l)
	}

	assert.False(t, g.IsDiagonal(11))
	assert.True(t, g.IsDiagonal(12))
}

// TestLinkLengths checks orthogonal vs diagonal lengths under spacing.
func TestLinkLengths(t *testing.T) {
	g, err := raster.New(3, 3, raster.WithSpacing(2))
	require.NoError(t, err)

	assert.Equal(t, 2.0, g.LinkLength(0))
	assert.Equal(t, 2.0, g.LinkLength(6))
	assert.InDelta(t, 2*math.Sqrt2, g.LinkLength(12), 1e-12)
}

// TestIncidentLinks verifies per-node link lists are complete and sorted
// ascending; the steepest-descent tie-break depends on the order.
func TestIncidentLinks(t *testing.T) {
	g, err := raster.New(3, 3)
	require.NoError(t, err)

	// Center node 4 touches two vertical (1, 4), two horizontal (8, 9)
	// and four diagonal links (12, 15, 17, 18).
	assert.Equal(t, []raster.Link{1, 4, 8, 9, 12, 15, 17, 18}, g.IncidentLinks(4))

	// Corner node 0: vertical 0, horizontal 6, NE diagonal 12.
	assert.Equal(t, []raster.Link{0, 6, 12}, g.IncidentLinks(0))

	for n := 0; n < g.NumNodes(); n++ {
		links := g.IncidentLinks(raster.Node(n))
		for i := 1; i < len(links); i++ {
			require.Less(t, links[i-1], links[i], "incident links of node %d not ascending", n)
		}
		for _, l := range links {
			ok := g.LinkTail(l) == raster.Node(n) || g.LinkHead(l) == raster.Node(n)
			require.True(t, ok, "link %d listed on node %d but does not touch it", l, n)
		}
	}
}

// TestInOutLinks checks the tail/head split of the per-node lists.
func TestInOutLinks(t *testing.T) {
	g, err := raster.New(3, 3)
	require.NoError(t, err)

	assert.Equal(t, []raster.Link{0, 6, 12}, g.OutLinks(0))
	assert.Empty(t, g.InLinks(0))
	assert.Equal(t, []raster.Link{4, 9, 15, 18}, g.OutLinks(4))
	assert.Equal(t, []raster.Link{1, 8, 12, 17}, g.InLinks(4))

	assert.Equal(t, raster.Node(4), g.LinkOtherEnd(12, 0))
	assert.Equal(t, raster.Node(0), g.LinkOtherEnd(12, 4))
}

//----------------------------------------------------------------------------//
// Halo neighbor lookups
//----------------------------------------------------------------------------//

// TestNeighbors4 checks the [E, N, W, S] neighbor order and the NoNode
// sentinel for off-grid positions.
func TestNeighbors4(t *testing.T) {
	g, err := raster.New(2, 3)
	require.NoError(t, err)

	assert.Equal(t, [4]raster.Node{1, 3, raster.NoNode, raster.NoNode}, g.Neighbors4(0))
	assert.Equal(t, [4]raster.Node{2, 4, 0, raster.NoNode}, g.Neighbors4(1))
	assert.Equal(t, [4]raster.Node{raster.NoNode, raster.NoNode, 4, 2}, g.Neighbors4(5))
}

// TestDiagonals checks the [NE, NW, SW, SE] diagonal order and sentinels.
func TestDiagonals(t *testing.T) {
	g, err := raster.New(2, 3)
	require.NoError(t, err)

	assert.Equal(t, [4]raster.Node{4, raster.NoNode, raster.NoNode, raster.NoNode}, g.Diagonals(0))
	assert.Equal(t, [4]raster.Node{5, 3, raster.NoNode, raster.NoNode}, g.Diagonals(1))
	assert.Equal(t, [4]raster.Node{raster.NoNode, raster.NoNode, 1, raster.NoNode}, g.Diagonals(5))

	assert.False(t, raster.NoNode.Valid())
	assert.True(t, raster.Node(0).Valid())
}

// TestHasBoundaryNeighbor distinguishes deep-interior nodes from nodes
// adjacent to the perimeter.
func TestHasBoundaryNeighbor(t *testing.T) {
	g, err := raster.New(5, 5)
	require.NoError(t, err)

	assert.True(t, g.HasBoundaryNeighbor(g.Index(1, 1)))
	assert.False(t, g.HasBoundaryNeighbor(g.Index(2, 2)))
}
