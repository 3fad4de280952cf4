package raster_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clementinemw/flowgrid/raster"
)

//----------------------------------------------------------------------------//
// Active-link derivation
//----------------------------------------------------------------------------//

// TestActiveLinks_DefaultBoundary pins the Conn4 active set of a 3×4
// grid with the default fixed-value perimeter: exactly the links
// touching the two interior nodes 5 and 6.
func TestActiveLinks_DefaultBoundary(t *testing.T) {
	g, err := raster.New(3, 4)
	require.NoError(t, err)

	set, err := g.ActiveLinks(raster.Conn4)
	require.NoError(t, err)

	assert.Equal(t, raster.Conn4, set.Conn)
	assert.Equal(t, []raster.Link{1, 2, 5, 6, 11, 12, 13}, set.IDs)
	require.Equal(t, set.Len(), len(set.Tails))
	require.Equal(t, set.Len(), len(set.Heads))
	for i, l := range set.IDs {
		assert.Equal(t, g.LinkTail(l), set.Tails[i])
		assert.Equal(t, g.LinkHead(l), set.Heads[i])
	}
}

// TestActiveLinks_Predicate exercises the activity rule link by link:
// active iff one endpoint is interior and neither endpoint is closed.
func TestActiveLinks_Predicate(t *testing.T) {
	g, err := raster.New(3, 3)
	require.NoError(t, err)

	active := func(conn raster.Connectivity, l raster.Link) bool {
		set, err := g.ActiveLinks(conn)
		require.NoError(t, err)
		for _, id := range set.IDs {
			if id == l {
				return true
			}
		}
		return false
	}

	// Boundary–boundary link 6 (0→1, both fixed-value): never active.
	assert.False(t, active(raster.Conn4, 6))
	// Boundary–interior link 1 (1→4): active.
	assert.True(t, active(raster.Conn4, 1))
	// Diagonal 12 (0→4): active under Conn8, absent under Conn4.
	assert.True(t, active(raster.Conn8, 12))
	assert.False(t, active(raster.Conn4, 12))

	// Close node 1: link 1 dies even though node 4 stays interior.
	require.NoError(t, g.SetStatus(1, raster.StatusClosed))
	assert.False(t, active(raster.Conn4, 1))
	assert.True(t, active(raster.Conn8, 12))
}

// TestActiveLinks_Ascending confirms the deterministic ID ordering the
// tie-break rule relies on.
func TestActiveLinks_Ascending(t *testing.T) {
	g, err := raster.New(5, 5)
	require.NoError(t, err)

	set, err := g.ActiveLinks(raster.Conn8)
	require.NoError(t, err)
	require.NotEmpty(t, set.IDs)
	for i := 1; i < set.Len(); i++ {
		require.Less(t, set.IDs[i-1], set.IDs[i])
	}
}

// TestActiveLinks_BadConnectivity rejects unknown connectivity values.
func TestActiveLinks_BadConnectivity(t *testing.T) {
	g, err := raster.New(3, 3)
	require.NoError(t, err)

	_, err = g.ActiveLinks(raster.Connectivity(7))
	assert.ErrorIs(t, err, raster.ErrBadConnectivity)
}

//----------------------------------------------------------------------------//
// Version-stamped cache
//----------------------------------------------------------------------------//

// TestActiveLinks_CacheAndInvalidation verifies the derivation is
// memoized per boundary version and recomputed from scratch after any
// status mutation.
func TestActiveLinks_CacheAndInvalidation(t *testing.T) {
	g, err := raster.New(3, 3)
	require.NoError(t, err)
	v0 := g.BoundaryVersion()
	require.Equal(t, uint64(1), v0)

	first, err := g.ActiveLinks(raster.Conn8)
	require.NoError(t, err)
	again, err := g.ActiveLinks(raster.Conn8)
	require.NoError(t, err)
	assert.Equal(t, first, again)
	assert.Equal(t, v0, g.BoundaryVersion(), "reads must not advance the version")

	// Closing three sides leaves only links into the bottom row active.
	g.CloseSides(raster.SideRight | raster.SideTop | raster.SideLeft)
	assert.Equal(t, v0+1, g.BoundaryVersion())

	set, err := g.ActiveLinks(raster.Conn8)
	require.NoError(t, err)
	assert.Equal(t, []raster.Link{1, 12, 17}, set.IDs,
		"only node 4's links to the open bottom row survive")
}

// TestBoundaryMutators covers SetStatus, SetPerimeterStatus, CloseSides
// and their version accounting.
func TestBoundaryMutators(t *testing.T) {
	g, err := raster.New(4, 4)
	require.NoError(t, err)

	require.ErrorIs(t, g.SetStatus(99, raster.StatusClosed), raster.ErrNodeOutOfRange)
	require.ErrorIs(t, g.SetStatus(-1, raster.StatusClosed), raster.ErrNodeOutOfRange)

	v := g.BoundaryVersion()
	require.NoError(t, g.SetStatus(0, raster.StatusClosed))
	assert.Equal(t, v+1, g.BoundaryVersion())
	assert.Equal(t, raster.StatusClosed, g.Status(0))

	g.SetPerimeterStatus(raster.StatusFixedGradient)
	assert.Equal(t, v+2, g.BoundaryVersion())
	assert.Equal(t, raster.StatusFixedGradient, g.Status(0))
	assert.Equal(t, raster.StatusInterior, g.Status(g.Index(1, 1)))

	g.CloseSides(raster.SideBottom)
	assert.Equal(t, v+3, g.BoundaryVersion())
	for c := 0; c < 4; c++ {
		assert.Equal(t, raster.StatusClosed, g.Status(g.Index(0, c)))
	}
	assert.Equal(t, raster.StatusFixedGradient, g.Status(g.Index(1, 0)), "left side untouched")

	base := g.BaseLevelNodes()
	for _, b := range base {
		assert.True(t, g.Status(b).BaseLevel())
	}
	assert.NotContains(t, base, raster.Node(0))
}

// TestStatusBaseLevel checks the base-level predicate per status.
func TestStatusBaseLevel(t *testing.T) {
	assert.False(t, raster.StatusInterior.BaseLevel())
	assert.True(t, raster.StatusFixedValue.BaseLevel())
	assert.True(t, raster.StatusFixedGradient.BaseLevel())
	assert.False(t, raster.StatusClosed.BaseLevel())
}
