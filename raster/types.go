// Package raster defines core types, options, and sentinel errors
// for the raster subpackage of github.com/clementinemw/flowgrid.
package raster

import (
	"errors"
	"fmt"
)

// Sentinel errors for raster grid operations.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("raster: grid must have at least one row and one column")
	// ErrBadSpacing indicates a non-positive node spacing.
	ErrBadSpacing = errors.New("raster: node spacing must be positive")
	// ErrNodeOutOfRange indicates a node ID outside [0, NumNodes).
	ErrNodeOutOfRange = errors.New("raster: node ID out of range")
	// ErrLinkOutOfRange indicates a link ID outside [0, NumLinks).
	ErrLinkOutOfRange = errors.New("raster: link ID out of range")
	// ErrDimensionMismatch indicates a per-node array whose length differs
	// from the grid's node count.
	ErrDimensionMismatch = errors.New("raster: array length does not match node count")
	// ErrFieldNotFound indicates a named per-node field that has not been created.
	ErrFieldNotFound = errors.New("raster: node field not found")
	// ErrBadConnectivity indicates a Connectivity value other than Conn4 or Conn8.
	ErrBadConnectivity = errors.New("raster: connectivity must be Conn4 or Conn8")
)

// Node is a dense node index in [0, NumNodes), row-major from the
// grid's south-west corner. NoNode marks the absence of a node
// (an off-grid halo neighbor).
type Node int

// NoNode is the named sentinel for "no node here". It is what halo
// neighbor queries return for off-grid positions, preserving the
// legacy bad-index encoding (-1) when written to plain int arrays.
const NoNode Node = -1

// Valid reports whether n refers to an actual node.
func (n Node) Valid() bool { return n >= 0 }

// Link is a dense directed-edge index in [0, NumLinks). Orthogonal
// links are numbered before diagonal links (see Grid). NoLink marks
// the absence of a link.
type Link int

// NoLink is the named sentinel for "no link here", e.g. the
// link-to-receiver entry of a node that drains to itself.
const NoLink Link = -1

// Valid reports whether l refers to an actual link.
func (l Link) Valid() bool { return l >= 0 }

// NodeStatus classifies a node's boundary condition. Exactly one
// status applies to every node; it changes only through explicit
// boundary operations (SetStatus, SetPerimeterStatus, CloseSides).
type NodeStatus uint8

const (
	// StatusInterior marks a core node: flow may enter and leave it.
	StatusInterior NodeStatus = iota
	// StatusFixedValue marks an open boundary holding a fixed value.
	// Fixed-value nodes absorb flow (base level) but never drain further.
	StatusFixedValue
	// StatusFixedGradient marks an open boundary holding a fixed gradient.
	// Like fixed-value nodes, these are base-level flow exits.
	StatusFixedGradient
	// StatusClosed marks an inactive boundary: no link touching a closed
	// node may carry flow.
	StatusClosed
)

// BaseLevel reports whether the status marks a legitimate flow exit:
// a fixed-value or fixed-gradient boundary.
func (s NodeStatus) BaseLevel() bool {
	return s == StatusFixedValue || s == StatusFixedGradient
}

// String implements fmt.Stringer.
func (s NodeStatus) String() string {
	switch s {
	case StatusInterior:
		return "interior"
	case StatusFixedValue:
		return "fixed-value"
	case StatusFixedGradient:
		return "fixed-gradient"
	case StatusClosed:
		return "closed"
	default:
		return fmt.Sprintf("NodeStatus(%d)", uint8(s))
	}
}

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String implements fmt.Stringer.
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "D4"
	case Conn8:
		return "D8"
	default:
		return fmt.Sprintf("Connectivity(%d)", int(c))
	}
}

// Side is a bitmask of grid perimeter sides, used to close several
// boundaries in one call.
type Side uint8

const (
	// SideRight is the east edge (highest column).
	SideRight Side = 1 << iota
	// SideTop is the north edge (highest row).
	SideTop
	// SideLeft is the west edge (column zero).
	SideLeft
	// SideBottom is the south edge (row zero).
	SideBottom

	// AllSides selects the whole perimeter.
	AllSides = SideRight | SideTop | SideLeft | SideBottom
)

// ActiveLinkSet is the flow-eligible subset of links under the current
// boundary statuses, with its tail/head sub-tables. IDs are in strictly
// ascending order, which downstream steepest-descent tie-breaking
// relies on. The slices are shared with the grid's cache: treat them
// as read-only.
type ActiveLinkSet struct {
	// Conn records which link family was scanned (Conn4: orthogonal
	// links only; Conn8: orthogonal plus diagonal).
	Conn Connectivity
	// IDs holds the active link IDs, ascending.
	IDs []Link
	// Tails holds the tail node of each entry of IDs.
	Tails []Node
	// Heads holds the head node of each entry of IDs.
	Heads []Node
}

// Len returns the number of active links in the set.
func (s ActiveLinkSet) Len() int { return len(s.IDs) }

// Option configures a Grid before construction.
type Option func(*options)

type options struct {
	spacing   float64
	originX   float64
	originY   float64
	perimeter NodeStatus
}

func defaultOptions() options {
	return options{
		spacing:   1.0,
		perimeter: StatusFixedValue,
	}
}

// WithSpacing sets the uniform node spacing (default 1.0).
// Orthogonal links have length spacing; diagonal links spacing·√2.
func WithSpacing(dx float64) Option {
	return func(o *options) { o.spacing = dx }
}

// WithOrigin sets the Cartesian coordinates of node 0, the south-west
// corner (default 0,0).
func WithOrigin(x, y float64) Option {
	return func(o *options) { o.originX, o.originY = x, y }
}

// WithBoundaryStatus sets the initial status of every perimeter node
// (default StatusFixedValue). Interior nodes always start as
// StatusInterior.
func WithBoundaryStatus(s NodeStatus) Option {
	return func(o *options) { o.perimeter = s }
}
