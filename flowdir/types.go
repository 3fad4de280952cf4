// Package flowdir defines the interfaces, options, sentinel errors and
// result types for the flowdir subpackage of
// github.com/clementinemw/flowgrid.
package flowdir

import (
	"errors"

	"github.com/clementinemw/flowgrid/raster"
)

// Sentinel errors for flow-direction operations.
var (
	// ErrNilGrid indicates a nil grid handle at construction.
	ErrNilGrid = errors.New("flowdir: grid must not be nil")
	// ErrIrregularGrid indicates a grid without the rectilinear-lattice
	// capability: D8 routing is defined only on raster topologies, so
	// construction fails fast instead of attempting to route.
	ErrIrregularGrid = errors.New("flowdir: d8 routing requires a rectilinear raster topology")
	// ErrTopologyOutOfSync indicates an active-link set referencing nodes
	// or links outside the current tables — a desync between boundary
	// classification and topology. Fatal for the step; nothing is published.
	ErrTopologyOutOfSync = errors.New("flowdir: active links out of sync with topology")
)

// Canonical per-node field names read and written on the grid, shared
// with downstream pipeline stages.
const (
	// DefaultSurface is the elevation field routing runs over.
	DefaultSurface = "topographic__elevation"
	// FieldReceiverNode holds each node's receiver ID, the node's own ID
	// when it has no outflow.
	FieldReceiverNode = "flow__receiver_node"
	// FieldSteepestSlope holds the steepest downhill slope magnitude,
	// zero for self-receivers.
	FieldSteepestSlope = "topographic__steepest_slope"
	// FieldLinkToReceiver holds the link carrying each node's outflow,
	// -1 when there is none.
	FieldLinkToReceiver = "flow__link_to_receiver_node"
	// FieldSinkFlag marks local lows that are not base-level exits.
	FieldSinkFlag = "flow__sink_flag"
)

// Grid is the minimal surface any model grid exposes to a flow
// director: node bookkeeping, boundary statuses with a version
// counter, and the named per-node field store.
type Grid interface {
	NumNodes() int
	Statuses() []raster.NodeStatus
	BoundaryVersion() uint64
	Floats(name string) ([]float64, error)
	EnsureFloats(name string) []float64
	EnsureInts(name string) []int
	EnsureBools(name string) []bool
}

// RasterTopology is the capability D8 routing requires on top of Grid:
// the link tables and gradient evaluation of a rectilinear lattice.
// *raster.Grid implements it; an irregular (Voronoi-style) grid cannot,
// which is what makes New's capability check a construction-time
// contract rather than per-call type inspection.
type RasterTopology interface {
	Grid
	NumLinks() int
	LinkTail(l raster.Link) raster.Node
	LinkHead(l raster.Link) raster.Node
	LinkLength(l raster.Link) float64
	IncidentLinks(n raster.Node) []raster.Link
	ActiveLinks(conn raster.Connectivity) (raster.ActiveLinkSet, error)
	GradientsAtActiveLinks(elev []float64, set raster.ActiveLinkSet, out []float64) ([]float64, error)
}

// GradientFunc evaluates signed gradients (positive = uphill from tail
// to head) over an active-link set. The default is the grid's own
// GradientsAtActiveLinks; tests and alternative surface metrics may
// substitute their own.
type GradientFunc func(elev []float64, set raster.ActiveLinkSet, out []float64) ([]float64, error)

// Result holds the four parallel per-node output arrays of one routing
// pass. The arrays are allocated once (sized to node count) and fully
// overwritten on every pass.
type Result struct {
	// Receiver holds, per node, the ID of the node receiving its flow;
	// a node with no valid downhill active link receives from itself.
	Receiver []int
	// SteepestSlope holds the steepest downhill gradient magnitude,
	// ≥ 0, and 0 exactly when the node is its own receiver.
	SteepestSlope []float64
	// LinkToReceiver holds the link used to reach the receiver, or -1
	// for self-receivers.
	LinkToReceiver []int
	// Sink marks nodes that are local lows (self-receivers) and not
	// base-level boundaries.
	Sink []bool
}

// reset sizes the arrays to n nodes, reusing existing capacity.
func (r *Result) reset(n int) {
	if cap(r.Receiver) < n {
		r.Receiver = make([]int, n)
		r.SteepestSlope = make([]float64, n)
		r.LinkToReceiver = make([]int, n)
		r.Sink = make([]bool, n)
	}
	r.Receiver = r.Receiver[:n]
	r.SteepestSlope = r.SteepestSlope[:n]
	r.LinkToReceiver = r.LinkToReceiver[:n]
	r.Sink = r.Sink[:n]
}

// Option configures a Director before first use.
type Option func(*config)

type config struct {
	surface  string
	conn     raster.Connectivity
	gradient GradientFunc
	workers  int
}

func defaultConfig() config {
	return config{
		surface: DefaultSurface,
		conn:    raster.Conn8,
		workers: 1,
	}
}

// WithSurface selects the elevation field to route over
// (default "topographic__elevation"). The field must already exist on
// the grid when New is called.
func WithSurface(name string) Option {
	return func(c *config) { c.surface = name }
}

// WithConnectivity selects the link family to route over: Conn8 (the
// default, D8 routing) or Conn4 (orthogonal-only steepest descent).
func WithConnectivity(conn raster.Connectivity) Option {
	return func(c *config) { c.conn = conn }
}

// WithGradientFunc substitutes the gradient evaluator.
func WithGradientFunc(fn GradientFunc) Option {
	return func(c *config) { c.gradient = fn }
}

// WithWorkers shards the per-node routing pass across n goroutines.
// Values below 2 keep the pass serial; output is identical either way.
func WithWorkers(n int) Option {
	return func(c *config) { c.workers = n }
}
