package flowdir

import (
	"fmt"
	"sync"

	"github.com/clementinemw/flowgrid/raster"
)

// Director finds, on every step, the single steepest-descent flow
// direction of each grid node by the D8 method (orthogonal plus
// diagonal links; Conn4 restricts to orthogonal).
//
// It owns a handle to the grid, the last boundary version it derived
// active links at, and reusable scratch buffers. Results are published
// as four named per-node fields on the grid:
//
//   - FieldReceiverNode   — receiver ID, own ID when undrained
//   - FieldSteepestSlope  — steepest downhill slope, ≥ 0
//   - FieldLinkToReceiver — link used, -1 when none
//   - FieldSinkFlag       — local low and not base level
//
// A Director starts stale: the first step always derives the active
// links. Afterwards it re-derives them only when the grid's boundary
// version has advanced, and never consults a stale set. The
// stale→fresh transition and the field publication run under one
// mutex, so a single stepping caller always sees a consistent
// snapshot.
type Director struct {
	grid RasterTopology
	cfg  config

	mu          sync.Mutex
	seenVersion uint64 // 0 = never derived; forces refresh on first use
	active      raster.ActiveLinkSet
	grads       []float64
	base        []raster.Node
	scratch     Result

	recvOut  []int
	slopeOut []float64
	linkOut  []int
	sinkOut  []bool
}

// New constructs a Director over grid g.
//
// Configuration errors abort before any routing can run:
//
//   - ErrNilGrid when g is nil;
//   - ErrIrregularGrid when g lacks the RasterTopology capability —
//     steepest-descent D8 routing is defined only on rectangular
//     lattices, irregular grids need a different director;
//   - a wrapped raster.ErrFieldNotFound when the surface field does not
//     exist on the grid yet;
//   - raster.ErrBadConnectivity for a connectivity outside Conn4/Conn8.
//
// The four output fields are created (zero-valued) at construction, so
// downstream components can bind them before the first step.
func New(g Grid, opts ...Option) (*Director, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	topo, ok := g.(RasterTopology)
	if !ok {
		return nil, ErrIrregularGrid
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.conn != raster.Conn4 && cfg.conn != raster.Conn8 {
		return nil, raster.ErrBadConnectivity
	}
	if cfg.workers < 1 {
		cfg.workers = 1
	}
	if cfg.gradient == nil {
		cfg.gradient = topo.GradientsAtActiveLinks
	}
	if _, err := topo.Floats(cfg.surface); err != nil {
		return nil, fmt.Errorf("flowdir: surface field %q: %w", cfg.surface, err)
	}

	return &Director{
		grid:     topo,
		cfg:      cfg,
		recvOut:  topo.EnsureInts(FieldReceiverNode),
		slopeOut: topo.EnsureFloats(FieldSteepestSlope),
		linkOut:  topo.EnsureInts(FieldLinkToReceiver),
		sinkOut:  topo.EnsureBools(FieldSinkFlag),
	}, nil
}

// RunOneStep routes flow once over the current elevation surface and
// publishes the four output fields. The usual per-simulation-step entry
// point.
func (d *Director) RunOneStep() error {
	_, err := d.DirectFlow()
	return err
}

// DirectFlow routes flow once and additionally returns the receiver
// array (the published field slice — read-only for callers).
//
// Steps:
//
//  1. If the grid's boundary version has advanced past the last
//     derivation, re-derive the active-link set (stale → fresh).
//  2. Evaluate signed gradients over the active links from the current
//     surface snapshot.
//  3. Collect base-level nodes: every fixed-value or fixed-gradient
//     boundary.
//  4. Route: Route computes receivers, slopes, links and sink flags
//     into director-owned scratch.
//  5. Publish all four arrays onto the grid fields. On any error the
//     step aborts before this point, so readers never see a partial
//     overwrite.
//
// Complexity: O(links) per step, plus O(links) once per boundary
// change for the re-derivation.
func (d *Director) DirectFlow() ([]int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if v := d.grid.BoundaryVersion(); v != d.seenVersion {
		set, err := d.grid.ActiveLinks(d.cfg.conn)
		if err != nil {
			return nil, err
		}
		d.active = set
		d.seenVersion = v
	}

	elev, err := d.grid.Floats(d.cfg.surface)
	if err != nil {
		return nil, fmt.Errorf("flowdir: surface field %q: %w", d.cfg.surface, err)
	}
	if len(elev) != d.grid.NumNodes() {
		return nil, ErrTopologyOutOfSync
	}

	d.grads, err = d.cfg.gradient(elev, d.active, d.grads)
	if err != nil {
		return nil, err
	}

	d.base = d.base[:0]
	for i, s := range d.grid.Statuses() {
		if s.BaseLevel() {
			d.base = append(d.base, raster.Node(i))
		}
	}

	in := RouteInput{
		Elevation: elev,
		Links:     d.active,
		Gradients: d.grads,
		BaseLevel: d.base,
		NumLinks:  d.grid.NumLinks(),
		Incident:  d.grid.IncidentLinks,
		Workers:   d.cfg.workers,
	}
	if err = Route(in, &d.scratch); err != nil {
		return nil, err
	}

	copy(d.recvOut, d.scratch.Receiver)
	copy(d.slopeOut, d.scratch.SteepestSlope)
	copy(d.linkOut, d.scratch.LinkToReceiver)
	copy(d.sinkOut, d.scratch.Sink)

	return d.recvOut, nil
}

// Surface returns the name of the elevation field being routed over.
func (d *Director) Surface() string { return d.cfg.surface }

// Connectivity returns the link family being routed over.
func (d *Director) Connectivity() raster.Connectivity { return d.cfg.conn }

// Receivers returns the published receiver field. Valid after the
// first step; read-only for callers.
func (d *Director) Receivers() []int { return d.recvOut }

// SteepestSlopes returns the published steepest-slope field.
func (d *Director) SteepestSlopes() []float64 { return d.slopeOut }

// LinksToReceiver returns the published link-to-receiver field.
func (d *Director) LinksToReceiver() []int { return d.linkOut }

// SinkFlags returns the published sink-flag field.
func (d *Director) SinkFlags() []bool { return d.sinkOut }
