// Package flowdir computes single-path ("steepest descent") flow
// directions over a raster grid by the D8 method: every node drains
// across at most one of its eight links — four orthogonal, four
// diagonal — toward the neighbor with the steepest downhill gradient.
//
// What:
//
//   - Route is the pure, stateless routing pass: active links plus
//     signed gradients plus base-level nodes in; receivers, steepest
//     slopes, receiver links and sink flags out.
//   - Director orchestrates one pass per simulation step: it detects
//     boundary-condition changes through the grid's boundary version,
//     lazily re-derives the active-link set, evaluates gradients,
//     routes, and publishes the four per-node output fields.
//
// Why:
//
//   - Flow routing is the kernel of landscape evolution: erosion,
//     sediment transport and stream-power laws all consume the
//     receiver/slope arrays, recomputed as topography evolves.
//
// Semantics worth knowing:
//
//   - Ties break to the lowest link ID; orthogonal links are numbered
//     before diagonals, so orthogonal flow wins over an equally steep
//     diagonal. Reproducible by construction, not by container order.
//   - A node with no downhill active link receives from itself with
//     slope 0 and link -1; it is a sink unless it is base level.
//   - Base-level nodes (fixed-value/fixed-gradient boundaries) absorb
//     neighbors' flow, always self-receive, and are never sinks.
//   - The per-node pass has no cross-node ordering dependency; the
//     Workers option shards it across goroutines with identical output.
//
// Complexity:
//
//   - Route:      O(links + nodes·degree) time, O(links) scratch.
//   - DirectFlow: O(links) per step; active-link re-derivation only on
//     boundary change.
//
// Errors:
//
//   - ErrNilGrid, ErrIrregularGrid: configuration errors at New.
//   - ErrTopologyOutOfSync: invariant violation, aborts the step with
//     nothing published.
//
// See raster for the lattice model the director runs against.
package flowdir
