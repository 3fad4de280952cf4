// Package raster models a rectangular lattice — nodes, orthogonal and
// diagonal links, boundary statuses — as the substrate for structured-grid
// flow routing.
//
// What:
//
//   - Grid precomputes all index arithmetic once: row-major node IDs,
//     link tail/head/length tables, per-node incident/in/out link lists,
//     and halo-padded neighbor and diagonal lookups (off-grid → NoNode).
//   - Every node carries one NodeStatus (interior, fixed-value,
//     fixed-gradient, closed); statuses are the only mutable grid state
//     and every mutation advances BoundaryVersion.
//   - ActiveLinks derives the flow-eligible link subset for Conn4 or
//     Conn8 from the current statuses, memoized per boundary version.
//   - GradientsAtActiveLinks evaluates signed elevation gradients over
//     any active-link set.
//   - A named per-node field store (Ensure*/Floats/Ints/Bools) carries
//     component inputs and outputs between pipeline stages.
//
// Why:
//
//   - Landscape evolution: every erosion or transport step starts from
//     a fresh flow-routing pass over the current topography.
//   - Hydrology: active links and base-level boundaries encode which
//     edges of the model may carry or absorb flow.
//
// Link numbering (rows R, cols C):
//
//	vertical    [0, C·(R-1))                 tail (r,c) → head (r+1,c)
//	horizontal  [C·(R-1), C·(R-1)+R·(C-1))   tail (r,c) → head (r,c+1)
//	NE diagonal                              tail (r,c) → head (r+1,c+1)
//	NW diagonal                              tail (r,c) → head (r+1,c-1)
//
// Orthogonal IDs always precede diagonal IDs, so lowest-link-ID
// tie-breaking prefers orthogonal flow over an equally steep diagonal.
//
// Complexity:
//
//   - New:                    O(R·C) time and memory, read-only afterwards.
//   - ActiveLinks:            O(NumLinks) on refresh, O(1) on a cache hit.
//   - GradientsAtActiveLinks: O(active links).
//   - All per-node/per-link lookups: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: fewer than one row or column.
//   - ErrBadSpacing: non-positive spacing option.
//   - ErrNodeOutOfRange / ErrLinkOutOfRange: handle outside the tables.
//   - ErrDimensionMismatch: per-node array of the wrong length.
//   - ErrFieldNotFound: named node field never created.
//   - ErrBadConnectivity: connectivity other than Conn4 or Conn8.
package raster
