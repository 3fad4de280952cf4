// Package flowgrid is an in-memory toolkit for routing water over
// regular-lattice terrain models — the per-step computational core of
// landscape and hydrology simulation.
//
// 🚀 What is flowgrid?
//
//	A pure-Go library that brings together:
//		• Structured grids: row-major node/link/cell indexing with halo lookups
//		• Boundary conditions: interior, fixed-value, fixed-gradient, closed
//		• Active links: the flow-eligible edge subset, re-derived on demand
//		• Gradients: signed elevation gradients over any active-link set
//		• D8 routing: steepest-descent receivers, slopes and sink flags
//
// ✨ Why choose flowgrid?
//
//   - Deterministic – explicit lowest-link-ID tie-breaking, reproducible runs
//   - Fast – O(N) precomputed topology, O(links) per routing step
//   - Pure Go – no cgo, no hidden deps
//   - Composable – results land in named per-node arrays for the next
//     pipeline stage (erosion, sediment transport, stream power)
//
// Everything is organized under two subpackages:
//
//	raster/  — rectangular lattice topology, boundary statuses, active
//	           links, gradients and the named per-node field store
//	flowdir/ — the D8 steepest-descent router and its per-step orchestrator
//
// Quick ASCII example (3×3 grid, bottom boundary open, elevation x+y):
//
//	    2───3───4
//	    │ ╲ │ ╲ │
//	    1───2───3
//	    │ ╲ │ ╲ │
//	    0───1───2
//
//	the single interior node drains diagonally to the low corner.
//
// Dive into the package docs for full examples and the exact boundary,
// tie-break and sink semantics.
//
//	go get github.com/clementinemw/flowgrid
package flowgrid
