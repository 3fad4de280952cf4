package raster

// GradientsAtActiveLinks evaluates the signed elevation gradient across
// each link of the set: (elev[head] − elev[tail]) / LinkLength, so a
// positive entry means uphill in the tail→head direction. Flow
// directors negate it to obtain the downhill slope leaving the tail.
//
// out, when non-nil and large enough, receives the gradients and is
// returned resliced to set.Len(); otherwise a fresh slice is allocated.
//
// Returns ErrDimensionMismatch if elev is not node-sized, and
// ErrLinkOutOfRange if the set references a link this grid does not
// have — the latter signals a topology/classifier desync and the
// caller must treat it as fatal for the current step.
//
// Complexity: O(set.Len()).
func (g *Grid) GradientsAtActiveLinks(elev []float64, set ActiveLinkSet, out []float64) ([]float64, error) {
	if len(elev) != g.NumNodes() {
		return nil, ErrDimensionMismatch
	}
	if cap(out) < set.Len() {
		out = make([]float64, set.Len())
	}
	out = out[:set.Len()]
	for i, l := range set.IDs {
		if int(l) < 0 || int(l) >= len(g.linkTail) {
			return nil, ErrLinkOutOfRange
		}
		tail, head := g.linkTail[l], g.linkHead[l]
		out[i] = (elev[head] - elev[tail]) / g.linkLen[l]
	}
	return out, nil
}
