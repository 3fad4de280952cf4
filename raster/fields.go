package raster

// Named per-node arrays. Components read their inputs from and publish
// their outputs to this store, keyed by convention names such as
// "topographic__elevation" or "flow__receiver_node", so pipeline stages
// compose without sharing types.
//
// Ensure* calls are create-or-get: the first call allocates a
// zero-valued node-sized array, later calls return the same backing
// slice. Map access is mutex-guarded; the returned slices themselves
// follow the module's single-writer convention.

// EnsureFloats returns the float64 node field with the given name,
// creating it (zero-filled, node-sized) on first use.
func (g *Grid) EnsureFloats(name string) []float64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	if f, ok := g.floatFields[name]; ok {
		return f
	}
	f := make([]float64, g.NumNodes())
	g.floatFields[name] = f
	return f
}

// EnsureInts returns the int node field with the given name, creating
// it on first use.
func (g *Grid) EnsureInts(name string) []int {
	g.mu.Lock()
	defer g.mu.Unlock()
	if f, ok := g.intFields[name]; ok {
		return f
	}
	f := make([]int, g.NumNodes())
	g.intFields[name] = f
	return f
}

// EnsureBools returns the bool node field with the given name, creating
// it on first use.
func (g *Grid) EnsureBools(name string) []bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if f, ok := g.boolFields[name]; ok {
		return f
	}
	f := make([]bool, g.NumNodes())
	g.boolFields[name] = f
	return f
}

// Floats returns the float64 node field with the given name, or
// ErrFieldNotFound if it was never created.
func (g *Grid) Floats(name string) ([]float64, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	f, ok := g.floatFields[name]
	if !ok {
		return nil, ErrFieldNotFound
	}
	return f, nil
}

// Ints returns the int node field with the given name, or
// ErrFieldNotFound if it was never created.
func (g *Grid) Ints(name string) ([]int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	f, ok := g.intFields[name]
	if !ok {
		return nil, ErrFieldNotFound
	}
	return f, nil
}

// Bools returns the bool node field with the given name, or
// ErrFieldNotFound if it was never created.
func (g *Grid) Bools(name string) ([]bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	f, ok := g.boolFields[name]
	if !ok {
		return nil, ErrFieldNotFound
	}
	return f, nil
}

// SetFloats copies values into the named float64 field, creating it if
// needed. Returns ErrDimensionMismatch if values is not node-sized.
func (g *Grid) SetFloats(name string, values []float64) error {
	if len(values) != g.NumNodes() {
		return ErrDimensionMismatch
	}
	copy(g.EnsureFloats(name), values)
	return nil
}
