package nutsstate

// State is an owning handle to a pooled InnerState. A State is the unit
// of currency passed around the NUTS tree: leapfrog produces a new
// State, the tree clones States to keep its left/right boundary and
// candidate draw alive simultaneously, and a State is released back to
// its pool once nothing in the tree references it any longer.
//
// Each State owns its InnerState buffer exclusively: Clone always
// performs a deep copy into a freshly pooled buffer rather than
// aliasing the source, so a State's buffer is never visible through any
// other live State. This is the "single-owner deep-copy" strategy noted
// as a valid alternative to reference-counted copy-on-write sharing;
// see DESIGN.md for the tradeoff.
type State struct {
	inner *InnerState
	pool  *StatePool
}

// New allocates a fresh, zeroed State from pool.
func New(pool *StatePool) State {
	return State{inner: pool.get(), pool: pool}
}

// Inner returns the InnerState this State owns, for in-place mutation.
// The returned pointer is invalidated by a call to Release.
func (s State) Inner() *InnerState {
	return s.inner
}

// Clone returns an independent deep copy of s, backed by a separate
// pooled buffer.
func (s State) Clone() State {
	out := New(s.pool)
	out.inner.copyFrom(s.inner)
	return out
}

// Release returns s's buffer to its pool. s must not be used afterward.
func (s State) Release() {
	s.pool.put(s.inner)
}

// WritePosition copies s's position into out, which must have length
// s.Inner().Dim.
func (s State) WritePosition(out []float64) {
	copy(out, s.inner.Q)
}

// Energy returns the total Hamiltonian energy of the underlying state.
func (s State) Energy() float64 {
	return s.inner.Energy()
}

// LogAcceptanceProbability returns the underlying state's log-acceptance
// weight relative to initialEnergy.
func (s State) LogAcceptanceProbability(initialEnergy float64) float64 {
	return s.inner.LogAcceptanceProbability(initialEnergy)
}

// IdxInTrajectory returns the underlying state's signed offset from the
// trajectory origin.
func (s State) IdxInTrajectory() int64 {
	return s.inner.IdxInTrajectory
}
