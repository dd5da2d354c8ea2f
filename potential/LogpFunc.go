// Package potential binds a caller-supplied log-density to a mass
// matrix and implements the leapfrog integrator and energy-divergence
// detection that together define the Hamiltonian the NUTS tree
// simulates.
package potential

// LogpFunc is the external capability the sampler draws from: a
// (generally unnormalized) log-density over R^Dim() together with its
// gradient.
type LogpFunc interface {
	// Dim returns the dimension of the space logp is defined over.
	Dim() int

	// Logp writes the gradient of the log-density at q into grad, which
	// has length Dim(), and returns the log-density value itself.
	//
	// A returned error is inspected via LogpError: a recoverable error
	// becomes a divergence (the draw survives), and any other error
	// aborts the draw entirely.
	Logp(q []float64, grad []float64) (float64, error)
}

// LogpError is the error contract a LogpFunc's error must satisfy so the
// sampler can distinguish an ordinary numerical divergence (for example
// a density evaluating at a point outside its support) from a
// non-recoverable failure that should abort the draw.
type LogpError interface {
	error

	// Recoverable reports whether the failure should be treated as a
	// divergence rather than a fatal sampler error.
	Recoverable() bool
}
