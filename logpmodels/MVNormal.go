package logpmodels

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
)

// MVNormal is a multivariate Gaussian log-density with a general
// covariance, backed by gonum/mat and gonum/stat/distmv. Unlike Normal
// and BoundedNormal, which are hand-rolled for speed in the hot test
// path, MVNormal exists to exercise the dense-covariance machinery
// the rest of this module's dependency pack provides (see
// SPEC_FULL.md's DOMAIN STACK section); it is not on the hot path of
// any test.
type MVNormal struct {
	dim  int
	mean []float64
	dist *distmv.Normal

	// precision is Sigma^-1, precomputed once so Logp's gradient is a
	// single matrix-vector product per call.
	precision *mat.SymDense
}

// NewMVNormal returns an MVNormal log-density with the given mean and
// covariance. It returns an error if cov is not symmetric positive
// definite.
func NewMVNormal(mean []float64, cov *mat.SymDense, src rand.Source) (*MVNormal, error) {
	dist, ok := distmv.NewNormal(mean, cov, src)
	if !ok {
		return nil, fmt.Errorf("logpmodels: NewMVNormal: covariance is not positive definite")
	}

	dim := len(mean)
	var chol mat.Cholesky
	if ok := chol.Factorize(cov); !ok {
		return nil, fmt.Errorf("logpmodels: NewMVNormal: covariance is not positive definite")
	}
	var precision mat.SymDense
	if err := chol.InverseTo(&precision); err != nil {
		return nil, fmt.Errorf("logpmodels: NewMVNormal: inverting covariance: %w", err)
	}

	return &MVNormal{
		dim:       dim,
		mean:      append([]float64(nil), mean...),
		dist:      dist,
		precision: &precision,
	}, nil
}

// Dim returns the dimension of this density.
func (n *MVNormal) Dim() int {
	return n.dim
}

// Logp writes the gradient of log p at position into grad and returns
// the normalized log-density from distmv.Normal.
func (n *MVNormal) Logp(position []float64, grad []float64) (float64, error) {
	centered := make([]float64, n.dim)
	for i := range centered {
		centered[i] = position[i] - n.mean[i]
	}

	g := mat.NewVecDense(n.dim, grad)
	g.MulVec(n.precision, mat.NewVecDense(n.dim, centered))
	for i := range grad {
		grad[i] = -grad[i]
	}

	return n.dist.LogProb(position), nil
}
