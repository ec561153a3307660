package ode

import "errors"

// Domain errors for grid construction and integration.
var (
	// ErrZeroStep indicates a step size of zero; no grid can be derived.
	ErrZeroStep = errors.New("ode: step size is zero")

	// ErrNegativeSpan indicates h points away from xf, which would make
	// the derived step count negative.
	ErrNegativeSpan = errors.New("ode: step size opposes the integration direction")
)
