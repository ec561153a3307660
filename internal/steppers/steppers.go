package steppers

import (
	"fmt"

	"github.com/equisdel/odelab/internal/ode"
)

// All returns the three methods in accuracy order, least accurate first.
func All() []ode.Stepper {
	return []ode.Stepper{NewEuler(), NewHeun(), NewRK4()}
}

// ByName resolves a method name as used on the command line and in
// config files.
func ByName(name string) (ode.Stepper, error) {
	switch name {
	case "euler":
		return NewEuler(), nil
	case "heun":
		return NewHeun(), nil
	case "rk4":
		return NewRK4(), nil
	}
	return nil, fmt.Errorf("unknown method: %s", name)
}

// Names returns the canonical method names in the same order as All.
func Names() []string {
	return []string{"euler", "heun", "rk4"}
}
