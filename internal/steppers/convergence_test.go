package steppers

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/equisdel/odelab/internal/ode"
)

// finalError integrates the cooling problem with the given step size and
// returns the absolute error at the last grid point.
func finalError(s ode.Stepper, h float64) float64 {
	g, err := ode.NewGrid(0, 160, h, 47)
	Expect(err).NotTo(HaveOccurred())

	tr, err := ode.Integrate(s, coolF, g)
	Expect(err).NotTo(HaveOccurred())

	return ode.AbsError(coolSol, tr.Final())
}

var _ = Describe("global error", func() {
	DescribeTable("is ordered by method accuracy for matched h",
		func(h float64) {
			errEuler := finalError(NewEuler(), h)
			errHeun := finalError(NewHeun(), h)
			errRK4 := finalError(NewRK4(), h)

			Expect(errRK4).To(BeNumerically("<", errHeun))
			Expect(errHeun).To(BeNumerically("<", errEuler))
		},
		Entry("h=1", 1.0),
		Entry("h=0.5", 0.5),
		Entry("h=0.1", 0.1),
	)

	It("shrinks for every method as h decreases", func() {
		for _, s := range All() {
			coarse := finalError(s, 1.0)
			fine := finalError(s, 0.1)
			Expect(fine).To(BeNumerically("<", coarse),
				"%s error did not shrink with h", s.Name())
		}
	})

	It("puts RK4 within its fifth-order reach at h=1", func() {
		Expect(finalError(NewRK4(), 1.0)).To(BeNumerically("<", 1e-5))
	})

	It("keeps all methods on the same x grid", func() {
		g, err := ode.NewGrid(0, 160, 1, 47)
		Expect(err).NotTo(HaveOccurred())

		trajectories := make([]ode.Trajectory, 0, 3)
		for _, s := range All() {
			tr, err := ode.Integrate(s, coolF, g)
			Expect(err).NotTo(HaveOccurred())
			trajectories = append(trajectories, tr)
		}

		for _, tr := range trajectories[1:] {
			Expect(tr.Xs).To(Equal(trajectories[0].Xs))
		}
	})
})
