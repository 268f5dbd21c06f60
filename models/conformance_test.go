package models_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/mmsg-warwick/supercapacitors/eqn"
	"github.com/mmsg-warwick/supercapacitors/models"
	"github.com/mmsg-warwick/supercapacitors/parameters"
)

// Supported pairings: every set closes the reservoir model; the porous
// sets close everything. zubieta1998 is lumped-only, so it appears
// under the reservoir model alone.
var pairings = []struct {
	model string
	build func() *eqn.Model
	sets  map[string]func() parameters.Values
}{
	{
		model: "reservoir",
		build: models.Reservoir,
		sets: map[string]func() parameters.Values{
			"iamrod2024":    parameters.Iamrod2024,
			"verbrugge2005": parameters.Verbrugge2005,
			"zubieta1998":   parameters.Zubieta1998,
		},
	},
	{
		model: "single-particle",
		build: models.SingleParticle,
		sets: map[string]func() parameters.Values{
			"iamrod2024":    parameters.Iamrod2024,
			"verbrugge2005": parameters.Verbrugge2005,
		},
	},
	{
		model: "verbrugge-liu",
		build: models.VerbruggeLiu,
		sets: map[string]func() parameters.Values{
			"iamrod2024":    parameters.Iamrod2024,
			"verbrugge2005": parameters.Verbrugge2005,
		},
	},
}

var _ = Describe("model conformance", func() {
	for _, p := range pairings {
		Describe(p.model, func() {
			build := p.build

			It("is structurally valid", func() {
				Expect(build().Validate()).To(Succeed())
			})

			It("reports a terminal voltage", func() {
				Expect(build().Outputs).To(HaveKey("Voltage [V]"))
				Expect(build().Outputs).To(HaveKey("Battery voltage [V]"))
			})

			It("tracks discharge capacity from zero", func() {
				m := build()
				Expect(m.RHS).To(HaveKey("Discharge capacity [A.h]"))
				Expect(m.InitialConditions["Discharge capacity [A.h]"].String()).To(Equal("0"))
			})

			It("declares both voltage cut-off events", func() {
				names := []string{}
				for _, ev := range build().Events {
					names = append(names, ev.Name)
				}
				Expect(names).To(ConsistOf("Minimum voltage", "Maximum voltage"))
			})

			for name, load := range p.sets {
				name, load := name, load
				It("is closed by the "+name+" parameter set", func() {
					Expect(eqn.ValidatePair(build(), load())).To(Succeed())
				})
			}
		})
	}
})

var _ = Describe("the zubieta1998 set", func() {
	It("does not close the porous-electrode models", func() {
		for _, build := range []func() *eqn.Model{models.SingleParticle, models.VerbruggeLiu} {
			err := eqn.ValidatePair(build(), parameters.Zubieta1998())
			Expect(err).To(MatchError(eqn.ErrMissingParameter))
			Expect(err.Error()).To(ContainSubstring("Negative electrode porosity"))
		}
	})
})
