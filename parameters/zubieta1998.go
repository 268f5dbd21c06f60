package parameters

// Zubieta1998 returns lumped values from the Zubieta & Bonert (1998)
// characterization of a large carbon double-layer capacitor. The set
// carries no porous-electrode entries, so it closes the reservoir
// model only.
func Zubieta1998() Values {
	return Values{
		"chemistry": "supercapacitor",

		// cell
		"Nominal cell capacity [A.h]": 0.33,
		"Current function [A]":        10.0,

		// lumped cell
		"Cell capacitance [F]":    470.0,
		"Series resistance [Ohm]": 2.5e-3,
		"Initial voltage [V]":     2.5,

		// experiment
		"Reference temperature [K]": 298.15,
		"Ambient temperature [K]":   298.15,
		"Initial temperature [K]":   298.15,
		"Number of electrodes connected in parallel to make a cell": 1.0,
		"Number of cells connected in series to make a battery":     1.0,
		"Lower voltage cut-off [V]": 0.0,
		"Upper voltage cut-off [V]": 2.7,

		// citations
		"citations": []string{"Zubieta1998"},
	}
}
