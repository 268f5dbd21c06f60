package parameters

// Iamrod2024 returns the parameter set from the Iamrod et al (2024)
// work. The transport and geometry values follow Verbrugge & Liu
// (2005); the cell-level capacitance and resistance are derived from
// them for use with the reduced models.
func Iamrod2024() Values {
	return Values{
		"chemistry": "supercapacitor",

		// cell
		"Negative electrode thickness [m]": 5e-05,
		"Separator thickness [m]":          2.5e-05,
		"Positive electrode thickness [m]": 5e-05,
		"Electrode height [m]":             2.747,
		"Electrode width [m]":              1.0,
		"Nominal cell capacity [A.h]":      5.0,
		"Current function [A]":             300.0,

		// negative electrode
		"Negative electrode conductivity [S.m-1]":                0.0521,
		"Negative electrode porosity":                            0.67,
		"Negative electrode active material volume fraction":     0.33,
		"Negative particle radius [m]":                           0.99,
		"Negative electrode Bruggeman coefficient (electrolyte)": 1.5,
		"Negative electrode Bruggeman coefficient (electrode)":   0.0,
		"Negative electrode double-layer capacity [F.m-2]":       42e6,

		// positive electrode
		"Positive electrode conductivity [S.m-1]":                0.0521,
		"Positive electrode porosity":                            0.67,
		"Positive electrode active material volume fraction":     0.33,
		"Positive particle radius [m]":                           0.99,
		"Positive electrode Bruggeman coefficient (electrolyte)": 1.5,
		"Positive electrode Bruggeman coefficient (electrode)":   0.0,
		"Positive electrode double-layer capacity [F.m-2]":       42e6,

		// separator
		"Separator porosity":                            0.6,
		"Separator Bruggeman coefficient (electrolyte)": 1.5,

		// electrolyte
		"Initial concentration in electrolyte [mol.m-3]": 930.0,
		"Cation transference number":                     0.5,
		"Thermodynamic factor":                           1.0,
		"Electrolyte diffusivity [m2.s-1]":               3.5e-11,
		"Electrolyte conductivity [S.m-1]":               0.067,

		// lumped cell, for the reduced models
		"Cell capacitance [F]":    2885.0,
		"Series resistance [Ohm]": 8.5e-4,
		"Initial voltage [V]":     0.2,

		// experiment
		"Reference temperature [K]": 298.15,
		"Ambient temperature [K]":   298.15,
		"Initial temperature [K]":   298.15,
		"Number of electrodes connected in parallel to make a cell": 1.0,
		"Number of cells connected in series to make a battery":     1.0,
		"Lower voltage cut-off [V]": 0.0,
		"Upper voltage cut-off [V]": 10.0,

		// citations
		"citations": []string{"Verbrugge2005"},
	}
}
