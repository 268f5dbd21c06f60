package models

import "github.com/mmsg-warwick/supercapacitors/eqn"

// SingleParticle builds the reduced single-particle analogue. Each
// electrode charges its double layer uniformly, so the two
// electrode/electrolyte potential differences become time-only states,
// and the electrolyte contributes a Bruggeman-corrected ohmic drop to
// the terminal voltage.
func SingleParticle() *eqn.Model {
	m := eqn.NewModel("Single particle analogue")

	q := m.Declare("Discharge capacity [A.h]")
	dPhiN := m.Declare("Negative electrode potential difference [V]")
	dPhiP := m.Declare("Positive electrode potential difference [V]")

	tempK := eqn.Param("Initial temperature [K]")
	current := eqn.Function("Current function [A]", eqn.T())
	area := eqn.Mul(eqn.Param("Electrode height [m]"), eqn.Param("Electrode width [m]"))

	ln := eqn.Param("Negative electrode thickness [m]")
	ls := eqn.Param("Separator thickness [m]")
	lp := eqn.Param("Positive electrode thickness [m]")

	// Specific surface area a = 3*eps_s/R for each electrode.
	aN := eqn.DivBy(
		eqn.Mul(eqn.C(3), eqn.Param("Negative electrode active material volume fraction")),
		eqn.Param("Negative particle radius [m]"),
	)
	aP := eqn.DivBy(
		eqn.Mul(eqn.C(3), eqn.Param("Positive electrode active material volume fraction")),
		eqn.Param("Positive particle radius [m]"),
	)

	cdlN := eqn.Function("Negative electrode double-layer capacity [F.m-2]", tempK)
	cdlP := eqn.Function("Positive electrode double-layer capacity [F.m-2]", tempK)

	// Total double-layer capacitance of each electrode.
	capN := eqn.Mul(aN, cdlN, ln, area)
	capP := eqn.Mul(aP, cdlP, lp, area)

	m.RHS["Discharge capacity [A.h]"] = eqn.DivBy(current, eqn.C(3600))
	m.InitialConditions["Discharge capacity [A.h]"] = eqn.C(0)

	m.RHS["Negative electrode potential difference [V]"] = eqn.DivBy(current, capN)
	m.InitialConditions["Negative electrode potential difference [V]"] = eqn.C(-0.1)

	m.RHS["Positive electrode potential difference [V]"] = eqn.Neg(eqn.DivBy(current, capP))
	m.InitialConditions["Positive electrode potential difference [V]"] = eqn.C(0.1)

	// Ohmic resistance of the electrolyte and solid paths. Electrode
	// contributions carry the 1/3 factor from the uniform-current
	// profile.
	cInit := eqn.Param("Initial concentration in electrolyte [mol.m-3]")
	kappa := eqn.Function("Electrolyte conductivity [S.m-1]", cInit, tempK)

	kappaEffN := eqn.Mul(kappa, eqn.Pow(
		eqn.Param("Negative electrode porosity"),
		eqn.Param("Negative electrode Bruggeman coefficient (electrolyte)"),
	))
	kappaEffS := eqn.Mul(kappa, eqn.Pow(
		eqn.Param("Separator porosity"),
		eqn.Param("Separator Bruggeman coefficient (electrolyte)"),
	))
	kappaEffP := eqn.Mul(kappa, eqn.Pow(
		eqn.Param("Positive electrode porosity"),
		eqn.Param("Positive electrode Bruggeman coefficient (electrolyte)"),
	))

	sigmaEffN := eqn.Mul(eqn.Param("Negative electrode conductivity [S.m-1]"), eqn.Pow(
		eqn.Param("Negative electrode active material volume fraction"),
		eqn.Param("Negative electrode Bruggeman coefficient (electrode)"),
	))
	sigmaEffP := eqn.Mul(eqn.Param("Positive electrode conductivity [S.m-1]"), eqn.Pow(
		eqn.Param("Positive electrode active material volume fraction"),
		eqn.Param("Positive electrode Bruggeman coefficient (electrode)"),
	))

	third := eqn.C(1.0 / 3.0)
	rOhm := eqn.DivBy(
		eqn.Add(
			eqn.Mul(third, ln, eqn.Add(eqn.DivBy(eqn.C(1), kappaEffN), eqn.DivBy(eqn.C(1), sigmaEffN))),
			eqn.DivBy(ls, kappaEffS),
			eqn.Mul(third, lp, eqn.Add(eqn.DivBy(eqn.C(1), kappaEffP), eqn.DivBy(eqn.C(1), sigmaEffP))),
		),
		area,
	)

	voltage := eqn.Sub(eqn.Sub(dPhiP, dPhiN), eqn.Mul(current, rOhm))
	numCells := eqn.Param("Number of cells connected in series to make a battery")

	m.Outputs["Time [s]"] = eqn.T()
	m.Outputs["Discharge capacity [A.h]"] = q
	m.Outputs["Current [A]"] = current
	m.Outputs["Current variable [A]"] = current
	m.Outputs["Negative electrode potential difference [V]"] = dPhiN
	m.Outputs["Positive electrode potential difference [V]"] = dPhiP
	m.Outputs["Ohmic resistance [Ohm]"] = rOhm
	m.Outputs["Voltage [V]"] = voltage
	m.Outputs["Battery voltage [V]"] = eqn.Mul(voltage, numCells)

	m.Events = []eqn.Event{
		{Name: "Minimum voltage", Expr: eqn.Sub(voltage, eqn.Param("Lower voltage cut-off [V]"))},
		{Name: "Maximum voltage", Expr: eqn.Sub(eqn.Param("Upper voltage cut-off [V]"), voltage)},
	}

	return m
}
