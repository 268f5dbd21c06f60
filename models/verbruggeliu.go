package models

import "github.com/mmsg-warwick/supercapacitors/eqn"

// faraday is the Faraday constant in C.mol-1.
const faraday = 96485.33212

// VerbruggeLiu builds the double-layer supercapacitor model from the
// Verbrugge & Liu (2005) paper. The double-layer capacitance means the
// electrode potential cannot be defined directly, so the states are
// the potential differences between electrode and electrolyte, the
// electrolyte concentration and potential across the whole cell, and
// the discharge capacity.
func VerbruggeLiu() *eqn.Model {
	m := eqn.NewModel("Verbrugge-Liu model")

	q := m.Declare("Discharge capacity [A.h]")
	cE := m.Declare("Electrolyte concentration [mol.m-3]", eqn.WholeCell...)
	phiE := m.Declare("Electrolyte potential [V]", eqn.WholeCell...)
	dPhiN := m.Declare("Negative electrode potential difference [V]", eqn.NegativeElectrode)
	dPhiP := m.Declare("Positive electrode potential difference [V]", eqn.PositiveElectrode)

	tempK := eqn.Param("Initial temperature [K]")
	current := eqn.Function("Current function [A]", eqn.T())
	area := eqn.Mul(eqn.Param("Electrode height [m]"), eqn.Param("Electrode width [m]"))
	iCell := eqn.DivBy(current, area)

	// Porosity, broadcast onto each region.
	epsN := eqn.Broadcast(eqn.Param("Negative electrode porosity"), eqn.NegativeElectrode)
	epsS := eqn.Broadcast(eqn.Param("Separator porosity"), eqn.Separator)
	epsP := eqn.Broadcast(eqn.Param("Positive electrode porosity"), eqn.PositiveElectrode)
	eps := eqn.Concat(epsN, epsS, epsP)

	// Transport efficiency from the Bruggeman correction.
	torN := eqn.Pow(epsN, eqn.Param("Negative electrode Bruggeman coefficient (electrolyte)"))
	torS := eqn.Pow(epsS, eqn.Param("Separator Bruggeman coefficient (electrolyte)"))
	torP := eqn.Pow(epsP, eqn.Param("Positive electrode Bruggeman coefficient (electrolyte)"))
	tor := eqn.Concat(torN, torS, torP)

	sigmaEffN := eqn.Mul(eqn.Param("Negative electrode conductivity [S.m-1]"), eqn.Pow(
		eqn.Param("Negative electrode active material volume fraction"),
		eqn.Param("Negative electrode Bruggeman coefficient (electrode)"),
	))
	sigmaEffP := eqn.Mul(eqn.Param("Positive electrode conductivity [S.m-1]"), eqn.Pow(
		eqn.Param("Positive electrode active material volume fraction"),
		eqn.Param("Positive electrode Bruggeman coefficient (electrode)"),
	))

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

	cEn := eqn.Restrict(cE, eqn.NegativeElectrode)
	cEs := eqn.Restrict(cE, eqn.Separator)
	cEp := eqn.Restrict(cE, eqn.PositiveElectrode)
	phiEn := eqn.Restrict(phiE, eqn.NegativeElectrode)
	phiEs := eqn.Restrict(phiE, eqn.Separator)
	phiEp := eqn.Restrict(phiE, eqn.PositiveElectrode)

	// State of charge.
	m.RHS["Discharge capacity [A.h]"] = eqn.DivBy(current, eqn.C(3600))
	m.InitialConditions["Discharge capacity [A.h]"] = eqn.C(0)

	// Electrode potential differences. The divergence terms drive the
	// double-layer charging current a*C_dl*d(delta_phi)/dt.
	chargeN := eqn.Add(
		eqn.Divergence(eqn.Mul(sigmaEffN, eqn.Grad(dPhiN))),
		eqn.Divergence(eqn.Mul(sigmaEffN, eqn.Grad(phiEn))),
	)
	chargeP := eqn.Add(
		eqn.Divergence(eqn.Mul(sigmaEffP, eqn.Grad(dPhiP))),
		eqn.Divergence(eqn.Mul(sigmaEffP, eqn.Grad(phiEp))),
	)

	kappaN := eqn.Function("Electrolyte conductivity [S.m-1]", cEn, tempK)
	kappaP := eqn.Function("Electrolyte conductivity [S.m-1]", cEp, tempK)
	kappa := eqn.Function("Electrolyte conductivity [S.m-1]", cE, tempK)

	m.RHS["Negative electrode potential difference [V]"] = eqn.DivBy(chargeN, eqn.Mul(aN, cdlN))
	m.InitialConditions["Negative electrode potential difference [V]"] = eqn.C(-0.1)
	m.BoundaryConditions["Negative electrode potential difference [V]"] = eqn.BoundaryConditions{
		Left: eqn.BoundaryCondition{
			Kind:  eqn.Neumann,
			Value: eqn.DivBy(iCell, eqn.BoundaryValue(eqn.Neg(sigmaEffN), eqn.Left)),
		},
		Right: eqn.BoundaryCondition{
			Kind:  eqn.Neumann,
			Value: eqn.DivBy(iCell, eqn.BoundaryValue(eqn.Mul(kappaN, torN), eqn.Right)),
		},
	}

	m.RHS["Positive electrode potential difference [V]"] = eqn.DivBy(chargeP, eqn.Mul(aP, cdlP))
	m.InitialConditions["Positive electrode potential difference [V]"] = eqn.C(0.1)
	m.BoundaryConditions["Positive electrode potential difference [V]"] = eqn.BoundaryConditions{
		Left: eqn.BoundaryCondition{
			Kind:  eqn.Neumann,
			Value: eqn.DivBy(iCell, eqn.BoundaryValue(eqn.Mul(kappaP, torP), eqn.Left)),
		},
		Right: eqn.BoundaryCondition{
			Kind:  eqn.Neumann,
			Value: eqn.DivBy(iCell, eqn.BoundaryValue(eqn.Neg(sigmaEffP), eqn.Right)),
		},
	}

	// Current in the electrolyte. The volumetric interfacial current
	// a*j balances the charge stored in each electrode; the separator
	// carries none.
	aJn := eqn.Neg(chargeN)
	aJs := eqn.Broadcast(eqn.C(0), eqn.Separator)
	aJp := eqn.Neg(chargeP)
	aJ := eqn.Concat(aJn, aJs, aJp)

	iE := eqn.Neg(eqn.Mul(kappa, tor, eqn.Grad(phiE)))
	lX := eqn.Add(
		eqn.Param("Negative electrode thickness [m]"),
		eqn.Param("Separator thickness [m]"),
		eqn.Param("Positive electrode thickness [m]"),
	)
	// The Lx^2 factor improves conditioning of the discretized system.
	m.Algebraic["Electrolyte potential [V]"] = eqn.Mul(eqn.Pow(lX, eqn.C(2)), eqn.Add(eqn.Divergence(iE), aJ))
	m.InitialConditions["Electrolyte potential [V]"] = eqn.C(0)
	m.BoundaryConditions["Electrolyte potential [V]"] = eqn.BoundaryConditions{
		Left:  eqn.BoundaryCondition{Kind: eqn.Dirichlet, Value: eqn.C(0)},
		Right: eqn.BoundaryCondition{Kind: eqn.Neumann, Value: eqn.C(0)},
	}

	// Electrolyte concentration.
	dE := eqn.Function("Electrolyte diffusivity [m2.s-1]", cE, tempK)
	tPlus := eqn.Function("Cation transference number", cE, tempK)
	nE := eqn.Neg(eqn.Mul(tor, dE, eqn.Grad(cE)))
	m.RHS["Electrolyte concentration [mol.m-3]"] = eqn.Mul(
		eqn.DivBy(eqn.C(1), eps),
		eqn.Sub(
			eqn.Neg(eqn.Divergence(nE)),
			eqn.DivBy(eqn.Mul(eqn.Sub(eqn.C(1), tPlus), aJ), eqn.C(faraday)),
		),
	)
	m.InitialConditions["Electrolyte concentration [mol.m-3]"] = eqn.Param("Initial concentration in electrolyte [mol.m-3]")
	m.BoundaryConditions["Electrolyte concentration [mol.m-3]"] = eqn.BoundaryConditions{
		Left:  eqn.BoundaryCondition{Kind: eqn.Neumann, Value: eqn.C(0)},
		Right: eqn.BoundaryCondition{Kind: eqn.Neumann, Value: eqn.C(0)},
	}

	// Output variables.
	phiSn := eqn.Add(dPhiN, phiEn)
	phiSp := eqn.Add(dPhiP, phiEp)
	voltage := eqn.Sub(
		eqn.BoundaryValue(phiSp, eqn.Right),
		eqn.BoundaryValue(phiSn, eqn.Left),
	)
	numCells := eqn.Param("Number of cells connected in series to make a battery")

	m.Outputs["Time [s]"] = eqn.T()
	m.Outputs["Discharge capacity [A.h]"] = q
	m.Outputs["Current [A]"] = current
	m.Outputs["Current variable [A]"] = current
	m.Outputs["Electrolyte concentration [mol.m-3]"] = cE
	m.Outputs["Negative electrolyte concentration [mol.m-3]"] = cEn
	m.Outputs["Separator electrolyte concentration [mol.m-3]"] = cEs
	m.Outputs["Positive electrolyte concentration [mol.m-3]"] = cEp
	m.Outputs["Electrolyte potential [V]"] = phiE
	m.Outputs["Negative electrolyte potential [V]"] = phiEn
	m.Outputs["Separator electrolyte potential [V]"] = phiEs
	m.Outputs["Positive electrolyte potential [V]"] = phiEp
	m.Outputs["Negative electrode potential [V]"] = phiSn
	m.Outputs["Positive electrode potential [V]"] = phiSp
	m.Outputs["Negative electrode potential difference [V]"] = dPhiN
	m.Outputs["Positive electrode potential difference [V]"] = dPhiP
	m.Outputs["Negative electrode interfacial current density [A.m-3]"] = aJn
	m.Outputs["Positive electrode interfacial current density [A.m-3]"] = aJp
	m.Outputs["Voltage [V]"] = voltage
	m.Outputs["Battery voltage [V]"] = eqn.Mul(voltage, numCells)

	m.Events = []eqn.Event{
		{Name: "Minimum voltage", Expr: eqn.Sub(voltage, eqn.Param("Lower voltage cut-off [V]"))},
		{Name: "Maximum voltage", Expr: eqn.Sub(eqn.Param("Upper voltage cut-off [V]"), voltage)},
	}

	return m
}
