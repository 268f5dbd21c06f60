package models

import "github.com/mmsg-warwick/supercapacitors/eqn"

// Reservoir builds the basic reservoir model: the cell is a single
// capacitance discharged by the applied current, with a series
// resistance between the stored and terminal voltages.
func Reservoir() *eqn.Model {
	m := eqn.NewModel("Reservoir model")

	q := m.Declare("Discharge capacity [A.h]")
	v := m.Declare("Cell voltage [V]")

	current := eqn.Function("Current function [A]", eqn.T())
	capacitance := eqn.Param("Cell capacitance [F]")
	seriesR := eqn.Param("Series resistance [Ohm]")

	m.RHS["Discharge capacity [A.h]"] = eqn.DivBy(current, eqn.C(3600))
	m.InitialConditions["Discharge capacity [A.h]"] = eqn.C(0)

	m.RHS["Cell voltage [V]"] = eqn.Neg(eqn.DivBy(current, capacitance))
	m.InitialConditions["Cell voltage [V]"] = eqn.Param("Initial voltage [V]")

	terminal := eqn.Sub(v, eqn.Mul(current, seriesR))
	numCells := eqn.Param("Number of cells connected in series to make a battery")

	m.Outputs["Time [s]"] = eqn.T()
	m.Outputs["Discharge capacity [A.h]"] = q
	m.Outputs["Current [A]"] = current
	m.Outputs["Current variable [A]"] = current
	m.Outputs["Cell voltage [V]"] = v
	m.Outputs["Voltage [V]"] = terminal
	m.Outputs["Battery voltage [V]"] = eqn.Mul(terminal, numCells)
	m.Outputs["Stored energy [J]"] = eqn.Mul(eqn.C(0.5), capacitance, v, v)

	m.Events = []eqn.Event{
		{Name: "Minimum voltage", Expr: eqn.Sub(terminal, eqn.Param("Lower voltage cut-off [V]"))},
		{Name: "Maximum voltage", Expr: eqn.Sub(eqn.Param("Upper voltage cut-off [V]"), terminal)},
	}

	return m
}

// ReservoirResponse returns the exact terminal voltage of the
// reservoir model under a constant current, as a function of time.
// The model is linear, so no integration is involved.
func ReservoirResponse(capacitance, seriesR, initialVoltage, current float64) func(t float64) float64 {
	return func(t float64) float64 {
		return initialVoltage - current*t/capacitance - current*seriesR
	}
}
