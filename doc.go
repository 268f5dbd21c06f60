// Package supercapacitors supplies supercapacitor model content for an
// external DAE simulation host: symbolic model definitions and the
// parameter sets that close their equations, both discoverable by
// string name.
//
// The package registers three models (reservoir, single-particle
// analogue, Verbrugge-Liu) and three parameter sets (iamrod2024,
// verbrugge2005, zubieta1998). Additional content can be contributed
// through [RegisterModel] and [RegisterParameterSet].
//
//	m, err := supercapacitors.NewModel("verbrugge-liu")
//	if err != nil { ... }
//	params, err := supercapacitors.GetParameterValues("iamrod2024")
//	if err != nil { ... }
//	if err := eqn.ValidatePair(m, params); err != nil { ... }
//	// hand m and params to the host framework
//
// The module holds no solver: discretizing and integrating the models
// belongs entirely to the host.
package supercapacitors
