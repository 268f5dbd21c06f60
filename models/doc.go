// Package models provides the supercapacitor model definitions this
// module contributes to the host framework.
//
// Each constructor returns a fully-declared [eqn.Model]:
//
//   - [Reservoir]: lumped-capacitance reservoir model
//   - [SingleParticle]: reduced single-particle analogue with uniform
//     double-layer charging and an ohmic electrolyte drop
//   - [VerbruggeLiu]: double-layer porous-electrode model from the
//     Verbrugge & Liu (2005) paper
//
// The models are symbolic content only; pairing one with a parameter
// set and solving it is the host framework's job. eqn.ValidatePair
// checks a pairing before handing it over.
package models
