// Package parameters provides the parameter tables that close the
// supercapacitor models' equations.
//
// A [Values] table is flat and string-keyed, with keys following the
// "Quantity [unit]" convention the models reference. Entries are
// float64 constants, [Func] functions of state and temperature, or
// string metadata such as the chemistry tag and citations.
//
// Three sets ship with the module:
//
//   - [Iamrod2024]: values from the Iamrod et al (2024) work
//   - [Verbrugge2005]: values from the Verbrugge & Liu (2005) paper
//   - [Zubieta1998]: lumped circuit-characterization values, suited to
//     the reservoir model only
//
// Compatibility between a model and a set is a naming and unit
// convention, checked by eqn.ValidatePair rather than enforced by any
// type machinery.
package parameters
