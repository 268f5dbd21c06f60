// Package eqn provides the vocabulary for writing supercapacitor model
// definitions that a DAE simulation host can interpret.
//
// A [Model] is a named bundle of declared variables, governing equations
// and boundary/initial conditions. Equations are built from [Expr] trees:
//
//   - [C], [T], [Param], [Var], [Function]: leaves
//   - [Add], [Sub], [Mul], [DivBy], [Pow], [Neg]: arithmetic
//   - [Grad], [Divergence], [BoundaryValue], [Broadcast], [Restrict],
//     [Concat]: spatial operators, interpreted by the host's
//     discretization
//
// The package never evaluates spatial operators or integrates equations
// over time. Discretization and solving belong to the host framework;
// what lives here is construction and structural validation, so that a
// model paired with a parameter table can be rejected before the host
// ever sees it.
package eqn
