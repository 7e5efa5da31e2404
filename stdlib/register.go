package stdlib

import "osyris/value"

// Register installs every standard operator into scope, which should be the
// fresh root scope a host is about to evaluate a program against. It does
// not install stdin/stdout/stderr or none/true/false — those are wired by
// the host embedding the evaluator (see NewRootScope in the root osyris
// package, which takes its ports from ioport), since
// their concrete port implementations are external collaborators.
func Register(scope *value.Scope) {
	registerArithmetic(scope)
	registerComparison(scope)
	registerLogic(scope)
	registerVars(scope)
	registerCallables(scope)
	registerControl(scope)
	registerContainers(scope)
	registerConversions(scope)
	registerIO(scope)
}
