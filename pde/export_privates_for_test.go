package pde

// Bridges so white-box tests in pde_test can reach the discretization
// internals without widening the public API.

type EdgeRuleForTest = edgeRule

var (
	BuildStencilForTest       = buildStencil
	DiscretizeBoundaryForTest = discretizeBoundary
	ApplyBoundariesForTest    = applyBoundaries
)
