// Config resolution for Solver: functional options over an immutable
// solverConfig, mirroring the teacher's BuilderOption/newBuilderConfig
// pattern (see _examples/katalvlaran-lvlath/builder/config.go).
//
// The key type is SolverOption, a function that mutates a solverConfig.
// Use newSolverConfig to obtain a config with sensible defaults, then
// apply any number of SolverOption in order. Later options override
// earlier ones.
package engine

import "github.com/rs/zerolog"

// SolverOption customizes a Solver's behavior at construction time.
// As a rule, option constructors never panic at runtime.
type SolverOption func(cfg *solverConfig)

// solverConfig holds the configurable parameters for a Solver. It is
// resolved once, at NewSolver(opts...) time, and never mutated again.
type solverConfig struct {
	existsEveryRound    bool
	strictReassignment  bool
	solutionLimit       int
	logger              zerolog.Logger
}

func newSolverConfig(opts ...SolverOption) *solverConfig {
	cfg := &solverConfig{
		existsEveryRound:   true,
		strictReassignment: true,
		solutionLimit:      0,
		logger:             zerologGlobal(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithExistsEveryRound selects Open-Question (i)'s scheduling: true (the
// default) runs exists-axiom propagation after every clause sweep; false
// requires a clause-only fixpoint before exists axioms run.
func WithExistsEveryRound(v bool) SolverOption {
	return func(cfg *solverConfig) { cfg.existsEveryRound = v }
}

// WithStrictReassignment selects Open-Question (ii): true (the default)
// asserts that a repeated assignment to an already-assigned position
// within one propagation pass matches the existing value, raising a
// contradiction otherwise; false reproduces the spec's literal
// "silent no-op" wording.
func WithStrictReassignment(v bool) SolverOption {
	return func(cfg *solverConfig) { cfg.strictReassignment = v }
}

// WithSolutionLimit stops SearchAll after n solutions have been
// recorded (0, the default, means unbounded). This is a caller-side
// convenience; it does not change the propagate/decide/backtrack
// algorithm itself.
func WithSolutionLimit(n int) SolverOption {
	return func(cfg *solverConfig) { cfg.solutionLimit = n }
}

// WithLogger injects a logger instance instead of the package's global
// default.
func WithLogger(logger zerolog.Logger) SolverOption {
	return func(cfg *solverConfig) { cfg.logger = logger }
}
