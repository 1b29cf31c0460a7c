// Package confirm models interactive confirmation of destructive actions as an
// injectable capability, so services never block on a dialog and headless
// callers can decide policy themselves.
package confirm

// Confirmer answers whether a destructive action described by prompt should
// proceed.
type Confirmer interface {
	Confirm(prompt string) bool
}

// Func adapts a function to the Confirmer interface.
type Func func(prompt string) bool

func (f Func) Confirm(prompt string) bool { return f(prompt) }

// Always approves every prompt. Used by trusted callers and tests.
func Always() Confirmer {
	return Func(func(string) bool { return true })
}

// Never declines every prompt.
func Never() Confirmer {
	return Func(func(string) bool { return false })
}

// Static returns the given answer for every prompt.
func Static(answer bool) Confirmer {
	return Func(func(string) bool { return answer })
}
