// Package game implements the Matatu rules engine: the immutable game
// state, the legal-move generator, and the action-application function.
//
// The engine is pure. Every transition takes a *State and an Action and
// returns a fresh *State; the input is never mutated. Drivers (TUI, CPU
// bot, simulator) own the current snapshot and replace it with each call's
// return value. The engine performs no I/O and holds no locks; callers
// embedding it in a concurrent host must confine each state chain to one
// owning goroutine.
package game
