// Package warbler asks questions on a line-based terminal.
//
// The prompting API lives in the input package; validate holds the answer
// rules and terminal the I/O channel abstraction.
package warbler

// Version is the current warbler release, reported by `warbler --version`.
const Version = "0.1.0"
