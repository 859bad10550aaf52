// Package ui renders azdns console output and asks for interactive
// confirmation when a run pauses for a manual registrar update.
package ui
