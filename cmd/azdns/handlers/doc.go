// Package handlers contains the business logic for CLI commands.
//
// Handlers are kept separate from cobra command definitions so they can be
// tested without flag parsing. Collaborators that reach outside the process
// (Azure, OTLP, the terminal) are package variables replaced in tests.
package handlers
