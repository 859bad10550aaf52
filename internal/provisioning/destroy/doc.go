// Package destroy tears a run down by deleting its resource group.
//
// Every resource of a run lives in one resource group, so a single delete
// removes all of them. Failures are reported, never raised: cleanup must not
// mask the outcome of the run itself.
package destroy
