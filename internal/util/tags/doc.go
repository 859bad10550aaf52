// Package tags provides consistent tagging for Azure resource groups.
//
// Every run tags its resource group with the run ID, the root zone and the
// managing tool, so leftover groups from failed cleanups can be found and
// deleted by hand.
package tags
