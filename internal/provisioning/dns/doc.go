// Package dns provides the zone and record-set phases of a run.
//
// The root zone is created first so its name servers can be handed to the
// registrar. Later phases add verification, address and delegation records,
// list what the zone serves, and finally remove the address record and the
// delegated child zone again.
package dns
