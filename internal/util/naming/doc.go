// Package naming provides consistent naming functions for the Azure resources
// created by a provisioning run.
//
// Generated names follow the pattern {prefix}{n} where n is a random number in
// [0, 9999). Every run draws fresh names so that repeated runs never collide
// with resources left behind by an earlier run.
package naming
