// Package fakes provides test doubles for azure.InfrastructureManager.
//
// Provider is an in-memory implementation that records every call in order
// and supports failure injection. It keeps enough state (groups, zones,
// record sets, addresses, apps) for tests to assert on what a run left
// behind. MockClient is a lighter func-field double for tests that only
// override a few calls.
package fakes
