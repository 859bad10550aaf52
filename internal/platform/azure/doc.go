// Package azure provides a wrapper around the Azure Resource Manager SDK
// with the waiting, timeout and error handling a provisioning run needs.
//
// # Architecture
//
// The package is organized into domain-specific modules:
//
//   - client.go: Manager interfaces composed into InfrastructureManager
//   - types.go: Resource handles and create specifications
//   - real_client.go: RealClient construction and options
//   - operations.go: Generic create-and-wait and delete operations
//   - resource_group.go, subscription.go: Account level resources
//   - dns.go: Zones and record sets
//   - appservice.go, domain.go: Plans, web apps, host names and managed domains
//   - network.go, compute.go: Virtual networks, public addresses, interfaces and VMs
//   - errors.go: Error classification
//   - mock_client.go: Function-field mock for unit tests
//
// Every create call blocks until the provider reports a terminal state.
// Long-running operations are polled with the configured poll frequency and
// bounded by the create or delete timeout.
//
// Handles returned by the client are plain structs decoupled from the SDK
// models, so callers and tests never depend on SDK pointer-heavy types.
package azure
