// Package provisioning provides shared types, interfaces, and orchestration for a provisioning run.
//
// # Subpackages
//
//   - compute/: Virtual networks, public addresses, interfaces and VMs
//   - dns/: Zones, verification and address records, delegation
//   - webapp/: App Service plan, web app, managed domain, host-name binding
//   - propagation/: Waiting for DNS changes to become visible to the provider
//   - destroy/: Resource group cleanup
//
// # Core Types
//
// Context carries configuration, run identity, state, infrastructure client, and observer.
// Phase defines a provisioning step with Name() and Provision() methods.
// State accumulates results from each phase (zones, app, hosts, record listings).
// ProvisionError, PropagationTimeoutError and CleanupError classify run failures.
package provisioning
