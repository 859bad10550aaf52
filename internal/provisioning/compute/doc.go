// Package compute creates the networking and virtual machines of a run.
//
// Factory wraps the provider calls for virtual networks, public IP addresses,
// network interfaces and Linux VMs. Every call blocks until the provider
// reports a terminal state. CreateHost composes them into a reachable host.
package compute
