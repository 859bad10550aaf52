// Package metrics records phase, run and cleanup metrics for azdns.
//
// Metrics live in a private registry. A run is short-lived, so the registry
// is pushed to a Prometheus Pushgateway at the end instead of being scraped.
package metrics
