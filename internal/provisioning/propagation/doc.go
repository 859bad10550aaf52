// Package propagation decides how long a run waits for DNS changes to become
// visible before binding a custom host name.
//
// The fixed policy sleeps once and binds once. The poll policy skips the
// sleep and instead retries the bind with exponential backoff while the
// provider still reports the host name as unverified.
package propagation
