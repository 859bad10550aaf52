// Package keygen provides the SSH key material installed on provisioned VMs.
//
// A fixed admin public key is embedded at build time and used by default.
// Operators can supply their own authorized_keys file or ask for a fresh
// RSA key pair per run; generated private keys are written in PEM format.
package keygen
