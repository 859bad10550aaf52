// Package orchestration runs one provisioning run end to end.
//
// A run moves through three stages:
//  1. Init - resolve the subscription and create the run's resource group
//  2. Provisioning - the dependency-ordered phases, stopping at the first failure
//  3. Finalize - delete the resource group, always, exactly once
//
// # Usage
//
//	orch := orchestration.New(infra, cfg, orchestration.WithObserver(observer))
//	result := orch.Run(ctx)
//
// Run never panics on provider failures and never returns a cleanup error:
// the outcome of the run and the outcome of its cleanup are reported
// separately on the Result.
package orchestration
