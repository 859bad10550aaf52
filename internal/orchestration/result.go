package orchestration

import (
	"errors"
	"time"

	"github.com/imamik/azdns/internal/provisioning"
	"github.com/imamik/azdns/internal/util/naming"
)

// Result is the outcome of one run.
type Result struct {
	RunID string
	Names naming.Names

	// Err is the provisioning failure, nil on success. It is always a
	// *provisioning.ProvisionError.
	Err         error
	FailedPhase string

	Cleanup    provisioning.CleanupStatus
	CleanupErr error

	State    *provisioning.State
	Duration time.Duration
}

func (r *Result) setErr(err error) {
	r.Err = err
	var pe *provisioning.ProvisionError
	if errors.As(err, &pe) {
		r.FailedPhase = pe.Phase
	}
}

// Succeeded reports whether every phase completed.
func (r *Result) Succeeded() bool {
	return r.Err == nil
}

// TimedOut reports whether the run failed waiting for host-name propagation.
func (r *Result) TimedOut() bool {
	var timeout *provisioning.PropagationTimeoutError
	return errors.As(r.Err, &timeout)
}
