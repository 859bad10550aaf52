package provisioning

import "fmt"

// ProvisionError reports a failed provisioning step.
type ProvisionError struct {
	Phase    string
	Resource string
	Err      error
}

func (e *ProvisionError) Error() string {
	switch {
	case e.Phase != "" && e.Resource != "":
		return fmt.Sprintf("%s phase failed: %s: %v", e.Phase, e.Resource, e.Err)
	case e.Phase != "":
		return fmt.Sprintf("%s phase failed: %v", e.Phase, e.Err)
	case e.Resource != "":
		return fmt.Sprintf("provisioning %s failed: %v", e.Resource, e.Err)
	}
	return fmt.Sprintf("provisioning failed: %v", e.Err)
}

func (e *ProvisionError) Unwrap() error { return e.Err }

// NewProvisionError wraps err for the given resource. RunPhases fills in the phase.
func NewProvisionError(resource string, err error) *ProvisionError {
	return &ProvisionError{Resource: resource, Err: err}
}

// PropagationTimeoutError reports that a host name never became bindable
// within the configured attempts. It is a provisioning failure: errors.As
// with a *ProvisionError target also matches.
type PropagationTimeoutError struct {
	HostName string
	Attempts int
	Err      error
}

func (e *PropagationTimeoutError) Error() string {
	return fmt.Sprintf("host name %s not verified after %d attempts: %v", e.HostName, e.Attempts, e.Err)
}

func (e *PropagationTimeoutError) Unwrap() error { return e.Err }

// As lets errors.As treat the timeout as a *ProvisionError.
func (e *PropagationTimeoutError) As(target any) bool {
	pe, ok := target.(**ProvisionError)
	if !ok {
		return false
	}
	*pe = &ProvisionError{Resource: e.HostName, Err: e}
	return true
}

// CleanupError reports a failed resource group delete. It is logged, never
// propagated out of a run.
type CleanupError struct {
	ResourceGroup string
	Err           error
}

func (e *CleanupError) Error() string {
	return fmt.Sprintf("cleanup of resource group %s failed: %v", e.ResourceGroup, e.Err)
}

func (e *CleanupError) Unwrap() error { return e.Err }

// CleanupStatus is the outcome of Finalize.
type CleanupStatus int

// Cleanup outcomes.
const (
	NothingToCleanUp CleanupStatus = iota
	CleanedUp
	CleanupFailed
)

func (s CleanupStatus) String() string {
	switch s {
	case CleanedUp:
		return "cleaned-up"
	case CleanupFailed:
		return "cleanup-failed"
	default:
		return "nothing-to-clean-up"
	}
}
