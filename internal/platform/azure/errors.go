package azure

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
)

// HostNameNotVerifiedError reports that the provider could not yet verify
// ownership of a custom host name, typically because the verification
// records have not propagated.
type HostNameNotVerifiedError struct {
	HostName string
	Reason   string
	Err      error
}

func (e *HostNameNotVerifiedError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("host name %s is not verified", e.HostName)
	}
	return fmt.Sprintf("host name %s is not verified: %s", e.HostName, e.Reason)
}

func (e *HostNameNotVerifiedError) Unwrap() error {
	return e.Err
}

// hostNameNotVerifiedCodes are the ARM error codes App Service uses when
// ownership of a custom host name cannot be verified.
var hostNameNotVerifiedCodes = map[string]bool{
	"HostnameNotVerified":               true,
	"HostNameNotVerified":               true,
	"CustomHostnameNotVerified":         true,
	"DomainOwnershipVerificationFailed": true,
}

// asHostNameNotVerified converts a binding failure into a
// *HostNameNotVerifiedError when App Service rejected it for missing
// verification records. Other errors are returned unchanged.
//
// Besides the dedicated codes, App Service reports a missing record as a
// generic BadRequest or Conflict whose message names the record that was
// not found.
func asHostNameNotVerified(hostName string, err error) error {
	var respErr *azcore.ResponseError
	if !errors.As(err, &respErr) {
		return err
	}
	if hostNameNotVerifiedCodes[respErr.ErrorCode] {
		return &HostNameNotVerifiedError{HostName: hostName, Reason: respErr.ErrorCode, Err: err}
	}

	generic := respErr.ErrorCode == "BadRequest" || respErr.ErrorCode == "Conflict"
	if !generic || !hasStatus(err, http.StatusBadRequest, http.StatusConflict) {
		return err
	}
	msg := strings.ToLower(respErr.Error())
	if strings.Contains(msg, "record") && (strings.Contains(msg, "was not found") || strings.Contains(msg, "not verified")) {
		return &HostNameNotVerifiedError{HostName: hostName, Reason: "verification record not found", Err: err}
	}
	return err
}

// responseStatus returns the HTTP status of an ARM error, or 0.
func responseStatus(err error) int {
	if err == nil {
		return 0
	}

	var respErr *azcore.ResponseError
	if errors.As(err, &respErr) {
		return respErr.StatusCode
	}
	return 0
}

// hasStatus checks if the error is an ARM response error with one of the given statuses.
func hasStatus(err error, statuses ...int) bool {
	got := responseStatus(err)
	if got == 0 {
		return false
	}
	for _, s := range statuses {
		if got == s {
			return true
		}
	}
	return false
}

// IsNotFound checks if an error indicates a resource was not found.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsConflict checks if an error indicates a conflict occurred.
func IsConflict(err error) bool {
	return hasStatus(err, http.StatusConflict)
}

// IsRateLimited checks if an error indicates rate limiting.
func IsRateLimited(err error) bool {
	return hasStatus(err, http.StatusTooManyRequests)
}

// IsHostNameNotVerified checks if a host-name binding failed because the
// verification records are not visible to the provider yet. Any other
// provider error, including other 400 and 409 responses, is permanent.
func IsHostNameNotVerified(err error) bool {
	var notVerified *HostNameNotVerifiedError
	if errors.As(err, &notVerified) {
		return true
	}
	var respErr *azcore.ResponseError
	return errors.As(err, &respErr) && hostNameNotVerifiedCodes[respErr.ErrorCode]
}

// isTransientDeleteError reports whether a delete request may be retried:
// another operation holds the resource or the subscription is throttled.
func isTransientDeleteError(err error) bool {
	return IsConflict(err) || IsRateLimited(err)
}
