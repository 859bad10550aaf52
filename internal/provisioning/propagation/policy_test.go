package propagation

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/azdns/internal/config"
	"github.com/imamik/azdns/internal/platform/azure"
	"github.com/imamik/azdns/internal/platform/azure/fakes"
	"github.com/imamik/azdns/internal/provisioning"
)

func recordingSleep(slept *[]time.Duration) Option {
	return WithSleep(func(_ context.Context, d time.Duration) error {
		*slept = append(*slept, d)
		return nil
	})
}

func notVerified() error {
	return &azure.HostNameNotVerifiedError{HostName: "contoso1.com", Reason: "pending"}
}

func TestFromConfig(t *testing.T) {
	t.Parallel()

	fixed := FromConfig(&config.Config{PropagationPolicy: config.PolicyFixed, PropagationDelay: 2 * time.Minute})
	assert.Equal(t, config.PolicyFixed, fixed.Kind)
	assert.Equal(t, 2*time.Minute, fixed.Delay)
	assert.Equal(t, "fixed(2m0s)", fixed.String())

	poll := FromConfig(&config.Config{
		PropagationPolicy: config.PolicyPoll,
		BindMaxAttempts:   10,
		BindInitialDelay:  15 * time.Second,
		BindMaxDelay:      time.Minute,
	})
	assert.Equal(t, config.PolicyPoll, poll.Kind)
	assert.Equal(t, 10, poll.MaxAttempts)
	assert.Equal(t, "poll(attempts=10, initial=15s, max=1m0s)", poll.String())
}

func TestFixed_WaitSleepsOnce(t *testing.T) {
	t.Parallel()
	var slept []time.Duration

	require.NoError(t, Fixed(2*time.Minute, recordingSleep(&slept)).Wait(context.Background()))
	assert.Equal(t, []time.Duration{2 * time.Minute}, slept)
}

func TestFixed_ZeroDelaySkipsSleep(t *testing.T) {
	t.Parallel()
	var slept []time.Duration

	require.NoError(t, Fixed(0, recordingSleep(&slept)).Wait(context.Background()))
	assert.Empty(t, slept)
}

func TestPoll_WaitReturnsImmediately(t *testing.T) {
	t.Parallel()
	var slept []time.Duration

	require.NoError(t, Poll(3, time.Second, time.Second, recordingSleep(&slept)).Wait(context.Background()))
	assert.Empty(t, slept)
}

func TestWait_HonorsCancellation(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Fixed(time.Hour).Wait(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFixed_DoCallsOnce(t *testing.T) {
	t.Parallel()
	calls := 0

	err := Fixed(0).Do(context.Background(), "contoso1.com", func(context.Context) error {
		calls++
		return notVerified()
	})

	assert.Equal(t, 1, calls)
	assert.True(t, azure.IsHostNameNotVerified(err))
	var pte *provisioning.PropagationTimeoutError
	assert.False(t, errors.As(err, &pte))
}

func TestPoll_DoRetriesUntilVerified(t *testing.T) {
	t.Parallel()
	calls := 0

	err := Poll(5, time.Millisecond, 2*time.Millisecond).Do(context.Background(), "contoso1.com", func(context.Context) error {
		calls++
		if calls < 3 {
			return notVerified()
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestPoll_DoExhaustedReturnsTimeout(t *testing.T) {
	t.Parallel()
	calls := 0

	err := Poll(3, time.Millisecond, time.Millisecond).Do(context.Background(), "contoso1.com", func(context.Context) error {
		calls++
		return notVerified()
	})

	assert.Equal(t, 3, calls)
	var pte *provisioning.PropagationTimeoutError
	require.ErrorAs(t, err, &pte)
	assert.Equal(t, "contoso1.com", pte.HostName)
	assert.Equal(t, 3, pte.Attempts)

	var pe *provisioning.ProvisionError
	assert.ErrorAs(t, err, &pe)
	assert.True(t, azure.IsHostNameNotVerified(err))
}

func TestPoll_DoStopsOnOtherErrors(t *testing.T) {
	t.Parallel()
	calls := 0
	forbidden := fakes.ResourceError(http.StatusForbidden, "AuthorizationFailed")

	err := Poll(5, time.Millisecond, time.Millisecond).Do(context.Background(), "contoso1.com", func(context.Context) error {
		calls++
		return forbidden
	})

	assert.Equal(t, 1, calls)
	assert.ErrorIs(t, err, forbidden)
	var pte *provisioning.PropagationTimeoutError
	assert.False(t, errors.As(err, &pte))
}

func TestPoll_DoDoesNotRetryPermanentBindErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
	}{
		{name: "invalid parameter", err: fakes.ResourceError(http.StatusBadRequest, "InvalidParameter")},
		{name: "bound to another site", err: fakes.ResourceError(http.StatusConflict, "HostnameAlreadyBoundToAnotherSite")},
		{name: "generic bad request", err: fakes.ResourceError(http.StatusBadRequest, "BadRequest")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			calls := 0

			err := Poll(4, time.Millisecond, time.Millisecond).Do(context.Background(), "contoso1.com", func(context.Context) error {
				calls++
				return tt.err
			})

			assert.Equal(t, 1, calls)
			assert.ErrorIs(t, err, tt.err)
			var pte *provisioning.PropagationTimeoutError
			assert.False(t, errors.As(err, &pte))
		})
	}
}

func TestPoll_DoRetriesNotVerifiedErrorCode(t *testing.T) {
	t.Parallel()
	calls := 0

	err := Poll(3, time.Millisecond, time.Millisecond).Do(context.Background(), "contoso1.com", func(context.Context) error {
		calls++
		if calls < 2 {
			return fakes.ResourceError(http.StatusBadRequest, "HostnameNotVerified")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestPoll_DoAtLeastOneAttempt(t *testing.T) {
	t.Parallel()
	calls := 0

	err := Poll(0, time.Millisecond, time.Millisecond).Do(context.Background(), "contoso1.com", func(context.Context) error {
		calls++
		return notVerified()
	})

	assert.Equal(t, 1, calls)
	var pte *provisioning.PropagationTimeoutError
	require.ErrorAs(t, err, &pte)
	assert.Equal(t, 1, pte.Attempts)
}

func TestWaitPhase(t *testing.T) {
	t.Parallel()
	var slept []time.Duration
	phase := NewWaitPhase(Fixed(time.Minute, recordingSleep(&slept)))

	ctx := provisioning.NewContext(context.Background(),
		&config.Config{Timeouts: config.DefaultTimeouts()},
		provisioning.NewRunContext("sub", "eastus", nil),
		&fakes.MockClient{})

	assert.Equal(t, "propagation-wait", phase.Name())
	require.NoError(t, phase.Provision(ctx))
	assert.Equal(t, []time.Duration{time.Minute}, slept)
}
