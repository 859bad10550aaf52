package propagation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/imamik/azdns/internal/config"
	"github.com/imamik/azdns/internal/platform/azure"
	"github.com/imamik/azdns/internal/provisioning"
	"github.com/imamik/azdns/internal/util/retry"
)

// Policy is a propagation wait strategy.
type Policy struct {
	Kind         string
	Delay        time.Duration
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration

	sleep    func(ctx context.Context, d time.Duration) error
	observer provisioning.Observer
}

// Option is a functional option for configuring a Policy.
type Option func(*Policy)

// WithSleep replaces the timer used by Wait.
func WithSleep(fn func(ctx context.Context, d time.Duration) error) Option {
	return func(p *Policy) {
		p.sleep = fn
	}
}

// WithObserver reports waits and retries to observer.
func WithObserver(observer provisioning.Observer) Option {
	return func(p *Policy) {
		p.observer = observer
	}
}

// Fixed returns a policy that sleeps for delay and binds once.
func Fixed(delay time.Duration, opts ...Option) *Policy {
	return newPolicy(&Policy{Kind: config.PolicyFixed, Delay: delay}, opts)
}

// Poll returns a policy that retries the bind up to maxAttempts times with
// exponential backoff between initialDelay and maxDelay.
func Poll(maxAttempts int, initialDelay, maxDelay time.Duration, opts ...Option) *Policy {
	return newPolicy(&Policy{
		Kind:         config.PolicyPoll,
		MaxAttempts:  maxAttempts,
		InitialDelay: initialDelay,
		MaxDelay:     maxDelay,
	}, opts)
}

// FromConfig builds the policy selected by cfg.
func FromConfig(cfg *config.Config, opts ...Option) *Policy {
	if cfg.PropagationPolicy == config.PolicyPoll {
		return Poll(cfg.BindMaxAttempts, cfg.BindInitialDelay, cfg.BindMaxDelay, opts...)
	}
	return Fixed(cfg.PropagationDelay, opts...)
}

func newPolicy(p *Policy, opts []Option) *Policy {
	p.sleep = sleepContext
	p.observer = provisioning.NewNopObserver()
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Wait blocks for the fixed delay. The poll policy returns immediately.
func (p *Policy) Wait(ctx context.Context) error {
	if p.Kind == config.PolicyPoll || p.Delay <= 0 {
		return nil
	}
	p.observer.Printf("[%s] Waiting %v for records to propagate...", phase, p.Delay)
	return p.sleep(ctx, p.Delay)
}

// Do runs bind under the policy. The fixed policy calls it once and returns
// its error unchanged. The poll policy retries while the host name is not
// yet verified and returns a *provisioning.PropagationTimeoutError when
// every attempt failed that way.
func (p *Policy) Do(ctx context.Context, hostName string, bind func(context.Context) error) error {
	if p.Kind != config.PolicyPoll {
		return bind(ctx)
	}

	attempts := max(p.MaxAttempts, 1)
	err := retry.WithExponentialBackoff(ctx,
		func() error { return bind(ctx) },
		retry.WithMaxRetries(attempts-1),
		retry.WithInitialDelay(p.InitialDelay),
		retry.WithMaxDelay(p.MaxDelay),
		retry.WithRetryIf(azure.IsHostNameNotVerified),
		retry.WithOnRetry(func(next int, delay time.Duration, err error) {
			p.observer.Printf("[%s] %s not verified yet (%v); attempt %d/%d in %v", phase, hostName, err, next, attempts, delay)
		}),
	)

	var exhausted *retry.ExhaustedError
	if errors.As(err, &exhausted) {
		return &provisioning.PropagationTimeoutError{
			HostName: hostName,
			Attempts: exhausted.Attempts,
			Err:      exhausted.Err,
		}
	}
	return err
}

// String describes the policy for logs.
func (p *Policy) String() string {
	if p.Kind == config.PolicyPoll {
		return fmt.Sprintf("poll(attempts=%d, initial=%v, max=%v)", p.MaxAttempts, p.InitialDelay, p.MaxDelay)
	}
	return fmt.Sprintf("fixed(%v)", p.Delay)
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
