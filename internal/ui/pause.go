package ui

import (
	"context"
	"errors"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/imamik/azdns/internal/provisioning"
)

// ErrAborted is returned when the operator declines to continue.
var ErrAborted = errors.New("aborted by operator")

// ConfirmPauser asks the operator on the terminal before continuing.
type ConfirmPauser struct {
	run func(ctx context.Context, form *huh.Form) error
}

// NewConfirmPauser creates a pauser backed by a huh confirm prompt.
func NewConfirmPauser() *ConfirmPauser {
	return &ConfirmPauser{run: func(ctx context.Context, form *huh.Form) error {
		return form.RunWithContext(ctx)
	}}
}

// Pause implements provisioning.Pauser.
func (p *ConfirmPauser) Pause(ctx context.Context, message string) error {
	proceed := true
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(message).
				Description("Continue once the registrar points at these name servers.").
				Affirmative("Continue").
				Negative("Abort").
				Value(&proceed),
		),
	)
	if err := p.run(ctx, form); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrAborted
		}
		return err
	}
	if !proceed {
		return ErrAborted
	}
	return nil
}

// IsInteractive reports whether stdin and stdout are both terminals.
func IsInteractive() bool {
	return isTerminal(os.Stdin.Fd()) && isTerminal(os.Stdout.Fd())
}

// NewPauser returns a confirm prompt when pausing is enabled and the
// session is interactive, otherwise a pauser that never waits.
func NewPauser(enabled, interactive bool) provisioning.Pauser {
	if enabled && interactive {
		return NewConfirmPauser()
	}
	return provisioning.NoPause{}
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
