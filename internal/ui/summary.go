package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/imamik/azdns/internal/orchestration"
	"github.com/imamik/azdns/internal/provisioning"
)

// RenderSummary produces the end-of-run summary.
func RenderSummary(result *orchestration.Result) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("  azdns run " + result.RunID))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  " + strings.Repeat("═", 40)))
	b.WriteString("\n")

	writeField(&b, "Resource group", result.Names.ResourceGroup)
	writeField(&b, "Zone", result.Names.Zone)
	writeField(&b, "Duration", result.Duration.Round(time.Second).String())

	if s := result.State; s != nil {
		if s.WebApp != nil {
			writeField(&b, "Web app", s.WebApp.DefaultHostName)
		}
		if s.PrimaryHost != nil {
			writeField(&b, "Primary host", s.PrimaryHost.IP())
		}
		if s.PartnerHost != nil {
			writeField(&b, "Partner host", s.PartnerHost.IP())
		}
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("  Outcome"))
	b.WriteString("\n")
	b.WriteString(renderOutcome(result))
	b.WriteString(renderCleanup(result))
	return b.String()
}

func renderOutcome(result *orchestration.Result) string {
	switch {
	case result.Succeeded():
		return okStyle.Render("    "+checkMark+" all phases completed") + "\n"
	case result.TimedOut():
		return failedStyle.Render(fmt.Sprintf("    %s host name did not propagate in time: %v", crossMark, result.Err)) + "\n"
	default:
		return failedStyle.Render(fmt.Sprintf("    %s phase %s failed: %v", crossMark, result.FailedPhase, result.Err)) + "\n"
	}
}

func renderCleanup(result *orchestration.Result) string {
	switch result.Cleanup {
	case provisioning.CleanedUp:
		return okStyle.Render(fmt.Sprintf("    %s resource group %s deleted", checkMark, result.Names.ResourceGroup)) + "\n"
	case provisioning.CleanupFailed:
		return warningStyle.Render(fmt.Sprintf("    %s cleanup failed, delete %s manually: %v",
			warnMark, result.Names.ResourceGroup, result.CleanupErr)) + "\n"
	default:
		return dimStyle.Render("    "+skipMark+" nothing to clean up") + "\n"
	}
}

func writeField(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "    %-15s %s\n", label+":", value)
}
