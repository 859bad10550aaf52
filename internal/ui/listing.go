package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/imamik/azdns/internal/platform/azure"
	"github.com/imamik/azdns/internal/provisioning"
	"github.com/imamik/azdns/internal/provisioning/dns"
)

// RenderListing produces a styled table of the CNAME and A record sets of zone.
func RenderListing(zone string, listing *provisioning.RecordListing) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("  Records in " + zone))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("  " + strings.Repeat("─", 50)))
	b.WriteString("\n")

	if listing == nil || len(listing.CNAME)+len(listing.A) == 0 {
		b.WriteString(dimStyle.Render("    (no records)"))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(sectionStyle.Render(fmt.Sprintf("    %-6s %-20s %6s  %s", "TYPE", "NAME", "TTL", "VALUE")))
	b.WriteString("\n")
	for _, rs := range listing.CNAME {
		writeRecordRow(&b, rs)
	}
	for _, rs := range listing.A {
		writeRecordRow(&b, rs)
	}
	return b.String()
}

// ListingPrinter returns a listing renderer that writes the table to w.
func ListingPrinter(w io.Writer) func(string, *provisioning.RecordListing) {
	return func(zone string, listing *provisioning.RecordListing) {
		_, _ = fmt.Fprint(w, RenderListing(zone, listing))
	}
}

func writeRecordRow(b *strings.Builder, rs *azure.RecordSet) {
	fmt.Fprintf(b, "    %-6s %-20s %6d  %s\n", rs.Type, rs.Name, rs.TTL, strings.Join(dns.Values(rs), ", "))
}
