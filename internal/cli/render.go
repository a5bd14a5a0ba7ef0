package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/osa911/giraffecloud-portal/internal/catalog"
	"github.com/osa911/giraffecloud-portal/internal/download"
	"github.com/osa911/giraffecloud-portal/internal/models"
)

const dateLayout = "2006-01-02"

// Result renders one fetch cycle: the filtered listing when loaded, an error
// panel when failed.
func (r *Renderer) Result(kind models.Kind, result catalog.FetchResult, filter catalog.Filter) {
	switch result.State {
	case catalog.StateIdle, catalog.StateLoading:
		dimColor.Fprintf(r.Out, "Loading %s...\n", kind.Label())
	case catalog.StateFailed:
		r.Failure(kind, result.Reason)
	case catalog.StateLoaded:
		view := catalog.NewView(result.Catalog, filter)
		r.Filters(view, filter)
		if view.Hint != catalog.HintNone {
			r.Empty(kind, view.Hint)
			return
		}
		r.Artifacts(kind, view.Items)
	}
}

// Failure renders the error panel of a failed fetch
func (r *Renderer) Failure(kind models.Kind, reason string) {
	errorColor.Fprintf(r.Out, "✖ Could not load %s\n", kind.Label())
	fmt.Fprintf(r.Out, "  %s\n", reason)
}

// Empty renders the nothing-found state
func (r *Renderer) Empty(kind models.Kind, hint catalog.EmptyHint) {
	warnColor.Fprintln(r.Out, hint.Message(kind))
}

// Filters shows the available versions and platforms, marking the active ones
func (r *Renderer) Filters(view catalog.View, filter catalog.Filter) {
	if len(view.Versions) > 0 {
		fmt.Fprintf(r.Out, "Versions:  %s\n", markActive(view.Versions, filter.Version))
	}
	if len(view.Platforms) > 0 {
		fmt.Fprintf(r.Out, "Platforms: %s\n", markActive(view.Platforms, filter.Platform))
	}
	fmt.Fprintln(r.Out)
}

func markActive(values []string, active string) string {
	out := make([]string, len(values))
	for i, v := range values {
		if v == active {
			out[i] = "[" + v + "]"
		} else {
			out[i] = v
		}
	}
	return strings.Join(out, "  ")
}

// Artifacts renders the listing table. Releases show size and filename,
// dev builds show commit and author.
func (r *Renderer) Artifacts(kind models.Kind, artifacts []models.Artifact) {
	tw := tabwriter.NewWriter(r.Out, 0, 0, 2, ' ', 0)

	if kind == models.KindDevBuild {
		fmt.Fprintln(tw, "VERSION\tBUILD\tPLATFORM\tCOMMIT\tAUTHOR\tDATE\tMESSAGE")
		for _, a := range artifacts {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
				versionLabel(a), a.BuildID, a.Platform, a.ShortCommit(), a.Author,
				formatDate(a.UploadTimestamp), firstLine(a.CommitMessage))
		}
	} else {
		fmt.Fprintln(tw, "VERSION\tBUILD\tPLATFORM\tSIZE\tDATE\tFILE")
		for _, a := range artifacts {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
				versionLabel(a), a.BuildID, a.Platform, download.FormatBytes(a.FileSize),
				formatDate(a.UploadTimestamp), a.Filename)
		}
	}
	tw.Flush()

	if r.APIRoot != "" && len(artifacts) > 0 {
		fmt.Fprintln(r.Out)
		for _, a := range artifacts {
			dimColor.Fprintf(r.Out, "%s #%s: %s\n", a.Version, a.BuildID, download.Link(r.APIRoot, kind, a.BuildID))
		}
	}
}

// Changelog prints the changelog of each artifact that has one
func (r *Renderer) Changelog(artifacts []models.Artifact) {
	for _, a := range artifacts {
		if strings.TrimSpace(a.Changelog) == "" {
			continue
		}
		headerColor.Fprintf(r.Out, "\n%s (build %s, %s)\n", a.Version, a.BuildID, a.Platform)
		fmt.Fprintln(r.Out, strings.TrimSpace(a.Changelog))
	}
}

// Descriptor renders the confirm step
func (r *Renderer) Descriptor(d download.Descriptor) {
	headerColor.Fprintf(r.Out, "GiraffeCloud %s for %s\n", d.Version, d.Platform)
	fmt.Fprintf(r.Out, "  File:  %s\n", d.Filename)
	fmt.Fprintf(r.Out, "  Size:  %s\n", d.SizeText())
	date := d.Date.Format(dateLayout)
	if d.DateFallback {
		date += " (upload date unknown)"
	}
	fmt.Fprintf(r.Out, "  Date:  %s\n", date)
	fmt.Fprintf(r.Out, "  Link:  %s\n", d.Link)
}

// Receipt renders the outcome of a download action
func (r *Renderer) Receipt(receipt download.Receipt) {
	switch receipt.Status {
	case download.StatusConfirmed:
		successColor.Fprintf(r.Out, "✔ Downloaded %s\n", receipt.Descriptor.Filename)
	default:
		successColor.Fprintf(r.Out, "➜ Download started: %s\n", receipt.Descriptor.Link)
	}
}

func versionLabel(a models.Artifact) string {
	if a.IsPrerelease() {
		return a.Version + " (pre)"
	}
	return a.Version
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(dateLayout)
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
