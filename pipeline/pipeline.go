// Package pipeline runs the extract-and-package flow for one resource
// class: fetch the page, discover its resources, gate them through the
// operator, resolve the approved content and package the result.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"pagepack/lib/discover"
	"pagepack/lib/fetch"
	"pagepack/lib/manifest"
	"pagepack/lib/packager"
	"pagepack/lib/resolve"
	"pagepack/lib/selection"
)

// Runner holds the collaborators of one invocation. The staging
// context is supplied by the caller, which decides whether sequential
// runs share a tree.
type Runner struct {
	Fetch       fetch.Client
	Selection   selection.Service
	Staging     packager.Staging
	ApproveAll  bool
	SkipArchive bool
}

// Run executes the full pipeline for one resource class. An empty
// discovery or selection ends the run early without an artifact;
// that is an outcome, not an error.
func (r Runner) Run(ctx context.Context, targetURL string, class discover.Class, visibleName string) error {
	base, err := url.Parse(targetURL)
	if err != nil {
		return fmt.Errorf("parse target url: %w", err)
	}

	markup, err := r.Fetch.Page(ctx, targetURL)
	if err != nil {
		return fmt.Errorf("fetch page: %w", err)
	}

	refs, err := discover.Discover(markup, base, class)
	if err != nil {
		return err
	}
	if len(refs) == 0 {
		slog.Info("no resources found on page", "class", class.String(), "url", targetURL)
		return nil
	}
	slog.Info("discovered resources", "class", class.String(), "count", len(refs))

	approved, err := selection.Gate(ctx, refs, r.ApproveAll, r.Selection)
	if err != nil {
		return fmt.Errorf("select resources: %w", err)
	}
	if len(approved) == 0 {
		slog.Info("nothing selected, no package produced", "class", class.String())
		return nil
	}

	contents := resolve.Resolve(ctx, r.Fetch, approved)
	merged := resolve.Merge(contents, class)

	m := manifest.Build(visibleName, class)
	doc, err := m.Encode()
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}

	if err := packager.Write(r.Staging, class.OutputFile(), merged, doc); err != nil {
		return err
	}

	if r.SkipArchive {
		slog.Warn("skipping archive, staging files left in place; a second run over the same output directory will overwrite them",
			"dir", r.Staging.Dir)
		return nil
	}

	archivePath, err := packager.Archive(r.Staging, class.OutputFile(), m.TechnicalId)
	if err != nil {
		return err
	}
	slog.Info("package written", "archive", archivePath)
	return nil
}
