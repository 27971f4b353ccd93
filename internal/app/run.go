package app

import (
	"context"
	"fmt"
	"sort"

	"github.com/delfland/hydroio/dimr"
	"github.com/delfland/hydroio/forcing"
	"github.com/delfland/hydroio/internal/ctxlog"
	"github.com/delfland/hydroio/internal/fsutil"
	"github.com/delfland/hydroio/meteo"
	"github.com/delfland/hydroio/polyline"
	"github.com/delfland/hydroio/profile"
	"github.com/delfland/hydroio/xyz"
)

// Report is the outcome of one validation pass.
type Report struct {
	Checked int
	Failed  int
}

// Run validates every recognized input file under the configured model
// path. Each file is parsed with its format reader; parse warnings are
// logged, structural and domain failures count the file as failed. A
// non-nil error means at least one file failed.
func (a *App) Run(ctx context.Context) (*Report, error) {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	inputs, err := fsutil.FindModelInputs(a.config.ModelPath)
	if err != nil {
		return nil, fmt.Errorf("scanning model directory: %w", err)
	}

	// Deterministic order, for stable logs and summaries.
	var paths []string
	for _, files := range inputs {
		paths = append(paths, files...)
	}
	sort.Strings(paths)
	a.logger.Debug("Model directory scanned.", "path", a.config.ModelPath, "files", len(paths))

	report := &Report{}
	for _, path := range paths {
		report.Checked++
		if err := checkFile(ctx, path); err != nil {
			report.Failed++
			a.logger.Error("Validation failed.", "file", path, "error", err)
			continue
		}
		a.logger.Info("Validated.", "file", path)
	}

	fmt.Fprintf(a.outW, "%d files checked, %d failed\n", report.Checked, report.Failed)
	if report.Failed > 0 {
		return report, fmt.Errorf("%d of %d input files failed validation", report.Failed, report.Checked)
	}
	return report, nil
}

// checkFile parses one file with the reader its extension implies.
func checkFile(ctx context.Context, path string) error {
	var err error
	switch fsutil.KindOf(path) {
	case fsutil.KindPolyline:
		_, err = polyline.ReadFile(ctx, path)
	case fsutil.KindForcing:
		_, err = forcing.ReadFile(ctx, path)
	case fsutil.KindMeteo:
		_, err = meteo.ReadFile(ctx, path)
	case fsutil.KindProfile:
		_, err = profile.ReadFile(ctx, path)
	case fsutil.KindSamples:
		_, err = xyz.ReadFile(ctx, path)
	case fsutil.KindPipeline:
		_, err = dimr.ReadFile(ctx, path)
	}
	return err
}
