// Package pipeline turns layout documents into layout results.
//
// The CLI and the HTTP server share one [Runner] so that both decode,
// validate, solve and cache in the same way:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	res, err := runner.Run(ctx, data, pipeline.Options{Format: manifest.FormatTOML})
//	if err != nil {
//	    return err
//	}
//	out, _ := export.MarshalLayout(res.Layout)
//
// A run decodes the document, builds its content tree, submits it to the
// bundled flex solver and converts the result into an [export.Layout]. The
// encoded layout is cached under a key derived from the document bytes and
// the effective options.
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/layoutc/pkg/errors"
	"github.com/matzehuels/layoutc/pkg/export"
	"github.com/matzehuels/layoutc/pkg/manifest"
)

// Options controls one run.
type Options struct {
	// Format of the document bytes.
	Format manifest.Format

	// Width and Height override the document's viewport per axis. Nil
	// keeps the document's value; an axis that is nil in both is sized
	// intrinsically.
	Width  *float64
	Height *float64

	// Strict fails the run when any child fails to submit, instead of
	// omitting it.
	Strict bool

	// NoCache skips both cache lookup and cache write.
	NoCache bool

	// Logger overrides the runner's logger for this run.
	Logger *log.Logger
}

// Validate checks the options.
func (o Options) Validate() error {
	if _, err := manifest.ParseFormat(string(o.Format)); err != nil {
		return err
	}
	return errors.ValidateViewport(o.Width, o.Height)
}

// viewport merges the option overrides into the document viewport.
func (o Options) viewport(doc manifest.Viewport) export.Viewport {
	v := export.Viewport{Width: doc.Width, Height: doc.Height}
	if o.Width != nil {
		v.Width = o.Width
	}
	if o.Height != nil {
		v.Height = o.Height
	}
	return v
}

// Stats describes a run.
type Stats struct {
	Elements   int           `json:"elements"`
	Placements int           `json:"placements"`
	Omitted    int           `json:"omitted"`
	Duration   time.Duration `json:"duration"`
}

// Result is the outcome of a run.
type Result struct {
	// ID is the hash of the document bytes.
	ID     string
	Layout export.Layout
	Cached bool
	Stats  Stats
}
