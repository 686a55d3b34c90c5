// Package scenario replays the value-semantics walkthrough as a list of checked
// steps: copy a record, nudge a field back and forth, then reverse a small
// collection twice.
package scenario

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/marcodamonte/valuesemantics/internal/config"
	"github.com/marcodamonte/valuesemantics/value"
)

// ErrStepFailed is wrapped by every step whose outcome differs from the
// expected one.
var ErrStepFailed = errors.New("scenario step failed")

// Options control the collection built by Run.
type Options struct {
	// Defaults is the number of default records at the front of the collection.
	Defaults int

	// Extra is appended after the defaults.
	Extra config.RecordConfig

	// Logger receives one entry per step. If nil, nothing is logged.
	Logger *zap.Logger
}

// OptionsFromConfig builds Options from loaded configuration.
func OptionsFromConfig(cfg *config.Config, log *zap.Logger) Options {
	return Options{
		Defaults: cfg.Scenario.Defaults,
		Extra:    cfg.Scenario.Extra,
		Logger:   log,
	}
}

// Step is the outcome of one check.
type Step struct {
	Name    string   `yaml:"name"`
	Want    bool     `yaml:"want"`
	Got     bool     `yaml:"got"`
	Records []string `yaml:"records,omitempty"`
	Diff    string   `yaml:"diff,omitempty"`
}

// OK reports whether the step met its expectation.
func (s Step) OK() bool { return s.Want == s.Got }

// Transcript collects steps in execution order.
type Transcript struct {
	Steps []Step `yaml:"steps"`
}

// Failed returns the steps that did not meet their expectation.
func (t *Transcript) Failed() []Step {
	var out []Step
	for _, s := range t.Steps {
		if !s.OK() {
			out = append(out, s)
		}
	}
	return out
}

var recordComparer = cmp.Comparer(func(a, b value.Record) bool { return a.Equal(&b) })

type runner struct {
	log *zap.Logger
	tr  *Transcript
	err error
}

func (r *runner) check(step Step) {
	r.tr.Steps = append(r.tr.Steps, step)
	if step.OK() {
		r.log.Info("Step passed", zap.String("step", step.Name), zap.Bool("result", step.Got))
		return
	}
	r.log.Warn("Step failed", zap.String("step", step.Name), zap.Bool("want", step.Want), zap.Bool("got", step.Got))
	r.err = multierr.Append(r.err, fmt.Errorf("%w: %s: got %v, want %v", ErrStepFailed, step.Name, step.Got, step.Want))
}

// Run executes the walkthrough. It always returns the transcript collected so
// far; the error combines every failed step and, if ctx is cancelled between
// steps, the context error.
func Run(ctx context.Context, opts Options) (*Transcript, error) {
	r := &runner{log: opts.Logger, tr: &Transcript{}}
	if r.log == nil {
		r.log = zap.NewNop()
	}

	stages := []func(*runner, Options){
		(*runner).copyAndCompare,
		(*runner).reverseCollection,
	}
	for _, stage := range stages {
		if err := ctx.Err(); err != nil {
			return r.tr, multierr.Append(r.err, fmt.Errorf("scenario interrupted: %w", err))
		}
		stage(r, opts)
	}
	return r.tr, r.err
}

func (r *runner) copyAndCompare(Options) {
	f1 := value.NewRecord()
	f2 := f1.Copy()
	r.check(Step{Name: "copy equals source", Want: true, Got: f1.Equal(&f2), Records: snapshot(f1, f2)})

	f1.X++
	r.check(Step{Name: "after f1.X++ copy differs", Want: false, Got: f1.Equal(&f2), Records: snapshot(f1, f2)})

	f1.X--
	r.check(Step{Name: "after f1.X-- copy equals again", Want: true, Got: f1.Equal(&f2), Records: snapshot(f1, f2)})
}

func (r *runner) reverseCollection(opts Options) {
	rs := make(value.Records, 0, opts.Defaults+1)
	for range opts.Defaults {
		rs = append(rs, value.NewRecord())
	}
	rs = append(rs, value.NewRecordWith(opts.Extra.T, opts.Extra.X, opts.Extra.Y, value.NewProbe()))
	orig := rs.Clone()

	mirror := make(value.Records, len(orig))
	for i := range orig {
		mirror[len(orig)-1-i] = orig[i]
	}

	rs.Reverse()
	r.check(Step{
		Name:    "reverse yields mirror image",
		Want:    true,
		Got:     rs.Equal(mirror),
		Records: snapshot(rs...),
		Diff:    cmp.Diff(mirror, rs, recordComparer),
	})

	rs.Reverse()
	r.check(Step{
		Name:    "reverse twice restores order",
		Want:    true,
		Got:     rs.Equal(orig),
		Records: snapshot(rs...),
		Diff:    cmp.Diff(orig, rs, recordComparer),
	})
}

func snapshot(rs ...value.Record) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.String()
	}
	return out
}
