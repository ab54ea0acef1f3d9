package puzzle

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// InputSource supplies the raw input text for a day.
type InputSource interface {
	Load(day int) (string, error)
}

// Job asks for one part of one day.
type Job struct {
	Day  int
	Part Part
	// Input, when set, is used instead of asking the InputSource.
	Input string
	// Want, when set, is the expected answer; a mismatch fails the job.
	Want string
	// Label distinguishes example jobs in output ("example 2").
	Label string
}

// Result is the outcome of one Job.
type Result struct {
	Job      Job
	Title    string
	Answer   Answer
	Duration time.Duration
	Err      error
}

// OK reports whether the job produced an answer (and matched Want if set).
func (r Result) OK() bool {
	return r.Err == nil
}

// ErrMismatch is returned for example jobs whose answer differs from Want.
var ErrMismatch = errors.New("answer mismatch")

// Runner executes jobs on a bounded worker pool. Jobs share no state, so a
// failing job never cancels the others.
type Runner struct {
	Registry *Registry
	Inputs   InputSource
	Workers  int
	Logger   *zap.Logger
}

// ExampleJobs expands the registered examples of the given days into jobs.
// Days without examples contribute nothing.
func (r *Runner) ExampleJobs(days []int, part Part) ([]Job, error) {
	var jobs []Job
	for _, day := range days {
		s, err := r.Registry.Get(day)
		if err != nil {
			return nil, err
		}
		ep, ok := s.(ExampleProvider)
		if !ok {
			continue
		}
		for i, ex := range ep.Examples() {
			if part != 0 && ex.Part != part {
				continue
			}
			jobs = append(jobs, Job{
				Day:   day,
				Part:  ex.Part,
				Input: ex.Input,
				Want:  ex.Want,
				Label: fmt.Sprintf("example %d", i+1),
			})
		}
	}
	return jobs, nil
}

// Jobs expands days and an optional part filter (0 = both) into jobs,
// skipping parts a unit does not implement.
func (r *Runner) Jobs(days []int, part Part) ([]Job, error) {
	var jobs []Job
	for _, day := range days {
		s, err := r.Registry.Get(day)
		if err != nil {
			return nil, err
		}
		for _, p := range Parts {
			if part != 0 && p != part {
				continue
			}
			if !s.Has(p) {
				if part != 0 {
					return nil, fmt.Errorf("day %d %s: %w", day, p, ErrNoPart)
				}
				continue
			}
			jobs = append(jobs, Job{Day: day, Part: p})
		}
	}
	return jobs, nil
}

// Run executes jobs concurrently. Results are returned in job order. The
// returned error joins every failed job's error.
func (r *Runner) Run(ctx context.Context, jobs []Job) ([]Result, error) {
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	workers := r.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(jobs))
	inputs := &inputCache{src: r.Inputs, texts: make(map[int]inputEntry)}

	var g errgroup.Group
	g.SetLimit(workers)
	for i, job := range jobs {
		g.Go(func() error {
			results[i] = r.runOne(ctx, logger, inputs, job)
			return nil
		})
	}
	_ = g.Wait()

	var errs []error
	for _, res := range results {
		if res.Err != nil {
			errs = append(errs, res.Err)
		}
	}
	return results, errors.Join(errs...)
}

func (r *Runner) runOne(ctx context.Context, logger *zap.Logger, inputs *inputCache, job Job) Result {
	res := Result{Job: job}
	s, err := r.Registry.Get(job.Day)
	if err != nil {
		res.Err = err
		return res
	}
	res.Title = s.Title()

	input := job.Input
	if input == "" {
		input, err = inputs.load(job.Day)
		if err != nil {
			res.Err = fmt.Errorf("day %d: load input: %w", job.Day, err)
			return res
		}
	}

	logger.Debug("Solving",
		zap.Int("day", job.Day),
		zap.Int("part", int(job.Part)),
		zap.String("label", job.Label))

	start := time.Now()
	ans, err := s.Solve(ctx, job.Part, input)
	res.Duration = time.Since(start)
	if err != nil {
		logger.Warn("Solve failed",
			zap.Int("day", job.Day),
			zap.Int("part", int(job.Part)),
			zap.Error(err))
		res.Err = err
		return res
	}
	res.Answer = ans
	if job.Want != "" && ans.String() != job.Want {
		res.Err = fmt.Errorf("day %d %s %s: got %s, want %s: %w",
			job.Day, job.Part, job.Label, ans, job.Want, ErrMismatch)
		return res
	}

	logger.Info("Solved",
		zap.Int("day", job.Day),
		zap.Int("part", int(job.Part)),
		zap.Stringer("answer", ans),
		zap.Duration("took", res.Duration))
	return res
}

type inputEntry struct {
	text string
	err  error
}

// inputCache loads each day's input once even when both parts run at the
// same time.
type inputCache struct {
	mu    sync.Mutex
	src   InputSource
	texts map[int]inputEntry
}

func (c *inputCache) load(day int) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.texts[day]; ok {
		return e.text, e.err
	}
	if c.src == nil {
		return "", errors.New("no input source configured")
	}
	text, err := c.src.Load(day)
	c.texts[day] = inputEntry{text: text, err: err}
	return text, err
}
