package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"ProgramAdvisor/internal/ports"
)

// CronScheduler runs the rescrape job on a cron expression.
type CronScheduler struct {
	spec     string
	location *time.Location
	runner   *cron.Cron
}

var _ ports.Scheduler = (*CronScheduler)(nil)

// NewCronScheduler builds a scheduler configured via cron expression
// string; an empty spec produces a no-op scheduler.
func NewCronScheduler(spec string, location *time.Location) *CronScheduler {
	if location == nil {
		location = time.UTC
	}
	return &CronScheduler{spec: spec, location: location}
}

// Start registers the job and begins the cron loop.
func (c *CronScheduler) Start(ctx context.Context, job func(time.Time)) error {
	if c.spec == "" || job == nil {
		return nil
	}

	if c.runner != nil {
		return nil
	}

	runner := cron.New(cron.WithLocation(c.location))
	if _, err := runner.AddFunc(c.spec, func() {
		job(time.Now().In(c.location))
	}); err != nil {
		return fmt.Errorf("parse cron expression %q: %w", c.spec, err)
	}

	c.runner = runner
	runner.Start()
	return nil
}

// Stop halts the cron loop, waiting for a running job unless the
// context expires first.
func (c *CronScheduler) Stop(ctx context.Context) error {
	if c.runner == nil {
		return nil
	}

	stopped := c.runner.Stop()
	c.runner = nil

	select {
	case <-stopped.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
