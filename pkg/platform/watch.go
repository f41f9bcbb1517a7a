package platform

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/s4cindia/ninja-cli/pkg/interfaces"
)

// Default polling behavior for audit jobs. The backend streams progress to
// browser clients over a WebSocket; the CLI polls the same job resource.
const (
	defaultPollInterval  = 2 * time.Second
	defaultMaxInterval   = 30 * time.Second
	defaultWatchDeadline = 15 * time.Minute
)

// errJobPending signals the retry loop that the job has not finished yet.
var errJobPending = errors.New("platform: audit job still running")

// Watcher polls an audit job until it reaches a terminal status.
type Watcher struct {
	api          interfaces.PlatformAPI
	pollInterval time.Duration
	maxInterval  time.Duration
	deadline     time.Duration
}

// WatchOption configures the Watcher.
type WatchOption func(*Watcher)

// WithPollInterval overrides the initial polling interval.
func WithPollInterval(d time.Duration) WatchOption {
	return func(w *Watcher) {
		w.pollInterval = d
	}
}

// WithWatchDeadline overrides the total time allowed for a job to finish.
func WithWatchDeadline(d time.Duration) WatchOption {
	return func(w *Watcher) {
		w.deadline = d
	}
}

// NewWatcher creates a job watcher backed by the given API client.
func NewWatcher(api interfaces.PlatformAPI, opts ...WatchOption) *Watcher {
	w := &Watcher{
		api:          api,
		pollInterval: defaultPollInterval,
		maxInterval:  defaultMaxInterval,
		deadline:     defaultWatchDeadline,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Wait polls the job with exponential backoff until it completes, fails,
// the deadline passes, or ctx is cancelled. A failed job is returned
// alongside an error so callers can inspect its message.
func (w *Watcher) Wait(ctx context.Context, jobID string) (*interfaces.AuditJob, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = w.pollInterval
	b.MaxInterval = w.maxInterval

	var lastProgress int

	operation := func() (*interfaces.AuditJob, error) {
		job, err := w.api.GetAuditJob(ctx, jobID)
		if err != nil {
			var apiErr *APIError
			if errors.As(err, &apiErr) && apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
				// 4xx means the job is gone or the request is bad; retrying won't help.
				return nil, backoff.Permanent(err)
			}
			return nil, err
		}

		switch job.Status {
		case interfaces.JobCompleted:
			return job, nil
		case interfaces.JobFailed:
			return job, backoff.Permanent(fmt.Errorf("platform: audit job %s failed: %s", jobID, job.Message))
		default:
			if job.Progress != lastProgress {
				slog.Info("audit in progress", "job_id", jobID, "status", job.Status, "progress", job.Progress)
				lastProgress = job.Progress
			}
			return job, errJobPending
		}
	}

	job, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(b),
		backoff.WithMaxElapsedTime(w.deadline),
	)
	if err != nil {
		if errors.Is(err, errJobPending) {
			return job, fmt.Errorf("platform: audit job %s did not finish within %s", jobID, w.deadline)
		}
		return job, err
	}
	return job, nil
}
