// internal/services/verification_service.go
package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/codetrade/backend/internal/config"
)

// VerificationService schedules the post-upload verification of a project.
// Enqueue never blocks the HTTP response path.
type VerificationService interface {
	Enqueue(projectID uint)
}

// ProjectVerifier flips a project's verified flag. Implemented by
// ProjectService; tests substitute a fake.
type ProjectVerifier interface {
	MarkVerified(projectID uint) error
}

// VerificationWorker consumes queued project ids, waits the configured
// delay, then marks the project verified. Failures are logged and retried
// with backoff instead of disappearing silently.
type VerificationWorker struct {
	verifier    ProjectVerifier
	queue       chan uint
	delay       time.Duration
	maxAttempts int
	log         *logrus.Entry
}

func NewVerificationWorker(verifier ProjectVerifier, cfg config.VerificationConfig) *VerificationWorker {
	queueSize := cfg.QueueSize
	if queueSize <= 0 {
		queueSize = 64
	}
	maxAttempts := cfg.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = 3
	}

	return &VerificationWorker{
		verifier:    verifier,
		queue:       make(chan uint, queueSize),
		delay:       time.Duration(cfg.DelaySeconds) * time.Second,
		maxAttempts: maxAttempts,
		log:         logrus.WithField("component", "verification"),
	}
}

// SetVerifier breaks the construction cycle between the worker and the
// project service; call it before Start.
func (w *VerificationWorker) SetVerifier(verifier ProjectVerifier) {
	w.verifier = verifier
}

func (w *VerificationWorker) Enqueue(projectID uint) {
	select {
	case w.queue <- projectID:
		w.log.WithField("project_id", projectID).Debug("Verification scheduled")
	default:
		w.log.WithField("project_id", projectID).Warn("Verification queue full, dropping job")
	}
}

// Start launches the consumer goroutine. It drains until ctx is cancelled.
func (w *VerificationWorker) Start(ctx context.Context) {
	go w.run(ctx)
}

func (w *VerificationWorker) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case projectID := <-w.queue:
			w.process(ctx, projectID)
		}
	}
}

func (w *VerificationWorker) process(ctx context.Context, projectID uint) {
	if w.delay > 0 {
		timer := time.NewTimer(w.delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
		}
	}

	log := w.log.WithField("project_id", projectID)

	for attempt := 1; attempt <= w.maxAttempts; attempt++ {
		err := w.verifier.MarkVerified(projectID)
		if err == nil {
			log.Info("Project verified")
			return
		}

		log.WithError(err).WithField("attempt", attempt).Warn("Verification attempt failed")

		if attempt < w.maxAttempts {
			backoff := time.Duration(attempt) * 500 * time.Millisecond
			select {
			case <-ctx.Done():
				return
			case <-time.After(backoff):
			}
		}
	}

	log.Error("Verification abandoned after retries")
}
