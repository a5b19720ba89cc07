package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/trainhub/training-backend-go/internal/domain/auth"
	"github.com/trainhub/training-backend-go/internal/domain/program"
)

// ProgramJobs contains program lifecycle cron jobs
type ProgramJobs struct {
	programRepo program.ProgramRepository
	sessionRepo auth.SessionRepository
}

// NewProgramJobs creates program cron jobs
func NewProgramJobs(programRepo program.ProgramRepository, sessionRepo auth.SessionRepository) *ProgramJobs {
	return &ProgramJobs{
		programRepo: programRepo,
		sessionRepo: sessionRepo,
	}
}

// RegisterJobs registers all program-related cron jobs
func (j *ProgramJobs) RegisterJobs(scheduler *Scheduler) {
	// Sweep program statuses every hour
	scheduler.AddJob(
		"sweep_program_statuses",
		1*time.Hour,
		j.SweepProgramStatuses,
	)

	// Purge expired sessions daily
	scheduler.AddJob(
		"purge_expired_sessions",
		24*time.Hour,
		j.PurgeExpiredSessions,
	)
}

// SweepProgramStatuses moves scheduled programs whose start passed to
// ongoing, and scheduled/ongoing programs whose end passed to completed.
func (j *ProgramJobs) SweepProgramStatuses(ctx context.Context) error {
	now := time.Now()

	completed, err := j.programRepo.MarkCompleted(ctx, now)
	if err != nil {
		return err
	}
	ongoing, err := j.programRepo.MarkOngoing(ctx, now)
	if err != nil {
		return err
	}

	if completed > 0 || ongoing > 0 {
		slog.Info("Program status sweep", "completed", completed, "ongoing", ongoing)
	}
	return nil
}

// PurgeExpiredSessions removes session rows whose refresh tokens expired.
func (j *ProgramJobs) PurgeExpiredSessions(ctx context.Context) error {
	deleted, err := j.sessionRepo.DeleteExpired(ctx, time.Now())
	if err != nil {
		return err
	}
	if deleted > 0 {
		slog.Info("Expired sessions purged", "count", deleted)
	}
	return nil
}
