package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/waspernest/pe-bms-node/internal/domain/attendance"
	"github.com/waspernest/pe-bms-node/internal/domain/schedule"
)

// ProgressPurger drops finished import-job progress entries past their
// retention window.
type ProgressPurger interface {
	PurgeExpired() int
}

// AttendanceJobs contains attendance maintenance cron jobs
type AttendanceJobs struct {
	attendanceRepo  attendance.Repository
	scheduleService schedule.Service
	purger          ProgressPurger
	staleOpenDays   int
}

// NewAttendanceJobs creates attendance cron jobs
func NewAttendanceJobs(
	attendanceRepo attendance.Repository,
	scheduleService schedule.Service,
	purger ProgressPurger,
	staleOpenDays int,
) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo:  attendanceRepo,
		scheduleService: scheduleService,
		purger:          purger,
		staleOpenDays:   staleOpenDays,
	}
}

// RegisterJobs registers all attendance-related cron jobs
func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	// Close records left open past the stale threshold, hourly
	scheduler.AddJob(
		"auto_close_stale_records",
		1*time.Hour,
		j.AutoCloseStaleRecords,
	)

	// Drop finished import progress entries every 6 hours
	scheduler.AddJob(
		"purge_import_progress",
		6*time.Hour,
		j.PurgeImportProgress,
	)
}

// AutoCloseStaleRecords closes open records whose log date fell behind
// the stale threshold. The close time is the user's scheduled end for
// that day, so a forgotten punch-out yields a full scheduled shift
// rather than an open row poisoning the reports.
func (j *AttendanceJobs) AutoCloseStaleRecords(ctx context.Context) error {
	cutoff := time.Now().AddDate(0, 0, -j.staleOpenDays).Format("2006-01-02")

	stale, err := j.attendanceRepo.GetOpenBefore(ctx, cutoff)
	if err != nil {
		return err
	}

	closed := 0
	for _, rec := range stale {
		closeAt := "23:59:59"
		if resolved, err := j.scheduleService.Resolve(ctx, rec.BiometricID, rec.LogDate); err == nil {
			closeAt = resolved.End + ":00"
		}

		if err := j.attendanceRepo.Close(ctx, rec.ID, closeAt, attendance.OriginManual); err != nil {
			slog.Error("Failed to auto-close stale record",
				"record_id", rec.ID, "biometric_id", rec.BiometricID, "error", err)
			continue
		}
		closed++
	}

	if closed > 0 {
		slog.Info("Auto-closed stale attendance records", "count", closed, "cutoff", cutoff)
	}
	return nil
}

// PurgeImportProgress drops expired job progress entries.
func (j *AttendanceJobs) PurgeImportProgress(ctx context.Context) error {
	if removed := j.purger.PurgeExpired(); removed > 0 {
		slog.Info("Purged import progress entries", "count", removed)
	}
	return nil
}
