package attendance

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/waspernest/pe-bms-node/internal/domain/attendance"
	"github.com/waspernest/pe-bms-node/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.Repository
	detector       *DuplicateDetector
	tracker        *ProgressTracker

	// userLocks serializes punch reconciliation per biometric id, so two
	// punches for the same user can never both observe the same open
	// record. Different users proceed in parallel.
	mu        sync.Mutex
	userLocks map[string]*sync.Mutex
}

func NewAttendanceService(
	attendanceRepo attendance.Repository,
	detector *DuplicateDetector,
	tracker *ProgressTracker,
) attendance.Service {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		detector:       detector,
		tracker:        tracker,
		userLocks:      make(map[string]*sync.Mutex),
	}
}

func (a *AttendanceServiceImpl) lockUser(biometricID string) *sync.Mutex {
	a.mu.Lock()
	lock, ok := a.userLocks[biometricID]
	if !ok {
		lock = &sync.Mutex{}
		a.userLocks[biometricID] = lock
	}
	a.mu.Unlock()

	lock.Lock()
	return lock
}

// Reconcile implements attendance.Service.
//
// The punch is matched against the user's records for that day: an open
// record closes if the punch comes after its time in; otherwise a new
// open record is created, provided the punch comes after the last close.
// Out-of-order punches (including exact replays of the last close) are
// rejected without touching stored state.
func (a *AttendanceServiceImpl) Reconcile(ctx context.Context, req attendance.PunchRequest) (attendance.PunchResult, error) {
	if err := req.Validate(); err != nil {
		return attendance.PunchResult{}, err
	}

	punchSecs, err := validator.ClockToSeconds(req.Time)
	if err != nil {
		return attendance.PunchResult{}, err
	}
	punchTime := validator.SecondsToClock(punchSecs)

	lock := a.lockUser(req.BiometricID)
	defer lock.Unlock()

	records, err := a.attendanceRepo.GetForUserDate(ctx, req.BiometricID, req.LogDate)
	if err != nil {
		return attendance.PunchResult{}, fmt.Errorf("failed to load records: %w", err)
	}

	for _, rec := range records {
		if !rec.Open() {
			continue
		}

		openSecs, err := validator.ClockToSeconds(*rec.TimeIn)
		if err != nil {
			return attendance.PunchResult{}, fmt.Errorf("stored time_in unparseable: %w", err)
		}
		if punchSecs <= openSecs {
			return attendance.PunchResult{}, attendance.ErrPunchBeforeTimeIn
		}

		if err := a.attendanceRepo.Close(ctx, rec.ID, punchTime, req.Origin); err != nil {
			return attendance.PunchResult{}, err
		}

		closed, err := a.attendanceRepo.GetByID(ctx, rec.ID)
		if err != nil {
			return attendance.PunchResult{}, err
		}

		return attendance.PunchResult{
			Action: attendance.ActionTimeOut,
			Record: mapRecordToResponse(closed),
		}, nil
	}

	// No open record: the punch starts a new one, but only if it lands
	// strictly after the last close.
	if len(records) > 0 {
		last := records[len(records)-1]
		if last.TimeOut != nil {
			lastOutSecs, err := validator.ClockToSeconds(*last.TimeOut)
			if err != nil {
				return attendance.PunchResult{}, fmt.Errorf("stored time_out unparseable: %w", err)
			}
			if punchSecs <= lastOutSecs {
				return attendance.PunchResult{}, attendance.ErrPunchBeforeLastClose
			}
		}
	}

	inserted, err := a.attendanceRepo.Insert(ctx, attendance.Record{
		BiometricID: req.BiometricID,
		LogDate:     req.LogDate,
		TimeIn:      &punchTime,
		Origin:      req.Origin,
	})
	if err != nil {
		return attendance.PunchResult{}, err
	}

	return attendance.PunchResult{
		Action: attendance.ActionTimeIn,
		Record: mapRecordToResponse(inserted),
	}, nil
}

// ImportRows implements attendance.Service.
func (a *AttendanceServiceImpl) ImportRows(ctx context.Context, jobID string, rows []attendance.ImportRow) (attendance.ImportResult, error) {
	started := time.Now()

	a.tracker.Create(jobID)
	a.tracker.Start(jobID, len(rows))

	result := attendance.ImportResult{JobID: jobID}

	for _, row := range rows {
		outcome := a.importRow(ctx, row)

		result.TotalProcessed++
		switch outcome.Status {
		case attendance.RowInserted:
			result.TotalInserted++
		case attendance.RowSkipped:
			result.TotalSkipped++
		case attendance.RowError:
			result.TotalFailed++
			result.Errors = append(result.Errors, outcome)
		}

		a.tracker.Advance(jobID)
	}

	result.Status = deriveStatus(result)
	result.Elapsed = time.Since(started).Round(time.Millisecond).String()

	message := fmt.Sprintf("%d inserted, %d skipped, %d failed",
		result.TotalInserted, result.TotalSkipped, result.TotalFailed)
	if result.Status == attendance.ImportError {
		a.tracker.Fail(jobID, message)
	} else {
		a.tracker.Complete(jobID, message)
	}

	return result, nil
}

// importRow classifies one row into inserted/skipped/error. A failure
// here never aborts the batch.
func (a *AttendanceServiceImpl) importRow(ctx context.Context, row attendance.ImportRow) attendance.RowOutcome {
	outcome := attendance.RowOutcome{Row: row}

	if err := row.Validate(); err != nil {
		outcome.Status = attendance.RowError
		outcome.Reason = err.Error()
		return outcome
	}

	timeInSecs, err := validator.ClockToSeconds(row.TimeIn)
	if err != nil {
		outcome.Status = attendance.RowError
		outcome.Reason = fmt.Sprintf("unparseable time_in: %v", err)
		return outcome
	}
	timeIn := validator.SecondsToClock(timeInSecs)

	var timeOut *string
	if row.TimeOut != nil && *row.TimeOut != "" {
		secs, err := validator.ClockToSeconds(*row.TimeOut)
		if err != nil {
			outcome.Status = attendance.RowError
			outcome.Reason = fmt.Sprintf("unparseable time_out: %v", err)
			return outcome
		}
		normalized := validator.SecondsToClock(secs)
		timeOut = &normalized
	}

	lock := a.lockUser(row.BiometricID)
	defer lock.Unlock()

	existing, err := a.attendanceRepo.GetForUserDate(ctx, row.BiometricID, row.LogDate)
	if err != nil {
		outcome.Status = attendance.RowError
		outcome.Reason = err.Error()
		return outcome
	}

	if reason := a.detector.Check(row, existing); reason != "" {
		outcome.Status = attendance.RowSkipped
		outcome.Reason = reason
		return outcome
	}

	inserted, err := a.attendanceRepo.Insert(ctx, attendance.Record{
		BiometricID: row.BiometricID,
		LogDate:     row.LogDate,
		TimeIn:      &timeIn,
		TimeOut:     timeOut,
		Origin:      attendance.OriginImport,
	})
	if err != nil {
		outcome.Status = attendance.RowError
		outcome.Reason = err.Error()
		return outcome
	}

	outcome.Status = attendance.RowInserted
	outcome.RecordID = inserted.ID
	return outcome
}

func deriveStatus(r attendance.ImportResult) attendance.ImportStatus {
	switch {
	case r.TotalProcessed == 0:
		return attendance.ImportWarning
	case r.TotalFailed == r.TotalProcessed:
		return attendance.ImportError
	case r.TotalFailed > 0:
		return attendance.ImportPartial
	case r.TotalInserted == 0:
		return attendance.ImportWarning
	default:
		return attendance.ImportSuccess
	}
}

// Progress implements attendance.Service.
func (a *AttendanceServiceImpl) Progress(jobID string) (attendance.JobProgress, error) {
	return a.tracker.Get(jobID)
}

// List implements attendance.Service.
func (a *AttendanceServiceImpl) List(ctx context.Context, filter attendance.ListFilter) (attendance.ListResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListResponse{}, err
	}

	records, total, err := a.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListResponse{}, err
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, mapRecordToResponse(rec))
	}

	return attendance.ListResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Records:    responses,
	}, nil
}

func mapRecordToResponse(rec attendance.Record) attendance.RecordResponse {
	return attendance.RecordResponse{
		ID:          rec.ID,
		BiometricID: rec.BiometricID,
		LogDate:     rec.LogDate,
		TimeIn:      rec.TimeIn,
		TimeOut:     rec.TimeOut,
		Origin:      string(rec.Origin),
		IsReliever:  rec.IsReliever,
		FirstName:   rec.FirstName,
		LastName:    rec.LastName,
		CreatedAt:   rec.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:   rec.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
