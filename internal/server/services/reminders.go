package services

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/moodkeeper/internal/common"
	"github.com/dmitrijs2005/moodkeeper/internal/logging"
	"github.com/dmitrijs2005/moodkeeper/internal/models"
	"github.com/dmitrijs2005/moodkeeper/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/moodkeeper/internal/wellness"
)

// ScheduledReminder is a reminder with its next trigger time.
type ScheduledReminder struct {
	models.Reminder
	NextFire time.Time
}

type ReminderService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
	now         func() time.Time
}

func NewReminderService(db *sql.DB, m repomanager.RepositoryManager, logger logging.Logger) *ReminderService {
	return &ReminderService{db: db, repomanager: m, logger: logger.With("module", "reminder_service"), now: time.Now}
}

// Add stores a reminder. repeat and clock are normalised with
// wellness.ParseRepeat and wellness.ParseClock; weekly reminders fire on
// the weekday they were created.
func (s *ReminderService) Add(ctx context.Context, ownerID, message, repeat, clock string) (*ScheduledReminder, error) {
	if ownerID == "" {
		return nil, common.ErrUnauthenticated
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("%w: message is required", common.ErrorValidation)
	}
	r, err := wellness.ParseRepeat(repeat)
	if err != nil {
		return nil, err
	}
	c, err := wellness.ParseClock(clock)
	if err != nil {
		return nil, err
	}

	now := s.now()
	rem := models.Reminder{
		OwnerID:   ownerID,
		Message:   message,
		Repeat:    string(r),
		Clock:     c,
		Weekday:   now.Weekday(),
		CreatedAt: now,
	}
	id, err := s.repomanager.Reminders(s.db).Create(ctx, &rem)
	if err != nil {
		return nil, fmt.Errorf("error creating reminder: %w", err)
	}
	rem.ID = id

	next, err := wellness.NextFire(rem, now)
	if err != nil {
		return nil, err
	}
	return &ScheduledReminder{Reminder: rem, NextFire: next}, nil
}

// List returns the owner's reminders with their next trigger times.
// Reminders that no longer parse are skipped and logged.
func (s *ReminderService) List(ctx context.Context, ownerID string) ([]ScheduledReminder, error) {
	if ownerID == "" {
		return nil, common.ErrUnauthenticated
	}
	rems, err := s.repomanager.Reminders(s.db).SelectByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing reminders: %w", err)
	}

	now := s.now()
	out := make([]ScheduledReminder, 0, len(rems))
	for _, r := range rems {
		next, err := wellness.NextFire(r, now)
		if err != nil {
			s.logger.Warn(ctx, "skipping malformed reminder", "id", r.ID, "error", err)
			continue
		}
		out = append(out, ScheduledReminder{Reminder: r, NextFire: next})
	}
	return out, nil
}

func (s *ReminderService) Delete(ctx context.Context, ownerID, id string) error {
	if ownerID == "" {
		return common.ErrUnauthenticated
	}
	if id == "" {
		return fmt.Errorf("%w: reminder id is required", common.ErrorValidation)
	}
	return s.repomanager.Reminders(s.db).Delete(ctx, ownerID, id)
}
