package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"exercisetracker/internal/apperror"
	"exercisetracker/internal/metrics"
	"exercisetracker/internal/models"
	"exercisetracker/internal/repositories"
)

// LogQuery holds the optional bounds of a log request. From and To are
// calendar days in UTC; a nil field is absent.
type LogQuery struct {
	From  *time.Time
	To    *time.Time
	Limit *int
}

// ParseLogQuery converts raw query string values into a LogQuery. Empty
// values are treated as absent; malformed values are rejected. A limit too
// large for an int is clamped to math.MaxInt.
func ParseLogQuery(from, to, limit string) (LogQuery, error) {
	var q LogQuery
	if from = strings.TrimSpace(from); from != "" {
		d, err := models.ParseDate(from)
		if err != nil {
			return LogQuery{}, apperror.Validation("Invalid from date")
		}
		d = models.DayOf(d)
		q.From = &d
	}
	if to = strings.TrimSpace(to); to != "" {
		d, err := models.ParseDate(to)
		if err != nil {
			return LogQuery{}, apperror.Validation("Invalid to date")
		}
		d = models.DayOf(d)
		q.To = &d
	}
	if limit = strings.TrimSpace(limit); limit != "" {
		n, err := strconv.Atoi(limit)
		if errors.Is(err, strconv.ErrRange) && !strings.HasPrefix(limit, "-") {
			// Larger than any log can be; equivalent to no limit.
			n, err = math.MaxInt, nil
		}
		if err != nil || n < 0 {
			return LogQuery{}, apperror.Validation("Invalid limit")
		}
		q.Limit = &n
	}
	return q, nil
}

// BuildLog filters exercises to the query's date range, orders them by
// ascending date, applies the limit and projects them to log entries.
// Exercises on the same date keep their input order.
func BuildLog(exercises []models.Exercise, q LogQuery) []models.LogEntry {
	kept := make([]models.Exercise, 0, len(exercises))
	for _, e := range exercises {
		day := models.DayOf(e.Date)
		if q.From != nil && day.Before(*q.From) {
			continue
		}
		if q.To != nil && day.After(*q.To) {
			continue
		}
		kept = append(kept, e)
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Date.Before(kept[j].Date)
	})

	if q.Limit != nil && *q.Limit < len(kept) {
		kept = kept[:*q.Limit]
	}

	entries := make([]models.LogEntry, 0, len(kept))
	for _, e := range kept {
		entries = append(entries, e.Entry())
	}
	return entries
}

// LogService answers exercise log queries.
type LogService struct {
	users     repositories.UserRepository
	exercises repositories.ExerciseRepository
}

// NewLogService creates a new LogService.
func NewLogService(users repositories.UserRepository, exercises repositories.ExerciseRepository) *LogService {
	return &LogService{
		users:     users,
		exercises: exercises,
	}
}

// LogParams holds the raw from, to and limit values of a log request.
type LogParams struct {
	From  string
	To    string
	Limit string
}

// Query returns the log of the user identified by userID. The user is
// resolved before params are parsed, so an unknown user is always reported
// as not found.
func (s *LogService) Query(ctx context.Context, userID string, params LogParams) (*models.ExerciseLog, error) {
	user, err := findUser(ctx, s.users, userID)
	if err != nil {
		return nil, err
	}

	q, err := ParseLogQuery(params.From, params.To, params.Limit)
	if err != nil {
		return nil, err
	}

	exercises, err := s.exercises.GetByUser(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load exercises for user %s: %w", user.ID, err)
	}

	entries := BuildLog(exercises, q)
	metrics.LogEntriesReturned.Observe(float64(len(entries)))

	return &models.ExerciseLog{
		Username: user.Username,
		Count:    len(entries),
		ID:       user.ID,
		Log:      entries,
	}, nil
}
