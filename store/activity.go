package store

import (
	"context"

	log "github.com/sirupsen/logrus"

	"github.com/ztrade/launchweek/launch"
)

const (
	defaultActivityPage = 50
	maxActivityPage     = 500
)

// AppendActivity inserts one activity entry and sets its id and timestamp.
func (s *Store) AppendActivity(ctx context.Context, a *launch.Activity) error {
	rec := &ActivityRecord{
		Action:   a.Action,
		UserName: a.UserName,
		Details:  a.Details,
	}
	if fields := sanitizeActivityForInsert(rec); len(fields) > 0 {
		log.WithField("fields", fields).Warn("clipped oversized activity fields")
	}
	if _, err := s.engine.Context(ctx).Insert(rec); err != nil {
		return err
	}
	a.ID = rec.ID
	a.CreatedAt = rec.CreatedAt
	return nil
}

// ListActivity returns the newest activity entries.
func (s *Store) ListActivity(ctx context.Context, limit int) ([]launch.Activity, error) {
	entries, _, err := s.PageActivity(ctx, 0, limit)
	return entries, err
}

// PageActivity returns one page of the activity log, newest first, and the
// total number of entries.
func (s *Store) PageActivity(ctx context.Context, offset, limit int) ([]launch.Activity, int64, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultActivityPage
	}
	if limit > maxActivityPage {
		limit = maxActivityPage
	}

	total, err := s.engine.Context(ctx).Count(new(ActivityRecord))
	if err != nil {
		return nil, 0, err
	}

	var records []ActivityRecord
	err = s.engine.Context(ctx).Desc("created_at", "id").Limit(limit, offset).Find(&records)
	if err != nil {
		return nil, 0, err
	}

	out := make([]launch.Activity, 0, len(records))
	for _, r := range records {
		out = append(out, launch.Activity{
			ID:        r.ID,
			Action:    r.Action,
			UserName:  r.UserName,
			Details:   r.Details,
			CreatedAt: r.CreatedAt,
		})
	}
	return out, total, nil
}
