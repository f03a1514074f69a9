package launch

import (
	"context"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Backend persists launches. Implementations return *NotFoundError for
// unknown ids; any other error is treated as a backend failure.
type Backend interface {
	ListLaunches(ctx context.Context) ([]Launch, error)
	GetLaunch(ctx context.Context, id string) (*Launch, error)
	InsertLaunch(ctx context.Context, l *Launch) error
	UpdateLaunch(ctx context.Context, l *Launch) error
	DeleteLaunch(ctx context.Context, id string) error
}

// ActivityRecorder appends to and reads the activity log.
type ActivityRecorder interface {
	AppendActivity(ctx context.Context, a *Activity) error
	ListActivity(ctx context.Context, limit int) ([]Activity, error)
}

// DefaultActivityLimit is the size of the dashboard's recent activity panel.
const DefaultActivityLimit = 8

// MaxActivityLimit caps a single activity read.
const MaxActivityLimit = 100

// Service implements the launch lifecycle on top of a Backend, recording one
// activity entry per successful mutation.
type Service struct {
	backend  Backend
	activity ActivityRecorder
	actor    func(ctx context.Context) string
	newID    func() string
}

type Option func(*Service)

// WithActor sets the function resolving the acting user's name from a
// request context. An empty result falls back to the launch owner.
func WithActor(fn func(ctx context.Context) string) Option {
	return func(s *Service) { s.actor = fn }
}

// WithIDGenerator overrides launch id generation.
func WithIDGenerator(fn func() string) Option {
	return func(s *Service) { s.newID = fn }
}

func NewService(backend Backend, activity ActivityRecorder, opts ...Option) *Service {
	s := &Service{
		backend:  backend,
		activity: activity,
		actor:    func(context.Context) string { return "" },
		newID:    func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List returns every launch, newest first.
func (s *Service) List(ctx context.Context) ([]Launch, error) {
	launches, err := s.backend.ListLaunches(ctx)
	if err != nil {
		return nil, &BackendError{Op: "list launches", Err: err}
	}
	return launches, nil
}

func (s *Service) Get(ctx context.Context, id string) (Launch, error) {
	l, err := s.backend.GetLaunch(ctx, id)
	if err != nil {
		return Launch{}, s.wrap("get launch", err)
	}
	return *l, nil
}

// Create validates f and inserts a new launch. Invalid input never reaches
// the backend.
func (s *Service) Create(ctx context.Context, f Fields) (Launch, error) {
	var l Launch
	if err := f.apply(&l); err != nil {
		return Launch{}, err
	}
	l.ID = s.newID()

	if err := s.backend.InsertLaunch(ctx, &l); err != nil {
		return Launch{}, &BackendError{Op: "create launch", Err: err}
	}
	s.record(ctx, ActionCreated, l)
	return l, nil
}

// Update replaces every editable field of the launch with f.
func (s *Service) Update(ctx context.Context, id string, f Fields) (Launch, error) {
	var scratch Launch
	if err := f.apply(&scratch); err != nil {
		return Launch{}, err
	}

	existing, err := s.backend.GetLaunch(ctx, id)
	if err != nil {
		return Launch{}, s.wrap("update launch", err)
	}
	l := *existing
	if err := f.apply(&l); err != nil {
		return Launch{}, err
	}

	if err := s.backend.UpdateLaunch(ctx, &l); err != nil {
		return Launch{}, s.wrap("update launch", err)
	}
	s.record(ctx, ActionUpdated, l)
	return l, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	existing, err := s.backend.GetLaunch(ctx, id)
	if err != nil {
		return s.wrap("delete launch", err)
	}
	if err := s.backend.DeleteLaunch(ctx, id); err != nil {
		return s.wrap("delete launch", err)
	}
	s.record(ctx, ActionDeleted, *existing)
	return nil
}

// RecentActivity returns the newest activity entries. limit <= 0 uses
// DefaultActivityLimit and larger limits are capped at MaxActivityLimit.
func (s *Service) RecentActivity(ctx context.Context, limit int) ([]Activity, error) {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}
	if limit > MaxActivityLimit {
		limit = MaxActivityLimit
	}
	entries, err := s.activity.ListActivity(ctx, limit)
	if err != nil {
		return nil, &BackendError{Op: "list activity", Err: err}
	}
	return entries, nil
}

// record appends an activity entry. Failures are logged and dropped; the
// mutation has already been committed.
func (s *Service) record(ctx context.Context, action string, l Launch) {
	entry := &Activity{
		Action:   action,
		UserName: s.actorName(ctx, l),
		Details: map[string]any{
			"launch_id":    l.ID,
			"launch_title": l.Title,
		},
	}
	if err := s.activity.AppendActivity(ctx, entry); err != nil {
		log.WithFields(log.Fields{
			"action":    action,
			"launch_id": l.ID,
		}).Warnf("append activity failed: %s", err.Error())
	}
}

func (s *Service) actorName(ctx context.Context, l Launch) string {
	if name := strings.TrimSpace(s.actor(ctx)); name != "" {
		return name
	}
	if l.Owner != "" {
		return l.Owner
	}
	return AnonymousActor
}

func (s *Service) wrap(op string, err error) error {
	if IsNotFound(err) {
		return err
	}
	return &BackendError{Op: op, Err: err}
}
