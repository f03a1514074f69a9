package store

import (
	"context"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	_ "modernc.org/sqlite"
	"xorm.io/xorm"

	"github.com/ztrade/launchweek/launch"
)

// LaunchRecord is the launches table row.
type LaunchRecord struct {
	Seq         int64            `xorm:"pk autoincr" json:"-"`
	ID          string           `xorm:"'launch_id' varchar(36) notnull unique" json:"id"`
	Title       string           `xorm:"varchar(200) notnull" json:"title"`
	Description string           `xorm:"text" json:"description"`
	Status      string           `xorm:"varchar(20) notnull default('Planning') index" json:"status"`
	LaunchDate  string           `xorm:"varchar(10)" json:"launchDate"`
	Owner       string           `xorm:"varchar(100)" json:"owner"`
	Checklist   launch.Checklist `xorm:"text json" json:"checklist"`
	Tags        []string         `xorm:"text json" json:"tags"`
	CreatedAt   time.Time        `xorm:"created index" json:"createdAt"`
	UpdatedAt   time.Time        `xorm:"updated" json:"updatedAt"`
}

func (LaunchRecord) TableName() string {
	return "launches"
}

// ActivityRecord is the activity_log table row. Rows are only ever inserted.
type ActivityRecord struct {
	ID        int64          `xorm:"pk autoincr" json:"id"`
	Action    string         `xorm:"varchar(100) notnull" json:"action"`
	UserName  string         `xorm:"varchar(100)" json:"userName"`
	Details   map[string]any `xorm:"text json" json:"details"`
	CreatedAt time.Time      `xorm:"created index" json:"createdAt"`
}

func (ActivityRecord) TableName() string {
	return "activity_log"
}

// Store persists launches and the activity log.
type Store struct {
	engine *xorm.Engine
}

// NewStore creates a new Store from viper config.
func NewStore(cfg *viper.Viper) (*Store, error) {
	dbType := cfg.GetString("db.type")
	dbURI := cfg.GetString("db.uri")
	if dbType == "" || dbURI == "" {
		return nil, fmt.Errorf("db.type and db.uri must be configured")
	}
	st, err := Open(dbType, dbURI)
	if err != nil {
		return nil, err
	}
	st.engine.ShowSQL(cfg.GetBool("db.showSQL"))
	return st, nil
}

// Open connects to the database and syncs the schema. dbType is an xorm
// driver name: "mysql" or "sqlite".
func Open(dbType, dbURI string) (*Store, error) {
	engine, err := xorm.NewEngine(dbType, dbURI)
	if err != nil {
		return nil, fmt.Errorf("failed to create db engine: %w", err)
	}
	if dbType == "sqlite" || dbType == "sqlite3" {
		// sqlite serializes writers; a single connection avoids SQLITE_BUSY.
		engine.SetMaxOpenConns(1)
	}

	if err := engine.Sync2(new(LaunchRecord), new(ActivityRecord)); err != nil {
		engine.Close()
		return nil, fmt.Errorf("failed to sync tables: %w", err)
	}

	log.WithField("db", dbType).Info("Launch store initialized")
	return &Store{engine: engine}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.engine.Close()
}

// --- Launch CRUD ---

// ListLaunches returns all launches, newest first.
func (s *Store) ListLaunches(ctx context.Context) ([]launch.Launch, error) {
	var records []LaunchRecord
	err := s.engine.Context(ctx).OrderBy("created_at DESC, seq DESC").Find(&records)
	if err != nil {
		return nil, err
	}
	out := make([]launch.Launch, 0, len(records))
	for i := range records {
		out = append(out, records[i].toLaunch())
	}
	return out, nil
}

// GetLaunch retrieves a launch by its public id.
func (s *Store) GetLaunch(ctx context.Context, id string) (*launch.Launch, error) {
	rec, err := s.getRecord(ctx, id)
	if err != nil {
		return nil, err
	}
	l := rec.toLaunch()
	return &l, nil
}

func (s *Store) getRecord(ctx context.Context, id string) (*LaunchRecord, error) {
	rec := &LaunchRecord{}
	has, err := s.engine.Context(ctx).Where("launch_id = ?", id).Get(rec)
	if err != nil {
		return nil, err
	}
	if !has {
		return nil, &launch.NotFoundError{Kind: "launch", ID: id}
	}
	return rec, nil
}

// InsertLaunch stores a new launch and sets its CreatedAt.
func (s *Store) InsertLaunch(ctx context.Context, l *launch.Launch) error {
	rec := fromLaunch(*l)
	if fields := sanitizeLaunchForInsert(rec); len(fields) > 0 {
		log.WithField("fields", fields).Warn("clipped oversized launch fields")
	}
	if _, err := s.engine.Context(ctx).Insert(rec); err != nil {
		return err
	}
	l.Title = rec.Title
	l.Owner = rec.Owner
	l.CreatedAt = rec.CreatedAt
	return nil
}

// UpdateLaunch overwrites every editable column of an existing launch.
func (s *Store) UpdateLaunch(ctx context.Context, l *launch.Launch) error {
	rec := fromLaunch(*l)
	if fields := sanitizeLaunchForInsert(rec); len(fields) > 0 {
		log.WithField("fields", fields).Warn("clipped oversized launch fields")
	}
	n, err := s.engine.Context(ctx).
		Where("launch_id = ?", l.ID).
		Cols("title", "description", "status", "launch_date", "owner", "checklist", "tags", "updated_at").
		Update(rec)
	if err != nil {
		return err
	}
	if n == 0 {
		// MySQL reports zero affected rows for no-op updates, so confirm the row exists.
		if _, err := s.getRecord(ctx, l.ID); err != nil {
			return err
		}
	}
	l.Title = rec.Title
	l.Owner = rec.Owner
	return nil
}

// DeleteLaunch removes a launch.
func (s *Store) DeleteLaunch(ctx context.Context, id string) error {
	n, err := s.engine.Context(ctx).Where("launch_id = ?", id).Delete(new(LaunchRecord))
	if err != nil {
		return err
	}
	if n == 0 {
		return &launch.NotFoundError{Kind: "launch", ID: id}
	}
	return nil
}

func fromLaunch(l launch.Launch) *LaunchRecord {
	tags := l.Tags
	if tags == nil {
		tags = []string{}
	}
	return &LaunchRecord{
		ID:          l.ID,
		Title:       l.Title,
		Description: l.Description,
		Status:      string(l.Status),
		LaunchDate:  l.LaunchDateString(),
		Owner:       l.Owner,
		Checklist:   l.Checklist,
		Tags:        tags,
	}
}

func (r *LaunchRecord) toLaunch() launch.Launch {
	l := launch.Launch{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Status:      launch.Status(r.Status),
		Owner:       r.Owner,
		Checklist:   r.Checklist,
		Tags:        r.Tags,
		CreatedAt:   r.CreatedAt,
	}
	if l.Tags == nil {
		l.Tags = []string{}
	}
	if d, err := launch.ParseDate(r.LaunchDate); err == nil {
		l.LaunchDate = d
	} else {
		log.WithField("launch_id", r.ID).Warnf("ignoring unparsable launch date %q", r.LaunchDate)
	}
	return l
}
