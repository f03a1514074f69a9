package launch

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"
)

// Status is the pipeline stage of a launch.
type Status string

const (
	StatusPlanning   Status = "Planning"
	StatusInProgress Status = "In Progress"
	StatusReady      Status = "Ready"
	StatusShipped    Status = "Shipped"
)

// Statuses lists every status in pipeline order.
var Statuses = []Status{StatusPlanning, StatusInProgress, StatusReady, StatusShipped}

// DateLayout is the calendar date format used for launch dates.
const DateLayout = "2006-01-02"

func IsValidStatus(s Status) bool {
	switch s {
	case StatusPlanning, StatusInProgress, StatusReady, StatusShipped:
		return true
	default:
		return false
	}
}

// ParseStatus maps a label to a Status. Matching ignores case and surrounding
// whitespace; an empty label means Planning.
func ParseStatus(s string) (Status, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return StatusPlanning, nil
	}
	for _, st := range Statuses {
		if strings.EqualFold(s, string(st)) {
			return st, nil
		}
	}
	return "", &ValidationError{
		Fields: []string{"status"},
		Msg:    fmt.Sprintf("unknown status %q (want one of Planning, In Progress, Ready, Shipped)", s),
	}
}

// Checklist is the fixed set of launch assets.
type Checklist struct {
	Blog    bool `json:"blog"`
	Demo    bool `json:"demo"`
	Social  bool `json:"social"`
	Partner bool `json:"partner"`
	Docs    bool `json:"docs"`
}

// ChecklistKeys is the display order of checklist items.
var ChecklistKeys = []string{"blog", "demo", "social", "partner", "docs"}

// ChecklistItem is one rendered checklist row.
type ChecklistItem struct {
	Key  string `json:"key"`
	Done bool   `json:"done"`
}

func (c Checklist) Items() []ChecklistItem {
	return []ChecklistItem{
		{Key: "blog", Done: c.Blog},
		{Key: "demo", Done: c.Demo},
		{Key: "social", Done: c.Social},
		{Key: "partner", Done: c.Partner},
		{Key: "docs", Done: c.Docs},
	}
}

// Completed returns the number of checked items.
func (c Checklist) Completed() int {
	n := 0
	for _, it := range c.Items() {
		if it.Done {
			n++
		}
	}
	return n
}

// Progress returns the completion percentage, one of 0, 20, 40, 60, 80, 100.
func (c Checklist) Progress() int {
	return int(math.Round(100 * float64(c.Completed()) / float64(len(ChecklistKeys))))
}

// Set checks or unchecks the named item.
func (c *Checklist) Set(key string, done bool) error {
	switch strings.ToLower(strings.TrimSpace(key)) {
	case "blog":
		c.Blog = done
	case "demo":
		c.Demo = done
	case "social":
		c.Social = done
	case "partner":
		c.Partner = done
	case "docs":
		c.Docs = done
	default:
		return &ValidationError{Fields: []string{"checklist"}, Msg: fmt.Sprintf("unknown checklist item %q", key)}
	}
	return nil
}

// ChecklistFromKeys returns a checklist with the named items checked.
func ChecklistFromKeys(keys []string) (Checklist, error) {
	var c Checklist
	for _, k := range keys {
		if strings.TrimSpace(k) == "" {
			continue
		}
		if err := c.Set(k, true); err != nil {
			return Checklist{}, err
		}
	}
	return c, nil
}

// Launch is a trackable feature release.
type Launch struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      Status     `json:"status"`
	LaunchDate  *time.Time `json:"-"`
	Owner       string     `json:"owner,omitempty"`
	Checklist   Checklist  `json:"checklist"`
	Tags        []string   `json:"tags"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Progress is the checklist completion percentage.
func (l Launch) Progress() int {
	return l.Checklist.Progress()
}

// LaunchDateString returns the launch date as YYYY-MM-DD, or "".
func (l Launch) LaunchDateString() string {
	if l.LaunchDate == nil {
		return ""
	}
	return l.LaunchDate.Format(DateLayout)
}

type launchJSON struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      Status    `json:"status"`
	LaunchDate  string    `json:"launch_date,omitempty"`
	Owner       string    `json:"owner,omitempty"`
	Checklist   Checklist `json:"checklist"`
	Tags        []string  `json:"tags"`
	Progress    int       `json:"progress"`
	CreatedAt   time.Time `json:"created_at"`
}

func (l Launch) MarshalJSON() ([]byte, error) {
	tags := l.Tags
	if tags == nil {
		tags = []string{}
	}
	return json.Marshal(launchJSON{
		ID:          l.ID,
		Title:       l.Title,
		Description: l.Description,
		Status:      l.Status,
		LaunchDate:  l.LaunchDateString(),
		Owner:       l.Owner,
		Checklist:   l.Checklist,
		Tags:        tags,
		Progress:    l.Progress(),
		CreatedAt:   l.CreatedAt,
	})
}

// ParseTags splits a comma-separated tag list, trimming and dropping empties.
func ParseTags(csv string) []string {
	return normalizeTags(strings.Split(csv, ","))
}

// cleanText trims s and replaces invalid UTF-8 with U+FFFD.
func cleanText(s string) string {
	return strings.TrimSpace(strings.ToValidUTF8(s, "\uFFFD"))
}

func normalizeTags(in []string) []string {
	tags := make([]string, 0, len(in))
	for _, t := range in {
		if t = cleanText(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// ParseDate parses an optional YYYY-MM-DD date. Empty input yields nil.
func ParseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, &ValidationError{Fields: []string{"launch_date"}, Msg: fmt.Sprintf("invalid launch date %q (want YYYY-MM-DD)", s)}
	}
	return &t, nil
}

// Fields is the editable part of a launch, as submitted by a form or tool.
type Fields struct {
	Title       string    `json:"title" yaml:"title"`
	Description string    `json:"description" yaml:"description"`
	Status      string    `json:"status" yaml:"status"`
	LaunchDate  string    `json:"launch_date" yaml:"launch_date"`
	Owner       string    `json:"owner" yaml:"owner"`
	Tags        []string  `json:"tags" yaml:"tags"`
	Checklist   Checklist `json:"checklist" yaml:"checklist"`
}

// apply validates the fields and copies them onto l. Nothing is written to l
// unless every field is valid.
func (f Fields) apply(l *Launch) error {
	title := cleanText(f.Title)
	if title == "" {
		return &ValidationError{Fields: []string{"title"}, Msg: "title is required"}
	}
	status, err := ParseStatus(f.Status)
	if err != nil {
		return err
	}
	date, err := ParseDate(f.LaunchDate)
	if err != nil {
		return err
	}

	l.Title = title
	l.Description = cleanText(f.Description)
	l.Status = status
	l.LaunchDate = date
	l.Owner = cleanText(f.Owner)
	l.Tags = normalizeTags(f.Tags)
	l.Checklist = f.Checklist
	return nil
}

// FieldsOf returns the editable fields of an existing launch.
func FieldsOf(l Launch) Fields {
	return Fields{
		Title:       l.Title,
		Description: l.Description,
		Status:      string(l.Status),
		LaunchDate:  l.LaunchDateString(),
		Owner:       l.Owner,
		Tags:        append([]string(nil), l.Tags...),
		Checklist:   l.Checklist,
	}
}

// Activity is one append-only audit entry.
type Activity struct {
	ID        int64          `json:"id"`
	Action    string         `json:"action"`
	UserName  string         `json:"user_name,omitempty"`
	Details   map[string]any `json:"details,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

const (
	ActionCreated = "created a new launch"
	ActionUpdated = "updated a launch"
	ActionDeleted = "deleted a launch"
)

// AnonymousActor is recorded when no actor can be determined.
const AnonymousActor = "Anonymous"
