package launch

import "strings"

// StatusFilter selects launches by status. The zero value and StatusAll
// match everything.
type StatusFilter string

const StatusAll StatusFilter = "All"

// ParseStatusFilter accepts "All", "" or any status label.
func ParseStatusFilter(s string) (StatusFilter, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, string(StatusAll)) {
		return StatusAll, nil
	}
	st, err := ParseStatus(s)
	if err != nil {
		return "", err
	}
	return StatusFilter(st), nil
}

func (f StatusFilter) matches(s Status) bool {
	return f == "" || f == StatusAll || Status(f) == s
}

// Filter returns the launches whose title, description or owner contains
// query (case-insensitive) and whose status passes the filter. Order is
// preserved and the input slice is not modified.
func Filter(launches []Launch, query string, status StatusFilter) []Launch {
	q := strings.ToLower(query)
	out := make([]Launch, 0, len(launches))
	for _, l := range launches {
		if !status.matches(l.Status) {
			continue
		}
		if q != "" && !matchesQuery(l, q) {
			continue
		}
		out = append(out, l)
	}
	return out
}

func matchesQuery(l Launch, q string) bool {
	return strings.Contains(strings.ToLower(l.Title), q) ||
		strings.Contains(strings.ToLower(l.Description), q) ||
		strings.Contains(strings.ToLower(l.Owner), q)
}
