package launch

import (
	"fmt"
	"sort"
	"time"
)

// Stats are the dashboard counters.
type Stats struct {
	Total      int `json:"total"`
	Active     int `json:"active"`
	Completed  int `json:"completed"`
	InProgress int `json:"inProgress"`
	Upcoming   int `json:"upcoming"`
}

func ComputeStats(launches []Launch) Stats {
	st := Stats{Total: len(launches)}
	for _, l := range launches {
		switch l.Status {
		case StatusInProgress:
			st.Active++
			st.InProgress++
		case StatusReady:
			st.InProgress++
		case StatusShipped:
			st.Completed++
		case StatusPlanning:
			st.Upcoming++
		}
	}
	return st
}

// DefaultUpcomingLimit is how many upcoming launches the dashboard shows.
const DefaultUpcomingLimit = 4

// Upcoming returns up to n launches dated after now, soonest first.
func Upcoming(launches []Launch, now time.Time, n int) []Launch {
	var out []Launch
	for _, l := range launches {
		if l.LaunchDate != nil && l.LaunchDate.After(now) {
			out = append(out, l)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LaunchDate.Before(*out[j].LaunchDate)
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// FormatDate renders t as "Jan 2, 2006".
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// RelativeTime renders how long ago t was, falling back to the date after a week.
func RelativeTime(t, now time.Time) string {
	d := now.Sub(t)
	if d < 0 {
		d = -d
	}
	switch {
	case d < time.Hour:
		return "Just now"
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	case d < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	default:
		return FormatDate(t)
	}
}
