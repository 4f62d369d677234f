package sprint

import (
	"sort"
	"strings"
	"time"
)

// Days returns the five sprint days in order.
func Days() []Day {
	out := make([]Day, len(days))
	for i, d := range days {
		out[i] = d.clone()
	}
	return out
}

// DayByNumber looks up a day by its 1-based position.
func DayByNumber(n int) (Day, bool) {
	if n < 1 || n > len(days) {
		return Day{}, false
	}
	return days[n-1].clone(), true
}

// DayByName matches a weekday name ("monday") or theme ("sketch"),
// ignoring case.
func DayByName(name string) (Day, bool) {
	name = strings.TrimSpace(name)
	for _, d := range days {
		if strings.EqualFold(d.Name, name) || strings.EqualFold(d.Theme, name) {
			return d.clone(), true
		}
	}
	return Day{}, false
}

// ActivitiesByRole returns every activity led by role, Monday first.
func ActivitiesByRole(role Role) []Activity {
	out := []Activity{}
	for _, d := range days {
		for _, a := range d.Activities {
			if a.Lead == role {
				out = append(out, a)
			}
		}
	}
	return out
}

// TotalMinutes sums the planned minutes of a day's activities.
func TotalMinutes(d Day) int {
	total := 0
	for _, a := range d.Activities {
		total += a.Minutes
	}
	return total
}

// Roles returns the sprint roles.
func Roles() []RoleInfo {
	out := make([]RoleInfo, len(roles))
	for i, r := range roles {
		out[i] = r.clone()
	}
	return out
}

// RoleByKey looks up a role description.
func RoleByKey(role Role) (RoleInfo, bool) {
	for _, r := range roles {
		if r.Role == role {
			return r.clone(), true
		}
	}
	return RoleInfo{}, false
}

// InterviewActs returns the five acts of the Friday interview.
func InterviewActs() []InterviewAct {
	out := make([]InterviewAct, len(interviewActs))
	for i, a := range interviewActs {
		out[i] = a.clone()
	}
	return out
}

// Session pairs a calendar date with the sprint day run on it.
type Session struct {
	Date time.Time `json:"date"`
	Day  Day       `json:"day"`
}

// Schedule lays the sprint over the first five weekdays on or after start.
func Schedule(start time.Time) []Session {
	y, m, d := start.Date()
	date := time.Date(y, m, d, 0, 0, 0, 0, start.Location())

	out := make([]Session, 0, len(days))
	for len(out) < len(days) {
		if wd := date.Weekday(); wd != time.Saturday && wd != time.Sunday {
			out = append(out, Session{Date: date, Day: days[len(out)].clone()})
		}
		date = date.AddDate(0, 0, 1)
	}
	return out
}

// Vote is one dot placed during the straw poll or supervote.
type Vote struct {
	Voter     string `json:"voter"`
	Option    string `json:"option"`
	Supervote bool   `json:"supervote"`
}

// VoteCount is the tally for one option.
type VoteCount struct {
	Option     string `json:"option"`
	Votes      int    `json:"votes"`
	Supervotes int    `json:"supervotes"`
}

// Tally counts votes per option. Options are ordered:
// 1. Supervotes: more first (the Decider's call wins)
// 2. Votes: more first
// 3. Option: lexical ascending
func Tally(votes []Vote) []VoteCount {
	idx := map[string]int{}
	out := []VoteCount{}
	for _, v := range votes {
		option := strings.TrimSpace(v.Option)
		if option == "" {
			continue
		}
		i, ok := idx[option]
		if !ok {
			i = len(out)
			idx[option] = i
			out = append(out, VoteCount{Option: option})
		}
		if v.Supervote {
			out[i].Supervotes++
		} else {
			out[i].Votes++
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Supervotes != b.Supervotes {
			return a.Supervotes > b.Supervotes
		}
		if a.Votes != b.Votes {
			return a.Votes > b.Votes
		}
		return a.Option < b.Option
	})
	return out
}
