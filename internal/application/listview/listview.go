// Package listview derives the filtered and grouped interview views shown on the dashboard
// and on the cross-user page. Everything here is pure and recomputed per call.
package listview

import (
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/khoahotran/interview-tracker/internal/domain/interview"
)

type Scope int

const (
	// ScopeOwner groups by (profile, company).
	ScopeOwner Scope = iota
	// ScopeAll groups by (user name, profile, company).
	ScopeAll
)

type Row struct {
	Interview *interview.Interview `json:"interview"`
	UserName  string               `json:"user_name,omitempty"`
}

type Filter struct {
	UserName string
	Profiles []string
	Company  string
	Status   interview.State
	DateFrom *time.Time
	DateTo   *time.Time
}

func (f Filter) Active() bool {
	return f.UserName != "" || len(f.Profiles) > 0 || f.Company != "" || f.Status != "" ||
		f.DateFrom != nil || f.DateTo != nil
}

type Group struct {
	Key          string          `json:"key"`
	UserName     string          `json:"user_name,omitempty"`
	Profile      string          `json:"profile"`
	Company      string          `json:"company"`
	Members      []Row           `json:"members"`
	Latest       Row             `json:"latest"`
	LatestStatus interview.State `json:"latest_status"`
}

type Result struct {
	Rows   []Row   `json:"rows"`
	Groups []Group `json:"groups"`
}

type groupKey struct {
	user, profile, company string
}

func keyOf(r Row, scope Scope) groupKey {
	k := groupKey{profile: r.Interview.Profile, company: r.Interview.Company}
	if scope == ScopeAll {
		k.user = r.UserName
	}
	return k
}

func (k groupKey) String(scope Scope) string {
	if scope == ScopeAll {
		return k.user + "-" + k.profile + "-" + k.company
	}
	return k.profile + "-" + k.company
}

// before orders rows by interview date, then by id so equal dates have a fixed order.
func before(a, b Row) bool {
	da, db := a.Interview.InterviewDate, b.Interview.InterviewDate
	if !da.Equal(db) {
		return da.Before(db)
	}
	return a.Interview.ID.String() < b.Interview.ID.String()
}

func compareRows(a, b Row) int {
	switch {
	case before(a, b):
		return -1
	case before(b, a):
		return 1
	}
	return 0
}

func latestOf(rows []Row) Row {
	return lo.MaxBy(rows, func(a, b Row) bool { return before(b, a) })
}

// Apply filters rows and groups the survivors.
func Apply(rows []Row, f Filter, scope Scope) Result {
	filtered := FilterRows(rows, f, scope)
	return Result{Rows: filtered, Groups: GroupRows(filtered, scope)}
}

// FilterRows keeps rows satisfying every predicate of f, preserving input order. The status
// predicate looks at the latest member of the row's group computed over all of rows, so a
// group matches only through its most recent interview.
func FilterRows(rows []Row, f Filter, scope Scope) []Row {
	if !f.Active() {
		return rows
	}

	var latestByKey map[groupKey]interview.State
	if f.Status != "" {
		grouped := lo.GroupBy(rows, func(r Row) groupKey { return keyOf(r, scope) })
		latestByKey = lo.MapValues(grouped, func(members []Row, _ groupKey) interview.State {
			return latestOf(members).Interview.State
		})
	}

	company := strings.ToLower(f.Company)

	return lo.Filter(rows, func(r Row, _ int) bool {
		iv := r.Interview
		if scope == ScopeAll && f.UserName != "" && r.UserName != f.UserName {
			return false
		}
		if len(f.Profiles) > 0 && !lo.Contains(f.Profiles, iv.Profile) {
			return false
		}
		if company != "" && !strings.Contains(strings.ToLower(iv.Company), company) {
			return false
		}
		if f.Status != "" && latestByKey[keyOf(r, scope)] != f.Status {
			return false
		}
		if f.DateFrom != nil && iv.InterviewDate.Before(*f.DateFrom) {
			return false
		}
		if f.DateTo != nil && iv.InterviewDate.After(*f.DateTo) {
			return false
		}
		return true
	})
}

// GroupRows partitions rows by composite key. Groups keep first-appearance order; members are
// sorted ascending by date and the last member decides the group's status.
func GroupRows(rows []Row, scope Scope) []Group {
	grouped := lo.GroupBy(rows, func(r Row) groupKey { return keyOf(r, scope) })
	order := lo.Uniq(lo.Map(rows, func(r Row, _ int) groupKey { return keyOf(r, scope) }))

	return lo.Map(order, func(k groupKey, _ int) Group {
		members := slices.Clone(grouped[k])
		slices.SortStableFunc(members, compareRows)
		latest := members[len(members)-1]
		return Group{
			Key:          k.String(scope),
			UserName:     k.user,
			Profile:      k.profile,
			Company:      k.company,
			Members:      members,
			Latest:       latest,
			LatestStatus: latest.Interview.State,
		}
	})
}

func UniqueProfiles(rows []Row) []string {
	return sortedUniq(lo.Map(rows, func(r Row, _ int) string { return r.Interview.Profile }))
}

func UniqueUserNames(rows []Row) []string {
	return sortedUniq(lo.Map(rows, func(r Row, _ int) string { return r.UserName }))
}

// ProfilesForUser lists the profiles used by one user; an empty name means everyone.
func ProfilesForUser(rows []Row, userName string) []string {
	if userName == "" {
		return UniqueProfiles(rows)
	}
	return UniqueProfiles(lo.Filter(rows, func(r Row, _ int) bool { return r.UserName == userName }))
}

func sortedUniq(values []string) []string {
	out := lo.Uniq(lo.Compact(values))
	slices.Sort(out)
	return out
}

// RowsOf wraps interviews for the owner scoped view.
func RowsOf(items []*interview.Interview) []Row {
	return lo.Map(items, func(iv *interview.Interview, _ int) Row { return Row{Interview: iv} })
}
