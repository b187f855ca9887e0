// Package authority scopes the roster by registering coordinator.
package authority

import (
	"sort"
	"strings"

	"github.com/jrequejo/horex/internal/model"
	"github.com/jrequejo/horex/internal/roster"
)

// Resolver maps a registering coordinator to the employees they may log
// overtime for. The supervisor identity sees the whole roster; any other
// coordinator sees only records reporting to them.
type Resolver struct {
	// Supervisor is the designated top-level identity with unscoped access.
	Supervisor string
	// Designated are coordinator identities always present in the choice
	// set, whether or not the roster mentions them.
	Designated []string
}

// Authorities returns the coordinator choice set: the designated list
// plus every distinct non-empty reports-to value found in the roster,
// deduplicated (case-sensitive, after trimming) and sorted.
func (r Resolver) Authorities(idx *roster.Index) []string {
	seen := map[string]bool{}
	var out []string
	add := func(name string) {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			return
		}
		seen[name] = true
		out = append(out, name)
	}

	for _, name := range r.Designated {
		add(name)
	}
	for _, rec := range idx.All() {
		add(rec.ReportsToCoordinator)
	}
	sort.Strings(out)
	return out
}

// Filter returns the employees the given coordinator may select, in
// roster order, optionally narrowed by a case-insensitive substring
// match against the full name. An empty coordinator yields no records:
// employee selection is not allowed before an authority is picked.
func (r Resolver) Filter(idx *roster.Index, coordinator, term string) []model.EmployeeRecord {
	coordinator = strings.TrimSpace(coordinator)
	if coordinator == "" {
		return nil
	}

	term = strings.ToLower(strings.TrimSpace(term))
	var out []model.EmployeeRecord
	for _, rec := range idx.All() {
		if coordinator != r.Supervisor && strings.TrimSpace(rec.ReportsToCoordinator) != coordinator {
			continue
		}
		if term != "" && !strings.Contains(strings.ToLower(rec.FullName), term) {
			continue
		}
		out = append(out, rec)
	}
	return out
}
