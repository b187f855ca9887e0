// Package validate checks candidate overtime entries against the
// business rules and builds the immutable ledger snapshot.
package validate

import (
	"fmt"
	"strings"

	"github.com/jrequejo/horex/internal/model"
	"github.com/jrequejo/horex/internal/timecalc"
)

// Reason codes for rejected candidates.
const (
	CodeAuthorityRequired  = "authority_required"
	CodeEmployeeRequired   = "employee_required"
	CodeEmployeeOutOfScope = "employee_out_of_scope"
	CodeBadMoment          = "bad_moment"
	CodeIntervalOrder      = "interval_order"
)

// Error is a rejected-candidate error with a machine-readable reason code.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func reject(code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Candidate is a proposed overtime entry as submitted, before any rule
// has been checked. Employee fields are the submitted values, not yet
// resolved against the roster.
type Candidate struct {
	RegisteredBy string
	EmployeeID   string
	EntryDate    string
	EntryTime    string
	ExitDate     string
	ExitTime     string
	Note         string
}

// Entry validates c against the rules in order, short-circuiting on the
// first failure, and returns the accepted ledger snapshot. scope must be
// the employee set the Authority Resolver produced for c.RegisteredBy;
// an identifier that exists in the roster but is outside that scope is
// rejected. Validation is pure: no state is touched.
func Entry(c Candidate, scope []model.EmployeeRecord) (model.OvertimeEntry, error) {
	registeredBy := strings.TrimSpace(c.RegisteredBy)
	if registeredBy == "" {
		return model.OvertimeEntry{}, reject(CodeAuthorityRequired, "select who registers the entry")
	}

	id := strings.TrimSpace(c.EmployeeID)
	if id == "" {
		return model.OvertimeEntry{}, reject(CodeEmployeeRequired, "employee identifier is required")
	}
	var employee model.EmployeeRecord
	found := false
	for _, rec := range scope {
		if rec.Identifier == id {
			employee = rec
			found = true
			break
		}
	}
	if !found {
		return model.OvertimeEntry{}, reject(CodeEmployeeOutOfScope,
			"employee %s is not selectable by %s", id, registeredBy)
	}
	if employee.FullName == "" || employee.Code == "" || employee.Position == "" {
		return model.OvertimeEntry{}, reject(CodeEmployeeRequired,
			"employee %s has incomplete roster data", id)
	}

	// When no distinct exit date is supplied the interval is bounded
	// within the entry's calendar day.
	exitDate := strings.TrimSpace(c.ExitDate)
	if exitDate == "" {
		exitDate = strings.TrimSpace(c.EntryDate)
	}

	entryMoment, err := timecalc.Moment(strings.TrimSpace(c.EntryDate), strings.TrimSpace(c.EntryTime))
	if err != nil {
		return model.OvertimeEntry{}, reject(CodeBadMoment, "entry moment: %v", err)
	}
	exitMoment, err := timecalc.Moment(exitDate, strings.TrimSpace(c.ExitTime))
	if err != nil {
		return model.OvertimeEntry{}, reject(CodeBadMoment, "exit moment: %v", err)
	}
	if !exitMoment.After(entryMoment) {
		return model.OvertimeEntry{}, reject(CodeIntervalOrder,
			"exit moment must be later than entry moment")
	}

	return model.OvertimeEntry{
		RegisteredBy: registeredBy,
		EmployeeID:   employee.Identifier,
		FullName:     employee.FullName,
		Code:         employee.Code,
		Position:     employee.Position,
		EntryDate:    strings.TrimSpace(c.EntryDate),
		EntryTime:    strings.TrimSpace(c.EntryTime),
		ExitDate:     exitDate,
		ExitTime:     strings.TrimSpace(c.ExitTime),
		Note:         strings.TrimSpace(c.Note),
	}, nil
}

// Duration returns the validated interval length in seconds. It assumes
// e was produced by Entry and returns 0 on malformed moments.
func Duration(e model.OvertimeEntry) int64 {
	entry, err := timecalc.Moment(e.EntryDate, e.EntryTime)
	if err != nil {
		return 0
	}
	exit, err := timecalc.Moment(e.ExitDate, e.ExitTime)
	if err != nil {
		return 0
	}
	return int64(exit.Sub(entry).Seconds())
}
