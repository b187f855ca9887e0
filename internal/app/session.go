// Package app owns the per-process session state: the immutable roster
// index, the authority resolver and the mutable ledger. Presentation
// surfaces (CLI commands, the HTTP handlers) drive it through methods
// and observe it through optional hooks; the session itself never
// touches a presentation surface.
package app

import (
	"context"
	"log"
	"time"

	"github.com/jrequejo/horex/internal/authority"
	"github.com/jrequejo/horex/internal/config"
	"github.com/jrequejo/horex/internal/export"
	"github.com/jrequejo/horex/internal/ledger"
	"github.com/jrequejo/horex/internal/model"
	"github.com/jrequejo/horex/internal/roster"
	"github.com/jrequejo/horex/internal/validate"
)

// Hooks are optional presentation callbacks. Nil hooks are skipped.
type Hooks struct {
	OnRosterLoaded       func(err error)
	OnAuthoritiesChanged func([]string)
	OnCandidatesChanged  func([]model.EmployeeRecord)
	OnEntryAccepted      func(model.OvertimeEntry)
	OnEntryRejected      func(err error)
	OnLedgerChanged      func([]model.OvertimeEntry)
}

// Session is the application context. Lifecycle: New → Init (roster and
// ledger populated) → used for the rest of the process; a failed roster
// load degrades to an empty index for the whole session, no retry.
type Session struct {
	cfg      config.Config
	hooks    Hooks
	resolver authority.Resolver

	roster *roster.Index
	store  *ledger.Store
}

// New builds an uninitialized session.
func New(cfg config.Config, hooks Hooks) *Session {
	return &Session{
		cfg:   cfg,
		hooks: hooks,
		resolver: authority.Resolver{
			Supervisor: cfg.Supervisor,
			Designated: cfg.Coordinators,
		},
		roster: roster.Load(""),
	}
}

// Init opens the persisted ledger and loads the roster. A roster load
// failure is non-fatal: the session continues with an empty index and
// the failure is surfaced through OnRosterLoaded and a diagnostic. A
// ledger open failure is fatal for the session.
func (s *Session) Init(ctx context.Context) error {
	store, err := ledger.Open(s.cfg.DataDir)
	if err != nil {
		return err
	}
	s.store = store

	idx, err := roster.LoadSource(ctx, s.cfg.RosterSource)
	if err != nil {
		log.Printf("warning: %v; continuing with an empty roster", err)
		s.roster = roster.Load("")
	} else {
		s.roster = idx
	}

	s.fireRosterLoaded(err)
	s.fireAuthoritiesChanged()
	s.fireLedgerChanged()
	return nil
}

// Reset clears the session back to its pre-Init state and reloads.
func (s *Session) Reset(ctx context.Context) error {
	s.roster = roster.Load("")
	s.store = nil
	return s.Init(ctx)
}

// HTTPAddr returns the configured listen address for the HTTP surface.
func (s *Session) HTTPAddr() string {
	return s.cfg.HTTPAddr
}

// Roster returns the loaded roster index.
func (s *Session) Roster() *roster.Index {
	return s.roster
}

// Authorities returns the coordinator choice set.
func (s *Session) Authorities() []string {
	return s.resolver.Authorities(s.roster)
}

// Candidates returns the employees selectable by the given coordinator,
// optionally narrowed by a name search term.
func (s *Session) Candidates(coordinator, term string) []model.EmployeeRecord {
	out := s.resolver.Filter(s.roster, coordinator, term)
	if s.hooks.OnCandidatesChanged != nil {
		s.hooks.OnCandidatesChanged(out)
	}
	return out
}

// Register validates the candidate against the submitting coordinator's
// scope and appends the accepted snapshot to the ledger.
func (s *Session) Register(c validate.Candidate) (model.OvertimeEntry, error) {
	scope := s.resolver.Filter(s.roster, c.RegisteredBy, "")
	entry, err := validate.Entry(c, scope)
	if err != nil {
		if s.hooks.OnEntryRejected != nil {
			s.hooks.OnEntryRejected(err)
		}
		return model.OvertimeEntry{}, err
	}

	if err := s.store.Append(entry); err != nil {
		return model.OvertimeEntry{}, err
	}
	if s.hooks.OnEntryAccepted != nil {
		s.hooks.OnEntryAccepted(entry)
	}
	s.fireLedgerChanged()
	return entry, nil
}

// Entries returns the ledger in insertion order.
func (s *Session) Entries() []model.OvertimeEntry {
	return s.store.List()
}

// Delete removes the first ledger entry whose full field tuple equals e.
func (s *Session) Delete(e model.OvertimeEntry) (bool, error) {
	found, err := s.store.DeleteMatching(e)
	if err != nil {
		return false, err
	}
	if found {
		s.fireLedgerChanged()
	}
	return found, nil
}

// Clear wipes the ledger and its persisted slot.
func (s *Session) Clear() error {
	if err := s.store.Clear(); err != nil {
		return err
	}
	s.fireLedgerChanged()
	return nil
}

// Export renders the ledger in the given format and returns the bytes
// with the dated report filename. An empty ledger is rejected.
func (s *Session) Export(format string) ([]byte, string, error) {
	data, err := export.Bytes(s.store.List(), format)
	if err != nil {
		return nil, "", err
	}
	return data, export.Filename(format, time.Now()), nil
}

func (s *Session) fireRosterLoaded(err error) {
	if s.hooks.OnRosterLoaded != nil {
		s.hooks.OnRosterLoaded(err)
	}
}

func (s *Session) fireAuthoritiesChanged() {
	if s.hooks.OnAuthoritiesChanged != nil {
		s.hooks.OnAuthoritiesChanged(s.Authorities())
	}
}

func (s *Session) fireLedgerChanged() {
	if s.hooks.OnLedgerChanged != nil {
		s.hooks.OnLedgerChanged(s.store.List())
	}
}
