package app_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jrequejo/horex/internal/app"
	"github.com/jrequejo/horex/internal/config"
	"github.com/jrequejo/horex/internal/export"
	"github.com/jrequejo/horex/internal/model"
	"github.com/jrequejo/horex/internal/validate"
)

const sampleRoster = `LIDER,QUIEN REGISTRA,APELLIDOS Y NOMBRES,DNI/CE,CODIGO,PUESTO
GERENCIA,COORDINADOR TURNO DIA,PEREZ LOPEZ JUAN,45612378,1001,OPERARIO
GERENCIA,COORDINADOR TURNO NOCHE,DIAZ TORRES MARIA,70234561,1002,ALMACENERO
`

func testConfig(t *testing.T) config.Config {
	t.Helper()
	dir := t.TempDir()
	rosterPath := filepath.Join(dir, "roster.csv")
	if err := os.WriteFile(rosterPath, []byte(sampleRoster), 0o600); err != nil {
		t.Fatal(err)
	}
	return config.Config{
		DataDir:      dir,
		RosterSource: rosterPath,
		Supervisor:   "SUPERVISOR GENERAL",
		Coordinators: []string{"SUPERVISOR GENERAL"},
	}
}

func candidate() validate.Candidate {
	return validate.Candidate{
		RegisteredBy: "COORDINADOR TURNO DIA",
		EmployeeID:   "45612378",
		EntryDate:    "2026-08-30",
		EntryTime:    "18:00",
		ExitTime:     "21:00",
	}
}

func TestSessionLifecycle(t *testing.T) {
	cfg := testConfig(t)

	var rosterErr error
	var ledgerSizes []int
	var accepted []model.OvertimeEntry
	sess := app.New(cfg, app.Hooks{
		OnRosterLoaded:  func(err error) { rosterErr = err },
		OnEntryAccepted: func(e model.OvertimeEntry) { accepted = append(accepted, e) },
		OnLedgerChanged: func(entries []model.OvertimeEntry) { ledgerSizes = append(ledgerSizes, len(entries)) },
	})
	if err := sess.Init(context.Background()); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if rosterErr != nil {
		t.Fatalf("OnRosterLoaded reported %v", rosterErr)
	}
	if sess.Roster().Len() != 2 {
		t.Fatalf("roster size = %d, want 2", sess.Roster().Len())
	}

	entry, err := sess.Register(candidate())
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if len(accepted) != 1 || accepted[0] != entry {
		t.Errorf("OnEntryAccepted not fired with the stored snapshot")
	}

	// A fresh session over the same data dir sees the persisted entry.
	again := app.New(cfg, app.Hooks{})
	if err := again.Init(context.Background()); err != nil {
		t.Fatalf("reopen Init: %v", err)
	}
	entries := again.Entries()
	if len(entries) != 1 || entries[0] != entry {
		t.Fatalf("persisted entries = %+v, want the registered snapshot", entries)
	}

	// Init + Register each fire OnLedgerChanged.
	if len(ledgerSizes) != 2 || ledgerSizes[1] != 1 {
		t.Errorf("OnLedgerChanged sizes = %v", ledgerSizes)
	}
}

func TestSessionRejectsOutOfScope(t *testing.T) {
	sess := app.New(testConfig(t), app.Hooks{})
	if err := sess.Init(context.Background()); err != nil {
		t.Fatal(err)
	}

	// MARIA exists in the roster but reports to the night coordinator.
	c := candidate()
	c.EmployeeID = "70234561"
	_, err := sess.Register(c)
	var verr *validate.Error
	if !errors.As(err, &verr) || verr.Code != validate.CodeEmployeeOutOfScope {
		t.Errorf("Register error = %v, want out-of-scope rejection", err)
	}
	if len(sess.Entries()) != 0 {
		t.Errorf("rejected entry reached the ledger")
	}
}

func TestSessionSupervisorScope(t *testing.T) {
	sess := app.New(testConfig(t), app.Hooks{})
	if err := sess.Init(context.Background()); err != nil {
		t.Fatal(err)
	}

	c := candidate()
	c.RegisteredBy = "SUPERVISOR GENERAL"
	c.EmployeeID = "70234561"
	if _, err := sess.Register(c); err != nil {
		t.Errorf("supervisor registration rejected: %v", err)
	}
}

func TestSessionDeleteAndClear(t *testing.T) {
	sess := app.New(testConfig(t), app.Hooks{})
	if err := sess.Init(context.Background()); err != nil {
		t.Fatal(err)
	}

	entry, err := sess.Register(candidate())
	if err != nil {
		t.Fatal(err)
	}

	found, err := sess.Delete(entry)
	if err != nil || !found {
		t.Fatalf("Delete = (%v, %v), want match", found, err)
	}
	found, err = sess.Delete(entry)
	if err != nil || found {
		t.Fatalf("second Delete = (%v, %v), want no match", found, err)
	}

	if _, err := sess.Register(candidate()); err != nil {
		t.Fatal(err)
	}
	if err := sess.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if len(sess.Entries()) != 0 {
		t.Errorf("entries after clear = %d", len(sess.Entries()))
	}
}

func TestSessionExport(t *testing.T) {
	sess := app.New(testConfig(t), app.Hooks{})
	if err := sess.Init(context.Background()); err != nil {
		t.Fatal(err)
	}

	if _, _, err := sess.Export("csv"); !errors.Is(err, export.ErrNoEntries) {
		t.Errorf("empty export error = %v, want ErrNoEntries", err)
	}

	if _, err := sess.Register(candidate()); err != nil {
		t.Fatal(err)
	}
	data, filename, err := sess.Export("csv")
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if len(data) == 0 {
		t.Error("empty export payload")
	}
	if filepath.Ext(filename) != ".csv" {
		t.Errorf("filename = %q", filename)
	}
}

func TestSessionRosterLoadFailureDegrades(t *testing.T) {
	cfg := testConfig(t)
	cfg.RosterSource = filepath.Join(cfg.DataDir, "missing.csv")

	var rosterErr error
	sess := app.New(cfg, app.Hooks{OnRosterLoaded: func(err error) { rosterErr = err }})
	if err := sess.Init(context.Background()); err != nil {
		t.Fatalf("Init should degrade, got %v", err)
	}
	if rosterErr == nil {
		t.Error("OnRosterLoaded should report the load failure")
	}
	if sess.Roster().Len() != 0 {
		t.Errorf("roster should be empty after failed load")
	}
	if got := sess.Candidates("COORDINADOR TURNO DIA", ""); len(got) != 0 {
		t.Errorf("candidates on empty roster = %v", got)
	}
}
