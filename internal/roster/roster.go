// Package roster loads and indexes the master employee list.
//
// The roster is fetched once at startup from a delimited-text source
// (an http/https URL or a local file path), parsed, and held in memory
// read-only for the rest of the session.
package roster

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/jrequejo/horex/internal/csvtext"
	"github.com/jrequejo/horex/internal/model"
)

// ErrLoad tags roster source failures (missing file, network error,
// non-success HTTP status).
var ErrLoad = errors.New("roster load failed")

// Source column order, fixed by the master file format. The header row
// is required and discarded.
const (
	colLeader = iota
	colCoordinator
	colFullName
	colIdentifier
	colCode
	colPosition
	columnCount
)

// Index holds the parsed roster in source order.
type Index struct {
	records []model.EmployeeRecord
}

// Load builds an Index from raw delimited text. Source order is
// preserved and no dedup is performed; duplicate identifiers from
// malformed source data are possible and the first match wins on lookup.
func Load(text string) *Index {
	_, rows := csvtext.Parse(text)
	idx := &Index{records: make([]model.EmployeeRecord, 0, len(rows))}
	for _, row := range rows {
		if len(row) < columnCount {
			continue
		}
		idx.records = append(idx.records, model.EmployeeRecord{
			ReportsToLeader:      row[colLeader],
			ReportsToCoordinator: row[colCoordinator],
			FullName:             row[colFullName],
			Identifier:           row[colIdentifier],
			Code:                 row[colCode],
			Position:             row[colPosition],
		})
	}
	return idx
}

// LoadSource fetches the roster text from source and builds the Index.
func LoadSource(ctx context.Context, source string) (*Index, error) {
	text, err := fetch(ctx, source)
	if err != nil {
		return nil, err
	}
	return Load(text), nil
}

// FindByIdentifier returns the first record whose identifier matches id.
func (idx *Index) FindByIdentifier(id string) (model.EmployeeRecord, bool) {
	id = strings.TrimSpace(id)
	for _, r := range idx.records {
		if r.Identifier == id {
			return r, true
		}
	}
	return model.EmployeeRecord{}, false
}

// All returns the roster in source order. The returned slice is shared;
// callers must not mutate it.
func (idx *Index) All() []model.EmployeeRecord {
	return idx.records
}

// Len returns the number of roster records.
func (idx *Index) Len() int {
	return len(idx.records)
}

func fetch(ctx context.Context, source string) (string, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrLoad, err)
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return "", fmt.Errorf("%w: fetching %s: %v", ErrLoad, source, err)
		}
		defer resp.Body.Close()
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			return "", fmt.Errorf("%w: fetching %s: status %d", ErrLoad, source, resp.StatusCode)
		}
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", fmt.Errorf("%w: reading %s: %v", ErrLoad, source, err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return "", fmt.Errorf("%w: reading %s: %v", ErrLoad, source, err)
	}
	return string(data), nil
}
