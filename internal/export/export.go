// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AuraCrypt Authors

// Package export writes vault contents to plaintext JSON or CSV files
// and reads entries back from them. Exports are UNENCRYPTED: the caller
// decides whether secrets are included, and files are created with
// owner-only permissions either way.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/auracrypt/auracrypt/models"
)

// exportFileMode keeps plaintext exports readable by the owner only.
const exportFileMode = 0o600

// jsonDocument is the on-disk shape of a JSON export.
type jsonDocument struct {
	ExportedAt      string         `json:"exported_at"`
	EntryCount      int            `json:"entry_count"`
	IncludesSecrets bool           `json:"includes_secrets"`
	Categories      []string       `json:"categories,omitempty"`
	Entries         []models.Entry `json:"entries"`
}

// Options controls what an export contains.
type Options struct {
	// IncludePasswords keeps entry secrets in the output. When false,
	// password fields are blanked.
	IncludePasswords bool
}

// WriteJSON exports data to path as indented JSON with a metadata
// header.
func WriteJSON(path string, data models.VaultData, opts Options) error {
	entries := prepare(data.Entries, opts)

	doc := jsonDocument{
		ExportedAt:      time.Now().UTC().Format(time.RFC3339),
		EntryCount:      len(entries),
		IncludesSecrets: opts.IncludePasswords,
		Categories:      data.Categories,
		Entries:         entries,
	}

	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal export: %w", err)
	}
	if err := os.WriteFile(path, raw, exportFileMode); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}
	return nil
}

// ReadJSON reads entries back from a JSON export. Both the documented
// export shape and a bare entry array are accepted.
func ReadJSON(path string) ([]models.Entry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read import file: %w", err)
	}

	var doc jsonDocument
	if err := json.Unmarshal(raw, &doc); err == nil && doc.Entries != nil {
		return doc.Entries, nil
	}

	var entries []models.Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("parse import file: %w", err)
	}
	return entries, nil
}

// csvHeader is the column order of CSV exports. Import matches columns
// by these names, not by position.
var csvHeader = []string{"service", "username", "password", "url", "notes", "category"}

// WriteCSV exports entries to path as CSV with a header row.
func WriteCSV(path string, data models.VaultData, opts Options) error {
	entries := prepare(data.Entries, opts)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, exportFileMode)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, e := range entries {
		record := []string{e.Service, e.Username, e.Password, e.URL, e.Notes, e.Category}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return f.Close()
}

// ReadCSV reads entries from a CSV file. The first row must be a header
// naming at least the service and password columns; unknown columns are
// ignored.
func ReadCSV(path string) ([]models.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read import file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse import file: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	cols := map[string]int{}
	for i, name := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := cols["service"]; !ok {
		return nil, fmt.Errorf("parse import file: missing %q column", "service")
	}

	field := func(row []string, name string) string {
		i, ok := cols[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	entries := make([]models.Entry, 0, len(rows)-1)
	for _, row := range rows[1:] {
		entries = append(entries, models.Entry{
			Service:  field(row, "service"),
			Username: field(row, "username"),
			Password: field(row, "password"),
			URL:      field(row, "url"),
			Notes:    field(row, "notes"),
			Category: field(row, "category"),
		})
	}
	return entries, nil
}

// prepare copies entries, blanking secrets unless they were asked for.
func prepare(entries []models.Entry, opts Options) []models.Entry {
	out := make([]models.Entry, len(entries))
	copy(out, entries)
	if !opts.IncludePasswords {
		for i := range out {
			out[i].Password = ""
		}
	}
	return out
}
