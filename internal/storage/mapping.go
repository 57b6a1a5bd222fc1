package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/venstudio/studio-backend/internal/domain"
)

// scanner covers both *sql.Row and *sql.Rows so one scan function per
// entity serves List, Create and Update.
type scanner interface {
	Scan(dest ...any) error
}

// nullText maps the app-level "clear this field" convention onto storage:
// an empty string becomes a NULL column.
func nullText(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// nullTime treats a nil or zero time as a NULL column.
func nullTime(t *time.Time) sql.NullTime {
	if t == nil || t.IsZero() {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil || *f == 0 {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}

func nullInt(i *int) sql.NullInt64 {
	if i == nil || *i == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*i), Valid: true}
}

// text applies the read-side default: NULL text maps to "".
func text(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func timePtr(nt sql.NullTime) *time.Time {
	if !nt.Valid {
		return nil
	}
	t := nt.Time
	return &t
}

func floatPtr(nf sql.NullFloat64) *float64 {
	if !nf.Valid {
		return nil
	}
	f := nf.Float64
	return &f
}

func intPtr(ni sql.NullInt64) *int {
	if !ni.Valid {
		return nil
	}
	i := int(ni.Int64)
	return &i
}

// jsonb marshals a value for a JSONB column.
func jsonb(col string, v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", col, err)
	}
	return b, nil
}

// fromJSONB unmarshals a JSONB column into out, leaving out untouched when
// the column was NULL or empty. Callers supply the deterministic default.
// A document that does not decode is a mapping error, like an enum value
// the domain does not know.
func fromJSONB(col string, b []byte, out any) error {
	if len(b) == 0 {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidValue, col, err)
	}
	return nil
}

// setClause renders a sparse update map as "col = $n, ..." with columns in
// sorted order so the generated SQL is stable, returning the clause and the
// ordered argument list. Argument numbering starts at first.
func setClause(sets map[string]any, first int) (string, []any) {
	cols := make([]string, 0, len(sets))
	for c := range sets {
		cols = append(cols, c)
	}
	sort.Strings(cols)

	var sb strings.Builder
	args := make([]any, 0, len(cols))
	for i, c := range cols {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(c)
		sb.WriteString(" = $")
		sb.WriteString(strconv.Itoa(first + i))
		args = append(args, sets[c])
	}
	return sb.String(), args
}
