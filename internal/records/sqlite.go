package records

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"govchat/internal/domain"
	logx "govchat/pkg/logger"
)

const schema = `
CREATE TABLE IF NOT EXISTS services (
	id TEXT PRIMARY KEY,
	name_en TEXT,
	name_ta TEXT,
	description_en TEXT,
	description_ta TEXT,
	department TEXT,
	department_ta TEXT,
	requirements TEXT,
	requirements_ta TEXT,
	procedure TEXT,
	procedure_ta TEXT,
	fees TEXT,
	fees_ta TEXT,
	processing_time TEXT,
	contact TEXT,
	url TEXT
)`

// Store reads service records from a SQLite database. List and
// procedure columns hold JSON arrays; rows that fail to parse or lack
// a bilingual rendering are skipped with a warning rather than
// crashing the pipeline.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the service database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open service db: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping service db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create services table: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

const selectColumns = `id, name_en, name_ta, description_en, description_ta,
	department, department_ta, requirements, requirements_ta,
	procedure, procedure_ta, fees, fees_ta, processing_time, contact, url`

// Get returns the record with the given id, ErrRecordNotFound when the
// id is unknown, or ErrMalformedRecord when the row cannot be parsed.
func (s *Store) Get(ctx context.Context, id string) (*domain.ServiceRecord, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+selectColumns+` FROM services WHERE id = ?`, id)
	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// List returns every well-formed record, skipping malformed rows.
func (s *Store) List(ctx context.Context) ([]domain.ServiceRecord, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+selectColumns+` FROM services ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	defer rows.Close()
	var out []domain.ServiceRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			if errors.Is(err, domain.ErrMalformedRecord) {
				logx.Warn().Err(err).Msg("skipping malformed service record")
				continue
			}
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

// Seed inserts or replaces the given records.
func (s *Store) Seed(ctx context.Context, recs []domain.ServiceRecord) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()
	stmt, err := tx.PrepareContext(ctx, `INSERT OR REPLACE INTO services VALUES
		(?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, r := range recs {
		req, _ := json.Marshal(r.Requirements)
		reqTA, _ := json.Marshal(r.RequirementsTA)
		proc, _ := json.Marshal(r.Procedure)
		procTA, _ := json.Marshal(r.ProcedureTA)
		if _, err := stmt.ExecContext(ctx,
			r.ID, r.NameEN, r.NameTA, r.DescriptionEN, r.DescriptionTA,
			r.Department, r.DepartmentTA, string(req), string(reqTA),
			string(proc), string(procTA), r.Fees, r.FeesTA,
			r.ProcessingTime, r.Contact, r.URL,
		); err != nil {
			return fmt.Errorf("seed service %s: %w", r.ID, err)
		}
	}
	return tx.Commit()
}

// Count reports the number of stored services.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM services`).Scan(&n)
	return n, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*domain.ServiceRecord, error) {
	var r domain.ServiceRecord
	var req, reqTA, proc, procTA sql.NullString
	var processingTime sql.NullString
	err := row.Scan(
		&r.ID, &r.NameEN, &r.NameTA, &r.DescriptionEN, &r.DescriptionTA,
		&r.Department, &r.DepartmentTA, &req, &reqTA, &proc, &procTA,
		&r.Fees, &r.FeesTA, &processingTime, &r.Contact, &r.URL,
	)
	if err != nil {
		return nil, err
	}
	r.ProcessingTime = processingTime.String
	if err := parseList(req, &r.Requirements); err != nil {
		return nil, fmt.Errorf("%w: %s requirements: %v", domain.ErrMalformedRecord, r.ID, err)
	}
	if err := parseList(reqTA, &r.RequirementsTA); err != nil {
		return nil, fmt.Errorf("%w: %s requirements_ta: %v", domain.ErrMalformedRecord, r.ID, err)
	}
	if err := parseList(proc, &r.Procedure); err != nil {
		return nil, fmt.Errorf("%w: %s procedure: %v", domain.ErrMalformedRecord, r.ID, err)
	}
	if err := parseList(procTA, &r.ProcedureTA); err != nil {
		return nil, fmt.Errorf("%w: %s procedure_ta: %v", domain.ErrMalformedRecord, r.ID, err)
	}
	if r.NameEN == "" || r.NameTA == "" {
		return nil, fmt.Errorf("%w: %s missing bilingual name", domain.ErrMalformedRecord, r.ID)
	}
	return &r, nil
}

func parseList(col sql.NullString, dst *[]string) error {
	if !col.Valid || strings.TrimSpace(col.String) == "" {
		*dst = nil
		return nil
	}
	return json.Unmarshal([]byte(col.String), dst)
}

// EmbeddingText concatenates the bilingual name and description fields,
// the text each service document is vectorized from.
func EmbeddingText(r domain.ServiceRecord) string {
	return strings.Join([]string{r.NameEN, r.NameTA, r.DescriptionEN, r.DescriptionTA}, " ")
}
