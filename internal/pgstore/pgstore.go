// Package pgstore is the Postgres collaborator for the Nuclear Data
// Store: it loads activation, decay and limit rows from tables
// instead of a workbook. It is not part of the core engine: nucdata
// never imports it, it only ever produces the same record types
// nucdata.Build already accepts.
package pgstore

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"github.com/AbelV22/NAA-Web/internal/nucdata"
)

// Store is the minimal surface the rest of the module needs from the
// database: load the three tables. Kept as an interface so callers
// can swap in a fake for tests without a live DB.
type Store interface {
	LoadActivation(ctx context.Context) ([]nucdata.ActivationRecord, error)
	LoadDecay(ctx context.Context) ([]nucdata.DecayRecord, error)
	LoadLimits(ctx context.Context) ([]nucdata.LimitRecord, error)
}

// PostgresStore is the lib/pq-backed implementation.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore wraps an already-opened *sql.DB.
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// OpenFromEnv builds the connection string from DATABASE_URL if set,
// a local default (with sslmode=disable) otherwise, appends
// sslmode=require in URL or key=value form when the string names no
// sslmode, then tunes the pool and verifies the connection with a
// ping.
func OpenFromEnv() (*sql.DB, error) {
	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		connStr = "user=postgres dbname=naa password=password sslmode=disable"
	}
	if !strings.Contains(connStr, "sslmode=") {
		if strings.HasPrefix(connStr, "postgres://") || strings.HasPrefix(connStr, "postgresql://") {
			connStr += "?sslmode=require"
		} else {
			connStr += " sslmode=require"
		}
	}

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("pgstore: open: %w", err)
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pgstore: ping: %w", err)
	}
	return db, nil
}

// LoadActivation reads the naa_activation table.
func (s *PostgresStore) LoadActivation(ctx context.Context) ([]nucdata.ActivationRecord, error) {
	const query = `
		SELECT parent_symbol, parent_a, daughter_text, reaction,
		       max_xs, daughter_lambda, parent_abund
		FROM naa_activation`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgstore: load activation: %w", err)
	}
	defer rows.Close()

	var out []nucdata.ActivationRecord
	for rows.Next() {
		var r nucdata.ActivationRecord
		var reaction string
		if err := rows.Scan(&r.ParentSymbol, &r.ParentA, &r.DaughterText, &reaction,
			&r.MaxXS, &r.DaughterLambda, &r.ParentAbund); err != nil {
			return nil, fmt.Errorf("pgstore: scan activation row: %w", err)
		}
		r.Reaction = nucdata.ReactionType(reaction)
		out = append(out, r)
	}
	return out, rows.Err()
}

// LoadDecay reads the naa_decay table.
func (s *PostgresStore) LoadDecay(ctx context.Context) ([]nucdata.DecayRecord, error) {
	const query = `
		SELECT parent_text, child_text, branch_ratio, parent_lambda, child_lambda
		FROM naa_decay`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgstore: load decay: %w", err)
	}
	defer rows.Close()

	var out []nucdata.DecayRecord
	for rows.Next() {
		var r nucdata.DecayRecord
		if err := rows.Scan(&r.ParentText, &r.ChildText, &r.BranchRatio,
			&r.ParentLambda, &r.ChildLambda); err != nil {
			return nil, fmt.Errorf("pgstore: scan decay row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// LoadLimits reads the naa_limits table.
func (s *PostgresStore) LoadLimits(ctx context.Context) ([]nucdata.LimitRecord, error) {
	const query = `
		SELECT isotope_text, clearance_bq_g, exemption_bq_g
		FROM naa_limits`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("pgstore: load limits: %w", err)
	}
	defer rows.Close()

	var out []nucdata.LimitRecord
	for rows.Next() {
		var r nucdata.LimitRecord
		if err := rows.Scan(&r.IsotopeText, &r.Clearance, &r.Exemption); err != nil {
			return nil, fmt.Errorf("pgstore: scan limit row: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// BuildStore loads all three tables and assembles a nucdata.Store in
// one call, the way callers of the CSV/XLSX loader assemble one from
// in-memory Tables.
func BuildStore(ctx context.Context, s Store) (*nucdata.Store, error) {
	activation, err := s.LoadActivation(ctx)
	if err != nil {
		return nil, err
	}
	decay, err := s.LoadDecay(ctx)
	if err != nil {
		return nil, err
	}
	limits, err := s.LoadLimits(ctx)
	if err != nil {
		return nil, err
	}
	return nucdata.Build(activation, decay, limits)
}
