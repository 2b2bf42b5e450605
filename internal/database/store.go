// Package database provides the read-only SQLite snapshot source.
//
// A snapshot file holds exactly one options chain laid out across the
// chain, expirations and option_pairs tables (see schema.sql). The
// viewer never writes: the connection is opened with mode=ro and the
// SnapshotStore only exposes queries.
package database

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/Mr-Dark-debug/chainview/internal/chain"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaFS embed.FS

// Schema returns the DDL a snapshot file is expected to follow.
func Schema() (string, error) {
	b, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return "", fmt.Errorf("reading embedded schema: %w", err)
	}
	return string(b), nil
}

// Source produces a fully built options chain.
type Source interface {
	LoadChain() (*chain.Chain, error)
	Close() error
}

// SnapshotStore reads an options chain from a SQLite snapshot file.
type SnapshotStore struct {
	db   *sql.DB
	path string
}

// OpenSnapshot opens the snapshot at path in read-only mode and checks
// that the connection is usable.
func OpenSnapshot(path string) (*SnapshotStore, error) {
	dsn := fmt.Sprintf("file:%s?mode=ro&_query_only=true", path)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot at %s: %w", path, err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("opening snapshot at %s: %w", path, err)
	}

	return &SnapshotStore{db: db, path: path}, nil
}

// LoadChain assembles the chain, its expirations in position order, and
// each expiration's option pairs in position order.
func (s *SnapshotStore) LoadChain() (*chain.Chain, error) {
	c := &chain.Chain{}

	err := s.db.QueryRow(`SELECT symbol, last_price, last_update FROM chain WHERE id = 1`).
		Scan(&c.Symbol, &c.LastPrice, &c.LastUpdate)
	if err == sql.ErrNoRows {
		return nil, &chain.FieldError{Path: "chain"}
	}
	if err != nil {
		return nil, fmt.Errorf("%w: reading chain row: %v", chain.ErrSchema, err)
	}

	positions, err := s.loadExpirations(c)
	if err != nil {
		return nil, err
	}

	for i, pos := range positions {
		pairs, err := s.loadPairs(pos)
		if err != nil {
			return nil, err
		}
		c.Expirations[i].Options = pairs
	}

	return c, nil
}

func (s *SnapshotStore) loadExpirations(c *chain.Chain) ([]int64, error) {
	rows, err := s.db.Query(`SELECT position, date FROM expirations ORDER BY position ASC`)
	if err != nil {
		return nil, fmt.Errorf("%w: querying expirations: %v", chain.ErrSchema, err)
	}
	defer rows.Close()

	var positions []int64
	for rows.Next() {
		var pos int64
		var exp chain.Expiration
		if err := rows.Scan(&pos, &exp.Date); err != nil {
			return nil, fmt.Errorf("%w: scanning expiration row: %v", chain.ErrSchema, err)
		}
		exp.Options = []chain.OptionPair{}
		positions = append(positions, pos)
		c.Expirations = append(c.Expirations, exp)
	}
	if c.Expirations == nil {
		c.Expirations = []chain.Expiration{}
	}
	return positions, rows.Err()
}

func (s *SnapshotStore) loadPairs(expirationPos int64) ([]chain.OptionPair, error) {
	rows, err := s.db.Query(`
		SELECT strike,
			call_symbol, call_bid, call_ask, call_bid_size, call_ask_size,
			call_volume, call_open_interest,
			call_delta, call_gamma, call_theta, call_vega, call_rho,
			put_symbol, put_bid, put_ask, put_bid_size, put_ask_size,
			put_volume, put_open_interest,
			put_delta, put_gamma, put_theta, put_vega, put_rho
		FROM option_pairs
		WHERE expiration_position = ?
		ORDER BY position ASC
	`, expirationPos)
	if err != nil {
		return nil, fmt.Errorf("%w: querying option pairs for expiration %d: %v",
			chain.ErrSchema, expirationPos, err)
	}
	defer rows.Close()

	return scanPairs(rows)
}

// Close releases the underlying connection.
func (s *SnapshotStore) Close() error {
	return s.db.Close()
}

// ============================================================
// Scan Helpers
// ============================================================

func scanPairs(rows *sql.Rows) ([]chain.OptionPair, error) {
	pairs := []chain.OptionPair{}
	for rows.Next() {
		var p chain.OptionPair
		if err := rows.Scan(
			&p.Strike,
			&p.Call.Symbol, &p.Call.Bid, &p.Call.Ask, &p.Call.BidSize, &p.Call.AskSize,
			&p.Call.Volume, &p.Call.OpenInterest,
			&p.Call.Greeks.Delta, &p.Call.Greeks.Gamma, &p.Call.Greeks.Theta,
			&p.Call.Greeks.Vega, &p.Call.Greeks.Rho,
			&p.Put.Symbol, &p.Put.Bid, &p.Put.Ask, &p.Put.BidSize, &p.Put.AskSize,
			&p.Put.Volume, &p.Put.OpenInterest,
			&p.Put.Greeks.Delta, &p.Put.Greeks.Gamma, &p.Put.Greeks.Theta,
			&p.Put.Greeks.Vega, &p.Put.Greeks.Rho,
		); err != nil {
			return nil, fmt.Errorf("%w: scanning option pair row: %v", chain.ErrSchema, err)
		}
		pairs = append(pairs, p)
	}
	return pairs, rows.Err()
}
