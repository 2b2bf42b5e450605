package database

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/Mr-Dark-debug/chainview/internal/chain"
	"github.com/shopspring/decimal"
)

// writeSnapshot builds a snapshot file with the embedded schema and
// returns its path. Expirations are inserted out of position order to
// check that ordering comes from the position column.
func writeSnapshot(t *testing.T, withChainRow bool) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chain.db")

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatalf("sql.Open failed: %v", err)
	}
	defer db.Close()

	schema, err := Schema()
	if err != nil {
		t.Fatalf("Schema failed: %v", err)
	}
	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("executing schema: %v", err)
	}

	if withChainRow {
		if _, err := db.Exec(`INSERT INTO chain (id, symbol, last_price, last_update)
			VALUES (1, 'QQQ', '441.07', '2024-03-15T16:00:00Z')`); err != nil {
			t.Fatalf("inserting chain: %v", err)
		}
	}

	if _, err := db.Exec(`INSERT INTO expirations (position, date) VALUES
		(2, '2024-04-19'), (1, '2024-03-22'), (3, '2024-05-17')`); err != nil {
		t.Fatalf("inserting expirations: %v", err)
	}

	insertPair := `INSERT INTO option_pairs VALUES (?, ?, ?,
		?, '1.10', '1.25', 10, 12, 300, 4000, '0.55', '0.03', '-0.05', '0.20', '0.04',
		?, '0.90', '1.05', 9, 11, 250, 3500, '-0.45', '0.03', '-0.04', '0.20', '-0.03')`
	pairs := []struct {
		exp, pos int
		strike   string
	}{
		{1, 2, "442.5"}, {1, 1, "440"}, {2, 1, "445"},
	}
	for _, p := range pairs {
		if _, err := db.Exec(insertPair, p.exp, p.pos, p.strike,
			"C"+p.strike, "P"+p.strike); err != nil {
			t.Fatalf("inserting pair: %v", err)
		}
	}

	return path
}

func TestLoadChainFromSnapshot(t *testing.T) {
	store, err := OpenSnapshot(writeSnapshot(t, true))
	if err != nil {
		t.Fatalf("OpenSnapshot failed: %v", err)
	}
	defer store.Close()

	c, err := store.LoadChain()
	if err != nil {
		t.Fatalf("LoadChain failed: %v", err)
	}

	if c.Symbol != "QQQ" {
		t.Errorf("expected symbol=QQQ, got %s", c.Symbol)
	}
	if !c.LastPrice.Equal(decimal.RequireFromString("441.07")) {
		t.Errorf("expected lastPrice=441.07, got %s", c.LastPrice)
	}

	dates := c.Dates()
	want := []string{"2024-03-22", "2024-04-19", "2024-05-17"}
	if len(dates) != len(want) {
		t.Fatalf("expected %d expirations, got %d", len(want), len(dates))
	}
	for i := range want {
		if dates[i] != want[i] {
			t.Errorf("expiration %d: expected %s, got %s", i, want[i], dates[i])
		}
	}

	first := c.Expirations[0]
	if first.Rows() != 2 {
		t.Fatalf("expected 2 pairs in first expiration, got %d", first.Rows())
	}
	if !first.Options[0].Strike.Equal(decimal.NewFromInt(440)) {
		t.Errorf("pairs not ordered by position: first strike %s", first.Options[0].Strike)
	}
	if first.Options[0].Put.Symbol != "P440" || first.Options[0].Put.OpenInterest != 3500 {
		t.Errorf("unexpected put quote %+v", first.Options[0].Put)
	}
	if !first.Options[0].Call.Greeks.Theta.Equal(decimal.RequireFromString("-0.05")) {
		t.Errorf("unexpected call theta %s", first.Options[0].Call.Greeks.Theta)
	}

	if c.Expirations[2].Rows() != 0 {
		t.Errorf("expected an empty third expiration, got %d pairs", c.Expirations[2].Rows())
	}
}

func TestLoadChainMissingChainRow(t *testing.T) {
	store, err := OpenSnapshot(writeSnapshot(t, false))
	if err != nil {
		t.Fatalf("OpenSnapshot failed: %v", err)
	}
	defer store.Close()

	_, err = store.LoadChain()
	if !errors.Is(err, chain.ErrSchema) {
		t.Fatalf("expected ErrSchema, got %v", err)
	}
}

func TestOpenSnapshotMissingFile(t *testing.T) {
	_, err := OpenSnapshot(filepath.Join(t.TempDir(), "absent.db"))
	if err == nil {
		t.Fatal("expected an error for a missing snapshot")
	}
}

func TestSnapshotIsReadOnly(t *testing.T) {
	store, err := OpenSnapshot(writeSnapshot(t, true))
	if err != nil {
		t.Fatalf("OpenSnapshot failed: %v", err)
	}
	defer store.Close()

	if _, err := store.db.Exec(`DELETE FROM expirations`); err == nil {
		t.Fatal("expected write to fail on a read-only snapshot")
	}
}
