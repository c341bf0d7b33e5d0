package inproc

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS contacts (
	public_key TEXT PRIMARY KEY,
	alias      TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS peers (
	public_key TEXT PRIMARY KEY,
	address    TEXT NOT NULL
);`

// store persists contacts and base node peers in a SQLite database under
// the datastore path.
type store struct {
	db *sql.DB
}

func openStore(datastorePath, databaseName string) (*store, error) {
	if err := os.MkdirAll(datastorePath, 0o755); err != nil {
		return nil, fmt.Errorf("create datastore path: %w", err)
	}

	dsn := filepath.Join(datastorePath, databaseName+".db")
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// modernc.org/sqlite serializes writes itself, but a single connection
	// avoids SQLITE_BUSY under concurrent readers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &store{db: db}, nil
}

func (s *store) close() error {
	return s.db.Close()
}

func (s *store) saveContact(ctx context.Context, pubHex, alias string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO contacts (public_key, alias) VALUES (?, ?)
		 ON CONFLICT(public_key) DO UPDATE SET alias = excluded.alias`,
		pubHex, alias)
	if err != nil {
		return fmt.Errorf("save contact: %w", err)
	}
	return nil
}

// removeContact reports whether a row was actually deleted.
func (s *store) removeContact(ctx context.Context, pubHex string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM contacts WHERE public_key = ?`, pubHex)
	if err != nil {
		return false, fmt.Errorf("remove contact: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("remove contact: %w", err)
	}
	return n > 0, nil
}

type contactRow struct {
	pubHex string
	alias  string
}

func (s *store) contacts(ctx context.Context) ([]contactRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT public_key, alias FROM contacts ORDER BY alias, public_key`)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	var out []contactRow
	for rows.Next() {
		var r contactRow
		if err := rows.Scan(&r.pubHex, &r.alias); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return out, nil
}

func (s *store) savePeer(ctx context.Context, pubHex, address string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO peers (public_key, address) VALUES (?, ?)
		 ON CONFLICT(public_key) DO UPDATE SET address = excluded.address`,
		pubHex, address)
	if err != nil {
		return fmt.Errorf("save peer: %w", err)
	}
	return nil
}
