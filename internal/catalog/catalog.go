// Package catalog records completed tokenization runs in a SQLite
// database so processed corpora can be audited later. Uses the pure Go
// sqlite driver.
package catalog

import (
	"database/sql"
	"encoding/hex"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/zeebo/blake3"
	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	input      TEXT NOT NULL,
	output     TEXT NOT NULL,
	backend    TEXT NOT NULL,
	language   TEXT NOT NULL,
	paragraphs INTEGER NOT NULL,
	sentences  INTEGER NOT NULL,
	words      INTEGER NOT NULL,
	digest     TEXT NOT NULL,
	created_at TEXT NOT NULL
);
`

// Run is one recorded tokenization run.
type Run struct {
	ID         string
	Input      string
	Output     string
	Backend    string
	Language   string
	Paragraphs int
	Sentences  int
	Words      int
	// Digest is the blake3 digest of the output file, hex encoded.
	Digest    string
	CreatedAt time.Time
}

// Catalog is an open run catalog.
type Catalog struct {
	db *sql.DB
}

// Open opens (creating if needed) the catalog at path.
func Open(path string) (*Catalog, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}
	return &Catalog{db: db}, nil
}

// Close closes the catalog.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// Record inserts a run. A missing ID or CreatedAt is filled in.
func (c *Catalog) Record(run *Run) error {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
	_, err := c.db.Exec(
		`INSERT INTO runs (id, input, output, backend, language, paragraphs, sentences, words, digest, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.Input, run.Output, run.Backend, run.Language,
		run.Paragraphs, run.Sentences, run.Words, run.Digest,
		run.CreatedAt.Format(time.RFC3339),
	)
	return err
}

// List returns all runs, oldest first.
func (c *Catalog) List() ([]Run, error) {
	rows, err := c.db.Query(
		`SELECT id, input, output, backend, language, paragraphs, sentences, words, digest, created_at
		 FROM runs ORDER BY created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt string
		if err := rows.Scan(&r.ID, &r.Input, &r.Output, &r.Backend, &r.Language,
			&r.Paragraphs, &r.Sentences, &r.Words, &r.Digest, &createdAt); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			r.CreatedAt = t
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// DigestFile returns the hex-encoded blake3 digest of the file at path.
func DigestFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
