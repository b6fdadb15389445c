package bank

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// LoadSQLite builds a Bank from a SQLite database. The database must
// carry a questions table:
//
//	CREATE TABLE questions (
//	    id      INTEGER PRIMARY KEY,
//	    chapter TEXT NOT NULL,
//	    question TEXT NOT NULL,
//	    options TEXT NOT NULL,  -- JSON array of option texts
//	    answer  TEXT NOT NULL,
//	    image   TEXT NOT NULL DEFAULT ''
//	);
//
// Row order (by id) becomes bank order. The database is opened
// read-only and closed before returning.
func LoadSQLite(path string) (*Bank, error) {
	db, err := sql.Open("sqlite", path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("open bank database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	rows, err := db.Query("SELECT chapter, question, options, answer, image FROM questions ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("query questions: %w", err)
	}
	defer rows.Close()

	var questions []Question
	for rows.Next() {
		var q Question
		var optionsJSON string
		if err := rows.Scan(&q.Chapter, &q.Text, &optionsJSON, &q.Answer, &q.Image); err != nil {
			return nil, fmt.Errorf("scan question: %w", err)
		}
		if err := json.Unmarshal([]byte(optionsJSON), &q.Options); err != nil {
			return nil, fmt.Errorf("decode options for %q: %w", q.Text, err)
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read questions: %w", err)
	}

	return New(questions)
}

// Load dispatches on the file extension: .db/.sqlite/.sqlite3 open as a
// SQLite bank, anything else is read as JSON.
func Load(path string) (*Bank, error) {
	lower := strings.ToLower(path)
	if strings.HasSuffix(lower, ".db") || strings.HasSuffix(lower, ".sqlite") || strings.HasSuffix(lower, ".sqlite3") {
		return LoadSQLite(path)
	}
	return LoadJSON(path)
}
