package bank

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSQLiteBank(t *testing.T, rows [][4]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bank.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE questions (
		id      INTEGER PRIMARY KEY,
		chapter TEXT NOT NULL,
		question TEXT NOT NULL,
		options TEXT NOT NULL,
		answer  TEXT NOT NULL,
		image   TEXT NOT NULL DEFAULT ''
	)`)
	require.NoError(t, err)

	for _, r := range rows {
		_, err = db.Exec(
			"INSERT INTO questions (chapter, question, options, answer) VALUES (?, ?, ?, ?)",
			r[0], r[1], r[2], r[3],
		)
		require.NoError(t, err)
	}
	return path
}

func TestLoadSQLite(t *testing.T) {
	path := writeSQLiteBank(t, [][4]string{
		{"Memory", "What does DRAM stand for?", `["A. Dynamic RAM", "B. Direct RAM"]`, "A"},
		{"Caches", "What is a cache line?", `["A. A unit of transfer", "B. A queue"]`, "B"},
	})

	b, err := LoadSQLite(path)
	require.NoError(t, err)
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, []string{"Memory", "Caches"}, b.Chapters())
	assert.Equal(t, "B", b.Questions()[1].Answer)
}

func TestLoadSQLiteBadOptions(t *testing.T) {
	path := writeSQLiteBank(t, [][4]string{
		{"Memory", "q", `not json`, "A"},
	})
	_, err := LoadSQLite(path)
	assert.Error(t, err)
}

func TestLoadSQLiteNoTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.db")
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	_, err = db.Exec("CREATE TABLE other (id INTEGER)")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = LoadSQLite(path)
	assert.Error(t, err)
}
