package database

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func memoryOpener(calls *[]string, name string) opener {
	return func(dsn string) (*gorm.DB, error) {
		*calls = append(*calls, name+":"+dsn)
		return gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	}
}

func failingOpener(calls *[]string, name string) opener {
	return func(dsn string) (*gorm.DB, error) {
		*calls = append(*calls, name+":"+dsn)
		return nil, errors.New("connection refused")
	}
}

func testSubjects(t *testing.T) *SubjectsFile {
	t.Helper()
	return NewSubjectsFile(t.TempDir()+"/subjects.json", []string{"Physics", "Chemistry"})
}

func TestOpenPrimarySucceeds(t *testing.T) {
	var calls []string
	g := open(Options{
		PrimaryDSN: "postgres://host/db",
		SQLitePath: "local.db",
		Subjects:   testSubjects(t),
	}, memoryOpener(&calls, "primary"), failingOpener(&calls, "secondary"))

	assert.Equal(t, ModePrimary, g.Mode())
	// The legacy scheme is rewritten before the driver sees it.
	assert.Equal(t, []string{"primary:postgresql://host/db"}, calls)

	db, err := g.DB()
	require.NoError(t, err)
	assert.NotNil(t, db)
}

func TestOpenFallsBackToSecondary(t *testing.T) {
	var calls []string
	g := open(Options{
		PrimaryDSN: "postgresql://host/db",
		SQLitePath: "local.db",
		Subjects:   testSubjects(t),
	}, failingOpener(&calls, "primary"), memoryOpener(&calls, "secondary"))

	assert.Equal(t, ModeSecondary, g.Mode())
	assert.Equal(t, []string{"primary:postgresql://host/db", "secondary:local.db"}, calls)
}

func TestOpenFallsBackToFlatFile(t *testing.T) {
	var calls []string
	g := open(Options{
		PrimaryDSN: "postgresql://host/db",
		SQLitePath: "local.db",
		Subjects:   testSubjects(t),
	}, failingOpener(&calls, "primary"), failingOpener(&calls, "secondary"))

	assert.Equal(t, ModeFlatFile, g.Mode())
	assert.Len(t, calls, 2)

	_, err := g.DB()
	assert.ErrorIs(t, err, ErrBackendUnavailable)

	// The subject-name list is still served.
	assert.Equal(t, []string{"Physics", "Chemistry"}, g.Subjects().Subjects())
}

func TestOpenSkipsPrimaryWhenDSNEmpty(t *testing.T) {
	var calls []string
	g := open(Options{
		PrimaryDSN: "",
		SQLitePath: "local.db",
		Subjects:   testSubjects(t),
	}, failingOpener(&calls, "primary"), memoryOpener(&calls, "secondary"))

	assert.Equal(t, ModeSecondary, g.Mode())
	assert.Equal(t, []string{"secondary:local.db"}, calls)
}

func TestOpenMigrationFailureDescendsLadder(t *testing.T) {
	var calls []string
	migrateCalls := 0
	g := open(Options{
		PrimaryDSN: "postgresql://host/db",
		SQLitePath: "local.db",
		Subjects:   testSubjects(t),
		Migrate: func(db *gorm.DB) error {
			migrateCalls++
			if migrateCalls == 1 {
				return errors.New("permission denied for schema public")
			}
			return nil
		},
	}, memoryOpener(&calls, "primary"), memoryOpener(&calls, "secondary"))

	// A connectable primary whose migration fails counts as a failed
	// probe; the secondary rung then migrates cleanly.
	assert.Equal(t, ModeSecondary, g.Mode())
	assert.Equal(t, 2, migrateCalls)
}

func TestNormalizeDSN(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"postgres://user:pw@host:5432/db", "postgresql://user:pw@host:5432/db"},
		{"postgresql://user:pw@host:5432/db", "postgresql://user:pw@host:5432/db"},
		{"host=localhost user=app dbname=app", "host=localhost user=app dbname=app"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeDSN(tt.in))
	}
}
