// Package testutil holds shared fixtures for package tests.
package testutil

import (
	"path/filepath"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"agro/pkg/connectivity"
	"agro/pkg/mirror"
)

// NewMirror returns a mirror store backed by a throwaway sqlite file.
func NewMirror(t *testing.T) *mirror.Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "mirror.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&mirror.Record{}))
	return mirror.New(db)
}

// NewMonitor returns a monitor in the given state.
func NewMonitor(t *testing.T, online bool) *connectivity.Monitor {
	t.Helper()
	mon := connectivity.New()
	mon.SetOnline(online)
	return mon
}
