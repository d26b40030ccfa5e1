// Package mirror persists the last known server-shaped rows of each
// collection, plus the per-collection pending-sync flag. Collections are
// independent; there is no cross-collection transactionality.
package mirror

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"agro/pkg/remote"
)

type Record struct {
	Collection  string `gorm:"primaryKey"`
	Data        string // JSON array of wire rows
	PendingSync bool
	UpdatedAt   time.Time
}

func (Record) TableName() string { return "mirrors" }

type Store struct{ db *gorm.DB }

func New(db *gorm.DB) *Store { return &Store{db: db} }

// Read returns the mirrored rows and pending flag. A never-written
// collection reads as empty with pending=false.
func (s *Store) Read(collection string) ([]remote.Row, bool, error) {
	var rec Record
	err := s.db.First(&rec, "collection = ?", collection).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("mirror read %s: %w", collection, err)
	}
	var rows []remote.Row
	if rec.Data != "" {
		if err := json.Unmarshal([]byte(rec.Data), &rows); err != nil {
			return nil, false, fmt.Errorf("mirror decode %s: %w", collection, err)
		}
	}
	return rows, rec.PendingSync, nil
}

func (s *Store) Write(collection string, rows []remote.Row, pending bool) error {
	if rows == nil {
		rows = []remote.Row{}
	}
	data, err := json.Marshal(rows)
	if err != nil {
		return fmt.Errorf("mirror encode %s: %w", collection, err)
	}
	rec := Record{
		Collection:  collection,
		Data:        string(data),
		PendingSync: pending,
		UpdatedAt:   time.Now(),
	}
	err = s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("mirror write %s: %w", collection, err)
	}
	return nil
}

func (s *Store) SetPending(collection string, pending bool) error {
	rows, _, err := s.Read(collection)
	if err != nil {
		return err
	}
	return s.Write(collection, rows, pending)
}

func (s *Store) Pending(collection string) (bool, error) {
	_, pending, err := s.Read(collection)
	return pending, err
}

// PendingCollections lists every collection currently flagged pending.
func (s *Store) PendingCollections() ([]string, error) {
	var names []string
	err := s.db.Model(&Record{}).Where("pending_sync = ?", true).
		Order("collection asc").Pluck("collection", &names).Error
	if err != nil {
		return nil, fmt.Errorf("mirror pending scan: %w", err)
	}
	return names, nil
}
