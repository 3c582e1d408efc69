// Package postgres keeps the ledger world state in a PostgreSQL table through
// GORM. Apply runs inside one database transaction, so a unit of work
// commits all its writes or none.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"assettransfer/internal/core/ports"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var _ ports.Store = (*Store)(nil)

// Store implements ports.Store on the world_state table.
type Store struct {
	db *gorm.DB
}

// NewStore creates a store on db. Call Migrate once before use.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates or updates the world_state table.
func (s *Store) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&WorldStateDTO{})
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	var dto WorldStateDTO
	if err := s.db.WithContext(ctx).First(&dto, "state_key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get %q: %w", key, err)
	}
	return dto.Value, nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	return put(s.db.WithContext(ctx), key, value)
}

func (s *Store) Delete(ctx context.Context, key string) error {
	return remove(s.db.WithContext(ctx), key)
}

func (s *Store) ScanRange(ctx context.Context, start, end string) ([]ports.KeyValue, error) {
	query := s.db.WithContext(ctx).Model(&WorldStateDTO{})
	if start != "" {
		query = query.Where("state_key >= ?", start)
	}
	if end != "" {
		query = query.Where("state_key < ?", end)
	}

	var dtos []WorldStateDTO
	if err := query.Order("state_key").Find(&dtos).Error; err != nil {
		return nil, fmt.Errorf("scan [%q, %q): %w", start, end, err)
	}

	entries := make([]ports.KeyValue, 0, len(dtos))
	for _, dto := range dtos {
		entries = append(entries, ports.KeyValue{Key: dto.Key, Value: dto.Value})
	}
	return entries, nil
}

func (s *Store) Apply(ctx context.Context, mutations []ports.Mutation) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range mutations {
			var err error
			switch m.Op {
			case ports.OpPut:
				err = put(tx, m.Key, m.Value)
			case ports.OpDelete:
				err = remove(tx, m.Key)
			default:
				err = fmt.Errorf("apply %q: unsupported operation %s", m.Key, m.Op)
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func put(db *gorm.DB, key string, value []byte) error {
	dto := WorldStateDTO{Key: key, Value: value}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "state_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"state_value", "updated_at"}),
	}).Create(&dto).Error
	if err != nil {
		return fmt.Errorf("put %q: %w", key, err)
	}
	return nil
}

func remove(db *gorm.DB, key string) error {
	if err := db.Delete(&WorldStateDTO{}, "state_key = ?", key).Error; err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}
