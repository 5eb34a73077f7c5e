// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"

	domainerrors "github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/errors"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/repository"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// kvStore implements the repository.KeyValueStore interface on the kv_entries table.
type kvStore struct {
	db *gorm.DB
}

// NewKeyValueStore is the constructor for kvStore.
func NewKeyValueStore(db *gorm.DB) repository.KeyValueStore {
	return &kvStore{
		db: db,
	}
}

// Migrate creates or updates the kv_entries table.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&model.KVEntryModel{}); err != nil {
		return errors.Wrap(err, "failed to migrate kv_entries")
	}

	return nil
}

// Get returns the document stored under key.
func (repo *kvStore) Get(ctx context.Context, key string) ([]byte, error) {
	var entryM model.KVEntryModel

	if err := repo.db.WithContext(ctx).
		Where("key = ?", key).
		First(&entryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrKeyNotFound
		}

		return nil, errors.Wrapf(err, "failed to get key %s", key)
	}

	return entryM.Value, nil
}

// Set upserts the document stored under key.
func (repo *kvStore) Set(ctx context.Context, key string, value []byte) error {
	entryM := &model.KVEntryModel{
		Key:   key,
		Value: value,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(entryM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to store key "+key)
	}

	return nil
}

// Delete removes key. Missing keys are ignored.
func (repo *kvStore) Delete(ctx context.Context, key string) error {
	if err := repo.db.WithContext(ctx).
		Where("key = ?", key).
		Delete(&model.KVEntryModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete key "+key)
	}

	return nil
}

// Keys lists stored keys starting with prefix.
func (repo *kvStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string

	if err := repo.db.WithContext(ctx).
		Model(&model.KVEntryModel{}).
		Where("key LIKE ? ESCAPE '\\'", likeEscaper.Replace(prefix)+"%").
		Order("key").
		Pluck("key", &keys).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list keys")
	}

	return keys, nil
}

// Close is a no-op: the connection pool is closed by the postgres lifecycle hook.
func (repo *kvStore) Close() error {
	return nil
}
