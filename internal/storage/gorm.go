package storage

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/dental-admin/internal/models"
)

var _ Backend = (*GormBackend)(nil)

// GormBackend stores each namespaced collection as one row of kv_entries.
type GormBackend struct {
	db *gorm.DB
}

func NewGormBackend(db *gorm.DB) *GormBackend {
	return &GormBackend{db: db}
}

func (g *GormBackend) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var entry models.KVEntry
	err := g.db.WithContext(ctx).
		Where("key = ?", key).
		First(&entry).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, classifyPg(err)
	}
	return []byte(entry.Value), true, nil
}

func (g *GormBackend) Save(ctx context.Context, key string, value []byte) error {
	entry := models.KVEntry{
		Key:       key,
		Value:     string(value),
		UpdatedAt: time.Now().UTC(),
	}

	err := g.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error

	return classifyPg(err)
}

func (g *GormBackend) Keys(ctx context.Context, prefix string) ([]string, error) {
	var keys []string
	err := g.db.WithContext(ctx).
		Model(&models.KVEntry{}).
		Where("key LIKE ?", escapeLike(prefix)+"%").
		Order("key").
		Pluck("key", &keys).Error
	if err != nil {
		return nil, classifyPg(err)
	}
	return keys, nil
}

// classifyPg maps postgres resource exhaustion onto ErrQuotaExceeded:
// SQLSTATE class 53 (insufficient resources) and 54000 (program limit).
func classifyPg(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if strings.HasPrefix(pgErr.Code, "53") || pgErr.Code == "54000" {
			return errors.Join(ErrQuotaExceeded, err)
		}
	}
	return err
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
