package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// document is one collection stored as a row.
type document struct {
	Name      string `gorm:"primaryKey;type:varchar(64)"`
	Body      string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

func (document) TableName() string { return "collections" }

// GormBackend stores each document as a row of the collections table. It
// works with any GORM dialect; sqlite and postgres are wired in Open.
type GormBackend struct {
	db   *gorm.DB
	kind string
}

// NewGormBackend migrates the collections table.
func NewGormBackend(db *gorm.DB, kind string) (*GormBackend, error) {
	if err := db.AutoMigrate(&document{}); err != nil {
		return nil, fmt.Errorf("failed to migrate collections table: %w", err)
	}
	return &GormBackend{db: db, kind: kind}, nil
}

func (b *GormBackend) Read(ctx context.Context, name string) ([]byte, error) {
	var doc document
	if err := b.db.WithContext(ctx).Take(&doc, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotExist
		}
		return nil, fmt.Errorf("failed to read collection %s: %w", name, err)
	}
	return []byte(doc.Body), nil
}

func (b *GormBackend) Write(ctx context.Context, name string, data []byte) error {
	doc := document{Name: name, Body: string(data), UpdatedAt: time.Now()}
	err := b.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"body", "updated_at"}),
	}).Create(&doc).Error
	if err != nil {
		return fmt.Errorf("failed to write collection %s: %w", name, err)
	}
	return nil
}

func (b *GormBackend) Kind() string { return b.kind }

func (b *GormBackend) Close() error {
	sqlDB, err := b.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
