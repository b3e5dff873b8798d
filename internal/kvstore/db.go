package kvstore

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Record is one row of the key/value table. Values are the serialized JSON
// documents the state layer produces; the database is not asked to understand
// their shape.
type Record struct {
	Key   string `gorm:"primaryKey;size:255"`
	Value string `gorm:"type:text"`
}

func (Record) TableName() string {
	return "keyed_records"
}

// DB is a Store backed by a relational database through gorm.
type DB struct {
	db *gorm.DB
}

// NewDB migrates the key/value table and returns the store.
func NewDB(db *gorm.DB) (*DB, error) {
	if err := db.AutoMigrate(&Record{}); err != nil {
		return nil, err
	}
	return &DB{db: db}, nil
}

func (d *DB) Get(ctx context.Context, key string) (string, bool, error) {
	var rec Record
	err := d.db.WithContext(ctx).First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return rec.Value, true, nil
}

func (d *DB) Set(ctx context.Context, key, value string) error {
	rec := Record{Key: key, Value: value}
	return d.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&rec).Error
}
