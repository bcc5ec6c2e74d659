package journal

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Operation names a mutating storage operation.
type Operation string

const (
	OpBucketCreate  Operation = "bucket.create"
	OpBucketDelete  Operation = "bucket.delete"
	OpObjectStore   Operation = "object.store"
	OpObjectPublic  Operation = "object.public"
	OpObjectPrivate Operation = "object.private"
)

// Entry is one journal row.
type Entry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Operation Operation `gorm:"size:32;index" json:"operation"`
	Bucket    string    `gorm:"size:63;index" json:"bucket"`
	Key       string    `gorm:"column:object_key;size:1024" json:"key,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName overrides the gorm default.
func (Entry) TableName() string {
	return "journal_entries"
}

// Recorder records completed operations.
type Recorder interface {
	Record(ctx context.Context, op Operation, bucket, key string) error
	Recent(ctx context.Context, limit int) ([]Entry, error)
}

// Journal is a Recorder backed by a gorm database.
type Journal struct {
	db *gorm.DB
}

// New creates a journal on top of an open connection.
func New(db *gorm.DB) *Journal {
	return &Journal{db: db}
}

// Migrate creates or updates the journal table.
func (j *Journal) Migrate(ctx context.Context) error {
	if err := j.db.WithContext(ctx).AutoMigrate(&Entry{}); err != nil {
		return fmt.Errorf("failed to migrate journal: %w", err)
	}
	return nil
}

// Record appends an entry.
func (j *Journal) Record(ctx context.Context, op Operation, bucket, key string) error {
	entry := Entry{
		Operation: op,
		Bucket:    bucket,
		Key:       key,
		CreatedAt: time.Now().UTC(),
	}
	if err := j.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return fmt.Errorf("failed to record %s: %w", op, err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (j *Journal) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 20
	}
	var entries []Entry
	if err := j.db.WithContext(ctx).Order("id desc").Limit(limit).Find(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}
	return entries, nil
}

// Nop discards every entry.
type Nop struct{}

func (Nop) Record(context.Context, Operation, string, string) error { return nil }

func (Nop) Recent(context.Context, int) ([]Entry, error) { return nil, nil }
