package settings

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"

	"post-receptor/core/database"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrSchemaMismatch is returned by VerifySchema when the options table is
// missing columns.
var ErrSchemaMismatch = errors.New("options table schema mismatch")

// Option is one persisted setting.
type Option struct {
	Name  string `gorm:"column:name;primaryKey;size:191"`
	Value string `gorm:"column:value"`
}

// TableName overrides the table name.
func (Option) TableName() string {
	return "receptor_options"
}

// Store persists options in the database. It reads the table on every
// Snapshot, so a rotated token or key takes effect on the next request.
type Store struct {
	db *gorm.DB
}

// NewStore creates a settings store.
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Migrate creates the options table.
func (s *Store) Migrate() error {
	return s.db.AutoMigrate(&Option{})
}

// VerifySchema checks the options table when migrations are disabled.
func (s *Store) VerifySchema() error {
	missing, err := database.MissingColumns(s.db, Option{}.TableName(), []string{"name", "value"})
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %v", ErrSchemaMismatch, missing)
	}
	return nil
}

// Snapshot loads all options.
func (s *Store) Snapshot(ctx context.Context) (Settings, error) {
	var rows []Option
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return Settings{}, fmt.Errorf("failed to load settings: %w", err)
	}

	values := make(map[string]string, len(rows))
	for _, row := range rows {
		values[row.Name] = row.Value
	}
	return fromOptions(values), nil
}

// Get returns a single option, or "" when unset.
func (s *Store) Get(ctx context.Context, name string) (string, error) {
	var row Option
	err := s.db.WithContext(ctx).Where("name = ?", name).Limit(1).Find(&row).Error
	if err != nil {
		return "", fmt.Errorf("failed to read option %s: %w", name, err)
	}
	return row.Value, nil
}

// Set upserts an option.
func (s *Store) Set(ctx context.Context, name, value string) error {
	if !knownOption(name) {
		return fmt.Errorf("%w: %s", ErrUnknownOption, name)
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&Option{Name: name, Value: value}).Error
	if err != nil {
		return fmt.Errorf("failed to write option %s: %w", name, err)
	}
	return nil
}

// Bootstrap seeds empty options from the configuration.
func (s *Store) Bootstrap(ctx context.Context, cfg Config) error {
	for name, value := range cfg.options() {
		if value == "" {
			continue
		}
		current, err := s.Get(ctx, name)
		if err != nil {
			return err
		}
		if current != "" {
			continue
		}
		if err := s.Set(ctx, name, value); err != nil {
			return err
		}
	}
	return nil
}

// RegenerateToken stores a new random receiver token and returns it. The
// previous token stops working immediately.
func (s *Store) RegenerateToken(ctx context.Context) (string, error) {
	token, err := NewToken()
	if err != nil {
		return "", err
	}
	if err := s.Set(ctx, OptionAuthToken, token); err != nil {
		return "", err
	}
	return token, nil
}

// NewToken returns 32 hex characters from a cryptographic source.
func NewToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
