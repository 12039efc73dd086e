// Package column manages the configurable names of the board's lanes.
package column

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/thenoetrevino/daykan/internal/database"
	"github.com/thenoetrevino/daykan/internal/models"
	"github.com/thenoetrevino/daykan/internal/services/rollover"
)

const maxNameLength = 50

// Service defines all column-related business operations
type Service interface {
	GetColumns(ctx context.Context) ([]string, error)
	SetColumns(ctx context.Context, names []string) ([]string, error)
}

type service struct {
	settings database.SettingsRepository
	engine   *rollover.Engine
}

// NewService creates a new column service
func NewService(settings database.SettingsRepository, engine *rollover.Engine) Service {
	return &service{
		settings: settings,
		engine:   engine,
	}
}

// GetColumns returns exactly MaxColumns names, padding unconfigured lanes
func (s *service) GetColumns(ctx context.Context) ([]string, error) {
	var names []string
	err := s.engine.Run(ctx, func(ctx context.Context, _ time.Time) error {
		var err error
		names, err = Load(ctx, s.settings)
		return err
	})
	return names, err
}

// SetColumns stores up to MaxColumns non-blank names. Extra names are
// dropped silently and short lists are padded on read.
func (s *service) SetColumns(ctx context.Context, names []string) ([]string, error) {
	cleaned := Normalize(names)
	for _, name := range cleaned {
		if len(name) > maxNameLength {
			return nil, ErrNameTooLong
		}
		if strings.Contains(name, ",") {
			return nil, ErrNameComma
		}
	}

	var result []string
	err := s.engine.Run(ctx, func(ctx context.Context, _ time.Time) error {
		if err := s.settings.SetSetting(ctx, database.SettingColumns, strings.Join(cleaned, ",")); err != nil {
			return err
		}
		result = Pad(cleaned)
		return nil
	})
	return result, err
}

// Load reads the column names from settings without taking the board lock.
// Callers already inside rollover.Engine.Run use it directly.
func Load(ctx context.Context, settings database.SettingsRepository) ([]string, error) {
	raw, ok, err := settings.GetSetting(ctx, database.SettingColumns)
	if err != nil {
		return nil, fmt.Errorf("failed to load columns: %w", err)
	}
	if !ok {
		return Pad(models.DefaultColumnNames), nil
	}
	return Pad(Normalize(strings.Split(raw, ","))), nil
}

// Normalize trims names, drops blanks and truncates to MaxColumns
func Normalize(names []string) []string {
	cleaned := make([]string, 0, models.MaxColumns)
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		cleaned = append(cleaned, name)
		if len(cleaned) == models.MaxColumns {
			break
		}
	}
	return cleaned
}

// Pad fills a list up to MaxColumns with placeholder names
func Pad(names []string) []string {
	padded := make([]string, 0, models.MaxColumns)
	padded = append(padded, names...)
	for len(padded) < models.MaxColumns {
		padded = append(padded, models.PlaceholderColumnName(len(padded)))
	}
	return padded[:models.MaxColumns]
}
