// Package history defines the picked-date history kept by the host CLI.
package history

import (
	"context"
	"errors"
	"time"

	"github.com/javiermolinar/fecha/internal/calendar"
)

// ErrDisabled is returned by the nop repository used when history is
// turned off in the configuration.
var ErrDisabled = errors.New("history is disabled")

// Entry is one recorded pick.
type Entry struct {
	ID       int64
	Date     calendar.Date
	PickedAt time.Time
}

// Repository defines the storage interface for picked dates.
type Repository interface {
	// Record stores a committed date.
	Record(ctx context.Context, d calendar.Date) error

	// List returns the most recent entries, newest first. A limit of 0
	// means no limit.
	List(ctx context.Context, limit int) ([]Entry, error)

	// Clear removes all entries.
	Clear(ctx context.Context) error

	// Close releases any resources held by the repository.
	Close() error
}

// Nop is a Repository that stores nothing. Reads report ErrDisabled.
type Nop struct{}

func (Nop) Record(context.Context, calendar.Date) error { return nil }

func (Nop) List(context.Context, int) ([]Entry, error) { return nil, ErrDisabled }

func (Nop) Clear(context.Context) error { return ErrDisabled }

func (Nop) Close() error { return nil }
