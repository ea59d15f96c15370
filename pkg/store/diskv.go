// Package store persists journal state to a local diskv key-value
// database. Two logical keys exist: "entries" holds the full entry
// collection as a JSON array, newest first, and "user" holds the profile
// object.
package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/memovault/pkg/entry"
	"tableflip.dev/memovault/pkg/user"
)

const (
	entriesKey = "entries"
	userKey    = "user"
)

// ErrPersistence wraps every failure of the backing store so callers can
// detect degraded durability without matching on diskv internals.
var ErrPersistence = errors.New("store: persistence failure")

// Persistence is the durable key-value contract the repository writes
// through. Reads of missing keys return empty values, not errors.
type Persistence interface {
	ReadEntries() ([]*entry.Entry, error)
	WriteEntries(entries []*entry.Entry) error
	ReadUser() (*user.Profile, error)
	WriteUser(u *user.Profile) error
	EraseAll() error
}

// Load creates a Persistence backed by diskv using the provided config.
// Passing nil config resolves one via LoadConfig.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	return &persistence{d: diskv.New(diskv.Options{
		BasePath:     cfg.BasePath(),
		Transform:    flatTransform,
		CacheSizeMax: 1024 * 1024, // 1MB
	})}, nil
}

// flatTransform keeps both logical keys as plain files under the base path.
func flatTransform(key string) []string { return []string{} }

type persistence struct {
	d *diskv.Diskv
}

func (p *persistence) ReadEntries() ([]*entry.Entry, error) {
	if !p.d.Has(entriesKey) {
		return []*entry.Entry{}, nil
	}
	data, err := p.d.Read(entriesKey)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrPersistence, entriesKey, err)
	}
	var entries []*entry.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrPersistence, entriesKey, err)
	}
	if entries == nil {
		entries = []*entry.Entry{}
	}
	return entries, nil
}

func (p *persistence) WriteEntries(entries []*entry.Entry) error {
	if entries == nil {
		entries = []*entry.Entry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrPersistence, entriesKey, err)
	}
	if err := p.d.Write(entriesKey, data); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrPersistence, entriesKey, err)
	}
	return nil
}

func (p *persistence) ReadUser() (*user.Profile, error) {
	if !p.d.Has(userKey) {
		return nil, nil
	}
	data, err := p.d.Read(userKey)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrPersistence, userKey, err)
	}
	u := &user.Profile{}
	if err := json.Unmarshal(data, u); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrPersistence, userKey, err)
	}
	return u, nil
}

func (p *persistence) WriteUser(u *user.Profile) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", ErrPersistence, userKey, err)
	}
	if err := p.d.Write(userKey, data); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrPersistence, userKey, err)
	}
	return nil
}

// EraseAll removes both logical keys. Used by the delete-account flow; the
// user key goes first so a partial failure never leaves a profile without
// its entries.
func (p *persistence) EraseAll() error {
	for _, key := range []string{userKey, entriesKey} {
		if !p.d.Has(key) {
			continue
		}
		if err := p.d.Erase(key); err != nil {
			return fmt.Errorf("%w: erase %s: %v", ErrPersistence, key, err)
		}
	}
	return nil
}
