// Package diary owns the authoritative entry collection. Every write
// passes through the Repository, which keeps the in-memory list and the
// durable store in step: a mutation only survives if its persist
// succeeds, otherwise it is rolled back and the error surfaced.
package diary

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/memovault/pkg/entry"
	"tableflip.dev/memovault/pkg/store"
	"tableflip.dev/memovault/pkg/timeutil"
)

// Sentinel errors for repository operations.
var (
	// ErrNotFound means the target id is not in the collection.
	ErrNotFound = errors.New("diary: entry not found")
	// ErrValidation means the input carries neither title nor content.
	ErrValidation = errors.New("diary: entry needs a title or content")
)

// Repository is the single writer of the entry collection. Entries are
// held newest-first; new entries prepend. All reads hand out copies.
type Repository struct {
	mu          sync.Mutex
	entries     []*entry.Entry
	persistence store.Persistence
}

// NewRepository loads the stored collection into memory. A failed or
// corrupt read is not fatal: the repository starts empty and the error is
// returned alongside it so the caller can warn about degraded durability.
func NewRepository(p store.Persistence) (*Repository, error) {
	r := &Repository{persistence: p, entries: []*entry.Entry{}}
	loaded, err := p.ReadEntries()
	if err != nil {
		return r, fmt.Errorf("diary: load: %w", err)
	}
	r.entries = loaded
	return r, nil
}

// Add validates and stores a new entry, assigning its id and timestamps.
// The returned entry is a copy of the stored record.
func (r *Repository) Add(in entry.Input) (*entry.Entry, error) {
	if !in.HasContent() {
		return nil, ErrValidation
	}
	if in.Date != "" && !timeutil.ValidDate(in.Date) {
		return nil, fmt.Errorf("%w: bad date %q", ErrValidation, in.Date)
	}

	now := entry.Now()
	e := &entry.Entry{
		ID:          uuid.NewString(),
		Title:       in.Title,
		Content:     in.Content,
		Date:        in.Date,
		Tags:        entry.NormalizeTags(in.Tags),
		Attachments: append([]entry.Attachment(nil), in.Attachments...),
		IsLocked:    in.IsLocked,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	e.Title = strings.TrimSpace(e.Title)
	if e.Title == "" {
		e.Title = entry.DefaultTitle
	}
	if in.Mood != nil {
		m := *in.Mood // copy, never alias the catalog
		e.Mood = &m
	}
	if e.Date == "" {
		e.Date = timeutil.Today()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append([]*entry.Entry{e}, r.entries...)
	if err := r.persistence.WriteEntries(r.entries); err != nil {
		r.entries = r.entries[1:]
		return nil, err
	}
	return e.Clone(), nil
}

// Update applies the set fields of the patch to the matching entry and
// bumps UpdatedAt. ID and CreatedAt are never touched. Returns
// ErrNotFound when the id is absent; the collection is unchanged on any
// failure.
func (r *Repository) Update(id string, p entry.Patch) (*entry.Entry, error) {
	if p.Date != nil && *p.Date != "" && !timeutil.ValidDate(*p.Date) {
		return nil, fmt.Errorf("%w: bad date %q", ErrValidation, *p.Date)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}

	prev := r.entries[i]
	next := prev.Clone()
	if p.Title != nil {
		next.Title = strings.TrimSpace(*p.Title)
		if next.Title == "" {
			next.Title = entry.DefaultTitle
		}
	}
	if p.Content != nil {
		next.Content = *p.Content
	}
	if p.Date != nil && *p.Date != "" {
		next.Date = *p.Date
	}
	if p.Mood != nil {
		if *p.Mood == nil {
			next.Mood = nil
		} else {
			m := **p.Mood
			next.Mood = &m
		}
	}
	if p.Tags != nil {
		next.Tags = entry.NormalizeTags(*p.Tags)
	}
	if p.Attachments != nil {
		next.Attachments = append([]entry.Attachment(nil), (*p.Attachments)...)
	}
	if p.IsLocked != nil {
		next.IsLocked = *p.IsLocked
	}
	next.UpdatedAt = entry.Now()
	if !next.UpdatedAt.After(prev.UpdatedAt.Time) {
		// clock granularity; UpdatedAt must strictly increase
		next.UpdatedAt = entry.Timestamp{Time: prev.UpdatedAt.Add(time.Nanosecond)}
	}

	r.entries[i] = next
	if err := r.persistence.WriteEntries(r.entries); err != nil {
		r.entries[i] = prev
		return nil, err
	}
	return next.Clone(), nil
}

// Remove deletes the matching entry. Removing an absent id is an error,
// not a silent no-op.
func (r *Repository) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}

	prev := r.entries
	next := make([]*entry.Entry, 0, len(prev)-1)
	next = append(next, prev[:i]...)
	next = append(next, prev[i+1:]...)

	r.entries = next
	if err := r.persistence.WriteEntries(r.entries); err != nil {
		r.entries = prev
		return err
	}
	return nil
}

// Get returns a copy of the entry with the given id, or false when absent.
func (r *Repository) Get(id string) (*entry.Entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, false
	}
	return r.entries[i].Clone(), true
}

// All returns a snapshot of the collection in stored order, newest first.
// Every entry is copied; mutating the snapshot never touches the
// repository.
func (r *Repository) All() []*entry.Entry {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*entry.Entry, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.Clone()
	}
	return out
}

// Len reports the number of stored entries.
func (r *Repository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func (r *Repository) indexOf(id string) int {
	for i, e := range r.entries {
		if e.ID == id {
			return i
		}
	}
	return -1
}
