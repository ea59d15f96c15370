// Package entry defines the journal entry model shared by the repository,
// query, and analytics packages.
package entry

import (
	"strings"

	"tableflip.dev/memovault/pkg/mood"
)

// Entry is a single dated journal record. ID and both timestamps are owned
// by the repository; callers never set them. Mood is a copy of the catalog
// row taken at save time, so later catalog edits never rewrite history.
type Entry struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Content     string       `json:"content"`
	Date        string       `json:"date"` // YYYY-MM-DD, user-assigned entry date
	Mood        *mood.Mood   `json:"mood,omitempty"`
	Tags        []string     `json:"tags"`
	Attachments []Attachment `json:"attachments"`
	IsLocked    bool         `json:"isLocked"`
	CreatedAt   Timestamp    `json:"createdAt"`
	UpdatedAt   Timestamp    `json:"updatedAt"`
}

// Attachment is carried through persistence untouched. The core never
// populates it.
type Attachment struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Input holds the caller-supplied fields for a new entry, everything an
// Entry has except the repository-owned bookkeeping.
type Input struct {
	Title       string
	Content     string
	Date        string
	Mood        *mood.Mood
	Tags        []string
	Attachments []Attachment
	IsLocked    bool
}

// Patch enumerates the updatable fields of an entry. Nil means leave the
// field alone. The set is deliberately closed; there is no merge of
// arbitrary partial records.
type Patch struct {
	Title       *string
	Content     *string
	Date        *string
	Mood        **mood.Mood // outer nil: keep; inner nil: clear the mood
	Tags        *[]string
	Attachments *[]Attachment
	IsLocked    *bool
}

// DefaultTitle is stored when an entry is saved without a title.
const DefaultTitle = "Untitled Entry"

// HasContent reports whether the input carries any non-whitespace title or
// body text.
func (in Input) HasContent() bool {
	return strings.TrimSpace(in.Title) != "" || strings.TrimSpace(in.Content) != ""
}

// NormalizeTags trims and lowercases tags, drops empties, and removes
// duplicates while preserving first-seen order.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

// Clone returns a deep copy of the entry. Mood, Tags, and Attachments are
// duplicated so holders of the copy can not reach repository state.
func (e *Entry) Clone() *Entry {
	if e == nil {
		return nil
	}
	c := *e
	if e.Mood != nil {
		m := *e.Mood
		c.Mood = &m
	}
	if e.Tags != nil {
		c.Tags = append([]string(nil), e.Tags...)
	}
	if e.Attachments != nil {
		c.Attachments = append([]Attachment(nil), e.Attachments...)
	}
	return &c
}

// MoodValue returns the entry's mood weight, or the neutral default when no
// mood was recorded.
func (e *Entry) MoodValue() int {
	if e.Mood == nil {
		return mood.Neutral
	}
	return e.Mood.Value
}

// HasTag reports whether the entry carries the tag, compared
// case-insensitively.
func (e *Entry) HasTag(tag string) bool {
	needle := strings.ToLower(tag)
	for _, t := range e.Tags {
		if strings.ToLower(t) == needle {
			return true
		}
	}
	return false
}
