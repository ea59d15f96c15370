// Package mood defines the fixed catalog of selectable moods.
package mood

import (
	"fmt"
	"strings"
)

// Mood is one catalog row. Value runs 1 (worst) to 5 (best) and is the
// weight used by every numeric aggregation. Color doubles as a stable
// grouping key for charts.
type Mood struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
	Value int    `json:"value"`
	Color string `json:"color"`
}

// Neutral is the value assumed for entries without a recorded mood
// wherever a number is required.
const Neutral = 3

// Catalog returns the ordered list of selectable moods. The slice is
// rebuilt on every call so callers can not edit the catalog in place.
func Catalog() []Mood {
	return []Mood{
		{ID: "amazing", Name: "Amazing", Emoji: "🤩", Value: 5, Color: "#f59e0b"},
		{ID: "happy", Name: "Happy", Emoji: "😊", Value: 4, Color: "#22c55e"},
		{ID: "grateful", Name: "Grateful", Emoji: "🙏", Value: 4, Color: "#8b5cf6"},
		{ID: "calm", Name: "Calm", Emoji: "😌", Value: 3, Color: "#06b6d4"},
		{ID: "tired", Name: "Tired", Emoji: "😴", Value: 2, Color: "#64748b"},
		{ID: "anxious", Name: "Anxious", Emoji: "😰", Value: 2, Color: "#eab308"},
		{ID: "sad", Name: "Sad", Emoji: "😢", Value: 1, Color: "#3b82f6"},
		{ID: "angry", Name: "Angry", Emoji: "😠", Value: 1, Color: "#ef4444"},
	}
}

// ByID looks up a catalog mood. The returned Mood is a copy.
func ByID(id string) (Mood, bool) {
	for _, m := range Catalog() {
		if m.ID == id {
			return m, true
		}
	}
	return Mood{}, false
}

// ForAlias resolves user input to a catalog mood, accepting the id or the
// display name in any case.
func ForAlias(alias string) (Mood, error) {
	needle := strings.ToLower(strings.TrimSpace(alias))
	for _, m := range Catalog() {
		if m.ID == needle || strings.ToLower(m.Name) == needle {
			return m, nil
		}
	}
	return Mood{}, fmt.Errorf("mood: unknown mood %q", alias)
}

func (m Mood) String() string {
	return fmt.Sprintf("%s %s", m.Emoji, m.Name)
}
