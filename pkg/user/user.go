// Package user defines the local profile stored alongside the journal.
package user

import "tableflip.dev/memovault/pkg/entry"

// Profile is the single local account. It is read and written as one JSON
// object under the store's user key.
type Profile struct {
	ID          string          `json:"id"`
	Username    string          `json:"username"`
	Email       string          `json:"email,omitempty"`
	CreatedAt   entry.Timestamp `json:"createdAt"`
	Preferences Preferences     `json:"preferences"`
}

// Preferences mirrors the settings surface. The core only round-trips
// them; nothing here changes journal behavior.
type Preferences struct {
	Theme            string `json:"theme"`
	FontSize         string `json:"fontSize"`
	AutoLock         bool   `json:"autoLock"`
	AutoLockDelay    int    `json:"autoLockDelay"`
	BiometricEnabled bool   `json:"biometricEnabled"`
	ReminderEnabled  bool   `json:"reminderEnabled"`
	ReminderTime     string `json:"reminderTime,omitempty"`
	BackupEnabled    bool   `json:"backupEnabled"`
}

// DefaultPreferences are applied to a fresh profile.
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:         "system",
		FontSize:      "medium",
		AutoLockDelay: 5,
	}
}
