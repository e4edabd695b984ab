package models

// Settings holds user preferences persisted alongside bills and accounts.
type Settings struct {
	// NotificationsEnabled gates the notification scheduler; when false
	// scans are no-ops even if platform permission was granted.
	NotificationsEnabled bool `json:"notificationsEnabled"`

	// ReminderDays are the day-offsets before a due date at which an
	// "upcoming" notification fires.
	ReminderDays []int `json:"reminderDays"`
}

// DefaultSettings returns the settings used when no document exists yet:
// notifications on, reminders at 1, 3 and 7 days before due.
func DefaultSettings() Settings {
	return Settings{
		NotificationsEnabled: true,
		ReminderDays:         []int{1, 3, 7},
	}
}

// Document is the aggregate root: every bill, account and setting the
// tracker knows about. It is loaded and rewritten whole on each mutation;
// there are no partial updates.
type Document struct {
	Bills    []Bill    `json:"bills"`
	Accounts []Account `json:"accounts"`
	Settings Settings  `json:"settings"`
}

// DefaultDocument returns the empty document used when the store holds
// nothing, or when the stored document is unreadable.
func DefaultDocument() Document {
	return Document{
		Bills:    []Bill{},
		Accounts: []Account{},
		Settings: DefaultSettings(),
	}
}
