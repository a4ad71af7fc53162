package model

// MoodLog is one mood entry. Same append-only rules as MedicationLog.
type MoodLog struct {
	LogID    string `json:"log_id,omitempty"`
	UserID   string `json:"user_id"`
	Mood     string `json:"mood"`
	Notes    string `json:"notes,omitempty"`
	LoggedAt string `json:"logged_at"`
}
