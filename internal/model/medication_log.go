package model

// MedicationStatus represents the status of a medication log entry.
type MedicationStatus string

const (
	// MedicationStatusTaken is assigned at write time: logging the entry is
	// itself the record of the dose being taken.
	MedicationStatusTaken MedicationStatus = "taken"
)

// MedicationLog is one medication intake entry. Entries are append-only and
// never mutated once written. LogID is the store-assigned key and the only
// handle to the entry; it is empty on the write path and filled on reads.
type MedicationLog struct {
	LogID          string           `json:"log_id,omitempty"`
	UserID         string           `json:"user_id"`
	MedicationName string           `json:"medication_name"`
	Dosage         string           `json:"dosage"`
	TakenAt        string           `json:"taken_at"`
	Status         MedicationStatus `json:"status"`
}
