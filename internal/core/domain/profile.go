package domain

import "time"

// Profile is the per-plant configuration maintained by the surrounding
// automation: what the plant is, which growth stage it is in and the
// sensor thresholds currently in force.
type Profile struct {
	PlantID    string             `json:"plant_id" validate:"required"`
	PlantType  string             `json:"plant_type" validate:"required"`
	Stage      string             `json:"stage,omitempty"`
	Thresholds map[string]float64 `json:"thresholds,omitempty"`
	Sensors    map[string]string  `json:"sensors,omitempty"`
}

// Threshold change statuses.
const (
	ChangePending  = "pending"
	ChangeApproved = "approved"
	ChangeRejected = "rejected"
)

// ThresholdChange is a single proposed threshold edit awaiting review.
type ThresholdChange struct {
	Previous Value  `json:"previous_value"`
	Proposed Value  `json:"proposed_value"`
	Status   string `json:"status"`
}

// ThresholdRecord groups the proposed changes for one plant into a
// reviewable unit persisted in the pending queue.
type ThresholdRecord struct {
	ID        string                     `json:"id"`
	PlantID   string                     `json:"plant_id"`
	Timestamp time.Time                  `json:"timestamp"`
	Changes   map[string]ThresholdChange `json:"changes"`
}

// SuggestionRequest carries everything a threshold suggester needs:
// the profile identity, the thresholds in force and recent readings per
// metric.
type SuggestionRequest struct {
	PlantID    string
	PlantType  string
	Stage      string
	Thresholds map[string]float64
	Readings   map[string][]float64
}
