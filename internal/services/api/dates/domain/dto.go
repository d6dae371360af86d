// Package domain holds DTOs for the dates http and service contracts
package domain

import "janaza/internal/core/datefmt"

// Mode selects the formatting strategy
type Mode string

// Modes accepted by the format and inputs endpoints
const (
	ModeDisplay Mode = "display" // classified by suffix
	ModeUTC     Mode = "utc"     // always converting
	ModeEvent   Mode = "event"   // verbatim wall clock
	ModeSystem  Mode = "system"  // converting, system default pattern
)

// MaxBatch bounds /format/batch
const MaxBatch = 200

// ClassifyInput is the classify request
type ClassifyInput struct {
	Value string `json:"value" validate:"max=64" example:"2025-10-06T15:00:00.000Z"`
}

// ClassifyOutput reports the convention of a value
type ClassifyOutput struct {
	Kind datefmt.Kind `json:"kind" example:"event-local"`
}

// FormatInput is one format request
type FormatInput struct {
	Value   string `json:"value" validate:"max=64" example:"2025-10-05T13:05:30.123Z"`
	Pattern string `json:"pattern,omitempty" validate:"omitempty,max=64" example:"DD/MM/YYYY HH:mm"`
	Mode    Mode   `json:"mode,omitempty" validate:"omitempty,oneof=display utc event system" example:"display"`
}

// FormatOutput is the rendered text and the convention it was rendered with
type FormatOutput struct {
	Kind datefmt.Kind `json:"kind" example:"system"`
	Text string       `json:"text" example:"05/10/2025 15:05"`
}

// BatchInput formats up to MaxBatch values in one call
type BatchInput struct {
	Items []FormatInput `json:"items" validate:"required,min=1,max=200,dive"`
}

// InputsInput asks for HTML input values
type InputsInput struct {
	Value string `json:"value" validate:"max=64" example:"2025-10-06T15:00:00.000Z"`
	Mode  Mode   `json:"mode,omitempty" validate:"omitempty,oneof=display utc" example:"display"`
}

// InputsOutput holds date and time input values, "" when the value is empty or invalid
type InputsOutput struct {
	Date string `json:"date" example:"2025-10-06"`
	Time string `json:"time" example:"15:00"`
}

// BuildInput turns form inputs into a wire timestamp. Empty fields are a domain error, not a validation one
type BuildInput struct {
	Date string `json:"date" validate:"omitempty,datetime=2006-01-02" example:"2025-10-06"`
	Time string `json:"time" validate:"omitempty,datetime=15:04" example:"15:00"`
	Mode Mode   `json:"mode,omitempty" validate:"omitempty,oneof=event utc" example:"event"`
}

// BuildOutput is the wire timestamp
type BuildOutput struct {
	ISO string `json:"iso" example:"2025-10-06T15:00:00.000Z"`
}

// CompareInput orders two values
type CompareInput struct {
	A string `json:"a" validate:"max=64"`
	B string `json:"b" validate:"max=64"`
}

// CompareOutput is -1, 0 or 1
type CompareOutput struct {
	Order int `json:"order" example:"-1"`
}

// ValueInput carries a single raw value
type ValueInput struct {
	Value string `json:"value" validate:"max=64" example:"2025-10-05T10:00:00.123Z"`
}

// RelativeOutput is a humanized distance to now
type RelativeOutput struct {
	Text string `json:"text" example:"il y a 2 heures"`
}

// PastOutput tells whether a value lies before now
type PastOutput struct {
	Past bool `json:"past" example:"true"`
}

// NowOutput is the current instant for the viewer
type NowOutput struct {
	Now      string `json:"now" example:"2025-10-05T12:00:00.000Z"`
	Local    string `json:"local" example:"05/10/2025 14:00"`
	Zone     string `json:"zone" example:"Europe/Paris"`
	Language string `json:"language" example:"fr"`
}
