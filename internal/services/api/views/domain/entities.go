// Package domain holds the raw API entities and their display views
package domain

import "janaza/internal/core/datefmt"

// Field types carry the timestamp convention: EventTime values were shifted server side and are
// rendered verbatim, SystemTime values are UTC instants converted to the viewer zone.
// Timestamp fields of unknown provenance fall back to the suffix heuristic

// User is an account as returned by the admin API
type User struct {
	ID                      string             `json:"id"`
	Email                   *string            `json:"email"`
	Roles                   string             `json:"roles"`
	FirstName               *string            `json:"firstName"`
	LastName                *string            `json:"lastName"`
	Gender                  string             `json:"gender" validate:"omitempty,oneof=M F"`
	DateOfBirth             datefmt.Timestamp  `json:"dateOfBirth"`
	CreatedAt               datefmt.SystemTime `json:"createdAt"`
	UpdatedAt               datefmt.SystemTime `json:"updatedAt"`
	DeletedAt               datefmt.SystemTime `json:"deletedAt"`
	DeletionReasonID        *int               `json:"deletionReasonId"`
	RgpdDeletionRequested   bool               `json:"rgpdDeletionRequested"`
	RgpdDeletionRequestedAt datefmt.SystemTime `json:"rgpdDeletionRequestedAt"`
	IPHash                  string             `json:"ipHash,omitempty"`
}

// Announce is a funeral announcement
type Announce struct {
	ID          string            `json:"id"`
	FirstName   *string           `json:"firstName"`
	LastName    *string           `json:"lastName"`
	Gender      string            `json:"gender" validate:"omitempty,oneof=M F"`
	DateOfBirth datefmt.Timestamp `json:"dateOfBirth"`
	Active      bool              `json:"active"`
	HasForum    bool              `json:"hasForum"`
	Remarks     *string           `json:"remarks"`

	AddressPray   string  `json:"addressPray"`
	PostCodePray  int     `json:"postCodePray"`
	CityPray      string  `json:"cityPray"`
	CountryPray   string  `json:"countryPray"`
	LatitudePray  float64 `json:"latitudePray"`
	LongitudePray float64 `json:"longitudePray"`

	StartDate datefmt.EventTime `json:"startDate"`
	StartTime datefmt.EventTime `json:"startTime"`

	AddressFuneral   *string  `json:"addressFuneral"`
	PostCodeFuneral  *int     `json:"postCodeFuneral"`
	CityFuneral      *string  `json:"cityFuneral"`
	CountryFuneral   *string  `json:"countryFuneral"`
	LatitudeFuneral  *float64 `json:"latitudeFuneral"`
	LongitudeFuneral *float64 `json:"longitudeFuneral"`

	FuneralDate datefmt.EventTime `json:"funeralDate"`
	FuneralTime datefmt.EventTime `json:"funeralTime"`

	CreatedAt                  datefmt.SystemTime `json:"createdAt"`
	UpdatedAt                  datefmt.SystemTime `json:"updatedAt"`
	DeletedAt                  datefmt.SystemTime `json:"deletedAt"`
	DeletionReasonID           *int               `json:"deletionReasonId"`
	Expired                    bool               `json:"expired"`
	ExpiredAt                  datefmt.SystemTime `json:"expiredAt"`
	NotificationSent           bool               `json:"notificationSent"`
	NotificationSentAt         datefmt.SystemTime `json:"notificationSentAt"`
	LocationNotificationSent   bool               `json:"locationNotificationSent"`
	LocationNotificationSentAt datefmt.SystemTime `json:"locationNotificationSentAt"`
	ParticipantsCount          *int               `json:"participantsCount,omitempty"`
	User                       *User              `json:"user,omitempty"`
}

// Report is a user report against an announcement
type Report struct {
	ID          string             `json:"id"`
	Type        string             `json:"type"`
	Description *string            `json:"description"`
	Resolved    bool               `json:"resolved"`
	AdminNotes  *string            `json:"adminNotes"`
	IPAddress   *string            `json:"ipAddress"`
	DeviceID    *string            `json:"deviceId"`
	CreatedAt   datefmt.SystemTime `json:"createdAt"`
	UpdatedAt   datefmt.SystemTime `json:"updatedAt"`
	Announce    Announce           `json:"announce"`
	ReportedBy  *User              `json:"reportedBy"`
}

// Comment is a forum message under an announcement
type Comment struct {
	ID               string             `json:"id"`
	Message          string             `json:"message"`
	CreatedAt        datefmt.SystemTime `json:"createdAt"`
	DeletedAt        datefmt.SystemTime `json:"deletedAt"`
	DeletionReasonID *int               `json:"deletionReasonId"`
	Parent           *Comment           `json:"parent"`
	Announce         Announce           `json:"announce"`
	User             User               `json:"user"`
	DeletionReason   *Reason            `json:"deletionReason,omitempty"`
}

// Reason is a moderation reason
type Reason struct {
	ID           int                `json:"id"`
	Code         string             `json:"code"`
	Label        string             `json:"label"`
	Description  *string            `json:"description"`
	Type         string             `json:"type"`
	Category     string             `json:"category"`
	Active       bool               `json:"active"`
	DisplayOrder int                `json:"displayOrder"`
	CreatedAt    datefmt.SystemTime `json:"createdAt"`
	UpdatedAt    datefmt.SystemTime `json:"updatedAt"`
}

// PushToken is a registered device
type PushToken struct {
	DeviceID      string             `json:"deviceId"`
	ExpoPushToken string             `json:"expoPushToken"`
	UserID        *string            `json:"userId"`
	User          *User              `json:"user,omitempty"`
	Latitude      float64            `json:"latitude"`
	Longitude     float64            `json:"longitude"`
	CreatedAt     datefmt.SystemTime `json:"createdAt"`
	UpdatedAt     datefmt.SystemTime `json:"updatedAt"`
}
