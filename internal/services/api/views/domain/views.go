package domain

// UserView is a user ready for display
type UserView struct {
	ID          string `json:"id"`
	FullName    string `json:"fullName" example:"Fatima Benali"`
	Initials    string `json:"initials" example:"FB"`
	Email       string `json:"email"`
	Role        string `json:"role" example:"Administrateur"`
	Gender      string `json:"gender" example:"Femme"`
	BirthDate   string `json:"birthDate" example:"14/03/1950"`
	Status      string `json:"status" example:"Actif"`
	CreatedAt   string `json:"createdAt" example:"05/10/2025 à 15:05"`
	UpdatedAt   string `json:"updatedAt"`
	DeletedAt   string `json:"deletedAt"`
	RgpdRequest string `json:"rgpdRequest"`
	Since       string `json:"since" example:"il y a 3 jours"`
}

// PlaceView is an address block
type PlaceView struct {
	Address  string `json:"address"`
	PostCode string `json:"postCode"`
	City     string `json:"city"`
	Country  string `json:"country"`
}

// ScheduleView is an event-local date and time pair
type ScheduleView struct {
	Date      string `json:"date" example:"06/10/2025"`
	Time      string `json:"time" example:"15:00"`
	DateTime  string `json:"dateTime" example:"06/10/2025 à 15:00"`
	Long      string `json:"long" example:"lundi 06 octobre 2025 à 15:00"`
	DateInput string `json:"dateInput" example:"2025-10-06"`
	TimeInput string `json:"timeInput" example:"15:00"`
}

// AnnounceView is an announcement ready for display
type AnnounceView struct {
	ID                     string        `json:"id"`
	FullName               string        `json:"fullName"`
	Initials               string        `json:"initials"`
	Gender                 string        `json:"gender"`
	BirthDate              string        `json:"birthDate"`
	Status                 string        `json:"status" example:"Active"`
	Remarks                string        `json:"remarks"`
	Prayer                 ScheduleView  `json:"prayer"`
	PrayerPlace            PlaceView     `json:"prayerPlace"`
	Funeral                *ScheduleView `json:"funeral,omitempty"`
	FuneralPlace           *PlaceView    `json:"funeralPlace,omitempty"`
	Upcoming               bool          `json:"upcoming"`
	CreatedAt              string        `json:"createdAt"`
	UpdatedAt              string        `json:"updatedAt"`
	DeletedAt              string        `json:"deletedAt"`
	ExpiredAt              string        `json:"expiredAt"`
	NotificationSentAt     string        `json:"notificationSentAt"`
	LocationNotificationAt string        `json:"locationNotificationAt"`
	Published              string        `json:"published" example:"il y a 2 heures"`
	Participants           int           `json:"participants"`
	User                   *UserView     `json:"user,omitempty"`
}

// ReportView is a report ready for display
type ReportView struct {
	ID          string       `json:"id"`
	Type        string       `json:"type"`
	Description string       `json:"description"`
	Status      string       `json:"status" example:"En attente"`
	AdminNotes  string       `json:"adminNotes"`
	CreatedAt   string       `json:"createdAt"`
	ResolvedAt  string       `json:"resolvedAt"`
	Announce    AnnounceView `json:"announce"`
	ReportedBy  *UserView    `json:"reportedBy,omitempty"`
}

// CommentView is a comment ready for display
type CommentView struct {
	ID             string      `json:"id"`
	Message        string      `json:"message"`
	Excerpt        string      `json:"excerpt"`
	Author         UserView    `json:"author"`
	CreatedAt      string      `json:"createdAt"`
	Since          string      `json:"since"`
	Deleted        bool        `json:"deleted"`
	DeletedAt      string      `json:"deletedAt"`
	DeletionReason string      `json:"deletionReason"`
	ParentID       string      `json:"parentId,omitempty"`
	Announce       AnnounceRef `json:"announce"`
}

// AnnounceRef is the short form of an announcement inside other views
type AnnounceRef struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Prayer   string `json:"prayer"`
}

// ReasonView is a moderation reason ready for display
type ReasonView struct {
	ID          int    `json:"id"`
	Code        string `json:"code"`
	Label       string `json:"label"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Category    string `json:"category"`
	Status      string `json:"status" example:"Actif"`
	Order       int    `json:"order"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// PushTokenView is a device ready for display
type PushTokenView struct {
	DeviceID  string    `json:"deviceId"`
	Token     string    `json:"token"`
	User      *UserView `json:"user,omitempty"`
	Position  string    `json:"position" example:"48.8566, 2.3522"`
	CreatedAt string    `json:"createdAt"`
	UpdatedAt string    `json:"updatedAt"`
}

// ScheduleInput is the announcement form's date and time fields
type ScheduleInput struct {
	PrayerDate  string `json:"prayerDate" validate:"required,datetime=2006-01-02" example:"2025-10-06"`
	PrayerTime  string `json:"prayerTime" validate:"required,datetime=15:04" example:"15:00"`
	FuneralDate string `json:"funeralDate,omitempty" validate:"omitempty,datetime=2006-01-02" example:"2025-10-06"`
	FuneralTime string `json:"funeralTime,omitempty" validate:"omitempty,datetime=15:04" example:"16:30"`
}

// Schedule is the wire form of the announcement dates, event-local
type Schedule struct {
	StartDate   string  `json:"startDate" example:"2025-10-06T15:00:00.000Z"`
	StartTime   string  `json:"startTime" example:"2025-10-06T15:00:00.000Z"`
	FuneralDate *string `json:"funeralDate" example:"2025-10-06T16:30:00.000Z"`
	FuneralTime *string `json:"funeralTime" example:"2025-10-06T16:30:00.000Z"`
}
