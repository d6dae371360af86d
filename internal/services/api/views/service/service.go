// Package service turns raw admin API entities into display views
package service

import (
	"context"
	"strconv"

	"janaza/internal/core/datefmt"
	"janaza/internal/core/labels"
	perr "janaza/internal/platform/errors"
	pstrings "janaza/internal/platform/strings"
	datesdom "janaza/internal/services/api/dates/domain"
	"janaza/internal/services/api/views/domain"
)

// Service defines the service contract for views
type Service interface{ domain.ServicePort }

// Svc implements Service on top of the dates formatter port
type Svc struct {
	dates datesdom.FormatterPort
}

// Remarks and comment excerpts are cut to these many runes
const (
	remarksLen = 100
	excerptLen = 80
	tokenLen   = 30
)

// New creates a views service
func New(dates datesdom.FormatterPort) *Svc {
	if dates == nil {
		panic("views.Service requires a non nil FormatterPort")
	}
	return &Svc{dates: dates}
}

// Announce renders an announcement. Prayer and funeral times are event-local, audit fields are system
func (s *Svc) Announce(ctx context.Context, in domain.Announce) domain.AnnounceView {
	return s.announce(s.dates.Formatter(ctx), in)
}

func (s *Svc) announce(f *datefmt.Formatter, in domain.Announce) domain.AnnounceView {
	v := domain.AnnounceView{
		ID:                     in.ID,
		FullName:               labels.FullName(in.FirstName, in.LastName),
		Initials:               labels.Initials(in.FirstName, in.LastName),
		Gender:                 labels.GenderLabel(in.Gender),
		BirthDate:              f.Format(in.DateOfBirth, datefmt.PatternDate),
		Status:                 announceStatus(in),
		Remarks:                labels.Truncate(in.Remarks, remarksLen),
		Prayer:                 schedule(f, in.StartDate, in.StartTime),
		PrayerPlace:            place(in.AddressPray, postCode(&in.PostCodePray), in.CityPray, in.CountryPray),
		Upcoming:               upcoming(f, in.StartDate, in.StartTime),
		CreatedAt:              systemDateTime(f, in.CreatedAt),
		UpdatedAt:              systemDateTime(f, in.UpdatedAt),
		DeletedAt:              systemDateTime(f, in.DeletedAt),
		ExpiredAt:              systemDateTime(f, in.ExpiredAt),
		NotificationSentAt:     systemDateTime(f, in.NotificationSentAt),
		LocationNotificationAt: systemDateTime(f, in.LocationNotificationSentAt),
		Published:              f.FormatRelative(string(in.CreatedAt)),
	}
	if in.FuneralDate != "" && in.FuneralTime != "" {
		fv := schedule(f, in.FuneralDate, in.FuneralTime)
		v.Funeral = &fv
		pv := place(pstrings.Deref(in.AddressFuneral), postCode(in.PostCodeFuneral), pstrings.Deref(in.CityFuneral), pstrings.Deref(in.CountryFuneral))
		v.FuneralPlace = &pv
	}
	if in.ParticipantsCount != nil {
		v.Participants = *in.ParticipantsCount
	}
	if in.User != nil {
		uv := s.user(f, *in.User)
		v.User = &uv
	}
	return v
}

// Schedule builds the wire dates of the announcement form. The funeral pair is all or nothing
func (s *Svc) Schedule(_ context.Context, in domain.ScheduleInput) (domain.Schedule, error) {
	start, err := datefmt.BuildISOFromInputs(in.PrayerDate, in.PrayerTime)
	if err != nil {
		return domain.Schedule{}, perr.WithField(err, "prayerDate")
	}
	out := domain.Schedule{StartDate: start, StartTime: start}

	switch {
	case in.FuneralDate == "" && in.FuneralTime == "":
		return out, nil
	case in.FuneralDate == "":
		return domain.Schedule{}, perr.WithField(perr.InvalidArgf("la date des funérailles est requise avec l'heure"), "funeralDate")
	case in.FuneralTime == "":
		return domain.Schedule{}, perr.WithField(perr.InvalidArgf("l'heure des funérailles est requise avec la date"), "funeralTime")
	}
	funeral, err := datefmt.BuildISOFromInputs(in.FuneralDate, in.FuneralTime)
	if err != nil {
		return domain.Schedule{}, perr.WithField(err, "funeralDate")
	}
	out.FuneralDate, out.FuneralTime = &funeral, &funeral
	return out, nil
}

// User renders an account
func (s *Svc) User(ctx context.Context, in domain.User) domain.UserView {
	return s.user(s.dates.Formatter(ctx), in)
}

func (s *Svc) user(f *datefmt.Formatter, in domain.User) domain.UserView {
	status := "Actif"
	if in.DeletedAt != "" {
		status = "Supprimé"
	}
	return domain.UserView{
		ID:          in.ID,
		FullName:    labels.FullName(in.FirstName, in.LastName),
		Initials:    labels.Initials(in.FirstName, in.LastName),
		Email:       pstrings.Deref(in.Email),
		Role:        labels.RoleLabel(in.Roles),
		Gender:      labels.GenderLabel(in.Gender),
		BirthDate:   f.Format(in.DateOfBirth, datefmt.PatternDate),
		Status:      status,
		CreatedAt:   systemDateTime(f, in.CreatedAt),
		UpdatedAt:   systemDateTime(f, in.UpdatedAt),
		DeletedAt:   systemDateTime(f, in.DeletedAt),
		RgpdRequest: systemDateTime(f, in.RgpdDeletionRequestedAt),
		Since:       f.FormatRelative(string(in.CreatedAt)),
	}
}

// Report renders a report; a resolved report shows its last update as resolution time
func (s *Svc) Report(ctx context.Context, in domain.Report) domain.ReportView {
	f := s.dates.Formatter(ctx)
	v := domain.ReportView{
		ID:          in.ID,
		Type:        in.Type,
		Description: labels.Truncate(in.Description, remarksLen),
		Status:      "En attente",
		AdminNotes:  labels.Truncate(in.AdminNotes, remarksLen),
		CreatedAt:   systemDateTime(f, in.CreatedAt),
		ResolvedAt:  datefmt.Placeholder,
		Announce:    s.announce(f, in.Announce),
	}
	if in.Resolved {
		v.Status = "Résolu"
		v.ResolvedAt = systemDateTime(f, in.UpdatedAt)
	}
	if in.ReportedBy != nil {
		uv := s.user(f, *in.ReportedBy)
		v.ReportedBy = &uv
	}
	return v
}

// Comment renders a forum comment
func (s *Svc) Comment(ctx context.Context, in domain.Comment) domain.CommentView {
	f := s.dates.Formatter(ctx)
	v := domain.CommentView{
		ID:             in.ID,
		Message:        in.Message,
		Excerpt:        labels.Truncate(&in.Message, excerptLen),
		Author:         s.user(f, in.User),
		CreatedAt:      systemDateTime(f, in.CreatedAt),
		Since:          f.FormatRelative(string(in.CreatedAt)),
		Deleted:        in.DeletedAt != "",
		DeletedAt:      systemDateTime(f, in.DeletedAt),
		DeletionReason: datefmt.Placeholder,
		Announce: domain.AnnounceRef{
			ID:       in.Announce.ID,
			FullName: labels.FullName(in.Announce.FirstName, in.Announce.LastName),
			Prayer:   schedule(f, in.Announce.StartDate, in.Announce.StartTime).DateTime,
		},
	}
	if in.Parent != nil {
		v.ParentID = in.Parent.ID
	}
	if in.DeletionReason != nil {
		v.DeletionReason = in.DeletionReason.Label
	}
	return v
}

// Reason renders a moderation reason
func (s *Svc) Reason(ctx context.Context, in domain.Reason) domain.ReasonView {
	f := s.dates.Formatter(ctx)
	status := "Inactif"
	if in.Active {
		status = "Actif"
	}
	return domain.ReasonView{
		ID:          in.ID,
		Code:        in.Code,
		Label:       in.Label,
		Description: labels.Truncate(in.Description, remarksLen),
		Type:        in.Type,
		Category:    in.Category,
		Status:      status,
		Order:       in.DisplayOrder,
		CreatedAt:   systemDateTime(f, in.CreatedAt),
		UpdatedAt:   systemDateTime(f, in.UpdatedAt),
	}
}

// PushToken renders a registered device
func (s *Svc) PushToken(ctx context.Context, in domain.PushToken) domain.PushTokenView {
	f := s.dates.Formatter(ctx)
	v := domain.PushTokenView{
		DeviceID:  in.DeviceID,
		Token:     labels.Truncate(&in.ExpoPushToken, tokenLen),
		Position:  strconv.FormatFloat(in.Latitude, 'f', 4, 64) + ", " + strconv.FormatFloat(in.Longitude, 'f', 4, 64),
		CreatedAt: systemDateTime(f, in.CreatedAt),
		UpdatedAt: systemDateTime(f, in.UpdatedAt),
	}
	if in.User != nil {
		uv := s.user(f, *in.User)
		v.User = &uv
	}
	return v
}
