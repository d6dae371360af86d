package domain

import "context"

// ServicePort defines the service contract for views
type ServicePort interface {
	Announce(ctx context.Context, in Announce) AnnounceView
	Schedule(ctx context.Context, in ScheduleInput) (Schedule, error)
	User(ctx context.Context, in User) UserView
	Report(ctx context.Context, in Report) ReportView
	Comment(ctx context.Context, in Comment) CommentView
	Reason(ctx context.Context, in Reason) ReasonView
	PushToken(ctx context.Context, in PushToken) PushTokenView
}
