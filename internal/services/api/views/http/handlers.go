// Package http provides http transport for views
package http

import (
	stdhttp "net/http"

	"janaza/internal/modkit/httpkit"
	"janaza/internal/modkit/swaggerkit"
	"janaza/internal/platform/net/http/bind"
	"janaza/internal/services/api/views/domain"
	svc "janaza/internal/services/api/views/service"
)

// entities are forwarded as the admin API returns them, relations and all
var entity = bind.JSONOptions{MaxBytes: 1 << 20}

// Register mounts view endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON(r, "/announce", h.announce, entity)
	httpkit.PostJSON(r, "/announce/schedule", h.schedule)
	httpkit.PostJSON(r, "/user", h.user, entity)
	httpkit.PostJSON(r, "/report", h.report, entity)
	httpkit.PostJSON(r, "/comment", h.comment, entity)
	httpkit.PostJSON(r, "/reason", h.reason, entity)
	httpkit.PostJSON(r, "/push-token", h.pushToken, entity)

	for _, p := range []string{"/announce", "/announce/schedule", "/user", "/report", "/comment", "/reason", "/push-token"} {
		swaggerkit.Describe(stdhttp.MethodPost, "/views"+p)
	}
}

type handlers struct{ svc svc.Service }

// swagger:route POST /views/announce Views viewsAnnounce
// @Summary Announcement ready for display
// @Tags Views
// @Accept json
// @Produce json
// @Param X-Timezone header string false "IANA zone of the viewer"
// @Param payload body domain.Announce true "Announcement as returned by the admin API"
// @Success 200 {object} domain.AnnounceView "ok"
// @Router /views/announce [post]
func (h *handlers) announce(r *stdhttp.Request, in domain.Announce) (any, error) {
	return h.svc.Announce(r.Context(), in), nil
}

// swagger:route POST /views/announce/schedule Views viewsSchedule
// @Summary Wire dates of the announcement form
// @Tags Views
// @Accept json
// @Produce json
// @Param payload body domain.ScheduleInput true "Prayer and funeral inputs"
// @Success 200 {object} domain.Schedule "ok"
// @Failure 422 {object} httpkit.Envelope "funeral date without time"
// @Router /views/announce/schedule [post]
func (h *handlers) schedule(r *stdhttp.Request, in domain.ScheduleInput) (any, error) {
	return h.svc.Schedule(r.Context(), in)
}

// swagger:route POST /views/user Views viewsUser
// @Summary Account ready for display
// @Tags Views
// @Accept json
// @Produce json
// @Param payload body domain.User true "Account"
// @Success 200 {object} domain.UserView "ok"
// @Router /views/user [post]
func (h *handlers) user(r *stdhttp.Request, in domain.User) (any, error) {
	return h.svc.User(r.Context(), in), nil
}

// swagger:route POST /views/report Views viewsReport
// @Summary Report ready for display
// @Tags Views
// @Accept json
// @Produce json
// @Param payload body domain.Report true "Report"
// @Success 200 {object} domain.ReportView "ok"
// @Router /views/report [post]
func (h *handlers) report(r *stdhttp.Request, in domain.Report) (any, error) {
	return h.svc.Report(r.Context(), in), nil
}

// swagger:route POST /views/comment Views viewsComment
// @Summary Comment ready for display
// @Tags Views
// @Accept json
// @Produce json
// @Param payload body domain.Comment true "Comment"
// @Success 200 {object} domain.CommentView "ok"
// @Router /views/comment [post]
func (h *handlers) comment(r *stdhttp.Request, in domain.Comment) (any, error) {
	return h.svc.Comment(r.Context(), in), nil
}

// swagger:route POST /views/reason Views viewsReason
// @Summary Moderation reason ready for display
// @Tags Views
// @Accept json
// @Produce json
// @Param payload body domain.Reason true "Reason"
// @Success 200 {object} domain.ReasonView "ok"
// @Router /views/reason [post]
func (h *handlers) reason(r *stdhttp.Request, in domain.Reason) (any, error) {
	return h.svc.Reason(r.Context(), in), nil
}

// swagger:route POST /views/push-token Views viewsPushToken
// @Summary Device ready for display
// @Tags Views
// @Accept json
// @Produce json
// @Param payload body domain.PushToken true "Push token"
// @Success 200 {object} domain.PushTokenView "ok"
// @Router /views/push-token [post]
func (h *handlers) pushToken(r *stdhttp.Request, in domain.PushToken) (any, error) {
	return h.svc.PushToken(r.Context(), in), nil
}
