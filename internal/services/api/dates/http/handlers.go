// Package http provides http transport for dates
package http

import (
	stdhttp "net/http"

	"janaza/internal/modkit/httpkit"
	"janaza/internal/modkit/swaggerkit"
	"janaza/internal/services/api/dates/domain"
	svc "janaza/internal/services/api/dates/service"
)

// Register mounts dates endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.PostJSON(r, "/classify", h.classify)
	httpkit.PostJSON(r, "/format", h.format)
	httpkit.PostJSON(r, "/format/batch", h.formatBatch)
	httpkit.PostJSON(r, "/inputs", h.inputs)
	httpkit.PostJSON(r, "/build", h.build)
	httpkit.PostJSON(r, "/compare", h.compare)
	httpkit.PostJSON(r, "/relative", h.relative)
	httpkit.PostJSON(r, "/past", h.past)
	httpkit.Get(r, "/now", h.now)
	httpkit.Get(r, "/debug", h.debug)
	httpkit.Get(r, "/diagnostics", h.diagnostics)

	for _, p := range []string{"/classify", "/format", "/format/batch", "/inputs", "/build", "/compare", "/relative", "/past"} {
		swaggerkit.Describe(stdhttp.MethodPost, "/dates"+p)
	}
	for _, p := range []string{"/now", "/debug", "/diagnostics"} {
		swaggerkit.Describe(stdhttp.MethodGet, "/dates"+p)
	}
}

type handlers struct{ svc svc.Service }

// swagger:route POST /dates/classify Dates datesClassify
// @Summary Serialization convention of a raw timestamp
// @Tags Dates
// @Accept json
// @Produce json
// @Param payload body domain.ClassifyInput true "Value"
// @Success 200 {object} domain.ClassifyOutput "ok"
// @Router /dates/classify [post]
func (h *handlers) classify(r *stdhttp.Request, in domain.ClassifyInput) (any, error) {
	return h.svc.Classify(r.Context(), in), nil
}

// swagger:route POST /dates/format Dates datesFormat
// @Summary Render a timestamp for the viewer
// @Tags Dates
// @Accept json
// @Produce json
// @Param X-Timezone header string false "IANA zone of the viewer"
// @Param payload body domain.FormatInput true "Value, pattern and mode"
// @Success 200 {object} domain.FormatOutput "ok"
// @Router /dates/format [post]
func (h *handlers) format(r *stdhttp.Request, in domain.FormatInput) (any, error) {
	return h.svc.Format(r.Context(), in), nil
}

// swagger:route POST /dates/format/batch Dates datesFormatBatch
// @Summary Render up to 200 timestamps
// @Tags Dates
// @Accept json
// @Produce json
// @Param payload body domain.BatchInput true "Items"
// @Success 200 {array} domain.FormatOutput "ok"
// @Router /dates/format/batch [post]
func (h *handlers) formatBatch(r *stdhttp.Request, in domain.BatchInput) (any, error) {
	return h.svc.FormatBatch(r.Context(), in)
}

// swagger:route POST /dates/inputs Dates datesInputs
// @Summary Date and time input values
// @Tags Dates
// @Accept json
// @Produce json
// @Param payload body domain.InputsInput true "Value and mode"
// @Success 200 {object} domain.InputsOutput "ok"
// @Router /dates/inputs [post]
func (h *handlers) inputs(r *stdhttp.Request, in domain.InputsInput) (any, error) {
	return h.svc.Inputs(r.Context(), in), nil
}

// swagger:route POST /dates/build Dates datesBuild
// @Summary Wire timestamp from form inputs
// @Tags Dates
// @Accept json
// @Produce json
// @Param payload body domain.BuildInput true "Date, time and mode"
// @Success 200 {object} domain.BuildOutput "ok"
// @Failure 422 {object} httpkit.Envelope "date or time missing"
// @Router /dates/build [post]
func (h *handlers) build(r *stdhttp.Request, in domain.BuildInput) (any, error) {
	return h.svc.Build(r.Context(), in)
}

// swagger:route POST /dates/compare Dates datesCompare
// @Summary Order two timestamps
// @Tags Dates
// @Accept json
// @Produce json
// @Param payload body domain.CompareInput true "Values"
// @Success 200 {object} domain.CompareOutput "ok"
// @Router /dates/compare [post]
func (h *handlers) compare(r *stdhttp.Request, in domain.CompareInput) (any, error) {
	return h.svc.Compare(r.Context(), in), nil
}

// swagger:route POST /dates/relative Dates datesRelative
// @Summary Humanized distance to now
// @Tags Dates
// @Accept json
// @Produce json
// @Param payload body domain.ValueInput true "Value"
// @Success 200 {object} domain.RelativeOutput "ok"
// @Router /dates/relative [post]
func (h *handlers) relative(r *stdhttp.Request, in domain.ValueInput) (any, error) {
	return h.svc.Relative(r.Context(), in), nil
}

// swagger:route POST /dates/past Dates datesPast
// @Summary Whether a timestamp lies before now
// @Tags Dates
// @Accept json
// @Produce json
// @Param payload body domain.ValueInput true "Value"
// @Success 200 {object} domain.PastOutput "ok"
// @Router /dates/past [post]
func (h *handlers) past(r *stdhttp.Request, in domain.ValueInput) (any, error) {
	return h.svc.Past(r.Context(), in), nil
}

// @Summary Current instant for the viewer
// @Tags Dates
// @Produce json
// @Success 200 {object} domain.NowOutput "ok"
// @Router /dates/now [get]
func (h *handlers) now(r *stdhttp.Request) (any, error) {
	return h.svc.Now(r.Context()), nil
}

// @Summary Viewer zone debug report
// @Tags Dates
// @Produce json
// @Success 200 {object} datefmt.DebugInfo "ok"
// @Router /dates/debug [get]
func (h *handlers) debug(r *stdhttp.Request) (any, error) {
	return h.svc.Debug(r.Context()), nil
}

// @Summary Malformed timestamp counters
// @Tags Dates
// @Produce json
// @Success 200 {object} datefmt.Snapshot "ok"
// @Router /dates/diagnostics [get]
func (h *handlers) diagnostics(r *stdhttp.Request) (any, error) {
	return h.svc.Diagnostics(r.Context()), nil
}
