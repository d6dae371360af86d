package module

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
	_ "time/tzdata"

	"janaza/internal/core/datefmt"
	modkit "janaza/internal/modkit"
	"janaza/internal/modkit/httpkit"
	"janaza/internal/modkit/module"
	perr "janaza/internal/platform/errors"
	phttp "janaza/internal/platform/net/http"
	datesdom "janaza/internal/services/api/dates/domain"
	datesmod "janaza/internal/services/api/dates/module"
	"janaza/internal/services/api/views/domain"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const announceBody = `{
	"id": "a1",
	"firstName": "Ahmed",
	"lastName": "Benali",
	"gender": "M",
	"active": true,
	"startDate": "2025-10-06T15:00:00.000Z",
	"startTime": "2025-10-06T15:00:00.000Z",
	"funeralDate": null,
	"funeralTime": null,
	"createdAt": "2025-10-05T10:00:00.000Z",
	"comments": []
}`

func newAPI(t *testing.T) http.Handler {
	t.Helper()
	dates := datefmt.New(
		datefmt.WithLocation(time.UTC),
		datefmt.WithClock(func() time.Time { return time.Date(2025, 10, 5, 12, 0, 0, 0, time.UTC) }),
	)
	dm := datesmod.New(modkit.Deps{Dates: dates})
	vm := New(modkit.Deps{}, modkit.WithPorts(Ports{Dates: module.MustPortsOf[datesdom.FormatterPort](dm)}))

	root := phttp.AdaptChi(chi.NewRouter())
	httpkit.MountAPIV1(root, httpkit.CommonStack(httpkit.StackOptions{}, dates), func(api httpkit.Router) {
		vm.MountRoutes(api)
	})
	return root.Mux()
}

func post(t *testing.T, h http.Handler, path, body string, hdr map[string]string) (int, httpkit.Envelope) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	var env httpkit.Envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec.Code, env
}

func data[T any](t *testing.T, env httpkit.Envelope) T {
	t.Helper()
	b, err := json.Marshal(env.Data)
	require.NoError(t, err)
	var out T
	require.NoError(t, json.Unmarshal(b, &out))
	return out
}

func TestViewsAPI_AnnounceFollowsViewerZone(t *testing.T) {
	api := newAPI(t)

	code, env := post(t, api, "/api/v1/views/announce", announceBody,
		map[string]string{httpkit.HeaderTimezone: "America/New_York"})
	require.Equal(t, http.StatusOK, code)
	v := data[domain.AnnounceView](t, env)
	assert.Equal(t, "06/10/2025 à 15:00", v.Prayer.DateTime)
	assert.Equal(t, "05/10/2025 à 06:00", v.CreatedAt)
	assert.Nil(t, v.Funeral)

	_, env = post(t, api, "/api/v1/views/announce?tz=Europe/Paris&lang=en", announceBody, nil)
	v = data[domain.AnnounceView](t, env)
	assert.Equal(t, "06/10/2025 à 15:00", v.Prayer.DateTime)
	assert.Equal(t, "05/10/2025 à 12:00", v.CreatedAt)
	assert.Equal(t, "2 hours ago", v.Published)
	assert.Contains(t, v.Prayer.Long, "Monday")
}

func TestViewsAPI_AnnounceRejectsUnknownGender(t *testing.T) {
	code, env := post(t, newAPI(t), "/api/v1/views/announce", `{"id":"a1","gender":"X"}`, nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, perr.ErrorCodeValidation, env.Code)
	assert.Equal(t, "gender", env.Field)
}

func TestViewsAPI_Schedule(t *testing.T) {
	api := newAPI(t)

	code, env := post(t, api, "/api/v1/views/announce/schedule",
		`{"prayerDate":"2025-10-06","prayerTime":"15:00","funeralDate":"2025-10-06","funeralTime":"16:30"}`,
		map[string]string{httpkit.HeaderTimezone: "Asia/Tokyo"})
	require.Equal(t, http.StatusOK, code)
	s := data[domain.Schedule](t, env)
	assert.Equal(t, "2025-10-06T15:00:00.000Z", s.StartDate)
	require.NotNil(t, s.FuneralTime)
	assert.Equal(t, "2025-10-06T16:30:00.000Z", *s.FuneralTime)

	code, env = post(t, api, "/api/v1/views/announce/schedule",
		`{"prayerDate":"2025-10-06","prayerTime":"15:00","funeralDate":"2025-10-06"}`, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, perr.ErrorCodeInvalidArgument, env.Code)
	assert.Equal(t, "funeralTime", env.Field)

	code, env = post(t, api, "/api/v1/views/announce/schedule", `{"prayerDate":"06/10/2025","prayerTime":"15:00"}`, nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "prayerDate", env.Field)
}

func TestViewsAPI_OtherEntities(t *testing.T) {
	api := newAPI(t)
	tz := map[string]string{httpkit.HeaderTimezone: "Europe/Paris"}

	code, env := post(t, api, "/api/v1/views/user", `{"id":"u1","roles":"admin","createdAt":"2025-10-05T10:00:00.000Z"}`, tz)
	require.Equal(t, http.StatusOK, code)
	u := data[domain.UserView](t, env)
	assert.Equal(t, "Administrateur", u.Role)
	assert.Equal(t, "05/10/2025 à 12:00", u.CreatedAt)

	code, env = post(t, api, "/api/v1/views/report",
		`{"id":"r1","resolved":true,"updatedAt":"2025-10-05T10:00:00.000Z","announce":`+announceBody+`}`, tz)
	require.Equal(t, http.StatusOK, code)
	r := data[domain.ReportView](t, env)
	assert.Equal(t, "Résolu", r.Status)
	assert.Equal(t, "05/10/2025 à 12:00", r.ResolvedAt)

	code, env = post(t, api, "/api/v1/views/comment",
		`{"id":"c1","message":"Amine","createdAt":"2025-10-05T11:00:00.000Z","user":{"id":"u1"},"announce":`+announceBody+`}`, tz)
	require.Equal(t, http.StatusOK, code)
	c := data[domain.CommentView](t, env)
	assert.Equal(t, "05/10/2025 à 13:00", c.CreatedAt)
	assert.Equal(t, "06/10/2025 à 15:00", c.Announce.Prayer)

	code, env = post(t, api, "/api/v1/views/reason", `{"id":1,"label":"Spam","active":true}`, tz)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "Actif", data[domain.ReasonView](t, env).Status)

	code, env = post(t, api, "/api/v1/views/push-token", `{"deviceId":"d1","expoPushToken":"tok","latitude":1.5,"longitude":-2}`, tz)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "1.5000, -2.0000", data[domain.PushTokenView](t, env).Position)
}

func TestViewsModule_Identity(t *testing.T) {
	m := New(modkit.Deps{Dates: datefmt.New(datefmt.WithZone("UTC"))})
	assert.Equal(t, "views", m.Name())
	assert.Equal(t, "/views", m.Prefix())
	assert.Nil(t, m.Ports())
}

func TestViewsModule_FallsBackToDeps(t *testing.T) {
	dates := datefmt.New(datefmt.WithZone("Asia/Tokyo"))
	m := New(modkit.Deps{Dates: dates})

	root := phttp.AdaptChi(chi.NewRouter())
	httpkit.MountAPIV1(root, httpkit.CommonStack(httpkit.StackOptions{}, dates), m.MountRoutes)
	code, env := post(t, root.Mux(), "/api/v1/views/reason", `{"id":1,"createdAt":"2025-10-05T18:00:00.000Z"}`, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "06/10/2025 à 03:00", data[domain.ReasonView](t, env).CreatedAt)
}
