package wire

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"seat-map/internal/data/entity"
	"seat-map/internal/data/repository"
	"seat-map/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  map[string]any  `json:"errors"`
}

type seatBody struct {
	ID        int    `json:"id"`
	Status    string `json:"status"`
	SetByUser bool   `json:"set_by_user"`
}

type summaryBody struct {
	Counts        map[string]int `json:"counts"`
	SelectedSeats []seatBody     `json:"selected_seats"`
	Details       []string       `json:"details"`
	Total         int            `json:"total"`
}

type changeBody struct {
	Changed bool        `json:"changed"`
	Seat    *seatBody   `json:"seat"`
	Summary summaryBody `json:"summary"`
}

type sessionBody struct {
	ID      string      `json:"id"`
	Layout  string      `json:"layout"`
	Seats   []seatBody  `json:"seats"`
	Summary summaryBody `json:"summary"`
}

func newTestApp(t *testing.T) *App {
	t.Helper()

	config := &utils.Config{SeatMap: utils.SeatMapConfig{
		PricePerSeat:  10,
		DefaultLayout: repository.DefaultLayoutName,
		SessionTTL:    time.Minute,
	}}

	repo := &repository.Repository{
		Layout: repository.NewChainLayoutRepository(
			repository.NewStaticLayoutRepository(&entity.Layout{
				Name:    "trio",
				Columns: 10,
				Seats:   []string{"available", "available", "reserved"},
			}),
			repository.NewStaticLayoutRepository(repository.DefaultLayout()),
		),
		Session: repository.NewSessionRepository(time.Minute, zap.NewNop()),
	}

	return Wiring(repo, config, zap.NewNop())
}

func do(t *testing.T, app *App, method, path, body string) (int, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec.Code, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func openSession(t *testing.T, app *App, layout string) sessionBody {
	t.Helper()
	code, env := do(t, app, http.MethodPost, "/api/sessions", `{"layout":"`+layout+`"}`)
	require.Equal(t, http.StatusCreated, code, env.Message)
	return decode[sessionBody](t, env.Data)
}

func TestHealth(t *testing.T) {
	app := newTestApp(t)

	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestListLayouts(t *testing.T) {
	app := newTestApp(t)

	code, env := do(t, app, http.MethodGet, "/api/layouts", "")
	require.Equal(t, http.StatusOK, code)

	layouts := decode[[]map[string]any](t, env.Data)
	require.Len(t, layouts, 2)
	assert.Equal(t, "default", layouts[0]["name"])
	assert.Equal(t, float64(88), layouts[0]["total_seats"])
	assert.Equal(t, "trio", layouts[1]["name"])
}

func TestOpenSession_EmptyBodyUsesDefaultLayout(t *testing.T) {
	app := newTestApp(t)

	code, env := do(t, app, http.MethodPost, "/api/sessions", "")
	require.Equal(t, http.StatusCreated, code)

	session := decode[sessionBody](t, env.Data)
	assert.Equal(t, "default", session.Layout)
	assert.Len(t, session.Seats, 88)
}

func TestOpenSession_ChunkedEmptyBody(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/sessions", strings.NewReader(""))
	req.ContentLength = -1
	req.TransferEncoding = []string{"chunked"}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "default", decode[sessionBody](t, env.Data).Layout)
}

func TestOpenSession_UnknownLayout(t *testing.T) {
	app := newTestApp(t)

	code, env := do(t, app, http.MethodPost, "/api/sessions", `{"layout":"rooftop"}`)
	assert.Equal(t, http.StatusNotFound, code)
	assert.False(t, env.Status)
}

func TestOpenSession_BadBody(t *testing.T) {
	app := newTestApp(t)

	code, _ := do(t, app, http.MethodPost, "/api/sessions", `{"layout":`)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestSeatSelectionFlow(t *testing.T) {
	app := newTestApp(t)
	session := openSession(t, app, "trio")
	base := "/api/sessions/" + session.ID

	// click seat 0
	code, env := do(t, app, http.MethodPost, base+"/seats/0/toggle", "")
	require.Equal(t, http.StatusOK, code)
	change := decode[changeBody](t, env.Data)
	assert.Equal(t, &seatBody{ID: 0, Status: "selected", SetByUser: true}, change.Seat)
	assert.Equal(t, map[string]int{"available": 1, "reserved": 1, "selected": 1}, change.Summary.Counts)

	// "-" cannot undo the click
	code, env = do(t, app, http.MethodPost, base+"/adjust", `{"direction":"decrement"}`)
	require.Equal(t, http.StatusOK, code)
	change = decode[changeBody](t, env.Data)
	assert.False(t, change.Changed)
	assert.Nil(t, change.Seat)

	// "+" picks seat 1, "-" releases it
	code, env = do(t, app, http.MethodPost, base+"/adjust", `{"direction":"increment"}`)
	require.Equal(t, http.StatusOK, code)
	change = decode[changeBody](t, env.Data)
	assert.Equal(t, &seatBody{ID: 1, Status: "selected"}, change.Seat)
	assert.Equal(t, 20, change.Summary.Total)

	code, env = do(t, app, http.MethodPost, base+"/adjust", `{"direction":"decrement"}`)
	require.Equal(t, http.StatusOK, code)
	change = decode[changeBody](t, env.Data)
	assert.Equal(t, &seatBody{ID: 1, Status: "available"}, change.Seat)

	code, env = do(t, app, http.MethodGet, base+"/summary", "")
	require.Equal(t, http.StatusOK, code)
	summary := decode[summaryBody](t, env.Data)
	assert.Equal(t, 10, summary.Total)
	assert.Equal(t, []string{"row: 1 seat: 1 price: $10"}, summary.Details)

	code, env = do(t, app, http.MethodGet, base, "")
	require.Equal(t, http.StatusOK, code)
	full := decode[sessionBody](t, env.Data)
	assert.Equal(t, "reserved", full.Seats[2].Status)

	code, _ = do(t, app, http.MethodDelete, base, "")
	assert.Equal(t, http.StatusOK, code)

	code, _ = do(t, app, http.MethodGet, base, "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestToggleSeat_Errors(t *testing.T) {
	app := newTestApp(t)
	session := openSession(t, app, "trio")
	base := "/api/sessions/" + session.ID

	code, _ := do(t, app, http.MethodPost, base+"/seats/2/toggle", "")
	assert.Equal(t, http.StatusConflict, code)

	code, _ = do(t, app, http.MethodPost, base+"/seats/3/toggle", "")
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, app, http.MethodPost, base+"/seats/x/toggle", "")
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, app, http.MethodPost, "/api/sessions/nope/seats/0/toggle", "")
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = do(t, app, http.MethodPost, "/api/sessions/"+uuid.NewString()+"/seats/0/toggle", "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestAdjustSelection_Validation(t *testing.T) {
	app := newTestApp(t)
	session := openSession(t, app, "trio")

	code, env := do(t, app, http.MethodPost, "/api/sessions/"+session.ID+"/adjust", `{"direction":"sideways"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Validation failed", env.Message)
	assert.Contains(t, env.Errors, "Direction")
}
