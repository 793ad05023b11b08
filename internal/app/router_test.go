package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	dto "roulette_backend/internal/api/dto/game"
	"roulette_backend/internal/model"
	"roulette_backend/pkg/token"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("router_secret")

type jwtCfg struct{}

func (jwtCfg) SecretKey() []byte     { return testSecret }
func (jwtCfg) Leeway() time.Duration { return 0 }

type gameCfg struct{ maxBets int }

func (gameCfg) Games() []model.GameVariant { return []model.GameVariant{model.EuropeanRoulette} }
func (c gameCfg) MaxBets() int             { return c.maxBets }

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	sp := newServiceProvider()
	sp.jwtCfg = jwtCfg{}
	sp.gameCfg = gameCfg{maxBets: 3}
	return sp.Router(t.Context())
}

func bearer(t *testing.T, serviceID string) string {
	t.Helper()
	tok, err := token.GenerateServiceToken(serviceID, testSecret, time.Hour, time.Now())
	require.NoError(t, err)
	return "Bearer " + tok
}

func do(t *testing.T, h http.Handler, method, path, body, authorization string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	assert.True(t, strings.HasSuffix(rec.Header().Get("x-response-time"), " us"))
	return rec
}

const validBody = `{"game":"EuropeanRoulette","bets":[{"playerId":"p1","bet":"RED","chipsIn":10}]}`

func TestRouter_Teapot(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodGet, "/teapot", "", "")
	assert.Equal(t, http.StatusTeapot, rec.Code)
}

func TestRouter_UnknownRoute(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodGet, "/nothing/here", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = do(t, h, http.MethodDelete, "/game/check", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_Metrics(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "roulette_stored_records")
}

func TestRouter_Check(t *testing.T) {
	h := newTestRouter(t)

	tests := []struct {
		name   string
		body   string
		status int
		text   string
	}{
		{"valid", validBody, http.StatusNoContent, ""},
		{"chipsOut is ignored", `{"game":"EuropeanRoulette","bets":[{"playerId":"p1","bet":"00","chipsIn":1,"chipsOut":5}]}`, http.StatusNoContent, ""},
		{"unknown fields are ignored", `{"game":"EuropeanRoulette","note":"x","bets":[{"playerId":"p1","bet":"00","chipsIn":1,"tag":"y"}]}`, http.StatusNoContent, ""},
		{"bad selector", `{"game":"EuropeanRoulette","bets":[{"playerId":"p1","bet":"99","chipsIn":1}]}`, http.StatusBadRequest, "Invalid bet string (bet 0)"},
		{"too many chips", `{"game":"EuropeanRoulette","bets":[{"playerId":"p1","bet":"00","chipsIn":18446744073709551615}]}`, http.StatusBadRequest, "Too many chips (bet 0)"},
		{"no bets", `{"game":"EuropeanRoulette","bets":[]}`, http.StatusBadRequest, "No bets placed"},
		{"too many bets", `{"game":"EuropeanRoulette","bets":[` + strings.Repeat(`{"playerId":"p","bet":"00","chipsIn":1},`, 3) + `{"playerId":"p","bet":"00","chipsIn":1}]}`, http.StatusBadRequest, "Too many bets"},
		{"unknown game", `{"game":"Poker","bets":[{"playerId":"p1","bet":"00","chipsIn":1}]}`, http.StatusBadRequest, "Unsupported game"},
		{"negative chips", `{"game":"EuropeanRoulette","bets":[{"playerId":"p1","bet":"00","chipsIn":-1}]}`, http.StatusBadRequest, ""},
		{"missing player", `{"game":"EuropeanRoulette","bets":[{"bet":"00","chipsIn":1}]}`, http.StatusBadRequest, ""},
		{"broken json", `{"game":`, http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPost, "/game/check", tt.body, "")
			assert.Equal(t, tt.status, rec.Code)
			if tt.text != "" {
				assert.Equal(t, tt.text, strings.TrimSpace(rec.Body.String()))
			}
		})
	}
}

func TestRouter_PlayRequiresAuthorization(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/game/new", validBody, "")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "No Authorization Header", strings.TrimSpace(rec.Body.String()))

	rec = do(t, h, http.MethodGet, "/game/0b4a9d0e-6b0a-4f37-9a57-1c0d7c1e8f00", "", "Token abc")
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Authorization Wrong Format", strings.TrimSpace(rec.Body.String()))
}

func TestRouter_PlayThenGet(t *testing.T) {
	h := newTestRouter(t)
	owner := bearer(t, "svc-a")

	rec := do(t, h, http.MethodPost, "/game/new", validBody, owner)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var played dto.PlayedGameResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &played))
	assert.Equal(t, "EuropeanRoulette", played.Game)
	assert.Equal(t, "svc-a", played.ServiceID)
	assert.NotZero(t, played.Occurred)
	require.Len(t, played.Bets, 1)
	assert.Contains(t, []uint64{0, 20}, played.Bets[0].ChipsOut)

	rec = do(t, h, http.MethodGet, "/game/"+played.UUID, "", owner)
	require.Equal(t, http.StatusOK, rec.Code)
	var fetched dto.PlayedGameResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, played, fetched)

	rec = do(t, h, http.MethodGet, "/game/"+played.UUID, "", bearer(t, "svc-b"))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodGet, "/game/5f1c3a5e-0000-4000-8000-000000000000", "", owner)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodGet, "/game/not-a-uuid", "", owner)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRouter_PlayRejectsInvalidRequest(t *testing.T) {
	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/game/new",
		`{"game":"EuropeanRoulette","bets":[{"playerId":"p1","bet":"00","chipsIn":0}]}`, bearer(t, "svc-a"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Chips in must be positive (bet 0)", strings.TrimSpace(rec.Body.String()))
}
