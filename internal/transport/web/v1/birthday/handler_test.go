package birthday

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olexandrd/contacts-api/internal/domain"
	"github.com/olexandrd/contacts-api/internal/transport/web/mw"
)

type fakeUpcomer struct {
	views []domain.ContactView
	err   error

	lastUser                     domain.User
	lastSkip, lastLimit, lastGap int
}

func (f *fakeUpcomer) Upcoming(_ context.Context, user domain.User, skip, limit, dayGap int) ([]domain.ContactView, error) {
	f.lastUser, f.lastSkip, f.lastLimit, f.lastGap = user, skip, limit, dayGap
	return f.views, f.err
}

type fakeTokens struct{ claims domain.TokenClaims }

func (f *fakeTokens) Issue(context.Context, domain.UserID, string) (domain.Token, domain.TokenClaims, error) {
	return "", domain.TokenClaims{}, errors.New("not implemented")
}
func (f *fakeTokens) Parse(context.Context, domain.Token) (domain.TokenClaims, error) {
	return f.claims, nil
}

type noBlacklist struct{}

func (noBlacklist) Revoke(context.Context, string, time.Time) error { return nil }
func (noBlacklist) IsRevoked(context.Context, string) (bool, error) { return false, nil }

func serve(t *testing.T, svc *fakeUpcomer, target string, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	h := &Handler{Log: log.New(io.Discard, "", 0), Service: svc}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)

	if !authed {
		h.Nearest(rec, req)
		return rec
	}

	deps := mw.AuthDeps{
		Tokens:    &fakeTokens{claims: domain.TokenClaims{JTI: "j", UserID: uuid.New(), Username: "egor"}},
		Blacklist: noBlacklist{},
	}
	req.Header.Set("Authorization", "Bearer token")
	mw.RequireAuth(deps, http.HandlerFunc(h.Nearest)).ServeHTTP(rec, req)
	return rec
}

func TestNearestDefaults(t *testing.T) {
	svc := &fakeUpcomer{views: []domain.ContactView{{ID: 1, Name: "Ivan", Birthday: "1990-12-30"}}}

	rec := serve(t, svc, "/api/v1/birthdays/nearest", true)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, svc.lastSkip)
	assert.Equal(t, 100, svc.lastLimit)
	assert.Equal(t, 7, svc.lastGap)
	assert.Equal(t, "egor", svc.lastUser.Username)

	var env domain.APIEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Nil(t, env.Error)
	assert.NotNil(t, env.Data)
}

func TestNearestQueryParams(t *testing.T) {
	svc := &fakeUpcomer{}
	rec := serve(t, svc, "/api/v1/birthdays/nearest?skip=10&limit=25&daygap=30", true)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 10, svc.lastSkip)
	assert.Equal(t, 25, svc.lastLimit)
	assert.Equal(t, 30, svc.lastGap)
}

func TestNearestWithoutUser(t *testing.T) {
	rec := serve(t, &fakeUpcomer{}, "/api/v1/birthdays/nearest", false)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNearestServiceError(t *testing.T) {
	svc := &fakeUpcomer{err: errors.New("pg down")}
	rec := serve(t, svc, "/api/v1/birthdays/nearest", true)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var env domain.APIEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.NotNil(t, env.Error)
	assert.Equal(t, domain.ErrCodeUnexpected, env.Error.Code)
}
