package auth

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olexandrd/contacts-api/internal/domain"
	"github.com/olexandrd/contacts-api/internal/transport/web/mw"
)

// fakeUsers — in-memory замена UsersRepo для хендлеров
type fakeUsers struct {
	byUsername map[string]domain.User
	createErr  error
	created    int
}

func newFakeUsers(users ...domain.User) *fakeUsers {
	f := &fakeUsers{byUsername: map[string]domain.User{}}
	for _, u := range users {
		f.byUsername[u.Username] = u
	}
	return f
}

func (f *fakeUsers) Close()                     {}
func (f *fakeUsers) Ping(context.Context) error { return nil }

func (f *fakeUsers) UserByUsername(_ context.Context, name string) (domain.User, error) {
	if u, ok := f.byUsername[name]; ok {
		return u, nil
	}
	return domain.User{}, domain.ErrNotFound
}

func (f *fakeUsers) UserByEmail(_ context.Context, email string) (domain.User, error) {
	for _, u := range f.byUsername {
		if u.Email == email {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}

func (f *fakeUsers) UserByID(_ context.Context, id domain.UserID) (domain.User, error) {
	for _, u := range f.byUsername {
		if u.ID == id {
			return u, nil
		}
	}
	return domain.User{}, domain.ErrNotFound
}

func (f *fakeUsers) CreateUser(_ context.Context, username, email string, passHash []byte, avatar string) (domain.User, error) {
	if f.createErr != nil {
		return domain.User{}, f.createErr
	}
	u := domain.User{ID: uuid.New(), Username: username, Email: email, PassHash: passHash, Avatar: avatar}
	f.byUsername[username] = u
	f.created++
	return u, nil
}

func (f *fakeUsers) SetAvatar(context.Context, domain.UserID, string) error { return nil }

var _ domain.UsersRepo = (*fakeUsers)(nil)

type fakeHasher struct{}

func (fakeHasher) Hash(plain string) (string, error) { return "h:" + plain, nil }
func (fakeHasher) Verify(plain, encoded string) (bool, error) {
	return encoded == "h:"+plain, nil
}

type fakeTokens struct {
	claims domain.TokenClaims
	err    error
}

func (f *fakeTokens) Issue(_ context.Context, uid domain.UserID, username string) (domain.Token, domain.TokenClaims, error) {
	if f.err != nil {
		return "", domain.TokenClaims{}, f.err
	}
	return "issued.jwt.token", domain.TokenClaims{JTI: "jti-1", UserID: uid, Username: username}, nil
}
func (f *fakeTokens) Parse(context.Context, domain.Token) (domain.TokenClaims, error) {
	return f.claims, f.err
}

type fakeBlacklist struct {
	revoked map[string]bool
	err     error
}

func (f *fakeBlacklist) Revoke(_ context.Context, jti string, _ time.Time) error {
	if f.err != nil {
		return f.err
	}
	f.revoked[jti] = true
	return nil
}
func (f *fakeBlacklist) IsRevoked(_ context.Context, jti string) (bool, error) {
	return f.revoked[jti], nil
}

func discard() *log.Logger { return log.New(io.Discard, "", 0) }

func postJSON(t *testing.T, h http.HandlerFunc, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	buf, err := json.Marshal(body)
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(string(buf)))
	req.Header.Set("Content-Type", "application/json")
	h(rec, req)
	return rec
}

func decodeEnv(t *testing.T, rec *httptest.ResponseRecorder) domain.APIEnvelope {
	t.Helper()
	var env domain.APIEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestRegister(t *testing.T) {
	valid := registerRequest{Username: "egor_77", Email: "egor@example.com", Password: "Sup3rSecret"}

	t.Run("creates user", func(t *testing.T) {
		users := newFakeUsers()
		h := &HandlerRegister{Log: discard(), Users: users, Hasher: fakeHasher{}}

		rec := postJSON(t, h.Register, "/api/v1/auth/register", valid)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, 1, users.created)
		env := decodeEnv(t, rec)
		require.Nil(t, env.Error)
		resp := env.Response.(map[string]any)
		assert.Equal(t, "egor_77", resp["username"])
		assert.NotEmpty(t, resp["id"])
	})

	t.Run("invalid payloads are 400", func(t *testing.T) {
		users := newFakeUsers()
		h := &HandlerRegister{Log: discard(), Users: users, Hasher: fakeHasher{}}

		bad := []registerRequest{
			{Username: "x", Email: valid.Email, Password: valid.Password},
			{Username: valid.Username, Email: "nope", Password: valid.Password},
			{Username: valid.Username, Email: valid.Email, Password: "weak"},
		}
		for _, req := range bad {
			rec := postJSON(t, h.Register, "/api/v1/auth/register", req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		}
		assert.Zero(t, users.created)
	})

	t.Run("duplicate username is 409", func(t *testing.T) {
		users := newFakeUsers(domain.User{ID: uuid.New(), Username: "egor_77", Email: "other@example.com"})
		h := &HandlerRegister{Log: discard(), Users: users, Hasher: fakeHasher{}}

		rec := postJSON(t, h.Register, "/api/v1/auth/register", valid)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("duplicate email is 409", func(t *testing.T) {
		users := newFakeUsers(domain.User{ID: uuid.New(), Username: "someone", Email: "egor@example.com"})
		h := &HandlerRegister{Log: discard(), Users: users, Hasher: fakeHasher{}}

		rec := postJSON(t, h.Register, "/api/v1/auth/register", valid)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("unique index race maps to 409", func(t *testing.T) {
		users := newFakeUsers()
		users.createErr = domain.ErrConflict
		h := &HandlerRegister{Log: discard(), Users: users, Hasher: fakeHasher{}}

		rec := postJSON(t, h.Register, "/api/v1/auth/register", valid)
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestLogin(t *testing.T) {
	uid := uuid.New()
	users := newFakeUsers(domain.User{ID: uid, Username: "egor_77", Email: "egor@example.com", PassHash: []byte("h:Sup3rSecret")})

	t.Run("json body", func(t *testing.T) {
		h := &HandlerLogin{Log: discard(), Users: users, Hasher: fakeHasher{}, Tokens: &fakeTokens{}}

		rec := postJSON(t, h.Login, "/api/v1/auth/login", loginRequest{Username: "egor_77", Password: "Sup3rSecret"})

		assert.Equal(t, http.StatusOK, rec.Code)
		env := decodeEnv(t, rec)
		require.Nil(t, env.Error)
		resp := env.Response.(map[string]any)
		assert.Equal(t, "issued.jwt.token", resp["access_token"])
		assert.Equal(t, "bearer", resp["token_type"])
	})

	t.Run("form body", func(t *testing.T) {
		h := &HandlerLogin{Log: discard(), Users: users, Hasher: fakeHasher{}, Tokens: &fakeTokens{}}

		form := url.Values{"username": {"egor_77"}, "password": {"Sup3rSecret"}}
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		h.Login(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("wrong password", func(t *testing.T) {
		h := &HandlerLogin{Log: discard(), Users: users, Hasher: fakeHasher{}, Tokens: &fakeTokens{}}

		rec := postJSON(t, h.Login, "/api/v1/auth/login", loginRequest{Username: "egor_77", Password: "wrong"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		h := &HandlerLogin{Log: discard(), Users: users, Hasher: fakeHasher{}, Tokens: &fakeTokens{}}

		rec := postJSON(t, h.Login, "/api/v1/auth/login", loginRequest{Username: "ghost", Password: "Sup3rSecret"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("empty credentials", func(t *testing.T) {
		h := &HandlerLogin{Log: discard(), Users: users, Hasher: fakeHasher{}, Tokens: &fakeTokens{}}

		rec := postJSON(t, h.Login, "/api/v1/auth/login", loginRequest{})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLogout(t *testing.T) {
	claims := domain.TokenClaims{JTI: "jti-1", UserID: uuid.New(), Username: "egor_77", ExpiresAt: time.Now().Add(time.Hour)}

	t.Run("revokes jti", func(t *testing.T) {
		bl := &fakeBlacklist{revoked: map[string]bool{}}
		h := &HandlerLogout{
			Log:       discard(),
			Auth:      mw.AuthDeps{Tokens: &fakeTokens{claims: claims}},
			Blacklist: bl,
		}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/auth/logout", nil)
		req.Header.Set("Authorization", "Bearer some.jwt.token")
		h.Logout(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, bl.revoked["jti-1"])
		env := decodeEnv(t, rec)
		require.Nil(t, env.Error)
		resp := env.Response.(map[string]any)
		assert.Equal(t, "jti-1", resp["revoked"])
	})

	t.Run("no token", func(t *testing.T) {
		h := &HandlerLogout{
			Log:       discard(),
			Auth:      mw.AuthDeps{Tokens: &fakeTokens{err: errors.New("no token")}},
			Blacklist: &fakeBlacklist{revoked: map[string]bool{}},
		}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/auth/logout", nil)
		h.Logout(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("blacklist failure is 500", func(t *testing.T) {
		h := &HandlerLogout{
			Log:       discard(),
			Auth:      mw.AuthDeps{Tokens: &fakeTokens{claims: claims}},
			Blacklist: &fakeBlacklist{revoked: map[string]bool{}, err: errors.New("redis down")},
		}

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/auth/logout", nil)
		req.Header.Set("Authorization", "Bearer some.jwt.token")
		h.Logout(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}
