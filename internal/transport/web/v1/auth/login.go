package auth

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/olexandrd/contacts-api/internal/domain"
	"github.com/olexandrd/contacts-api/internal/transport/web/logx"
	"github.com/olexandrd/contacts-api/internal/transport/web/mw"
	v1 "github.com/olexandrd/contacts-api/internal/transport/web/v1"
)

type HandlerLogin struct {
	Log    *log.Logger
	Users  domain.UsersRepo
	Hasher domain.PasswordHasher
	Tokens domain.TokenManager
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string `json:"access_token"`
	TokenType string `json:"token_type"`
}

// Login godoc
// @Summary     Authenticate user
// @Description Возвращает JWT при валидных username и password.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body loginRequest true "username, password"
// @Success     200 {object} domain.APIEnvelope{response=loginResponse}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     401 {object} domain.APIEnvelope
// @Failure     500 {object} domain.APIEnvelope
// @Router      /api/v1/auth/login [post]
func (h *HandlerLogin) Login(w http.ResponseWriter, r *http.Request) {
	const op = "auth.login"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start", "method", r.Method, "path", r.URL.Path)

	var req loginRequest
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logx.Error(h.Log, reqID, op, "bad json", err)
			v1.WriteDomainError(w, r, domain.ErrBadParams)
			return
		}
	} else {
		// поддержка формы в духе OAuth2 password flow
		_ = r.ParseForm()
		req.Username = r.FormValue("username")
		req.Password = r.FormValue("password")
	}

	if req.Username == "" || req.Password == "" {
		logx.Error(h.Log, reqID, op, "empty username or password", domain.ErrBadParams)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	u, err := h.Users.UserByUsername(r.Context(), req.Username)
	if err != nil {
		logx.Error(h.Log, reqID, op, "user not found", err, "username", req.Username)
		v1.WriteDomainError(w, r, domain.ErrUnauth)
		return
	}

	ok, err := h.Hasher.Verify(req.Password, string(u.PassHash))
	if err != nil || !ok {
		logx.Error(h.Log, reqID, op, "password verify failed", err, "username", req.Username)
		v1.WriteDomainError(w, r, domain.ErrUnauth)
		return
	}

	token, _, err := h.Tokens.Issue(r.Context(), u.ID, u.Username)
	if err != nil {
		logx.Error(h.Log, reqID, op, "issue token failed", err, "user_id", u.ID)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "user_id", u.ID, "username", u.Username)
	v1.WriteOKResponse(w, r, loginResponse{Token: token, TokenType: "bearer"})
}
