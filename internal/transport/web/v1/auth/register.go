package auth

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/olexandrd/contacts-api/internal/domain"
	"github.com/olexandrd/contacts-api/internal/transport/web/logx"
	"github.com/olexandrd/contacts-api/internal/transport/web/mw"
	v1 "github.com/olexandrd/contacts-api/internal/transport/web/v1"
)

// HandlerRegister обрабатывает POST /api/v1/auth/register
type HandlerRegister struct {
	Log    *log.Logger
	Users  domain.UsersRepo
	Hasher domain.PasswordHasher
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Register godoc
// @Summary     Register new user
// @Description Регистрация нового пользователя. 409, если username или email уже заняты.
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body registerRequest true "username, email, password"
// @Success     201 {object} domain.APIEnvelope{response=registerResponse}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     409 {object} domain.APIEnvelope
// @Failure     500 {object} domain.APIEnvelope
// @Router      /api/v1/auth/register [post]
func (h *HandlerRegister) Register(w http.ResponseWriter, r *http.Request) {
	const op = "auth.register"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start", "method", r.Method, "path", r.URL.Path)

	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logx.Error(h.Log, reqID, op, "bad json", err)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	if !domain.ValidUsername(req.Username) || !domain.ValidEmail(req.Email) || !domain.ValidPassword(req.Password) {
		logx.Error(h.Log, reqID, op, "validation failed", domain.ErrBadParams, "username", req.Username)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}

	// дубликаты по email/username отдаём как конфликт
	if _, err := h.Users.UserByEmail(r.Context(), req.Email); err == nil {
		logx.Error(h.Log, reqID, op, "email taken", domain.ErrConflict, "email", req.Email)
		v1.WriteDomainError(w, r, domain.ErrConflict)
		return
	}
	if _, err := h.Users.UserByUsername(r.Context(), req.Username); err == nil {
		logx.Error(h.Log, reqID, op, "username taken", domain.ErrConflict, "username", req.Username)
		v1.WriteDomainError(w, r, domain.ErrConflict)
		return
	}

	hashStr, err := h.Hasher.Hash(req.Password)
	if err != nil {
		logx.Error(h.Log, reqID, op, "hash failed", err)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}

	u, err := h.Users.CreateUser(r.Context(), req.Username, req.Email, []byte(hashStr), "")
	if err != nil {
		// гонка с проверками выше: уникальный индекс мог сработать первым
		if errors.Is(err, domain.ErrConflict) {
			v1.WriteDomainError(w, r, domain.ErrConflict)
			return
		}
		logx.Error(h.Log, reqID, op, "create user failed", err, "username", req.Username)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "user_id", u.ID, "username", u.Username)
	v1.WriteEnvelope(w, r, http.StatusCreated, domain.OkResponse(registerResponse{
		ID:       u.ID.String(),
		Username: u.Username,
		Email:    u.Email,
	}))
}
