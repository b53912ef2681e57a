package auth

import (
	"log"
	"net/http"

	"github.com/olexandrd/contacts-api/internal/domain"
	"github.com/olexandrd/contacts-api/internal/transport/web/logx"
	"github.com/olexandrd/contacts-api/internal/transport/web/mw"
	v1 "github.com/olexandrd/contacts-api/internal/transport/web/v1"
)

type HandlerLogout struct {
	Log       *log.Logger
	Auth      mw.AuthDeps
	Blacklist domain.TokenBlacklist
}

type logoutResponse struct {
	Revoked string `json:"revoked"` // jti
}

// Logout godoc
// @Summary     Logout (revoke token)
// @Description Завершает сессию: помечает токен отозванным до истечения exp.
// @Tags        auth
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} domain.APIEnvelope{response=logoutResponse}
// @Failure     401 {object} domain.APIEnvelope
// @Failure     500 {object} domain.APIEnvelope
// @Router      /api/v1/auth/logout [delete]
func (h *HandlerLogout) Logout(w http.ResponseWriter, r *http.Request) {
	const op = "auth.logout"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start", "method", r.Method, "path", r.URL.Path)

	claims, err := mw.ClaimsFromRequest(h.Auth, r)
	if err != nil {
		logx.Error(h.Log, reqID, op, "parse token failed", err)
		v1.WriteDomainError(w, r, domain.ErrUnauth)
		return
	}

	// ревокация до exp
	if err := h.Blacklist.Revoke(r.Context(), claims.JTI, claims.ExpiresAt); err != nil {
		logx.Error(h.Log, reqID, op, "revoke failed", err, "jti", claims.JTI)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "jti", claims.JTI)
	v1.WriteOKResponse(w, r, logoutResponse{Revoked: claims.JTI})
}
