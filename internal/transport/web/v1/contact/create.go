package contact

import (
	"net/http"

	"github.com/olexandrd/contacts-api/internal/domain"
	"github.com/olexandrd/contacts-api/internal/transport/web/logx"
	"github.com/olexandrd/contacts-api/internal/transport/web/mw"
	v1 "github.com/olexandrd/contacts-api/internal/transport/web/v1"
)

// Create godoc
// @Summary     Create contact
// @Tags        contacts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body contactRequest true "contact"
// @Success     201 {object} domain.APIEnvelope{data=domain.ContactView}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     401 {object} domain.APIEnvelope
// @Failure     500 {object} domain.APIEnvelope
// @Router      /api/v1/contacts [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	const op = "contacts.create"
	reqID := mw.RequestIDFromCtx(r.Context())

	me, ok := mw.UserFromCtx(r.Context())
	if !ok {
		v1.WriteDomainError(w, r, domain.ErrUnauth)
		return
	}

	c, err := decodeContact(r, me.ID)
	if err != nil {
		logx.Error(h.Log, reqID, op, "bad body", err)
		v1.WriteDomainError(w, r, err)
		return
	}

	out, err := h.Contacts.CreateContact(r.Context(), c)
	if err != nil {
		logx.Error(h.Log, reqID, op, "db create failed", err, "user_id", me.ID)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "contact_id", out.ID)
	v1.WriteCreated(w, r, out.View())
}
