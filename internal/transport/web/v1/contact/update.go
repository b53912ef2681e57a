package contact

import (
	"net/http"

	"github.com/olexandrd/contacts-api/internal/domain"
	"github.com/olexandrd/contacts-api/internal/transport/web/logx"
	"github.com/olexandrd/contacts-api/internal/transport/web/mw"
	v1 "github.com/olexandrd/contacts-api/internal/transport/web/v1"
)

// Update godoc
// @Summary     Update contact
// @Tags        contacts
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int            true "contact id"
// @Param       request body contactRequest true "contact"
// @Success     200 {object} domain.APIEnvelope{data=domain.ContactView}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     401 {object} domain.APIEnvelope
// @Failure     404 {object} domain.APIEnvelope
// @Router      /api/v1/contacts/{id} [put]
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	const op = "contacts.update"
	reqID := mw.RequestIDFromCtx(r.Context())

	me, ok := mw.UserFromCtx(r.Context())
	if !ok {
		v1.WriteDomainError(w, r, domain.ErrUnauth)
		return
	}

	id, err := contactIDFromPath(r)
	if err != nil {
		v1.WriteDomainError(w, r, err)
		return
	}

	c, err := decodeContact(r, me.ID)
	if err != nil {
		logx.Error(h.Log, reqID, op, "bad body", err, "contact_id", id)
		v1.WriteDomainError(w, r, err)
		return
	}
	c.ID = id

	out, err := h.Contacts.UpdateContact(r.Context(), c)
	if err != nil {
		logx.Error(h.Log, reqID, op, "db update failed", err, "contact_id", id)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "contact_id", out.ID)
	v1.WriteOKData(w, r, out.View())
}
