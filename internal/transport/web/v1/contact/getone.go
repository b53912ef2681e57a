package contact

import (
	"net/http"

	"github.com/olexandrd/contacts-api/internal/domain"
	"github.com/olexandrd/contacts-api/internal/transport/web/logx"
	"github.com/olexandrd/contacts-api/internal/transport/web/mw"
	v1 "github.com/olexandrd/contacts-api/internal/transport/web/v1"
)

// GetOne godoc
// @Summary     Get contact by id
// @Tags        contacts
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "contact id"
// @Success     200 {object} domain.APIEnvelope{data=domain.ContactView}
// @Failure     401 {object} domain.APIEnvelope
// @Failure     404 {object} domain.APIEnvelope
// @Router      /api/v1/contacts/{id} [get]
func (h *Handler) GetOne(w http.ResponseWriter, r *http.Request) {
	const op = "contacts.get_one"
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

	c, err := h.Contacts.ContactByID(r.Context(), id, me.ID)
	if err != nil {
		logx.Error(h.Log, reqID, op, "db get failed", err, "contact_id", id)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "contact_id", c.ID)
	v1.WriteOKData(w, r, c.View())
}
