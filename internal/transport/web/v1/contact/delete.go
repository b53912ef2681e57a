package contact

import (
	"net/http"

	"github.com/olexandrd/contacts-api/internal/domain"
	"github.com/olexandrd/contacts-api/internal/transport/web/logx"
	"github.com/olexandrd/contacts-api/internal/transport/web/mw"
	v1 "github.com/olexandrd/contacts-api/internal/transport/web/v1"
)

// Delete godoc
// @Summary     Delete contact
// @Tags        contacts
// @Produce     json
// @Security    BearerAuth
// @Param       id path int true "contact id"
// @Success     200 {object} domain.APIEnvelope{data=string}
// @Failure     401 {object} domain.APIEnvelope
// @Failure     404 {object} domain.APIEnvelope
// @Router      /api/v1/contacts/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	const op = "contacts.delete"
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

	if err := h.Contacts.DeleteContact(r.Context(), id, me.ID); err != nil {
		logx.Error(h.Log, reqID, op, "db delete failed", err, "contact_id", id)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "contact_id", id)
	v1.WriteOKData(w, r, "deleted")
}
