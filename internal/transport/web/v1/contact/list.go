package contact

import (
	"net/http"

	"github.com/olexandrd/contacts-api/internal/domain"
	"github.com/olexandrd/contacts-api/internal/transport/web/logx"
	"github.com/olexandrd/contacts-api/internal/transport/web/mw"
	v1 "github.com/olexandrd/contacts-api/internal/transport/web/v1"
)

// List godoc
// @Summary     List contacts
// @Description Список контактов владельца с пагинацией и поиском по name/surname/email.
// @Tags        contacts
// @Produce     json
// @Security    BearerAuth
// @Param       skip  query int    false "offset (default 0)"
// @Param       limit query int    false "page size (default 100)"
// @Param       queue query string false "substring search"
// @Success     200 {object} domain.APIEnvelope{data=[]domain.ContactView}
// @Failure     401 {object} domain.APIEnvelope
// @Failure     500 {object} domain.APIEnvelope
// @Router      /api/v1/contacts [get]
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	const op = "contacts.list"
	reqID := mw.RequestIDFromCtx(r.Context())

	me, ok := mw.UserFromCtx(r.Context())
	if !ok {
		v1.WriteDomainError(w, r, domain.ErrUnauth)
		return
	}

	f := domain.ContactFilter{
		Search: r.URL.Query().Get("queue"),
		Skip:   v1.IntQuery(r, "skip", 0),
		Limit:  v1.IntQuery(r, "limit", 100),
	}

	contacts, err := h.Contacts.ContactsList(r.Context(), me.ID, f)
	if err != nil {
		logx.Error(h.Log, reqID, op, "db list failed", err, "user_id", me.ID)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}

	views := make([]domain.ContactView, 0, len(contacts))
	for _, c := range contacts {
		views = append(views, c.View())
	}

	logx.Info(h.Log, reqID, op, "ok", "user_id", me.ID, "count", len(views))
	v1.WriteOKData(w, r, views)
}
