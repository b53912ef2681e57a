package birthday

import (
	"context"
	"log"
	"net/http"

	"github.com/olexandrd/contacts-api/internal/domain"
	"github.com/olexandrd/contacts-api/internal/transport/web/logx"
	"github.com/olexandrd/contacts-api/internal/transport/web/mw"
	v1 "github.com/olexandrd/contacts-api/internal/transport/web/v1"
)

// Upcomer — то, что нужно хендлеру от сервиса дней рождения
type Upcomer interface {
	Upcoming(ctx context.Context, user domain.User, skip, limit, dayGap int) ([]domain.ContactView, error)
}

type Handler struct {
	Log     *log.Logger
	Service Upcomer
}

const (
	defaultSkip   = 0
	defaultLimit  = 100
	defaultDayGap = 7
)

// Nearest godoc
// @Summary     Upcoming birthdays
// @Description Контакты владельца, чьи дни рождения попадают в окно [сегодня, сегодня+daygap].
// @Tags        birthdays
// @Produce     json
// @Security    BearerAuth
// @Param       skip   query int false "offset (default 0)"
// @Param       limit  query int false "page size (default 100)"
// @Param       daygap query int false "days ahead (default 7)"
// @Success     200 {object} domain.APIEnvelope{data=[]domain.ContactView}
// @Failure     401 {object} domain.APIEnvelope
// @Failure     500 {object} domain.APIEnvelope
// @Router      /api/v1/birthdays/nearest [get]
func (h *Handler) Nearest(w http.ResponseWriter, r *http.Request) {
	const op = "birthdays.nearest"
	reqID := mw.RequestIDFromCtx(r.Context())

	me, ok := mw.UserFromCtx(r.Context())
	if !ok {
		v1.WriteDomainError(w, r, domain.ErrUnauth)
		return
	}

	skip := v1.IntQuery(r, "skip", defaultSkip)
	limit := v1.IntQuery(r, "limit", defaultLimit)
	dayGap := v1.IntQuery(r, "daygap", defaultDayGap)

	views, err := h.Service.Upcoming(r.Context(), me, skip, limit, dayGap)
	if err != nil {
		logx.Error(h.Log, reqID, op, "retrieval failed", err, "user_id", me.ID)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "user_id", me.ID, "count", len(views), "daygap", dayGap)
	v1.WriteOKData(w, r, views)
}
