package user

import (
	"context"
	"io"
	"log"
	"net/http"

	"github.com/olexandrd/contacts-api/internal/domain"
	"github.com/olexandrd/contacts-api/internal/transport/web/logx"
	"github.com/olexandrd/contacts-api/internal/transport/web/mw"
	v1 "github.com/olexandrd/contacts-api/internal/transport/web/v1"
)

// AvatarStorage — то, что нужно хендлеру от S3
type AvatarStorage interface {
	PutAvatar(ctx context.Context, userID domain.UserID, r io.Reader, size int64, mime string) (string, error)
}

type Handler struct {
	Log     *log.Logger
	Users   domain.UsersRepo
	Storage AvatarStorage
}

// Me godoc
// @Summary     Current user
// @Description Возвращает профиль аутентифицированного пользователя.
// @Tags        users
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} domain.APIEnvelope{data=domain.User}
// @Failure     401 {object} domain.APIEnvelope
// @Router      /api/v1/users/me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	const op = "users.me"
	reqID := mw.RequestIDFromCtx(r.Context())

	me, ok := mw.UserFromCtx(r.Context())
	if !ok {
		v1.WriteDomainError(w, r, domain.ErrUnauth)
		return
	}

	// в контексте только id/username из токена — профиль добираем из БД
	u, err := h.Users.UserByID(r.Context(), me.ID)
	if err != nil {
		logx.Error(h.Log, reqID, op, "load user failed", err, "user_id", me.ID)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "user_id", u.ID)
	v1.WriteOKData(w, r, u)
}

// UpdateAvatar godoc
// @Summary     Upload avatar
// @Description multipart-загрузка аватара; файл уходит в S3, URL сохраняется у пользователя.
// @Tags        users
// @Accept      multipart/form-data
// @Produce     json
// @Security    BearerAuth
// @Param       file formData file true "image"
// @Success     200 {object} domain.APIEnvelope{data=object}
// @Failure     400 {object} domain.APIEnvelope
// @Failure     401 {object} domain.APIEnvelope
// @Failure     500 {object} domain.APIEnvelope
// @Router      /api/v1/users/avatar [patch]
func (h *Handler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	const op = "users.update_avatar"
	reqID := mw.RequestIDFromCtx(r.Context())
	logx.Info(h.Log, reqID, op, "start", "method", r.Method, "path", r.URL.Path)

	me, ok := mw.UserFromCtx(r.Context())
	if !ok {
		v1.WriteDomainError(w, r, domain.ErrUnauth)
		return
	}

	if err := r.ParseMultipartForm(8 << 20); err != nil {
		logx.Error(h.Log, reqID, op, "parse form failed", err)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}
	fh, hdr, err := r.FormFile("file")
	if err != nil {
		logx.Error(h.Log, reqID, op, "missing file", err)
		v1.WriteDomainError(w, r, domain.ErrBadParams)
		return
	}
	defer fh.Close()

	mime := hdr.Header.Get("Content-Type")
	if mime == "" {
		mime = "application/octet-stream"
	}

	url, err := h.Storage.PutAvatar(r.Context(), me.ID, fh, hdr.Size, mime)
	if err != nil {
		logx.Error(h.Log, reqID, op, "storage put failed", err, "user_id", me.ID)
		v1.WriteDomainError(w, r, domain.ErrUnexpected)
		return
	}

	if err := h.Users.SetAvatar(r.Context(), me.ID, url); err != nil {
		logx.Error(h.Log, reqID, op, "set avatar failed", err, "user_id", me.ID)
		v1.WriteDomainError(w, r, err)
		return
	}

	logx.Info(h.Log, reqID, op, "ok", "user_id", me.ID)
	v1.WriteOKData(w, r, map[string]string{"avatar": url})
}
