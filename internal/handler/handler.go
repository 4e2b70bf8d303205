/**
* Name: 			handler.go
* Description: 		Gin 프레임워크의 HTTP 핸들러 공통 의존성
* Workflow: 		저장소, 이벤트 허브를 주입받아 라우트별 핸들러 제공
 */
package handler

import (
	"GymAttendanceTracker/internal/auth"
	"GymAttendanceTracker/internal/events"
	"GymAttendanceTracker/internal/middleware"
	"GymAttendanceTracker/internal/models"
	"GymAttendanceTracker/internal/storage"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store storage.Storage
	hub   *events.Hub
	now   func() time.Time
}

func New(store storage.Storage, hub *events.Hub) *Handler {
	return &Handler{store: store, hub: hub, now: time.Now}
}

// WithClock replaces the time source used for stats.
func (h *Handler) WithClock(now func() time.Time) *Handler {
	h.now = now
	return h
}

func (h *Handler) identity(c *gin.Context) (auth.Identity, error) {
	identity, ok := middleware.CurrentIdentity(c)
	if !ok {
		return auth.Identity{}, errors.New("identity missing from request context")
	}
	return identity, nil
}

// ensureUser는 사용자가 없으면 데모 이름으로 생성
func (h *Handler) ensureUser(identity auth.Identity) (models.User, error) {
	user, err := h.store.GetUser(identity.Subject)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, storage.ErrUserNotFound) {
		return models.User{}, err
	}
	return h.store.UpsertUser(models.UpsertUser{
		ID:        identity.Subject,
		Email:     models.StringPtr(identity.Email),
		FirstName: models.StringPtr("Demo"),
		LastName:  models.StringPtr("User"),
	})
}

func (h *Handler) publish(userID string, event events.Event) {
	if h.hub != nil {
		h.hub.Publish(userID, event)
	}
}
