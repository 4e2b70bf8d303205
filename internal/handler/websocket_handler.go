package handler

import (
	"GymAttendanceTracker/internal/events"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const pingInterval = 25 * time.Second

// Upgrade HTTP connection to WebSocket
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// StreamEvents godoc
// @Summary      수업 기록 변경 스트림 (Gym class events)
// @Description  WebSocket으로 현재 사용자의 수업 기록 생성/수정/삭제 이벤트를 전달합니다.
// @Description  <br>
// @Description  **참고: 이것은 표준 HTTP API가 아닙니다.** `ws://` 또는 `wss://` 스킴으로 연결하세요.
// @Description  토큰 모드에서는 쿼리 파라미터 `token`으로 인증할 수 있습니다.
// @Tags         WebSocket
// @Param        token query    string false "JWT 토큰 (토큰 모드, 헤더 사용 불가 시)"
// @Success      101   {string} string "101 Switching Protocols"
// @Failure      401   {object} handler.ErrorResponse
// @Router       /api/events [get]
func (h *Handler) StreamEvents(c *gin.Context) {
	identity, err := h.identity(c)
	if err != nil {
		log.Printf("[ERROR] StreamEvents: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to open event stream"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("StreamEvents(): Failed to upgrade to WebSocket for %s: %v", identity.Subject, err)
		return
	}
	subscriber := &events.Subscriber{UserID: identity.Subject, Conn: conn}
	h.hub.Register(subscriber)
	log.Printf("StreamEvents(): WebSocket connection established for user: %s", identity.Subject)

	done := make(chan struct{})
	defer close(done)

	// 프록시 유휴 종료 방지용 ping
	go func() {
		ticker := time.NewTicker(pingInterval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				if err := h.hub.Ping(subscriber); err != nil {
					h.hub.Unregister(subscriber)
					return
				}
			}
		}
	}()

	// 클라이언트 종료 또는 에러 시 읽기 루프 종료
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	h.hub.Unregister(subscriber)
	log.Printf("StreamEvents(): WebSocket connection closed for user: %s", identity.Subject)
}
