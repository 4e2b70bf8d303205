/**
* Name: 			auth_handler.go
* Description: 		현재 사용자 조회 및 데모 로그인/로그아웃
* Workflow: 		식별자는 middleware.Identity가 주입, 세션 상태 없음
 */
package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CurrentUser godoc
// @Summary      현재 사용자 조회 (Current user)
// @Description  요청 식별자에 해당하는 사용자를 반환합니다. 없으면 데모 이름으로 생성합니다.
// @Tags         Auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} models.User
// @Failure      401 {object} handler.ErrorResponse "토큰 모드에서 인증 실패"
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/auth/user [get]
func (h *Handler) CurrentUser(c *gin.Context) {
	identity, err := h.identity(c)
	if err != nil {
		log.Printf("[ERROR] CurrentUser: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to fetch user"})
		return
	}

	user, err := h.ensureUser(identity)
	if err != nil {
		log.Printf("[ERROR] CurrentUser: failed to fetch user %s: %v", identity.Subject, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to fetch user"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// Login godoc
// @Summary      로그인 (Login)
// @Description  데모 빌드에서는 세션을 만들지 않고 루트로 이동합니다.
// @Tags         Auth
// @Success      302 "Redirect to /"
// @Router       /api/login [get]
func Login(c *gin.Context) {
	c.Redirect(http.StatusFound, "/")
}

// Logout godoc
// @Summary      로그아웃 (Logout)
// @Description  세션 상태 없이 루트로 이동합니다.
// @Tags         Auth
// @Success      302 "Redirect to /"
// @Router       /api/logout [get]
func Logout(c *gin.Context) {
	c.Redirect(http.StatusFound, "/")
}
