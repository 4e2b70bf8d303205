package handler

import (
	"GymAttendanceTracker/internal/stats"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetStats godoc
// @Summary      출석 통계 (Attendance stats)
// @Description  전체/이번 주/월별 수업 수와 평균 출석 인원을 계산합니다.
// @Tags         GymClasses
// @Produce      json
// @Param        month query    string false "조회할 월 (YYYY-MM), 기본값은 이번 달"
// @Success      200   {object} stats.Summary
// @Failure      400   {object} handler.ErrorResponse
// @Failure      500   {object} handler.ErrorResponse
// @Router       /api/stats [get]
func (h *Handler) GetStats(c *gin.Context) {
	now := h.now().UTC()
	month, err := stats.ParseMonth(c.Query("month"), now)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid data",
			Errors:  []FieldError{{Field: "month", Message: err.Error()}},
		})
		return
	}

	identity, err := h.identity(c)
	if err != nil {
		log.Printf("[ERROR] GetStats: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to compute stats"})
		return
	}
	classes, err := h.store.ListGymClasses(identity.Subject)
	if err != nil {
		log.Printf("[ERROR] GetStats: store failed: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to compute stats"})
		return
	}
	c.JSON(http.StatusOK, stats.Summarize(classes, month, now))
}
