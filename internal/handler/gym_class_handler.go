/**
* Name: 			gym_class_handler.go
* Description: 		수업 출석 기록 CRUD 핸들러
* Workflow: 		요청 검증 → 저장소 호출 → 이벤트 발행 → 응답
 */
package handler

import (
	"GymAttendanceTracker/internal/events"
	"GymAttendanceTracker/internal/models"
	"GymAttendanceTracker/internal/storage"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// 수업 기록 생성 요청 바디
type CreateGymClassRequest struct {
	Date       string                `json:"date" binding:"required,datetime=2006-01-02" example:"2024-03-01"`
	Attendance *int                  `json:"attendance" binding:"required,min=0" example:"5"`
	Notes      models.NullableString `json:"notes" swaggertype:"string" example:"leg day"`
}

// 수업 기록 수정 요청 바디, 모든 필드 선택
type UpdateGymClassRequest struct {
	Date       *string               `json:"date" binding:"omitnil,datetime=2006-01-02" example:"2024-03-02"`
	Attendance *int                  `json:"attendance" binding:"omitnil,min=0" example:"8"`
	Notes      models.NullableString `json:"notes" swaggertype:"string" example:"push day"`
}

// ListGymClasses godoc
// @Summary      수업 기록 목록 (List gym classes)
// @Description  현재 사용자의 수업 기록을 날짜 최신순으로 반환합니다.
// @Tags         GymClasses
// @Produce      json
// @Success      200 {array}  models.GymClass
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/gym-classes [get]
func (h *Handler) ListGymClasses(c *gin.Context) {
	identity, err := h.identity(c)
	if err != nil {
		log.Printf("[ERROR] ListGymClasses: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to fetch gym classes"})
		return
	}

	classes, err := h.store.ListGymClasses(identity.Subject)
	if err != nil {
		log.Printf("[ERROR] ListGymClasses: store failed: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to fetch gym classes"})
		return
	}
	c.JSON(http.StatusOK, classes)
}

// GetGymClass godoc
// @Summary      수업 기록 조회 (Get gym class)
// @Tags         GymClasses
// @Produce      json
// @Param        id  path      string  true  "수업 기록 ID"
// @Success      200 {object}  models.GymClass
// @Failure      404 {object}  handler.ErrorResponse
// @Failure      500 {object}  handler.ErrorResponse
// @Router       /api/gym-classes/{id} [get]
func (h *Handler) GetGymClass(c *gin.Context) {
	gymClass, err := h.store.GetGymClass(c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrGymClassNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Message: "Gym class not found"})
			return
		}
		log.Printf("[ERROR] GetGymClass: store failed: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to fetch gym class"})
		return
	}
	c.JSON(http.StatusOK, gymClass)
}

// CreateGymClass godoc
// @Summary      수업 기록 생성 (Create gym class)
// @Description  날짜, 출석 인원, 메모로 새 수업 기록을 만듭니다. 사용자가 없으면 먼저 생성합니다.
// @Tags         GymClasses
// @Accept       json
// @Produce      json
// @Param        request body handler.CreateGymClassRequest true "수업 기록 정보"
// @Success      201 {object} models.GymClass
// @Failure      400 {object} handler.ErrorResponse "검증 실패"
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/gym-classes [post]
func (h *Handler) CreateGymClass(c *gin.Context) {
	rawData, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Failed to read request body"})
		return
	}

	var req CreateGymClassRequest
	invalid, err := decodeAndValidate(rawData, &req)
	if err != nil {
		log.Printf("[ERROR] CreateGymClass: decode failed: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to create gym class"})
		return
	}
	if invalid != nil {
		c.JSON(http.StatusBadRequest, invalid)
		return
	}

	identity, err := h.identity(c)
	if err != nil {
		log.Printf("[ERROR] CreateGymClass: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to create gym class"})
		return
	}
	// 기록 저장 전에 사용자 존재 보장
	if _, err := h.ensureUser(identity); err != nil {
		log.Printf("[ERROR] CreateGymClass: failed to ensure user %s: %v", identity.Subject, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to create gym class"})
		return
	}

	gymClass, err := h.store.CreateGymClass(models.NewGymClass{
		Date:       req.Date,
		Attendance: *req.Attendance,
		Notes:      req.Notes.Value,
	}, identity.Subject)
	if err != nil {
		log.Printf("[ERROR] CreateGymClass: store failed: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to create gym class"})
		return
	}

	log.Printf("CreateGymClass(): created %s for %s", gymClass.ID, identity.Subject)
	h.publish(identity.Subject, events.Event{Type: events.GymClassCreated, ID: gymClass.ID, Record: &gymClass})
	c.JSON(http.StatusCreated, gymClass)
}

// UpdateGymClass godoc
// @Summary      수업 기록 수정 (Update gym class)
// @Description  전달된 필드만 덮어씁니다. notes에 null을 보내면 메모를 지웁니다.
// @Tags         GymClasses
// @Accept       json
// @Produce      json
// @Param        id      path string                        true "수업 기록 ID"
// @Param        request body handler.UpdateGymClassRequest true "수정할 필드"
// @Success      200 {object} models.GymClass
// @Failure      400 {object} handler.ErrorResponse "검증 실패"
// @Failure      404 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/gym-classes/{id} [patch]
func (h *Handler) UpdateGymClass(c *gin.Context) {
	rawData, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Failed to read request body"})
		return
	}

	var req UpdateGymClassRequest
	invalid, err := decodeAndValidate(rawData, &req)
	if err != nil {
		log.Printf("[ERROR] UpdateGymClass: decode failed: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to update gym class"})
		return
	}
	if invalid != nil {
		c.JSON(http.StatusBadRequest, invalid)
		return
	}

	gymClass, err := h.store.UpdateGymClass(c.Param("id"), models.GymClassPatch{
		Date:       req.Date,
		Attendance: req.Attendance,
		Notes:      req.Notes,
	})
	if err != nil {
		if errors.Is(err, storage.ErrGymClassNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Message: "Gym class not found"})
			return
		}
		log.Printf("[ERROR] UpdateGymClass: store failed: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to update gym class"})
		return
	}

	h.publish(gymClass.UserID, events.Event{Type: events.GymClassUpdated, ID: gymClass.ID, Record: &gymClass})
	c.JSON(http.StatusOK, gymClass)
}

// DeleteGymClass godoc
// @Summary      수업 기록 삭제 (Delete gym class)
// @Tags         GymClasses
// @Param        id  path  string  true  "수업 기록 ID"
// @Success      204 "No Content"
// @Failure      404 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/gym-classes/{id} [delete]
func (h *Handler) DeleteGymClass(c *gin.Context) {
	id := c.Param("id")

	// 이벤트 수신 대상을 알기 위해 삭제 전에 소유자 조회
	existing, err := h.store.GetGymClass(id)
	if err != nil && !errors.Is(err, storage.ErrGymClassNotFound) {
		log.Printf("[ERROR] DeleteGymClass: store failed: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to delete gym class"})
		return
	}

	deleted, err := h.store.DeleteGymClass(id)
	if err != nil {
		log.Printf("[ERROR] DeleteGymClass: store failed: %v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Failed to delete gym class"})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, ErrorResponse{Message: "Gym class not found"})
		return
	}

	h.publish(existing.UserID, events.Event{Type: events.GymClassDeleted, ID: id})
	c.Status(http.StatusNoContent)
}
