/**
* Name: 			storage.go
* Description: 		사용자 및 수업 기록 저장소 인터페이스
* Workflow: 		main에서 한 번 생성 후 핸들러에 주입
 */
package storage

import (
	"GymAttendanceTracker/internal/models"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrGymClassNotFound = errors.New("gym class not found")
)

// DefaultUserID is used when an upsert arrives without an id.
const DefaultUserID = "demo-user-123"

const gymClassIDPrefix = "gym-class-"

type Storage interface {
	GetUser(id string) (models.User, error)
	UpsertUser(input models.UpsertUser) (models.User, error)

	ListGymClasses(userID string) ([]models.GymClass, error)
	GetGymClass(id string) (models.GymClass, error)
	CreateGymClass(input models.NewGymClass, userID string) (models.GymClass, error)
	UpdateGymClass(id string, patch models.GymClassPatch) (models.GymClass, error)
	DeleteGymClass(id string) (bool, error)

	Close() error
}

// New opens the backend named by driver ("memory" or "sqlite").
func New(driver string) (Storage, error) {
	switch driver {
	case "", "memory":
		return NewMemoryStorage(), nil
	case "sqlite":
		s, err := NewSQLiteStorage()
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("storage.New(): unknown driver %q", driver)
	}
}

func newGymClassID() string {
	return gymClassIDPrefix + uuid.NewString()
}

// now() 대신 주입 가능한 시계
type clock func() time.Time

func (c clock) now() time.Time {
	if c == nil {
		return time.Now().UTC()
	}
	return c().UTC()
}
