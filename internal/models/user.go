package models

import "time"

// 회원 사용자 모델. 선택 필드는 값이 없으면 JSON null로 직렬화된다.
type User struct {
	ID              string    `json:"id" example:"demo-user-123"`
	Email           *string   `json:"email" example:"demo@example.com"`
	FirstName       *string   `json:"firstName" example:"Demo"`
	LastName        *string   `json:"lastName" example:"User"`
	ProfileImageURL *string   `json:"profileImageUrl"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// UpsertUser는 저장소에 넘기는 사용자 입력값
type UpsertUser struct {
	ID              string
	Email           *string
	FirstName       *string
	LastName        *string
	ProfileImageURL *string
}

// StringPtr returns nil for an empty string so optional fields stay null.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
