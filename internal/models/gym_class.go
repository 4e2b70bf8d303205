package models

import (
	"bytes"
	"encoding/json"
	"time"
)

// DateLayout is the calendar date format used for GymClass.Date.
const DateLayout = "2006-01-02"

// 수업 출석 기록
type GymClass struct {
	ID         string    `json:"id" example:"gym-class-2b1c7e0e-5f6a-4d38-9a0e-3f1f0b6f1a2d"`
	UserID     string    `json:"userId" example:"demo-user-123"`
	Date       string    `json:"date" example:"2024-03-01"`
	Attendance int       `json:"attendance" example:"5"`
	Notes      *string   `json:"notes" example:"leg day"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NewGymClass holds the validated fields of a class about to be created.
type NewGymClass struct {
	Date       string
	Attendance int
	Notes      *string
}

// GymClassPatch holds the fields of a partial update. Nil pointers are left
// untouched; Notes can be cleared explicitly through NullableString.
type GymClassPatch struct {
	Date       *string
	Attendance *int
	Notes      NullableString
}

// IsEmpty reports whether the patch changes nothing.
func (p GymClassPatch) IsEmpty() bool {
	return p.Date == nil && p.Attendance == nil && !p.Notes.Set
}

// Apply returns a copy of g with the patch fields merged over it.
func (p GymClassPatch) Apply(g GymClass) GymClass {
	if p.Date != nil {
		g.Date = *p.Date
	}
	if p.Attendance != nil {
		g.Attendance = *p.Attendance
	}
	if p.Notes.Set {
		g.Notes = p.Notes.Value
	}
	return g
}

// NullableString distinguishes an absent JSON field from an explicit null.
type NullableString struct {
	Set   bool
	Value *string
}

func (n *NullableString) UnmarshalJSON(data []byte) error {
	n.Set = true
	if bytes.Equal(data, []byte("null")) {
		n.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	n.Value = &s
	return nil
}

func (n NullableString) MarshalJSON() ([]byte, error) {
	if n.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.Value)
}
