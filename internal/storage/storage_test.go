package storage

import (
	"GymAttendanceTracker/internal/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type backend struct {
	name string
	open func(t *testing.T, now func() time.Time) Storage
}

func backends() []backend {
	return []backend{
		{"memory", func(t *testing.T, now func() time.Time) Storage {
			return NewMemoryStorage().WithClock(now)
		}},
		{"sqlite", func(t *testing.T, now func() time.Time) Storage {
			s, err := NewSQLiteStorage()
			require.NoError(t, err)
			t.Cleanup(func() { s.Close() })
			return s.WithClock(now)
		}},
	}
}

// fixedClock advances one second per call so timestamps are distinguishable.
func fixedClock() func() time.Time {
	current := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		current = current.Add(time.Second)
		return current
	}
}

func forEachBackend(t *testing.T, fn func(t *testing.T, s Storage)) {
	for _, b := range backends() {
		t.Run(b.name, func(t *testing.T) {
			fn(t, b.open(t, fixedClock()))
		})
	}
}

func TestUpsertUser(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s Storage) {
		_, err := s.GetUser("u1")
		assert.ErrorIs(t, err, ErrUserNotFound)

		first, err := s.UpsertUser(models.UpsertUser{ID: "u1", Email: models.StringPtr("a@example.com"), FirstName: models.StringPtr("Demo")})
		require.NoError(t, err)
		assert.Equal(t, "u1", first.ID)
		assert.Equal(t, "a@example.com", *first.Email)
		assert.Nil(t, first.LastName)
		assert.Nil(t, first.ProfileImageURL)

		second, err := s.UpsertUser(models.UpsertUser{ID: "u1", Email: models.StringPtr("b@example.com")})
		require.NoError(t, err)
		assert.Equal(t, "b@example.com", *second.Email)
		assert.Nil(t, second.FirstName)
		assert.True(t, second.CreatedAt.Equal(first.CreatedAt))
		assert.True(t, second.UpdatedAt.After(first.UpdatedAt))

		got, err := s.GetUser("u1")
		require.NoError(t, err)
		assert.Equal(t, "b@example.com", *got.Email)
	})
}

func TestUpsertUserDefaultsID(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s Storage) {
		user, err := s.UpsertUser(models.UpsertUser{})
		require.NoError(t, err)
		assert.Equal(t, DefaultUserID, user.ID)
	})
}

func TestCreateGymClassAssignsUniqueIDs(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s Storage) {
		seen := make(map[string]bool)
		for i := 0; i < 50; i++ {
			g, err := s.CreateGymClass(models.NewGymClass{Date: "2024-03-01", Attendance: i}, "u1")
			require.NoError(t, err)
			assert.False(t, seen[g.ID], "duplicate id %s", g.ID)
			seen[g.ID] = true
			assert.Contains(t, g.ID, gymClassIDPrefix)
			assert.Nil(t, g.Notes)
			assert.False(t, g.CreatedAt.IsZero())
		}
	})
}

func TestListGymClassesFiltersAndSorts(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s Storage) {
		dates := []string{"2024-02-10", "2024-03-05", "2023-12-31", "2024-03-05", "2024-01-01"}
		var sameDay []string
		for _, d := range dates {
			g, err := s.CreateGymClass(models.NewGymClass{Date: d, Attendance: 1}, "u1")
			require.NoError(t, err)
			if d == "2024-03-05" {
				sameDay = append(sameDay, g.ID)
			}
		}
		_, err := s.CreateGymClass(models.NewGymClass{Date: "2025-01-01", Attendance: 3}, "u2")
		require.NoError(t, err)

		classes, err := s.ListGymClasses("u1")
		require.NoError(t, err)
		require.Len(t, classes, len(dates))
		for _, g := range classes {
			assert.Equal(t, "u1", g.UserID)
		}
		for i := 1; i < len(classes); i++ {
			assert.GreaterOrEqual(t, classes[i-1].Date, classes[i].Date)
		}
		assert.Equal(t, sameDay, []string{classes[0].ID, classes[1].ID})

		empty, err := s.ListGymClasses("nobody")
		require.NoError(t, err)
		assert.NotNil(t, empty)
		assert.Empty(t, empty)
	})
}

func TestUpdateGymClass(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s Storage) {
		created, err := s.CreateGymClass(models.NewGymClass{Date: "2024-03-01", Attendance: 5, Notes: models.StringPtr("leg day")}, "u1")
		require.NoError(t, err)

		unchanged, err := s.UpdateGymClass(created.ID, models.GymClassPatch{})
		require.NoError(t, err)
		assert.Equal(t, created, unchanged)

		eight := 8
		updated, err := s.UpdateGymClass(created.ID, models.GymClassPatch{Attendance: &eight})
		require.NoError(t, err)
		assert.Equal(t, 8, updated.Attendance)
		assert.Equal(t, created.Date, updated.Date)
		assert.Equal(t, "leg day", *updated.Notes)
		assert.True(t, created.CreatedAt.Equal(updated.CreatedAt))

		cleared, err := s.UpdateGymClass(created.ID, models.GymClassPatch{Notes: models.NullableString{Set: true}})
		require.NoError(t, err)
		assert.Nil(t, cleared.Notes)

		got, err := s.GetGymClass(created.ID)
		require.NoError(t, err)
		assert.Equal(t, 8, got.Attendance)
		assert.Nil(t, got.Notes)

		_, err = s.UpdateGymClass("missing", models.GymClassPatch{Attendance: &eight})
		assert.ErrorIs(t, err, ErrGymClassNotFound)
	})
}

func TestDeleteGymClass(t *testing.T) {
	forEachBackend(t, func(t *testing.T, s Storage) {
		created, err := s.CreateGymClass(models.NewGymClass{Date: "2024-03-01", Attendance: 2}, "u1")
		require.NoError(t, err)

		deleted, err := s.DeleteGymClass(created.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		_, err = s.GetGymClass(created.ID)
		assert.ErrorIs(t, err, ErrGymClassNotFound)

		deleted, err = s.DeleteGymClass(created.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestNewRejectsUnknownDriver(t *testing.T) {
	_, err := New("postgres")
	assert.Error(t, err)

	s, err := New("memory")
	require.NoError(t, err)
	assert.IsType(t, &MemoryStorage{}, s)
}
