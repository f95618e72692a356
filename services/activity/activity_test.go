package activity

import (
	"testing"

	"whattoday/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// recordingActivityRepo keeps activities in a map.
type recordingActivityRepo struct {
	activities map[string]*models.Activity
	deleted    []string
}

func newRecordingActivityRepo() *recordingActivityRepo {
	return &recordingActivityRepo{activities: make(map[string]*models.Activity)}
}

func (f *recordingActivityRepo) Create(a *models.Activity) error {
	stored := *a
	f.activities[a.ID] = &stored
	return nil
}

func (f *recordingActivityRepo) Update(a *models.Activity) error {
	stored := *a
	f.activities[a.ID] = &stored
	return nil
}

func (f *recordingActivityRepo) UpdateWithDocument(string, bson.M) error { return nil }

func (f *recordingActivityRepo) Delete(id string) error {
	f.deleted = append(f.deleted, id)
	delete(f.activities, id)
	return nil
}

func (f *recordingActivityRepo) GetByID(id string) (*models.Activity, error) {
	a, ok := f.activities[id]
	if !ok {
		return nil, nil
	}
	copied := *a
	return &copied, nil
}

func (f *recordingActivityRepo) List(models.ActivityQuery) ([]models.ActivitySummary, int64, error) {
	return nil, 0, nil
}

func (f *recordingActivityRepo) ListByUser(string, int, int) ([]models.ActivitySummary, int64, error) {
	return nil, 0, nil
}

// countingReservationRepo only answers CountByActivity.
type countingReservationRepo struct {
	count int64
}

func (f *countingReservationRepo) Create(*models.Reservation) error            { return nil }
func (f *countingReservationRepo) GetByID(string) (*models.Reservation, error) { return nil, nil }
func (f *countingReservationRepo) UpdateWithDocument(string, bson.M) error     { return nil }

func (f *countingReservationRepo) ListByUser(string, string, int, int) ([]models.Reservation, int64, error) {
	return nil, 0, nil
}

func (f *countingReservationRepo) ListBySchedule(string, string, string) ([]models.Reservation, error) {
	return nil, nil
}

func (f *countingReservationRepo) CountByActivity(string) (int64, error) { return f.count, nil }

func (f *countingReservationRepo) DashboardForMonth(string, string) ([]models.ReservationDashboardDay, error) {
	return nil, nil
}

func (f *countingReservationRepo) ReservedSchedulesForDate(string, string) ([]models.ReservedScheduleSummary, error) {
	return nil, nil
}

func newTestService() (*DefaultActivityService, *recordingActivityRepo, *countingReservationRepo) {
	repo := newRecordingActivityRepo()
	counter := &countingReservationRepo{}
	return &DefaultActivityService{Repo: repo, ReservationRepo: counter}, repo, counter
}

func TestCreateActivity(t *testing.T) {
	t.Run("assigns ids to activity and schedules", func(t *testing.T) {
		svc, repo, _ := newTestService()

		a, err := svc.Create("host-1", models.ActivityCreateRequest{
			Title: "Pottery class",
			Price: 8000,
			Schedules: []models.Schedule{
				{Date: "2025-08-01", StartTime: "10:00", EndTime: "11:00"},
			},
		})
		require.NoError(t, err)
		assert.NotEmpty(t, a.ID)
		assert.Equal(t, "host-1", a.UserID)
		require.Len(t, a.Schedules, 1)
		assert.NotEmpty(t, a.Schedules[0].ID)
		assert.Contains(t, repo.activities, a.ID)
	})

	t.Run("overlapping schedules are rejected", func(t *testing.T) {
		svc, _, _ := newTestService()

		_, err := svc.Create("host-1", models.ActivityCreateRequest{
			Title: "Pottery class",
			Price: 8000,
			Schedules: []models.Schedule{
				{Date: "2025-08-01", StartTime: "10:00", EndTime: "12:00"},
				{Date: "2025-08-01", StartTime: "11:00", EndTime: "13:00"},
			},
		})
		assert.ErrorContains(t, err, "overlaps")
	})

	t.Run("negative price is rejected", func(t *testing.T) {
		svc, _, _ := newTestService()

		_, err := svc.Create("host-1", models.ActivityCreateRequest{Title: "x", Price: -1})
		assert.ErrorContains(t, err, "price")
	})
}

func TestUpdateActivity(t *testing.T) {
	seed := func(repo *recordingActivityRepo) {
		repo.activities["act-1"] = &models.Activity{
			ID:           "act-1",
			UserID:       "host-1",
			Title:        "Pottery class",
			Price:        8000,
			SubImageURLs: []string{"https://img/a", "https://img/b"},
			Schedules: []models.Schedule{
				{ID: "sch-1", Date: "2025-08-01", StartTime: "10:00", EndTime: "11:00"},
			},
		}
	}

	t.Run("applies partial fields and schedule edits", func(t *testing.T) {
		svc, repo, _ := newTestService()
		seed(repo)

		title := "Pottery class v2"
		a, err := svc.Update("act-1", "host-1", models.ActivityUpdateRequest{
			Title:                &title,
			SubImageURLsToRemove: []string{"https://img/a"},
			SubImageURLsToAdd:    []string{"https://img/c"},
			ScheduleIDsToRemove:  []string{"sch-1"},
			SchedulesToAdd: []models.Schedule{
				{Date: "2025-08-02", StartTime: "09:00", EndTime: "10:00"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "Pottery class v2", a.Title)
		assert.Equal(t, []string{"https://img/b", "https://img/c"}, a.SubImageURLs)
		require.Len(t, a.Schedules, 1)
		assert.Equal(t, "2025-08-02", a.Schedules[0].Date)
		assert.NotEmpty(t, a.Schedules[0].ID)
	})

	t.Run("resulting schedule set is revalidated", func(t *testing.T) {
		svc, repo, _ := newTestService()
		seed(repo)

		_, err := svc.Update("act-1", "host-1", models.ActivityUpdateRequest{
			SchedulesToAdd: []models.Schedule{
				{Date: "2025-08-01", StartTime: "10:30", EndTime: "11:30"},
			},
		})
		assert.ErrorContains(t, err, "overlaps")
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		svc, repo, _ := newTestService()
		seed(repo)

		_, err := svc.Update("act-1", "someone-else", models.ActivityUpdateRequest{})
		assert.ErrorContains(t, err, "another user")
	})
}

func TestDeleteActivity(t *testing.T) {
	seed := func(repo *recordingActivityRepo) {
		repo.activities["act-1"] = &models.Activity{ID: "act-1", UserID: "host-1"}
	}

	t.Run("owner deletes an activity without reservations", func(t *testing.T) {
		svc, repo, _ := newTestService()
		seed(repo)

		require.NoError(t, svc.Delete("act-1", "host-1"))
		assert.Equal(t, []string{"act-1"}, repo.deleted)
	})

	t.Run("activities with reservations are kept", func(t *testing.T) {
		svc, repo, counter := newTestService()
		seed(repo)
		counter.count = 2

		err := svc.Delete("act-1", "host-1")
		assert.ErrorContains(t, err, "existing reservations")
		assert.Empty(t, repo.deleted)
	})
}

func TestAvailableScheduleForMonth(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.activities["act-1"] = &models.Activity{
		ID:     "act-1",
		UserID: "host-1",
		Schedules: []models.Schedule{
			{ID: "1", Date: "2025-08-01", StartTime: "10:00", EndTime: "11:00"},
			{ID: "2", Date: "2025-08-01", StartTime: "13:00", EndTime: "14:00"},
			{ID: "3", Date: "2025-09-01", StartTime: "09:00", EndTime: "10:00"},
		},
	}

	result, err := svc.AvailableScheduleForMonth("act-1", 2025, 8)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "2025-08-01", result[0].Date)
	assert.Len(t, result[0].Times, 2)
}
