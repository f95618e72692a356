package reservation

import (
	"testing"

	"whattoday/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// fakeReservationRepo keeps reservations in a map and records updates.
type fakeReservationRepo struct {
	reservations map[string]*models.Reservation
	listResult   []models.Reservation
	lastUpdate   bson.M
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{reservations: make(map[string]*models.Reservation)}
}

func (f *fakeReservationRepo) Create(r *models.Reservation) error {
	stored := *r
	f.reservations[r.ID] = &stored
	return nil
}

func (f *fakeReservationRepo) GetByID(id string) (*models.Reservation, error) {
	r, ok := f.reservations[id]
	if !ok {
		return nil, nil
	}
	copied := *r
	return &copied, nil
}

func (f *fakeReservationRepo) UpdateWithDocument(id string, updateDoc bson.M) error {
	f.lastUpdate = updateDoc
	if set, ok := updateDoc["$set"].(bson.M); ok {
		if status, ok := set["status"].(string); ok {
			f.reservations[id].Status = status
		}
	}
	return nil
}

func (f *fakeReservationRepo) ListByUser(userID, status string, page, size int) ([]models.Reservation, int64, error) {
	return f.listResult, int64(len(f.listResult)), nil
}

func (f *fakeReservationRepo) ListBySchedule(activityID, scheduleID, status string) ([]models.Reservation, error) {
	return f.listResult, nil
}

func (f *fakeReservationRepo) CountByActivity(string) (int64, error) { return 0, nil }

func (f *fakeReservationRepo) DashboardForMonth(string, string) ([]models.ReservationDashboardDay, error) {
	return nil, nil
}

func (f *fakeReservationRepo) ReservedSchedulesForDate(string, string) ([]models.ReservedScheduleSummary, error) {
	return nil, nil
}

// fakeActivityRepo serves a single activity.
type fakeActivityRepo struct {
	activity *models.Activity
}

func (f *fakeActivityRepo) Create(*models.Activity) error           { return nil }
func (f *fakeActivityRepo) Update(*models.Activity) error           { return nil }
func (f *fakeActivityRepo) UpdateWithDocument(string, bson.M) error { return nil }
func (f *fakeActivityRepo) Delete(string) error                     { return nil }

func (f *fakeActivityRepo) GetByID(id string) (*models.Activity, error) {
	if f.activity != nil && f.activity.ID == id {
		return f.activity, nil
	}
	return nil, nil
}

func (f *fakeActivityRepo) List(models.ActivityQuery) ([]models.ActivitySummary, int64, error) {
	return nil, 0, nil
}

func (f *fakeActivityRepo) ListByUser(string, int, int) ([]models.ActivitySummary, int64, error) {
	return nil, 0, nil
}

func newTestService() (*DefaultReservationService, *fakeReservationRepo) {
	repo := newFakeReservationRepo()
	svc := &DefaultReservationService{
		Repo: repo,
		ActivityRepo: &fakeActivityRepo{activity: &models.Activity{
			ID:     "act-1",
			UserID: "host-1",
			Price:  8000,
			Schedules: []models.Schedule{
				{ID: "sch-1", Date: "2999-08-01", StartTime: "10:00", EndTime: "11:00"},
				{ID: "sch-2", Date: "2020-08-01", StartTime: "10:00", EndTime: "11:00"},
			},
		}},
	}
	return svc, repo
}

func TestCreateReservation(t *testing.T) {
	t.Run("denormalizes schedule and derives total price", func(t *testing.T) {
		svc, repo := newTestService()

		r, err := svc.Create("act-1", "guest-1", models.ReservationCreateRequest{
			ScheduleID: "sch-1",
			HeadCount:  3,
		})
		require.NoError(t, err)
		assert.Equal(t, models.ReservationPending, r.Status)
		assert.Equal(t, 24000, r.TotalPrice)
		assert.Equal(t, "host-1", r.OwnerID)
		assert.Equal(t, "2999-08-01", r.Date)
		assert.Equal(t, "10:00", r.StartTime)
		assert.Equal(t, "11:00", r.EndTime)
		assert.Contains(t, repo.reservations, r.ID)
	})

	t.Run("schedule must belong to the activity", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.Create("act-1", "guest-1", models.ReservationCreateRequest{
			ScheduleID: "other",
			HeadCount:  1,
		})
		assert.ErrorContains(t, err, "does not belong")
	})

	t.Run("past schedules are rejected", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.Create("act-1", "guest-1", models.ReservationCreateRequest{
			ScheduleID: "sch-2",
			HeadCount:  1,
		})
		assert.ErrorContains(t, err, "already ended")
	})

	t.Run("unknown activity", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.Create("missing", "guest-1", models.ReservationCreateRequest{
			ScheduleID: "sch-1",
			HeadCount:  1,
		})
		assert.ErrorContains(t, err, "not found")
	})
}

func TestCancelReservation(t *testing.T) {
	t.Run("pending reservation is canceled", func(t *testing.T) {
		svc, repo := newTestService()
		repo.reservations["r1"] = &models.Reservation{
			ID: "r1", UserID: "guest-1", Status: models.ReservationPending,
		}

		r, err := svc.Cancel("r1", "guest-1")
		require.NoError(t, err)
		assert.Equal(t, models.ReservationCanceled, r.Status)
		assert.Equal(t, models.ReservationCanceled, repo.reservations["r1"].Status)
	})

	t.Run("only the booking user can cancel", func(t *testing.T) {
		svc, repo := newTestService()
		repo.reservations["r1"] = &models.Reservation{
			ID: "r1", UserID: "guest-1", Status: models.ReservationPending,
		}

		_, err := svc.Cancel("r1", "someone-else")
		assert.ErrorContains(t, err, "another user")
	})

	t.Run("confirmed reservations cannot be canceled", func(t *testing.T) {
		svc, repo := newTestService()
		repo.reservations["r1"] = &models.Reservation{
			ID: "r1", UserID: "guest-1", Status: models.ReservationConfirmed,
		}

		_, err := svc.Cancel("r1", "guest-1")
		assert.ErrorContains(t, err, "only pending")
	})
}

func TestUpdateStatus(t *testing.T) {
	pendingReservation := func() *models.Reservation {
		return &models.Reservation{
			ID: "r1", ActivityID: "act-1", UserID: "guest-1",
			Status: models.ReservationPending,
		}
	}

	t.Run("host confirms a pending reservation", func(t *testing.T) {
		svc, repo := newTestService()
		repo.reservations["r1"] = pendingReservation()

		r, err := svc.UpdateStatus("act-1", "host-1", "r1", models.ReservationConfirmed)
		require.NoError(t, err)
		assert.Equal(t, models.ReservationConfirmed, r.Status)
	})

	t.Run("host declines a pending reservation", func(t *testing.T) {
		svc, repo := newTestService()
		repo.reservations["r1"] = pendingReservation()

		r, err := svc.UpdateStatus("act-1", "host-1", "r1", models.ReservationDeclined)
		require.NoError(t, err)
		assert.Equal(t, models.ReservationDeclined, r.Status)
	})

	t.Run("only confirmed or declined are accepted", func(t *testing.T) {
		svc, repo := newTestService()
		repo.reservations["r1"] = pendingReservation()

		_, err := svc.UpdateStatus("act-1", "host-1", "r1", models.ReservationCanceled)
		assert.ErrorContains(t, err, "status must be")
	})

	t.Run("non-owner is rejected", func(t *testing.T) {
		svc, repo := newTestService()
		repo.reservations["r1"] = pendingReservation()

		_, err := svc.UpdateStatus("act-1", "guest-1", "r1", models.ReservationConfirmed)
		assert.ErrorContains(t, err, "another user")
	})

	t.Run("already decided reservations are left alone", func(t *testing.T) {
		svc, repo := newTestService()
		r := pendingReservation()
		r.Status = models.ReservationConfirmed
		repo.reservations["r1"] = r

		_, err := svc.UpdateStatus("act-1", "host-1", "r1", models.ReservationDeclined)
		assert.ErrorContains(t, err, "only pending")
	})
}

func TestListMine(t *testing.T) {
	t.Run("applies completed rollover on read", func(t *testing.T) {
		svc, repo := newTestService()
		repo.listResult = []models.Reservation{
			{ID: "r1", Status: models.ReservationConfirmed, Date: "2020-08-01", EndTime: "11:00"},
			{ID: "r2", Status: models.ReservationConfirmed, Date: "2999-08-01", EndTime: "11:00"},
		}

		reservations, _, err := svc.ListMine("guest-1", "", 1, 20)
		require.NoError(t, err)
		require.Len(t, reservations, 2)
		assert.Equal(t, models.ReservationCompleted, reservations[0].Status)
		assert.Equal(t, models.ReservationConfirmed, reservations[1].Status)
	})

	t.Run("completed filter keeps only rolled-over rows", func(t *testing.T) {
		svc, repo := newTestService()
		repo.listResult = []models.Reservation{
			{ID: "r1", Status: models.ReservationConfirmed, Date: "2020-08-01", EndTime: "11:00"},
			{ID: "r2", Status: models.ReservationConfirmed, Date: "2999-08-01", EndTime: "11:00"},
		}

		reservations, _, err := svc.ListMine("guest-1", models.ReservationCompleted, 1, 20)
		require.NoError(t, err)
		require.Len(t, reservations, 1)
		assert.Equal(t, "r1", reservations[0].ID)
	})
}
