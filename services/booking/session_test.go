package booking

import (
	"errors"
	"testing"

	"whattoday/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// memorySessionStore is an in-memory SessionStore for tests.
type memorySessionStore struct {
	sessions map[string]models.BookingSession
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{sessions: make(map[string]models.BookingSession)}
}

func (m *memorySessionStore) Save(sessionID string, session models.BookingSession) error {
	m.sessions[sessionID] = session
	return nil
}

func (m *memorySessionStore) Get(sessionID string) (*models.BookingSession, error) {
	session, ok := m.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &session, nil
}

func (m *memorySessionStore) Delete(sessionID string) error {
	delete(m.sessions, sessionID)
	return nil
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

// fakeReservationCreator records calls and returns a scripted result.
type fakeReservationCreator struct {
	calls       int
	lastRequest models.ReservationCreateRequest
	err         error
	beforeReply func()
}

func (f *fakeReservationCreator) Create(activityID, userID string, req models.ReservationCreateRequest) (*models.Reservation, error) {
	f.calls++
	f.lastRequest = req
	if f.beforeReply != nil {
		f.beforeReply()
	}
	if f.err != nil {
		return nil, f.err
	}
	return &models.Reservation{
		ID:         "res-1",
		ActivityID: activityID,
		UserID:     userID,
		ScheduleID: req.ScheduleID,
		HeadCount:  req.HeadCount,
	}, nil
}

// recordingNotifier counts delivered notifications.
type recordingNotifier struct {
	created int
	failed  int
}

func (n *recordingNotifier) ReservationCreated(models.BookingSession, models.Reservation) {
	n.created++
}

func (n *recordingNotifier) ReservationFailed(models.BookingSession, error) {
	n.failed++
}

func newTestService() (*DefaultBookingSessionService, *memorySessionStore, *fakeReservationCreator, *recordingNotifier) {
	store := newMemorySessionStore()
	creator := &fakeReservationCreator{}
	notifier := &recordingNotifier{}
	svc := &DefaultBookingSessionService{
		Store: store,
		ActivityRepo: &fakeActivityRepo{activity: &models.Activity{
			ID:    "act-1",
			Price: 8000,
			Schedules: []models.Schedule{
				{ID: "1", Date: "2025-08-01", StartTime: "10:00", EndTime: "11:00"},
				{ID: "2", Date: "2025-08-01", StartTime: "13:00", EndTime: "14:00"},
				{ID: "3", Date: "2025-08-02", StartTime: "09:00", EndTime: "10:00"},
			},
		}},
		Reservations: creator,
		Notifier:     notifier,
	}
	return svc, store, creator, notifier
}

func TestOpenSession(t *testing.T) {
	t.Run("snapshots price and schedules with an empty selection", func(t *testing.T) {
		svc, _, _, _ := newTestService()

		view, err := svc.OpenSession("act-1", "u1")
		require.NoError(t, err)
		assert.NotEmpty(t, view.SessionID)
		assert.Equal(t, 1, view.HeadCount)
		assert.Equal(t, 8000, view.UnitPrice)
		assert.Equal(t, 8000, view.TotalPrice)
		assert.Equal(t, []string{"2025-08-01", "2025-08-02"}, view.ReservableDates)
		assert.Empty(t, view.SelectedDate)
		assert.Empty(t, view.AvailableTimes)
		assert.False(t, view.IsReadyToReserve)
		assert.Equal(t, models.SubmissionIdle, view.Submission)
	})

	t.Run("unknown activity", func(t *testing.T) {
		svc, _, _, _ := newTestService()

		_, err := svc.OpenSession("missing", "u1")
		assert.ErrorIs(t, err, ErrActivityNotFound)
	})
}

func TestSessionOwnership(t *testing.T) {
	svc, _, _, _ := newTestService()

	view, err := svc.OpenSession("act-1", "u1")
	require.NoError(t, err)

	_, err = svc.GetSession(view.SessionID, "someone-else")
	assert.ErrorIs(t, err, ErrSessionForbidden)

	_, err = svc.GetSession("no-such-session", "u1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSelectionFlow(t *testing.T) {
	svc, _, creator, notifier := newTestService()

	view, err := svc.OpenSession("act-1", "u1")
	require.NoError(t, err)
	id := view.SessionID

	view, err = svc.SetDate(id, "u1", "2025-08-01")
	require.NoError(t, err)
	assert.Len(t, view.AvailableTimes, 2)
	assert.False(t, view.IsReadyToReserve)

	view, err = svc.SetScheduleID(id, "u1", "2")
	require.NoError(t, err)
	assert.True(t, view.IsReadyToReserve)

	view, err = svc.IncreaseHeadCount(id, "u1")
	require.NoError(t, err)
	view, err = svc.IncreaseHeadCount(id, "u1")
	require.NoError(t, err)
	assert.Equal(t, 3, view.HeadCount)
	assert.Equal(t, 24000, view.TotalPrice)

	// Changing the date clears the schedule selection.
	view, err = svc.SetDate(id, "u1", "2025-08-02")
	require.NoError(t, err)
	assert.Empty(t, view.SelectedScheduleID)
	assert.False(t, view.IsReadyToReserve)

	view, err = svc.SetScheduleID(id, "u1", "3")
	require.NoError(t, err)

	view, err = svc.Submit(id, "u1")
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionSucceeded, view.Submission)
	assert.Equal(t, "res-1", view.ReservationID)
	assert.Equal(t, 1, creator.calls)
	assert.Equal(t, "3", creator.lastRequest.ScheduleID)
	assert.Equal(t, 3, creator.lastRequest.HeadCount)
	assert.Equal(t, 1, notifier.created)
}

func TestSubmitNotReadyIsNoOp(t *testing.T) {
	svc, _, creator, _ := newTestService()

	view, err := svc.OpenSession("act-1", "u1")
	require.NoError(t, err)

	view, err = svc.Submit(view.SessionID, "u1")
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionIdle, view.Submission)
	assert.Zero(t, creator.calls)
}

func TestSubmitWhileSubmittingIsNoOp(t *testing.T) {
	svc, store, creator, _ := newTestService()

	view, err := svc.OpenSession("act-1", "u1")
	require.NoError(t, err)
	id := view.SessionID

	_, err = svc.SetDate(id, "u1", "2025-08-01")
	require.NoError(t, err)
	_, err = svc.SetScheduleID(id, "u1", "1")
	require.NoError(t, err)

	// A second submit arriving mid-flight sees the persisted submitting
	// status and backs off.
	creator.beforeReply = func() {
		stored, getErr := store.Get(id)
		require.NoError(t, getErr)
		assert.Equal(t, models.SubmissionSubmitting, stored.Submission)
		assert.False(t, stored.IsReadyToReserve())
	}

	view, err = svc.Submit(id, "u1")
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionSucceeded, view.Submission)
	assert.Equal(t, 1, creator.calls)
}

func TestSubmitFailureIsRetriable(t *testing.T) {
	svc, _, creator, notifier := newTestService()

	view, err := svc.OpenSession("act-1", "u1")
	require.NoError(t, err)
	id := view.SessionID

	_, err = svc.SetDate(id, "u1", "2025-08-01")
	require.NoError(t, err)
	_, err = svc.SetScheduleID(id, "u1", "1")
	require.NoError(t, err)

	creator.err = errors.New("schedule no longer available")
	view, err = svc.Submit(id, "u1")
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionFailed, view.Submission)
	assert.Equal(t, "schedule no longer available", view.SubmissionError)
	assert.True(t, view.IsReadyToReserve)
	assert.Equal(t, 1, notifier.failed)

	creator.err = nil
	view, err = svc.Submit(id, "u1")
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionSucceeded, view.Submission)
	assert.Empty(t, view.SubmissionError)
	assert.Equal(t, 2, creator.calls)
	assert.Equal(t, 1, notifier.created)
}

func TestSubmitResultDroppedWhenSessionClosed(t *testing.T) {
	svc, store, creator, _ := newTestService()

	view, err := svc.OpenSession("act-1", "u1")
	require.NoError(t, err)
	id := view.SessionID

	_, err = svc.SetDate(id, "u1", "2025-08-01")
	require.NoError(t, err)
	_, err = svc.SetScheduleID(id, "u1", "1")
	require.NoError(t, err)

	// The panel closes while the reservation call is in flight.
	creator.beforeReply = func() {
		require.NoError(t, store.Delete(id))
	}

	view, err = svc.Submit(id, "u1")
	require.NoError(t, err)
	assert.Equal(t, models.SubmissionSucceeded, view.Submission)

	// The dropped result is not written back.
	_, err = store.Get(id)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCloseSession(t *testing.T) {
	svc, store, _, _ := newTestService()

	view, err := svc.OpenSession("act-1", "u1")
	require.NoError(t, err)

	require.NoError(t, svc.CloseSession(view.SessionID, "u1"))
	_, err = store.Get(view.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	assert.ErrorIs(t, svc.CloseSession(view.SessionID, "u1"), ErrSessionNotFound)
}
