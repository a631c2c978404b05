package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"habitdash/internal/analytics"
	"habitdash/internal/models"
	"habitdash/internal/token"
)

var now = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func testEngine() *analytics.Engine {
	return analytics.New(analytics.WithClock(func() time.Time { return now }))
}

type fakeAPI struct {
	session   models.Session
	signInErr error
	logoutErr error
	loggedOut bool

	habits    []models.Habit
	habitsErr error
	badges    models.BadgeResponse
	badgesErr error

	completed   []string
	uncompleted []string
}

func (f *fakeAPI) SignIn(context.Context, models.LoginData) (models.Session, error) {
	return f.session, f.signInErr
}

func (f *fakeAPI) SignUp(context.Context, models.RegisterData) (models.Session, error) {
	return f.session, f.signInErr
}

func (f *fakeAPI) Logout(context.Context) error {
	f.loggedOut = true
	return f.logoutErr
}

func (f *fakeAPI) Me(context.Context) (models.User, error) {
	return f.session.User, nil
}

func (f *fakeAPI) GetHabits(context.Context) ([]models.Habit, error) {
	return f.habits, f.habitsErr
}

func (f *fakeAPI) GetHabit(_ context.Context, id string) (models.Habit, error) {
	for _, h := range f.habits {
		if h.ID == id {
			return h, nil
		}
	}
	return models.Habit{}, errors.New("not found")
}

func (f *fakeAPI) GetBadges(context.Context) (models.BadgeResponse, error) {
	return f.badges, f.badgesErr
}

func (f *fakeAPI) MarkComplete(_ context.Context, habitID, date string) (models.Entry, error) {
	f.completed = append(f.completed, habitID+"@"+date)
	return models.Entry{HabitID: habitID, Date: date, Value: 1}, nil
}

func (f *fakeAPI) MarkIncomplete(_ context.Context, habitID, date string) error {
	f.uncompleted = append(f.uncompleted, habitID+"@"+date)
	return nil
}

func TestSessionService_SignInStoresToken(t *testing.T) {
	api := &fakeAPI{session: models.Session{User: models.User{ID: "u1"}, Token: "jwt"}}
	store := token.NewMemoryStore("")
	svc := NewSessionService(api, store)

	user, err := svc.SignIn(context.Background(), models.LoginData{Email: "a@b.c", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)

	tok, err := svc.StoredToken()
	require.NoError(t, err)
	assert.Equal(t, "jwt", tok)
}

func TestSessionService_SignInFailureKeepsStoreEmpty(t *testing.T) {
	api := &fakeAPI{signInErr: errors.New("bad credentials")}
	store := token.NewMemoryStore("")
	svc := NewSessionService(api, store)

	_, err := svc.SignIn(context.Background(), models.LoginData{})
	assert.Error(t, err)
	_, err = store.Get()
	assert.ErrorIs(t, err, token.ErrNotFound)
}

func TestSessionService_SignUpWithoutTokenFails(t *testing.T) {
	api := &fakeAPI{session: models.Session{User: models.User{ID: "u1"}}}
	svc := NewSessionService(api, token.NewMemoryStore(""))

	_, err := svc.SignUp(context.Background(), models.RegisterData{Email: "a@b.c"})
	assert.Error(t, err)
}

func TestSessionService_SignOutIgnoresLogoutFailure(t *testing.T) {
	api := &fakeAPI{logoutErr: errors.New("offline")}
	store := token.NewMemoryStore("jwt")
	svc := NewSessionService(api, store)

	require.NoError(t, svc.SignOut(context.Background()))
	assert.True(t, api.loggedOut)

	tok, err := svc.StoredToken()
	require.NoError(t, err)
	assert.Empty(t, tok)
}

func TestSessionService_SignOutWhenSignedOut(t *testing.T) {
	api := &fakeAPI{}
	svc := NewSessionService(api, token.NewMemoryStore(""))

	require.NoError(t, svc.SignOut(context.Background()))
	assert.False(t, api.loggedOut)
}

func TestHabitService_ToggleToday(t *testing.T) {
	api := &fakeAPI{habits: []models.Habit{
		{ID: "done", HabitEntries: []models.Entry{{Date: "2026-03-15T08:00:00Z", Value: 1}}},
		{ID: "open", HabitEntries: []models.Entry{{Date: "2026-03-14", Value: 1}}},
	}}
	svc := NewHabitService(api, testEngine())

	completed, err := svc.ToggleToday(context.Background(), "done")
	require.NoError(t, err)
	assert.False(t, completed)
	assert.Equal(t, []string{"done@2026-03-15"}, api.uncompleted)

	completed, err = svc.ToggleToday(context.Background(), "open")
	require.NoError(t, err)
	assert.True(t, completed)
	assert.Equal(t, []string{"open@2026-03-15"}, api.completed)

	_, err = svc.ToggleToday(context.Background(), "missing")
	assert.Error(t, err)
}

func TestDashboardService_GetDashboard(t *testing.T) {
	api := &fakeAPI{
		habits: []models.Habit{
			{ID: "h1", Name: "Read", Target: 1, HabitEntries: []models.Entry{
				{Date: "2026-03-15", Value: 1},
				{Date: "2026-03-14", Value: 1},
			}},
		},
		badges: models.BadgeResponse{UserStats: models.BadgeStats{TotalPoints: 2000}},
	}

	resp := NewDashboardService(api, api, testEngine()).GetDashboard(context.Background(), 7)
	assert.Empty(t, resp.Errors)
	assert.Equal(t, 2, resp.Stats.LongestCurrentStreak)
	assert.Equal(t, 1, resp.Summary.CompletedToday)
	assert.Len(t, resp.Progress, 7)
	assert.Equal(t, 2, resp.Analytics["h1"].CurrentStreak)
	assert.Equal(t, "GOLD III", resp.Rank.String())
	require.Len(t, resp.Streaks, 1)
}

func TestDashboardService_PartialFailure(t *testing.T) {
	api := &fakeAPI{
		habitsErr: errors.New("habits down"),
		badges:    models.BadgeResponse{UserStats: models.BadgeStats{TotalPoints: 120}},
	}

	resp := NewDashboardService(api, api, testEngine()).GetDashboard(context.Background(), 30)
	require.Len(t, resp.Errors, 1)
	assert.Contains(t, resp.Errors[0], "habits down")
	assert.Equal(t, models.AggregateStats{}, resp.Stats)
	assert.Equal(t, "BRONZE II", resp.Rank.String())
}
