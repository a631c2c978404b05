package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"habitdash/clients/tracker"
	"habitdash/internal/analytics"
	"habitdash/internal/models"
	"habitdash/internal/services"
	"habitdash/internal/token"
)

var now = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

type fakeAPI struct {
	habits  []models.Habit
	badges  models.BadgeResponse
	created []models.CreateHabitData
	deleted []string
	marked  []string
}

func (f *fakeAPI) SignIn(_ context.Context, creds models.LoginData) (models.Session, error) {
	if creds.Password != "secret" {
		return models.Session{}, errors.New("invalid credentials")
	}
	return models.Session{User: models.User{Email: creds.Email, Name: "Ada"}, Token: "tok"}, nil
}

func (f *fakeAPI) SignUp(_ context.Context, data models.RegisterData) (models.Session, error) {
	return models.Session{User: models.User{Email: data.Email}, Token: "tok"}, nil
}

func (f *fakeAPI) Logout(context.Context) error { return nil }

func (f *fakeAPI) Me(context.Context) (models.User, error) {
	return models.User{Email: "ada@example.com", Name: "Ada"}, nil
}

func (f *fakeAPI) GetHabits(context.Context) ([]models.Habit, error) { return f.habits, nil }

func (f *fakeAPI) GetHabit(_ context.Context, id string) (models.Habit, error) {
	for _, h := range f.habits {
		if h.ID == id {
			return h, nil
		}
	}
	return models.Habit{}, errors.New("not found")
}

func (f *fakeAPI) CreateHabit(_ context.Context, data models.CreateHabitData) (models.Habit, error) {
	f.created = append(f.created, data)
	return models.Habit{ID: "new", Name: data.Name}, nil
}

func (f *fakeAPI) DeleteHabit(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeAPI) MarkComplete(_ context.Context, habitID, date string) (models.Entry, error) {
	f.marked = append(f.marked, "+"+habitID+"@"+date)
	return models.Entry{}, nil
}

func (f *fakeAPI) MarkIncomplete(_ context.Context, habitID, date string) error {
	f.marked = append(f.marked, "-"+habitID+"@"+date)
	return nil
}

func (f *fakeAPI) GetBadges(context.Context) (models.BadgeResponse, error) { return f.badges, nil }

func newTestContext(api *fakeAPI, store token.Store) (*Context, *bytes.Buffer) {
	engine := analytics.New(analytics.WithClock(func() time.Time { return now }))
	session := services.NewSessionService(api, store)
	out := &bytes.Buffer{}
	return NewContext(context.Background(), api, &session, engine, out), out
}

func sampleAPI() *fakeAPI {
	return &fakeAPI{
		habits: []models.Habit{
			{ID: "h1", Name: "Read", Target: 10, IsActive: true, HabitEntries: []models.Entry{
				{Date: "2026-03-15", Value: 10},
				{Date: "2026-03-14", Value: 4},
			}},
			{ID: "h2", Name: "Stretch", Target: 1, IsActive: true},
		},
		badges: models.BadgeResponse{
			Badges: []models.Badge{
				{Name: "Early Bird", Icon: "Moon", Category: "time", Earned: true, Points: 50},
				{Name: "Mystery", Icon: "Unknown", Category: "special", Points: 500},
			},
			UserStats: models.BadgeStats{TotalPoints: 120, BadgesEarned: 1},
		},
	}
}

func TestLoginAndWhoami(t *testing.T) {
	store := token.NewMemoryStore("")
	ctx, out := newTestContext(sampleAPI(), store)

	require.NoError(t, (&WhoamiCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "Not signed in")

	require.NoError(t, (&LoginCmd{Email: "ada@example.com", Password: "secret"}).Run(ctx))
	assert.Contains(t, out.String(), "Signed in as Ada")
	tok, err := store.Get()
	require.NoError(t, err)
	assert.Equal(t, "tok", tok)

	out.Reset()
	require.NoError(t, (&WhoamiCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "Ada <ada@example.com>")

	require.NoError(t, (&LogoutCmd{}).Run(ctx))
	_, err = store.Get()
	assert.ErrorIs(t, err, token.ErrNotFound)
}

func TestLoginFailureKeepsStoreEmpty(t *testing.T) {
	store := token.NewMemoryStore("")
	ctx, _ := newTestContext(sampleAPI(), store)

	err := (&LoginCmd{Email: "ada@example.com", Password: "wrong"}).Run(ctx)
	require.Error(t, err)
	_, err = store.Get()
	assert.ErrorIs(t, err, token.ErrNotFound)
}

func TestHabitCommands(t *testing.T) {
	api := sampleAPI()
	ctx, out := newTestContext(api, token.NewMemoryStore("tok"))

	require.NoError(t, (&HabitListCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "Read")
	assert.Contains(t, out.String(), "1 / 2 done today (50%)")

	require.NoError(t, (&HabitMarkCmd{ID: "h1"}).Run(ctx))
	require.NoError(t, (&HabitMarkCmd{ID: "h2"}).Run(ctx))
	assert.Equal(t, []string{"-h1@2026-03-15", "+h2@2026-03-15"}, api.marked)

	require.NoError(t, (&HabitAddCmd{Name: "Walk", Target: 5000, Unit: "steps", Frequency: "daily"}).Run(ctx))
	require.Len(t, api.created, 1)
	assert.Equal(t, models.FrequencyDaily, api.created[0].Frequency)

	assert.Error(t, (&HabitAddCmd{Name: "Bad", Target: 0}).Run(ctx))

	require.NoError(t, (&HabitDeleteCmd{ID: "h2"}).Run(ctx))
	assert.Equal(t, []string{"h2"}, api.deleted)
}

func TestProgressCmd(t *testing.T) {
	ctx, out := newTestContext(sampleAPI(), token.NewMemoryStore("tok"))

	require.NoError(t, (&ProgressCmd{Days: 7}).Run(ctx))
	assert.Contains(t, out.String(), "Mar 15")
	assert.Contains(t, out.String(), "Mar 9")
	assert.Contains(t, out.String(), "40%")

	assert.Error(t, (&ProgressCmd{Days: 14}).Run(ctx))
}

func TestProgressTableColumns(t *testing.T) {
	headers, rows := progressTable([]models.ProgressRow{
		{Label: "Mar 14", Values: map[string]int{"b": 10, "a": 20}},
		{Label: "Mar 15", Values: map[string]int{"b": 30, "a": 40}},
	})
	assert.Equal(t, []string{"day", "a", "b"}, headers)
	assert.Equal(t, [][]string{{"Mar 14", "20%", "10%"}, {"Mar 15", "40%", "30%"}}, rows)
}

func TestStatsCmd(t *testing.T) {
	ctx, out := newTestContext(sampleAPI(), token.NewMemoryStore("tok"))
	require.NoError(t, (&StatsCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "2 (2 active)")
	assert.Contains(t, out.String(), "Stretch")
}

func TestRankCmd(t *testing.T) {
	ctx, out := newTestContext(sampleAPI(), token.NewMemoryStore("tok"))

	require.NoError(t, (&RankCmd{}).Run(ctx))
	assert.Contains(t, out.String(), "BRONZE II (120 points)")

	out.Reset()
	points := 10400
	require.NoError(t, (&RankCmd{Points: &points}).Run(ctx))
	assert.Contains(t, out.String(), "PLATINUM I (10400 points)")
}

func TestBadgesCmd(t *testing.T) {
	ctx, out := newTestContext(sampleAPI(), token.NewMemoryStore("tok"))

	require.NoError(t, (&BadgesCmd{Category: models.BadgeCategoryAll}).Run(ctx))
	assert.Contains(t, out.String(), "Early Bird")
	assert.Contains(t, out.String(), "☾")
	assert.Contains(t, out.String(), "🏅")
	assert.Contains(t, out.String(), "BRONZE II")

	out.Reset()
	require.NoError(t, (&BadgesCmd{Category: "nothing"}).Run(ctx))
	assert.Contains(t, out.String(), `No badges in "nothing".`)
}

func TestDescribe(t *testing.T) {
	err := fmt.Errorf("error getting habits: %w", fmt.Errorf("not signed in: %w", tracker.ErrUnauthorized))
	assert.Equal(t, "not signed in, run habitctl login", Describe(err))
	assert.Equal(t, "boom", Describe(errors.New("boom")))
}
