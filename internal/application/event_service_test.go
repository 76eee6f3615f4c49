package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/event-planner-api/internal/domain/entity"
	"github.com/oksasatya/event-planner-api/internal/infrastructure/memory"
)

func newEventFixture(t *testing.T) (*EventService, *entity.User, *entity.User) {
	t.Helper()
	svc := NewEventService(memory.NewEventRepository(), nil)
	alice := &entity.User{ID: "u-alice", Email: "alice@example.com", IsActive: true}
	bob := &entity.User{ID: "u-bob", Email: "bob@example.com", IsActive: true}
	return svc, alice, bob
}

func testEventInput(public bool) CreateEventInput {
	start := time.Date(2025, 7, 1, 18, 0, 0, 0, time.UTC)
	return CreateEventInput{
		Title:     "Board games night",
		Location:  "Community hall",
		StartTime: start,
		EndTime:   start.Add(3 * time.Hour),
		IsPublic:  public,
	}
}

func TestEventCreateAndGet(t *testing.T) {
	svc, alice, _ := newEventFixture(t)
	ctx := context.Background()

	e, err := svc.Create(ctx, alice, testEventInput(true))
	require.NoError(t, err)
	assert.Equal(t, alice.ID, e.CreatedBy)

	got, err := svc.Get(ctx, alice, e.ID)
	require.NoError(t, err)
	assert.Equal(t, e.ID, got.ID)
}

func TestEventGet_CrossUserAccess(t *testing.T) {
	svc, alice, bob := newEventFixture(t)
	ctx := context.Background()

	private, err := svc.Create(ctx, alice, testEventInput(false))
	require.NoError(t, err)

	// owner sees own private event
	_, err = svc.Get(ctx, alice, private.ID)
	require.NoError(t, err)

	// existing but hidden: forbidden, not a 404
	_, err = svc.Get(ctx, bob, private.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	// truly absent: not found
	_, err = svc.Get(ctx, bob, "e-missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEventList_VisibilityFilter(t *testing.T) {
	svc, alice, bob := newEventFixture(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, alice, testEventInput(true))
	require.NoError(t, err)
	_, err = svc.Create(ctx, alice, testEventInput(false))
	require.NoError(t, err)

	aliceSees, err := svc.List(ctx, alice, ListEventsInput{})
	require.NoError(t, err)
	assert.Len(t, aliceSees, 2)

	bobSees, err := svc.List(ctx, bob, ListEventsInput{})
	require.NoError(t, err)
	require.Len(t, bobSees, 1)
	assert.True(t, bobSees[0].IsPublic)
}

func TestEventUpdate_OwnerOnly(t *testing.T) {
	svc, alice, bob := newEventFixture(t)
	ctx := context.Background()

	e, err := svc.Create(ctx, alice, testEventInput(true))
	require.NoError(t, err)

	title := "Renamed"
	_, err = svc.Update(ctx, bob, e.ID, UpdateEventInput{Title: &title})
	assert.ErrorIs(t, err, ErrForbidden)

	updated, err := svc.Update(ctx, alice, e.ID, UpdateEventInput{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)

	_, err = svc.Update(ctx, alice, "e-missing", UpdateEventInput{Title: &title})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestEventDelete_OwnerOnly(t *testing.T) {
	svc, alice, bob := newEventFixture(t)
	ctx := context.Background()

	e, err := svc.Create(ctx, alice, testEventInput(true))
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, bob, e.ID), ErrForbidden)
	require.NoError(t, svc.Delete(ctx, alice, e.ID))

	_, err = svc.Get(ctx, alice, e.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
