package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/event-planner-api/internal/domain/entity"
	"github.com/oksasatya/event-planner-api/internal/infrastructure/memory"
)

func newRSVPFixture(t *testing.T) (*RSVPService, *EventService, *entity.User, *entity.User) {
	t.Helper()
	events := memory.NewEventRepository()
	eventSvc := NewEventService(events, nil)
	rsvpSvc := NewRSVPService(memory.NewRSVPRepository(), events, nil)
	alice := &entity.User{ID: "u-alice", Email: "alice@example.com", IsActive: true}
	bob := &entity.User{ID: "u-bob", Email: "bob@example.com", IsActive: true}
	return rsvpSvc, eventSvc, alice, bob
}

func TestRSVPCreate_DefaultsToMaybe(t *testing.T) {
	svc, events, alice, _ := newRSVPFixture(t)
	ctx := context.Background()

	e, err := events.Create(ctx, alice, testEventInput(true))
	require.NoError(t, err)

	r, err := svc.Create(ctx, alice, e.ID, "")
	require.NoError(t, err)
	assert.Equal(t, entity.RSVPMaybe, r.Status)
}

func TestRSVPCreate_DoubleRSVPConflict(t *testing.T) {
	svc, events, alice, _ := newRSVPFixture(t)
	ctx := context.Background()

	e, err := events.Create(ctx, alice, testEventInput(true))
	require.NoError(t, err)

	first, err := svc.Create(ctx, alice, e.ID, entity.RSVPGoing)
	require.NoError(t, err)

	_, err = svc.Create(ctx, alice, e.ID, entity.RSVPGoing)
	assert.ErrorIs(t, err, ErrConflict)

	// still exactly one record
	rs, err := svc.ListByEvent(ctx, alice, e.ID, "")
	require.NoError(t, err)
	require.Len(t, rs, 1)
	assert.Equal(t, first.ID, rs[0].ID)
}

func TestRSVPCreate_InvalidStatus(t *testing.T) {
	svc, events, alice, _ := newRSVPFixture(t)
	ctx := context.Background()

	e, err := events.Create(ctx, alice, testEventInput(true))
	require.NoError(t, err)

	_, err = svc.Create(ctx, alice, e.ID, "definitely")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestRSVPUpdate_HolderOnly(t *testing.T) {
	svc, events, alice, bob := newRSVPFixture(t)
	ctx := context.Background()

	e, err := events.Create(ctx, alice, testEventInput(true))
	require.NoError(t, err)

	r, err := svc.Create(ctx, alice, e.ID, entity.RSVPGoing)
	require.NoError(t, err)

	// holder may change status
	updated, err := svc.Update(ctx, alice, r.ID, entity.RSVPMaybe)
	require.NoError(t, err)
	assert.Equal(t, entity.RSVPMaybe, updated.Status)

	// someone else may not
	_, err = svc.Update(ctx, bob, r.ID, entity.RSVPNotGoing)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Update(ctx, alice, "r-missing", entity.RSVPGoing)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRSVPListByEvent_FollowsEventVisibility(t *testing.T) {
	svc, events, alice, bob := newRSVPFixture(t)
	ctx := context.Background()

	private, err := events.Create(ctx, alice, testEventInput(false))
	require.NoError(t, err)
	_, err = svc.Create(ctx, alice, private.ID, entity.RSVPGoing)
	require.NoError(t, err)

	_, err = svc.ListByEvent(ctx, bob, private.ID, "")
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.ListByEvent(ctx, bob, "e-missing", "")
	assert.ErrorIs(t, err, ErrNotFound)

	rs, err := svc.ListByEvent(ctx, alice, private.ID, "")
	require.NoError(t, err)
	assert.Len(t, rs, 1)
}

func TestRSVPListByEvent_StatusFilter(t *testing.T) {
	svc, events, alice, bob := newRSVPFixture(t)
	ctx := context.Background()

	e, err := events.Create(ctx, alice, testEventInput(true))
	require.NoError(t, err)

	_, err = svc.Create(ctx, alice, e.ID, entity.RSVPGoing)
	require.NoError(t, err)
	_, err = svc.Create(ctx, bob, e.ID, entity.RSVPMaybe)
	require.NoError(t, err)

	going, err := svc.ListByEvent(ctx, alice, e.ID, entity.RSVPGoing)
	require.NoError(t, err)
	require.Len(t, going, 1)
	assert.Equal(t, alice.ID, going[0].UserID)
}

func TestRSVPListMine(t *testing.T) {
	svc, events, alice, bob := newRSVPFixture(t)
	ctx := context.Background()

	e1, err := events.Create(ctx, alice, testEventInput(true))
	require.NoError(t, err)
	e2, err := events.Create(ctx, bob, testEventInput(true))
	require.NoError(t, err)

	_, err = svc.Create(ctx, alice, e1.ID, entity.RSVPGoing)
	require.NoError(t, err)
	_, err = svc.Create(ctx, alice, e2.ID, entity.RSVPMaybe)
	require.NoError(t, err)
	_, err = svc.Create(ctx, bob, e2.ID, entity.RSVPGoing)
	require.NoError(t, err)

	mine, err := svc.ListMine(ctx, alice)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}
