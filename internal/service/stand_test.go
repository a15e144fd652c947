package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbls/standconsole/internal/domain"
)

func TestStandService_CreateStand(t *testing.T) {
	store := newMemStore()
	svc := NewStandService(store)

	created, err := svc.CreateStand(context.Background(), " Cro 2 ", "CROATAN", "on")
	require.NoError(t, err)
	assert.Equal(t, "Cro 2", created.Label)
	assert.True(t, created.NeverSupportsAS)
	assert.False(t, created.SupportsAS)
}

func TestStandService_CreateStandValidationDoesNotReachStorage(t *testing.T) {
	store := newMemStore()
	svc := NewStandService(store)

	_, err := svc.CreateStand(context.Background(), "x", "NOT_A_ZONE", false)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Zero(t, store.calls)
}

func TestStandService_CreateStandDuplicateLabel(t *testing.T) {
	store := newMemStore(domain.Stand{Label: "16", Zone: domain.ZoneResortMiddle})
	svc := NewStandService(store)

	_, err := svc.CreateStand(context.Background(), "16 ", "RESORT_NORTH", true)
	assert.ErrorIs(t, err, ErrStandLabelExists)

	var verr *domain.ValidationError
	assert.False(t, errors.As(err, &verr))
}

func TestStandService_ListStands(t *testing.T) {
	store := newMemStore(baselineStands()...)
	svc := NewStandService(store)

	stands, err := svc.ListStands(context.Background())
	require.NoError(t, err)
	assert.Len(t, stands, 4)
}

func TestStandService_SetSupportsAS(t *testing.T) {
	store := newMemStore(baselineStands()...)
	svc := NewStandService(store)
	ctx := context.Background()

	updated, err := svc.SetSupportsAS(ctx, 2, "false")
	require.NoError(t, err)
	assert.False(t, updated.SupportsAS)

	_, err = svc.SetSupportsAS(ctx, 1, true)
	assert.ErrorIs(t, err, ErrStandLocked)
	locked, err := store.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.False(t, locked.SupportsAS)

	_, err = svc.SetSupportsAS(ctx, 42, true)
	assert.ErrorIs(t, err, ErrStandNotFound)
}

func TestStandService_SetSupportsASReturnsStoredRow(t *testing.T) {
	store := newMemStore(baselineStands()...)
	svc := NewStandService(store)
	ctx := context.Background()

	updated, err := svc.SetSupportsAS(ctx, 3, "on")
	require.NoError(t, err)

	stored, err := store.FindByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, stored, updated)
	assert.False(t, updated.UpdatedAt.IsZero())
}

func TestStandService_SetDoubleStaffedIgnoresLock(t *testing.T) {
	store := newMemStore(baselineStands()...)
	svc := NewStandService(store)
	ctx := context.Background()

	updated, err := svc.SetDoubleStaffed(ctx, 4, "on")
	require.NoError(t, err)
	assert.True(t, updated.DoubleStaffed)
	assert.True(t, updated.NeverSupportsAS)

	_, err = svc.SetDoubleStaffed(ctx, 42, true)
	assert.ErrorIs(t, err, ErrStandNotFound)
}
