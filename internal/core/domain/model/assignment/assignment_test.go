package assignment_test

import (
	"testing"
	"time"

	"laundry/internal/core/domain/model/assignment"
	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dispatchedAt = time.Date(2026, 10, 16, 9, 30, 0, 0, time.UTC)

func newAssignment(t *testing.T, kind assignment.Kind) *assignment.DriverAssignment {
	t.Helper()

	a, err := assignment.NewAssignment(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kind, "gate code 4412", dispatchedAt)
	require.NoError(t, err)
	return a
}

func restoreAt(t *testing.T, kind assignment.Kind, status assignment.Status) *assignment.DriverAssignment {
	t.Helper()

	a, err := assignment.RestoreAssignment(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		kind, status, "", nil, dispatchedAt, dispatchedAt,
	)
	require.NoError(t, err)
	return a
}

func evidence() *assignment.Evidence {
	return &assignment.Evidence{URL: "https://photos.example.com/a1.jpg", Description: "bag at door"}
}

func TestNewAssignment(t *testing.T) {
	t.Run("should start assigned and active", func(t *testing.T) {
		a := newAssignment(t, assignment.Pickup)

		require.NoError(t, a.Validate())
		assert.Equal(t, assignment.Assigned, a.Status())
		assert.Equal(t, assignment.Pickup, a.Kind())
		assert.Equal(t, "gate code 4412", a.Notes())
		assert.True(t, a.IsActive())
		assert.Empty(t, a.Photos())
		assert.Equal(t, dispatchedAt, a.CreatedAt())
	})

	t.Run("should collect invalid fields", func(t *testing.T) {
		a, err := assignment.NewAssignment(kernel.UUID{}, kernel.UUID{}, kernel.UUID{}, assignment.UnknownKind, "", dispatchedAt)

		require.Error(t, err)
		assert.Nil(t, a)
		assert.Contains(t, err.Error(), "order id")
		assert.Contains(t, err.Error(), "driver id")
		assert.Contains(t, err.Error(), "assignment kind")
	})

	t.Run("should reject oversized notes", func(t *testing.T) {
		notes := make([]rune, 1001)
		for i := range notes {
			notes[i] = 'x'
		}

		_, err := assignment.NewAssignment(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), assignment.Delivery, string(notes), dispatchedAt)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		assert.ErrorIs(t, (&assignment.DriverAssignment{}).Validate(), assignment.ErrAssignmentIsNotConstructed)
	})
}

func TestDriverAssignment_IsAssignedTo(t *testing.T) {
	driverID := kernel.NewUUID()
	a, err := assignment.NewAssignment(kernel.NewUUID(), kernel.NewUUID(), driverID, assignment.Pickup, "", dispatchedAt)
	require.NoError(t, err)

	assert.True(t, a.IsAssignedTo(driverID))
	assert.False(t, a.IsAssignedTo(kernel.NewUUID()))
}

func TestDriverAssignment_Transition(t *testing.T) {
	later := dispatchedAt.Add(30 * time.Minute)

	t.Run("should start without photo", func(t *testing.T) {
		a := newAssignment(t, assignment.Pickup)

		photo, err := a.Transition(assignment.InProgress, nil, later)

		require.NoError(t, err)
		assert.Nil(t, photo)
		assert.Equal(t, assignment.InProgress, a.Status())
		assert.Equal(t, later, a.UpdatedAt())
	})

	t.Run("should require photo for completion", func(t *testing.T) {
		a := restoreAt(t, assignment.Pickup, assignment.InProgress)

		photo, err := a.Transition(assignment.Completed, nil, later)

		require.ErrorIs(t, err, errs.ErrPhotoRequired)
		assert.Contains(t, err.Error(), "pickup_completed_photo")
		assert.Nil(t, photo)
		assert.Equal(t, assignment.InProgress, a.Status())
	})

	t.Run("should treat blank url as missing photo", func(t *testing.T) {
		a := restoreAt(t, assignment.Delivery, assignment.InProgress)

		_, err := a.Transition(assignment.Failed, &assignment.Evidence{URL: "  "}, later)

		require.ErrorIs(t, err, errs.ErrPhotoRequired)
	})

	t.Run("should report photo required for every gated target without evidence", func(t *testing.T) {
		for _, status := range allStatuses {
			for _, kind := range []assignment.Kind{assignment.Pickup, assignment.Delivery} {
				a := restoreAt(t, kind, status)

				_, err := a.Transition(assignment.Completed, nil, later)

				require.ErrorIs(t, err, errs.ErrPhotoRequired, kind.String()+"/"+status.String())
			}
		}
	})

	t.Run("should create typed photo with evidence", func(t *testing.T) {
		for _, kind := range []assignment.Kind{assignment.Pickup, assignment.Delivery} {
			a := restoreAt(t, kind, assignment.InProgress)

			photo, err := a.Transition(assignment.Completed, evidence(), later)

			require.NoError(t, err)
			require.NotNil(t, photo)
			assert.Equal(t, assignment.PhotoType(kind.String()+"_completed_photo"), photo.Type())
			assert.True(t, photo.AssignmentID().IsEqual(a.ID()))
			assert.Equal(t, "https://photos.example.com/a1.jpg", photo.URL())
			assert.Equal(t, "bag at door", photo.Description())
			assert.Equal(t, later, photo.TakenAt())
			assert.Len(t, a.Photos(), 1)
			assert.Equal(t, assignment.Completed, a.Status())
		}
	})

	t.Run("should drop off completed pickup", func(t *testing.T) {
		a := restoreAt(t, assignment.Pickup, assignment.Completed)

		photo, err := a.Transition(assignment.DroppedOff, evidence(), later)

		require.NoError(t, err)
		assert.Equal(t, assignment.PhotoType("pickup_dropped_off_photo"), photo.Type())
		assert.False(t, a.IsActive())
	})

	t.Run("should reject drop off for delivery", func(t *testing.T) {
		a := restoreAt(t, assignment.Delivery, assignment.Completed)

		_, err := a.Transition(assignment.DroppedOff, evidence(), later)

		require.ErrorIs(t, err, errs.ErrOrderAlreadyTerminal)
	})

	t.Run("should reject skipped step", func(t *testing.T) {
		a := newAssignment(t, assignment.Pickup)

		_, err := a.Transition(assignment.Completed, evidence(), later)

		require.ErrorIs(t, err, errs.ErrInvalidStepOrder)
		assert.Equal(t, assignment.Assigned, a.Status())
		assert.Empty(t, a.Photos())
	})

	t.Run("should never resurrect failed assignment", func(t *testing.T) {
		a := restoreAt(t, assignment.Pickup, assignment.Failed)

		_, err := a.Transition(assignment.InProgress, nil, later)

		require.ErrorIs(t, err, errs.ErrOrderAlreadyTerminal)
		assert.Contains(t, err.Error(), "assignment")
		assert.False(t, a.IsActive())
	})

	t.Run("should reject non-web photo url", func(t *testing.T) {
		a := restoreAt(t, assignment.Pickup, assignment.InProgress)

		_, err := a.Transition(assignment.Failed, &assignment.Evidence{URL: "ftp://photos.example.com/x.jpg"}, later)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, assignment.InProgress, a.Status())
	})
}

func TestNewPhoto(t *testing.T) {
	t.Run("should reject relative url", func(t *testing.T) {
		_, err := assignment.NewPhoto(kernel.NewUUID(), kernel.NewUUID(), "pickup_failed_photo", "photos/x.jpg", "", dispatchedAt)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should collect missing fields", func(t *testing.T) {
		_, err := assignment.NewPhoto(kernel.UUID{}, kernel.UUID{}, "", "", "", time.Time{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "photo type")
		assert.Contains(t, err.Error(), "photo url")
		assert.Contains(t, err.Error(), "taken at")
	})
}
