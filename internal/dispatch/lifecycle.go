package dispatch

import (
	"errors"
	"fmt"
	"time"

	"github.com/oseikuffour/incident_dispatch_system/internal/models"
)

// ErrInvalidTransition marks a stale or invalid lifecycle transition request.
// The assignment is left untouched when it is returned.
var ErrInvalidTransition = errors.New("stale or invalid assignment transition")

// transitions is the assignment lifecycle graph. Cancellation from any
// non-terminal state is handled separately in CanTransition.
var transitions = map[models.AssignmentStatus][]models.AssignmentStatus{
	models.AssignmentAssigned:     {models.AssignmentAcknowledged, models.AssignmentInProgress},
	models.AssignmentAcknowledged: {models.AssignmentInProgress},
	models.AssignmentInProgress:   {models.AssignmentCompleted},
}

// CanTransition reports whether the lifecycle graph allows from -> to
func CanTransition(from, to models.AssignmentStatus) bool {
	if to == models.AssignmentCancelled {
		return !from.Terminal()
	}
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ApplyTransition moves the assignment to the requested status, stamping the
// acknowledgment or completion timestamp as a side effect. Notes may
// accompany any transition; feedback is only accepted at completion, and a
// cancellation must carry a reason in notes. On any rejection the assignment
// is left unchanged.
func ApplyTransition(a *models.Assignment, to models.AssignmentStatus, notes, feedback string, now time.Time) error {
	if !CanTransition(a.Status, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, a.Status, to)
	}
	if feedback != "" && to != models.AssignmentCompleted {
		return fmt.Errorf("%w: feedback only allowed on completion", ErrInvalidTransition)
	}
	if to == models.AssignmentCancelled && notes == "" {
		return fmt.Errorf("%w: cancellation requires a reason in notes", ErrInvalidTransition)
	}

	a.Status = to
	switch to {
	case models.AssignmentAcknowledged:
		a.AcknowledgedAt = &now
	case models.AssignmentCompleted:
		a.CompletedAt = &now
	}
	if notes != "" {
		a.Notes = notes
	}
	if feedback != "" {
		a.Feedback = feedback
	}
	return nil
}
