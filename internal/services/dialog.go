package services

import "errors"

// DialogState tracks one dialog instance through its lifecycle:
// Closed → Open (editing) → Submitting → Closed on success, or back to
// Open with the draft intact on failure.
type DialogState int

const (
	DialogClosed DialogState = iota
	DialogOpen
	DialogSubmitting
)

var (
	// ErrNoValidItems rejects a draft list with no submittable items
	// before any network call fires.
	ErrNoValidItems = errors.New("at least one valid item is required")

	// ErrMissingFields rejects a product form with an empty field.
	ErrMissingFields = errors.New("all fields are required")

	// ErrDialogClosed is returned when a submission is attempted with no
	// open dialog.
	ErrDialogClosed = errors.New("no dialog is open")

	// ErrDeclined is returned when the user rejects a delete
	// confirmation. No request is issued.
	ErrDeclined = errors.New("deletion cancelled")
)

// Confirmer asks the user to confirm a destructive action. Deletes only
// fire when it returns true.
type Confirmer func(prompt string) bool
