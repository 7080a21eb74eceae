package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/tablekit/restaurant-console/internal/core/domain"
	"github.com/tablekit/restaurant-console/internal/core/ports"
	"github.com/tablekit/restaurant-console/internal/pkg/metrics"
)

// Confirmer asks the operator to approve a destructive action.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

// Modal modes.
const (
	ModeCreate = "create"
	ModeEdit   = "edit"
)

// Modal is the state of the create/edit form.
type Modal[F any] struct {
	Open      bool   `json:"open"`
	Mode      string `json:"mode,omitempty"`
	EditingID int64  `json:"editing_id,omitempty"`
	Form      F      `json:"form"`
}

// Snapshot is what a screen renders: the last loaded page and the modal.
type Snapshot[T any, F any] struct {
	Items []T      `json:"items"`
	Modal Modal[F] `json:"modal"`
}

// Workflow drives a list/edit screen over a remote collection.
//
// The server copy is authoritative: after every successful mutation the list
// is refetched and replaced wholesale, never patched from the mutation
// response. Failed loads keep the previous list. Failed submits keep the
// modal open with the buffer as typed. After Close, late results are
// dropped and no follow-up load is issued.
type Workflow[T any, F any] struct {
	name string
	res  ports.Resource[T, F]
	log  zerolog.Logger

	mu        sync.Mutex
	items     []T
	modalOpen bool
	editing   *T
	form      F
	closed    bool
	// modalGen changes whenever the modal is opened or cancelled, so a
	// submit that resolves late only closes the modal it was sent from.
	modalGen uint64
}

// NewWorkflow returns a workflow for the resource called name (used in logs
// and metrics).
func NewWorkflow[T any, F any](name string, res ports.Resource[T, F], log zerolog.Logger) *Workflow[T, F] {
	return &Workflow[T, F]{
		name:  name,
		res:   res,
		log:   log.With().Str("resource", name).Logger(),
		items: []T{},
		form:  res.EmptyForm(),
	}
}

// Load fetches the first page and replaces the list with it.
func (w *Workflow[T, F]) Load(ctx context.Context) {
	if !w.Alive() {
		return
	}

	items, err := w.res.List(ctx)
	if err != nil {
		metrics.WorkflowLoadsTotal.WithLabelValues(w.name, "error").Inc()
		w.log.Error().Err(err).Msg("failed to load collection")
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		metrics.WorkflowLoadsTotal.WithLabelValues(w.name, "discarded").Inc()
		return
	}
	if items == nil {
		items = []T{}
	}
	w.items = items
	metrics.WorkflowLoadsTotal.WithLabelValues(w.name, "ok").Inc()
}

// OpenCreate opens the modal in create mode with an empty buffer.
func (w *Workflow[T, F]) OpenCreate() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.editing = nil
	w.form = w.res.EmptyForm()
	w.modalOpen = true
	w.modalGen++
}

// OpenEdit opens the modal in edit mode with a copy of item's fields.
func (w *Workflow[T, F]) OpenEdit(item T) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.editing = &item
	w.form = w.res.FormFrom(item)
	w.modalOpen = true
	w.modalGen++
}

// OpenEditByID opens edit mode for the listed record with the given id.
func (w *Workflow[T, F]) OpenEditByID(id int64) error {
	w.mu.Lock()
	var found *T
	for i := range w.items {
		if w.res.ID(w.items[i]) == id {
			item := w.items[i]
			found = &item
			break
		}
	}
	w.mu.Unlock()

	if found == nil {
		return domain.ErrNoRecord
	}
	w.OpenEdit(*found)
	return nil
}

// UpdateForm replaces the buffer while the modal is open, as the operator
// types. It does not contact the backend.
func (w *Workflow[T, F]) UpdateForm(form F) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.modalOpen {
		w.form = form
	}
}

// Cancel closes the modal and leaves edit mode.
func (w *Workflow[T, F]) Cancel() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.modalOpen = false
	w.editing = nil
	w.modalGen++
}

// Submit sends form as an update of the record being edited, or as a create
// when in create mode. On success the modal closes and the list is reloaded.
// On failure the error is returned for the operator and the modal stays open
// holding form. A modal reopened while the save was in flight stays open.
func (w *Workflow[T, F]) Submit(ctx context.Context, form F) error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return domain.ErrNotMounted
	}
	if !w.modalOpen {
		w.mu.Unlock()
		return domain.ErrNoFormOpen
	}
	w.form = form
	gen := w.modalGen
	var id int64
	editing := w.editing != nil
	if editing {
		id = w.res.ID(*w.editing)
	}
	w.mu.Unlock()

	op := ModeCreate
	var err error
	if editing {
		op = "update"
		err = w.res.Update(ctx, id, form)
	} else {
		err = w.res.Create(ctx, form)
	}
	if err != nil {
		metrics.WorkflowMutationsTotal.WithLabelValues(w.name, op, "error").Inc()
		w.log.Warn().Err(err).Str("op", op).Int64("id", id).Msg("save rejected")
		return err
	}
	metrics.WorkflowMutationsTotal.WithLabelValues(w.name, op, "ok").Inc()

	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	if w.modalGen == gen {
		w.modalOpen = false
		w.editing = nil
	}
	w.mu.Unlock()

	w.Load(ctx)
	return nil
}

// Remove deletes the record after confirm approves it, then reloads. Without
// approval nothing is sent and ErrConfirmationRequired is returned. A failed
// delete leaves the list untouched.
func (w *Workflow[T, F]) Remove(ctx context.Context, id int64, confirm Confirmer) error {
	if confirm == nil || !confirm.Confirm("Are you sure you want to delete this record?") {
		return domain.ErrConfirmationRequired
	}
	if !w.Alive() {
		return domain.ErrNotMounted
	}

	if err := w.res.Delete(ctx, id); err != nil {
		metrics.WorkflowMutationsTotal.WithLabelValues(w.name, "delete", "error").Inc()
		w.log.Warn().Err(err).Int64("id", id).Msg("delete rejected")
		return err
	}
	metrics.WorkflowMutationsTotal.WithLabelValues(w.name, "delete", "ok").Inc()

	w.Load(ctx)
	return nil
}

// Snapshot returns a copy of the current list and modal.
func (w *Workflow[T, F]) Snapshot() Snapshot[T, F] {
	w.mu.Lock()
	defer w.mu.Unlock()

	items := make([]T, len(w.items))
	copy(items, w.items)
	modal := Modal[F]{Open: w.modalOpen, Form: w.form}
	if w.modalOpen {
		modal.Mode = ModeCreate
		if w.editing != nil {
			modal.Mode = ModeEdit
			modal.EditingID = w.res.ID(*w.editing)
		}
	}
	return Snapshot[T, F]{Items: items, Modal: modal}
}

// Close marks the screen as unmounted.
func (w *Workflow[T, F]) Close() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
}

// Alive reports whether the screen is still mounted.
func (w *Workflow[T, F]) Alive() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return !w.closed
}
