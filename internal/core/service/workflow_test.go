package service

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tablekit/restaurant-console/internal/core/domain"
)

type item struct {
	ID   int64
	Name string
}

type itemForm struct {
	Name string
}

type stubResource struct {
	mu sync.Mutex

	items   []item
	nextID  int64
	listErr error
	saveErr error
	delErr  error

	// onList runs before List returns; used to unmount mid-flight.
	onList func()
	// onSave runs before Create or Update returns.
	onSave func()

	listCalls   int
	createCalls int
	updateCalls int
	deleteCalls int
	lastUpdate  int64
	lastForm    itemForm
}

func (r *stubResource) List(context.Context) ([]item, error) {
	r.mu.Lock()
	r.listCalls++
	hook := r.onList
	err := r.listErr
	out := append([]item(nil), r.items...)
	r.mu.Unlock()
	if hook != nil {
		hook()
	}
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *stubResource) Create(_ context.Context, f itemForm) error {
	r.runSaveHook()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.createCalls++
	r.lastForm = f
	if r.saveErr != nil {
		return r.saveErr
	}
	r.nextID++
	r.items = append(r.items, item{ID: r.nextID, Name: f.Name})
	return nil
}

func (r *stubResource) Update(_ context.Context, id int64, f itemForm) error {
	r.runSaveHook()
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updateCalls++
	r.lastUpdate = id
	r.lastForm = f
	if r.saveErr != nil {
		return r.saveErr
	}
	for i := range r.items {
		if r.items[i].ID == id {
			r.items[i].Name = f.Name
		}
	}
	return nil
}

func (r *stubResource) runSaveHook() {
	r.mu.Lock()
	hook := r.onSave
	r.mu.Unlock()
	if hook != nil {
		hook()
	}
}

func (r *stubResource) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.deleteCalls++
	if r.delErr != nil {
		return r.delErr
	}
	kept := r.items[:0]
	for _, it := range r.items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	r.items = kept
	return nil
}

func (r *stubResource) ID(it item) int64          { return it.ID }
func (r *stubResource) EmptyForm() itemForm       { return itemForm{} }
func (r *stubResource) FormFrom(it item) itemForm { return itemForm{Name: it.Name} }

func newTestWorkflow(res *stubResource) *Workflow[item, itemForm] {
	return NewWorkflow[item, itemForm]("items", res, zerolog.Nop())
}

var (
	approve = ConfirmFunc(func(string) bool { return true })
	decline = ConfirmFunc(func(string) bool { return false })
)

func TestWorkflow_LoadReplacesList(t *testing.T) {
	res := &stubResource{items: []item{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}, nextID: 2}
	wf := newTestWorkflow(res)

	wf.Load(context.Background())
	if n := len(wf.Snapshot().Items); n != 2 {
		t.Fatalf("expected 2 items, got %d", n)
	}

	res.items = []item{{ID: 3, Name: "c"}}
	wf.Load(context.Background())
	if got := wf.Snapshot().Items; !reflect.DeepEqual(got, []item{{ID: 3, Name: "c"}}) {
		t.Fatalf("list not replaced: %+v", got)
	}
}

func TestWorkflow_LoadFailureKeepsPreviousList(t *testing.T) {
	res := &stubResource{items: []item{{ID: 1, Name: "a"}}}
	wf := newTestWorkflow(res)
	wf.Load(context.Background())

	res.listErr = domain.ErrUnreachable
	wf.Load(context.Background())

	snap := wf.Snapshot()
	if !reflect.DeepEqual(snap.Items, []item{{ID: 1, Name: "a"}}) {
		t.Fatalf("expected previous list, got %+v", snap.Items)
	}
	if snap.Modal.Open {
		t.Fatalf("a failed load must not open the modal")
	}
}

func TestWorkflow_CreateThenRefetch(t *testing.T) {
	res := &stubResource{}
	wf := newTestWorkflow(res)
	wf.Load(context.Background())

	wf.OpenCreate()
	snap := wf.Snapshot()
	if !snap.Modal.Open || snap.Modal.Mode != ModeCreate || snap.Modal.Form != (itemForm{}) {
		t.Fatalf("unexpected modal after OpenCreate: %+v", snap.Modal)
	}

	if err := wf.Submit(context.Background(), itemForm{Name: "Taco Place"}); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	if res.createCalls != 1 || res.updateCalls != 0 || res.listCalls != 2 {
		t.Fatalf("unexpected calls: create=%d update=%d list=%d", res.createCalls, res.updateCalls, res.listCalls)
	}
	snap = wf.Snapshot()
	if snap.Modal.Open {
		t.Fatalf("expected modal closed after save")
	}
	if !reflect.DeepEqual(snap.Items, []item{{ID: 1, Name: "Taco Place"}}) {
		t.Fatalf("expected refetched list, got %+v", snap.Items)
	}
}

func TestWorkflow_EditSendsUpdateForEditingRecord(t *testing.T) {
	res := &stubResource{items: []item{{ID: 5, Name: "old"}}, nextID: 5}
	wf := newTestWorkflow(res)
	wf.Load(context.Background())

	if err := wf.OpenEditByID(5); err != nil {
		t.Fatalf("OpenEditByID returned error: %v", err)
	}
	snap := wf.Snapshot()
	if snap.Modal.Mode != ModeEdit || snap.Modal.EditingID != 5 || snap.Modal.Form.Name != "old" {
		t.Fatalf("unexpected modal after OpenEdit: %+v", snap.Modal)
	}

	if err := wf.Submit(context.Background(), itemForm{Name: "new"}); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if res.updateCalls != 1 || res.lastUpdate != 5 || res.createCalls != 0 {
		t.Fatalf("expected one update of 5, got update=%d id=%d create=%d", res.updateCalls, res.lastUpdate, res.createCalls)
	}
	if name := wf.Snapshot().Items[0].Name; name != "new" {
		t.Fatalf("expected refetched name, got %q", name)
	}
}

func TestWorkflow_OpenEditUnknownRecord(t *testing.T) {
	wf := newTestWorkflow(&stubResource{})

	if err := wf.OpenEditByID(42); !errors.Is(err, domain.ErrNoRecord) {
		t.Fatalf("expected ErrNoRecord, got %v", err)
	}
	if wf.Snapshot().Modal.Open {
		t.Fatalf("modal should stay closed")
	}
}

func TestWorkflow_SubmitFailureKeepsModalAndBuffer(t *testing.T) {
	res := &stubResource{saveErr: domain.NewAPIError(400, "Bad Request", "name is required")}
	wf := newTestWorkflow(res)
	wf.Load(context.Background())
	wf.OpenCreate()

	err := wf.Submit(context.Background(), itemForm{Name: "typed"})
	if err == nil || err.Error() != "name is required" {
		t.Fatalf("expected backend message, got %v", err)
	}

	snap := wf.Snapshot()
	if !snap.Modal.Open || snap.Modal.Form.Name != "typed" {
		t.Fatalf("expected modal open with typed buffer, got %+v", snap.Modal)
	}
	if res.listCalls != 1 {
		t.Fatalf("no refetch expected after a failed save, got %d loads", res.listCalls)
	}
}

func TestWorkflow_SubmitKeepsFormReopenedInFlight(t *testing.T) {
	res := &stubResource{items: []item{{ID: 1, Name: "a"}}, nextID: 1}
	wf := newTestWorkflow(res)
	wf.Load(context.Background())
	wf.OpenCreate()

	res.onSave = func() {
		wf.Cancel()
		wf.OpenEdit(item{ID: 1, Name: "a"})
	}
	if err := wf.Submit(context.Background(), itemForm{Name: "b"}); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	snap := wf.Snapshot()
	if !snap.Modal.Open || snap.Modal.Mode != ModeEdit || snap.Modal.EditingID != 1 {
		t.Fatalf("reopened form should survive the earlier save, got %+v", snap.Modal)
	}
	if res.createCalls != 1 || res.listCalls != 2 {
		t.Fatalf("expected create and refetch, got create=%d list=%d", res.createCalls, res.listCalls)
	}
}

func TestWorkflow_UpdateFormOnlyWhileOpen(t *testing.T) {
	wf := newTestWorkflow(&stubResource{})

	wf.UpdateForm(itemForm{Name: "ignored"})
	if got := wf.Snapshot().Modal.Form; got != (itemForm{}) {
		t.Fatalf("buffer changed while closed: %+v", got)
	}

	wf.OpenCreate()
	wf.UpdateForm(itemForm{Name: "typing"})
	if got := wf.Snapshot().Modal.Form; got.Name != "typing" {
		t.Fatalf("expected typed buffer, got %+v", got)
	}
}

func TestWorkflow_SubmitWithoutOpenForm(t *testing.T) {
	res := &stubResource{}
	wf := newTestWorkflow(res)

	if err := wf.Submit(context.Background(), itemForm{Name: "x"}); !errors.Is(err, domain.ErrNoFormOpen) {
		t.Fatalf("expected ErrNoFormOpen, got %v", err)
	}
	if res.createCalls != 0 {
		t.Fatalf("nothing should be sent, got %d creates", res.createCalls)
	}
}

func TestWorkflow_CancelLeavesEditMode(t *testing.T) {
	res := &stubResource{items: []item{{ID: 1, Name: "a"}}}
	wf := newTestWorkflow(res)
	wf.Load(context.Background())
	wf.OpenEdit(res.items[0])

	wf.Cancel()
	if wf.Snapshot().Modal.Open {
		t.Fatalf("expected modal closed after cancel")
	}

	wf.OpenCreate()
	if err := wf.Submit(context.Background(), itemForm{Name: "b"}); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if res.createCalls != 1 || res.updateCalls != 0 {
		t.Fatalf("expected a create, got create=%d update=%d", res.createCalls, res.updateCalls)
	}
}

func TestWorkflow_RemoveRequiresConfirmation(t *testing.T) {
	res := &stubResource{items: []item{{ID: 1, Name: "a"}}}
	wf := newTestWorkflow(res)
	wf.Load(context.Background())

	if err := wf.Remove(context.Background(), 1, decline); !errors.Is(err, domain.ErrConfirmationRequired) {
		t.Fatalf("declined: expected ErrConfirmationRequired, got %v", err)
	}
	if err := wf.Remove(context.Background(), 1, nil); !errors.Is(err, domain.ErrConfirmationRequired) {
		t.Fatalf("nil confirmer: expected ErrConfirmationRequired, got %v", err)
	}
	if res.deleteCalls != 0 || res.listCalls != 1 {
		t.Fatalf("nothing should be sent, got delete=%d list=%d", res.deleteCalls, res.listCalls)
	}
	if n := len(wf.Snapshot().Items); n != 1 {
		t.Fatalf("list changed: %d items", n)
	}
}

func TestWorkflow_RemoveConfirmedRefetches(t *testing.T) {
	res := &stubResource{items: []item{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}}
	wf := newTestWorkflow(res)
	wf.Load(context.Background())

	if err := wf.Remove(context.Background(), 1, approve); err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if res.deleteCalls != 1 || res.listCalls != 2 {
		t.Fatalf("expected delete and refetch, got delete=%d list=%d", res.deleteCalls, res.listCalls)
	}
	if got := wf.Snapshot().Items; !reflect.DeepEqual(got, []item{{ID: 2, Name: "b"}}) {
		t.Fatalf("unexpected list %+v", got)
	}
}

func TestWorkflow_RemoveFailureKeepsList(t *testing.T) {
	res := &stubResource{items: []item{{ID: 1, Name: "a"}}, delErr: errors.New("restaurant not found")}
	wf := newTestWorkflow(res)
	wf.Load(context.Background())

	err := wf.Remove(context.Background(), 1, approve)
	if err == nil || err.Error() != "restaurant not found" {
		t.Fatalf("expected backend message, got %v", err)
	}
	if res.listCalls != 1 || len(wf.Snapshot().Items) != 1 {
		t.Fatalf("list should be untouched, loads=%d", res.listCalls)
	}
}

func TestWorkflow_LateLoadAfterCloseIsDiscarded(t *testing.T) {
	res := &stubResource{items: []item{{ID: 1, Name: "a"}}}
	wf := newTestWorkflow(res)
	res.onList = wf.Close

	wf.Load(context.Background())

	if wf.Alive() {
		t.Fatalf("expected workflow closed")
	}
	if n := len(wf.Snapshot().Items); n != 0 {
		t.Fatalf("late load applied: %d items", n)
	}
}

func TestWorkflow_NoFollowUpLoadAfterClose(t *testing.T) {
	res := &stubResource{}
	wf := newTestWorkflow(res)
	wf.OpenCreate()
	wf.Close()

	if err := wf.Submit(context.Background(), itemForm{Name: "x"}); !errors.Is(err, domain.ErrNotMounted) {
		t.Fatalf("Submit: expected ErrNotMounted, got %v", err)
	}
	if err := wf.Remove(context.Background(), 1, approve); !errors.Is(err, domain.ErrNotMounted) {
		t.Fatalf("Remove: expected ErrNotMounted, got %v", err)
	}
	wf.Load(context.Background())
	if res.listCalls != 0 || res.createCalls != 0 || res.deleteCalls != 0 {
		t.Fatalf("expected no calls, got list=%d create=%d delete=%d", res.listCalls, res.createCalls, res.deleteCalls)
	}
}

func TestRestaurantResource(t *testing.T) {
	store := newStubStore("A", "")
	backend := newStubBackend(store)
	backend.restaurants = []domain.Restaurant{{ID: 9, Name: "Pho", Address: strPtr("Main St"), IsActive: false}}
	res := NewRestaurantResource(backend)

	items, err := res.List(context.Background())
	if err != nil || len(items) != 1 {
		t.Fatalf("List: items=%+v err=%v", items, err)
	}
	if res.ID(items[0]) != 9 {
		t.Fatalf("unexpected id %d", res.ID(items[0]))
	}

	form := res.FormFrom(items[0])
	if form.Address != "Main St" || form.IsActive {
		t.Fatalf("unexpected form %+v", form)
	}
	if !res.EmptyForm().IsActive {
		t.Fatalf("new restaurants default to active")
	}

	if err := res.Create(context.Background(), domain.RestaurantForm{Name: "New", IsActive: true}); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if len(backend.restaurants) != 2 {
		t.Fatalf("expected 2 restaurants, got %d", len(backend.restaurants))
	}

	if err := res.Update(context.Background(), 9, form); domain.StatusOf(err) != 404 {
		t.Fatalf("expected 404, got %v", err)
	}
}
