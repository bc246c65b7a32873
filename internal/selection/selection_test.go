package selection

import (
	"context"
	"reflect"
	"testing"

	"github.com/rachtours/tour-reservation/internal/catalog"
)

func testCatalog() *catalog.Catalog {
	return catalog.New(0, []catalog.Tour{
		{ID: "souk-tour", Title: "Souk Tour", Category: "Local", Price: 15, TransportEligible: true},
		{ID: "hammam", Title: "Hammam", Category: "Local", Price: 40, TransportEligible: true},
		{ID: "sahara", Title: "Sahara Dunes", Category: "Day Trips", Price: 25, TransportEligible: true},
		{ID: "walking", Title: "Walking Tour", Category: "Day Trips", Price: 10, TransportEligible: false},
	})
}

func newState(t *testing.T) (*State, Store) {
	t.Helper()
	store := NewMemoryProvider().For("s1")
	return New(testCatalog(), store), store
}

func TestAddRemove(t *testing.T) {
	ctx := context.Background()
	st, _ := newState(t)

	if err := st.Add(ctx, "souk-tour"); err != nil {
		t.Fatal(err)
	}
	if err := st.Add(ctx, "souk-tour"); err != nil { // duplicate no-op
		t.Fatal(err)
	}
	if err := st.Add(ctx, "no-such-tour"); err != nil { // unknown no-op
		t.Fatal(err)
	}
	if got := st.Selected(); !reflect.DeepEqual(got, []string{"souk-tour"}) {
		t.Fatalf("selected = %v", got)
	}

	if err := st.Remove(ctx, "souk-tour"); err != nil {
		t.Fatal(err)
	}
	if st.IsSelected("souk-tour") {
		t.Fatal("souk-tour still selected after remove")
	}
	if err := st.Remove(ctx, "souk-tour"); err != nil { // idempotent
		t.Fatal(err)
	}
}

func TestRemoveClearsTransportFlag(t *testing.T) {
	ctx := context.Background()
	st, _ := newState(t)

	if err := st.SetTransport(ctx, "souk-tour", true); err != nil {
		t.Fatal(err)
	}
	if err := st.Remove(ctx, "souk-tour"); err != nil {
		t.Fatal(err)
	}
	// Re-adding must start with transport off.
	if err := st.Add(ctx, "souk-tour"); err != nil {
		t.Fatal(err)
	}
	if st.Transport()["souk-tour"] {
		t.Fatal("transport flag survived a remove/re-add cycle")
	}
}

func TestSetTransportImpliesSelection(t *testing.T) {
	ctx := context.Background()
	st, _ := newState(t)

	if err := st.SetTransport(ctx, "hammam", true); err != nil {
		t.Fatal(err)
	}
	if !st.IsSelected("hammam") {
		t.Fatal("requesting transport should select the tour")
	}
	if !st.Transport()["hammam"] {
		t.Fatal("transport flag not set")
	}

	if err := st.SetTransport(ctx, "hammam", false); err != nil {
		t.Fatal(err)
	}
	if !st.IsSelected("hammam") {
		t.Fatal("clearing transport should not unselect the tour")
	}
	if st.Transport()["hammam"] {
		t.Fatal("transport flag not cleared")
	}
}

func TestSetTransportIneligibleTour(t *testing.T) {
	ctx := context.Background()
	st, _ := newState(t)

	if err := st.SetTransport(ctx, "walking", true); err != nil {
		t.Fatal(err)
	}
	if st.IsSelected("walking") || st.Transport()["walking"] {
		t.Fatal("ineligible tour must not gain a transport flag")
	}
}

func TestToggleCategory(t *testing.T) {
	ctx := context.Background()
	st, _ := newState(t)

	if err := st.ToggleCategory(ctx, "Local"); err != nil {
		t.Fatal(err)
	}
	if got := st.Selected(); !reflect.DeepEqual(got, []string{"souk-tour", "hammam"}) {
		t.Fatalf("selected after toggle = %v", got)
	}

	// One member selected means the next toggle removes everything.
	if err := st.SetTransport(ctx, "souk-tour", true); err != nil {
		t.Fatal(err)
	}
	if err := st.ToggleCategory(ctx, "Local"); err != nil {
		t.Fatal(err)
	}
	if len(st.Selected()) != 0 {
		t.Fatalf("selected after second toggle = %v", st.Selected())
	}
	if len(st.Transport()) != 0 {
		t.Fatalf("transport flags survived category removal: %v", st.Transport())
	}
}

func TestToggleCategoryLeavesOtherCategoriesAlone(t *testing.T) {
	ctx := context.Background()
	st, _ := newState(t)

	if err := st.Add(ctx, "sahara"); err != nil {
		t.Fatal(err)
	}
	if err := st.ToggleCategory(ctx, "Local"); err != nil {
		t.Fatal(err)
	}
	if err := st.ToggleCategory(ctx, "Local"); err != nil {
		t.Fatal(err)
	}
	if got := st.Selected(); !reflect.DeepEqual(got, []string{"sahara"}) {
		t.Fatalf("selected = %v, want only sahara", got)
	}
}

func TestRestoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	cat := testCatalog()
	store := NewMemoryProvider().For("s1")

	st := New(cat, store)
	if err := st.Add(ctx, "souk-tour"); err != nil {
		t.Fatal(err)
	}
	if err := st.SetTransport(ctx, "hammam", true); err != nil {
		t.Fatal(err)
	}

	st2 := New(cat, store)
	if err := st2.Restore(ctx); err != nil {
		t.Fatal(err)
	}
	if got := st2.Selected(); !reflect.DeepEqual(got, []string{"souk-tour", "hammam"}) {
		t.Fatalf("restored selection = %v", got)
	}
	if !st2.Transport()["hammam"] {
		t.Fatal("restored transport flag missing")
	}
}

func TestRestorePrunesStaleIDs(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryProvider().For("s1")
	if err := store.Save(ctx,
		[]string{"souk-tour", "retired-tour"},
		map[string]bool{"retired-tour": true, "souk-tour": true, "hammam": true},
	); err != nil {
		t.Fatal(err)
	}

	st := New(testCatalog(), store)
	if err := st.Restore(ctx); err != nil {
		t.Fatal(err)
	}
	if got := st.Selected(); !reflect.DeepEqual(got, []string{"souk-tour"}) {
		t.Fatalf("selection = %v, want [souk-tour]", got)
	}
	// hammam is known but not selected, its flag must go too.
	if !reflect.DeepEqual(st.Transport(), map[string]bool{"souk-tour": true}) {
		t.Fatalf("transport = %v", st.Transport())
	}

	// The cleaned state must have been re-persisted.
	ids, transport, err := store.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(ids, []string{"souk-tour"}) {
		t.Fatalf("persisted ids = %v", ids)
	}
	if !reflect.DeepEqual(transport, map[string]bool{"souk-tour": true}) {
		t.Fatalf("persisted transport = %v", transport)
	}
}

func TestRestoreDropsIneligibleTransportFlag(t *testing.T) {
	// A persisted flag for a tour that lost transport eligibility must
	// not survive a restore; the tour itself stays selected.
	ctx := context.Background()
	store := NewMemoryProvider().For("s1")
	if err := store.Save(ctx,
		[]string{"walking", "sahara"},
		map[string]bool{"walking": true, "sahara": true},
	); err != nil {
		t.Fatal(err)
	}

	st := New(testCatalog(), store)
	if err := st.Restore(ctx); err != nil {
		t.Fatal(err)
	}
	if got := st.Selected(); !reflect.DeepEqual(got, []string{"walking", "sahara"}) {
		t.Fatalf("selection = %v", got)
	}
	if !reflect.DeepEqual(st.Transport(), map[string]bool{"sahara": true}) {
		t.Fatalf("transport = %v", st.Transport())
	}
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	st, store := newState(t)

	if err := st.ToggleCategory(ctx, "Local"); err != nil {
		t.Fatal(err)
	}
	if err := st.Clear(ctx); err != nil {
		t.Fatal(err)
	}
	if len(st.Selected()) != 0 || len(st.Transport()) != 0 {
		t.Fatal("clear left state behind")
	}
	ids, _, err := store.Load(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(ids) != 0 {
		t.Fatalf("persisted ids after clear = %v", ids)
	}
}

func TestOnChangeFiresPerMutation(t *testing.T) {
	ctx := context.Background()
	st, _ := newState(t)

	calls := 0
	st.OnChange(func() { calls++ })

	_ = st.Add(ctx, "souk-tour")
	_ = st.Add(ctx, "souk-tour") // no-op, no hook
	_ = st.SetTransport(ctx, "souk-tour", true)
	_ = st.Remove(ctx, "souk-tour")

	if calls != 3 {
		t.Fatalf("onChange fired %d times, want 3", calls)
	}
}
