// Package selection manages a visitor's in-progress tour selection: an
// ordered sequence of selected tour ids plus a per-tour transport flag.
// The state survives page reloads through a pluggable Store and is pruned
// against the current catalog on restore, mirroring the invariants the
// storefront widget maintains in the browser.
package selection

import (
	"context"

	"github.com/rachtours/tour-reservation/internal/catalog"
	"github.com/rachtours/tour-reservation/internal/pricing"
)

// Store is the persistence boundary for selection state.  The two parallel
// structures (id sequence, id→transport map) are saved and loaded together.
type Store interface {
	Load(ctx context.Context) (ids []string, transport map[string]bool, err error)
	Save(ctx context.Context, ids []string, transport map[string]bool) error
}

// State is a visitor's current selection bound to a catalog and a store.
// It is built per request (one browsing session is single-threaded) and is
// not safe for concurrent use.  Every successful mutation persists
// synchronously and then fires the change hook, so a consuming view layer
// subscribes once instead of watching individual fields.
type State struct {
	cat       *catalog.Catalog
	store     Store
	ids       []string
	transport map[string]bool
	onChange  func()
}

// New returns an empty State for the given catalog and store.
func New(cat *catalog.Catalog, store Store) *State {
	return &State{
		cat:       cat,
		store:     store,
		transport: make(map[string]bool),
	}
}

// OnChange registers a hook invoked after every persisted mutation.
func (s *State) OnChange(fn func()) { s.onChange = fn }

// Selected returns the selected tour ids in selection order.
func (s *State) Selected() []string {
	out := make([]string, len(s.ids))
	copy(out, s.ids)
	return out
}

// Transport returns a copy of the per-tour transport flags.
func (s *State) Transport() map[string]bool {
	out := make(map[string]bool, len(s.transport))
	for k, v := range s.transport {
		out[k] = v
	}
	return out
}

// IsSelected reports whether the tour id is currently selected.
func (s *State) IsSelected(id string) bool {
	for _, v := range s.ids {
		if v == id {
			return true
		}
	}
	return false
}

// Entries returns the selection as pricing entries, in selection order.
func (s *State) Entries() []pricing.Entry {
	out := make([]pricing.Entry, 0, len(s.ids))
	for _, id := range s.ids {
		out = append(out, pricing.Entry{TourID: id, HasTransport: s.transport[id]})
	}
	return out
}

// Breakdown prices the current selection for the given guest count.
func (s *State) Breakdown(guests int) pricing.Breakdown {
	return pricing.ComputeBreakdown(s.Entries(), s.cat, guests)
}

// Add appends a tour to the selection.  Unknown or already selected ids
// are a no-op and do not persist.
func (s *State) Add(ctx context.Context, tourID string) error {
	if !s.cat.Has(tourID) || s.IsSelected(tourID) {
		return nil
	}
	s.ids = append(s.ids, tourID)
	return s.commit(ctx)
}

// Remove deletes a tour from the selection and clears its transport flag.
// Removing an absent id is a no-op.
func (s *State) Remove(ctx context.Context, tourID string) error {
	idx := -1
	for i, v := range s.ids {
		if v == tourID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	s.ids = append(s.ids[:idx], s.ids[idx+1:]...)
	delete(s.transport, tourID)
	return s.commit(ctx)
}

// SetTransport records a transport request for a tour.  Requesting
// transport for a tour that is not yet selected selects it first; a flag
// may only be true for a selected, transport-eligible tour.
func (s *State) SetTransport(ctx context.Context, tourID string, requested bool) error {
	tour, ok := s.cat.Get(tourID)
	if !ok {
		return nil
	}
	if !requested {
		if s.transport[tourID] {
			delete(s.transport, tourID)
			return s.commit(ctx)
		}
		return nil
	}
	if !tour.TransportEligible {
		return nil
	}
	changed := false
	if !s.IsSelected(tourID) {
		s.ids = append(s.ids, tourID)
		changed = true
	}
	if !s.transport[tourID] {
		s.transport[tourID] = true
		changed = true
	}
	if !changed {
		return nil
	}
	return s.commit(ctx)
}

// ToggleCategory flips a whole category: when any of its tours is
// selected, all of them are removed (clearing their transport flags);
// otherwise all are added.
func (s *State) ToggleCategory(ctx context.Context, category string) error {
	ids := s.cat.IDsByCategory(category)
	if len(ids) == 0 {
		return nil
	}
	anySelected := false
	for _, id := range ids {
		if s.IsSelected(id) {
			anySelected = true
			break
		}
	}
	if anySelected {
		inCat := make(map[string]bool, len(ids))
		for _, id := range ids {
			inCat[id] = true
			delete(s.transport, id)
		}
		kept := s.ids[:0]
		for _, id := range s.ids {
			if !inCat[id] {
				kept = append(kept, id)
			}
		}
		s.ids = kept
	} else {
		for _, id := range ids {
			s.ids = append(s.ids, id)
		}
	}
	return s.commit(ctx)
}

// Clear empties the selection and the transport map.
func (s *State) Clear(ctx context.Context) error {
	s.ids = nil
	s.transport = make(map[string]bool)
	return s.commit(ctx)
}

// Restore reloads persisted state and prunes entries whose tour id is no
// longer in the catalog.  When pruning changed anything the cleaned state
// is re-persisted so storage cannot drift from the catalog across
// deployments.
func (s *State) Restore(ctx context.Context) error {
	ids, transport, err := s.store.Load(ctx)
	if err != nil {
		return err
	}
	pruned := false
	s.ids = s.ids[:0]
	for _, id := range ids {
		if s.cat.Has(id) {
			s.ids = append(s.ids, id)
		} else {
			pruned = true
		}
	}
	s.transport = make(map[string]bool)
	for id, v := range transport {
		if !v {
			continue
		}
		if tour, ok := s.cat.Get(id); ok && tour.TransportEligible && s.IsSelected(id) {
			s.transport[id] = true
		} else {
			pruned = true
		}
	}
	if pruned {
		return s.commit(ctx)
	}
	if s.onChange != nil {
		s.onChange()
	}
	return nil
}

func (s *State) commit(ctx context.Context) error {
	if err := s.store.Save(ctx, s.ids, s.transport); err != nil {
		return err
	}
	if s.onChange != nil {
		s.onChange()
	}
	return nil
}
