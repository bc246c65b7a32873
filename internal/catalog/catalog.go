// Package catalog holds the fixed set of bookable tours.  The data is
// compiled into the binary and loaded once at startup; nothing mutates a
// Catalog after construction, so it is safe to share across requests
// without locking.
package catalog

// Tour describes a single bookable offering.  Prices are in whole US
// dollars per person.  TransportEligible controls whether the flat
// transport addon may be requested for this tour.
type Tour struct {
	ID                string   `json:"id"`
	Title             string   `json:"title"`
	Subtitle          string   `json:"subtitle,omitempty"`
	Category          string   `json:"category"`
	Price             float64  `json:"price"`
	TransportEligible bool     `json:"transportEligible"`
	Images            []string `json:"images,omitempty"`
	Details           []string `json:"details,omitempty"`
}

// Catalog is an immutable tour lookup plus the ordering metadata the
// storefront needs: tours keep their definition order and categories keep
// first-seen order so grouped views render deterministically.
type Catalog struct {
	// TransportFee is the single flat addon applied per eligible tour
	// when transport is requested.  It is global, not per tour.
	TransportFee float64

	tours      map[string]*Tour
	order      []string
	categories []string
}

// New builds a Catalog from an ordered tour list.  Duplicate IDs are
// rejected by keeping the first occurrence only.
func New(transportFee float64, tours []Tour) *Catalog {
	c := &Catalog{
		TransportFee: transportFee,
		tours:        make(map[string]*Tour, len(tours)),
	}
	seenCat := make(map[string]bool)
	for i := range tours {
		t := tours[i]
		if _, dup := c.tours[t.ID]; dup {
			continue
		}
		c.tours[t.ID] = &t
		c.order = append(c.order, t.ID)
		if !seenCat[t.Category] {
			seenCat[t.Category] = true
			c.categories = append(c.categories, t.Category)
		}
	}
	return c
}

// Get returns the tour for id, or nil and false when the id is unknown.
func (c *Catalog) Get(id string) (*Tour, bool) {
	t, ok := c.tours[id]
	return t, ok
}

// Has reports whether id exists in the catalog.
func (c *Catalog) Has(id string) bool {
	_, ok := c.tours[id]
	return ok
}

// Len returns the number of tours.
func (c *Catalog) Len() int { return len(c.tours) }

// Tours returns all tours in definition order.
func (c *Catalog) Tours() []*Tour {
	out := make([]*Tour, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.tours[id])
	}
	return out
}

// Categories returns category names in first-seen order.
func (c *Catalog) Categories() []string {
	out := make([]string, len(c.categories))
	copy(out, c.categories)
	return out
}

// IDsByCategory returns the ids of every tour in the given category, in
// definition order.  An unknown category yields an empty slice.
func (c *Catalog) IDsByCategory(category string) []string {
	var out []string
	for _, id := range c.order {
		if c.tours[id].Category == category {
			out = append(out, id)
		}
	}
	return out
}
