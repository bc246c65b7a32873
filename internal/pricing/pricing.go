// Package pricing derives priced line items and grouped totals from a tour
// selection.  ComputeBreakdown is the single pricing authority: the
// selection preview endpoint and the reservation pipeline both call it, so
// a client-submitted total is never trusted anywhere.
package pricing

import "github.com/rachtours/tour-reservation/internal/catalog"

// Entry pairs a selected tour id with its transport request.
type Entry struct {
	TourID       string `json:"tourId"`
	HasTransport bool   `json:"hasTransport"`
}

// LineItem is one priced tour within a breakdown.  Derived values only;
// line items are never stored independently of a reservation row.
type LineItem struct {
	TourID       string  `json:"tourId"`
	Title        string  `json:"title"`
	Category     string  `json:"category"`
	BasePrice    float64 `json:"basePrice"`
	HasTransport bool    `json:"hasTransport"`
	TransportFee float64 `json:"transportFee"`
	PricePerHead float64 `json:"pricePerPerson"`
	Guests       int     `json:"guests"`
	LineTotal    float64 `json:"totalPrice"`
}

// CategoryGroup collects the line items of one category with their subtotal.
type CategoryGroup struct {
	Category string     `json:"category"`
	Items    []LineItem `json:"items"`
	Subtotal float64    `json:"subtotal"`
}

// Breakdown is the full grouped cost view for a selection.  Groups keep
// the order in which categories were first seen while walking the entries.
type Breakdown struct {
	Groups     []CategoryGroup `json:"groups"`
	GrandTotal float64         `json:"grandTotal"`
}

// AnyTransport reports whether any line in the breakdown has transport requested.
func (b Breakdown) AnyTransport() bool {
	for _, g := range b.Groups {
		for _, it := range g.Items {
			if it.HasTransport {
				return true
			}
		}
	}
	return false
}

// Lines flattens the breakdown back into line items, group by group.
func (b Breakdown) Lines() []LineItem {
	var out []LineItem
	for _, g := range b.Groups {
		out = append(out, g.Items...)
	}
	return out
}

// ComputeBreakdown prices every entry against the catalog for the given
// guest count.  Entries whose tour id is not in the catalog are skipped
// silently; stale ids from an outdated client must never fail pricing.
// Guest counts below one are treated as one.  The function is pure.
func ComputeBreakdown(entries []Entry, cat *catalog.Catalog, guests int) Breakdown {
	if guests < 1 {
		guests = 1
	}
	var bd Breakdown
	groupIdx := make(map[string]int)
	for _, e := range entries {
		tour, ok := cat.Get(e.TourID)
		if !ok {
			continue
		}
		fee := 0.0
		if e.HasTransport {
			fee = cat.TransportFee
		}
		unit := tour.Price + fee
		item := LineItem{
			TourID:       e.TourID,
			Title:        tour.Title,
			Category:     tour.Category,
			BasePrice:    tour.Price,
			HasTransport: e.HasTransport,
			TransportFee: fee,
			PricePerHead: unit,
			Guests:       guests,
			LineTotal:    unit * float64(guests),
		}
		idx, seen := groupIdx[tour.Category]
		if !seen {
			idx = len(bd.Groups)
			groupIdx[tour.Category] = idx
			bd.Groups = append(bd.Groups, CategoryGroup{Category: tour.Category})
		}
		g := &bd.Groups[idx]
		g.Items = append(g.Items, item)
		g.Subtotal += item.LineTotal
		bd.GrandTotal += item.LineTotal
	}
	return bd
}
