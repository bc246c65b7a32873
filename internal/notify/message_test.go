package notify

import (
	"strings"
	"testing"

	"github.com/rachtours/tour-reservation/internal/catalog"
	"github.com/rachtours/tour-reservation/internal/pricing"
)

func renderInput(entries []pricing.Entry, guests int) RenderInput {
	cat := catalog.New(10, []catalog.Tour{
		{ID: "souk-tour", Title: "Souk Tour", Category: "Local Tours", Price: 15, TransportEligible: true},
		{ID: "sahara", Title: "Sahara Dunes", Category: "Day Trips", Price: 25, TransportEligible: true},
	})
	return RenderInput{
		Name:          "Alice",
		Phone:         "+212 600-000-000",
		Date:          "2030-05-01",
		Time:          "09:30",
		Guests:        guests,
		Breakdown:     pricing.ComputeBreakdown(entries, cat, guests),
		SiteURL:       "https://rach-tours.com",
		OperatorPhone: "+212659727363",
	}
}

func TestRenderOperatorSummary(t *testing.T) {
	msgs := Render(renderInput([]pricing.Entry{
		{TourID: "souk-tour", HasTransport: true},
		{TourID: "sahara"},
	}, 2))

	sum := msgs.OperatorSummary
	for _, want := range []string{
		"New Reservation Request",
		"*Customer:* Alice",
		"*Guests:* 2",
		"🚕 *Transport Requested* :✅ Yes",
		"*Local Tours* (Total: $50):",
		"• Souk Tour ($50) [🚕+Transport]",
		"*Day Trips* (Total: $50):",
		"• Sahara Dunes ($50)\n",
		"*Total Price:* $100",
	} {
		if !strings.Contains(sum, want) {
			t.Fatalf("summary missing %q:\n%s", want, sum)
		}
	}
	if !msgs.AnyTransport {
		t.Fatal("AnyTransport = false")
	}
}

func TestRenderWithoutTransportOmitsLine(t *testing.T) {
	msgs := Render(renderInput([]pricing.Entry{{TourID: "sahara"}}, 1))
	if strings.Contains(msgs.OperatorSummary, "Transport Requested") {
		t.Fatalf("transport line rendered for transport-free booking:\n%s", msgs.OperatorSummary)
	}
	if msgs.AnyTransport {
		t.Fatal("AnyTransport = true")
	}
}

func TestRenderReplyPromptLinksCustomer(t *testing.T) {
	msgs := Render(renderInput([]pricing.Entry{{TourID: "sahara"}}, 1))
	if !strings.HasPrefix(msgs.ReplyPrompt, "👉 *Click to Reply:* https://wa.me/212600000000?text=") {
		t.Fatalf("reply prompt = %q", msgs.ReplyPrompt)
	}
	// The pre-filled text is the confirmation message, URL encoded.
	if !strings.Contains(msgs.Confirmation, "Hello Mr/Mrs *Alice*") {
		t.Fatalf("confirmation = %q", msgs.Confirmation)
	}
	if !strings.Contains(msgs.Confirmation, "https://rach-tours.com") {
		t.Fatal("confirmation missing resubmit link")
	}
	if !strings.Contains(msgs.Confirmation, "wa.me/212659727363") {
		t.Fatal("confirmation missing operator confirm link")
	}
}

func TestRenderSpecialNote(t *testing.T) {
	in := renderInput([]pricing.Entry{{TourID: "sahara"}}, 1)
	in.Special = "vegetarian lunch please"
	msgs := Render(in)
	if !strings.Contains(msgs.OperatorSummary, "<|vegetarian lunch please|>") {
		t.Fatalf("note missing:\n%s", msgs.OperatorSummary)
	}

	in.Special = ""
	msgs = Render(in)
	if strings.Contains(msgs.OperatorSummary, "*Note:*") {
		t.Fatal("empty note still rendered")
	}
}

func TestTourDetailsLineTotals(t *testing.T) {
	cat := catalog.New(0, []catalog.Tour{
		{ID: "a", Title: "Alpha", Category: "Local Tours", Price: 10},
		{ID: "b", Title: "Beta", Category: "Local Tours", Price: 25},
	})
	br := pricing.ComputeBreakdown([]pricing.Entry{{TourID: "a"}, {TourID: "b"}}, cat, 3)
	details := tourDetails(br)
	for _, want := range []string{
		"*Local Tours* (Total: $105):",
		"• Alpha ($30)\n",
		"• Beta ($75)\n",
	} {
		if !strings.Contains(details, want) {
			t.Fatalf("details missing %q:\n%s", want, details)
		}
	}
}

func TestTourDetailsTruncation(t *testing.T) {
	tours := make([]catalog.Tour, 60)
	entries := make([]pricing.Entry, 60)
	for i := range tours {
		id := strings.Repeat("x", 10) + string(rune('a'+i%26)) + string(rune('a'+i/26))
		tours[i] = catalog.Tour{ID: id, Title: "Some Fairly Long Tour Title " + id, Category: "Cat", Price: 10}
		entries[i] = pricing.Entry{TourID: id}
	}
	cat := catalog.New(0, tours)
	details := tourDetails(pricing.ComputeBreakdown(entries, cat, 1))
	if len(details) != maxTourDetailsLen {
		t.Fatalf("details length = %d, want %d", len(details), maxTourDetailsLen)
	}
}

func TestMoneyFormatting(t *testing.T) {
	cases := map[float64]string{
		30:    "30",
		32.5:  "32.5",
		0:     "0",
		19.99: "19.99",
	}
	for in, want := range cases {
		if got := Money(in); got != want {
			t.Fatalf("Money(%v) = %q, want %q", in, got, want)
		}
	}
}
