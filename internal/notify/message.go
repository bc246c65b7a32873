package notify

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/rachtours/tour-reservation/internal/pricing"
	"github.com/rachtours/tour-reservation/internal/utils"
)

// maxTourDetailsLen caps the per-category tour listing so a single
// WhatsApp text stays under the API body limit.
const maxTourDetailsLen = 1000

// RenderInput carries everything needed to build the notification texts
// for one reservation.  All fields, Special included, are assumed
// validated and sanitized by the caller.
type RenderInput struct {
	Name          string
	Phone         string
	Date          string
	Time          string
	Guests        int
	Special       string
	Breakdown     pricing.Breakdown
	SiteURL       string
	OperatorPhone string
}

// Messages holds the rendered texts for one reservation.
type Messages struct {
	// TourDetails is the per-category item listing shared by the
	// operator summary and the customer confirmation.
	TourDetails string
	// OperatorSummary is the main WhatsApp text sent to the operator.
	OperatorSummary string
	// ReplyPrompt is the second operator text carrying a wa.me link that
	// opens a chat with the customer pre-filled with Confirmation.
	ReplyPrompt string
	// Confirmation is the pre-generated customer-facing message, also
	// stored on the reservation row.
	Confirmation string
	AnyTransport bool
}

// Render builds all notification texts for a reservation.
func Render(in RenderInput) Messages {
	anyTransport := in.Breakdown.AnyTransport()
	details := tourDetails(in.Breakdown)

	special := in.Special
	transportLine := ""
	if anyTransport {
		transportLine = "🚕 *Transport Requested* :✅ Yes"
	}

	var b strings.Builder
	b.WriteString("🔔 *New Reservation Request*\n")
	b.WriteString("══════════════════════\n")
	fmt.Fprintf(&b, "👤 *Customer:* %s\n", in.Name)
	fmt.Fprintf(&b, "📞 *Phone:* %s\n", in.Phone)
	fmt.Fprintf(&b, "📅 *Date:* %s\n", in.Date)
	fmt.Fprintf(&b, "⏰ *Time:* %s\n", in.Time)
	fmt.Fprintf(&b, "👥 *Guests:* %d\n", in.Guests)
	if anyTransport {
		b.WriteString(transportLine + "\n")
	}
	b.WriteString("══════════════════════\n")
	fmt.Fprintf(&b, "🎫 *Tour Details:*\n%s", details)
	fmt.Fprintf(&b, "\n💰 *Total Price:* $%s\n", Money(in.Breakdown.GrandTotal))
	if special != "" {
		b.WriteString("══════════════════════\n")
		fmt.Fprintf(&b, "📝 *Note:*\n <|%s|>\n", special)
	}
	b.WriteString("══════════════════════\n")
	operatorSummary := b.String()

	// Link the operator taps to confirm back to the customer.  The text
	// carried by the link echoes the reservation so the customer sees what
	// was confirmed.
	reconfirm := fmt.Sprintf(`✅ Reservation Confirmed :
👤 *%s*
📞 *%s*
📅 *%s* at ⏰ *%s*
👥 *%d* guests
 %s`, in.Name, in.Phone, in.Date, in.Time, in.Guests, transportLine)
	reconfirmLink := waLink(in.OperatorPhone, reconfirm)

	confirmation := fmt.Sprintf(`Hello Mr/Mrs *%s* !

This is Rach Tours. We've received your reservation request for:

%s
💰 *Total:* $%s
📞 *Phone:* *%s*
📅 *Date:* *%s*
⏰ *Time:* *%s*
👥 *Guests:* *%d*

 Is this correct?
   ❌ If no, please
*Resubmit Again:*
🔗 %s
   ✅ If yes, please
*Confirm By clicking on the link :*
 %s

We look forward to seeing you soon.Thank you for choosing us! ✨`,
		in.Name, details, Money(in.Breakdown.GrandTotal), in.Phone, in.Date,
		in.Time, in.Guests, in.SiteURL, reconfirmLink)

	replyPrompt := "👉 *Click to Reply:* " + waLink(in.Phone, confirmation)

	return Messages{
		TourDetails:     details,
		OperatorSummary: operatorSummary,
		ReplyPrompt:     replyPrompt,
		Confirmation:    confirmation,
		AnyTransport:    anyTransport,
	}
}

func tourDetails(br pricing.Breakdown) string {
	var b strings.Builder
	for _, g := range br.Groups {
		fmt.Fprintf(&b, "*%s* (Total: $%s):\n", g.Category, Money(g.Subtotal))
		for _, item := range g.Items {
			suffix := ""
			if item.HasTransport {
				suffix = " [🚕+Transport]"
			}
			fmt.Fprintf(&b, "  • %s ($%s)%s\n", item.Title, Money(item.LineTotal), suffix)
		}
	}
	s := b.String()
	if len(s) > maxTourDetailsLen {
		s = s[:maxTourDetailsLen]
	}
	return s
}

// waLink builds a wa.me deep link opening a chat with phone pre-filled
// with text.
func waLink(phone, text string) string {
	return "https://wa.me/" + utils.DigitsOnly(phone) + "?text=" + url.QueryEscape(text)
}

// Money renders a dollar amount without trailing zeros, so $30 prints
// as 30 and $32.50 as 32.5.
func Money(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
