package handler

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/labstack/echo/v4"

	"github.com/rachtours/tour-reservation/internal/catalog"
	"github.com/rachtours/tour-reservation/internal/config"
	"github.com/rachtours/tour-reservation/internal/model"
	"github.com/rachtours/tour-reservation/internal/notify"
	"github.com/rachtours/tour-reservation/internal/pricing"
	"github.com/rachtours/tour-reservation/internal/queue"
	"github.com/rachtours/tour-reservation/internal/repository"
	"github.com/rachtours/tour-reservation/internal/utils"
)

// maxSpecialStored caps the customer note as stored and rendered.
const maxSpecialStored = 200

// ReservationHandler runs the submission pipeline: validate, re-price
// from the catalog, persist, then fan out notifications.  The row insert
// is the durability point; every notification failure after it is logged
// and swallowed so a messaging outage never loses a booking.
type ReservationHandler struct {
	Cfg       config.Config
	Catalog   *catalog.Catalog
	Repo      *repository.ReservationRepo
	Messenger notify.Messenger
	Sheets    *notify.SheetsWebhook

	// Publish sends the created event to the broker; swappable in tests.
	Publish func(ctx context.Context, ev queue.ReservationCreatedEvent) error
}

func NewReservationHandler(cfg config.Config, cat *catalog.Catalog, repo *repository.ReservationRepo,
	m notify.Messenger, sheets *notify.SheetsWebhook,
	publish func(ctx context.Context, ev queue.ReservationCreatedEvent) error) *ReservationHandler {
	return &ReservationHandler{Cfg: cfg, Catalog: cat, Repo: repo, Messenger: m, Sheets: sheets, Publish: publish}
}

// flexInt accepts a JSON number or a numeric string, since the booking
// form submits guests as a string while API clients send a number.  A
// value that parses to nothing becomes -1 so range validation rejects it.
type flexInt int

func (f *flexInt) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(strings.Trim(string(b), `"`))
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		*f = -1
		return nil
	}
	*f = flexInt(n)
	return nil
}

type createReservationReq struct {
	Name          string          `json:"name"`
	Phone         string          `json:"phone"`
	Date          string          `json:"date"`
	Time          string          `json:"time"`
	Guests        flexInt         `json:"guests"`
	Special       string          `json:"special"`
	SelectedTours []pricing.Entry `json:"selectedTours"`
}

// fieldError mirrors the per-field validation errors the booking form
// renders next to its inputs.
type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var (
	phonePattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)
	timePattern  = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// validate collects every problem instead of stopping at the first so
// the form can mark all offending inputs in one round trip.
func validate(req *createReservationReq) []fieldError {
	var errs []fieldError

	req.Name = strings.TrimSpace(req.Name)
	switch {
	case req.Name == "":
		errs = append(errs, fieldError{"name", "Name is required"})
	case utf8.RuneCountInString(req.Name) > 100:
		errs = append(errs, fieldError{"name", "Name too long"})
	}

	req.Phone = strings.TrimSpace(req.Phone)
	stripped := strings.ReplaceAll(req.Phone, " ", "")
	switch {
	case req.Phone == "":
		errs = append(errs, fieldError{"phone", "Phone is required"})
	case len(req.Phone) > 30:
		errs = append(errs, fieldError{"phone", "Phone too long"})
	case !phonePattern.MatchString(stripped):
		errs = append(errs, fieldError{"phone", "Invalid phone number"})
	}

	req.Date = strings.TrimSpace(req.Date)
	if req.Date == "" {
		errs = append(errs, fieldError{"date", "Date is required"})
	} else if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		errs = append(errs, fieldError{"date", "Invalid date format"})
	} else if req.Date < time.Now().UTC().Format("2006-01-02") {
		errs = append(errs, fieldError{"date", "Date cannot be in the past"})
	}

	req.Time = strings.TrimSpace(req.Time)
	if req.Time == "" {
		errs = append(errs, fieldError{"time", "Time is required"})
	} else if !timePattern.MatchString(req.Time) {
		errs = append(errs, fieldError{"time", "Time must be HH:MM format"})
	}

	if req.Guests < 1 || req.Guests > 100 {
		errs = append(errs, fieldError{"guests", "Guests must be between 1 and 100"})
	}

	req.Special = strings.TrimSpace(req.Special)
	if utf8.RuneCountInString(req.Special) > 500 {
		errs = append(errs, fieldError{"special", "Special request too long"})
	}

	if len(req.SelectedTours) == 0 {
		errs = append(errs, fieldError{"selectedTours", "At least one tour must be selected"})
	}
	for _, e := range req.SelectedTours {
		if e.TourID == "" {
			errs = append(errs, fieldError{"selectedTours", "Each tour must have a tourId"})
			break
		}
	}
	return errs
}

// Create handles POST /api/reservations.
func (h *ReservationHandler) Create(c echo.Context) error {
	var req createReservationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false, "message": "Invalid request body",
		})
	}

	if errs := validate(&req); len(errs) > 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false,
			"message": "Validation failed",
			"error":   errs,
		})
	}

	// Re-price from the catalog.  Client-side totals are display only;
	// unknown tour ids are dropped rather than failing the booking.
	bd := pricing.ComputeBreakdown(req.SelectedTours, h.Catalog, int(req.Guests))
	lines := bd.Lines()
	if len(lines) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success": false, "message": "No tours selected.",
		})
	}

	special := req.Special
	if special != "" {
		special = utils.EscapeHTML(special)
		// Cut on rune boundaries so a multi-byte character is never split.
		if r := []rune(special); len(r) > maxSpecialStored {
			special = string(r[:maxSpecialStored])
		}
		special = utils.LiteralizeControls(special)
	}

	msgs := notify.Render(notify.RenderInput{
		Name:          req.Name,
		Phone:         req.Phone,
		Date:          req.Date,
		Time:          req.Time,
		Guests:        int(req.Guests),
		Special:       special,
		Breakdown:     bd,
		SiteURL:       h.Cfg.SiteURL,
		OperatorPhone: h.Cfg.OperatorPhone,
	})

	titles := make([]string, 0, len(lines))
	for _, l := range lines {
		titles = append(titles, l.Title)
	}
	rawLines, err := json.Marshal(lines)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false, "message": "Failed to save reservation. Please try again.",
		})
	}

	res := &model.Reservation{
		Name:                req.Name,
		Phone:               req.Phone,
		TourNames:           strings.Join(titles, ", "),
		Tours:               string(rawLines),
		Date:                req.Date,
		Time:                req.Time,
		Guests:              int(req.Guests),
		TotalPrice:          bd.GrandTotal,
		Transport:           msgs.AnyTransport,
		SpecialRequest:      special,
		ConfirmationMessage: msgs.Confirmation,
	}

	dbCtx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()
	if err := h.Repo.Create(dbCtx, res); err != nil {
		log.Printf("reservation insert failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"success": false, "message": "Failed to save reservation. Please try again.",
		})
	}

	h.notifyAll(res, lines, msgs)

	return c.JSON(http.StatusOK, echo.Map{
		"success": true, "message": "Reservation Confirmed",
	})
}

// notifyAll fans out the post-persist notifications.  The two operator
// WhatsApp texts are awaited so their failures land in this request's
// logs; the spreadsheet mirror and the broker event are fire-and-forget.
func (h *ReservationHandler) notifyAll(res *model.Reservation, lines []pricing.LineItem, msgs notify.Messages) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)

	var wg sync.WaitGroup // the awaited operator texts
	var bg sync.WaitGroup // everything holding ctx open
	if h.Messenger != nil {
		for _, body := range []string{msgs.OperatorSummary, msgs.ReplyPrompt} {
			wg.Add(1)
			bg.Add(1)
			go func(body string) {
				defer wg.Done()
				defer bg.Done()
				if err := h.Messenger.SendText(ctx, h.Cfg.OperatorPhone, body); err != nil {
					log.Printf("whatsapp send failed for reservation %d: %v", res.ID, err)
				}
			}(body)
		}
	}

	if h.Sheets != nil && h.Sheets.Configured() {
		sheetTours := make([]notify.SheetTour, 0, len(lines))
		for _, l := range lines {
			sheetTours = append(sheetTours, notify.SheetTour{Title: l.Title, HasTransport: l.HasTransport})
		}
		row := notify.SheetRow{
			Date:           res.Date,
			Time:           res.Time,
			Name:           res.Name,
			Phone:          res.Phone,
			Guests:         res.Guests,
			TotalPrice:     res.TotalPrice,
			Transport:      res.Transport,
			Tours:          sheetTours,
			SpecialRequest: res.SpecialRequest,
		}
		bg.Add(1)
		go func() {
			defer bg.Done()
			if err := h.Sheets.Push(ctx, row); err != nil {
				log.Printf("sheet append failed for reservation %d: %v", res.ID, err)
			}
		}()
	}

	if h.Publish != nil {
		evTours := make([]queue.ReservationTour, 0, len(lines))
		for _, l := range lines {
			evTours = append(evTours, queue.ReservationTour{
				TourID:       l.TourID,
				Title:        l.Title,
				HasTransport: l.HasTransport,
				TotalPrice:   l.LineTotal,
			})
		}
		ev := queue.ReservationCreatedEvent{
			ReservationID: res.ID,
			Name:          res.Name,
			Phone:         res.Phone,
			Date:          res.Date,
			Time:          res.Time,
			Guests:        res.Guests,
			Transport:     res.Transport,
			TotalPrice:    res.TotalPrice,
			Tours:         evTours,
			CreatedAt:     time.Now().UTC().Format(time.RFC3339),
		}
		bg.Add(1)
		go func() {
			defer bg.Done()
			_ = h.Publish(ctx, ev)
		}()
	}

	go func() {
		bg.Wait()
		cancel()
	}()
	wg.Wait()
}
