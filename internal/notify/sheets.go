package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// SheetTour is one tour entry in a spreadsheet row.
type SheetTour struct {
	Title        string `json:"title"`
	HasTransport bool   `json:"hasTransport"`
}

// SheetRow is the payload the Apps Script webhook appends as one row.
type SheetRow struct {
	Token          string      `json:"token"`
	Date           string      `json:"date"`
	Time           string      `json:"time"`
	Name           string      `json:"name"`
	Phone          string      `json:"phone"`
	Guests         int         `json:"guests"`
	TotalPrice     float64     `json:"totalPrice"`
	Transport      bool        `json:"transport"`
	Tours          []SheetTour `json:"tours"`
	SpecialRequest string      `json:"specialRequest"`
}

// SheetsWebhook appends reservation rows to a Google Sheet through an
// Apps Script endpoint.  Push is best effort; the caller fires it in a
// goroutine and only logs failures.
type SheetsWebhook struct {
	URL   string
	Token string
	HTTP  *http.Client
}

func NewSheetsWebhook(url, token string) *SheetsWebhook {
	return &SheetsWebhook{URL: url, Token: token, HTTP: &http.Client{Timeout: 10 * time.Second}}
}

// Configured reports whether both the endpoint and its token are set.
func (s *SheetsWebhook) Configured() bool { return s.URL != "" && s.Token != "" }

// Push appends one row.  No-op when unconfigured.
func (s *SheetsWebhook) Push(ctx context.Context, row SheetRow) error {
	if !s.Configured() {
		return nil
	}
	row.Token = s.Token
	raw, err := json.Marshal(row)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.URL, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	// Apps Script redirects on success; only 4xx/5xx means failure.
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sheets webhook status %d", resp.StatusCode)
	}
	return nil
}
