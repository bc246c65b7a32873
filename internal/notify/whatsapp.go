package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"
)

// Messenger sends a text message to a phone number.  The reservation
// handler depends on this interface so tests can swap in a fake.
type Messenger interface {
	SendText(ctx context.Context, to, body string) error
}

// WhatsApp sends texts through the Meta Cloud API.  When Mock is set the
// client logs instead of calling out, which keeps local development and
// CI from needing real credentials.
type WhatsApp struct {
	Token   string
	PhoneID string
	Mock    bool
	HTTP    *http.Client
}

// NewWhatsApp builds a client.  Missing credentials put it in mock mode.
func NewWhatsApp(token, phoneID string) *WhatsApp {
	return &WhatsApp{
		Token:   token,
		PhoneID: phoneID,
		Mock:    token == "" || phoneID == "",
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

type waTextRequest struct {
	MessagingProduct string `json:"messaging_product"`
	To               string `json:"to"`
	Type             string `json:"type"`
	Text             struct {
		Body string `json:"body"`
	} `json:"text"`
}

// SendText posts a plain text message to the given number.
func (w *WhatsApp) SendText(ctx context.Context, to, body string) error {
	if w.Mock {
		log.Printf("whatsapp [mock] to=%s len=%d", to, len(body))
		return nil
	}

	payload := waTextRequest{MessagingProduct: "whatsapp", To: to, Type: "text"}
	payload.Text.Body = body
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("https://graph.facebook.com/v21.0/%s/messages", w.PhoneID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+w.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		// The Graph API explains failures in the body; keep a slice of it.
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("whatsapp api status %d: %s", resp.StatusCode, snippet)
	}
	return nil
}
