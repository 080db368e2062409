package services

import (
	"fmt"

	"github.com/go-resty/resty/v2"
)

// WhatsAppClient delivers appointment notices over a WhatsApp HTTP gateway.
type WhatsAppClient struct {
	URL   string
	Token string

	http *resty.Client
}

type whatsAppResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func NewWhatsAppClient(url, token string) *WhatsAppClient {
	return &WhatsAppClient{
		URL:   url,
		Token: token,
		http:  resty.New(),
	}
}

func (w *WhatsAppClient) SendAppointmentNotice(phone, patientName, date, timeSlot, action string) error {
	message := fmt.Sprintf(
		"Hello %s,\n\nYour appointment has been %s!\n\nDate: %s\nTime: %s\n\nThank you for choosing our hospital.",
		patientName, action, date, timeSlot,
	)

	var result whatsAppResponse
	resp, err := w.http.R().
		SetAuthToken(w.Token).
		SetBody(map[string]interface{}{
			"to":      phone,
			"message": message,
		}).
		SetResult(&result).
		Post(w.URL)
	if err != nil {
		return err
	}

	if resp.IsError() {
		return fmt.Errorf("WhatsApp gateway failed with status %d", resp.StatusCode())
	}
	if !result.Success {
		return fmt.Errorf("WhatsApp gateway error: %s", result.Error)
	}
	return nil
}
