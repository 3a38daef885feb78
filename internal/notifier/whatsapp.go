package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	appointmentDto "atria/internal/domains/appointment/model/dto"
	"atria/shared/constant"
)

const whatsAppTimeout = 5 * time.Second

type whatsAppPayload struct {
	To       string `json:"to"`
	Template string `json:"template"`
	Message  string `json:"message"`
}

func (n *notifierImpl) sendWhatsApp(ctx context.Context, event appointmentDto.AppointmentCreatedEvent) error {
	whatsApp := n.cfg.External.WhatsApp

	payload := whatsAppPayload{
		To:       event.PatientPhone,
		Template: whatsApp.Template,
		Message:  appointmentSummary(event),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal whatsapp payload: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, whatsAppTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, whatsApp.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build whatsapp request: %w", err)
	}

	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+whatsApp.Token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call whatsapp gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("whatsapp gateway returned status %d", resp.StatusCode)
	}

	return nil
}
