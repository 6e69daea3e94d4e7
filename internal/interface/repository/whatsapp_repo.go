package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"rampcontrol-service/internal/domain/entity"
	"rampcontrol-service/internal/domain/repository"
	"rampcontrol-service/pkg/logger"
)

// WhatsappRepository sends handover messages to the WhatsApp bridge
type WhatsappRepository struct {
	logger      logger.Logger
	baseURL     string
	bearerToken string
	groupID     string
}

// NewWhatsappRepository creates a new WhatsApp repository
func NewWhatsappRepository(baseURL, bearerToken, groupID string, logger logger.Logger) repository.WhatsappRepository {
	return &WhatsappRepository{
		logger:      logger,
		baseURL:     baseURL,
		bearerToken: bearerToken,
		groupID:     groupID,
	}
}

type sendMessageRequest struct {
	GroupID     string `json:"groupId"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Message     struct {
		Text string `json:"text"`
	} `json:"message"`
	ScheduleAt string `json:"scheduleAt"`
	Type       string `json:"type"`
}

// SendHandover posts the handover text to the bridge and returns the task ID
func (r *WhatsappRepository) SendHandover(ctx context.Context, payload *entity.HandoverPayload) (string, error) {
	scheduleAtUTC := payload.ScheduleAt.UTC().Format(time.RFC3339)

	msg := sendMessageRequest{
		GroupID:     r.groupID,
		PhoneNumber: payload.Phone,
		ScheduleAt:  scheduleAtUTC,
		Type:        "text",
	}
	msg.Message.Text = payload.Text

	jsonData, err := json.Marshal(msg)
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}

	url := fmt.Sprintf("%s/api/v1/messages/send", r.baseURL)
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+r.bearerToken)
	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		var errorBody map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&errorBody)
		return "", fmt.Errorf("WhatsApp bridge returned status %d: %v", resp.StatusCode, errorBody)
	}

	var response struct {
		Success bool `json:"success"`
		Data    struct {
			TaskID     string `json:"taskId"`
			Status     string `json:"status"`
			ScheduleAt string `json:"scheduleAt"`
		} `json:"data"`
		Error struct {
			Message string `json:"message"`
			Code    string `json:"code"`
		} `json:"error"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	taskID := response.Data.TaskID

	r.logger.Info("Handover message queued",
		"taskId", taskID,
		"scheduleAt", scheduleAtUTC)

	return taskID, nil
}
