package tasks

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

// Task type constants
const (
	TypeInquiryNotify = "inquiry:notify"
)

// InquiryNotifyPayload identifies the inquiry the agent should hear about
type InquiryNotifyPayload struct {
	InquiryID string `json:"inquiry_id"`
}

// NewInquiryNotifyTask creates a task to notify an agent about a new inquiry
func NewInquiryNotifyTask(inquiryID string) (*asynq.Task, error) {
	payload, err := json.Marshal(InquiryNotifyPayload{InquiryID: inquiryID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}
	return asynq.NewTask(TypeInquiryNotify, payload), nil
}

// ParseInquiryNotifyPayload parses task payload from an Asynq task
func ParseInquiryNotifyPayload(task *asynq.Task) (InquiryNotifyPayload, error) {
	var payload InquiryNotifyPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return payload, fmt.Errorf("failed to unmarshal payload: %w", err)
	}
	return payload, nil
}
