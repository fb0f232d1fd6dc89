package workers

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/roost-dev/roost/internal/models"
	"github.com/roost-dev/roost/internal/tasks"
)

// HandleInquiryNotify writes an agent notification for a freshly created
// inquiry
func HandleInquiryNotify(ctx context.Context, t *asynq.Task, db *gorm.DB, logger zerolog.Logger) error {
	payload, err := tasks.ParseInquiryNotifyPayload(t)
	if err != nil {
		return err
	}

	var inquiry models.Inquiry
	if err := db.WithContext(ctx).Preload("User").Preload("Property").
		Where("id = ?", payload.InquiryID).First(&inquiry).Error; err != nil {
		return fmt.Errorf("failed to load inquiry %s: %w", payload.InquiryID, err)
	}
	if inquiry.Property == nil {
		return fmt.Errorf("inquiry %s has no property", payload.InquiryID)
	}

	userName := inquiry.UserID
	if inquiry.User != nil {
		userName = inquiry.User.Name
	}

	notification := &models.Notification{
		AgentID:   inquiry.Property.AgentID,
		InquiryID: inquiry.ID,
		Message:   fmt.Sprintf("%s inquired about %q", userName, inquiry.Property.Title),
	}
	if err := db.WithContext(ctx).Create(notification).Error; err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	logger.Info().
		Str("inquiry_id", inquiry.ID).
		Str("agent_id", notification.AgentID).
		Msg("Agent notified about inquiry")

	return nil
}
