package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/roost-dev/roost/internal/models"
	"github.com/roost-dev/roost/internal/tasks"
)

// CreateInquiryRequest represents an inquiry submission
type CreateInquiryRequest struct {
	PropertyID string `json:"property_id" binding:"required"`
	Message    string `json:"message" binding:"required"`
}

func (s *Server) createInquiry(c *gin.Context) {
	var req CreateInquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sessionData, _ := GetSessionData(c)

	var property models.Property
	if err := models.FindByID(s.db, req.PropertyID, &property); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		s.logger.Error().Err(err).Msg("Failed to find property")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	inquiry := &models.Inquiry{
		UserID:     sessionData.UserID,
		PropertyID: property.ID,
		Message:    req.Message,
	}
	if err := s.db.Create(inquiry).Error; err != nil {
		s.logger.Error().Err(err).Msg("Failed to create inquiry")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create inquiry"})
		return
	}

	// Notify the agent asynchronously; the inquiry is already stored, so
	// enqueue failures only cost the notification
	task, err := tasks.NewInquiryNotifyTask(inquiry.ID)
	if err == nil {
		_, err = s.asynqClient.Enqueue(task)
	}
	if err != nil {
		s.logger.Warn().Err(err).Str("inquiry_id", inquiry.ID).
			Msg("Failed to enqueue inquiry notification")
	}

	s.logger.Info().Str("inquiry_id", inquiry.ID).Str("property_id", property.ID).
		Str("user_id", sessionData.UserID).Msg("Inquiry created")

	c.JSON(http.StatusCreated, inquiry)
}

func (s *Server) listInquiries(c *gin.Context) {
	sessionData, _ := GetSessionData(c)

	query := s.db.Preload("User").Preload("Property").Order("created_at DESC")

	switch sessionData.Role {
	case models.RoleAdmin:
		// Admins see everything
	case models.RoleAgent:
		// Agents see inquiries against their own listings
		query = query.Joins("JOIN properties ON properties.id = inquiries.property_id").
			Where("properties.agent_id = ?", sessionData.UserID)
	default:
		// Users see their own inquiries
		query = query.Where("inquiries.user_id = ?", sessionData.UserID)
	}

	var inquiries []models.Inquiry
	if err := query.Find(&inquiries).Error; err != nil {
		s.logger.Error().Err(err).Msg("Failed to list inquiries")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, inquiries)
}
