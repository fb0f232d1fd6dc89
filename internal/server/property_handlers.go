package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/roost-dev/roost/internal/models"
)

// CreatePropertyRequest represents a listing submission
type CreatePropertyRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Address     string  `json:"address" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Type        string  `json:"type" binding:"required,oneof=SALE RENT"`
	ImageURL    string  `json:"image_url"`
	Bedrooms    int     `json:"bedrooms" binding:"gte=0"`
	Bathrooms   int     `json:"bathrooms" binding:"gte=0"`
	AreaSqFt    float64 `json:"area_sq_ft" binding:"gte=0"`
}

func (s *Server) listProperties(c *gin.Context) {
	var properties []models.Property
	if err := s.db.Where("status <> ?", models.StatusExpired).
		Order("created_at DESC").Find(&properties).Error; err != nil {
		s.logger.Error().Err(err).Msg("Failed to list properties")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, properties)
}

func (s *Server) getProperty(c *gin.Context) {
	var property models.Property
	if err := s.db.Preload("Agent").Where("id = ?", c.Param("id")).First(&property).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		s.logger.Error().Err(err).Msg("Failed to find property")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, property)
}

func (s *Server) searchProperties(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query parameter 'q' is required"})
		return
	}

	pattern := "%" + query + "%"
	var properties []models.Property
	if err := s.db.
		Where("status <> ?", models.StatusExpired).
		Where("title LIKE ? OR description LIKE ? OR address LIKE ?", pattern, pattern, pattern).
		Order("created_at DESC").
		Find(&properties).Error; err != nil {
		s.logger.Error().Err(err).Msg("Failed to search properties")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, properties)
}

func (s *Server) propertiesByType(c *gin.Context) {
	propertyType := models.PropertyType(strings.ToUpper(c.Param("type")))
	if propertyType != models.TypeSale && propertyType != models.TypeRent {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Type must be SALE or RENT"})
		return
	}

	var properties []models.Property
	if err := s.db.Where("type = ? AND status <> ?", propertyType, models.StatusExpired).
		Order("created_at DESC").Find(&properties).Error; err != nil {
		s.logger.Error().Err(err).Msg("Failed to list properties by type")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, properties)
}

func (s *Server) createProperty(c *gin.Context) {
	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	sessionData, _ := GetSessionData(c)

	property := &models.Property{
		Title:       req.Title,
		Description: req.Description,
		Address:     req.Address,
		Price:       req.Price,
		Type:        models.PropertyType(req.Type),
		Status:      models.StatusAvailable,
		ImageURL:    req.ImageURL,
		Bedrooms:    req.Bedrooms,
		Bathrooms:   req.Bathrooms,
		AreaSqFt:    req.AreaSqFt,
		AgentID:     sessionData.UserID,
	}

	if err := s.db.Create(property).Error; err != nil {
		s.logger.Error().Err(err).Msg("Failed to create property")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create property"})
		return
	}

	s.logger.Info().Str("property_id", property.ID).Str("agent_id", sessionData.UserID).
		Msg("Listing created")

	c.JSON(http.StatusCreated, property)
}

func (s *Server) deleteProperty(c *gin.Context) {
	sessionData, _ := GetSessionData(c)

	var property models.Property
	if err := models.FindByID(s.db, c.Param("id"), &property); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Property not found"})
			return
		}
		s.logger.Error().Err(err).Msg("Failed to find property")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	// Agents may only remove their own listings; admins may remove any
	if sessionData.Role != models.RoleAdmin && property.AgentID != sessionData.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only delete your own listings"})
		return
	}

	if err := s.db.Delete(&property).Error; err != nil {
		s.logger.Error().Err(err).Msg("Failed to delete property")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete property"})
		return
	}

	s.logger.Info().Str("property_id", property.ID).Str("deleted_by", sessionData.UserID).
		Msg("Listing deleted")

	c.Status(http.StatusNoContent)
}
