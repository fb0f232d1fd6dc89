package models

import (
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
)

// BaseModel provides common fields and auto-generated ULID for all models
type BaseModel struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(26)"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// BeforeCreate generates a ULID for the ID field if it's empty
func (b *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = ulid.Make().String()
	}
	return nil
}

// Role is the authorization level of a user account
type Role string

const (
	RoleUser  Role = "USER"
	RoleAgent Role = "AGENT"
	RoleAdmin Role = "ADMIN"
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAgent, RoleAdmin:
		return true
	}
	return false
}

// User represents a local user account
type User struct {
	BaseModel
	Email        string    `json:"email" gorm:"unique;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Name         string    `json:"name"`
	Role         Role      `json:"role" gorm:"type:varchar(8);not null;default:'USER'"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// PropertyType distinguishes sale listings from rentals
type PropertyType string

const (
	TypeSale PropertyType = "SALE"
	TypeRent PropertyType = "RENT"
)

// PropertyStatus is the lifecycle state of a listing
type PropertyStatus string

const (
	StatusAvailable PropertyStatus = "AVAILABLE"
	StatusSold      PropertyStatus = "SOLD"
	StatusRented    PropertyStatus = "RENTED"
	StatusExpired   PropertyStatus = "EXPIRED"
)

// Property represents a real-estate listing
type Property struct {
	BaseModel
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description" gorm:"type:text"`
	Address     string         `json:"address"`
	Price       float64        `json:"price"`
	Type        PropertyType   `json:"type" gorm:"type:varchar(8);not null"`
	Status      PropertyStatus `json:"status" gorm:"type:varchar(12);not null;default:'AVAILABLE'"`
	ImageURL    string         `json:"image_url"`
	Bedrooms    int            `json:"bedrooms"`
	Bathrooms   int            `json:"bathrooms"`
	AreaSqFt    float64        `json:"area_sq_ft"`
	AgentID     string         `json:"agent_id" gorm:"not null"`

	// Relationships
	Agent *User `json:"agent,omitempty" gorm:"foreignKey:AgentID;references:ID;constraint:OnDelete:SET NULL,OnUpdate:CASCADE"`
}

// Inquiry represents a user's message about a listing
type Inquiry struct {
	BaseModel
	UserID     string `json:"user_id" gorm:"not null"`
	PropertyID string `json:"property_id" gorm:"not null"`
	Message    string `json:"message" gorm:"type:text"`

	// Relationships
	User     *User     `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	Property *Property `json:"property,omitempty" gorm:"foreignKey:PropertyID;references:ID;constraint:OnDelete:CASCADE"`
}

// Notification is delivered to an agent when one of their listings
// receives an inquiry. Written by the worker, not by request handlers.
type Notification struct {
	BaseModel
	AgentID   string     `json:"agent_id" gorm:"not null;index"`
	InquiryID string     `json:"inquiry_id" gorm:"not null"`
	Message   string     `json:"message" gorm:"type:text"`
	ReadAt    *time.Time `json:"read_at"`
}

// AutoMigrate runs database migrations for all models
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{}, &Property{}, &Inquiry{}, &Notification{},
	)
}

// FindByID safely finds a record by string ID
func FindByID[T any](db *gorm.DB, id string, model *T) error {
	return db.Where("id = ?", id).First(model).Error
}
