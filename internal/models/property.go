package models

import "time"

const maxPropertySquare = 10000

type Property struct {
	ID          uint              `gorm:"primaryKey" json:"id"`
	CreatedOn   time.Time         `gorm:"autoCreateTime" json:"created_on"`
	UpdatedOn   time.Time         `gorm:"autoUpdateTime" json:"updated_on"`
	OwnerID     uint              `gorm:"not null" json:"owner_id"`
	Owner       *Consumer         `gorm:"foreignKey:OwnerID" json:"-"`
	Status      PublicationStatus `gorm:"size:16;not null;default:MODERATION" json:"status"`
	Type        PropertyType      `gorm:"size:16;not null" json:"type"`
	IsAvailable bool              `json:"is_available"`
	Square      float64           `gorm:"not null" json:"square"`
	Description string            `gorm:"not null" json:"description"`
	Street      string            `gorm:"not null" json:"street"`
	PostalCode  string            `gorm:"size:16;not null" json:"postal_code"`
	CityID      uint              `gorm:"not null" json:"city_id"`
	City        *City             `gorm:"foreignKey:CityID" json:"-"`
}

// NewProperty validates the field invariants; referential checks (owner,
// city) belong to the service layer.
func NewProperty(ownerID, cityID uint, propertyType PropertyType, square float64, description, street, postalCode string) (*Property, error) {
	if ownerID == 0 {
		return nil, ValidationError("property owner is required")
	}
	if cityID == 0 {
		return nil, ValidationError("property city is required")
	}
	if square <= 0 || square > maxPropertySquare {
		return nil, ValidationError("square must be positive and at most %d", maxPropertySquare)
	}
	return &Property{
		OwnerID:     ownerID,
		CityID:      cityID,
		Status:      StatusModeration,
		Type:        propertyType,
		IsAvailable: true,
		Square:      square,
		Description: description,
		Street:      street,
		PostalCode:  postalCode,
	}, nil
}

func (p *Property) SetSquare(square float64) error {
	if square <= 0 || square > maxPropertySquare {
		return ValidationError("square must be positive and at most %d", maxPropertySquare)
	}
	p.Square = square
	return nil
}
