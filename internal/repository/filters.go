package repository

import (
	"time"

	"rentify/internal/models"
)

// Filter structs carry optional predicates; nil fields impose no
// constraint. Every present field AND-composes into the final query.

type PropertyFilter struct {
	Status      *models.PublicationStatus
	CityID      *uint
	Type        *models.PropertyType
	MinSquare   *float64
	MaxSquare   *float64
	IsAvailable *bool
	OwnerID     *uint
}

type ContractFilter struct {
	LandlordID *uint
	TenantID   *uint
	PropertyID *uint
	FromDate   *time.Time
	ToDate     *time.Time
}

type ReviewFilter struct {
	Status     *models.PublicationStatus
	AuthorID   *uint
	ContractID *uint
	// ReviewedID selects reviews about the given consumer: reviews on
	// contracts where they are the tenant or the property owner, excluding
	// their own authored reviews.
	ReviewedID *uint
}

type TenantFilter struct {
	InSearch *bool
	Status   *models.ConsumerStatus
	Gender   *models.Gender
}

func paginate(page, size int) (offset, limit int) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 20
	}
	return page * size, size
}
