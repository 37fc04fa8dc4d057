package models

import "time"

// Contract binds a tenant to a property for a date range. Dates are
// inclusive calendar days; two contracts on the same property must not
// share a single day.
type Contract struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CreatedOn  time.Time `gorm:"autoCreateTime" json:"created_on"`
	StartDate  time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate    time.Time `gorm:"type:date;not null" json:"end_date"`
	PropertyID uint      `gorm:"not null" json:"property_id"`
	Property   *Property `gorm:"foreignKey:PropertyID" json:"-"`
	TenantID   uint      `gorm:"not null" json:"tenant_id"`
	Tenant     *Consumer `gorm:"foreignKey:TenantID" json:"-"`
}

// NewContract enforces the strict date order; equal or inverted dates are
// rejected. The overlap check against existing contracts happens in the
// service because it needs stored state.
func NewContract(propertyID, tenantID uint, startDate, endDate time.Time) (*Contract, error) {
	if propertyID == 0 {
		return nil, ValidationError("contract property is required")
	}
	if tenantID == 0 {
		return nil, ValidationError("contract tenant is required")
	}
	if err := ValidateContractDates(startDate, endDate); err != nil {
		return nil, err
	}
	return &Contract{
		PropertyID: propertyID,
		TenantID:   tenantID,
		StartDate:  startDate,
		EndDate:    endDate,
	}, nil
}

func ValidateContractDates(startDate, endDate time.Time) error {
	if !endDate.After(startDate) {
		return ValidationError("contract end date must be strictly after the start date")
	}
	return nil
}

// RangesOverlap reports whether two closed date intervals share at least
// one day. Touching endpoints count as overlap.
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}
