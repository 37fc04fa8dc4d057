package models

import "time"

// User holds the account fields shared by every participant. All users live
// in one table with Role as the discriminator; landlord- and tenant-specific
// fields sit on Consumer and stay at their zero value for other roles.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;size:64;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	CreatedOn time.Time `gorm:"autoCreateTime" json:"created_on"`
	LastLogin time.Time `json:"last_login"`
	Role      Role      `gorm:"size:16;not null" json:"role"`
}

// Consumer is a marketplace participant (tenant or landlord). Moderator and
// admin accounts share the table with an empty profile.
type Consumer struct {
	User      `gorm:"embedded"`
	FirstName string         `gorm:"size:32" json:"first_name"`
	LastName  string         `gorm:"size:32" json:"last_name"`
	Phone     string         `gorm:"size:32" json:"phone"`
	Gender    Gender         `gorm:"size:8" json:"gender"`
	Status    ConsumerStatus `gorm:"size:16;not null;default:ACTIVE" json:"status"`

	// Tenant only: visible in tenant search while true and ACTIVE.
	InSearch bool `json:"in_search"`

	// Landlord only. Removal is a soft delete of the properties, never a
	// physical cascade.
	Properties []Property `gorm:"foreignKey:OwnerID" json:"-"`

	// Tenant only: weak many-to-many, carries no ownership.
	Favorites []Property `gorm:"many2many:tenant_favorites" json:"-"`
}

func (Consumer) TableName() string { return "users" }

func (c *Consumer) IsLandlord() bool { return c.Role == RoleLandlord }
func (c *Consumer) IsTenant() bool   { return c.Role == RoleTenant }

// SetLastLogin rejects timestamps before the account creation time.
func (c *Consumer) SetLastLogin(t time.Time) error {
	if t.Before(c.CreatedOn) {
		return ValidationError("last login cannot precede account creation")
	}
	c.LastLogin = t
	return nil
}
