package models

type City struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"uniqueIndex;size:64;not null" json:"name"`
}

func NewCity(name string) (*City, error) {
	if name == "" {
		return nil, ValidationError("city name is required")
	}
	return &City{Name: name}, nil
}
