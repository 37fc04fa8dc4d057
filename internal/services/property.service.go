package services

import (
	"rentify/internal/models"
	"rentify/internal/repository"
)

type PropertyService struct {
	properties repository.PropertyRepository
	consumers  repository.ConsumerRepository
	cities     repository.CityRepository
}

func NewPropertyService(
	properties repository.PropertyRepository,
	consumers repository.ConsumerRepository,
	cities repository.CityRepository,
) *PropertyService {
	return &PropertyService{
		properties: properties,
		consumers:  consumers,
		cities:     cities,
	}
}

func (s *PropertyService) Find(id uint) (*models.Property, error) {
	return s.properties.FindByID(id)
}

func (s *PropertyService) FindAll(filter repository.PropertyFilter, page, size int) ([]models.Property, int64, error) {
	return s.properties.FindAll(filter, page, size)
}

type PropertyInput struct {
	OwnerID     uint
	CityID      uint
	Type        models.PropertyType
	Square      float64
	Description string
	Street      string
	PostalCode  string
}

func (s *PropertyService) Create(input PropertyInput) (*models.Property, error) {
	property, err := models.NewProperty(input.OwnerID, input.CityID, input.Type,
		input.Square, input.Description, input.Street, input.PostalCode)
	if err != nil {
		return nil, err
	}

	owner, err := s.consumers.FindByID(input.OwnerID)
	if err != nil {
		return nil, err
	}
	if !owner.IsLandlord() {
		return nil, models.ValidationError("property owner %d is not a landlord", input.OwnerID)
	}
	if _, err := s.cities.FindByID(input.CityID); err != nil {
		return nil, err
	}

	if err := s.properties.Create(property); err != nil {
		return nil, err
	}
	return property, nil
}

func (s *PropertyService) Update(property *models.Property) error {
	if err := property.SetSquare(property.Square); err != nil {
		return err
	}
	if _, err := s.cities.FindByID(property.CityID); err != nil {
		return err
	}
	return s.properties.Update(property)
}

// Remove soft-deletes the property and marks it unavailable. Idempotent.
func (s *PropertyService) Remove(id uint) error {
	property, err := s.properties.FindByID(id)
	if err != nil {
		return err
	}
	if property.Status == models.StatusDeleted {
		return nil
	}
	if err := validatePublicationTransition(property.Status, models.StatusDeleted); err != nil {
		return err
	}
	return s.properties.UpdateStatus(id, models.StatusDeleted, false)
}

func (s *PropertyService) Publish(id uint) error {
	return s.transition(id, models.StatusPublished)
}

func (s *PropertyService) Moderate(id uint) error {
	return s.transition(id, models.StatusModeration)
}

func (s *PropertyService) transition(id uint, to models.PublicationStatus) error {
	property, err := s.properties.FindByID(id)
	if err != nil {
		return err
	}
	if err := validatePublicationTransition(property.Status, to); err != nil {
		return err
	}
	if property.Status == to {
		return nil
	}
	return s.properties.UpdateStatus(id, to, property.IsAvailable)
}
