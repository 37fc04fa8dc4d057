package services

import (
	"rentify/internal/models"
	"rentify/internal/repository"
)

type CityService struct {
	cities repository.CityRepository
}

func NewCityService(cities repository.CityRepository) *CityService {
	return &CityService{cities: cities}
}

func (s *CityService) Find(id uint) (*models.City, error) {
	return s.cities.FindByID(id)
}

func (s *CityService) FindAll(name string, page, size int) ([]models.City, int64, error) {
	return s.cities.FindAll(name, page, size)
}

func (s *CityService) Create(name string) (*models.City, error) {
	city, err := models.NewCity(name)
	if err != nil {
		return nil, err
	}
	if err := s.cities.Create(city); err != nil {
		return nil, err
	}
	return city, nil
}

func (s *CityService) Update(id uint, name string) (*models.City, error) {
	city, err := s.cities.FindByID(id)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return nil, models.ValidationError("city name is required")
	}
	city.Name = name
	if err := s.cities.Update(city); err != nil {
		return nil, err
	}
	return city, nil
}

// Remove hard-deletes the city; cities carry no soft-delete state.
func (s *CityService) Remove(id uint) error {
	if _, err := s.cities.FindByID(id); err != nil {
		return err
	}
	return s.cities.Delete(id)
}
