package mocks

import (
	"time"

	"github.com/stretchr/testify/mock"

	"rentify/internal/models"
	"rentify/internal/repository"
)

// Shared MockConsumerRepository
type MockConsumerRepository struct {
	mock.Mock
}

func (m *MockConsumerRepository) Create(consumer *models.Consumer) error {
	args := m.Called(consumer)
	return args.Error(0)
}

func (m *MockConsumerRepository) FindByID(id uint) (*models.Consumer, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Consumer), args.Error(1)
}

func (m *MockConsumerRepository) FindByEmail(email string) (*models.Consumer, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Consumer), args.Error(1)
}

func (m *MockConsumerRepository) FindTenants(filter repository.TenantFilter, page, size int) ([]models.Consumer, int64, error) {
	args := m.Called(filter, page, size)
	return args.Get(0).([]models.Consumer), args.Get(1).(int64), args.Error(2)
}

func (m *MockConsumerRepository) FindLandlords(page, size int) ([]models.Consumer, int64, error) {
	args := m.Called(page, size)
	return args.Get(0).([]models.Consumer), args.Get(1).(int64), args.Error(2)
}

func (m *MockConsumerRepository) Update(consumer *models.Consumer) error {
	args := m.Called(consumer)
	return args.Error(0)
}

func (m *MockConsumerRepository) UpdateStatus(id uint, status models.ConsumerStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}

func (m *MockConsumerRepository) BanLandlordCascade(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockConsumerRepository) RemoveLandlordCascade(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockConsumerRepository) GetRating(consumerID uint) (float64, error) {
	args := m.Called(consumerID)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockConsumerRepository) AddFavorite(tenantID, propertyID uint) error {
	args := m.Called(tenantID, propertyID)
	return args.Error(0)
}

func (m *MockConsumerRepository) RemoveFavorite(tenantID, propertyID uint) error {
	args := m.Called(tenantID, propertyID)
	return args.Error(0)
}

func (m *MockConsumerRepository) FindFavorites(tenantID uint) ([]models.Property, error) {
	args := m.Called(tenantID)
	return args.Get(0).([]models.Property), args.Error(1)
}

// Shared MockPropertyRepository
type MockPropertyRepository struct {
	mock.Mock
}

func (m *MockPropertyRepository) Create(property *models.Property) error {
	args := m.Called(property)
	return args.Error(0)
}

func (m *MockPropertyRepository) FindByID(id uint) (*models.Property, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Property), args.Error(1)
}

func (m *MockPropertyRepository) FindAll(filter repository.PropertyFilter, page, size int) ([]models.Property, int64, error) {
	args := m.Called(filter, page, size)
	return args.Get(0).([]models.Property), args.Get(1).(int64), args.Error(2)
}

func (m *MockPropertyRepository) Update(property *models.Property) error {
	args := m.Called(property)
	return args.Error(0)
}

func (m *MockPropertyRepository) UpdateStatus(id uint, status models.PublicationStatus, available bool) error {
	args := m.Called(id, status, available)
	return args.Error(0)
}

// Shared MockContractRepository
type MockContractRepository struct {
	mock.Mock
}

func (m *MockContractRepository) Create(contract *models.Contract) error {
	args := m.Called(contract)
	return args.Error(0)
}

func (m *MockContractRepository) FindByID(id uint) (*models.Contract, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Contract), args.Error(1)
}

func (m *MockContractRepository) FindAll(filter repository.ContractFilter, page, size int) ([]models.Contract, int64, error) {
	args := m.Called(filter, page, size)
	return args.Get(0).([]models.Contract), args.Get(1).(int64), args.Error(2)
}

func (m *MockContractRepository) FindOverlapping(propertyID uint, start, end time.Time, excludeID uint) ([]models.Contract, error) {
	args := m.Called(propertyID, start, end, excludeID)
	return args.Get(0).([]models.Contract), args.Error(1)
}

func (m *MockContractRepository) Update(contract *models.Contract) error {
	args := m.Called(contract)
	return args.Error(0)
}

func (m *MockContractRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}

// Shared MockReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(review *models.Review) error {
	args := m.Called(review)
	return args.Error(0)
}

func (m *MockReviewRepository) FindByID(id uint) (*models.Review, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Review), args.Error(1)
}

func (m *MockReviewRepository) FindAll(filter repository.ReviewFilter, page, size int) ([]models.Review, int64, error) {
	args := m.Called(filter, page, size)
	return args.Get(0).([]models.Review), args.Get(1).(int64), args.Error(2)
}

func (m *MockReviewRepository) FindByContractAndAuthor(contractID, authorID uint) ([]models.Review, error) {
	args := m.Called(contractID, authorID)
	return args.Get(0).([]models.Review), args.Error(1)
}

func (m *MockReviewRepository) Update(review *models.Review) error {
	args := m.Called(review)
	return args.Error(0)
}

func (m *MockReviewRepository) UpdateStatus(id uint, status models.PublicationStatus) error {
	args := m.Called(id, status)
	return args.Error(0)
}

// Shared MockCityRepository
type MockCityRepository struct {
	mock.Mock
}

func (m *MockCityRepository) Create(city *models.City) error {
	args := m.Called(city)
	return args.Error(0)
}

func (m *MockCityRepository) FindAll(name string, page, size int) ([]models.City, int64, error) {
	args := m.Called(name, page, size)
	return args.Get(0).([]models.City), args.Get(1).(int64), args.Error(2)
}

func (m *MockCityRepository) FindByID(id uint) (*models.City, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.City), args.Error(1)
}

func (m *MockCityRepository) Update(city *models.City) error {
	args := m.Called(city)
	return args.Error(0)
}

func (m *MockCityRepository) Delete(id uint) error {
	args := m.Called(id)
	return args.Error(0)
}
