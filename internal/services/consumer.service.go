package services

import (
	"errors"
	"time"

	"rentify/internal/models"
	"rentify/internal/repository"
	"rentify/internal/utils"
)

// ConsumerService owns account registration and the consumer status
// lifecycle, including the landlord ban cascade.
type ConsumerService struct {
	consumers  repository.ConsumerRepository
	properties repository.PropertyRepository
}

func NewConsumerService(consumers repository.ConsumerRepository, properties repository.PropertyRepository) *ConsumerService {
	return &ConsumerService{consumers: consumers, properties: properties}
}

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	Gender    models.Gender
	InSearch  bool
}

// Register creates an account with the given role. The role is fixed by the
// calling endpoint, never taken from the request body.
func (s *ConsumerService) Register(input RegisterInput, role models.Role) (*models.Consumer, error) {
	if input.Email == "" || input.Password == "" {
		return nil, models.ValidationError("email and password are required")
	}

	if _, err := s.consumers.FindByEmail(input.Email); err == nil {
		return nil, models.DuplicateError("a user with this email already exists")
	} else if !errors.Is(err, models.ErrNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, models.StorageError(err)
	}

	consumer := &models.Consumer{
		User: models.User{
			Email:    input.Email,
			Password: hash,
			Role:     role,
		},
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Phone:     input.Phone,
		Gender:    input.Gender,
		Status:    models.ConsumerActive,
		InSearch:  role == models.RoleTenant && input.InSearch,
	}
	if err := s.consumers.Create(consumer); err != nil {
		return nil, err
	}
	return consumer, nil
}

func (s *ConsumerService) Find(id uint) (*models.Consumer, error) {
	return s.consumers.FindByID(id)
}

func (s *ConsumerService) FindByEmail(email string) (*models.Consumer, error) {
	return s.consumers.FindByEmail(email)
}

func (s *ConsumerService) FindTenants(filter repository.TenantFilter, page, size int) ([]models.Consumer, int64, error) {
	return s.consumers.FindTenants(filter, page, size)
}

func (s *ConsumerService) FindLandlords(page, size int) ([]models.Consumer, int64, error) {
	return s.consumers.FindLandlords(page, size)
}

func (s *ConsumerService) Update(consumer *models.Consumer) error {
	return s.consumers.Update(consumer)
}

func (s *ConsumerService) RecordLogin(consumer *models.Consumer) error {
	if err := consumer.SetLastLogin(time.Now()); err != nil {
		return err
	}
	return s.consumers.Update(consumer)
}

// Remove soft-deletes the account. Tenants also drop out of search;
// removing a landlord force-deletes every owned property in the same
// transaction. Removing an already deleted account is a no-op.
func (s *ConsumerService) Remove(id uint) error {
	consumer, err := s.consumers.FindByID(id)
	if err != nil {
		return err
	}
	if consumer.Status == models.ConsumerDeleted {
		return nil
	}
	if err := validateConsumerTransition(consumer.Status, models.ConsumerDeleted); err != nil {
		return err
	}

	if consumer.IsLandlord() {
		return s.consumers.RemoveLandlordCascade(id)
	}

	consumer.Status = models.ConsumerDeleted
	if consumer.IsTenant() {
		consumer.InSearch = false
	}
	return s.consumers.Update(consumer)
}

// Block bans the account. Banning a landlord force-deletes every owned
// property in the same transaction; banning a tenant drops the search flag.
func (s *ConsumerService) Block(id uint) error {
	consumer, err := s.consumers.FindByID(id)
	if err != nil {
		return err
	}
	if err := validateConsumerTransition(consumer.Status, models.ConsumerBanned); err != nil {
		return err
	}
	if consumer.Status == models.ConsumerBanned {
		return nil
	}

	if consumer.IsLandlord() {
		return s.consumers.BanLandlordCascade(id)
	}

	consumer.Status = models.ConsumerBanned
	if consumer.IsTenant() {
		consumer.InSearch = false
	}
	return s.consumers.Update(consumer)
}

func (s *ConsumerService) Activate(id uint) error {
	consumer, err := s.consumers.FindByID(id)
	if err != nil {
		return err
	}
	if err := validateConsumerTransition(consumer.Status, models.ConsumerActive); err != nil {
		return err
	}
	if consumer.Status == models.ConsumerActive {
		return nil
	}
	return s.consumers.UpdateStatus(id, models.ConsumerActive)
}

func (s *ConsumerService) GetRating(id uint) (float64, error) {
	if _, err := s.consumers.FindByID(id); err != nil {
		return 0, err
	}
	return s.consumers.GetRating(id)
}

func (s *ConsumerService) AddFavorite(tenantID, propertyID uint) error {
	tenant, err := s.consumers.FindByID(tenantID)
	if err != nil {
		return err
	}
	if !tenant.IsTenant() {
		return models.ValidationError("only tenants have favorites")
	}
	if _, err := s.properties.FindByID(propertyID); err != nil {
		return err
	}
	return s.consumers.AddFavorite(tenantID, propertyID)
}

func (s *ConsumerService) RemoveFavorite(tenantID, propertyID uint) error {
	return s.consumers.RemoveFavorite(tenantID, propertyID)
}

func (s *ConsumerService) GetFavorites(tenantID uint) ([]models.Property, error) {
	if _, err := s.consumers.FindByID(tenantID); err != nil {
		return nil, err
	}
	return s.consumers.FindFavorites(tenantID)
}
