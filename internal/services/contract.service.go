package services

import (
	"time"

	"rentify/internal/models"
	"rentify/internal/repository"
)

// ContractService persists contracts after validating the date-range rules.
// An overlap check inside the write path guards against double bookings;
// the database exclusion constraint backs it up under concurrency.
type ContractService struct {
	contracts  repository.ContractRepository
	properties repository.PropertyRepository
	consumers  repository.ConsumerRepository
}

func NewContractService(
	contracts repository.ContractRepository,
	properties repository.PropertyRepository,
	consumers repository.ConsumerRepository,
) *ContractService {
	return &ContractService{
		contracts:  contracts,
		properties: properties,
		consumers:  consumers,
	}
}

func (s *ContractService) Find(id uint) (*models.Contract, error) {
	return s.contracts.FindByID(id)
}

func (s *ContractService) FindAll(filter repository.ContractFilter, page, size int) ([]models.Contract, int64, error) {
	return s.contracts.FindAll(filter, page, size)
}

// Create validates date order, resolves the references, rejects any overlap
// with existing contracts on the property and then persists.
func (s *ContractService) Create(propertyID, tenantID uint, startDate, endDate time.Time) (*models.Contract, error) {
	contract, err := models.NewContract(propertyID, tenantID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	if _, err := s.properties.FindByID(propertyID); err != nil {
		return nil, err
	}
	tenant, err := s.consumers.FindByID(tenantID)
	if err != nil {
		return nil, err
	}
	if !tenant.IsTenant() {
		return nil, models.ValidationError("contract party %d is not a tenant", tenantID)
	}

	if err := s.checkOverlap(propertyID, startDate, endDate, 0); err != nil {
		return nil, err
	}

	if err := s.contracts.Create(contract); err != nil {
		return nil, err
	}
	return contract, nil
}

// Update runs the same overlap check as Create but excludes the contract's
// own stored row, so shrinking or shifting a booking never collides with
// itself.
func (s *ContractService) Update(id uint, startDate, endDate time.Time) (*models.Contract, error) {
	if err := models.ValidateContractDates(startDate, endDate); err != nil {
		return nil, err
	}

	contract, err := s.contracts.FindByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.checkOverlap(contract.PropertyID, startDate, endDate, id); err != nil {
		return nil, err
	}

	contract.StartDate = startDate
	contract.EndDate = endDate
	if err := s.contracts.Update(contract); err != nil {
		return nil, err
	}
	return contract, nil
}

func (s *ContractService) Remove(id uint) error {
	if _, err := s.contracts.FindByID(id); err != nil {
		return err
	}
	return s.contracts.Delete(id)
}

func (s *ContractService) checkOverlap(propertyID uint, start, end time.Time, excludeID uint) error {
	overlapping, err := s.contracts.FindOverlapping(propertyID, start, end, excludeID)
	if err != nil {
		return err
	}
	if len(overlapping) > 0 {
		return models.ValidationError("contracts already exist in this date range")
	}
	return nil
}
