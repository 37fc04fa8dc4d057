package services

import "rentify/internal/models"

// Status lifecycles. ACTIVE and BANNED (or PUBLISHED and MODERATION) swap
// freely; DELETED is terminal. Transitioning to the current state is a
// no-op so soft deletes stay idempotent.

func validateConsumerTransition(from, to models.ConsumerStatus) error {
	if from == to {
		return nil
	}
	if from == models.ConsumerDeleted {
		return models.ValidationError("a deleted account cannot change status")
	}
	return nil
}

func validatePublicationTransition(from, to models.PublicationStatus) error {
	if from == to {
		return nil
	}
	if from == models.StatusDeleted {
		return models.ValidationError("a deleted record cannot change status")
	}
	return nil
}
