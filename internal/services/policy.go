package services

import "rentify/internal/models"

// IsPrivileged reports whether the role may act on resources it does not
// own.
func IsPrivileged(role models.Role) bool {
	return role == models.RoleAdmin || role == models.RoleModerator
}

// CanManage reports whether the actor may modify a resource owned by
// ownerID: owners manage their own resources, admins and moderators manage
// anyone's.
func CanManage(actorID uint, actorRole models.Role, ownerID uint) bool {
	if IsPrivileged(actorRole) {
		return true
	}
	return actorID == ownerID
}

// CanViewContract restricts contract reads to the contract parties and
// privileged roles.
func CanViewContract(actorID uint, actorRole models.Role, contract *models.Contract) bool {
	if IsPrivileged(actorRole) {
		return true
	}
	if contract.TenantID == actorID {
		return true
	}
	return contract.Property != nil && contract.Property.OwnerID == actorID
}
