package models

// Role is the account role stored with every user row.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleModerator Role = "MODERATOR"
	RoleTenant    Role = "TENANT"
	RoleLandlord  Role = "LANDLORD"
	RoleGuest     Role = "GUEST"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleModerator, RoleTenant, RoleLandlord, RoleGuest:
		return Role(s), nil
	}
	return "", ValidationError("unknown role %q", s)
}

// ConsumerStatus is the account state of a marketplace participant.
type ConsumerStatus string

const (
	ConsumerActive  ConsumerStatus = "ACTIVE"
	ConsumerBanned  ConsumerStatus = "BANNED"
	ConsumerDeleted ConsumerStatus = "DELETED"
)

func ParseConsumerStatus(s string) (ConsumerStatus, error) {
	switch ConsumerStatus(s) {
	case ConsumerActive, ConsumerBanned, ConsumerDeleted:
		return ConsumerStatus(s), nil
	}
	return "", ValidationError("unknown consumer status %q", s)
}

// PublicationStatus is the visibility state of a property or review.
type PublicationStatus string

const (
	StatusPublished  PublicationStatus = "PUBLISHED"
	StatusModeration PublicationStatus = "MODERATION"
	StatusDeleted    PublicationStatus = "DELETED"
)

func ParsePublicationStatus(s string) (PublicationStatus, error) {
	switch PublicationStatus(s) {
	case StatusPublished, StatusModeration, StatusDeleted:
		return PublicationStatus(s), nil
	}
	return "", ValidationError("unknown publication status %q", s)
}

type PropertyType string

const (
	PropertyApartment PropertyType = "APARTMENT"
	PropertyHouse     PropertyType = "HOUSE"
	PropertyRoom      PropertyType = "ROOM"
)

func ParsePropertyType(s string) (PropertyType, error) {
	switch PropertyType(s) {
	case PropertyApartment, PropertyHouse, PropertyRoom:
		return PropertyType(s), nil
	}
	return "", ValidationError("unknown property type %q", s)
}

type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

func ParseGender(s string) (Gender, error) {
	switch Gender(s) {
	case GenderMale, GenderFemale:
		return Gender(s), nil
	}
	return "", ValidationError("unknown gender %q", s)
}
