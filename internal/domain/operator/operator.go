package operator

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrInvalidRole     = errors.New("invalid operator role")
	ErrInvalidUsername = errors.New("invalid username")
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleCashier Role = "cashier"
)

func NewRole(value string) (Role, error) {
	role := Role(strings.ToLower(strings.TrimSpace(value)))
	switch role {
	case RoleAdmin, RoleCashier:
		return role, nil
	default:
		return "", ErrInvalidRole
	}
}

func (r Role) String() string {
	return string(r)
}

// Operator is the terminal user a cart session belongs to.
type Operator struct {
	id       uuid.UUID
	username string
	role     Role
	isActive bool
}

func NewOperator(id uuid.UUID, username string, role Role, isActive bool) (*Operator, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, ErrInvalidUsername
	}
	return &Operator{
		id:       id,
		username: username,
		role:     role,
		isActive: isActive,
	}, nil
}

func (o *Operator) ID() uuid.UUID    { return o.id }
func (o *Operator) Username() string { return o.username }
func (o *Operator) Role() Role       { return o.role }
func (o *Operator) IsActive() bool   { return o.isActive }
