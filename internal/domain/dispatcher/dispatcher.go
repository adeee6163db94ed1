package dispatcher

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/n8dizzle/debrief-tools/internal/domain/dispatcher/valueobjects"
	"github.com/n8dizzle/debrief-tools/internal/shared/biztime"
)

// Dispatcher is a role-tagged actor: the author of debriefs and, for
// manager-level roles, the reviewer of spot checks.
type Dispatcher struct {
	id        uint
	name      string
	email     string
	role      vo.Role
	isPrimary bool
	isActive  bool
	createdAt time.Time
}

func NewDispatcher(name, email string, role vo.Role, isPrimary bool) (*Dispatcher, error) {
	if len(strings.TrimSpace(name)) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(strings.TrimSpace(email)) == 0 {
		return nil, fmt.Errorf("email is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &Dispatcher{
		name:      name,
		email:     strings.ToLower(email),
		role:      role,
		isPrimary: isPrimary,
		isActive:  true,
		createdAt: biztime.NowUTC(),
	}, nil
}

func ReconstructDispatcher(
	id uint,
	name string,
	email string,
	role vo.Role,
	isPrimary bool,
	isActive bool,
	createdAt time.Time,
) (*Dispatcher, error) {
	if id == 0 {
		return nil, fmt.Errorf("dispatcher ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &Dispatcher{
		id:        id,
		name:      name,
		email:     email,
		role:      role,
		isPrimary: isPrimary,
		isActive:  isActive,
		createdAt: createdAt,
	}, nil
}

func (d *Dispatcher) ID() uint {
	return d.id
}

func (d *Dispatcher) Name() string {
	return d.name
}

func (d *Dispatcher) Email() string {
	return d.email
}

func (d *Dispatcher) Role() vo.Role {
	return d.role
}

func (d *Dispatcher) IsPrimary() bool {
	return d.isPrimary
}

func (d *Dispatcher) IsActive() bool {
	return d.isActive
}

func (d *Dispatcher) CreatedAt() time.Time {
	return d.createdAt
}

func (d *Dispatcher) SetID(id uint) error {
	if d.id != 0 {
		return fmt.Errorf("dispatcher ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("dispatcher ID cannot be zero")
	}
	d.id = id
	return nil
}

func (d *Dispatcher) CanReview() bool {
	return d.isActive && d.role.CanReview()
}

func (d *Dispatcher) Deactivate() {
	d.isActive = false
}
