package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidFabric is returned when a catalog entry fails basic checks.
var ErrInvalidFabric = errors.New("fabric requires a name and a positive price")

// Fabric is one entry of the in-house fabric collection the wizard's
// fabric picker offers when the atelier provides the fabric.
type Fabric struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Price     int       `json:"price" db:"price"` // PKR per outfit
	Active    bool      `json:"active" db:"active"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// NewFabric creates a new Fabric and validates it.
func NewFabric(name string, price int) (*Fabric, error) {
	name = strings.TrimSpace(name)
	if name == "" || price <= 0 {
		return nil, ErrInvalidFabric
	}

	return &Fabric{
		ID:        uuid.NewString(),
		Name:      name,
		Price:     price,
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}, nil
}
