package model

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

// TimestampLayout is the wire format of created_at and updated_at.
const TimestampLayout = time.RFC3339Nano

// UserStore defines persistence operations for users.
//
// Implementations report a missing row as ErrNotFound and a unique
// constraint violation as an error wrapping ErrConflict.
type UserStore interface {
	List(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	SearchByField(ctx context.Context, field SearchField, needle string) ([]User, error)
	Create(ctx context.Context, params CreateUserParams) (User, error)
	Update(ctx context.Context, id int64, params UpdateUserParams) (User, error)
	Delete(ctx context.Context, id int64) (User, error)
}

// User represents a stored user.
type User struct {
	ID         int64
	Name       string
	Email      string
	Profession *string
	Company    *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CreateUserParams contains parameters to create a user.
type CreateUserParams struct {
	Name       string
	Email      string
	Profession *string
	Company    *string
}

// UpdateUserParams contains the fields to change on a user.
// A nil field is left untouched. An empty Profession or Company clears it.
type UpdateUserParams struct {
	Name       *string
	Email      *string
	Profession *string
	Company    *string
}

// IsEmpty reports whether no field is set.
func (p UpdateUserParams) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Profession == nil && p.Company == nil
}

// SearchField enumerates columns that support substring search.
type SearchField string

const (
	// SearchFieldCompany searches by company.
	SearchFieldCompany SearchField = "company"
	// SearchFieldProfession searches by profession.
	SearchFieldProfession SearchField = "profession"
)

// Valid reports whether f is a searchable column.
func (f SearchField) Valid() bool {
	return f == SearchFieldCompany || f == SearchFieldProfession
}

// ParseUserID parses a raw identifier as it arrives from a transport.
// The error deliberately does not wrap ErrValidation: users.id is a bigint
// and a value the column type cannot represent is a storage-level failure.
func ParseUserID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid input syntax for type bigint: %q", raw)
	}
	return id, nil
}
