package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/TGrooves-208/react-typescript-shadcn-tanstack-demo/internal/logger"
	"github.com/TGrooves-208/react-typescript-shadcn-tanstack-demo/internal/model"
)

// Client-facing reasons for rejected input and uniqueness violations.
const (
	ReasonNameEmailRequired = "name and email are required"
	ReasonEmailExists       = "email already exists"
	ReasonUnknownField      = "unknown search field"
)

// User implements the user operations shared by the REST and GraphQL
// transports. Store failures come back as model errors the transports
// can classify.
type User struct {
	store  model.UserStore
	logger *logger.Logger
}

// NewUser creates a User service backed by store.
func NewUser(store model.UserStore, logger *logger.Logger) *User {
	return &User{
		store:  store,
		logger: logger,
	}
}

// List returns every user ordered by creation time. The slice is never nil.
func (s *User) List(ctx context.Context) ([]model.User, error) {
	users, err := s.store.List(ctx)
	if err != nil {
		s.logger.Error("User service: failed to list users",
			"error", err.Error())
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	s.logger.Debug("User service: users listed",
		"count", len(users))

	return nonNil(users), nil
}

// GetByID parses rawID and loads the user.
//
// Returns model.ErrNotFound when no row matches.
func (s *User) GetByID(ctx context.Context, rawID string) (model.User, error) {
	id, err := model.ParseUserID(rawID)
	if err != nil {
		s.logger.Error("User service: failed to parse user id",
			"id", rawID,
			"error", err.Error())
		return model.User{}, err
	}

	user, err := s.store.GetByID(ctx, id)
	if err != nil {
		s.logStoreError("failed to get user", id, err)
		return model.User{}, fmt.Errorf("failed to get user: %w", err)
	}

	return user, nil
}

// SearchByField returns the users whose field contains needle, ignoring case.
// Wildcards in needle match literally.
func (s *User) SearchByField(ctx context.Context, field model.SearchField, needle string) ([]model.User, error) {
	if !field.Valid() {
		s.logger.Info("User service: rejected search",
			"field", string(field))
		return nil, model.NewValidationError(ReasonUnknownField)
	}

	users, err := s.store.SearchByField(ctx, field, needle)
	if err != nil {
		s.logger.Error("User service: failed to search users",
			"field", string(field),
			"needle", needle,
			"error", err.Error())
		return nil, fmt.Errorf("failed to search users by %s: %w", field, err)
	}

	s.logger.Debug("User service: users searched",
		"field", string(field),
		"needle", needle,
		"count", len(users))

	return nonNil(users), nil
}

// SearchByCompany is SearchByField on the company column.
func (s *User) SearchByCompany(ctx context.Context, company string) ([]model.User, error) {
	return s.SearchByField(ctx, model.SearchFieldCompany, company)
}

// SearchByProfession is SearchByField on the profession column.
func (s *User) SearchByProfession(ctx context.Context, profession string) ([]model.User, error) {
	return s.SearchByField(ctx, model.SearchFieldProfession, profession)
}

// Create inserts a user. Name and email must not be blank.
//
// Returns a validation error for blank input and a conflict error when the
// email is already taken.
func (s *User) Create(ctx context.Context, params model.CreateUserParams) (model.User, error) {
	if isBlank(params.Name) || isBlank(params.Email) {
		s.logger.Info("User service: rejected user creation",
			"reason", ReasonNameEmailRequired)
		return model.User{}, model.NewValidationError(ReasonNameEmailRequired)
	}

	user, err := s.store.Create(ctx, params)
	if err != nil {
		if model.KindOf(err) == model.KindConflict {
			s.logger.Info("User service: email already exists",
				"email", params.Email)
			return model.User{}, model.NewConflictError(ReasonEmailExists, err)
		}
		s.logger.Error("User service: failed to create user",
			"email", params.Email,
			"error", err.Error())
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User service: user created",
		"id", user.ID,
		"email", user.Email)

	return user, nil
}

// Update changes the fields set in params and leaves the rest untouched.
// An empty Profession or Company clears the column. updated_at is refreshed
// even when params sets nothing.
//
// Parameters:
//   - rawID: the user id as received by the transport
//   - params: fields to change; name and email cannot be blank when set
//
// Returns the updated user, a validation error, a conflict error for a taken
// email or model.ErrNotFound.
func (s *User) Update(ctx context.Context, rawID string, params model.UpdateUserParams) (model.User, error) {
	if params.IsEmpty() {
		s.logger.Debug("User service: update without fields refreshes updated_at only",
			"id", rawID)
	}
	if (params.Name != nil && isBlank(*params.Name)) || (params.Email != nil && isBlank(*params.Email)) {
		s.logger.Info("User service: rejected user update",
			"id", rawID,
			"reason", ReasonNameEmailRequired)
		return model.User{}, model.NewValidationError(ReasonNameEmailRequired)
	}

	id, err := model.ParseUserID(rawID)
	if err != nil {
		s.logger.Error("User service: failed to parse user id",
			"id", rawID,
			"error", err.Error())
		return model.User{}, err
	}

	user, err := s.store.Update(ctx, id, params)
	if err != nil {
		if model.KindOf(err) == model.KindConflict {
			s.logger.Info("User service: email already exists",
				"id", id)
			return model.User{}, model.NewConflictError(ReasonEmailExists, err)
		}
		s.logStoreError("failed to update user", id, err)
		return model.User{}, fmt.Errorf("failed to update user: %w", err)
	}

	s.logger.Info("User service: user updated",
		"id", user.ID)

	return user, nil
}

// Delete removes the user and returns the row as it was before deletion.
func (s *User) Delete(ctx context.Context, rawID string) (model.User, error) {
	id, err := model.ParseUserID(rawID)
	if err != nil {
		s.logger.Error("User service: failed to parse user id",
			"id", rawID,
			"error", err.Error())
		return model.User{}, err
	}

	user, err := s.store.Delete(ctx, id)
	if err != nil {
		s.logStoreError("failed to delete user", id, err)
		return model.User{}, fmt.Errorf("failed to delete user: %w", err)
	}

	s.logger.Info("User service: user deleted",
		"id", user.ID)

	return user, nil
}

func (s *User) logStoreError(msg string, id int64, err error) {
	if model.KindOf(err) == model.KindNotFound {
		s.logger.Info("User service: user not found",
			"id", id)
		return
	}
	s.logger.Error("User service: "+msg,
		"id", id,
		"error", err.Error())
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func nonNil(users []model.User) []model.User {
	if users == nil {
		return []model.User{}
	}
	return users
}
