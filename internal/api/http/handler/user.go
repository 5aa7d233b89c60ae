package handler

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/TGrooves-208/react-typescript-shadcn-tanstack-demo/internal/logger"
	"github.com/TGrooves-208/react-typescript-shadcn-tanstack-demo/internal/model"
)

// UserService defines business operations for user management.
type UserService interface {
	List(ctx context.Context) ([]model.User, error)
	GetByID(ctx context.Context, rawID string) (model.User, error)
	SearchByCompany(ctx context.Context, company string) ([]model.User, error)
	SearchByProfession(ctx context.Context, profession string) ([]model.User, error)
	Create(ctx context.Context, params model.CreateUserParams) (model.User, error)
	Update(ctx context.Context, rawID string, params model.UpdateUserParams) (model.User, error)
	Delete(ctx context.Context, rawID string) (model.User, error)
}

// User handles the REST endpoints for users.
type User struct {
	userService    UserService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(userService UserService, contextManager model.ContextManager, logger *logger.Logger) *User {
	return &User{
		userService:    userService,
		contextManager: contextManager,
		logger:         logger,
	}
}

// List returns every user, or the users matching ?company= or ?profession=.
func (h *User) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var (
		users []model.User
		err   error
	)
	company := strings.TrimSpace(c.Query("company"))
	profession := strings.TrimSpace(c.Query("profession"))

	switch {
	case company != "":
		users, err = h.userService.SearchByCompany(ctx, company)
	case profession != "":
		users, err = h.userService.SearchByProfession(ctx, profession)
	default:
		users, err = h.userService.List(ctx)
	}
	if err != nil {
		h.logFailure(ctx, "list users failed", err)
		return handleError(c, err)
	}

	return c.JSON(listUsersResponse{
		Success: true,
		Data:    convertUsersToResponse(users),
		Count:   len(users),
		Message: "Users retrieved successfully",
	})
}

// Get returns a single user by id.
func (h *User) Get(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := h.userService.GetByID(ctx, c.Params("id"))
	if err != nil {
		h.logFailure(ctx, "get user failed", err, "id", c.Params("id"))
		return handleError(c, err)
	}

	return c.JSON(userEnvelope{
		Success: true,
		Data:    convertUserToResponse(user),
		Message: "User retrieved successfully",
	})
}

// Create inserts a user and answers 201.
func (h *User) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req createUserRequest
	if err := decodeBody(c, &req); err != nil {
		h.logger.Debug("User handler: invalid create body",
			"error", err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: msgInvalidRequestBody})
	}

	user, err := h.userService.Create(ctx, model.CreateUserParams{
		Name:       req.Name,
		Email:      req.Email,
		Profession: req.Profession,
		Company:    req.Company,
	})
	if err != nil {
		h.logFailure(ctx, "create user failed", err, "email", req.Email)
		return handleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(userEnvelope{
		Success: true,
		Data:    convertUserToResponse(user),
		Message: "User created successfully",
	})
}

// Update replaces name and email, which are both required, and any optional
// field present in the body. A null profession or company clears it.
func (h *User) Update(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req updateUserRequest
	if err := decodeBody(c, &req); err != nil {
		h.logger.Debug("User handler: invalid update body",
			"error", err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: msgInvalidRequestBody})
	}

	name := valueOrEmpty(req.Name)
	email := valueOrEmpty(req.Email)

	user, err := h.userService.Update(ctx, c.Params("id"), model.UpdateUserParams{
		Name:       &name,
		Email:      &email,
		Profession: req.Profession.update(),
		Company:    req.Company.update(),
	})
	if err != nil {
		h.logFailure(ctx, "update user failed", err, "id", c.Params("id"))
		return handleError(c, err)
	}

	return c.JSON(userEnvelope{
		Success: true,
		Data:    convertUserToResponse(user),
		Message: "User updated successfully",
	})
}

func (h *User) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := h.userService.Delete(ctx, c.Params("id"))
	if err != nil {
		h.logFailure(ctx, "delete user failed", err, "id", c.Params("id"))
		return handleError(c, err)
	}

	return c.JSON(userEnvelope{
		Success: true,
		Data:    convertUserToResponse(user),
		Message: "User deleted successfully",
	})
}

func (h *User) logFailure(ctx context.Context, msg string, err error, args ...any) {
	args = append(args, "kind", model.KindOf(err).String(), "error", err.Error())
	if requestID, ok := h.contextManager.GetRequestIDFromContext(ctx); ok {
		args = append(args, "request_id", requestID)
	}
	h.logger.Debug("User handler: "+msg, args...)
}

// decodeBody unmarshals a JSON body with the app's decoder. An empty body
// decodes to the zero value.
func decodeBody(c *fiber.Ctx, out any) error {
	body := c.Body()
	if len(body) == 0 {
		return nil
	}
	return c.App().Config().JSONDecoder(body, out)
}

func valueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
