package gql

import (
	"context"
	"errors"
	"strconv"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"

	"github.com/TGrooves-208/react-typescript-shadcn-tanstack-demo/internal/logger"
	"github.com/TGrooves-208/react-typescript-shadcn-tanstack-demo/internal/model"
)

// Messages surfaced in the GraphQL errors array.
const (
	MsgUserNotFound    = "User not found"
	MsgEmailExists     = "Email already exists"
	MsgUnexpectedError = "Unexpected error."
)

// UserService defines the user operations the resolvers call.
type UserService interface {
	List(ctx context.Context) ([]model.User, error)
	GetByID(ctx context.Context, rawID string) (model.User, error)
	SearchByCompany(ctx context.Context, company string) ([]model.User, error)
	SearchByProfession(ctx context.Context, profession string) ([]model.User, error)
	Create(ctx context.Context, params model.CreateUserParams) (model.User, error)
	Update(ctx context.Context, rawID string, params model.UpdateUserParams) (model.User, error)
	Delete(ctx context.Context, rawID string) (model.User, error)
}

// Resolver implements the Query and Mutation fields.
type Resolver struct {
	userService UserService
	logger      *logger.Logger
}

// NewResolver creates a Resolver backed by userService.
func NewResolver(userService UserService, logger *logger.Logger) *Resolver {
	return &Resolver{
		userService: userService,
		logger:      logger,
	}
}

// Users lists every user.
func (r *Resolver) Users(p graphql.ResolveParams) (interface{}, error) {
	users, err := r.userService.List(p.Context)
	if err != nil {
		return nil, r.resolverError("users", err)
	}
	return convertUsers(users), nil
}

// User resolves to null when the user does not exist.
func (r *Resolver) User(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)

	user, err := r.userService.GetByID(p.Context, id)
	if err != nil {
		if model.KindOf(err) == model.KindNotFound {
			return nil, nil
		}
		return nil, r.resolverError("user", err)
	}
	return convertUser(user), nil
}

// UsersByCompany matches a case-insensitive substring of company.
func (r *Resolver) UsersByCompany(p graphql.ResolveParams) (interface{}, error) {
	company, _ := p.Args["company"].(string)

	users, err := r.userService.SearchByCompany(p.Context, company)
	if err != nil {
		return nil, r.resolverError("usersByCompany", err)
	}
	return convertUsers(users), nil
}

// UsersByProfession matches a case-insensitive substring of profession.
func (r *Resolver) UsersByProfession(p graphql.ResolveParams) (interface{}, error) {
	profession, _ := p.Args["profession"].(string)

	users, err := r.userService.SearchByProfession(p.Context, profession)
	if err != nil {
		return nil, r.resolverError("usersByProfession", err)
	}
	return convertUsers(users), nil
}

// CreateUser inserts a user from the CreateUserInput argument.
func (r *Resolver) CreateUser(p graphql.ResolveParams) (interface{}, error) {
	input, _ := p.Args["input"].(map[string]interface{})
	name, _ := input["name"].(string)
	email, _ := input["email"].(string)

	user, err := r.userService.Create(p.Context, model.CreateUserParams{
		Name:       name,
		Email:      email,
		Profession: optionalString(input, "profession"),
		Company:    optionalString(input, "company"),
	})
	if err != nil {
		return nil, r.resolverError("createUser", err)
	}
	return convertUser(user), nil
}

// UpdateUser applies the fields present in UpdateUserInput.
//
// A field sent as null is passed on as an empty string: profession and
// company are cleared, name and email fail validation.
func (r *Resolver) UpdateUser(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)
	input, _ := p.Args["input"].(map[string]interface{})
	nulls := nullFields(p, "input")

	user, err := r.userService.Update(p.Context, id, model.UpdateUserParams{
		Name:       updatedString(input, nulls, "name"),
		Email:      updatedString(input, nulls, "email"),
		Profession: updatedString(input, nulls, "profession"),
		Company:    updatedString(input, nulls, "company"),
	})
	if err != nil {
		return nil, r.resolverError("updateUser", err)
	}
	return convertUser(user), nil
}

// DeleteUser removes a user and resolves to the deleted row.
func (r *Resolver) DeleteUser(p graphql.ResolveParams) (interface{}, error) {
	id, _ := p.Args["id"].(string)

	user, err := r.userService.Delete(p.Context, id)
	if err != nil {
		return nil, r.resolverError("deleteUser", err)
	}
	return convertUser(user), nil
}

// resolverError converts a service error into the message clients see.
// Internal details are logged and replaced with a generic message.
func (r *Resolver) resolverError(field string, err error) error {
	switch model.KindOf(err) {
	case model.KindNotFound:
		return errors.New(MsgUserNotFound)
	case model.KindConflict:
		return errors.New(MsgEmailExists)
	case model.KindValidation:
		return errors.New(model.MessageOf(err))
	default:
		r.logger.Error("GraphQL resolver: unexpected error",
			"field", field,
			"error", err.Error())
		return errors.New(MsgUnexpectedError)
	}
}

func optionalString(input map[string]interface{}, key string) *string {
	v, ok := input[key].(string)
	if !ok {
		return nil
	}
	return &v
}

func updatedString(input map[string]interface{}, nulls map[string]bool, key string) *string {
	if v := optionalString(input, key); v != nil {
		return v
	}
	if nulls[key] {
		empty := ""
		return &empty
	}
	return nil
}

// nullFields returns the fields of the input object argument arg that the
// client set to null. Only variables can carry null, either as the whole
// object or as a single field of an inline object.
func nullFields(p graphql.ResolveParams, arg string) map[string]bool {
	vars := rawVariables(p.Context)
	if len(vars) == 0 {
		return nil
	}

	nulls := map[string]bool{}
	for _, field := range p.Info.FieldASTs {
		if field == nil {
			continue
		}
		for _, a := range field.Arguments {
			if a == nil || a.Name == nil || a.Name.Value != arg {
				continue
			}
			switch v := a.Value.(type) {
			case *ast.Variable:
				obj, _ := variableValue(vars, v).(map[string]interface{})
				for key, value := range obj {
					if value == nil {
						nulls[key] = true
					}
				}
			case *ast.ObjectValue:
				for _, of := range v.Fields {
					if of == nil || of.Name == nil {
						continue
					}
					ref, ok := of.Value.(*ast.Variable)
					if !ok || ref.Name == nil {
						continue
					}
					if value, set := vars[ref.Name.Value]; set && value == nil {
						nulls[of.Name.Value] = true
					}
				}
			}
		}
	}
	return nulls
}

func variableValue(vars map[string]interface{}, v *ast.Variable) interface{} {
	if v.Name == nil {
		return nil
	}
	return vars[v.Name.Value]
}

func convertUser(user model.User) map[string]interface{} {
	return map[string]interface{}{
		"id":         strconv.FormatInt(user.ID, 10),
		"name":       user.Name,
		"email":      user.Email,
		"profession": nullable(user.Profession),
		"company":    nullable(user.Company),
		"created_at": user.CreatedAt.UTC().Format(model.TimestampLayout),
		"updated_at": user.UpdatedAt.UTC().Format(model.TimestampLayout),
	}
}

func convertUsers(users []model.User) []interface{} {
	out := make([]interface{}, 0, len(users))
	for _, user := range users {
		out = append(out, convertUser(user))
	}
	return out
}

func nullable(s *string) interface{} {
	if s == nil {
		return nil
	}
	return *s
}
