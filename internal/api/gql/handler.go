package gql

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/graphql-go/graphql/language/parser"

	"github.com/TGrooves-208/react-typescript-shadcn-tanstack-demo/internal/logger"
)

// MsgMutationOverGET is returned when a GET request selects a mutation.
const MsgMutationOverGET = "Can only perform a mutation operation from a POST request."

type request struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName"`
}

type requestError struct {
	Message string `json:"message"`
}

type errorsResponse struct {
	Errors []requestError `json:"errors"`
}

type rawVariablesKey struct{}

// withRawVariables keeps the variables exactly as the client sent them.
// The executor drops null input fields, resolvers read them back from here.
func withRawVariables(ctx context.Context, vars map[string]interface{}) context.Context {
	return context.WithValue(ctx, rawVariablesKey{}, vars)
}

func rawVariables(ctx context.Context) map[string]interface{} {
	vars, _ := ctx.Value(rawVariablesKey{}).(map[string]interface{})
	return vars
}

// Handler executes GraphQL requests sent with POST or GET.
// GET is limited to query operations.
type Handler struct {
	schema graphql.Schema
	logger *logger.Logger
}

// NewHandler creates a Handler serving schema.
func NewHandler(schema graphql.Schema, logger *logger.Logger) *Handler {
	return &Handler{
		schema: schema,
		logger: logger,
	}
}

// Handle executes the request and writes the result as JSON. Malformed
// requests are answered with 400 and a mutation sent over GET with 405.
func (h *Handler) Handle(c *fiber.Ctx) error {
	req, err := h.parseRequest(c)
	if err != nil {
		h.logger.Debug("GraphQL handler: rejected request",
			"method", c.Method(),
			"error", err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(errorsResponse{
			Errors: []requestError{{Message: err.Error()}},
		})
	}

	if c.Method() == fiber.MethodGet {
		if op := operationType(req); op != "" && op != ast.OperationTypeQuery {
			h.logger.Debug("GraphQL handler: rejected non-query operation over GET",
				"operation", op)
			c.Set(fiber.HeaderAllow, fiber.MethodPost)
			return c.Status(fiber.StatusMethodNotAllowed).JSON(errorsResponse{
				Errors: []requestError{{Message: MsgMutationOverGET}},
			})
		}
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        withRawVariables(c.UserContext(), req.Variables),
	})

	if result.HasErrors() {
		h.logger.Debug("GraphQL handler: request completed with errors",
			"operation", req.OperationName,
			"errors", len(result.Errors))
	}

	return c.JSON(result)
}

func (h *Handler) parseRequest(c *fiber.Ctx) (request, error) {
	var req request
	decode := c.App().Config().JSONDecoder

	switch c.Method() {
	case fiber.MethodGet:
		req.Query = c.Query("query")
		req.OperationName = c.Query("operationName")
		if raw := c.Query("variables"); raw != "" {
			if err := decode([]byte(raw), &req.Variables); err != nil {
				return request{}, fiber.NewError(fiber.StatusBadRequest, "Variables are invalid JSON.")
			}
		}
	default:
		if err := decode(c.Body(), &req); err != nil {
			return request{}, fiber.NewError(fiber.StatusBadRequest, "POST body sent invalid JSON.")
		}
	}

	if strings.TrimSpace(req.Query) == "" {
		return request{}, fiber.NewError(fiber.StatusBadRequest, "Must provide query string.")
	}

	return req, nil
}

// operationType returns the type of the operation req would execute.
// It is empty when the document does not parse or the operation cannot be
// selected; the executor reports those cases itself.
func operationType(req request) string {
	doc, err := parser.Parse(parser.ParseParams{Source: req.Query})
	if err != nil {
		return ""
	}

	var selected *ast.OperationDefinition
	for _, def := range doc.Definitions {
		op, ok := def.(*ast.OperationDefinition)
		if !ok {
			continue
		}
		if req.OperationName == "" {
			if selected != nil {
				return ""
			}
			selected = op
			continue
		}
		if op.Name != nil && op.Name.Value == req.OperationName {
			selected = op
		}
	}

	if selected == nil {
		return ""
	}
	return selected.Operation
}
