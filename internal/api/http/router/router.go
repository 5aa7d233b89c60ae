package router

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/TGrooves-208/react-typescript-shadcn-tanstack-demo/internal/api/gql"
	"github.com/TGrooves-208/react-typescript-shadcn-tanstack-demo/internal/api/http/handler"
	"github.com/TGrooves-208/react-typescript-shadcn-tanstack-demo/internal/api/http/middleware"
	"github.com/TGrooves-208/react-typescript-shadcn-tanstack-demo/internal/logger"
	"github.com/TGrooves-208/react-typescript-shadcn-tanstack-demo/internal/model"
)

// UserService is the union of what the REST handlers and GraphQL resolvers need.
type UserService interface {
	handler.UserService
	gql.UserService
}

// Options tunes the fiber application.
type Options struct {
	Version     string
	CORSOrigins string
	BodyLimit   int
}

// Router wires handlers and middleware into a fiber application.
type Router struct {
	userService    UserService
	pinger         handler.Pinger
	contextManager model.ContextManager
	logger         *logger.Logger
	opts           Options
}

// New creates a new Router instance.
func New(
	userService UserService,
	pinger handler.Pinger,
	contextManager model.ContextManager,
	logger *logger.Logger,
	opts Options,
) *Router {
	return &Router{
		userService:    userService,
		pinger:         pinger,
		contextManager: contextManager,
		logger:         logger,
		opts:           opts,
	}
}

// Register builds the fiber application with middleware and every route.
func (r *Router) Register() (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		AppName:               "users-api",
		DisableStartupMessage: true,
		BodyLimit:             r.opts.BodyLimit,
		ErrorHandler:          handler.ErrorHandler(r.logger),
	})

	logging := middleware.NewLogging(r.contextManager, r.logger)

	app.Use(
		middleware.NewRequestID(),
		logging.Handle,
		recover.New(),
		cors.New(cors.Config{
			AllowOrigins: r.opts.CORSOrigins,
			AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
			AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		}),
	)

	r.registerSystemRoutes(app)
	r.registerUserRoutes(app)
	if err := r.registerGraphQLRoutes(app); err != nil {
		return nil, err
	}

	return app, nil
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	systemHandler := handler.NewSystem(r.pinger, r.opts.Version, r.logger)
	app.Get("/health", systemHandler.Health)
	app.Get("/health/ready", systemHandler.Ready)
	app.Get("/api", systemHandler.Info)
}

func (r *Router) registerUserRoutes(app *fiber.App) {
	userHandler := handler.NewUser(r.userService, r.contextManager, r.logger)

	v1 := app.Group("/api/v1")
	v1.Get("/users", userHandler.List)
	v1.Get("/users/:id", userHandler.Get)
	v1.Post("/users", userHandler.Create)
	v1.Put("/users/:id", userHandler.Update)
	v1.Delete("/users/:id", userHandler.Delete)
}

func (r *Router) registerGraphQLRoutes(app *fiber.App) error {
	schema, err := gql.NewSchema(gql.NewResolver(r.userService, r.logger))
	if err != nil {
		return fmt.Errorf("failed to register graphql routes: %w", err)
	}
	graphqlHandler := gql.NewHandler(schema, r.logger)

	v2 := app.Group("/api/v2")
	v2.Post("/graphql", graphqlHandler.Handle)
	v2.Get("/graphql", graphqlHandler.Handle)
	return nil
}
