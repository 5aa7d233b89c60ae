//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/TGrooves-208/react-typescript-shadcn-tanstack-demo/database"
	"github.com/TGrooves-208/react-typescript-shadcn-tanstack-demo/internal/api/gql"
	httpctx "github.com/TGrooves-208/react-typescript-shadcn-tanstack-demo/internal/api/http/context"
	"github.com/TGrooves-208/react-typescript-shadcn-tanstack-demo/internal/api/http/handler"
	"github.com/TGrooves-208/react-typescript-shadcn-tanstack-demo/internal/model"
	repo "github.com/TGrooves-208/react-typescript-shadcn-tanstack-demo/internal/repository/postgres"
	"github.com/TGrooves-208/react-typescript-shadcn-tanstack-demo/internal/service"
	"github.com/TGrooves-208/react-typescript-shadcn-tanstack-demo/internal/testutil"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "users_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	// The password lives outside the URL, the way DATABASE_ACCESS_KEY is applied.
	dsn = fmt.Sprintf("postgres://postgres@%s:%s/users_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func newRepository(t *testing.T) (*repo.Connection, *repo.UserRepository) {
	t.Helper()

	ctx := context.Background()
	database.SetLogger(testutil.MakeNoopLogger())

	var (
		conn *repo.Connection
		err  error
	)
	// Postgres may accept TCP before it accepts logins.
	require.Eventually(t, func() bool {
		conn, err = repo.NewConnection(ctx, dsn, repo.Options{
			AccessKey:    "password",
			MaxConns:     4,
			QueryTimeout: 5 * time.Second,
			Migrate:      true,
		})
		return err == nil
	}, 30*time.Second, 500*time.Millisecond)
	t.Cleanup(func() { _ = conn.Close() })

	queries, err := repo.LoadQueries()
	require.NoError(t, err)

	return conn, repo.NewUserRepository(conn, queries)
}

func TestUserRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	conn, ur := newRepository(t)
	require.NoError(t, conn.Ping(ctx))

	t.Run("seeded list is ordered", func(t *testing.T) {
		users, err := ur.List(ctx)
		require.NoError(t, err)
		require.GreaterOrEqual(t, len(users), 9)
		for i := 1; i < len(users); i++ {
			prev, cur := users[i-1], users[i]
			ordered := prev.CreatedAt.Before(cur.CreatedAt) ||
				(prev.CreatedAt.Equal(cur.CreatedAt) && prev.ID < cur.ID)
			assert.True(t, ordered, "users %d and %d out of order", prev.ID, cur.ID)
		}
	})

	var created model.User
	t.Run("create", func(t *testing.T) {
		var err error
		created, err = ur.Create(ctx, model.CreateUserParams{
			Name:       "Laurie Bream",
			Email:      "laurie@raviga.com",
			Profession: testutil.StrPtr("Managing Partner"),
			Company:    testutil.StrPtr(""),
		})
		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.Equal(t, "Laurie Bream", created.Name)
		require.NotNil(t, created.Profession)
		assert.Equal(t, "Managing Partner", *created.Profession)
		assert.Nil(t, created.Company)
		assert.Equal(t, created.CreatedAt, created.UpdatedAt)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := ur.Create(ctx, model.CreateUserParams{Name: "Other", Email: "laurie@raviga.com"})
		assert.ErrorIs(t, err, model.ErrConflict)
	})

	t.Run("get by id", func(t *testing.T) {
		got, err := ur.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.Email, got.Email)

		_, err = ur.GetByID(ctx, 999999)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("partial update", func(t *testing.T) {
		updated, err := ur.Update(ctx, created.ID, model.UpdateUserParams{
			Company:    testutil.StrPtr("Raviga Capital"),
			Profession: testutil.StrPtr(""),
		})
		require.NoError(t, err)
		assert.Equal(t, created.Name, updated.Name)
		assert.Equal(t, created.Email, updated.Email)
		assert.Nil(t, updated.Profession)
		require.NotNil(t, updated.Company)
		assert.Equal(t, "Raviga Capital", *updated.Company)
		assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))

		_, err = ur.Update(ctx, 999999, model.UpdateUserParams{Name: testutil.StrPtr("x")})
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("empty update touches updated_at", func(t *testing.T) {
		before, err := ur.GetByID(ctx, created.ID)
		require.NoError(t, err)

		touched, err := ur.Update(ctx, created.ID, model.UpdateUserParams{})
		require.NoError(t, err)
		assert.Equal(t, before.Name, touched.Name)
		assert.Equal(t, before.Company, touched.Company)
		assert.True(t, touched.UpdatedAt.After(before.UpdatedAt))
	})

	t.Run("search", func(t *testing.T) {
		users, err := ur.SearchByField(ctx, model.SearchFieldCompany, "raviga")
		require.NoError(t, err)
		require.NotEmpty(t, users)
		for _, u := range users {
			require.NotNil(t, u.Company)
			assert.Contains(t, *u.Company, "Raviga")
		}

		users, err = ur.SearchByField(ctx, model.SearchFieldProfession, "%")
		require.NoError(t, err)
		assert.Empty(t, users)
		assert.NotNil(t, users)
	})

	t.Run("null clears company over both transports", func(t *testing.T) {
		lg := testutil.MakeNoopLogger()
		svc := service.NewUser(ur, lg)
		schema, err := gql.NewSchema(gql.NewResolver(svc, lg))
		require.NoError(t, err)

		app := fiber.New()
		app.Post("/graphql", gql.NewHandler(schema, lg).Handle)
		app.Put("/users/:id", handler.NewUser(svc, httpctx.NewManager(), lg).Update)

		id := strconv.FormatInt(created.ID, 10)
		send := func(method, path, body string) {
			req := httptest.NewRequest(method, path, strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			resp.Body.Close()
			require.Equal(t, http.StatusOK, resp.StatusCode)
		}

		send(http.MethodPost, "/graphql", `{"query":"mutation U($in: UpdateUserInput!) { updateUser(id: \"`+id+`\", input: $in) { id } }","variables":{"in":{"company":null}}}`)
		got, err := ur.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Nil(t, got.Company)
		assert.Equal(t, created.Name, got.Name)

		_, err = ur.Update(ctx, created.ID, model.UpdateUserParams{Company: testutil.StrPtr("Raviga Capital")})
		require.NoError(t, err)

		send(http.MethodPut, "/users/"+id, `{"name":"Laurie Bream","email":"laurie@raviga.com","company":null}`)
		got, err = ur.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Nil(t, got.Company)
	})

	t.Run("delete", func(t *testing.T) {
		deleted, err := ur.Delete(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, deleted.ID)

		_, err = ur.GetByID(ctx, created.ID)
		assert.ErrorIs(t, err, model.ErrNotFound)

		_, err = ur.Delete(ctx, created.ID)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}

func TestMigrations_RollbackAndReapply(t *testing.T) {
	ctx := context.Background()
	_, _ = newRepository(t)

	db, err := repo.OpenSQL(dsn, "password")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	version, err := database.Version(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(2), version)

	require.NoError(t, database.Rollback(ctx, db))
	version, err = database.Version(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)

	require.NoError(t, database.Migrate(ctx, db))
	require.NoError(t, database.Status(ctx, db))
}
