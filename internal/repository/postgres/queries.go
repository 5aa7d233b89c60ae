package postgres

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/qustavo/dotsql"
)

//go:embed queries/*.sql
var queriesFS embed.FS

// Names of the statements in queries/*.sql.
const (
	queryListUsers               = "list-users"
	queryGetUserByID             = "get-user-by-id"
	querySearchUsersByCompany    = "search-users-by-company"
	querySearchUsersByProfession = "search-users-by-profession"
	queryCreateUser              = "create-user"
	queryUpdateUser              = "update-user"
	queryDeleteUser              = "delete-user"
)

var requiredQueries = []string{
	queryListUsers,
	queryGetUserByID,
	querySearchUsersByCompany,
	querySearchUsersByProfession,
	queryCreateUser,
	queryUpdateUser,
	queryDeleteUser,
}

// Queries is the catalogue of named SQL statements used by the repositories.
type Queries struct {
	statements map[string]string
}

// LoadQueries parses every embedded .sql file and checks that all statements
// the repositories rely on are present.
func LoadQueries() (*Queries, error) {
	var combined strings.Builder

	err := fs.WalkDir(queriesFS, "queries", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Ext(path) != ".sql" {
			return nil
		}

		content, err := queriesFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		combined.Write(content)
		combined.WriteString("\n")
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load query files: %w", err)
	}

	dot, err := dotsql.LoadFromString(combined.String())
	if err != nil {
		return nil, fmt.Errorf("failed to parse queries: %w", err)
	}

	q := &Queries{statements: make(map[string]string, len(requiredQueries))}
	for _, name := range requiredQueries {
		raw, err := dot.Raw(name)
		if err != nil {
			return nil, fmt.Errorf("missing query %q: %w", name, err)
		}
		q.statements[name] = raw
	}

	return q, nil
}

// Get returns the SQL text of a named statement.
func (q *Queries) Get(name string) string {
	return q.statements[name]
}
