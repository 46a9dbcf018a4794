// Package open picks a repository implementation from a database URL.
package open

import (
	"context"
	"fmt"
	"strings"

	"github.com/jusunglee/khmerlex/internal/db"
	"github.com/jusunglee/khmerlex/internal/db/postgres"
	"github.com/jusunglee/khmerlex/internal/db/sqlite"
)

// Repository opens a PostgreSQL repository for postgres:// and postgresql://
// URLs and a SQLite one for sqlite:// URLs, :memory: and bare file paths.
func Repository(ctx context.Context, databaseURL string) (db.Repository, error) {
	scheme, _, hasScheme := strings.Cut(databaseURL, "://")
	switch {
	case databaseURL == "":
		return nil, fmt.Errorf("empty database URL")
	case scheme == "postgres" || scheme == "postgresql":
		return postgres.New(ctx, databaseURL, db.PoolOptions{})
	case !hasScheme || scheme == "sqlite":
		return sqlite.New(ctx, databaseURL)
	default:
		return nil, fmt.Errorf("unsupported database scheme %q", scheme)
	}
}
