package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// ErrNoRows is returned when a query returns no rows
var ErrNoRows = errors.New("no rows in result set")

// ErrUnknownTier is returned for tier names other than core and extended.
var ErrUnknownTier = errors.New("unknown tier")

// Tier names as stored.
const (
	TierCore     = "core"
	TierExtended = "extended"
)

// IsNoRows returns true if the error indicates no rows were found.
// Works with pgx, database/sql, and the package's own ErrNoRows.
func IsNoRows(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, ErrNoRows) ||
		errors.Is(err, sql.ErrNoRows) ||
		errors.Is(err, pgx.ErrNoRows)
}

// CheckTier validates a tier filter. The empty string means every tier.
func CheckTier(tier string) error {
	switch tier {
	case "", TierCore, TierExtended:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownTier, tier)
}
