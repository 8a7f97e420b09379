package database

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Constraint identifies which integrity rule a store error violated.
type Constraint int

const (
	ConstraintNone Constraint = iota
	ConstraintUnique
	ConstraintForeignKey
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// ClassifyConstraint inspects PostgreSQL and SQLite driver errors.
func ClassifyConstraint(err error) Constraint {
	if err == nil {
		return ConstraintNone
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation:
			return ConstraintUnique
		case pgForeignKeyViolation:
			return ConstraintForeignKey
		}
		return ConstraintNone
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch liteErr.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return ConstraintUnique
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return ConstraintForeignKey
		}
		// Extended codes may be off; fall back to the primary code and text.
		if liteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
			msg := liteErr.Error()
			switch {
			case strings.Contains(msg, "UNIQUE"):
				return ConstraintUnique
			case strings.Contains(msg, "FOREIGN KEY"):
				return ConstraintForeignKey
			}
		}
	}

	return ConstraintNone
}

func IsUniqueViolation(err error) bool {
	return ClassifyConstraint(err) == ConstraintUnique
}

func IsForeignKeyViolation(err error) bool {
	return ClassifyConstraint(err) == ConstraintForeignKey
}

// IsNoRows reports a lookup that matched nothing, for either driver.
func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows)
}
