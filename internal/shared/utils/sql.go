package utils

import (
	"fmt"
	"strings"
)

// JoinWithAnd joins a slice of strings with AND operator
func JoinWithAnd(clauses []string) string {
	return strings.Join(clauses, " AND ")
}

// JoinWithOr joins a slice of strings with OR operator
func JoinWithOr(clauses []string) string {
	return strings.Join(clauses, " OR ")
}

// EscapeLike escapes LIKE wildcards so the value matches literally when the
// query declares ESCAPE '\'.
func EscapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

// ContainsPattern builds a %value% pattern with wildcards escaped.
func ContainsPattern(s string) string {
	return "%" + EscapeLike(s) + "%"
}

// ArgBuilder collects query arguments and hands out placeholders. Postgres
// builders number them ($1, $2, ...); SQLite builders use "?".
type ArgBuilder struct {
	numbered bool
	args     []any
}

func NewPostgresArgs() *ArgBuilder { return &ArgBuilder{numbered: true} }

func NewSQLiteArgs() *ArgBuilder { return &ArgBuilder{} }

// Add appends v and returns its placeholder.
func (b *ArgBuilder) Add(v any) string {
	b.args = append(b.args, v)
	if b.numbered {
		return fmt.Sprintf("$%d", len(b.args))
	}
	return "?"
}

func (b *ArgBuilder) Args() []any {
	return b.args
}
