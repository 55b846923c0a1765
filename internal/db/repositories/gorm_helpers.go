package repositories

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsLike builds a LIKE operand that matches query literally.
func containsLike(query string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(query)) + "%"
}

// likeClause is a case-insensitive LIKE against column; pair it with containsLike.
func likeClause(column string) string {
	return "LOWER(" + column + `) LIKE ? ESCAPE '\'`
}
