package postgres

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// Builder is the squirrel statement builder configured for pgx placeholders.
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsFold matches rows whose column contains value, case-insensitively.
// LIKE wildcards inside value are matched literally.
func ContainsFold(column, value string) sq.Sqlizer {
	return sq.ILike{column: "%" + likeEscaper.Replace(value) + "%"}
}
