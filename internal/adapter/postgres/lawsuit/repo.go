// Package lawsuit implements the Lawsuit repository using PostgreSQL.
package lawsuit

import (
	"context"
	"fmt"
	"strconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/lawdesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lawdesk-backend/internal/domain"
)

const entity = "lawsuit"

var columns = map[string]string{
	"title":          "title",
	"description":    "description",
	"comment":        "comment",
	"location":       "location",
	"categoryHandle": "category_handle",
}

// Repo provides lawsuit persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new lawsuit repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const (
	selectColumns = `id, title, description, comment, location, category_handle, created_at, updated_at`

	existsSQL = `SELECT EXISTS(SELECT 1 FROM lawsuits WHERE id = $1)`

	getSQL = `SELECT ` + selectColumns + ` FROM lawsuits WHERE id = $1`

	createSQL = `
INSERT INTO lawsuits (title, description, comment, location, category_handle)
VALUES ($1, $2, $3, $4, $5)
RETURNING ` + selectColumns

	deleteSQL = `DELETE FROM lawsuits WHERE id = $1`
)

func key(id int64) string { return strconv.FormatInt(id, 10) }

// Exists reports whether a lawsuit with id exists.
func (r *Repo) Exists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, existsSQL, id).Scan(&ok); err != nil {
		return false, postgres.MapError(err, entity, key(id))
	}
	return ok, nil
}

// Create inserts l; id and timestamps are assigned by the store.
// A categoryHandle that does not exist is reported as ErrNotFound.
func (r *Repo) Create(ctx context.Context, l domain.Lawsuit) (domain.Lawsuit, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL,
		l.Title, l.Description, l.Comment, l.Location, l.CategoryHandle)

	created, err := scanLawsuit(row)
	if err != nil {
		return domain.Lawsuit{}, postgres.MapError(err, entity, l.Title)
	}
	return created, nil
}

// FindAll lists lawsuits matching filter with their category name, ordered by id.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) FindAll(ctx context.Context, filter domain.LawsuitFilter) ([]domain.LawsuitListItem, error) {
	conds := sq.And{}
	if filter.Title != "" {
		conds = append(conds, postgres.ContainsFold("l.title", filter.Title))
	}
	if filter.CategoryHandle != "" {
		conds = append(conds, sq.Eq{"l.category_handle": filter.CategoryHandle})
	}

	query := postgres.Builder.
		Select("l.id", "l.title", "l.description", "l.comment", "l.location",
			"l.category_handle", "l.created_at", "l.updated_at", "c.name").
		From("lawsuits l").
		LeftJoin("categories c ON c.handle = l.category_handle").
		OrderBy("l.id")
	if len(conds) > 0 {
		query = query.Where(conds)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find lawsuits query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("find lawsuits: %w", err)
	}
	defer rows.Close()

	result := []domain.LawsuitListItem{}
	for rows.Next() {
		var item domain.LawsuitListItem
		if err := rows.Scan(
			&item.ID, &item.Title, &item.Description, &item.Comment, &item.Location,
			&item.CategoryHandle, &item.CreatedAt, &item.UpdatedAt, &item.CategoryName,
		); err != nil {
			return nil, fmt.Errorf("scan lawsuit: %w", err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("find lawsuits: %w", err)
	}

	return result, nil
}

// GetByID returns a lawsuit or a NotFoundError.
func (r *Repo) GetByID(ctx context.Context, id int64) (domain.Lawsuit, error) {
	l, err := scanLawsuit(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getSQL, id))
	if err != nil {
		return domain.Lawsuit{}, postgres.MapError(err, entity, key(id))
	}
	return l, nil
}

// Update applies patch and bumps updated_at.
func (r *Repo) Update(ctx context.Context, id int64, patch domain.Patch) (domain.Lawsuit, error) {
	set, err := postgres.CompilePatch(patch, columns)
	if err != nil {
		return domain.Lawsuit{}, err
	}

	sql := fmt.Sprintf(`UPDATE lawsuits SET %s, updated_at = now() WHERE id = $%d RETURNING %s`,
		set.SetClause, set.NextPlaceholder(), selectColumns)

	l, err := scanLawsuit(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, set.Args(id)...))
	if err != nil {
		return domain.Lawsuit{}, postgres.MapError(err, entity, key(id))
	}
	return l, nil
}

// Delete removes the lawsuit together with its assignments.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteSQL, id)
	if err != nil {
		return postgres.MapError(err, entity, key(id))
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError(entity, key(id))
	}
	return nil
}

func scanLawsuit(row pgx.Row) (domain.Lawsuit, error) {
	var l domain.Lawsuit
	err := row.Scan(&l.ID, &l.Title, &l.Description, &l.Comment, &l.Location,
		&l.CategoryHandle, &l.CreatedAt, &l.UpdatedAt)
	return l, err
}
