// Package category implements the Category repository using PostgreSQL.
package category

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/lawdesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lawdesk-backend/internal/domain"
)

const entity = "category"

// columns maps patch attribute names to table columns.
var columns = map[string]string{
	"name":         "name",
	"numEmployees": "num_employees",
	"description":  "description",
}

// Repo provides category persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new category repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const (
	selectColumns = `handle, name, num_employees, description`

	existsSQL = `SELECT EXISTS(SELECT 1 FROM categories WHERE handle = $1)`

	getSQL = `SELECT ` + selectColumns + ` FROM categories WHERE handle = $1`

	createSQL = `
INSERT INTO categories (handle, name, num_employees, description)
VALUES ($1, $2, $3, $4)
RETURNING ` + selectColumns

	deleteSQL = `DELETE FROM categories WHERE handle = $1`

	lawsuitsSQL = `
SELECT id, title, description, comment, location
FROM lawsuits
WHERE category_handle = $1
ORDER BY id`
)

// Exists reports whether a category with handle exists.
func (r *Repo) Exists(ctx context.Context, handle string) (bool, error) {
	var ok bool
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, existsSQL, handle).Scan(&ok); err != nil {
		return false, postgres.MapError(err, entity, handle)
	}
	return ok, nil
}

// Create inserts c. Returns a DuplicateError if the handle is taken.
func (r *Repo) Create(ctx context.Context, c domain.Category) (domain.Category, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL,
		c.Handle, c.Name, c.NumEmployees, c.Description)

	created, err := scanCategory(row)
	if err != nil {
		return domain.Category{}, postgres.MapError(err, entity, c.Handle)
	}
	return created, nil
}

// FindAll lists categories matching filter, ordered by handle.
// Returns an empty slice (not nil) when nothing matches.
func (r *Repo) FindAll(ctx context.Context, filter domain.CategoryFilter) ([]domain.Category, error) {
	conds := sq.And{}
	if filter.Name != "" {
		conds = append(conds, postgres.ContainsFold("name", filter.Name))
	}
	if filter.Handle != "" {
		conds = append(conds, postgres.ContainsFold("handle", filter.Handle))
	}

	query := postgres.Builder.Select(selectColumns).From("categories").OrderBy("handle")
	if len(conds) > 0 {
		query = query.Where(conds)
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find categories query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("find categories: %w", err)
	}
	defer rows.Close()

	result := []domain.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("find categories: %w", err)
	}

	return result, nil
}

// GetByHandle returns a category or a NotFoundError.
func (r *Repo) GetByHandle(ctx context.Context, handle string) (domain.Category, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getSQL, handle)
	c, err := scanCategory(row)
	if err != nil {
		return domain.Category{}, postgres.MapError(err, entity, handle)
	}
	return c, nil
}

// Lawsuits returns the lawsuits filed under handle, ordered by id.
func (r *Repo) Lawsuits(ctx context.Context, handle string) ([]domain.LawsuitSummary, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, lawsuitsSQL, handle)
	if err != nil {
		return nil, fmt.Errorf("category lawsuits: %w", err)
	}
	defer rows.Close()

	result := []domain.LawsuitSummary{}
	for rows.Next() {
		var l domain.LawsuitSummary
		if err := rows.Scan(&l.ID, &l.Title, &l.Description, &l.Comment, &l.Location); err != nil {
			return nil, fmt.Errorf("scan lawsuit: %w", err)
		}
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("category lawsuits: %w", err)
	}

	return result, nil
}

// Update applies patch to the category. Returns ErrInvalidUpdate for an
// empty patch and a NotFoundError when no row has handle.
func (r *Repo) Update(ctx context.Context, handle string, patch domain.Patch) (domain.Category, error) {
	set, err := postgres.CompilePatch(patch, columns)
	if err != nil {
		return domain.Category{}, err
	}

	sql := fmt.Sprintf(`UPDATE categories SET %s WHERE handle = $%d RETURNING %s`,
		set.SetClause, set.NextPlaceholder(), selectColumns)

	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, set.Args(handle)...)
	c, err := scanCategory(row)
	if err != nil {
		return domain.Category{}, postgres.MapError(err, entity, handle)
	}
	return c, nil
}

// Delete removes the category. Lawsuits filed under it become uncategorised.
func (r *Repo) Delete(ctx context.Context, handle string) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteSQL, handle)
	if err != nil {
		return postgres.MapError(err, entity, handle)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError(entity, handle)
	}
	return nil
}

func scanCategory(row pgx.Row) (domain.Category, error) {
	var c domain.Category
	err := row.Scan(&c.Handle, &c.Name, &c.NumEmployees, &c.Description)
	return c, err
}
