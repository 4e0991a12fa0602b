// Package account implements account and assignment persistence using PostgreSQL.
package account

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/lawdesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/lawdesk-backend/internal/domain"
)

const entity = "account"

var columns = map[string]string{
	"password":  "password",
	"firstName": "first_name",
	"lastName":  "last_name",
	"email":     "email",
	"isAdmin":   "is_admin",
}

// Repo provides account persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new account repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// selectColumns never includes the password hash.
const (
	selectColumns = `username, first_name, last_name, email, is_admin`

	existsSQL = `SELECT EXISTS(SELECT 1 FROM accounts WHERE username = $1)`

	getSQL = `SELECT ` + selectColumns + ` FROM accounts WHERE username = $1`

	credentialsSQL = `SELECT username, password, is_admin FROM accounts WHERE username = $1`

	createSQL = `
INSERT INTO accounts (username, password, first_name, last_name, email, is_admin)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + selectColumns

	deleteSQL = `DELETE FROM accounts WHERE username = $1`

	lawsuitIDsSQL = `SELECT lawsuit_id FROM assignments WHERE username = $1 ORDER BY lawsuit_id`

	assignSQL = `
INSERT INTO assignments (username, lawsuit_id) VALUES ($1, $2)
ON CONFLICT DO NOTHING`

	unassignSQL = `DELETE FROM assignments WHERE username = $1 AND lawsuit_id = $2`
)

// Exists reports whether an account with username exists.
func (r *Repo) Exists(ctx context.Context, username string) (bool, error) {
	var ok bool
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, existsSQL, username).Scan(&ok); err != nil {
		return false, postgres.MapError(err, entity, username)
	}
	return ok, nil
}

// Create inserts a and its password hash.
func (r *Repo) Create(ctx context.Context, a domain.Account, passwordHash string) (domain.Account, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL,
		a.Username, passwordHash, a.FirstName, a.LastName, a.Email, a.IsAdmin)

	created, err := scanAccount(row)
	if err != nil {
		return domain.Account{}, postgres.MapError(err, entity, a.Username)
	}
	return created, nil
}

// GetCredentials returns what is needed to check username's password.
func (r *Repo) GetCredentials(ctx context.Context, username string) (domain.AccountCredentials, error) {
	var c domain.AccountCredentials
	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, credentialsSQL, username).
		Scan(&c.Username, &c.PasswordHash, &c.IsAdmin)
	if err != nil {
		return domain.AccountCredentials{}, postgres.MapError(err, entity, username)
	}
	return c, nil
}

// FindAll lists all accounts ordered by username.
func (r *Repo) FindAll(ctx context.Context) ([]domain.Account, error) {
	sql, args, err := postgres.Builder.Select(selectColumns).From("accounts").OrderBy("username").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build find accounts query: %w", err)
	}

	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("find accounts: %w", err)
	}
	defer rows.Close()

	result := []domain.Account{}
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("find accounts: %w", err)
	}

	return result, nil
}

// GetByUsername returns an account or a NotFoundError.
func (r *Repo) GetByUsername(ctx context.Context, username string) (domain.Account, error) {
	a, err := scanAccount(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getSQL, username))
	if err != nil {
		return domain.Account{}, postgres.MapError(err, entity, username)
	}
	return a, nil
}

// LawsuitIDs returns the ids of the lawsuits assigned to username, ascending.
func (r *Repo) LawsuitIDs(ctx context.Context, username string) ([]int64, error) {
	rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, lawsuitIDsSQL, username)
	if err != nil {
		return nil, fmt.Errorf("assigned lawsuits: %w", err)
	}

	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, fmt.Errorf("assigned lawsuits: %w", err)
	}
	if ids == nil {
		ids = []int64{}
	}
	return ids, nil
}

// Update applies patch. A "password" attribute must already hold the hash.
func (r *Repo) Update(ctx context.Context, username string, patch domain.Patch) (domain.Account, error) {
	set, err := postgres.CompilePatch(patch, columns)
	if err != nil {
		return domain.Account{}, err
	}

	sql := fmt.Sprintf(`UPDATE accounts SET %s WHERE username = $%d RETURNING %s`,
		set.SetClause, set.NextPlaceholder(), selectColumns)

	a, err := scanAccount(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, set.Args(username)...))
	if err != nil {
		return domain.Account{}, postgres.MapError(err, entity, username)
	}
	return a, nil
}

// Delete removes the account and its assignments.
func (r *Repo) Delete(ctx context.Context, username string) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, deleteSQL, username)
	if err != nil {
		return postgres.MapError(err, entity, username)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewNotFoundError(entity, username)
	}
	return nil
}

// AddAssignment links username to lawsuitID.
// Idempotent: assigning the same pair twice is NOT an error.
func (r *Repo) AddAssignment(ctx context.Context, username string, lawsuitID int64) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, assignSQL, username, lawsuitID); err != nil {
		return postgres.MapError(err, "assignment", username+"/"+strconv.FormatInt(lawsuitID, 10))
	}
	return nil
}

// RemoveAssignment unlinks username from lawsuitID.
// Not an error if the link does not exist.
func (r *Repo) RemoveAssignment(ctx context.Context, username string, lawsuitID int64) error {
	if _, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, unassignSQL, username, lawsuitID); err != nil {
		return postgres.MapError(err, "assignment", username+"/"+strconv.FormatInt(lawsuitID, 10))
	}
	return nil
}

func scanAccount(row pgx.Row) (domain.Account, error) {
	var a domain.Account
	err := row.Scan(&a.Username, &a.FirstName, &a.LastName, &a.Email, &a.IsAdmin)
	return a, err
}
