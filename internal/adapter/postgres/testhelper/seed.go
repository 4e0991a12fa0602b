package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/lawdesk-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedAccount inserts a non-admin account with a placeholder password hash.
func SeedAccount(t *testing.T, pool *pgxpool.Pool) domain.Account {
	t.Helper()

	suffix := uniqueSuffix()
	acc := domain.Account{
		Username:  "user-" + suffix,
		FirstName: "Test",
		LastName:  "User " + suffix,
		Email:     "user-" + suffix + "@example.com",
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO accounts (username, password, first_name, last_name, email, is_admin)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		acc.Username, "not-a-real-hash", acc.FirstName, acc.LastName, acc.Email, acc.IsAdmin,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAccount: %v", err)
	}

	return acc
}

// SeedCategory inserts a category with a unique handle.
func SeedCategory(t *testing.T, pool *pgxpool.Pool) domain.Category {
	t.Helper()

	suffix := uniqueSuffix()
	cat := domain.Category{
		Handle:       "cat-" + suffix,
		Name:         "Category " + suffix,
		NumEmployees: 3,
		Description:  "seeded",
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO categories (handle, name, num_employees, description) VALUES ($1, $2, $3, $4)`,
		cat.Handle, cat.Name, cat.NumEmployees, cat.Description,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCategory: %v", err)
	}

	return cat
}

// SeedLawsuit inserts a lawsuit filed under categoryHandle (nil for none).
func SeedLawsuit(t *testing.T, pool *pgxpool.Pool, categoryHandle *string) domain.Lawsuit {
	t.Helper()

	suffix := uniqueSuffix()
	ls := domain.Lawsuit{
		Title:          "Case " + suffix,
		Description:    "seeded lawsuit",
		Comment:        "open",
		Location:       "Almaty",
		CategoryHandle: categoryHandle,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO lawsuits (title, description, comment, location, category_handle)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		ls.Title, ls.Description, ls.Comment, ls.Location, ls.CategoryHandle,
	).Scan(&ls.ID, &ls.CreatedAt, &ls.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedLawsuit: %v", err)
	}

	return ls
}

// CountAssignments returns the number of assignment rows for username.
func CountAssignments(t *testing.T, pool *pgxpool.Pool, username string) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM assignments WHERE username = $1`, username,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountAssignments: %v", err)
	}
	return n
}
