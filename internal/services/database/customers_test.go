package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aircon-subsidy-engine/internal/models"
)

func testRepo(t *testing.T) *CustomerRepository {
	t.Helper()

	db, err := NewFromPath(filepath.Join(t.TempDir(), "customers.db"))
	require.NoError(t, err)
	t.Cleanup(db.Close)

	return NewCustomerRepository(db)
}

func testRecord(email string) *models.CustomerRecord {
	return &models.CustomerRecord{
		ModelNumber:     "S254ATES-W",
		ManufactureYear: 2008,
		ZipCode:         "1050022",
		Address:         "東京都港区海岸1-5-20",
		Name:            "東京太郎",
		PhoneNumber:     "0123456789",
		Email:           email,
		CustomerNumber:  "19999999999",
	}
}

func TestAddAndFindByEmail_RoundTrip(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	id, err := repo.Add(ctx, testRecord("taro@example.com"))
	require.NoError(t, err)
	assert.Positive(t, id)

	found, err := repo.FindByEmail(ctx, "taro@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)

	assert.Equal(t, id, found.ID)
	assert.Equal(t, "S254ATES-W", found.ModelNumber)
	assert.Equal(t, 2008, found.ManufactureYear)
	assert.Equal(t, "1050022", found.ZipCode)
	assert.Equal(t, "東京都港区海岸1-5-20", found.Address)
	assert.Equal(t, "東京太郎", found.Name)
	assert.Equal(t, "0123456789", found.PhoneNumber)
	assert.Equal(t, "taro@example.com", found.Email)
	assert.Equal(t, "19999999999", found.CustomerNumber)
}

func TestFindByEmail_NoMatch(t *testing.T) {
	repo := testRepo(t)

	found, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, found)
}

// Duplicate emails are permitted (no uniqueness is enforced) and the
// lookup returns the lowest-id row.
func TestAdd_DuplicateEmailsAllowed(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	first := testRecord("dup@example.com")
	first.Name = "一人目"
	firstID, err := repo.Add(ctx, first)
	require.NoError(t, err)

	second := testRecord("dup@example.com")
	second.Name = "二人目"
	secondID, err := repo.Add(ctx, second)
	require.NoError(t, err)
	assert.Greater(t, secondID, firstID)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	found, err := repo.FindByEmail(ctx, "dup@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, firstID, found.ID)
	assert.Equal(t, "一人目", found.Name)
}

func TestAdd_FailsAfterClose(t *testing.T) {
	db, err := NewFromPath(filepath.Join(t.TempDir(), "customers.db"))
	require.NoError(t, err)
	repo := NewCustomerRepository(db)
	db.Close()

	_, err = repo.Add(context.Background(), testRecord("taro@example.com"))
	assert.Error(t, err)
}

func TestNewFromPath_CreatesSchemaIdempotently(t *testing.T) {
	path := filepath.Join(t.TempDir(), "customers.db")

	db, err := NewFromPath(path)
	require.NoError(t, err)
	repo := NewCustomerRepository(db)

	_, err = repo.Add(context.Background(), testRecord("taro@example.com"))
	require.NoError(t, err)
	db.Close()

	// Reopening must keep existing rows.
	db2, err := NewFromPath(path)
	require.NoError(t, err)
	defer db2.Close()

	count, err := NewCustomerRepository(db2).Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
