package contacts

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ashishjh/contactbook/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, func()) {
	t.Helper()

	dbPath := "./test_contacts_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	err = db.AutoMigrate(&entities.User{}, &entities.Contact{})
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return repo, cleanup
}

func createContact(t *testing.T, repo *Repository, ownerID uint, name string) *entities.Contact {
	t.Helper()

	contact := &entities.Contact{
		Name:   name,
		Number: "9999999999",
		UserID: ownerID,
	}
	require.NoError(t, repo.Create(contact))
	return contact
}

func TestRepository_ListByOwner_NewestFirst(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	now := time.Now()
	for i, name := range []string{"oldest", "middle", "newest"} {
		contact := &entities.Contact{
			Name:      name,
			Number:    "111",
			UserID:    1,
			CreatedAt: now.Add(time.Duration(i) * time.Second),
		}
		require.NoError(t, repo.Create(contact))
	}

	list, err := repo.ListByOwner(1)

	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "newest", list[0].Name)
	assert.Equal(t, "middle", list[1].Name)
	assert.Equal(t, "oldest", list[2].Name)
}

func TestRepository_ListByOwner_Isolation(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	// Interleaved creates across two owners.
	createContact(t, repo, 1, "a1")
	createContact(t, repo, 2, "b1")
	createContact(t, repo, 1, "a2")
	createContact(t, repo, 2, "b2")

	listA, err := repo.ListByOwner(1)
	require.NoError(t, err)
	listB, err := repo.ListByOwner(2)
	require.NoError(t, err)

	require.Len(t, listA, 2)
	require.Len(t, listB, 2)
	for _, c := range listA {
		assert.Equal(t, uint(1), c.UserID)
	}
	for _, c := range listB {
		assert.Equal(t, uint(2), c.UserID)
	}
}

func TestRepository_GetByIDAndOwner(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	created := createContact(t, repo, 1, "Alex")

	contact, err := repo.GetByIDAndOwner(created.ID, 1)

	require.NoError(t, err)
	assert.Equal(t, "Alex", contact.Name)
}

func TestRepository_GetByIDAndOwner_WrongOwner(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	created := createContact(t, repo, 1, "Alex")

	// A valid id owned by someone else reads exactly like a missing row.
	_, err := repo.GetByIDAndOwner(created.ID, 2)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	_, err = repo.GetByIDAndOwner(9999, 1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_UpdateByIDAndOwner_Partial(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	created := &entities.Contact{
		Name:    "Alex",
		Number:  "9999999999",
		Address: "Delhi",
		UserID:  1,
	}
	require.NoError(t, repo.Create(created))

	name := "Alexa"
	updated, err := repo.UpdateByIDAndOwner(created.ID, 1, Update{Name: &name})

	require.NoError(t, err)
	assert.Equal(t, "Alexa", updated.Name)
	assert.Equal(t, "9999999999", updated.Number)
	assert.Equal(t, "Delhi", updated.Address)
}

func TestRepository_UpdateByIDAndOwner_NoFields(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	created := createContact(t, repo, 1, "Alex")

	updated, err := repo.UpdateByIDAndOwner(created.ID, 1, Update{})

	require.NoError(t, err)
	assert.Equal(t, "Alex", updated.Name)
}

func TestRepository_UpdateByIDAndOwner_WrongOwner(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	created := createContact(t, repo, 1, "Alex")

	name := "Hijacked"
	_, err := repo.UpdateByIDAndOwner(created.ID, 2, Update{Name: &name})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// The row is untouched.
	contact, err := repo.GetByIDAndOwner(created.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, "Alex", contact.Name)
}

func TestRepository_DeleteByIDAndOwner(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	created := createContact(t, repo, 1, "Alex")

	require.NoError(t, repo.DeleteByIDAndOwner(created.ID, 1))

	// Second delete on the same id reports not found, not success.
	err := repo.DeleteByIDAndOwner(created.ID, 1)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepository_DeleteByIDAndOwner_WrongOwner(t *testing.T) {
	repo, cleanup := setupTestDB(t)
	defer cleanup()

	created := createContact(t, repo, 1, "Alex")

	err := repo.DeleteByIDAndOwner(created.ID, 2)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Still there for its owner.
	_, err = repo.GetByIDAndOwner(created.ID, 1)
	assert.NoError(t, err)
}
