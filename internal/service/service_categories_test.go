package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/auracrypt/auracrypt/models"
)

func TestCategories_UnionSorted(t *testing.T) {
	data := models.NewVaultData()
	data.Categories = []string{"Work", "Finance"}
	data.Entries = []models.Entry{
		{ID: "1", Service: "a", Password: "p", Category: "zeta"},
		{ID: "2", Service: "b", Password: "p", Category: "Work"},
	}
	svc, _ := unlockedService(t, data)

	got, err := svc.Categories()
	require.NoError(t, err)
	assert.Equal(t, []string{models.DefaultCategory, "Finance", "Work", "zeta"}, got)
}

func TestAddCategory(t *testing.T) {
	svc, store := unlockedService(t, models.NewVaultData())
	store.EXPECT().Save(testMasterPassword, gomock.Any()).Return(nil)

	require.NoError(t, svc.AddCategory("Personal"))

	got, err := svc.Categories()
	require.NoError(t, err)
	assert.Contains(t, got, "Personal")
}

func TestAddCategory_DuplicateCaseInsensitive(t *testing.T) {
	data := models.NewVaultData()
	data.Categories = []string{"Work"}
	svc, _ := unlockedService(t, data)

	assert.ErrorIs(t, svc.AddCategory("work"), ErrCategoryExists)
	assert.ErrorIs(t, svc.AddCategory(models.DefaultCategory), ErrCategoryExists)
}

func TestRenameCategory_MovesEntries(t *testing.T) {
	data := models.NewVaultData()
	data.Categories = []string{"Work"}
	data.Entries = []models.Entry{
		{ID: "1", Service: "a", Password: "p", Category: "Work"},
		{ID: "2", Service: "b", Password: "p", Category: "Finance"},
	}
	svc, store := unlockedService(t, data)
	store.EXPECT().Save(testMasterPassword, gomock.Any()).Return(nil)

	require.NoError(t, svc.RenameCategory("Work", "Office"))

	e1, err := svc.GetEntry("1")
	require.NoError(t, err)
	assert.Equal(t, "Office", e1.Category)

	e2, err := svc.GetEntry("2")
	require.NoError(t, err)
	assert.Equal(t, "Finance", e2.Category, "other categories untouched")
}

func TestRenameCategory_Rejections(t *testing.T) {
	data := models.NewVaultData()
	data.Categories = []string{"Work", "Finance"}
	svc, _ := unlockedService(t, data)

	assert.ErrorIs(t, svc.RenameCategory(models.DefaultCategory, "Other"), ErrDefaultCategoryImmutable)
	assert.ErrorIs(t, svc.RenameCategory("Missing", "Other"), ErrCategoryNotFound)
	assert.ErrorIs(t, svc.RenameCategory("Work", "finance"), ErrCategoryExists)
}

func TestDeleteCategory_ReassignsEntries(t *testing.T) {
	data := models.NewVaultData()
	data.Categories = []string{"Work"}
	data.Entries = []models.Entry{
		{ID: "1", Service: "a", Password: "p", Category: "Work"},
	}
	svc, store := unlockedService(t, data)
	store.EXPECT().Save(testMasterPassword, gomock.Any()).Return(nil)

	require.NoError(t, svc.DeleteCategory("Work"))

	e, err := svc.GetEntry("1")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultCategory, e.Category)

	got, err := svc.Categories()
	require.NoError(t, err)
	assert.NotContains(t, got, "Work")
}

func TestDeleteCategory_Rejections(t *testing.T) {
	svc, _ := unlockedService(t, models.NewVaultData())

	assert.ErrorIs(t, svc.DeleteCategory(models.DefaultCategory), ErrDefaultCategoryImmutable)
	assert.ErrorIs(t, svc.DeleteCategory("Missing"), ErrCategoryNotFound)
}

func TestCategoryOps_LockedRejected(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Categories()
	assert.ErrorIs(t, err, ErrVaultLocked)
	assert.ErrorIs(t, svc.AddCategory("X"), ErrVaultLocked)
	assert.ErrorIs(t, svc.RenameCategory("X", "Y"), ErrVaultLocked)
	assert.ErrorIs(t, svc.DeleteCategory("X"), ErrVaultLocked)
}
