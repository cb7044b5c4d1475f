package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auracrypt/auracrypt/models"
)

func sampleData() models.VaultData {
	return models.VaultData{
		Entries: []models.Entry{
			{
				ID:       "id-1",
				Service:  "example.com",
				Username: "alice",
				Password: "s3cret",
				URL:      "https://example.com",
				Notes:    "notes, with comma",
				Category: "Work",
			},
			{
				ID:       "id-2",
				Service:  "bank",
				Username: "alice",
				Password: "hunter2",
				Category: "Finance",
			},
		},
		Categories: []string{"Work", "Finance"},
	}
}

func TestJSONRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, WriteJSON(path, sampleData(), Options{IncludePasswords: true}))

	entries, err := ReadJSON(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "s3cret", entries[0].Password)
	assert.Equal(t, "notes, with comma", entries[0].Notes)
}

func TestWriteJSON_OmitsPasswordsByDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, WriteJSON(path, sampleData(), Options{}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "s3cret")
	assert.NotContains(t, string(raw), "hunter2")

	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, false, doc["includes_secrets"])
	assert.Equal(t, float64(2), doc["entry_count"])
	assert.NotEmpty(t, doc["exported_at"])
}

func TestReadJSON_BareArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "import.json")
	raw := `[{"service":"x","username":"u","password":"p"}]`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	entries, err := ReadJSON(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "x", entries[0].Service)
}

func TestReadJSON_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "import.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	_, err := ReadJSON(path)
	assert.Error(t, err)
}

func TestCSVRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.csv")
	require.NoError(t, WriteCSV(path, sampleData(), Options{IncludePasswords: true}))

	entries, err := ReadCSV(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, "example.com", entries[0].Service)
	assert.Equal(t, "s3cret", entries[0].Password)
	assert.Equal(t, "notes, with comma", entries[0].Notes)
	assert.Equal(t, "Finance", entries[1].Category)
	assert.Empty(t, entries[0].ID, "imported entries get fresh IDs later")
}

func TestReadCSV_HeaderByName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "import.csv")
	raw := "password,service,ignored\np1,svc,whatever\n"
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	entries, err := ReadCSV(path)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "svc", entries[0].Service)
	assert.Equal(t, "p1", entries[0].Password)
}

func TestReadCSV_MissingServiceColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "import.csv")
	require.NoError(t, os.WriteFile(path, []byte("username,password\nu,p\n"), 0o600))

	_, err := ReadCSV(path)
	assert.Error(t, err)
}

func TestExportFilePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not meaningful on windows")
	}

	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "export.json")
	csvPath := filepath.Join(dir, "export.csv")
	require.NoError(t, WriteJSON(jsonPath, sampleData(), Options{IncludePasswords: true}))
	require.NoError(t, WriteCSV(csvPath, sampleData(), Options{IncludePasswords: true}))

	for _, p := range []string{jsonPath, csvPath} {
		fi, err := os.Stat(p)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), fi.Mode().Perm(), p)
	}
}
