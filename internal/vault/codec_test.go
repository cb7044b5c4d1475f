package vault

import (
	"testing"

	"github.com/auracrypt/auracrypt/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRecords_RoundTrip(t *testing.T) {
	data := models.VaultData{
		Entries: []models.Entry{
			{
				ID:        "5f0c4b4e-9d9e-4f3c-8a41-1a2b3c4d5e6f",
				Service:   "github",
				Username:  "alice",
				Password:  "hunter2",
				URL:       "https://github.com/login",
				Notes:     "work account",
				Category:  "Work",
				CreatedAt: "2026-08-01T10:00:00Z",
				UpdatedAt: "2026-08-02T11:30:00Z",
			},
		},
		Categories: []string{"Work", "Personal"},
		Settings:   map[string]any{"theme": "dark"},
	}

	encoded, err := EncodeRecords(data)
	require.NoError(t, err)

	decoded, err := DecodeRecords(encoded)
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
}

func TestEncodeRecords_NilEntriesBecomesEmptyList(t *testing.T) {
	encoded, err := EncodeRecords(models.VaultData{})
	require.NoError(t, err)

	decoded, err := DecodeRecords(encoded)
	require.NoError(t, err)
	require.NotNil(t, decoded.Entries)
	assert.Empty(t, decoded.Entries)
}

func TestDecodeRecords_RejectsInvalidJSON(t *testing.T) {
	_, err := DecodeRecords([]byte(`{"entries": [`))
	require.ErrorIs(t, err, ErrDecode)
}

func TestDecodeRecords_RejectsMissingEntriesField(t *testing.T) {
	_, err := DecodeRecords([]byte(`{"categories": ["Work"]}`))
	require.ErrorIs(t, err, ErrDecode)
}

func TestDecodeRecords_RejectsWronglyTypedFields(t *testing.T) {
	cases := []struct {
		name    string
		payload string
	}{
		{"entries not an array", `{"entries": "nope"}`},
		{"entry not an object", `{"entries": [42]}`},
		{"service not a string", `{"entries": [{"service": 1}]}`},
		{"garbage plaintext", `ZZZZ not json at all`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := DecodeRecords([]byte(tc.payload))
			require.ErrorIs(t, err, ErrDecode)
		})
	}
}
