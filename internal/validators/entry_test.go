package validators

import (
	"strings"
	"testing"

	"github.com/auracrypt/auracrypt/models"
	"github.com/stretchr/testify/require"
)

func TestValidateService(t *testing.T) {
	v := NewEntryValidator()

	cases := []struct {
		name    string
		service string
		wantErr error
	}{
		{"valid", "github", nil},
		{"valid with spaces inside", "My Bank Account", nil},
		{"empty", "", ErrServiceRequired},
		{"whitespace only", "   ", ErrServiceRequired},
		{"too long", strings.Repeat("a", MaxServiceNameLength+1), ErrServiceTooLong},
		{"max length ok", strings.Repeat("a", MaxServiceNameLength), nil},
		{"control character", "git\x00hub", ErrServiceInvalidChars},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := v.ValidateService(tc.service)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	v := NewEntryValidator()

	require.NoError(t, v.ValidateURL(""))
	require.NoError(t, v.ValidateURL("https://github.com/login"))
	require.NoError(t, v.ValidateURL("http://intranet.local"))
	require.ErrorIs(t, v.ValidateURL("github.com"), ErrInvalidURL)
	require.ErrorIs(t, v.ValidateURL("ftp://example.com"), ErrInvalidURL)
}

func TestValidateCategory(t *testing.T) {
	v := NewEntryValidator()

	require.NoError(t, v.ValidateCategory("Work"))
	require.ErrorIs(t, v.ValidateCategory("  "), ErrCategoryEmpty)
	require.ErrorIs(t, v.ValidateCategory(strings.Repeat("x", MaxCategoryLength+1)), ErrCategoryTooLong)
	require.ErrorIs(t, v.ValidateCategory("bad\x1bname"), ErrCategoryInvalidChars)
}

func TestValidateMasterPassword(t *testing.T) {
	v := NewEntryValidator()

	require.NoError(t, v.ValidateMasterPassword("Tr0ub4dor&3"))
	require.ErrorIs(t, v.ValidateMasterPassword("short"), ErrMasterPasswordTooShort)
	require.ErrorIs(t, v.ValidateMasterPassword(""), ErrMasterPasswordTooShort)
}

func TestValidateEntry_FieldScoping(t *testing.T) {
	v := NewEntryValidator()

	entry := models.Entry{Service: "github", Password: "", URL: "not-a-url"}

	// Full validation reports the first violation.
	require.ErrorIs(t, v.ValidateEntry(entry), ErrPasswordRequired)

	// Scoped to service only, the entry passes.
	require.NoError(t, v.ValidateEntry(entry, FieldService))

	// Scoped to url, the bad link is caught.
	require.ErrorIs(t, v.ValidateEntry(entry, FieldURL), ErrInvalidURL)

	// Unknown field name.
	require.ErrorIs(t, v.ValidateEntry(entry, "nonsense"), ErrUnsupportedType)
}

func TestValidateEntry_EmptyCategoryAllowed(t *testing.T) {
	v := NewEntryValidator()

	// Empty categories are normalized later by the service layer.
	entry := models.Entry{Service: "github", Password: "hunter2"}
	require.NoError(t, v.ValidateEntry(entry))
}
