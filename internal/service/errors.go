package service

import "errors"

// Sentinel errors returned by the vault service to signal well-known
// failure conditions. Callers should use [errors.Is] to match against
// these values.
var (
	// ErrVaultLocked is returned when an operation requires an unlocked
	// session and none is active.
	ErrVaultLocked = errors.New("vault is locked")

	// ErrVaultAlreadyExists is returned by CreateVault when a vault
	// file is already present; creating over it would destroy data.
	ErrVaultAlreadyExists = errors.New("vault already exists")

	// ErrEntryNotFound is returned when an operation targets an entry
	// ID that is not in the vault.
	ErrEntryNotFound = errors.New("entry not found")

	// ErrCategoryExists is returned when adding or renaming a category
	// to a name that already exists.
	ErrCategoryExists = errors.New("category already exists")

	// ErrCategoryNotFound is returned when renaming or deleting a
	// category that does not exist.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrDefaultCategoryImmutable is returned on attempts to rename or
	// delete the fallback category entries are reassigned to.
	ErrDefaultCategoryImmutable = errors.New("the default category cannot be renamed or deleted")

	// ErrWrongCurrentPassword is returned by ChangeMasterPassword when
	// the supplied current password does not match the session's.
	ErrWrongCurrentPassword = errors.New("current master password is incorrect")
)
