package validators

import (
	"errors"
	"fmt"
)

// Length limits enforced on user-supplied fields.
const (
	MaxServiceNameLength    = 100
	MaxCategoryLength       = 50
	MinMasterPasswordLength = 8
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")

	ErrServiceRequired        = errors.New("service name is required")
	ErrServiceTooLong         = fmt.Errorf("service name must be %d characters or less", MaxServiceNameLength)
	ErrServiceInvalidChars    = errors.New("service name contains invalid characters")
	ErrPasswordRequired       = errors.New("password is required")
	ErrInvalidURL             = errors.New("url must start with http:// or https://")
	ErrCategoryEmpty          = errors.New("category name cannot be empty")
	ErrCategoryTooLong        = fmt.Errorf("category name must be %d characters or less", MaxCategoryLength)
	ErrCategoryInvalidChars   = errors.New("category name contains invalid characters")
	ErrMasterPasswordTooShort = fmt.Errorf("master password must be at least %d characters long", MinMasterPasswordLength)
	ErrPasswordsDoNotMatch    = errors.New("passwords do not match")
)
