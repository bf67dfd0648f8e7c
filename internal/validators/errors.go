package validators

import "errors"

// Messages of these errors are returned to API clients as-is.
var (
	ErrNameEmpty            = errors.New("name field can not be empty")
	ErrDifficultyNotNumber  = errors.New("difficulty field should be a number")
	ErrVegetarianNotBoolean = errors.New("vegetarian field should be boolean")
	ErrNoFields             = errors.New("field should not be empty")
)
