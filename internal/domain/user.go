package domain

// User is a plain value record. Two users are equal when all four fields
// are equal; there is no other notion of identity and uniqueness of ID is up
// to the caller.
type User struct {
	ID     uint32 `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name" validate:"required"`
	Email  string `json:"email" yaml:"email" validate:"required,email_heuristic"`
	Active bool   `json:"active" yaml:"active"`
}

// NewUser builds a User from its fields and validates it.
// Returns an error wrapping ErrValidation if validation fails.
func NewUser(id uint32, name, email string, active bool) (User, error) {
	u := User{
		ID:     id,
		Name:   name,
		Email:  email,
		Active: active,
	}

	if err := u.Validate(); err != nil {
		return User{}, err
	}

	return u, nil
}

// Validate checks that the name is present and that the email passes
// ValidEmail. Decoding never calls Validate, so any record can be encoded
// and decoded regardless of its content.
func (u User) Validate() error {
	return validateStruct(u)
}
