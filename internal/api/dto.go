package api

import (
	"regexp"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// contactRequest is the public contact-form payload.
type contactRequest struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (c contactRequest) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&c.Email, validation.Required, validation.Match(emailRe).Error("must be a valid email address")),
		validation.Field(&c.Message, validation.Required, validation.Length(1, 10000)),
		validation.Field(&c.Company, validation.Length(0, 200)),
	)
}

// loginRequest is the admin login payload.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// uploadedFile is one stored upload echoed back to the admin UI.
type uploadedFile struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}
