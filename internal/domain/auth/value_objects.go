package auth

import (
	"suitenest/internal/domain/user"
)

type Credentials struct {
	email    user.Email
	password user.Password
}

func NewCredentials(emailStr, passwordStr string) (Credentials, error) {
	email, err := user.NewEmail(emailStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := user.NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		email:    email,
		password: password,
	}, nil
}

func (c Credentials) Email() user.Email       { return c.email }
func (c Credentials) Password() user.Password { return c.password }

// Registration is a sign-up request. New accounts always get the guest role.
type Registration struct {
	FirstName   string
	LastName    string
	Credentials Credentials
}

func NewRegistration(firstName, lastName, emailStr, passwordStr string) (Registration, error) {
	creds, err := NewCredentials(emailStr, passwordStr)
	if err != nil {
		return Registration{}, err
	}
	return Registration{
		FirstName:   firstName,
		LastName:    lastName,
		Credentials: creds,
	}, nil
}
