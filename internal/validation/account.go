package validation

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"soundthread/internal/models"
)

const (
	minUsernameLength = 1
	maxUsernameLength = 30
	minPasswordLength = 8
)

var validate = validator.New()

// UserLookup answers the uniqueness questions asked during registration.
type UserLookup interface {
	UsernameTaken(ctx context.Context, username string) (bool, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
}

type RegistrationInput struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Confirmation string `json:"confirmation"`
}

// Registration checks a sign-up request. An email collision is reported
// alone; a username collision is reported alongside the format checks.
func Registration(ctx context.Context, users UserLookup, in RegistrationInput) (Violations, error) {
	if in.Username == "" || in.Email == "" || in.Password == "" || in.Confirmation == "" {
		return only(invalid(MsgAllFieldsRequired)), nil
	}

	usernameTaken, err := users.UsernameTaken(ctx, in.Username)
	if err != nil {
		return nil, err
	}
	emailTaken, err := users.EmailTaken(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if emailTaken {
		return only(invalid(MsgEmailRegistered)), nil
	}

	var out Violations
	if usernameTaken {
		out = append(out, invalid(MsgUsernameTaken))
	}
	if !lengthWithin(in.Username, minUsernameLength, maxUsernameLength) {
		out = append(out, invalid(MsgUsernameLength))
	}
	if validate.Var(in.Email, "email") != nil {
		out = append(out, invalid(MsgEmailInvalid))
	}
	if utf8.RuneCountInString(in.Password) < minPasswordLength {
		out = append(out, invalid(MsgPasswordLength))
	}
	if in.Password != in.Confirmation {
		out = append(out, invalid(MsgPasswordMismatch))
	}
	return out, nil
}

// ProfileUpdateAuthorization gates edits of a user's profile. user is nil
// when the profile does not exist.
func ProfileUpdateAuthorization(user *models.User, sessionUserID int64) Violations {
	if user == nil {
		return only(notFound(MsgProfileNotFound))
	}
	if user.ID != sessionUserID {
		return only(forbidden(MsgSignedInAsUser))
	}
	return nil
}

// ProfileFieldUpdate bounds the new value from above only.
func ProfileFieldUpdate(field, value string) Violations {
	limit, ok := models.ProfileFieldLimits[field]
	if !ok {
		return only(invalid(MsgUnknownProfileField))
	}
	if lengthWithin(value, 0, limit) {
		return nil
	}
	if field == "contact" {
		return only(invalid(MsgContactLength))
	}
	return only(invalid(MsgBioLength))
}

// SignIn requires an authenticated caller.
func SignIn(callerID int64) Violations {
	if callerID <= 0 {
		return only(unauthorized(MsgSignInRequired))
	}
	return nil
}

// SignInFields requires both credentials before any lookup happens.
func SignInFields(email, password string) Violations {
	if email == "" || password == "" {
		return only(invalid(MsgAllFieldsRequired))
	}
	return nil
}

// Credentials judges a sign-in attempt. A missing user and a wrong password
// produce the same violation.
func Credentials(user *models.User, passwordMatches bool) Violations {
	if user == nil || !passwordMatches {
		return only(unauthorized(MsgInvalidCredentials))
	}
	if !user.Verified {
		return only(forbidden(MsgEmailNotVerified))
	}
	return nil
}

// VerificationToken accepts a stored token younger than ttl. row is nil when
// the presented token is unknown.
func VerificationToken(row *models.VerificationToken, now time.Time, ttl time.Duration) Violations {
	if row == nil || now.Sub(row.SentAt) > ttl {
		return only(invalid(MsgInvalidToken))
	}
	return nil
}
