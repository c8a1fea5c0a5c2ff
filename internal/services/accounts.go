package services

import (
	"context"
	"time"

	"soundthread/internal/models"
	"soundthread/internal/store"
	"soundthread/internal/utils"
	"soundthread/internal/validation"
)

// VerificationTTL bounds how long an emailed verification link stays valid.
const VerificationTTL = 24 * time.Hour

// Accounts orchestrates registration, verification, sign-in and profiles.
type Accounts struct {
	store  *store.Store
	hasher Hasher
	mailer Mailer
	tokens TokenSource
	now    func() time.Time
}

func NewAccounts(s *store.Store, hasher Hasher, mailer Mailer, tokens TokenSource) *Accounts {
	return &Accounts{store: s, hasher: hasher, mailer: mailer, tokens: tokens, now: time.Now}
}

type Registered struct {
	UserID int64 `json:"userId"`
}

// Register creates an unverified account and mails its verification link.
// A failed delivery is logged; the link can be requested again.
func (a *Accounts) Register(ctx context.Context, in validation.RegistrationInput) (Outcome[Registered], error) {
	const useCase = "register"
	v, err := validation.Registration(ctx, a.store, in)
	if err != nil {
		return Outcome[Registered]{}, failed(useCase, err)
	}
	if !v.Empty() {
		return rejected[Registered](useCase, v), nil
	}

	hash, err := a.hasher.Hash(in.Password)
	if err != nil {
		return Outcome[Registered]{}, err
	}
	user := &models.User{Username: in.Username, Email: in.Email, Password: hash}
	if err := a.store.CreateUser(ctx, user); err != nil {
		return Outcome[Registered]{}, failed(useCase, err)
	}
	if err := a.issueToken(ctx, user); err != nil {
		return Outcome[Registered]{}, failed(useCase, err)
	}

	utils.LogSuccessWithUser(user.ID, "user registered")
	return accepted(Registered{UserID: user.ID}), nil
}

func (a *Accounts) issueToken(ctx context.Context, user *models.User) error {
	token := a.tokens.NewToken()
	if err := a.store.SaveVerificationToken(ctx, user.ID, token, a.now()); err != nil {
		return err
	}
	if err := a.mailer.SendVerification(user.Email, token); err != nil {
		utils.LogErrorWithUser(user.ID, err, "verification email not delivered")
	}
	return nil
}

// Verify marks the token's owner verified and consumes the token.
func (a *Accounts) Verify(ctx context.Context, token string) (Outcome[Done], error) {
	const useCase = "verify"
	row, err := optional(a.store.VerificationTokenByValue(ctx, token))
	if err != nil {
		return Outcome[Done]{}, failed(useCase, err)
	}
	if v := validation.VerificationToken(row, a.now(), VerificationTTL); !v.Empty() {
		return rejected[Done](useCase, v), nil
	}

	err = a.store.Transaction(ctx, func(tx *store.Store) error {
		if err := tx.MarkVerified(ctx, row.UserID); err != nil {
			return err
		}
		return tx.DeleteVerificationToken(ctx, row.UserID)
	})
	if err != nil {
		return Outcome[Done]{}, failed(useCase, err)
	}
	utils.LogSuccessWithUser(row.UserID, "email verified")
	return accepted(Done{}), nil
}

// ResendVerification issues a fresh link. Unknown or already verified
// addresses are accepted silently so the endpoint does not reveal accounts.
func (a *Accounts) ResendVerification(ctx context.Context, email string) (Outcome[Done], error) {
	const useCase = "resend verification"
	user, err := optional(a.store.UserByEmail(ctx, email))
	if err != nil {
		return Outcome[Done]{}, failed(useCase, err)
	}
	if user == nil || user.Verified {
		return accepted(Done{}), nil
	}
	if err := a.issueToken(ctx, user); err != nil {
		return Outcome[Done]{}, failed(useCase, err)
	}
	return accepted(Done{}), nil
}

func (a *Accounts) SignIn(ctx context.Context, email, password string) (Outcome[*models.User], error) {
	const useCase = "sign in"
	if v := validation.SignInFields(email, password); !v.Empty() {
		return rejected[*models.User](useCase, v), nil
	}
	user, err := optional(a.store.UserByEmail(ctx, email))
	if err != nil {
		return Outcome[*models.User]{}, failed(useCase, err)
	}
	matches := user != nil && a.hasher.Compare(user.Password, password)
	if v := validation.Credentials(user, matches); !v.Empty() {
		return rejected[*models.User](useCase, v), nil
	}
	return accepted(user), nil
}

func (a *Accounts) Profile(ctx context.Context, userID int64) (*models.User, error) {
	user, err := a.store.UserByID(ctx, userID)
	if err != nil {
		return nil, failed("profile", err)
	}
	return user, nil
}

func (a *Accounts) UpdateProfile(ctx context.Context, sessionUserID, userID int64, field, text string) (Outcome[Done], error) {
	const useCase = "update profile"
	user, err := optional(a.store.UserByID(ctx, userID))
	if err != nil {
		return Outcome[Done]{}, failed(useCase, err)
	}
	if v := validation.ProfileUpdateAuthorization(user, sessionUserID); !v.Empty() {
		return rejected[Done](useCase, v), nil
	}
	if v := validation.ProfileFieldUpdate(field, text); !v.Empty() {
		return rejected[Done](useCase, v), nil
	}
	if err := a.store.UpdateProfileField(ctx, userID, field, text); err != nil {
		return Outcome[Done]{}, failed(useCase, err)
	}
	return accepted(Done{}), nil
}
