package usecase

import (
	"context"
	"errors"
	"log/slog"

	"blog-service/app/domain"
	"blog-service/app/port"
	"blog-service/app/utils/retry"
)

// AccountUseCase implements the account lifecycle workflow over the
// credential gateway and the profile store
type AccountUseCase struct {
	gateway     port.CredentialGateway
	profileRepo port.ProfileRepository
	retryPolicy retry.Policy
	logger      *slog.Logger
}

// NewAccountUseCase creates a new AccountUseCase instance
func NewAccountUseCase(
	gateway port.CredentialGateway,
	profileRepo port.ProfileRepository,
	retryPolicy retry.Policy,
	logger *slog.Logger,
) *AccountUseCase {
	return &AccountUseCase{
		gateway:     gateway,
		profileRepo: profileRepo,
		retryPolicy: retryPolicy,
		logger:      logger.With("component", "account_usecase"),
	}
}

// Register creates a new account: identity at the credential store plus a
// profile row. The username is validated before any store is touched. When
// the profile insert fails after all retry attempts, the just-created
// session is torn down best-effort so no half-registered account stays
// signed in.
func (uc *AccountUseCase) Register(ctx context.Context, email, password, username string) (*domain.Identity, error) {
	if err := domain.ValidateUsername(username); err != nil {
		return nil, err
	}

	// Pre-check for a friendlier error. The unique constraint on the insert
	// remains the authoritative guard.
	existing, err := uc.profileRepo.FindByUsername(ctx, username)
	if err != nil && !errors.Is(err, domain.ErrProfileNotFound) {
		uc.logger.Error("username pre-check failed", "username", username, "error", err)
		return nil, domain.NewAccountError(domain.KindStoreUnavailable,
			"could not verify username availability", err)
	}
	if existing != nil {
		return nil, domain.NewAccountError(domain.KindUsernameTaken,
			"username is already taken", domain.ErrUsernameTaken)
	}

	identity, err := uc.gateway.CreateIdentity(ctx, email, password, username)
	if err != nil {
		uc.logger.Error("identity creation failed", "email", email, "error", err)
		return nil, domain.NewAccountError(domain.KindIdentityCreationFailed,
			err.Error(), err)
	}

	profile, err := domain.NewProfile(identity.ID, username)
	if err != nil {
		return nil, err
	}

	var lastErr error
	insertErr := uc.retryPolicy.Do(ctx, func(ctx context.Context) error {
		lastErr = uc.profileRepo.Insert(ctx, profile)
		if lastErr != nil {
			uc.logger.Warn("profile insert attempt failed",
				"identity_id", identity.ID, "error", lastErr)
		}
		return lastErr
	})

	if insertErr != nil {
		// Roll back the session so the caller is not left signed in to an
		// account without a profile. The identity itself stays behind; the
		// store is the source of truth and login will surface the gap.
		if signOutErr := uc.gateway.SignOut(ctx); signOutErr != nil {
			uc.logger.Warn("rollback sign-out failed",
				"identity_id", identity.ID, "error", signOutErr)
		}

		if errors.Is(insertErr, domain.ErrUsernameTaken) {
			return nil, domain.NewAccountError(domain.KindUsernameTaken,
				"username is already taken", insertErr)
		}
		return nil, domain.NewAccountError(domain.KindProfileCreationFailed,
			insertErr.Error(), insertErr)
	}

	uc.logger.Info("account registered", "identity_id", identity.ID, "username", username)
	return identity, nil
}

// Login authenticates an email/password pair and verifies the identity has a
// profile row. An identity without a profile is a half-registered account;
// its fresh session is torn down best-effort and the login fails.
func (uc *AccountUseCase) Login(ctx context.Context, email, password string) (*domain.Identity, error) {
	identity, err := uc.gateway.Authenticate(ctx, email, password)
	if err != nil {
		uc.logger.Warn("authentication failed", "email", email, "error", err)
		return nil, domain.NewAccountError(domain.KindAuthenticationFailed,
			err.Error(), err)
	}
	if identity == nil {
		return nil, domain.NewAccountError(domain.KindAuthenticationFailed,
			"no user returned", nil)
	}

	if _, err := uc.profileRepo.FindByID(ctx, identity.ID); err != nil {
		uc.logger.Error("profile verification failed",
			"identity_id", identity.ID, "error", err)

		if signOutErr := uc.gateway.SignOut(ctx); signOutErr != nil {
			uc.logger.Warn("verification sign-out failed",
				"identity_id", identity.ID, "error", signOutErr)
		}

		return nil, domain.NewAccountError(domain.KindProfileMissing,
			"account profile could not be verified", err)
	}

	uc.logger.Info("login succeeded", "identity_id", identity.ID)
	return identity, nil
}

// SignOut tears down the ambient session. With no session held it succeeds
// without talking to the credential store.
func (uc *AccountUseCase) SignOut(ctx context.Context) error {
	if err := uc.gateway.SignOut(ctx); err != nil {
		uc.logger.Error("sign-out failed", "error", err)
		return domain.NewAccountError(domain.KindSignOutFailed, err.Error(), err)
	}
	return nil
}
