package services

import (
	"ClinicDesk/config"
	"ClinicDesk/hasher"
	"ClinicDesk/models"
	"ClinicDesk/role"
	"ClinicDesk/util"
	"ClinicDesk/validation"
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	errAccountNotFound  = errors.New("account not found")
	errPasswordMismatch = errors.New("password mismatch")
)

type AccountStore interface {
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	FindByUsername(ctx context.Context, username string) (*models.Account, error)
	Create(ctx context.Context, account *models.Account) error
	ListPublic(ctx context.Context) ([]models.PublicAccount, error)
}

// ConflictFieldExtractor names the unique field behind a duplicate-key error.
// ok is false when err is not a duplicate-key error.
type ConflictFieldExtractor interface {
	ConflictField(err error) (field string, ok bool)
}

type AuthService struct {
	store     AccountStore
	hasher    hasher.Hasher
	conflicts ConflictFieldExtractor
	admin     config.Admin
	log       *zap.Logger

	decoyOnce sync.Once
	decoy     string
}

func NewAuthService(store AccountStore, h hasher.Hasher, conflicts ConflictFieldExtractor, admin config.Admin, log *zap.Logger) *AuthService {
	return &AuthService{
		store:     store,
		hasher:    h,
		conflicts: conflicts,
		admin:     admin,
		log:       log,
	}
}

/*
* Validate the required fields
* Check email first, then username, against existing accounts
* Hash the password and persist the account
* A lost race against the unique indexes is mapped back to the same conflict messages
 */
func (s *AuthService) Signup(ctx context.Context, req models.SignupRequest) error {
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		return rejected(s.log, signupMessage(fieldErrors), fieldErrors)
	}

	existing, err := s.store.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Error looking up account by email", zap.Error(err))
		return util.NewDependencyError(util.SERVER_ERROR, err)
	}
	if existing != nil {
		return util.NewConflictError(util.EMAIL_ALREADY_IN_USE, nil)
	}

	existing, err = s.store.FindByUsername(ctx, req.Username)
	if err != nil {
		s.log.Error("Error looking up account by username", zap.Error(err))
		return util.NewDependencyError(util.SERVER_ERROR, err)
	}
	if existing != nil {
		return util.NewConflictError(util.USERNAME_ALREADY_TAKEN, nil)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.log.Error("Error hashing password", zap.Error(err))
		return util.NewDependencyError(util.SERVER_ERROR, err)
	}

	account := &models.Account{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role.User,
	}
	if err := s.store.Create(ctx, account); err != nil {
		if field, ok := s.conflicts.ConflictField(err); ok {
			s.log.Info("Signup lost a uniqueness race", zap.String("field", field))
			return util.NewConflictError(conflictMessage(field), err)
		}
		s.log.Error("Error creating account", zap.Error(err))
		return util.NewDependencyError(util.SERVER_ERROR, err)
	}

	s.log.Info("Account registered", zap.String("accountId", account.ID.Hex()))
	return nil
}

// A missing field outranks an over-long password.
func signupMessage(fieldErrors []validation.FieldError) string {
	for _, fe := range fieldErrors {
		if fe.Type != "maxbytes" {
			return util.SIGNUP_FIELDS_REQUIRED
		}
	}
	return util.PASSWORD_TOO_LONG
}

func conflictMessage(field string) string {
	switch field {
	case "email":
		return util.EMAIL_ALREADY_IN_USE
	case "username":
		return util.USERNAME_ALREADY_TAKEN
	case "":
		return fmt.Sprintf(util.FIELD_ALREADY_EXISTS, "Account")
	default:
		return fmt.Sprintf(util.FIELD_ALREADY_EXISTS, field)
	}
}

/*
* Validate the required fields
* The configured admin shortcut never touches the store
* Unknown email and wrong password produce the same auth error
* and both pay for one hash comparison
 */
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	if fieldErrors := validation.Validate(req); fieldErrors != nil {
		return models.LoginResult{}, rejected(s.log, util.LOGIN_FIELDS_REQUIRED, fieldErrors)
	}

	if s.isAdminShortcut(req) {
		return models.LoginResult{Message: util.ADMIN_LOGIN_SUCCESSFUL, RedirectTo: util.ADMIN_REDIRECT}, nil
	}

	account, err := s.store.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Error looking up account for login", zap.Error(err))
		return models.LoginResult{}, util.NewDependencyError(util.SERVER_ERROR, err)
	}
	if account == nil {
		s.hasher.Verify(req.Password, s.decoyHash())
		return models.LoginResult{}, util.NewAuthError(errAccountNotFound)
	}
	if !s.hasher.Verify(req.Password, account.PasswordHash) {
		return models.LoginResult{}, util.NewAuthError(errPasswordMismatch)
	}

	if landing := role.LandingPage(account.Role); landing != "" {
		return models.LoginResult{Message: util.ADMIN_LOGIN_SUCCESSFUL, RedirectTo: landing}, nil
	}
	return models.LoginResult{Message: util.LOGIN_SUCCESSFUL}, nil
}

// decoyHash is compared against when no account matches so a miss costs
// the same as a wrong password.
func (s *AuthService) decoyHash() string {
	s.decoyOnce.Do(func() {
		hash, err := s.hasher.Hash(uuid.NewString())
		if err != nil {
			s.log.Error("Error hashing login decoy", zap.Error(err))
			return
		}
		s.decoy = hash
	})
	return s.decoy
}

func (s *AuthService) isAdminShortcut(req models.LoginRequest) bool {
	if !s.admin.ShortcutEnabled || s.admin.ShortcutEmail == "" || s.admin.ShortcutPassword == "" {
		return false
	}
	emailMatch := subtle.ConstantTimeCompare([]byte(req.Email), []byte(s.admin.ShortcutEmail))
	passwordMatch := subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.admin.ShortcutPassword))
	return emailMatch&passwordMatch == 1
}

func (s *AuthService) ListAccounts(ctx context.Context) ([]models.PublicAccount, error) {
	accounts, err := s.store.ListPublic(ctx)
	if err != nil {
		s.log.Error("Error fetching accounts", zap.Error(err))
		return nil, util.NewDependencyError(util.ERROR_FETCHING_USERS, err)
	}
	return accounts, nil
}
