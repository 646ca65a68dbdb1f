package user

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"

	"campusPrint/domain"
	"campusPrint/pkg/config"
	"campusPrint/pkg/logger"
	"campusPrint/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// UserRepository contract interface
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
}

type userService struct {
	userRepo UserRepository
	validate *validator.Validate
	vendor   config.VendorConfig
}

func NewUserService(userRepo UserRepository, validate *validator.Validate, vendor config.VendorConfig) *userService {
	return &userService{
		userRepo: userRepo,
		validate: validate,
		vendor:   vendor,
	}
}

// NormalizeEmail is applied before storage and every lookup, so
// "Foo@Bar.com " and "foo@bar.com" are the same account.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *userService) Register(ctx context.Context, user *domain.User) (domain.User, error) {
	// Presence only: the legacy clients send loosely formed addresses and the
	// store's unique column is the real gatekeeper.
	if err := s.validate.Var(user.Email, "required"); err != nil {
		return domain.User{}, domain.ErrMissingFields
	}
	if err := s.validate.Var(user.Password, "required"); err != nil {
		return domain.User{}, domain.ErrMissingFields
	}

	passwordHash, err := utils.HashPassword(user.Password)
	if err != nil {
		logger.Error("Failed to hash password", err)
		return domain.User{}, errors.New("failed to hash password")
	}

	role := user.Role
	if role == "" {
		role = domain.RoleUser
	}

	newUser := domain.User{
		ID:       "user_" + uuid.NewString(),
		Name:     user.Name,
		Email:    NormalizeEmail(user.Email),
		Password: string(passwordHash),
		Role:     role,
	}

	if err := s.userRepo.Create(ctx, &newUser); err != nil {
		logger.Error("Failed to create new user", err)
		return domain.User{}, err
	}

	logger.Info("User registered", "email", newUser.Email)

	newUser.Password = ""
	return newUser, nil
}

func (s *userService) Login(ctx context.Context, email, password, role string) (domain.User, error) {
	if err := s.validate.Var(email, "required"); err != nil {
		return domain.User{}, domain.ErrMissingFields
	}
	if err := s.validate.Var(password, "required"); err != nil {
		return domain.User{}, domain.ErrMissingFields
	}

	// The vendor account is a single operator identity held in config, not a
	// store-backed user. Wrong operator credentials never reach the store.
	if role == domain.RoleVendor {
		return s.loginVendor(email, password)
	}

	user, err := s.userRepo.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			logger.Warn("Login failed: unknown email", "email", email)
			return domain.User{}, domain.ErrInvalidCredentials
		}
		logger.Error("Login lookup failed", err)
		return domain.User{}, err
	}

	if !utils.CheckPassword(password, user.Password) {
		logger.Warn("Login failed: password mismatch", "email", user.Email)
		return domain.User{}, domain.ErrInvalidCredentials
	}

	logger.Info("User login success", "email", user.Email)

	user.Password = ""
	return user, nil
}

func (s *userService) loginVendor(email, password string) (domain.User, error) {
	emailOK := subtle.ConstantTimeCompare(
		[]byte(NormalizeEmail(email)), []byte(NormalizeEmail(s.vendor.Email)),
	) == 1
	passwordOK := subtle.ConstantTimeCompare(
		[]byte(password), []byte(s.vendor.Password),
	) == 1

	if !emailOK || !passwordOK {
		logger.Warn("Vendor login failed", "email", NormalizeEmail(email))
		return domain.User{}, domain.ErrInvalidVendorCredentials
	}

	logger.Info("Vendor login success", "email", NormalizeEmail(s.vendor.Email))

	return domain.User{
		ID:    s.vendor.ID,
		Name:  s.vendor.Name,
		Email: NormalizeEmail(s.vendor.Email),
		Role:  domain.RoleVendor,
	}, nil
}

// GetAllUsers retrieves all users, newest first
func (s *userService) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to get all users", err)
		return nil, err
	}

	for i := range users {
		users[i].Password = ""
	}

	return users, nil
}
