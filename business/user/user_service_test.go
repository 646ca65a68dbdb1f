package user

import (
	"context"
	"errors"
	"strings"
	"testing"

	"campusPrint/domain"
	"campusPrint/pkg/config"
	"campusPrint/pkg/utils"

	"github.com/go-playground/validator/v10"
)

type fakeUserRepo struct {
	byEmail   map[string]domain.User
	findCalls int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]domain.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	if _, ok := f.byEmail[user.Email]; ok {
		return domain.ErrDuplicateEmail
	}
	f.byEmail[user.Email] = *user
	return nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (domain.User, error) {
	f.findCalls++
	u, ok := f.byEmail[email]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}
	return u, nil
}

func (f *fakeUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	var out []domain.User
	for _, u := range f.byEmail {
		out = append(out, u)
	}
	return out, nil
}

var testVendor = config.VendorConfig{
	ID:       "vendor_admin",
	Name:     "Print Shop Operator",
	Email:    "operator@campusprint.example",
	Password: "op-secret-1",
}

func newService(repo UserRepository) *userService {
	return NewUserService(repo, validator.New(), testVendor)
}

func TestRegisterAndLogin_CaseInsensitiveEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newService(repo)

	registered, err := svc.Register(context.Background(), &domain.User{
		Name:     "Foo",
		Email:    " Foo@Bar.com ",
		Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if registered.Email != "foo@bar.com" {
		t.Errorf("stored email = %q, want normalized", registered.Email)
	}
	if !strings.HasPrefix(registered.ID, "user_") {
		t.Errorf("id = %q, want user_ prefix", registered.ID)
	}

	loggedIn, err := svc.Login(context.Background(), "foo@bar.com", "hunter22", "")
	if err != nil {
		t.Fatalf("login with different case: %v", err)
	}
	if loggedIn.ID != registered.ID {
		t.Errorf("login returned %q, registered %q", loggedIn.ID, registered.ID)
	}
}

func TestRegister_DuplicateEmailCaseVariant(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newService(repo)

	if _, err := svc.Register(context.Background(), &domain.User{Email: "foo@bar.com", Password: "pw123456"}); err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err := svc.Register(context.Background(), &domain.User{Email: "FOO@Bar.com", Password: "pw123456"})
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("err = %v, want ErrDuplicateEmail", err)
	}
}

func TestRegister_MissingFields(t *testing.T) {
	svc := newService(newFakeUserRepo())

	cases := []domain.User{
		{Password: "pw123456"},
		{Email: "foo@bar.com"},
		{},
	}
	for _, c := range cases {
		if _, err := svc.Register(context.Background(), &c); !errors.Is(err, domain.ErrMissingFields) {
			t.Errorf("register %+v: err = %v, want ErrMissingFields", c, err)
		}
	}
}

func TestRegister_PasswordHashedAndCleared(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newService(repo)

	registered, err := svc.Register(context.Background(), &domain.User{Email: "a@b.c", Password: "plaintext-pw"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if registered.Password != "" {
		t.Error("returned record still carries a password")
	}

	stored := repo.byEmail["a@b.c"]
	if stored.Password == "plaintext-pw" {
		t.Error("password stored in plaintext")
	}
	if !utils.CheckPassword("plaintext-pw", stored.Password) {
		t.Error("stored hash does not verify against the original password")
	}
}

func TestRegister_DefaultRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newService(repo)

	registered, err := svc.Register(context.Background(), &domain.User{Email: "a@b.c", Password: "pw123456"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if registered.Role != domain.RoleUser {
		t.Errorf("role = %q, want %q", registered.Role, domain.RoleUser)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newService(repo)

	if _, err := svc.Register(context.Background(), &domain.User{Email: "a@b.c", Password: "right-pw"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, err := svc.Login(context.Background(), "a@b.c", "wrong-pw", "")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc := newService(newFakeUserRepo())

	_, err := svc.Login(context.Background(), "ghost@b.c", "pw", "")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestVendorLogin_BypassesStore(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newService(repo)

	vendor, err := svc.Login(context.Background(), "Operator@CampusPrint.example", testVendor.Password, domain.RoleVendor)
	if err != nil {
		t.Fatalf("vendor login: %v", err)
	}
	if vendor.ID != testVendor.ID || vendor.Role != domain.RoleVendor {
		t.Errorf("vendor identity = %+v", vendor)
	}
	if repo.findCalls != 0 {
		t.Errorf("vendor login touched the user store %d times", repo.findCalls)
	}
}

func TestVendorLogin_WrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newService(repo)

	_, err := svc.Login(context.Background(), testVendor.Email, "not-it", domain.RoleVendor)
	if !errors.Is(err, domain.ErrInvalidVendorCredentials) {
		t.Fatalf("err = %v, want ErrInvalidVendorCredentials", err)
	}
	if repo.findCalls != 0 {
		t.Errorf("failed vendor login touched the user store %d times", repo.findCalls)
	}
}

func TestGetAllUsers_ClearsPasswords(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newService(repo)

	for _, email := range []string{"a@b.c", "d@e.f"} {
		if _, err := svc.Register(context.Background(), &domain.User{Email: email, Password: "pw123456"}); err != nil {
			t.Fatalf("register %s: %v", email, err)
		}
	}

	users, err := svc.GetAllUsers(context.Background())
	if err != nil {
		t.Fatalf("get all users: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("users = %d, want 2", len(users))
	}
	for _, u := range users {
		if u.Password != "" {
			t.Errorf("user %s still carries a password", u.Email)
		}
	}
}
