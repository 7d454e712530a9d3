package auth

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ashishjh/contactbook/internal/database/users"
	"github.com/ashishjh/contactbook/internal/entities"
)

// User-facing errors. Their messages are surfaced verbatim in GraphQL
// responses.
var (
	ErrUnauthenticated    = errors.New("Unauthenticated! Please login.")
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrEmailTaken         = errors.New("User already exists with this email")
	ErrNameRequired       = errors.New("name is required")
	ErrEmailRequired      = errors.New("email is required")
	ErrPasswordRequired   = errors.New("password is required")
)

// AuthPayload is returned by both Signup and Login: the new identity
// plus a bearer token to present on subsequent requests.
type AuthPayload struct {
	UserID uint
	Token  string
	User   *entities.User
}

// Service handles signup, login and identity lookup.
type Service struct {
	users      *users.Repository
	issuer     *TokenIssuer
	bcryptCost int
}

// NewService creates a new authentication service.
func NewService(repo *users.Repository, issuer *TokenIssuer, bcryptCost int) *Service {
	return &Service{
		users:      repo,
		issuer:     issuer,
		bcryptCost: bcryptCost,
	}
}

// Signup creates a new account and issues its first token. The password
// is stored only as a bcrypt hash. Duplicate emails fail with
// ErrEmailTaken; concurrent signups racing on the same email are decided
// by the unique index, not by the existence pre-check.
func (s *Service) Signup(name, email, password string) (*AuthPayload, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	if email == "" {
		return nil, ErrEmailRequired
	}
	if password == "" {
		return nil, ErrPasswordRequired
	}

	// Cheap pre-check for the common case; the unique index catches races.
	if _, err := s.users.GetByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	hash, err := HashPassword(password, s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entities.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
	}

	if err := s.users.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return s.issueFor(user)
}

// Login validates credentials and issues a token. Unknown email and
// wrong password both yield the same ErrInvalidCredentials so accounts
// cannot be enumerated.
func (s *Service) Login(email, password string) (*AuthPayload, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := CheckPassword(password, user.PasswordHash); err != nil {
		if errors.Is(err, ErrInvalidPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to check password: %w", err)
	}

	return s.issueFor(user)
}

// Me returns the authenticated caller's account.
func (s *Service) Me(ac Context) (*entities.User, error) {
	if !ac.IsAuth {
		return nil, ErrUnauthenticated
	}

	user, err := s.users.GetByID(ac.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnauthenticated
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}

func (s *Service) issueFor(user *entities.User) (*AuthPayload, error) {
	token, err := s.issuer.Issue(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	return &AuthPayload{
		UserID: user.ID,
		Token:  token,
		User:   user,
	}, nil
}
