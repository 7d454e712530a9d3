// Package contacts implements the owner-scoped contact operations.
// Every operation passes two gates: the caller must be authenticated,
// and single-record operations must match both the record id and the
// caller's user id in one predicate.
package contacts

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ashishjh/contactbook/internal/auth"
	contactsrepo "github.com/ashishjh/contactbook/internal/database/contacts"
	"github.com/ashishjh/contactbook/internal/entities"
)

// User-facing errors, surfaced verbatim in GraphQL responses.
// ErrContactNotFound deliberately covers both a missing contact and a
// contact owned by someone else, so record ids never leak across
// accounts.
var (
	ErrContactNotFound = errors.New("Contact not found")
	ErrNameRequired    = errors.New("name is required")
	ErrNumberRequired  = errors.New("number is required")
)

// Input holds the fields for creating a contact. The owner is never part
// of the input: it always comes from the authenticated context.
type Input struct {
	Name    string
	Number  string
	Address string
}

// Update is a partial update: nil fields keep their stored values.
type Update = contactsrepo.Update

// Service executes contact operations on behalf of an authenticated
// caller.
type Service struct {
	repo *contactsrepo.Repository
}

// NewService creates a new contacts service.
func NewService(repo *contactsrepo.Repository) *Service {
	return &Service{repo: repo}
}

// List returns all of the caller's contacts, newest first.
func (s *Service) List(ac auth.Context) ([]entities.Contact, error) {
	if !ac.IsAuth {
		return nil, auth.ErrUnauthenticated
	}

	list, err := s.repo.ListByOwner(ac.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return list, nil
}

// Get returns a single contact owned by the caller.
func (s *Service) Get(ac auth.Context, id uint) (*entities.Contact, error) {
	if !ac.IsAuth {
		return nil, auth.ErrUnauthenticated
	}

	contact, err := s.repo.GetByIDAndOwner(id, ac.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to load contact: %w", err)
	}
	return contact, nil
}

// Create stores a new contact owned by the caller.
func (s *Service) Create(ac auth.Context, input Input) (*entities.Contact, error) {
	if !ac.IsAuth {
		return nil, auth.ErrUnauthenticated
	}
	if input.Name == "" {
		return nil, ErrNameRequired
	}
	if input.Number == "" {
		return nil, ErrNumberRequired
	}

	contact := &entities.Contact{
		Name:    input.Name,
		Number:  input.Number,
		Address: input.Address,
		UserID:  ac.UserID, // owner comes from the verified token, never from input
	}

	if err := s.repo.Create(contact); err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}
	return contact, nil
}

// UpdateContact applies a partial update to a contact owned by the
// caller. Omitted fields retain their prior values.
func (s *Service) UpdateContact(ac auth.Context, id uint, update Update) (*entities.Contact, error) {
	if !ac.IsAuth {
		return nil, auth.ErrUnauthenticated
	}

	contact, err := s.repo.UpdateByIDAndOwner(id, ac.UserID, update)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrContactNotFound
		}
		return nil, fmt.Errorf("failed to update contact: %w", err)
	}
	return contact, nil
}

// Delete removes a contact owned by the caller. Deleting an id that no
// longer exists reports ErrContactNotFound rather than succeeding
// silently.
func (s *Service) Delete(ac auth.Context, id uint) (bool, error) {
	if !ac.IsAuth {
		return false, auth.ErrUnauthenticated
	}

	if err := s.repo.DeleteByIDAndOwner(id, ac.UserID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrContactNotFound
		}
		return false, fmt.Errorf("failed to delete contact: %w", err)
	}
	return true, nil
}
