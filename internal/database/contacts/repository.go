// Package contacts provides database operations for contact records.
package contacts

import (
	"gorm.io/gorm"

	"github.com/ashishjh/contactbook/internal/entities"
)

// Update describes a partial contact update. Only non-nil fields are
// applied; nil fields keep their stored values.
type Update struct {
	Name    *string
	Number  *string
	Address *string
}

// Repository handles all contact database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new contacts repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create persists a new contact. UserID must already be set by the
// caller from the authenticated context.
func (r *Repository) Create(contact *entities.Contact) error {
	return r.db.Create(contact).Error
}

// ListByOwner returns all contacts owned by ownerID, newest first.
func (r *Repository) ListByOwner(ownerID uint) ([]entities.Contact, error) {
	var contacts []entities.Contact
	err := r.db.
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&contacts).Error
	return contacts, err
}

// GetByIDAndOwner fetches a single contact matching both the id and the
// owner in one predicate. A contact owned by someone else is
// indistinguishable from a missing one: both return
// gorm.ErrRecordNotFound.
func (r *Repository) GetByIDAndOwner(id, ownerID uint) (*entities.Contact, error) {
	var contact entities.Contact
	err := r.db.Where("id = ? AND user_id = ?", id, ownerID).First(&contact).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

// UpdateByIDAndOwner applies the non-nil fields of update to the contact
// matching id and ownerID, and returns the updated row. Returns
// gorm.ErrRecordNotFound when no such contact exists for this owner.
func (r *Repository) UpdateByIDAndOwner(id, ownerID uint, update Update) (*entities.Contact, error) {
	contact, err := r.GetByIDAndOwner(id, ownerID)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Number != nil {
		fields["number"] = *update.Number
	}
	if update.Address != nil {
		fields["address"] = *update.Address
	}

	if len(fields) == 0 {
		return contact, nil
	}

	if err := r.db.Model(contact).Updates(fields).Error; err != nil {
		return nil, err
	}
	return contact, nil
}

// DeleteByIDAndOwner removes the contact matching id and ownerID.
// Returns gorm.ErrRecordNotFound when nothing was deleted, so a repeated
// delete on the same id fails rather than silently succeeding.
func (r *Repository) DeleteByIDAndOwner(id, ownerID uint) error {
	result := r.db.Where("id = ? AND user_id = ?", id, ownerID).Delete(&entities.Contact{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
