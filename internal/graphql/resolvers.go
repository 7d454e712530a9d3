package graphql

import (
	"errors"
	"log"
	"time"

	"github.com/graphql-go/graphql"

	"github.com/ashishjh/contactbook/internal/auth"
	"github.com/ashishjh/contactbook/internal/contacts"
	"github.com/ashishjh/contactbook/internal/entities"
)

// errInternal replaces unexpected errors so store failures and stack
// detail never reach the caller. The real error is logged server-side.
var errInternal = errors.New("internal server error")

// expectedErrors are user-facing outcomes surfaced verbatim as the
// GraphQL error message.
var expectedErrors = []error{
	auth.ErrUnauthenticated,
	auth.ErrInvalidCredentials,
	auth.ErrEmailTaken,
	auth.ErrNameRequired,
	auth.ErrEmailRequired,
	auth.ErrPasswordRequired,
	contacts.ErrContactNotFound,
	contacts.ErrNameRequired,
	contacts.ErrNumberRequired,
}

type resolvers struct {
	auth     *auth.Service
	contacts *contacts.Service
}

// View structs shape responses: json tags line up with the schema field
// names so the default field resolver finds them, and the password hash
// can never slip into a payload.

type userView struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type contactView struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	Number    string  `json:"number"`
	Address   *string `json:"address"`
	UserID    uint    `json:"userId"`
	CreatedAt string  `json:"createdAt"`
	UpdatedAt string  `json:"updatedAt"`
}

type authPayloadView struct {
	UserID uint     `json:"userId"`
	Token  string   `json:"token"`
	User   userView `json:"user"`
}

func newUserView(u *entities.User) userView {
	return userView{ID: u.ID, Name: u.Name, Email: u.Email}
}

func newContactView(c *entities.Contact) contactView {
	var address *string
	if c.Address != "" {
		address = &c.Address
	}
	return contactView{
		ID:        c.ID,
		Name:      c.Name,
		Number:    c.Number,
		Address:   address,
		UserID:    c.UserID,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
}

func newAuthPayloadView(p *auth.AuthPayload) authPayloadView {
	return authPayloadView{
		UserID: p.UserID,
		Token:  p.Token,
		User:   newUserView(p.User),
	}
}

// resolveError passes expected outcomes through and masks everything
// else as an internal error.
func resolveError(op string, err error) error {
	for _, expected := range expectedErrors {
		if errors.Is(err, expected) {
			return err
		}
	}
	log.Printf("Internal error (%s): %v", op, err)
	return errInternal
}

func (r *resolvers) me(p graphql.ResolveParams) (interface{}, error) {
	user, err := r.auth.Me(auth.FromContext(p.Context))
	if err != nil {
		return nil, resolveError("me", err)
	}
	return newUserView(user), nil
}

func (r *resolvers) getContacts(p graphql.ResolveParams) (interface{}, error) {
	list, err := r.contacts.List(auth.FromContext(p.Context))
	if err != nil {
		return nil, resolveError("getContacts", err)
	}

	views := make([]contactView, 0, len(list))
	for i := range list {
		views = append(views, newContactView(&list[i]))
	}
	return views, nil
}

func (r *resolvers) getContact(p graphql.ResolveParams) (interface{}, error) {
	id := p.Args["id"].(int)

	contact, err := r.contacts.Get(auth.FromContext(p.Context), uint(id))
	if err != nil {
		return nil, resolveError("getContact", err)
	}
	return newContactView(contact), nil
}

func (r *resolvers) signup(p graphql.ResolveParams) (interface{}, error) {
	input := p.Args["input"].(map[string]interface{})

	payload, err := r.auth.Signup(
		stringArg(input, "name"),
		stringArg(input, "email"),
		stringArg(input, "password"),
	)
	if err != nil {
		return nil, resolveError("signup", err)
	}
	return newAuthPayloadView(payload), nil
}

func (r *resolvers) login(p graphql.ResolveParams) (interface{}, error) {
	input := p.Args["input"].(map[string]interface{})

	payload, err := r.auth.Login(
		stringArg(input, "email"),
		stringArg(input, "password"),
	)
	if err != nil {
		return nil, resolveError("login", err)
	}
	return newAuthPayloadView(payload), nil
}

func (r *resolvers) addContact(p graphql.ResolveParams) (interface{}, error) {
	input := p.Args["input"].(map[string]interface{})

	contact, err := r.contacts.Create(auth.FromContext(p.Context), contacts.Input{
		Name:    stringArg(input, "name"),
		Number:  stringArg(input, "number"),
		Address: stringArg(input, "address"),
	})
	if err != nil {
		return nil, resolveError("addContact", err)
	}
	return newContactView(contact), nil
}

func (r *resolvers) updateContact(p graphql.ResolveParams) (interface{}, error) {
	id := p.Args["id"].(int)
	input := p.Args["input"].(map[string]interface{})

	// Only fields present in the input are touched.
	update := contacts.Update{
		Name:    optionalStringArg(input, "name"),
		Number:  optionalStringArg(input, "number"),
		Address: optionalStringArg(input, "address"),
	}

	contact, err := r.contacts.UpdateContact(auth.FromContext(p.Context), uint(id), update)
	if err != nil {
		return nil, resolveError("updateContact", err)
	}
	return newContactView(contact), nil
}

func (r *resolvers) deleteContact(p graphql.ResolveParams) (interface{}, error) {
	id := p.Args["id"].(int)

	deleted, err := r.contacts.Delete(auth.FromContext(p.Context), uint(id))
	if err != nil {
		return nil, resolveError("deleteContact", err)
	}
	return deleted, nil
}

func stringArg(input map[string]interface{}, key string) string {
	if v, ok := input[key].(string); ok {
		return v
	}
	return ""
}

func optionalStringArg(input map[string]interface{}, key string) *string {
	if v, ok := input[key].(string); ok {
		return &v
	}
	return nil
}
