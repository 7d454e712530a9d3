// Package graphql exposes the application's single GraphQL schema:
// queries me/getContacts/getContact and mutations signup/login/
// addContact/updateContact/deleteContact.
package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/ashishjh/contactbook/internal/auth"
	"github.com/ashishjh/contactbook/internal/contacts"
)

var userType = graphql.NewObject(graphql.ObjectConfig{
	Name: "User",
	Fields: graphql.Fields{
		"id":    &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"name":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"email": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var contactType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Contact",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"name":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"number":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"address":   &graphql.Field{Type: graphql.String},
		"userId":    &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"createdAt": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"updatedAt": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var authPayloadType = graphql.NewObject(graphql.ObjectConfig{
	Name: "AuthPayload",
	Fields: graphql.Fields{
		"userId": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"token":  &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"user":   &graphql.Field{Type: graphql.NewNonNull(userType)},
	},
})

var signupInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "SignupInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":     &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})

var loginInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "LoginInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"email":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"password": &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
	},
})

var contactInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "ContactInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":    &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"number":  &graphql.InputObjectFieldConfig{Type: graphql.NewNonNull(graphql.String)},
		"address": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

var updateContactInput = graphql.NewInputObject(graphql.InputObjectConfig{
	Name: "UpdateContactInput",
	Fields: graphql.InputObjectConfigFieldMap{
		"name":    &graphql.InputObjectFieldConfig{Type: graphql.String},
		"number":  &graphql.InputObjectFieldConfig{Type: graphql.String},
		"address": &graphql.InputObjectFieldConfig{Type: graphql.String},
	},
})

// NewSchema builds the executable schema bound to the given services.
func NewSchema(authSvc *auth.Service, contactSvc *contacts.Service) (graphql.Schema, error) {
	r := &resolvers{auth: authSvc, contacts: contactSvc}

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"me": &graphql.Field{
				Type:    userType,
				Resolve: r.me,
			},
			"getContacts": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(contactType))),
				Resolve: r.getContacts,
			},
			"getContact": &graphql.Field{
				Type: contactType,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: r.getContact,
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"signup": &graphql.Field{
				Type: graphql.NewNonNull(authPayloadType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(signupInput)},
				},
				Resolve: r.signup,
			},
			"login": &graphql.Field{
				Type: graphql.NewNonNull(authPayloadType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(loginInput)},
				},
				Resolve: r.login,
			},
			"addContact": &graphql.Field{
				Type: graphql.NewNonNull(contactType),
				Args: graphql.FieldConfigArgument{
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(contactInput)},
				},
				Resolve: r.addContact,
			},
			"updateContact": &graphql.Field{
				Type: graphql.NewNonNull(contactType),
				Args: graphql.FieldConfigArgument{
					"id":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
					"input": &graphql.ArgumentConfig{Type: graphql.NewNonNull(updateContactInput)},
				},
				Resolve: r.updateContact,
			},
			"deleteContact": &graphql.Field{
				Type: graphql.NewNonNull(graphql.Boolean),
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: r.deleteContact,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}
