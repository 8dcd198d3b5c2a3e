package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CredentialsCollection is the name of the collection Credential records are stored in
const CredentialsCollection = "information"

// Credential is a username / password pair submitted by a user.
// The password is stored exactly as received.
type Credential struct {
	// ID is assigned by the datastore on insert
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	// Username is the submitted user name
	Username string `bson:"username" json:"username"`

	// Password is the submitted password
	Password string `bson:"password" json:"-"`
}

// RegistrationRequest is the body of a registration request. It can be
// encoded as JSON or as form values, both use the same field names.
type RegistrationRequest struct {
	// User is the user name
	User string `json:"user" validate:"notblank"`

	// Password is the password
	Password string `json:"password" validate:"notblank"`
}

// Credential converts the request into a Credential record. Values are
// copied verbatim.
func (r RegistrationRequest) Credential() Credential {
	return Credential{
		Username: r.User,
		Password: r.Password,
	}
}

// CreatedCredential describes a stored Credential in API responses
type CreatedCredential struct {
	// ID is the datastore identifier of the new record
	ID string `json:"id"`

	// Username of the new record
	Username string `json:"username"`
}
