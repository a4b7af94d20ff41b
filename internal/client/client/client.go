package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
)

// Client is the authentication service API used by the session store.
type Client interface {
	// Login checks credentials and returns the account the service matched.
	Login(ctx context.Context, username, password string) (*User, error)
	// Signup creates an account. It does not log the user in.
	Signup(ctx context.Context, username, email, password string) error
	Close() error
}

// User is the account part of a successful login response.
type User struct {
	ID       UserID `json:"id"`
	Username string `json:"username"`
}

// UserID is a server-assigned identifier. The service sends it either as a
// JSON number or a JSON string; it is kept in its textual form.
type UserID string

func (id *UserID) UnmarshalJSON(b []byte) error {
	var v any
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return err
	}

	switch value := v.(type) {
	case json.Number:
		*id = UserID(value.String())
	case string:
		*id = UserID(value)
	default:
		return fmt.Errorf("%w: user id %s", ErrMalformedResponse, string(b))
	}
	return nil
}

func (id UserID) String() string {
	return string(id)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	User *User `json:"user"`
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type messageResponse struct {
	Message string `json:"message"`
}
