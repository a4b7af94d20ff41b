// Package models defines client-side data models used by the JobHub CLI.
package models

import "time"

// UserType is the kind of account a session belongs to.
type UserType string

const UserTypeJobseeker UserType = "jobseeker"

// VerificationStatus tracks whether an account has been verified.
type VerificationStatus string

const VerificationUnverified VerificationStatus = "unverified"

// Subscription is the billing plan of an account.
type Subscription string

const SubscriptionFree Subscription = "free"

// Defaults applied to every session built from a login response. The
// authentication service does not return these fields.
const (
	DefaultAvatar             = "/placeholder-user.jpg"
	DefaultCountry            = "O'zbekiston"
	DefaultUserType           = UserTypeJobseeker
	DefaultVerificationStatus = VerificationUnverified
	DefaultSubscription       = SubscriptionFree
)

// Location is the coarse geographic location of a user.
type Location struct {
	Country string `json:"country"`
	Region  string `json:"region"`
	City    string `json:"city"`
}

// Session is the locally held representation of the authenticated user.
// It is persisted as JSON and restored on the next start.
type Session struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Email              string             `json:"email"`
	Avatar             string             `json:"avatar"`
	UserType           UserType           `json:"userType"`
	Location           Location           `json:"location"`
	CreatedAt          time.Time          `json:"createdAt"`
	LastActive         time.Time          `json:"lastActive"`
	VerificationStatus VerificationStatus `json:"verificationStatus"`
	Subscription       Subscription       `json:"subscription"`
}

// NewSession builds a session for the user the server identified by id and
// username. Name and Email both carry the username; the remaining profile
// fields get the package defaults and both timestamps are set to now.
func NewSession(id, username string, now time.Time) *Session {
	now = now.UTC()
	return &Session{
		ID:       id,
		Name:     username,
		Email:    username,
		Avatar:   DefaultAvatar,
		UserType: DefaultUserType,
		Location: Location{
			Country: DefaultCountry,
		},
		CreatedAt:          now,
		LastActive:         now,
		VerificationStatus: DefaultVerificationStatus,
		Subscription:       DefaultSubscription,
	}
}

// Clone returns a copy of s, or nil for a nil session.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}
