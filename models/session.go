package models

import "time"

// Session is the identity-provider state handed to the page renderer.
// The zero value is a signed-out session.
type Session struct {
	SignedIn  bool      `json:"signedIn"`
	Name      string    `json:"name,omitempty"`
	Token     string    `json:"token,omitempty"`
	ExpiresAt time.Time `json:"expiresAt,omitzero"`
}
