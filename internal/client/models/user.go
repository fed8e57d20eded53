// Package models defines the data types exchanged between the CLI flows
// and the NXT account service.
package models

// Credentials is the first-phase login payload. It is transient: flows pass
// it through to the transport layer and never retain the password.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserProfile is the account record as returned by the profile endpoint.
// Read-only from the client's perspective; fetched fresh on every entry
// into the authenticated state, never cached across entries.
type UserProfile struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	CompanyName string `json:"companyName"`
	Age         int    `json:"age"`
	DateOfBirth string `json:"dateOfBirth"`
}
