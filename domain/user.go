package domain

// UserSummary is the user record shape owned by the external account
// service, read-only from the gateway's perspective.
type UserSummary struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	Role      string `json:"role,omitempty"`
}

// UserDirectory is the account service's full user listing.
type UserDirectory struct {
	Users []UserSummary `json:"users"`
}

// Seller is the subset of a user attached to enriched items.
type Seller struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// UserWithItems pairs a user with everything they have for sale.
type UserWithItems struct {
	UserSummary
	Items []Item `json:"items"`
}

// UsersWithItems is the admin view over all users and their items.
type UsersWithItems struct {
	Users   []UserWithItems `json:"users"`
	Message string          `json:"message"`
}
