package models

// Credentials is the proof a caller supplies for an account operation.
//
// Local accounts prove identity with Password; federated accounts with
// AccessToken, which is checked against the identity provider. IsGoogle is
// the login method the caller claims to use.
type Credentials struct {
	Email       string `json:"email"`
	Password    string `json:"password,omitempty"`
	AccessToken string `json:"-"`
	IsGoogle    bool   `json:"isGoogle"`
}

// RegisterRequest carries the fields of a new account.
type RegisterRequest struct {
	Email     string `json:"email"`
	Username  string `json:"username"`
	Password  string `json:"password,omitempty"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	IsGoogle  bool   `json:"isGoogle"`
}

// EditUserRequest changes the username and profile picture of an account.
type EditUserRequest struct {
	Credentials

	Username   string `json:"username"`
	ProfilePic string `json:"profilePic"`
}

// CreateObjectRequest carries a new catalog object. Pointer fields
// distinguish an absent value from a present zero.
type CreateObjectRequest struct {
	NGC           *int64   `json:"ngc"`
	Name          string   `json:"name"`
	Type          string   `json:"type"`
	Constellation string   `json:"constellation"`
	RA            *Decimal `json:"ra"`
	Dec           *Decimal `json:"dec"`
	Magnitude     *Decimal `json:"magnitude"`
	Collection    string   `json:"collection"`
}

// FavouriteRequest references one catalog object in a user's favourites.
type FavouriteRequest struct {
	Email string `json:"email"`
	NGC   int64  `json:"ngc"`
}

// ObjectKey addresses one catalog object.
type ObjectKey struct {
	NGC int64 `json:"ngc"`
}
