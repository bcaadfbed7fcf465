package models

// User is an account record. The email is the primary key; the username is
// unique across all records.
//
// Password holds a bcrypt digest for locally authenticated accounts and is
// empty for federated (Google) accounts. It is never serialized to JSON.
type User struct {
	Email    string `json:"email" dynamodbav:"email"`
	Username string `json:"username" dynamodbav:"username"`

	// Password is the bcrypt digest, never plaintext.
	Password string `json:"-" dynamodbav:"password,omitempty"`

	FirstName string `json:"firstName" dynamodbav:"firstName"`
	LastName  string `json:"lastName" dynamodbav:"lastName"`

	// IsGoogle marks a federated account. Password authentication must never
	// succeed for such a record, whatever is stored in Password.
	IsGoogle bool `json:"isGoogle" dynamodbav:"isGoogle"`

	ProfilePic string `json:"profilePic,omitempty" dynamodbav:"profilePic,omitempty"`

	// Favourites is the ordered list of NGC numbers, without duplicates.
	Favourites []int64 `json:"favourites" dynamodbav:"favourites,omitempty"`
}

// HasFavourite reports whether ngc is present in the user's favourites.
func (u User) HasFavourite(ngc int64) bool {
	return FavouriteIndex(u.Favourites, ngc) >= 0
}

// FavouriteIndex returns the position of ngc in favourites or -1.
func FavouriteIndex(favourites []int64, ngc int64) int {
	for i, f := range favourites {
		if f == ngc {
			return i
		}
	}
	return -1
}
