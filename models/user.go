package models

// User represents the single registered account of the application.
// It is created once by the seed routine and afterwards mutated only through
// favorites add/remove operations.
type User struct {
	// UserID is the opaque unique identifier of the user, assigned at
	// creation time and immutable afterwards. Stored as the document key.
	UserID string `bson:"_id" json:"-"`

	// Username is the unique, case-sensitive login identifier.
	// Set at creation and never changed.
	Username string `bson:"username" json:"username"`

	// PasswordHash is the bcrypt hash of the user's password.
	// The plaintext password is never stored or read back.
	PasswordHash string `bson:"password_hash" json:"-"`

	// Favorites is the ordered list of favorite city names. Insertion order
	// is the display order. Holds at most five entries and never contains
	// two names that are equal after trimming and lowercasing.
	Favorites []string `bson:"favorites" json:"favorites"`
}

// CollectionName returns the name of the document collection
// associated with the User model.
func (u User) CollectionName() string {
	return "users"
}
