package domain

// Account is a user of the system. Username is the immutable natural key.
// The password hash is deliberately absent: it never leaves the store layer
// except through AccountCredentials.
type Account struct {
	Username  string
	FirstName string
	LastName  string
	Email     string
	IsAdmin   bool
}

// AccountDetail is an account with the ids of the lawsuits assigned to it.
type AccountDetail struct {
	Account
	LawsuitIDs []int64
}

// AccountCredentials is what authentication needs to check a password.
type AccountCredentials struct {
	Username     string
	PasswordHash string
	IsAdmin      bool
}

// Assignment links an account to a lawsuit.
type Assignment struct {
	Username  string
	LawsuitID int64
}
