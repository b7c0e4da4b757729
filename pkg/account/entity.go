package account

// Account is a persisted user account. Password always holds the hash.
type Account struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AddAccountInput carries the fields needed to create an account.
type AddAccountInput struct {
	Name     string
	Email    string
	Password string
}
