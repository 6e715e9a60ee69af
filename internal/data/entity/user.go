package entity

// User account. Password is stored as-is; the login contract compares raw
// credentials.
type User struct {
	ID       int64  `db:"id"`
	Username string `db:"username"`
	Email    string `db:"email"`
	Password string `db:"password"`
}
