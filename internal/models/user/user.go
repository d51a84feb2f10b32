package user

import "time"

// AuthToken is one issued credential: the access scope it was signed with
// and the literal signed token string. A token is only honored while its
// row is present, so removing it revokes the credential regardless of the
// signature's validity.
type AuthToken struct {
	Access string `json:"access"`
	Token  string `json:"token"`
}

// User serializes its id under the "_id" wire key, the field name API
// clients already rely on; the password hash and token list never appear
// in JSON.
type User struct {
	ID           string      `json:"_id"`
	Email        string      `json:"email"`
	PasswordHash string      `json:"-"`
	Tokens       []AuthToken `json:"-"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
