package models

// User is the document stored in the "user" collection.
// Field names match the documents written by the original deployment.
type User struct {
	UID          string `json:"uid"`
	FullName     string `json:"fullname"`
	Username     string `json:"username"`
	PasswordHash string `json:"password"`
}

// Public returns the user without the password hash.
func (u User) Public() PublicUser {
	return PublicUser{
		UID:      u.UID,
		FullName: u.FullName,
		Username: u.Username,
	}
}

// PublicUser is the part of a User that may leave the service.
type PublicUser struct {
	UID      string `json:"uid"`
	FullName string `json:"fullname"`
	Username string `json:"username"`
}
