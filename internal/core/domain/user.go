package domain

// User models a registered account. HashedPassword holds the bcrypt hash;
// the plaintext password is never persisted.
type User struct {
	ID             uint   `json:"id" gorm:"primaryKey"`
	Email          string `json:"email" gorm:"uniqueIndex;not null"`
	HashedPassword string `json:"-" gorm:"column:hashed_password;not null"`
}

// PublicUser is the identity exposed to handlers and embedded in tokens.
// It deliberately carries no credential material.
type PublicUser struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

// Public strips the user down to its exposable identity fields.
func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Email: u.Email}
}
