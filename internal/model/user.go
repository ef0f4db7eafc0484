package model

// User represents an account in the `users` table. The role determines
// which dashboard and permissions apply after login. Passwords are stored
// as bcrypt hashes, never in plain text.
type User struct {
	ID           uint64 `gorm:"primaryKey;autoIncrement" json:"id"`
	Initials     string `gorm:"size:5" json:"initials"`
	Surname      string `gorm:"size:50" json:"surname"`
	Username     string `gorm:"size:100" json:"username"`
	Email        string `gorm:"size:255;uniqueIndex" json:"email"`
	PasswordHash string `gorm:"size:255" json:"-"`
	Role         Role   `gorm:"size:20" json:"role"`
}

// TableName overrides the table name for User.
func (User) TableName() string { return "users" }
