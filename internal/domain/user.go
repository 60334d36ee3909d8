package domain

// UserRole роль пользователя системы
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

// User учетная запись, хранится в key-value хранилище под ключом avoraUsers
// Пароль хранится только в виде bcrypt хэша
type User struct {
	Email        string   `json:"email"`
	Name         string   `json:"name"`
	Role         UserRole `json:"role"`
	PasswordHash string   `json:"passwordHash"`
}

// IsAdmin возвращает true для административной учетной записи
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// FindUser ищет пользователя по email
// Возвращает nil, если не найден
func FindUser(users []User, email string) *User {
	for i := range users {
		if users[i].Email == email {
			return &users[i]
		}
	}
	return nil
}
