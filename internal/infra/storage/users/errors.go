package users

import "errors"

var (
	// ErrLoad возвращается при ошибке чтения пользователей из хранилища
	ErrLoad = errors.New("users.repository: failed to load users")

	// ErrSave возвращается при ошибке сохранения пользователей в хранилище
	ErrSave = errors.New("users.repository: failed to save users")

	// ErrSeed возвращается при ошибке генерации стартовых учетных записей
	ErrSeed = errors.New("users.repository: failed to seed default users")
)
