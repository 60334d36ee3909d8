package auth

import "errors"

var (
	// ErrInvalidCredentials возвращается при неверной паре email/пароль
	// Ответ не различает неизвестный email и неверный пароль
	ErrInvalidCredentials = errors.New("auth.service: invalid credentials")

	// ErrEmailTaken возвращается при регистрации на занятый email
	ErrEmailTaken = errors.New("auth.service: email already registered")

	// ErrNameRequired возвращается, когда имя при регистрации пустое
	ErrNameRequired = errors.New("auth.service: name is required")

	// ErrEmailRequired возвращается, когда email пустой
	ErrEmailRequired = errors.New("auth.service: email is required")

	// ErrPasswordTooShort возвращается, когда пароль короче минимума
	ErrPasswordTooShort = errors.New("auth.service: password is too short")

	// ErrInvalidToken возвращается при проверке просроченного или
	// поддельного токена
	ErrInvalidToken = errors.New("auth.service: invalid token")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("auth.service: internal error")
)
