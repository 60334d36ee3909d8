package appointments

import "errors"

var (
	// ErrLoad возвращается при ошибке чтения книги записей из хранилища
	ErrLoad = errors.New("appointments.repository: failed to load appointment book")

	// ErrSave возвращается при ошибке сохранения книги записей в хранилище
	ErrSave = errors.New("appointments.repository: failed to save appointment book")
)
