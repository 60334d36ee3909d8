package roster

import "errors"

var (
	// ErrLoad возвращается при ошибке чтения ростера из хранилища
	ErrLoad = errors.New("roster.repository: failed to load roster")

	// ErrSave возвращается при ошибке сохранения ростера в хранилище
	ErrSave = errors.New("roster.repository: failed to save roster")
)
