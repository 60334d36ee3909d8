package backup

import "errors"

var (
	// ErrMalformedImport возвращается, когда импортируемый снапшот не является
	// корректным JSON объектом; состояние хранилища при этом не меняется
	ErrMalformedImport = errors.New("backup.service: malformed import payload")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("backup.service: internal error")
)
