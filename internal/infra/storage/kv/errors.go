package kv

import "errors"

var (
	// ErrKeyNotFound возвращается, когда ключ отсутствует в хранилище
	ErrKeyNotFound = errors.New("kv: key not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("kv: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("kv: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("kv: failed to scan row")

	// ErrIO возвращается при ошибке чтения или записи файла хранилища
	ErrIO = errors.New("kv: storage i/o error")

	// ErrEncode возвращается при ошибке сериализации документа хранилища
	ErrEncode = errors.New("kv: failed to encode storage document")
)
