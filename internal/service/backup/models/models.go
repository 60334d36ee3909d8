package models

// InfoResponse сводка по хранилищу для экрана настроек
type InfoResponse struct {
	Keys          int    // Количество ключей в хранилище
	Professionals int    // Размер ростера
	Appointments  int    // Общее количество записей
	Users         int    // Количество учетных записей
	StorageSize   string // Приблизительный объем данных, например "12.34 KB"
}

// ImportResult итог импорта снапшота
type ImportResult struct {
	KeysImported int // Количество записанных ключей
}
