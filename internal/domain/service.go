package domain

// Service услуга из статического каталога
type Service struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"duration"`
	Price           float64 `json:"price"`
}

// FindService ищет услугу в каталоге по ID
// Возвращает nil, если не найдена
func FindService(catalog []Service, id int64) *Service {
	for i := range catalog {
		if catalog[i].ID == id {
			return &catalog[i]
		}
	}
	return nil
}
