package create_appointment

import (
	"github.com/avora-app/agenda-service/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	Year           int              // Год
	Month0         int              // Месяц, 0-базный (0 = январь)
	Day            int              // День месяца
	Time           types.TimeString // Время слота (например, "09:00")
	ProfessionalID int64            // ID профессионала
	ServiceID      int64            // ID услуги
	ClientName     string           // Имя клиента (обязательно, непустое)
}

// Response модель ответа с созданной записью
type Response struct {
	ID      int64            // ID созданной записи
	DateKey string           // Ключ даты в legacy формате
	Time    types.TimeString // Время слота

	ProfessionalID int64 // ID профессионала
	ServiceID      int64 // ID услуги

	// Денормализованные снапшоты на момент создания
	ProfessionalName string  // Имя профессионала
	ServiceName      string  // Название услуги
	Price            float64 // Цена услуги

	ClientName string // Имя клиента
}
