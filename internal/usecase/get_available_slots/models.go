package get_available_slots

import "github.com/avora-app/agenda-service/pkg/types"

// Request модель запроса доступных слотов
type Request struct {
	Year           int   // Год
	Month0         int   // Месяц, 0-базный
	Day            int   // День месяца
	ProfessionalID int64 // ID профессионала
}

// Slot статус одного канонического слота для выбранного профессионала
type Slot struct {
	Time  types.TimeString // Время слота
	Taken bool             // Занят ли слот этим профессионалом
}

// Response модель ответа со статусами всех канонических слотов
// Окно работы профессионала возвращается как справочная информация:
// движок сознательно не фильтрует слоты по окну (наблюдаемое поведение
// исходной системы), сужение выбора - решение шелла
type Response struct {
	DateKey          string           // Ключ даты
	ProfessionalID   int64            // ID профессионала
	ProfessionalName string           // Имя профессионала
	StartTime        types.TimeString // Начало рабочего окна профессионала
	EndTime          types.TimeString // Конец рабочего окна профессионала
	Slots            []Slot           // Все канонические слоты со статусом
}
