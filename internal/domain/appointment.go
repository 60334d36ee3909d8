package domain

import (
	"sort"

	"github.com/avora-app/agenda-service/pkg/types"
)

// Appointment запись о записи клиента на услугу
// Имя профессионала, название услуги и цена денормализованы на момент
// создания: история не меняется при правках ростера и каталога
type Appointment struct {
	ID               int64            `json:"id"`
	ClientName       string           `json:"clientName"`
	Time             types.TimeString `json:"time"`
	ProfessionalID   int64            `json:"professionalId"`
	ProfessionalName string           `json:"professionalName"`
	ServiceID        int64            `json:"serviceId"`
	ServiceName      string           `json:"serviceName"`
	Price            float64          `json:"price"`
}

// AppointmentBook все записи, сгруппированные по ключу даты
// Бакет всегда отсортирован по времени по возрастанию; пустые бакеты
// не хранятся - проверка "есть ли записи на дату" идет по наличию ключа
type AppointmentBook map[string][]Appointment

// Clone возвращает глубокую копию книги записей
// Операции над книгой работают с копией и возвращают новое значение,
// вызывающий код заменяет свою ссылку целиком
func (b AppointmentBook) Clone() AppointmentBook {
	cloned := make(AppointmentBook, len(b))
	for key, bucket := range b {
		copied := make([]Appointment, len(bucket))
		copy(copied, bucket)
		cloned[key] = copied
	}
	return cloned
}

// IsSlotFree возвращает true, если в бакете даты нет записи с точно
// совпадающей парой (время, профессионал). Отсутствующий бакет означает,
// что слот свободен для любого профессионала
func (b AppointmentBook) IsSlotFree(key DateKey, slot types.TimeString, professionalID int64) bool {
	for _, appt := range b[key.String()] {
		if appt.Time == slot && appt.ProfessionalID == professionalID {
			return false
		}
	}
	return true
}

// Insert добавляет запись в бакет даты и возвращает новую книгу
// Бакет создается при необходимости и пересортировывается по времени
// Проверка предусловий (конфликт слота и т.д.) - обязанность вызывающего usecase
func (b AppointmentBook) Insert(key DateKey, appt Appointment) AppointmentBook {
	updated := b.Clone()

	bucket := append(updated[key.String()], appt)
	sort.Slice(bucket, func(i, j int) bool {
		return bucket[i].Time.IsBefore(bucket[j].Time)
	})
	updated[key.String()] = bucket

	return updated
}

// Remove удаляет запись по ID из бакета даты и возвращает новую книгу
// Опустевший бакет удаляется из книги целиком
// Второй результат - false, если запись не найдена
func (b AppointmentBook) Remove(key DateKey, appointmentID int64) (AppointmentBook, bool) {
	bucket, ok := b[key.String()]
	if !ok {
		return b, false
	}

	filtered := make([]Appointment, 0, len(bucket))
	found := false
	for _, appt := range bucket {
		if appt.ID == appointmentID {
			found = true
			continue
		}
		filtered = append(filtered, appt)
	}

	if !found {
		return b, false
	}

	updated := b.Clone()
	if len(filtered) == 0 {
		delete(updated, key.String())
	} else {
		updated[key.String()] = filtered
	}

	return updated, true
}

// ForDate возвращает бакет записей на дату (отсортированный по времени)
func (b AppointmentBook) ForDate(key DateKey) []Appointment {
	return b[key.String()]
}

// CountForDate возвращает количество записей на дату
func (b AppointmentBook) CountForDate(key DateKey) int {
	return len(b[key.String()])
}

// HasAny возвращает true, если на дату есть хотя бы одна запись
// Проверка идет по наличию ключа: пустые бакеты в книге не хранятся
func (b AppointmentBook) HasAny(key DateKey) bool {
	_, ok := b[key.String()]
	return ok
}
