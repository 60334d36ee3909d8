package create_appointment

import "errors"

var (
	// ErrClientNameRequired возвращается, когда имя клиента пустое после обрезки пробелов
	ErrClientNameRequired = errors.New("create_appointment: client name is required")

	// ErrInvalidDate возвращается при некорректной календарной дате
	ErrInvalidDate = errors.New("create_appointment: invalid date")

	// ErrInvalidTimeSlot возвращается, когда время не входит в канонический список слотов
	ErrInvalidTimeSlot = errors.New("create_appointment: time is not a canonical slot")

	// ErrProfessionalNotFound возвращается, когда профессионал отсутствует в ростере
	ErrProfessionalNotFound = errors.New("create_appointment: professional not found")

	// ErrServiceNotFound возвращается, когда услуга отсутствует в каталоге
	ErrServiceNotFound = errors.New("create_appointment: service not found")

	// ErrSlotTaken возвращается при конфликте: пара (время, профессионал)
	// уже занята в бакете даты
	ErrSlotTaken = errors.New("create_appointment: slot already taken for this professional")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
