package domain

// Ключи key-value хранилища
// Имена зафиксированы в legacy формате: под ними же данные уходят
// в экспорт и возвращаются при импорте старых снапшотов
const (
	KeyProfessionals = "avoraProfessionals"
	KeyAppointments  = "avoraAppointments"
	KeyUsers         = "avoraUsers"
	KeySelectedPlan  = "avoraSelectedPlan"
	KeyDarkMode      = "avoraDarkMode"
	KeyActiveTab     = "avoraActiveTab"
	KeyCurrentUser   = "avoraCurrentUser"
)

// KnownKeys все известные ключи хранилища в стабильном порядке
// Экспорт собирает значения именно по этому списку
var KnownKeys = []string{
	KeyDarkMode,
	KeyActiveTab,
	KeyCurrentUser,
	KeyUsers,
	KeyProfessionals,
	KeyAppointments,
	KeySelectedPlan,
}
