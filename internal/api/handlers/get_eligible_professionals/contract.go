package get_eligible_professionals

import (
	"context"

	getEligibleProfessionals "github.com/avora-app/agenda-service/internal/usecase/get_eligible_professionals"
)

type GetEligibleProfessionalsUseCase interface {
	Execute(ctx context.Context, req *getEligibleProfessionals.Request) (*getEligibleProfessionals.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
