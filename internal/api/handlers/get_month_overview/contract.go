package get_month_overview

import (
	"context"

	getMonthOverview "github.com/avora-app/agenda-service/internal/usecase/get_month_overview"
)

type GetMonthOverviewUseCase interface {
	Execute(ctx context.Context, req *getMonthOverview.Request) (*getMonthOverview.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
