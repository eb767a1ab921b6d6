// Package application contains the use cases of the cron tools.
package application

import (
	"errors"

	"github.com/iseif/devbelt/app"
)

var ErrTooManyRuns = errors.New("too many runs")

type ScheduleApplication struct {
	ExplainCron app.Request[ExplainCronRequest, ExplainCronResponse]
	BuildCron   app.Request[BuildCronRequest, BuildCronResponse]
}
