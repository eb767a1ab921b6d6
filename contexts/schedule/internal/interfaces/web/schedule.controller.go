package web

import (
	"github.com/labstack/echo/v4"

	"github.com/iseif/devbelt"
	"github.com/iseif/devbelt/contexts/schedule/internal/application"
)

func NewScheduleController(app application.ScheduleApplication) *ScheduleController {
	return &ScheduleController{app: app}
}

type ScheduleController struct {
	app application.ScheduleApplication
}

func (sc *ScheduleController) ExplainCron() echo.HandlerFunc {
	return devbelt.HandleJSON(sc.app.ExplainCron.H)
}

func (sc *ScheduleController) BuildCron() echo.HandlerFunc {
	return devbelt.HandleJSON(sc.app.BuildCron.H)
}
