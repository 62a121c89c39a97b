package router

import (
	"github.com/wb-go/wbf/ginext"

	"github.com/DevRamona/Course-Management-Platform/internal/api/handlers/activitylog"
)

func New(logs *activitylog.Handler) *ginext.Engine {
	e := ginext.New()
	e.Use(ginext.Logger())
	e.Use(ginext.Recovery())

	api := e.Group("/api/activity-logs")

	api.POST("/", logs.Create)
	api.GET("/", logs.List)
	api.GET("/:id", logs.Get)
	api.PUT("/:id", logs.Update)

	return e
}
