package handler

import (
	"meal-train-go/internal/transport/httpserver/handler/admin"
	"meal-train-go/internal/transport/httpserver/handler/common"
	"meal-train-go/internal/transport/httpserver/handler/public"
)

type Handlers struct {
	Common *common.Handlers
	Public *public.Handlers
	Admin  *admin.Handlers
}

func New(commonHandlers *common.Handlers, publicHandlers *public.Handlers, adminHandlers *admin.Handlers) *Handlers {
	return &Handlers{
		Common: commonHandlers,
		Public: publicHandlers,
		Admin:  adminHandlers,
	}
}
