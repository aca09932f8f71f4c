package handler

import (
	"hexachats_server/internal/service"
)

// Handlers aggregates the HTTP handlers; the router wires them to
// routes.
type Handlers struct {
	User    *UserHandler
	Contact *ContactHandler
	Message *MessageHandler
	Status  *StatusHandler
	Calls   *CallsHandler
	Catalog *CatalogHandler
	Order   *OrderHandler
}

// NewHandlers builds every handler over the service aggregate.
func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		User:    NewUserHandler(svc.User),
		Contact: NewContactHandler(svc.Contact),
		Message: NewMessageHandler(svc.Message),
		Status:  NewStatusHandler(svc.Status),
		Calls:   NewCallsHandler(svc.Call),
		Catalog: NewCatalogHandler(svc.Catalog),
		Order:   NewOrderHandler(svc.Order),
	}
}
