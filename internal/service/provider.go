package service

import (
	"hexachats_server/internal/dao/mysql/repository"
	myredis "hexachats_server/internal/dao/redis"
	"hexachats_server/internal/infrastructure/email"
	"hexachats_server/internal/infrastructure/storage"
	"hexachats_server/internal/service/calls"
	"hexachats_server/internal/service/catalog"
	"hexachats_server/internal/service/contact"
	"hexachats_server/internal/service/message"
	"hexachats_server/internal/service/order"
	"hexachats_server/internal/service/status"
	"hexachats_server/internal/service/user"
)

// Services aggregates the business layer. Handlers reach it through
// service.Svc.
type Services struct {
	User    UserService
	Contact ContactService
	Message MessageService
	Status  StatusService
	Call    CallService
	Catalog CatalogService
	Order   OrderService

	// concrete handles kept for late pusher attachment
	messageSvc interface{ SetPusher(message.Pusher) }
	statusSvc  interface{ SetPusher(status.Pusher) }
}

// Deps carries everything the services need beyond the repositories.
// Cache, Uploader and Mailer may be nil; the services degrade rather
// than fail.
type Deps struct {
	Repos      *repository.Repositories
	Cache      myredis.CacheService
	Uploader   storage.Uploader
	Mailer     email.Sender
	AdminEmail string
}

// NewServices builds every service with its dependencies injected.
func NewServices(deps Deps) *Services {
	messageSvc := message.NewMessageService(deps.Repos)
	statusSvc := status.NewStatusService(deps.Repos)

	return &Services{
		User:       user.NewUserService(deps.Repos, deps.Cache),
		Contact:    contact.NewContactService(deps.Repos, deps.Cache),
		Message:    messageSvc,
		Status:     statusSvc,
		Call:       calls.NewCallService(deps.Repos),
		Catalog:    catalog.NewCatalogService(deps.Repos),
		Order:      order.NewOrderService(deps.Repos, deps.Uploader, deps.Mailer, deps.AdminEmail),
		messageSvc: messageSvc,
		statusSvc:  statusSvc,
	}
}

// AttachPusher hands the realtime hub to the services that fan events
// out. Called once the chat server exists; before that, sends are
// stored without live delivery.
func (s *Services) AttachPusher(p Pusher) {
	s.messageSvc.SetPusher(p)
	s.statusSvc.SetPusher(p)
}

// Svc is the global aggregate used by the handler layer.
var Svc *Services

// InitServices sets the global aggregate. Call after the repositories
// and cache are up.
func InitServices(deps Deps) {
	Svc = NewServices(deps)
}

