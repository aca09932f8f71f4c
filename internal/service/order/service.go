// Package order implements order placement and the admin workflow.
package order

import (
	"context"
	"fmt"
	"path"
	"time"

	"go.uber.org/zap"

	"hexachats_server/internal/dao/mysql/repository"
	"hexachats_server/internal/dto/request"
	"hexachats_server/internal/dto/respond"
	"hexachats_server/internal/infrastructure/email"
	"hexachats_server/internal/infrastructure/storage"
	"hexachats_server/internal/model"
	"hexachats_server/pkg/constants"
	"hexachats_server/pkg/errorx"
	"hexachats_server/pkg/util/random"
)

type orderService struct {
	repos      *repository.Repositories
	uploader   storage.Uploader
	mailer     email.Sender
	adminEmail string
}

// NewOrderService wires the repositories plus the optional side-effect
// dependencies. A nil uploader rejects proof uploads; a nil mailer
// skips admin notification.
func NewOrderService(repos *repository.Repositories, uploader storage.Uploader, mailer email.Sender, adminEmail string) *orderService {
	return &orderService{
		repos:      repos,
		uploader:   uploader,
		mailer:     mailer,
		adminEmail: adminEmail,
	}
}

// PlaceOrder validates the catalog entry and quantity bounds, stores the
// proof image, creates the order and notifies the administrator. A
// failed notification only logs; the order stands.
func (o *orderService) PlaceOrder(userId string, req request.PlaceOrderRequest, proof *request.ProofUpload) (*respond.OrderRespond, error) {
	user, err := o.repos.User.FindByUuid(userId)
	if err != nil {
		return nil, err
	}
	service, err := o.repos.Catalog.FindByUuid(req.ServiceUuid)
	if err != nil {
		if errorx.IsNotFound(err) {
			return nil, errorx.New(errorx.CodeNotFound, "service not found")
		}
		return nil, err
	}
	if service.Active != 1 {
		return nil, errorx.New(errorx.CodeInvalidParam, "service not orderable")
	}
	if req.Quantity < service.MinQuantity || req.Quantity > service.MaxQuantity {
		return nil, errorx.Newf(errorx.CodeInvalidParam,
			"quantity must be between %d and %d", service.MinQuantity, service.MaxQuantity)
	}
	if proof == nil || len(proof.Data) == 0 {
		return nil, errorx.New(errorx.CodeInvalidParam, "proof of payment required")
	}
	if len(proof.Data) > constants.PROOF_MAX_SIZE {
		return nil, errorx.New(errorx.CodeInvalidParam, "proof image too large")
	}

	orderUuid := "O" + random.GetNowAndLenRandomString(11)

	proofKey := ""
	if o.uploader != nil {
		key := path.Join(orderUuid, proof.Filename)
		proofKey, err = o.uploader.PutProof(context.Background(), key, proof.ContentType, proof.Data)
		if err != nil {
			return nil, errorx.Wrap(err, errorx.CodeServerBusy, "store proof of payment")
		}
	}

	ord := &model.Order{
		Uuid:          orderUuid,
		UserId:        user.Uuid,
		UserNickname:  user.Nickname,
		UserEmail:     user.Email,
		Platform:      service.Platform,
		ServiceUuid:   service.Uuid,
		ServiceName:   service.Name,
		Quantity:      req.Quantity,
		UnitPricePerK: service.PricePerK,
		TotalPrice:    service.PricePerK * int64(req.Quantity) / 1000,
		TargetUrl:     req.TargetUrl,
		PaymentMethod: req.PaymentMethod,
		ProofKey:      proofKey,
		Status:        model.OrderStatusPending,
		PlacedAt:      time.Now(),
	}
	if err := o.repos.Order.Create(ord); err != nil {
		return nil, err
	}
	zap.L().Info("order placed",
		zap.String("order", ord.Uuid),
		zap.String("user", ord.UserId),
		zap.String("service", ord.ServiceName),
		zap.Int("quantity", ord.Quantity))

	o.notifyAdmin(ord)
	return toOrderRespond(ord), nil
}

// GetMyOrders returns the caller's orders, newest first.
func (o *orderService) GetMyOrders(userId string) ([]respond.OrderRespond, error) {
	orders, err := o.repos.Order.FindByUserId(userId)
	if err != nil {
		return nil, err
	}
	list := make([]respond.OrderRespond, 0, len(orders))
	for i := range orders {
		list = append(list, *toOrderRespond(&orders[i]))
	}
	return list, nil
}

// GetOrderList pages all orders for the admin console.
func (o *orderService) GetOrderList(page, pageSize int) (*respond.OrderListWrapper, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	orders, total, err := o.repos.Order.FindAll(page, pageSize)
	if err != nil {
		return nil, err
	}
	wrapper := &respond.OrderListWrapper{
		Orders: make([]respond.OrderRespond, 0, len(orders)),
		Total:  total,
	}
	for i := range orders {
		wrapper.Orders = append(wrapper.Orders, *toOrderRespond(&orders[i]))
	}
	return wrapper, nil
}

// UpdateOrderStatus moves an order through its state machine. The read
// and the write run in one transaction so two admins cannot race an
// order out of a terminal state.
func (o *orderService) UpdateOrderStatus(orderUuid, statusName string) error {
	target, ok := parseStatus(statusName)
	if !ok {
		return errorx.Newf(errorx.CodeInvalidParam, "unknown order status %q", statusName)
	}
	return o.repos.Transaction(func(tx *repository.Repositories) error {
		ord, err := tx.Order.FindByUuid(orderUuid)
		if err != nil {
			if errorx.IsNotFound(err) {
				return errorx.New(errorx.CodeNotFound, "order not found")
			}
			return err
		}
		if !ValidTransition(ord.Status, target) {
			return errorx.Newf(errorx.CodeInvalidParam, "cannot move order from %s to %s",
				model.OrderStatusName[ord.Status], statusName)
		}
		return tx.Order.UpdateStatus(orderUuid, target)
	})
}

// ValidTransition reports whether an order may move from one status to
// another. Completed and canceled are terminal.
func ValidTransition(from, to int8) bool {
	switch from {
	case model.OrderStatusPending:
		return to == model.OrderStatusInProgress || to == model.OrderStatusCanceled
	case model.OrderStatusInProgress:
		return to == model.OrderStatusCompleted || to == model.OrderStatusCanceled
	default:
		return false
	}
}

func parseStatus(name string) (int8, bool) {
	for status, n := range model.OrderStatusName {
		if n == name {
			return status, true
		}
	}
	return 0, false
}

func (o *orderService) notifyAdmin(ord *model.Order) {
	if o.mailer == nil || o.adminEmail == "" {
		return
	}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				zap.L().Error(fmt.Sprintf("order notification panic: %v", r))
			}
		}()
		email.SendOrderNotification(o.mailer, o.adminEmail, ord.Uuid, ord.UserNickname, ord.ServiceName, ord.Quantity, ord.TotalPrice)
	}()
}

func toOrderRespond(ord *model.Order) *respond.OrderRespond {
	return &respond.OrderRespond{
		Uuid:          ord.Uuid,
		UserId:        ord.UserId,
		UserNickname:  ord.UserNickname,
		UserEmail:     ord.UserEmail,
		Platform:      ord.Platform,
		ServiceUuid:   ord.ServiceUuid,
		ServiceName:   ord.ServiceName,
		Quantity:      ord.Quantity,
		UnitPricePerK: ord.UnitPricePerK,
		TotalPrice:    ord.TotalPrice,
		TargetUrl:     ord.TargetUrl,
		PaymentMethod: ord.PaymentMethod,
		ProofKey:      ord.ProofKey,
		Status:        model.OrderStatusName[ord.Status],
		PlacedAt:      ord.PlacedAt.Format(constants.TIME_FORMAT),
	}
}
