package order

import (
	"context"
	"strings"
	"testing"

	"hexachats_server/internal/dao/mysql/repository"
	"hexachats_server/internal/dto/request"
	"hexachats_server/internal/model"
	"hexachats_server/pkg/errorx"
)

// Fakes embed the repository interface so only the methods a test
// exercises need an implementation.

type fakeUserRepo struct {
	repository.UserRepository
	user *model.UserInfo
}

func (f *fakeUserRepo) FindByUuid(uuid string) (*model.UserInfo, error) {
	if f.user != nil && f.user.Uuid == uuid {
		return f.user, nil
	}
	return nil, errorx.New(errorx.CodeNotFound, "record not found")
}

type fakeCatalogRepo struct {
	repository.CatalogRepository
	service *model.CatalogService
}

func (f *fakeCatalogRepo) FindByUuid(uuid string) (*model.CatalogService, error) {
	if f.service != nil && f.service.Uuid == uuid {
		return f.service, nil
	}
	return nil, errorx.New(errorx.CodeNotFound, "record not found")
}

type fakeOrderRepo struct {
	repository.OrderRepository
	created  *model.Order
	existing *model.Order
	updated  int8
}

func (f *fakeOrderRepo) Create(order *model.Order) error {
	f.created = order
	return nil
}

func (f *fakeOrderRepo) FindByUuid(uuid string) (*model.Order, error) {
	if f.existing != nil && f.existing.Uuid == uuid {
		return f.existing, nil
	}
	return nil, errorx.New(errorx.CodeNotFound, "record not found")
}

func (f *fakeOrderRepo) UpdateStatus(uuid string, status int8) error {
	f.updated = status
	return nil
}

type fakeUploader struct {
	key string
}

func (f *fakeUploader) PutProof(_ context.Context, key, contentType string, data []byte) (string, error) {
	f.key = key
	return "proofs/" + key, nil
}

func testRepos(orders *fakeOrderRepo) *repository.Repositories {
	return &repository.Repositories{
		User: &fakeUserRepo{user: &model.UserInfo{
			Uuid:     "U00000000000000000001",
			Nickname: "alice",
			Email:    "alice@example.com",
		}},
		Catalog: &fakeCatalogRepo{service: &model.CatalogService{
			Uuid:        "V00000000000000000001",
			Platform:    "instagram",
			Name:        "IG Followers",
			PricePerK:   500,
			MinQuantity: 100,
			MaxQuantity: 10000,
			Active:      1,
		}},
		Order: orders,
	}
}

func TestPlaceOrderPricing(t *testing.T) {
	orders := &fakeOrderRepo{}
	uploader := &fakeUploader{}
	svc := NewOrderService(testRepos(orders), uploader, nil, "")

	rsp, err := svc.PlaceOrder("U00000000000000000001", request.PlaceOrderRequest{
		ServiceUuid:   "V00000000000000000001",
		Quantity:      2500,
		TargetUrl:     "https://instagram.com/alice",
		PaymentMethod: "paypal",
	}, &request.ProofUpload{Filename: "receipt.png", ContentType: "image/png", Data: []byte{1, 2, 3}})
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	// 500 cents per 1000 units, 2500 units.
	if rsp.TotalPrice != 1250 {
		t.Fatalf("total = %d, want 1250", rsp.TotalPrice)
	}
	if rsp.Status != "pending" {
		t.Fatalf("status = %q, want pending", rsp.Status)
	}
	if orders.created == nil {
		t.Fatal("order not persisted")
	}
	if orders.created.UserNickname != "alice" || orders.created.UserEmail != "alice@example.com" {
		t.Fatalf("user snapshot not copied: %+v", orders.created)
	}
	if !strings.HasSuffix(uploader.key, "/receipt.png") {
		t.Fatalf("proof key = %q", uploader.key)
	}
}

func TestPlaceOrderQuantityBounds(t *testing.T) {
	svc := NewOrderService(testRepos(&fakeOrderRepo{}), &fakeUploader{}, nil, "")
	proof := &request.ProofUpload{Filename: "r.png", ContentType: "image/png", Data: []byte{1}}

	for _, quantity := range []int{99, 10001} {
		_, err := svc.PlaceOrder("U00000000000000000001", request.PlaceOrderRequest{
			ServiceUuid:   "V00000000000000000001",
			Quantity:      quantity,
			TargetUrl:     "https://instagram.com/alice",
			PaymentMethod: "paypal",
		}, proof)
		if errorx.GetCode(err) != errorx.CodeInvalidParam {
			t.Fatalf("quantity %d: code = %d, want %d", quantity, errorx.GetCode(err), errorx.CodeInvalidParam)
		}
	}
}

func TestPlaceOrderRequiresProof(t *testing.T) {
	svc := NewOrderService(testRepos(&fakeOrderRepo{}), &fakeUploader{}, nil, "")

	_, err := svc.PlaceOrder("U00000000000000000001", request.PlaceOrderRequest{
		ServiceUuid:   "V00000000000000000001",
		Quantity:      500,
		TargetUrl:     "https://instagram.com/alice",
		PaymentMethod: "paypal",
	}, nil)
	if errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Fatalf("code = %d, want %d", errorx.GetCode(err), errorx.CodeInvalidParam)
	}
}

func TestPlaceOrderInactiveService(t *testing.T) {
	repos := testRepos(&fakeOrderRepo{})
	repos.Catalog.(*fakeCatalogRepo).service.Active = 0
	svc := NewOrderService(repos, &fakeUploader{}, nil, "")

	_, err := svc.PlaceOrder("U00000000000000000001", request.PlaceOrderRequest{
		ServiceUuid:   "V00000000000000000001",
		Quantity:      500,
		TargetUrl:     "https://instagram.com/alice",
		PaymentMethod: "paypal",
	}, &request.ProofUpload{Filename: "r.png", ContentType: "image/png", Data: []byte{1}})
	if errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Fatalf("code = %d, want %d", errorx.GetCode(err), errorx.CodeInvalidParam)
	}
}

func TestValidTransition(t *testing.T) {
	cases := []struct {
		from, to int8
		want     bool
	}{
		{model.OrderStatusPending, model.OrderStatusInProgress, true},
		{model.OrderStatusPending, model.OrderStatusCanceled, true},
		{model.OrderStatusPending, model.OrderStatusCompleted, false},
		{model.OrderStatusInProgress, model.OrderStatusCompleted, true},
		{model.OrderStatusInProgress, model.OrderStatusCanceled, true},
		{model.OrderStatusInProgress, model.OrderStatusPending, false},
		{model.OrderStatusCompleted, model.OrderStatusCanceled, false},
		{model.OrderStatusCanceled, model.OrderStatusInProgress, false},
	}
	for _, tc := range cases {
		if got := ValidTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("ValidTransition(%s, %s) = %v, want %v",
				model.OrderStatusName[tc.from], model.OrderStatusName[tc.to], got, tc.want)
		}
	}
}

func TestUpdateOrderStatus(t *testing.T) {
	orders := &fakeOrderRepo{existing: &model.Order{
		Uuid:   "O00000000000000000001",
		Status: model.OrderStatusPending,
	}}
	repos := testRepos(orders)
	svc := NewOrderService(repos, nil, nil, "")

	if err := svc.UpdateOrderStatus("O00000000000000000001", "in progress"); err != nil {
		t.Fatalf("UpdateOrderStatus: %v", err)
	}
	if orders.updated != model.OrderStatusInProgress {
		t.Fatalf("status = %d, want %d", orders.updated, model.OrderStatusInProgress)
	}

	orders.existing.Status = model.OrderStatusCompleted
	err := svc.UpdateOrderStatus("O00000000000000000001", "canceled")
	if errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Fatalf("terminal transition accepted: %v", err)
	}

	if err := svc.UpdateOrderStatus("O00000000000000000001", "refunded"); errorx.GetCode(err) != errorx.CodeInvalidParam {
		t.Fatalf("unknown status accepted: %v", err)
	}

	if err := svc.UpdateOrderStatus("Omissing", "canceled"); errorx.GetCode(err) != errorx.CodeNotFound {
		t.Fatalf("missing order: %v", err)
	}
}
