// Package catalog implements the SMM service catalog.
package catalog

import (
	"hexachats_server/internal/dao/mysql/repository"
	"hexachats_server/internal/dto/request"
	"hexachats_server/internal/dto/respond"
	"hexachats_server/internal/model"
	"hexachats_server/pkg/errorx"
	"hexachats_server/pkg/util/random"
)

type catalogService struct {
	repos *repository.Repositories
}

func NewCatalogService(repos *repository.Repositories) *catalogService {
	return &catalogService{repos: repos}
}

// GetServiceList lists the catalog, optionally narrowed to one platform.
// Public callers see active entries only; admins pass includeInactive.
func (c *catalogService) GetServiceList(platform string, includeInactive bool) ([]respond.ServiceRespond, error) {
	var (
		services []model.CatalogService
		err      error
	)
	activeOnly := !includeInactive
	if platform != "" {
		services, err = c.repos.Catalog.FindByPlatform(platform, activeOnly)
	} else {
		services, err = c.repos.Catalog.FindAll(activeOnly)
	}
	if err != nil {
		return nil, err
	}
	list := make([]respond.ServiceRespond, 0, len(services))
	for i := range services {
		list = append(list, *toServiceRespond(&services[i]))
	}
	return list, nil
}

// AddService creates a catalog entry, active by default.
func (c *catalogService) AddService(req request.AddServiceRequest) (*respond.ServiceRespond, error) {
	minQty, maxQty := req.MinQuantity, req.MaxQuantity
	if minQty == 0 {
		minQty = 100
	}
	if maxQty == 0 {
		maxQty = 100000
	}
	if minQty > maxQty {
		return nil, errorx.New(errorx.CodeInvalidParam, "min_quantity exceeds max_quantity")
	}
	service := &model.CatalogService{
		Uuid:        "V" + random.GetNowAndLenRandomString(11),
		Platform:    req.Platform,
		Name:        req.Name,
		PricePerK:   req.PricePerK,
		MinQuantity: minQty,
		MaxQuantity: maxQty,
		Active:      1,
	}
	if err := c.repos.Catalog.Create(service); err != nil {
		return nil, err
	}
	return toServiceRespond(service), nil
}

// DeleteServices soft deletes catalog entries. Existing orders keep their
// snapshots, so removal never rewrites order history.
func (c *catalogService) DeleteServices(uuidList []string) error {
	if len(uuidList) == 0 {
		return errorx.New(errorx.CodeInvalidParam, "empty uuid list")
	}
	return c.repos.Catalog.SoftDeleteByUuids(uuidList)
}

// SetServicesActive toggles visibility without deleting.
func (c *catalogService) SetServicesActive(uuidList []string, active bool) error {
	if len(uuidList) == 0 {
		return errorx.New(errorx.CodeInvalidParam, "empty uuid list")
	}
	var flag int8
	if active {
		flag = 1
	}
	return c.repos.Catalog.SetActiveByUuids(uuidList, flag)
}

func toServiceRespond(service *model.CatalogService) *respond.ServiceRespond {
	return &respond.ServiceRespond{
		Uuid:        service.Uuid,
		Platform:    service.Platform,
		Name:        service.Name,
		PricePerK:   service.PricePerK,
		MinQuantity: service.MinQuantity,
		MaxQuantity: service.MaxQuantity,
		Active:      service.Active == 1,
	}
}
