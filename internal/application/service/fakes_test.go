package service

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hubxp/backoffice-api/internal/domain/entity"
	"github.com/hubxp/backoffice-api/internal/domain/repository"
	"github.com/hubxp/backoffice-api/pkg/pagination"
)

// fakeAnalyticsRepo returns canned orders and records the predicate it was
// asked to evaluate.
type fakeAnalyticsRepo struct {
	orders        []entity.Order
	err           error
	lastPredicate *repository.OrderPredicate
}

func (f *fakeAnalyticsRepo) OrdersMatching(_ context.Context, p *repository.OrderPredicate) ([]entity.Order, error) {
	f.lastPredicate = p
	if f.err != nil {
		return nil, f.err
	}
	return f.orders, nil
}

// fakeProductRepo serves products from an in-memory map keyed by ID.
type fakeProductRepo struct {
	products   map[primitive.ObjectID]entity.Product
	byCategory map[primitive.ObjectID][]primitive.ObjectID
	listIDsErr error
}

func newFakeProductRepo(products ...entity.Product) *fakeProductRepo {
	repo := &fakeProductRepo{
		products:   make(map[primitive.ObjectID]entity.Product),
		byCategory: make(map[primitive.ObjectID][]primitive.ObjectID),
	}
	for _, p := range products {
		repo.products[p.ID] = p
		for _, catID := range p.CategoryIDs {
			repo.byCategory[catID] = append(repo.byCategory[catID], p.ID)
		}
	}
	return repo
}

func (f *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	f.products[product.ID] = *product
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id primitive.ObjectID) (*entity.Product, error) {
	product, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	return &product, nil
}

func (f *fakeProductRepo) GetByIDs(_ context.Context, ids []primitive.ObjectID) ([]entity.Product, error) {
	result := make([]entity.Product, 0, len(ids))
	for _, id := range ids {
		if product, ok := f.products[id]; ok {
			result = append(result, product)
		}
	}
	return result, nil
}

func (f *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	f.products[product.ID] = *product
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	delete(f.products, id)
	return nil
}

func (f *fakeProductRepo) List(_ context.Context, _ *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	result := make([]entity.Product, 0, len(f.products))
	for _, product := range f.products {
		result = append(result, product)
	}
	return result, int64(len(result)), nil
}

func (f *fakeProductRepo) ListIDsByCategory(_ context.Context, categoryID primitive.ObjectID) ([]primitive.ObjectID, error) {
	if f.listIDsErr != nil {
		return nil, f.listIDsErr
	}
	ids := f.byCategory[categoryID]
	if ids == nil {
		ids = []primitive.ObjectID{}
	}
	return ids, nil
}

// fakeCategoryRepo serves categories from an in-memory map keyed by ID.
type fakeCategoryRepo struct {
	categories map[primitive.ObjectID]entity.Category
}

func newFakeCategoryRepo(categories ...entity.Category) *fakeCategoryRepo {
	repo := &fakeCategoryRepo{categories: make(map[primitive.ObjectID]entity.Category)}
	for _, c := range categories {
		repo.categories[c.ID] = c
	}
	return repo
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *entity.Category) error {
	if category.ID.IsZero() {
		category.ID = primitive.NewObjectID()
	}
	f.categories[category.ID] = *category
	return nil
}

func (f *fakeCategoryRepo) GetByID(_ context.Context, id primitive.ObjectID) (*entity.Category, error) {
	category, ok := f.categories[id]
	if !ok {
		return nil, nil
	}
	return &category, nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, category *entity.Category) error {
	f.categories[category.ID] = *category
	return nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	delete(f.categories, id)
	return nil
}

func (f *fakeCategoryRepo) List(_ context.Context, _ *pagination.PaginationParams, _ string) ([]entity.Category, int64, error) {
	result := make([]entity.Category, 0, len(f.categories))
	for _, category := range f.categories {
		result = append(result, category)
	}
	return result, int64(len(result)), nil
}

// fakeOrderRepo stores orders in memory.
type fakeOrderRepo struct {
	orders map[primitive.ObjectID]entity.Order
}

func newFakeOrderRepo(orders ...entity.Order) *fakeOrderRepo {
	repo := &fakeOrderRepo{orders: make(map[primitive.ObjectID]entity.Order)}
	for _, o := range orders {
		repo.orders[o.ID] = o
	}
	return repo
}

func (f *fakeOrderRepo) Create(_ context.Context, order *entity.Order) error {
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	f.orders[order.ID] = *order
	return nil
}

func (f *fakeOrderRepo) GetByID(_ context.Context, id primitive.ObjectID) (*entity.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	return &order, nil
}

func (f *fakeOrderRepo) Update(_ context.Context, order *entity.Order) error {
	f.orders[order.ID] = *order
	return nil
}

func (f *fakeOrderRepo) Delete(_ context.Context, id primitive.ObjectID) error {
	delete(f.orders, id)
	return nil
}

func (f *fakeOrderRepo) List(_ context.Context, _ *repository.OrderFilterParams) ([]entity.Order, int64, error) {
	result := make([]entity.Order, 0, len(f.orders))
	for _, order := range f.orders {
		result = append(result, order)
	}
	return result, int64(len(result)), nil
}

func dateUTC(year int, month, day int) *time.Time {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return &t
}
