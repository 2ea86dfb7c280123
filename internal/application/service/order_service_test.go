package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hubxp/backoffice-api/internal/domain/entity"
	"github.com/hubxp/backoffice-api/pkg/apperror"
)

func TestCreateOrderRequiresProducts(t *testing.T) {
	svc := NewOrderService(newFakeOrderRepo(), newFakeProductRepo())

	_, err := svc.CreateOrder(context.Background(), &CreateOrderInput{Total: 10})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestCreateOrderRejectsNegativeTotal(t *testing.T) {
	product := entity.Product{ID: primitive.NewObjectID()}
	svc := NewOrderService(newFakeOrderRepo(), newFakeProductRepo(product))

	_, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		ProductIDs: []primitive.ObjectID{product.ID},
		Total:      -1,
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestCreateOrderRejectsUnknownProduct(t *testing.T) {
	known := entity.Product{ID: primitive.NewObjectID()}
	unknown := primitive.NewObjectID()
	svc := NewOrderService(newFakeOrderRepo(), newFakeProductRepo(known))

	_, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		ProductIDs: []primitive.ObjectID{known.ID, unknown},
		Total:      10,
	})
	require.Error(t, err)

	appErr := apperror.GetAppError(err)
	assert.Equal(t, http.StatusNotFound, appErr.Code)
	assert.Contains(t, appErr.Message, unknown.Hex())
}

func TestCreateOrderAllowsDuplicateProducts(t *testing.T) {
	product := entity.Product{ID: primitive.NewObjectID()}
	orderRepo := newFakeOrderRepo()
	svc := NewOrderService(orderRepo, newFakeProductRepo(product))

	order, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		ProductIDs: []primitive.ObjectID{product.ID, product.ID},
		Total:      20,
	})
	require.NoError(t, err)

	assert.Len(t, order.ProductIDs, 2)
	assert.Equal(t, 20.0, order.Total)
	assert.False(t, order.ID.IsZero())
}

func TestCreateOrderUsesProvidedDate(t *testing.T) {
	product := entity.Product{ID: primitive.NewObjectID()}
	svc := NewOrderService(newFakeOrderRepo(), newFakeProductRepo(product))

	date := dateUTC(2025, 4, 1)
	order, err := svc.CreateOrder(context.Background(), &CreateOrderInput{
		Date:       date,
		ProductIDs: []primitive.ObjectID{product.ID},
		Total:      10,
	})
	require.NoError(t, err)
	assert.True(t, order.Date.Equal(*date))
}

func TestGetOrderNotFound(t *testing.T) {
	svc := NewOrderService(newFakeOrderRepo(), newFakeProductRepo())

	_, err := svc.GetOrder(context.Background(), primitive.NewObjectID())
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}

func TestUpdateOrderRejectsEmptyProductList(t *testing.T) {
	existing := entity.Order{
		ID:         primitive.NewObjectID(),
		ProductIDs: []primitive.ObjectID{primitive.NewObjectID()},
		Total:      10,
	}
	svc := NewOrderService(newFakeOrderRepo(existing), newFakeProductRepo())

	_, err := svc.UpdateOrder(context.Background(), &UpdateOrderInput{
		ID:         existing.ID,
		ProductIDs: []primitive.ObjectID{},
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, apperror.GetAppError(err).Code)
}

func TestUpdateOrderPartialUpdate(t *testing.T) {
	product := entity.Product{ID: primitive.NewObjectID()}
	existing := entity.Order{
		ID:         primitive.NewObjectID(),
		Date:       *dateUTC(2025, 1, 1),
		ProductIDs: []primitive.ObjectID{product.ID},
		Total:      10,
	}
	svc := NewOrderService(newFakeOrderRepo(existing), newFakeProductRepo(product))

	total := 99.5
	updated, err := svc.UpdateOrder(context.Background(), &UpdateOrderInput{
		ID:    existing.ID,
		Total: &total,
	})
	require.NoError(t, err)

	assert.Equal(t, 99.5, updated.Total)
	assert.Equal(t, existing.ProductIDs, updated.ProductIDs)
	assert.True(t, updated.Date.Equal(existing.Date))
}

func TestDeleteOrderNotFound(t *testing.T) {
	svc := NewOrderService(newFakeOrderRepo(), newFakeProductRepo())

	err := svc.DeleteOrder(context.Background(), primitive.NewObjectID())
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperror.GetAppError(err).Code)
}
