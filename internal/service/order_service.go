package service

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"go-shop-backend/internal/model"
	"go-shop-backend/internal/repository"
	"go-shop-backend/internal/ws"
	"go-shop-backend/pkg/apperr"
	"go-shop-backend/pkg/validator"
)

type PlaceOrderItem struct {
	Barcode  string `json:"barcode" validate:"required"`
	Quantity int    `json:"quantity"`
}

type PlaceOrderRequest struct {
	CustomerID     uuid.UUID        `json:"customerId" validate:"uuid_required"`
	PhoneNumber    string           `json:"phoneNumber" validate:"required"`
	Address        string           `json:"address"`
	Comment        string           `json:"comment"`
	Sum            decimal.Decimal  `json:"sum"`
	OrderItems     []PlaceOrderItem `json:"orderItems" validate:"required,min=1,dive"`
	PaymentTypeID  uuid.UUID        `json:"paymentTypeId" validate:"uuid_required"`
	DeliveryTypeID uuid.UUID        `json:"deliveryTypeId" validate:"uuid_required"`
	OrderStatusID  uuid.UUID        `json:"orderStatusId" validate:"uuid_required"`
	ShoppingCartID uuid.UUID        `json:"shoppingCartId"`
}

// PlaceOrderResult is the committed order plus the outcome of the follow-up
// cart clear. A failed clear never invalidates the order.
type PlaceOrderResult struct {
	Order       *model.Order `json:"order"`
	CartCleared bool         `json:"cart_cleared"`
}

type OrderService interface {
	PlaceOrder(req *PlaceOrderRequest) (*PlaceOrderResult, error)
	GetOrders(page, limit int) ([]model.Order, int64, error)
	GetOrderByID(id uuid.UUID) (*model.Order, error)
	UpdateOrderStatus(id, statusID uuid.UUID) error
}

// ProductChecker is the slice of the product store checkout needs for its
// existence precondition.
type ProductChecker interface {
	MissingBarcodes(barcodes []string) ([]string, error)
}

// CartClearer clears a cart's items after a committed checkout.
type CartClearer interface {
	ClearItems(cartID uuid.UUID) error
}

type orderService struct {
	orders   repository.OrderRepository
	products ProductChecker
	carts    CartClearer
	wsHub    *ws.Hub
}

func NewOrderService(
	orders repository.OrderRepository,
	products ProductChecker,
	carts CartClearer,
	hub *ws.Hub,
) OrderService {
	return &orderService{
		orders:   orders,
		products: products,
		carts:    carts,
		wsHub:    hub,
	}
}

// PlaceOrder converts the cart's line items into a persisted order while
// decrementing stock atomically. All-or-nothing: any failed write or a
// decrement that would go negative aborts the whole order.
func (s *orderService) PlaceOrder(req *PlaceOrderRequest) (*PlaceOrderResult, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		first := errs[0]
		return nil, apperr.Validationf("field '%s' failed on tag '%s'", first.FailedField, first.Tag)
	}

	items := make([]model.OrderItem, 0, len(req.OrderItems))
	for _, it := range req.OrderItems {
		qty := it.Quantity
		if qty <= 0 {
			qty = 1
		}
		items = append(items, model.OrderItem{Barcode: it.Barcode, Quantity: qty})
	}

	barcodes := make([]string, 0, len(items))
	for _, it := range items {
		barcodes = append(barcodes, it.Barcode)
	}
	missing, err := s.products.MissingBarcodes(barcodes)
	if err != nil {
		return nil, err
	}
	if len(missing) > 0 {
		return nil, apperr.NotFoundf("unknown products: %v", missing)
	}

	order := &model.Order{
		CustomerID:     req.CustomerID,
		PhoneNumber:    req.PhoneNumber,
		Address:        req.Address,
		Comment:        req.Comment,
		Sum:            req.Sum,
		PaymentTypeID:  req.PaymentTypeID,
		DeliveryTypeID: req.DeliveryTypeID,
		OrderStatusID:  req.OrderStatusID,
		OrderItems:     items,
	}

	if err := s.orders.CreateWithStockDecrement(order, aggregateDecrements(items)); err != nil {
		return nil, err
	}

	result := &PlaceOrderResult{Order: order}

	// Best effort: the order is already committed, a failed clear only gets logged.
	if s.carts != nil && req.ShoppingCartID != uuid.Nil {
		if err := s.carts.ClearItems(req.ShoppingCartID); err != nil {
			log.Printf("order %s: failed to clear cart %s: %v", order.ID, req.ShoppingCartID, err)
		} else {
			result.CartCleared = true
		}
	}

	if s.wsHub != nil {
		go s.wsHub.Publish(ws.Event{
			Type:    "order_created",
			Payload: order,
			Message: fmt.Sprintf("New order from %s", order.PhoneNumber),
		})
	}

	return result, nil
}

// aggregateDecrements folds repeated barcodes into one decrement per product,
// preserving first-appearance order.
func aggregateDecrements(items []model.OrderItem) []repository.StockDecrement {
	index := make(map[string]int, len(items))
	decs := make([]repository.StockDecrement, 0, len(items))
	for _, it := range items {
		if i, ok := index[it.Barcode]; ok {
			decs[i].Quantity += it.Quantity
			continue
		}
		index[it.Barcode] = len(decs)
		decs = append(decs, repository.StockDecrement{Barcode: it.Barcode, Quantity: it.Quantity})
	}
	return decs
}

func (s *orderService) GetOrders(page, limit int) ([]model.Order, int64, error) {
	return s.orders.FindPage(page, limit)
}

func (s *orderService) GetOrderByID(id uuid.UUID) (*model.Order, error) {
	return s.orders.FindByID(id)
}

func (s *orderService) UpdateOrderStatus(id, statusID uuid.UUID) error {
	return s.orders.UpdateStatus(id, statusID)
}
