package service

import (
	"net/mail"
	"strings"

	"github.com/banarasikart/bsk-api/internal/constants"
	"github.com/banarasikart/bsk-api/internal/logger"
	"github.com/banarasikart/bsk-api/internal/models"
	"github.com/banarasikart/bsk-api/internal/queue"
	"github.com/banarasikart/bsk-api/internal/repository"

	"github.com/shopspring/decimal"
)

// OrderItemInput is one requested line item.
type OrderItemInput struct {
	ProductID uint `json:"product_id"`
	Quantity  int  `json:"quantity"`
}

// CreateOrderInput carries the checkout request. Total is the client's
// claimed grand total and is verified against the server-side recompute.
type CreateOrderInput struct {
	CustomerName    string           `json:"customer_name"`
	CustomerEmail   string           `json:"customer_email"`
	CustomerPhone   string           `json:"customer_phone"`
	ShippingAddress string           `json:"shipping_address"`
	Total           models.Money     `json:"total"`
	Items           []OrderItemInput `json:"items"`
}

// OrderService assembles and manages orders.
type OrderService struct {
	orderRepo   repository.OrderRepository
	productRepo repository.ProductRepository
	cartRepo    repository.CartRepository
	queueClient *queue.Client
}

// NewOrderService creates the order service.
func NewOrderService(orderRepo repository.OrderRepository, productRepo repository.ProductRepository, cartRepo repository.CartRepository, queueClient *queue.Client) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		cartRepo:    cartRepo,
		queueClient: queueClient,
	}
}

func (s *OrderService) validateCustomer(input *CreateOrderInput) error {
	input.CustomerName = strings.TrimSpace(input.CustomerName)
	input.CustomerEmail = strings.TrimSpace(input.CustomerEmail)
	input.CustomerPhone = strings.TrimSpace(input.CustomerPhone)
	input.ShippingAddress = strings.TrimSpace(input.ShippingAddress)

	if input.CustomerName == "" || input.ShippingAddress == "" {
		return ErrValidation
	}
	if input.CustomerEmail == "" {
		return ErrValidation
	}
	if _, err := mail.ParseAddress(input.CustomerEmail); err != nil {
		return ErrValidation
	}
	return nil
}

// CreateOrder validates the request, snapshots current prices, recomputes
// the total and persists the order followed by each line item. When an item
// insert fails the committed order is reported through PartialOrderError
// rather than silently dropped. sessionID, when set, names a cart to clear
// after a fully successful checkout.
func (s *OrderService) CreateOrder(input CreateOrderInput, sessionID string) (*models.Order, error) {
	if err := s.validateCustomer(&input); err != nil {
		return nil, err
	}
	if len(input.Items) == 0 {
		return nil, ErrValidation
	}

	type pricedItem struct {
		productID uint
		quantity  int
		price     models.Money
	}

	priced := make([]pricedItem, 0, len(input.Items))
	total := decimal.Zero
	for _, item := range input.Items {
		if item.ProductID == 0 || item.Quantity <= 0 {
			return nil, ErrInvalidOrderItem
		}
		product, err := s.productRepo.GetByID(item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil || !product.IsActive {
			return nil, ErrProductNotAvailable
		}
		priced = append(priced, pricedItem{
			productID: item.ProductID,
			quantity:  item.Quantity,
			price:     product.Price,
		})
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	serverTotal := models.NewMoneyFromDecimal(total)
	if !input.Total.Decimal.IsZero() && !serverTotal.Equal(input.Total.Decimal) {
		return nil, ErrOrderTotalMismatch
	}

	order := &models.Order{
		CustomerName:    input.CustomerName,
		CustomerEmail:   input.CustomerEmail,
		CustomerPhone:   input.CustomerPhone,
		ShippingAddress: input.ShippingAddress,
		Total:           serverTotal,
		Status:          constants.OrderStatusPending,
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	for i, item := range priced {
		orderItem := &models.OrderItem{
			OrderID:   order.ID,
			ProductID: item.productID,
			Quantity:  item.quantity,
			Price:     item.price,
		}
		if err := s.orderRepo.CreateItem(orderItem); err != nil {
			logger.Errorw("order_item_persist_failed",
				"order_id", order.ID,
				"product_id", item.productID,
				"items_created", i,
				"error", err)
			return order, &PartialOrderError{
				OrderID:      order.ID,
				ItemsCreated: i,
				Err:          err,
			}
		}
		order.Items = append(order.Items, *orderItem)
	}

	if sessionID != "" {
		if err := s.cartRepo.ClearBySession(sessionID); err != nil {
			logger.Warnw("order_cart_clear_failed", "order_id", order.ID, "session_id", sessionID, "error", err)
		}
	}

	logger.Infow("order_created", "order_id", order.ID, "total", order.Total.String(), "items", len(order.Items))
	return order, nil
}

// GetByID fetches one order with its items.
func (s *OrderService) GetByID(id uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}
	return order, nil
}

// List returns orders newest-first, optionally filtered by status.
func (s *OrderService) List(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	if filter.Status != "" && !constants.IsValidOrderStatus(filter.Status) {
		return nil, 0, ErrOrderStatusInvalid
	}
	return s.orderRepo.List(filter)
}

// UpdateStatus moves an order to the given status. Any valid status may
// follow any other; re-applying the current status succeeds. A status
// change enqueues a notification task when the queue is on.
func (s *OrderService) UpdateStatus(id uint, status string) (*models.Order, error) {
	if !constants.IsValidOrderStatus(status) {
		return nil, ErrOrderStatusInvalid
	}
	order, err := s.orderRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrNotFound
	}

	fromStatus := order.Status
	affected, err := s.orderRepo.UpdateStatus(id, status)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrNotFound
	}
	order.Status = status

	if fromStatus != status {
		if err := s.queueClient.EnqueueOrderStatusNotify(queue.OrderStatusNotifyPayload{
			OrderID:    id,
			FromStatus: fromStatus,
			ToStatus:   status,
		}); err != nil {
			logger.Warnw("order_status_notify_enqueue_failed", "order_id", id, "error", err)
		}
	}

	logger.Infow("order_status_updated", "order_id", id, "from", fromStatus, "to", status)
	return order, nil
}
