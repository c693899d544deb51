package service

import (
	"sync"

	"github.com/banarasikart/bsk-api/internal/logger"
	"github.com/banarasikart/bsk-api/internal/models"
	"github.com/banarasikart/bsk-api/internal/repository"

	"github.com/shopspring/decimal"
)

// CartItemDetail is a cart entry joined with a live product snapshot.
// Quantity is the ledger quantity; DisplayQuantity is clamped to the
// product's stock for UI hints and never written back.
type CartItemDetail struct {
	ID              uint            `json:"id"`
	SessionID       string          `json:"session_id"`
	ProductID       uint            `json:"product_id"`
	Quantity        int             `json:"quantity"`
	DisplayQuantity int             `json:"display_quantity"`
	StockLimited    bool            `json:"stock_limited"`
	UnitPrice       models.Money    `json:"unit_price"`
	LineTotal       models.Money    `json:"line_total"`
	Product         *models.Product `json:"product"`
}

// CartService is the session-scoped cart ledger. Mutations on the same
// session are serialized with a per-session lock: add and update are
// read-modify-write and would lose updates under concurrent requests.
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository

	mu       sync.Mutex
	sessions map[string]*sync.Mutex
}

// NewCartService creates the cart service.
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		sessions:    make(map[string]*sync.Mutex),
	}
}

func (s *CartService) sessionLock(sessionID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.sessions[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		s.sessions[sessionID] = lock
	}
	return lock
}

// Add merges quantity into the session's entry for the product, creating
// the entry when absent. Returns the resulting entry.
func (s *CartService) Add(sessionID string, productID uint, quantity int) (*models.CartItem, error) {
	if sessionID == "" || productID == 0 {
		return nil, ErrValidation
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	product, err := s.productRepo.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, ErrProductNotAvailable
	}

	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	existing, err := s.cartRepo.GetBySessionAndProduct(sessionID, productID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		merged := existing.Quantity + quantity
		if err := s.cartRepo.UpdateQuantity(existing.ID, merged); err != nil {
			return nil, err
		}
		existing.Quantity = merged
		return existing, nil
	}

	item := &models.CartItem{
		SessionID: sessionID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := s.cartRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// SetQuantity overwrites an entry's quantity. A quantity of zero or less
// deletes the entry; removed reports which happened.
func (s *CartService) SetQuantity(itemID uint, quantity int) (item *models.CartItem, removed bool, err error) {
	existing, err := s.cartRepo.GetByID(itemID)
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		return nil, false, ErrNotFound
	}

	lock := s.sessionLock(existing.SessionID)
	lock.Lock()
	defer lock.Unlock()

	if quantity <= 0 {
		if _, err := s.cartRepo.Delete(itemID); err != nil {
			return nil, false, err
		}
		return nil, true, nil
	}
	if err := s.cartRepo.UpdateQuantity(itemID, quantity); err != nil {
		return nil, false, err
	}
	existing.Quantity = quantity
	return existing, false, nil
}

// Remove deletes an entry.
func (s *CartService) Remove(itemID uint) error {
	existing, err := s.cartRepo.GetByID(itemID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrNotFound
	}

	lock := s.sessionLock(existing.SessionID)
	lock.Lock()
	defer lock.Unlock()

	affected, err := s.cartRepo.Delete(itemID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Clear deletes every entry for the session. Clearing an empty session
// succeeds.
func (s *CartService) Clear(sessionID string) error {
	if sessionID == "" {
		return ErrValidation
	}
	lock := s.sessionLock(sessionID)
	lock.Lock()
	defer lock.Unlock()

	return s.cartRepo.ClearBySession(sessionID)
}

// List returns the session's entries joined with live product snapshots.
// Entries whose product vanished or went inactive are dropped from the
// output and lazily removed from the ledger.
func (s *CartService) List(sessionID string) ([]CartItemDetail, error) {
	if sessionID == "" {
		return nil, ErrValidation
	}
	items, err := s.cartRepo.ListBySession(sessionID)
	if err != nil {
		return nil, err
	}

	details := make([]CartItemDetail, 0, len(items))
	for _, item := range items {
		product := item.Product
		if product == nil || product.ID == 0 {
			p, err := s.productRepo.GetByID(item.ProductID)
			if err != nil {
				return nil, err
			}
			product = p
		}
		if product == nil || !product.IsActive {
			if _, err := s.cartRepo.Delete(item.ID); err != nil {
				logger.Warnw("cart_drop_dead_entry_failed", "item_id", item.ID, "error", err)
			}
			continue
		}

		displayQuantity := item.Quantity
		stockLimited := false
		if displayQuantity > product.StockQuantity {
			displayQuantity = product.StockQuantity
			stockLimited = true
		}

		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		details = append(details, CartItemDetail{
			ID:              item.ID,
			SessionID:       item.SessionID,
			ProductID:       item.ProductID,
			Quantity:        item.Quantity,
			DisplayQuantity: displayQuantity,
			StockLimited:    stockLimited,
			UnitPrice:       product.Price,
			LineTotal:       models.NewMoneyFromDecimal(lineTotal),
			Product:         product,
		})
	}
	return details, nil
}

// Total sums quantity times current product price across the session's
// joined entries. Prices are read live, never snapshotted in the cart.
func (s *CartService) Total(sessionID string) (models.Money, error) {
	details, err := s.List(sessionID)
	if err != nil {
		return models.Money{}, err
	}
	total := decimal.Zero
	for _, detail := range details {
		total = total.Add(detail.LineTotal.Decimal)
	}
	return models.NewMoneyFromDecimal(total), nil
}

// ItemCount sums quantities across the session's joined entries.
func (s *CartService) ItemCount(sessionID string) (int, error) {
	details, err := s.List(sessionID)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, detail := range details {
		count += detail.Quantity
	}
	return count, nil
}
