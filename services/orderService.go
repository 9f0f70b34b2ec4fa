package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"go-resto-manager/config"
	"go-resto-manager/models"
	"go-resto-manager/storage"

	"github.com/shopspring/decimal"
)

// OrderService owns the order status state machine. Table occupancy and
// sale recording run as named post-transition hooks, each fallible on
// its own without rolling back the status write.
type OrderService struct {
	store storage.Storage
	cfg   *config.Config
	hooks []transitionHook
}

type transitionHook struct {
	name string
	run  func(ctx context.Context, order *models.Order) error
}

func NewOrderService(store storage.Storage, cfg *config.Config) *OrderService {
	s := &OrderService{store: store, cfg: cfg}
	s.hooks = []transitionHook{
		{name: "table occupancy", run: s.reconcileTableStatus},
		{name: "sale record", run: s.recordSale},
	}
	return s
}

type OrderLine struct {
	ProductID uint   `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
	Notes     string `json:"notes"`
}

type SubmitOrderInput struct {
	TableID       uint                 `json:"tableId" validate:"required"`
	CustomerName  string               `json:"customerName"`
	CustomerPhone string               `json:"customerPhone"`
	PaymentMethod models.PaymentMethod `json:"paymentMethod" validate:"required"`
	Notes         string               `json:"notes"`
	Items         []OrderLine          `json:"items"`
}

// TransitionResult carries the updated order plus non-fatal side-effect
// failures; the status write itself succeeded whenever err is nil.
type TransitionResult struct {
	Order    *models.Order `json:"order"`
	Warnings []string      `json:"warnings,omitempty"`
}

// SubmitOrder validates and persists a customer order. The product price
// at this moment is snapshotted into each line; later price edits never
// change a stored order. Mobile-money methods confirm synchronously, so
// those orders are created already paid; cash stays pending until
// settlement at completion.
func (s *OrderService) SubmitOrder(ctx context.Context, in SubmitOrderInput) (*models.Order, error) {
	table, err := s.store.GetTable(ctx, in.TableID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrTableNotFound, in.TableID)
		}
		return nil, err
	}

	if len(in.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	if !s.cfg.Payment.MethodEnabled(in.PaymentMethod) {
		return nil, &PaymentMethodError{Method: in.PaymentMethod}
	}

	total := decimal.Zero
	products := make([]*models.Product, len(in.Items))
	for i, line := range in.Items {
		if line.Quantity < 1 {
			return nil, &InvalidOrderLineError{ProductID: line.ProductID, Quantity: line.Quantity}
		}
		product, err := s.store.GetProduct(ctx, line.ProductID)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil, &ProductUnavailableError{ProductID: line.ProductID, Reason: "not found"}
			}
			return nil, err
		}
		if product.Archived {
			return nil, &ProductUnavailableError{ProductID: product.ID, Name: product.Name, Reason: "no longer on the menu"}
		}
		if !product.Available {
			return nil, &ProductUnavailableError{ProductID: product.ID, Name: product.Name, Reason: "currently unavailable"}
		}
		products[i] = product
		total = total.Add(product.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	paymentStatus := models.PaymentPending
	if in.PaymentMethod.MobileMoney() {
		paymentStatus = models.PaymentPaid
	}

	order := &models.Order{
		TableID:       &table.ID,
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		Status:        models.OrderPending,
		PaymentMethod: in.PaymentMethod,
		PaymentStatus: paymentStatus,
		Total:         total,
		Notes:         in.Notes,
		CreatedAt:     time.Now(),
	}
	items := make([]models.OrderItem, len(in.Items))
	for i, line := range in.Items {
		items[i] = models.OrderItem{
			ProductID: products[i].ID,
			Quantity:  line.Quantity,
			Price:     products[i].Price,
			Notes:     line.Notes,
		}
	}
	if err := s.store.CreateOrderWithItems(ctx, order, items); err != nil {
		return nil, err
	}

	if _, err := s.store.UpdateTable(ctx, table.ID, map[string]interface{}{
		"status": models.TableOccupied,
	}); err != nil {
		log.Printf("order %d: failed to mark table %d occupied: %v", order.ID, table.ID, err)
	}

	return s.store.GetOrderWithItems(ctx, order.ID)
}

// Transition moves an order through the state machine. Re-asserting the
// current status is a no-op on status and exists for payment webhooks,
// which call with the same status and a paymentStatus override.
func (s *OrderService) Transition(ctx context.Context, orderID uint, newStatus models.OrderStatus, paymentOverride *models.PaymentStatus) (*TransitionResult, error) {
	order, err := s.store.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: id %d", ErrOrderNotFound, orderID)
		}
		return nil, err
	}

	if !order.Status.CanTransitionTo(newStatus) {
		return nil, &InvalidTransitionError{From: order.Status, To: newStatus}
	}

	patch := map[string]interface{}{"status": newStatus}
	if paymentOverride != nil && paymentOverride.Valid() {
		// A settled order never downgrades: once completed, only a
		// "paid" re-assertion is honored.
		if order.Status != models.OrderCompleted || *paymentOverride == models.PaymentPaid {
			patch["payment_status"] = *paymentOverride
		}
	}
	if newStatus == models.OrderCompleted && order.Status != models.OrderCompleted {
		// Completion settles the bill whatever the payment state was
		// before; completedAt is stamped exactly once.
		patch["payment_status"] = models.PaymentPaid
		patch["completed_at"] = time.Now()
	}

	updated, err := s.store.UpdateOrder(ctx, orderID, patch)
	if err != nil {
		return nil, err
	}

	result := &TransitionResult{Order: updated}
	for _, hook := range s.hooks {
		if err := hook.run(ctx, updated); err != nil {
			log.Printf("order %d: %s hook failed: %v", updated.ID, hook.name, err)
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("%s update failed: %v", hook.name, err))
		}
	}
	return result, nil
}

// reconcileTableStatus derives the table state from the table's active
// order set. The scan reads whatever order set exists at this moment;
// cross-order races settle on the last writer.
func (s *OrderService) reconcileTableStatus(ctx context.Context, order *models.Order) error {
	if order.TableID == nil {
		return nil
	}
	status := models.TableOccupied
	if order.Status.Terminal() {
		active, err := s.store.GetActiveOrdersForTable(ctx, *order.TableID)
		if err != nil {
			return err
		}
		if len(active) == 0 {
			status = models.TableAvailable
		}
	}
	_, err := s.store.UpdateTable(ctx, *order.TableID, map[string]interface{}{
		"status": status,
	})
	return err
}

// recordSale creates the sale for a completed, paid order at most once.
// The read-before-insert keeps retries cheap; the unique index on
// sales.order_id makes the guarantee hold under concurrent completions,
// and a duplicate-key rejection is success, not an error.
func (s *OrderService) recordSale(ctx context.Context, order *models.Order) error {
	if order.Status != models.OrderCompleted || order.PaymentStatus != models.PaymentPaid {
		return nil
	}

	_, err := s.store.GetSaleByOrderID(ctx, order.ID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return err
	}

	orderID := order.ID
	sale := &models.Sale{
		OrderID:       &orderID,
		Amount:        order.Total,
		PaymentMethod: order.PaymentMethod,
		Description:   fmt.Sprintf("Order #%d", order.ID),
		CreatedAt:     time.Now(),
	}
	if err := s.store.CreateSale(ctx, sale); err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			return nil
		}
		return err
	}
	return nil
}
