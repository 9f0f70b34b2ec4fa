package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"go-resto-manager/models"
	"go-resto-manager/storage"

	"github.com/shopspring/decimal"
)

// memStore is an in-memory Storage used to exercise the services without
// a database. CreateSale enforces the same at-most-one-sale-per-order
// rule the partial unique index provides in Postgres.
type memStore struct {
	mu         sync.Mutex
	users      map[uint]*models.User
	categories map[uint]*models.Category
	products   map[uint]*models.Product
	tables     map[uint]*models.Table
	orders     map[uint]*models.Order
	items      map[uint]*models.OrderItem
	sales      map[uint]*models.Sale
	expenses   map[uint]*models.Expense
	nextID     uint

	failTableUpdate bool
	failItemCreate  bool
	// hideSales makes GetSaleByOrderID miss so the engine falls through
	// to the insert and hits the uniqueness guard, like a racing request.
	hideSales bool
}

var _ storage.Storage = (*memStore)(nil)

func newMemStore() *memStore {
	return &memStore{
		users:      map[uint]*models.User{},
		categories: map[uint]*models.Category{},
		products:   map[uint]*models.Product{},
		tables:     map[uint]*models.Table{},
		orders:     map[uint]*models.Order{},
		items:      map[uint]*models.OrderItem{},
		sales:      map[uint]*models.Sale{},
		expenses:   map[uint]*models.Expense{},
	}
}

func (m *memStore) id() uint {
	m.nextID++
	return m.nextID
}

func (m *memStore) addTable(number int) *models.Table {
	m.mu.Lock()
	defer m.mu.Unlock()
	table := &models.Table{ID: m.id(), Number: number, Capacity: 4, Status: models.TableAvailable, CreatedAt: time.Now()}
	m.tables[table.ID] = table
	return table
}

func (m *memStore) addProduct(name string, price string, available, archived bool) *models.Product {
	m.mu.Lock()
	defer m.mu.Unlock()
	product := &models.Product{
		ID:        m.id(),
		Name:      name,
		Price:     decimal.RequireFromString(price),
		Available: available,
		Archived:  archived,
		CreatedAt: time.Now(),
	}
	m.products[product.ID] = product
	return product
}

// Users

func (m *memStore) GetUsers(ctx context.Context) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.User
	for _, u := range m.users {
		out = append(out, *u)
	}
	return out, nil
}

func (m *memStore) GetUser(ctx context.Context, id uint) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, storage.ErrNotFound
}

func (m *memStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *memStore) CreateUser(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	user.ID = m.id()
	copied := *user
	m.users[user.ID] = &copied
	return nil
}

func (m *memStore) UpdateUser(ctx context.Context, id uint, patch map[string]interface{}) (*models.User, error) {
	return nil, errors.New("not implemented")
}

// Categories

func (m *memStore) GetCategories(ctx context.Context) ([]models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Category{}
	for _, c := range m.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (m *memStore) CreateCategory(ctx context.Context, category *models.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	category.ID = m.id()
	copied := *category
	m.categories[category.ID] = &copied
	return nil
}

func (m *memStore) UpdateCategory(ctx context.Context, id uint, patch map[string]interface{}) (*models.Category, error) {
	return nil, errors.New("not implemented")
}

func (m *memStore) DeleteCategory(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.categories[id]; !ok {
		return storage.ErrNotFound
	}
	delete(m.categories, id)
	return nil
}

// Products

func (m *memStore) GetProducts(ctx context.Context) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Product{}
	for _, p := range m.products {
		if !p.Archived {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *memStore) GetProductsByCategory(ctx context.Context, categoryID uint) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Product{}
	for _, p := range m.products {
		if !p.Archived && p.CategoryID != nil && *p.CategoryID == categoryID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (m *memStore) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p, ok := m.products[id]; ok {
		copied := *p
		return &copied, nil
	}
	return nil, storage.ErrNotFound
}

func (m *memStore) CreateProduct(ctx context.Context, product *models.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	product.ID = m.id()
	copied := *product
	m.products[product.ID] = &copied
	return nil
}

func (m *memStore) UpdateProduct(ctx context.Context, id uint, patch map[string]interface{}) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	if v, ok := patch["price"]; ok {
		p.Price = v.(decimal.Decimal)
	}
	if v, ok := patch["available"]; ok {
		p.Available = v.(bool)
	}
	if v, ok := patch["archived"]; ok {
		p.Archived = v.(bool)
	}
	copied := *p
	return &copied, nil
}

func (m *memStore) DeleteProduct(ctx context.Context, id uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return false, storage.ErrNotFound
	}
	for _, item := range m.items {
		if item.ProductID == id {
			p.Archived = true
			p.Available = false
			return true, nil
		}
	}
	delete(m.products, id)
	return false, nil
}

// Tables

func (m *memStore) GetTables(ctx context.Context) ([]models.Table, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Table{}
	for _, t := range m.tables {
		out = append(out, *t)
	}
	return out, nil
}

func (m *memStore) GetTable(ctx context.Context, id uint) (*models.Table, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.tables[id]; ok {
		copied := *t
		return &copied, nil
	}
	return nil, storage.ErrNotFound
}

func (m *memStore) GetTableByNumber(ctx context.Context, number int) (*models.Table, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range m.tables {
		if t.Number == number {
			copied := *t
			return &copied, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *memStore) CreateTable(ctx context.Context, table *models.Table) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	table.ID = m.id()
	copied := *table
	m.tables[table.ID] = &copied
	return nil
}

func (m *memStore) UpdateTable(ctx context.Context, id uint, patch map[string]interface{}) (*models.Table, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failTableUpdate {
		return nil, errors.New("table update rejected")
	}
	t, ok := m.tables[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	if v, ok := patch["status"]; ok {
		t.Status = v.(models.TableStatus)
	}
	if v, ok := patch["number"]; ok {
		t.Number = v.(int)
	}
	if v, ok := patch["capacity"]; ok {
		t.Capacity = v.(int)
	}
	copied := *t
	return &copied, nil
}

func (m *memStore) DeleteTable(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.tables[id]; !ok {
		return storage.ErrNotFound
	}
	delete(m.tables, id)
	return nil
}

// Orders

func (m *memStore) orderWithItems(order *models.Order) models.Order {
	copied := *order
	copied.OrderItems = nil
	for _, item := range m.items {
		if item.OrderID == order.ID {
			itemCopy := *item
			if p, ok := m.products[item.ProductID]; ok {
				productCopy := *p
				itemCopy.Product = &productCopy
			}
			copied.OrderItems = append(copied.OrderItems, itemCopy)
		}
	}
	return copied
}

func (m *memStore) GetOrders(ctx context.Context) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Order{}
	for _, o := range m.orders {
		if o.DeletedAt == nil {
			out = append(out, m.orderWithItems(o))
		}
	}
	return out, nil
}

func (m *memStore) GetActiveOrders(ctx context.Context) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Order{}
	for _, o := range m.orders {
		if o.DeletedAt == nil && !o.Status.Terminal() {
			out = append(out, m.orderWithItems(o))
		}
	}
	return out, nil
}

func (m *memStore) GetDeletedOrders(ctx context.Context) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Order{}
	for _, o := range m.orders {
		if o.DeletedAt != nil {
			out = append(out, m.orderWithItems(o))
		}
	}
	return out, nil
}

func (m *memStore) GetOrdersForTable(ctx context.Context, tableID uint) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Order{}
	for _, o := range m.orders {
		if o.DeletedAt == nil && o.TableID != nil && *o.TableID == tableID {
			out = append(out, m.orderWithItems(o))
		}
	}
	return out, nil
}

func (m *memStore) GetActiveOrdersForTable(ctx context.Context, tableID uint) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Order{}
	for _, o := range m.orders {
		if o.DeletedAt == nil && !o.Status.Terminal() && o.TableID != nil && *o.TableID == tableID {
			out = append(out, *o)
		}
	}
	return out, nil
}

func (m *memStore) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if o, ok := m.orders[id]; ok {
		copied := *o
		return &copied, nil
	}
	return nil, storage.ErrNotFound
}

func (m *memStore) GetOrderWithItems(ctx context.Context, id uint) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if o, ok := m.orders[id]; ok {
		copied := m.orderWithItems(o)
		return &copied, nil
	}
	return nil, storage.ErrNotFound
}

func (m *memStore) CreateOrder(ctx context.Context, order *models.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	order.ID = m.id()
	copied := *order
	m.orders[order.ID] = &copied
	return nil
}

func (m *memStore) UpdateOrder(ctx context.Context, id uint, patch map[string]interface{}) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, storage.ErrNotFound
	}
	for key, value := range patch {
		switch key {
		case "status":
			o.Status = value.(models.OrderStatus)
		case "payment_status":
			o.PaymentStatus = value.(models.PaymentStatus)
		case "completed_at":
			t := value.(time.Time)
			o.CompletedAt = &t
		}
	}
	copied := m.orderWithItems(o)
	return &copied, nil
}

func (m *memStore) SoftDeleteOrder(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok || o.DeletedAt != nil {
		return storage.ErrNotFound
	}
	now := time.Now()
	o.DeletedAt = &now
	return nil
}

func (m *memStore) CreateOrderWithItems(ctx context.Context, order *models.Order, items []models.OrderItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failItemCreate {
		return errors.New("item insert failed")
	}
	order.ID = m.id()
	copied := *order
	m.orders[order.ID] = &copied
	for i := range items {
		items[i].ID = m.id()
		items[i].OrderID = order.ID
		itemCopy := items[i]
		m.items[itemCopy.ID] = &itemCopy
	}
	return nil
}

func (m *memStore) GetOrderItems(ctx context.Context, orderID uint) ([]models.OrderItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.OrderItem{}
	for _, item := range m.items {
		if item.OrderID == orderID {
			out = append(out, *item)
		}
	}
	return out, nil
}

// Sales

func (m *memStore) GetSales(ctx context.Context) ([]models.Sale, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Sale{}
	for _, s := range m.sales {
		if s.DeletedAt == nil {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *memStore) GetDeletedSales(ctx context.Context) ([]models.Sale, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Sale{}
	for _, s := range m.sales {
		if s.DeletedAt != nil {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *memStore) GetSalesByDateRange(ctx context.Context, start, end time.Time) ([]models.Sale, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Sale{}
	for _, s := range m.sales {
		if s.DeletedAt == nil && !s.CreatedAt.Before(start) && !s.CreatedAt.After(end) {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (m *memStore) GetSaleByOrderID(ctx context.Context, orderID uint) (*models.Sale, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.hideSales {
		return nil, storage.ErrNotFound
	}
	for _, s := range m.sales {
		if s.DeletedAt == nil && s.OrderID != nil && *s.OrderID == orderID {
			copied := *s
			return &copied, nil
		}
	}
	return nil, storage.ErrNotFound
}

func (m *memStore) CreateSale(ctx context.Context, sale *models.Sale) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if sale.OrderID != nil {
		for _, existing := range m.sales {
			if existing.DeletedAt == nil && existing.OrderID != nil && *existing.OrderID == *sale.OrderID {
				return storage.ErrDuplicate
			}
		}
	}
	sale.ID = m.id()
	copied := *sale
	m.sales[sale.ID] = &copied
	return nil
}

func (m *memStore) SoftDeleteSale(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sales[id]
	if !ok || s.DeletedAt != nil {
		return storage.ErrNotFound
	}
	now := time.Now()
	s.DeletedAt = &now
	return nil
}

// Expenses

func (m *memStore) GetExpenses(ctx context.Context) ([]models.Expense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Expense{}
	for _, e := range m.expenses {
		if e.DeletedAt == nil {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (m *memStore) GetDeletedExpenses(ctx context.Context) ([]models.Expense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Expense{}
	for _, e := range m.expenses {
		if e.DeletedAt != nil {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (m *memStore) GetExpensesByDateRange(ctx context.Context, start, end time.Time) ([]models.Expense, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.Expense{}
	for _, e := range m.expenses {
		if e.DeletedAt == nil && !e.CreatedAt.Before(start) && !e.CreatedAt.After(end) {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (m *memStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	expense.ID = m.id()
	copied := *expense
	m.expenses[expense.ID] = &copied
	return nil
}

func (m *memStore) UpdateExpense(ctx context.Context, id uint, patch map[string]interface{}) (*models.Expense, error) {
	return nil, errors.New("not implemented")
}

func (m *memStore) SoftDeleteExpense(ctx context.Context, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.expenses[id]
	if !ok || e.DeletedAt != nil {
		return storage.ErrNotFound
	}
	now := time.Now()
	e.DeletedAt = &now
	return nil
}

// Analytics

func (m *memStore) CountOrdersByDateRange(ctx context.Context, start, end time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var count int64
	for _, o := range m.orders {
		if !o.CreatedAt.Before(start) && !o.CreatedAt.After(end) {
			count++
		}
	}
	return count, nil
}
