package order

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"upbit/pkg/core"
	"upbit/pkg/exchange"
)

// ManagerConfig holds configuration options for the order manager.
type ManagerConfig struct {
	// MaxOrders is the maximum number of orders to track. Defaults to 10000.
	// Terminal orders are dropped first when the limit is reached.
	MaxOrders int `json:"max_orders"`
	// Logger receives cancellation failures and dropped updates.
	Logger zerolog.Logger `json:"-"`
}

// Manager places orders through an Exchange and tracks them locally by uuid
// and identifier, keeping each copy in step with the exchange on Sync.
type Manager struct {
	ex     exchange.Exchange
	config ManagerConfig
	logger zerolog.Logger

	mu          sync.RWMutex
	orders      map[string]*core.OrderInfo
	identifiers map[string]string

	subscribersMu sync.RWMutex
	subscribers   []chan *core.OrderInfo
}

// NewManager creates a new order manager on top of ex.
func NewManager(ex exchange.Exchange, config ManagerConfig) *Manager {
	if config.MaxOrders <= 0 {
		config.MaxOrders = 10000
	}

	return &Manager{
		ex:          ex,
		config:      config,
		logger:      config.Logger,
		orders:      make(map[string]*core.OrderInfo),
		identifiers: make(map[string]string),
	}
}

// PlaceOrder submits req and begins tracking the resulting order.
func (m *Manager) PlaceOrder(ctx context.Context, req *core.OrderRequest) (*core.OrderInfo, error) {
	if req == nil {
		return nil, core.NewLocalError(core.KindInvalidParameter, "order is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := m.reserve(); err != nil {
		return nil, err
	}

	info, err := m.ex.PlaceOrder(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("place order: %w", err)
	}
	if info.Identifier == "" {
		info.Identifier = req.Identifier
	}

	m.store(info)
	m.notify(info)

	return info, nil
}

// CancelOrder requests cancellation of a tracked order.
// Returns an error if the order is in a terminal state.
func (m *Manager) CancelOrder(ctx context.Context, uuid string) (*core.OrderInfo, error) {
	order, exists := m.Get(uuid)
	if !exists {
		return nil, fmt.Errorf("order not found: %s", uuid)
	}
	if order.State.IsTerminal() {
		return nil, fmt.Errorf("cannot cancel order in terminal state: %s", order.State)
	}

	info, err := m.ex.CancelOrder(ctx, exchange.ByUUID(uuid))
	if err != nil {
		return nil, fmt.Errorf("cancel order: %w", err)
	}

	return m.apply(order, info)
}

// Get retrieves a tracked order by its uuid.
func (m *Manager) Get(uuid string) (*core.OrderInfo, bool) {
	if uuid == "" {
		return nil, false
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	order, ok := m.orders[uuid]
	return order, ok
}

// GetByIdentifier retrieves a tracked order by the identifier it was placed with.
func (m *Manager) GetByIdentifier(identifier string) (*core.OrderInfo, bool) {
	if identifier == "" {
		return nil, false
	}

	m.mu.RLock()
	uuid, ok := m.identifiers[identifier]
	m.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return m.Get(uuid)
}

// Sync fetches the latest order state from the exchange and updates the local copy.
func (m *Manager) Sync(ctx context.Context, uuid string) (*core.OrderInfo, error) {
	existing, exists := m.Get(uuid)
	if !exists {
		return nil, fmt.Errorf("order not found: %s", uuid)
	}

	info, err := m.ex.GetOrder(ctx, exchange.ByUUID(uuid))
	if err != nil {
		return nil, fmt.Errorf("sync order: %w", err)
	}

	return m.apply(existing, info)
}

// Orders returns all tracked orders that match the given filter.
func (m *Manager) Orders(filter Filter) []*core.OrderInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []*core.OrderInfo
	for _, order := range m.orders {
		if filter.Matches(order) {
			result = append(result, order)
		}
	}
	return result
}

// OpenOrders returns all tracked orders that are not in a terminal state.
func (m *Manager) OpenOrders() []*core.OrderInfo {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var result []*core.OrderInfo
	for _, order := range m.orders {
		if !order.State.IsTerminal() {
			result = append(result, order)
		}
	}
	return result
}

// CancelAll cancels every open tracked order, optionally only on market.
// Failures are logged and returned joined.
func (m *Manager) CancelAll(ctx context.Context, market string) error {
	var errs []error
	for _, order := range m.Orders(Filter{Market: market}) {
		if order.State.IsTerminal() {
			continue
		}
		if _, err := m.CancelOrder(ctx, order.UUID); err != nil {
			m.logger.Warn().
				Err(err).
				Str("uuid", order.UUID).
				Msg("failed to cancel order")
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Subscribe returns a channel receiving every tracked order update.
// The channel is closed when ctx is cancelled.
func (m *Manager) Subscribe(ctx context.Context) <-chan *core.OrderInfo {
	ch := make(chan *core.OrderInfo, 100)

	m.subscribersMu.Lock()
	m.subscribers = append(m.subscribers, ch)
	m.subscribersMu.Unlock()

	go func() {
		<-ctx.Done()
		m.removeSubscriber(ch)
	}()

	return ch
}

func (m *Manager) removeSubscriber(ch chan *core.OrderInfo) {
	m.subscribersMu.Lock()
	defer m.subscribersMu.Unlock()

	for i, s := range m.subscribers {
		if s == ch {
			m.subscribers = slices.Delete(m.subscribers, i, i+1)
			close(ch)
			return
		}
	}
}

func (m *Manager) notify(order *core.OrderInfo) {
	m.subscribersMu.RLock()
	defer m.subscribersMu.RUnlock()

	for _, ch := range m.subscribers {
		select {
		case ch <- order:
		default:
			m.logger.Warn().Str("uuid", order.UUID).Msg("order subscriber channel full, update dropped")
		}
	}
}

// apply merges an exchange update into the tracked copy.
func (m *Manager) apply(existing, update *core.OrderInfo) (*core.OrderInfo, error) {
	if !isValidTransition(existing.State, update.State) {
		return nil, fmt.Errorf("invalid state transition from exchange: %s -> %s", existing.State, update.State)
	}
	if update.Identifier == "" {
		update.Identifier = existing.Identifier
	}

	m.store(update)
	m.notify(update)
	return update, nil
}

func (m *Manager) store(order *core.OrderInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.orders[order.UUID] = order
	if order.Identifier != "" {
		m.identifiers[order.Identifier] = order.UUID
	}
}

// reserve makes room for one more order, dropping terminal orders if needed.
func (m *Manager) reserve() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.orders) < m.config.MaxOrders {
		return nil
	}
	for uuid, order := range m.orders {
		if order.State.IsTerminal() {
			delete(m.orders, uuid)
			if order.Identifier != "" {
				delete(m.identifiers, order.Identifier)
			}
		}
	}
	if len(m.orders) >= m.config.MaxOrders {
		return fmt.Errorf("order tracking limit reached: %d open orders", len(m.orders))
	}
	return nil
}

// Filter defines criteria for filtering tracked orders.
type Filter struct {
	Market  string          `json:"market,omitempty"`
	Side    core.OrderSide  `json:"side,omitempty"`
	State   core.OrderState `json:"state,omitempty"`
	OrdType core.OrderType  `json:"ord_type,omitempty"`
}

// Matches returns true if the order satisfies all non-zero filter criteria.
func (f *Filter) Matches(order *core.OrderInfo) bool {
	if f.Market != "" && order.Market != f.Market {
		return false
	}
	if f.Side != 0 && order.Side != f.Side {
		return false
	}
	if f.State != 0 && order.State != f.State {
		return false
	}
	if f.OrdType != 0 && order.OrdType != f.OrdType {
		return false
	}
	return true
}

var validTransitions = map[core.OrderState][]core.OrderState{
	core.StateWait: {
		core.StateWatch,
		core.StateDone,
		core.StateCancel,
	},
	core.StateWatch: {
		core.StateWait,
		core.StateDone,
		core.StateCancel,
	},
}

func isValidTransition(from, to core.OrderState) bool {
	if from == to {
		return true
	}
	return slices.Contains(validTransitions[from], to)
}
