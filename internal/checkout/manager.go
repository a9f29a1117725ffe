package checkout

import (
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shettigarlolith/LittoralWEB/internal/cart"
	"github.com/shettigarlolith/LittoralWEB/internal/config"
	"github.com/shettigarlolith/LittoralWEB/pkg/errors"
)

// Manager owns live checkout flows so callers can address one by id.
// A fresh flow always starts at Details; Success is terminal per flow.
type Manager struct {
	mu     sync.Mutex
	flows  map[uuid.UUID]*Flow
	engine *cart.Engine
	cfg    config.CheckoutConfig
	logger *zap.Logger
}

// NewManager creates a checkout manager bound to one cart engine
func NewManager(engine *cart.Engine, cfg config.CheckoutConfig, logger *zap.Logger) *Manager {
	return &Manager{
		flows:  make(map[uuid.UUID]*Flow),
		engine: engine,
		cfg:    cfg,
		logger: logger,
	}
}

// Start creates a new flow at the Details step. The empty-cart guard
// applies here too: checkout cannot begin with nothing in the cart.
func (m *Manager) Start() (*Flow, error) {
	if m.engine.IsEmpty() {
		return nil, &errors.ErrEmptyCart{}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	id := uuid.New()
	flow := NewFlow(id, m.engine, m.cfg, m.logger)
	m.flows[id] = flow
	m.logger.Info("Checkout flow started", zap.String("flow_id", id.String()))
	return flow, nil
}

// Get returns the flow with the given id
func (m *Manager) Get(id uuid.UUID) (*Flow, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	flow, ok := m.flows[id]
	if !ok {
		return nil, &errors.ErrNotFound{Resource: "checkout flow", ID: id.String()}
	}
	return flow, nil
}

// Abandon drops a flow. Abandoning an unknown id is a no-op.
func (m *Manager) Abandon(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.flows, id)
}
