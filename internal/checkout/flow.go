// Package checkout implements the Details -> Payment -> Success flow.
package checkout

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shettigarlolith/LittoralWEB/internal/cart"
	"github.com/shettigarlolith/LittoralWEB/internal/config"
	"github.com/shettigarlolith/LittoralWEB/internal/domain"
	"github.com/shettigarlolith/LittoralWEB/pkg/errors"
)

// Flow is one checkout instance: a linear state machine that collects and
// validates customer and payment data, then clears the cart on success.
type Flow struct {
	mu      sync.Mutex
	id      uuid.UUID
	step    domain.CheckoutStep
	details *domain.CustomerDetails
	order   *domain.Order

	engine *cart.Engine
	delay  time.Duration
	logger *zap.Logger
}

// NewFlow creates a flow at the Details step
func NewFlow(id uuid.UUID, engine *cart.Engine, cfg config.CheckoutConfig, logger *zap.Logger) *Flow {
	return &Flow{
		id:     id,
		step:   domain.StepDetails,
		engine: engine,
		delay:  cfg.ProcessingDelay,
		logger: logger,
	}
}

// ID returns the flow identifier
func (f *Flow) ID() uuid.UUID { return f.id }

// Step returns the current checkout step
func (f *Flow) Step() domain.CheckoutStep {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

// Details returns the submitted customer details, if any
func (f *Flow) Details() (domain.CustomerDetails, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.details == nil {
		return domain.CustomerDetails{}, false
	}
	return *f.details, true
}

// Order returns the placed order once the flow has reached Success
func (f *Flow) Order() (*domain.Order, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.order, f.order != nil
}

// SubmitDetails validates the delivery details and moves Details -> Payment.
// On validation failure the flow stays at Details and no state changes.
func (f *Flow) SubmitDetails(d domain.CustomerDetails) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.guardCartLocked(); err != nil {
		return err
	}
	if !f.step.CanTransitionTo(domain.StepPayment) || f.step != domain.StepDetails {
		return &errors.ErrInvalidStateTransition{From: f.step, To: domain.StepPayment}
	}
	if fields := ValidateCustomerDetails(d); len(fields) > 0 {
		return &errors.ErrValidation{Fields: fields}
	}

	f.details = &d
	f.step = domain.StepPayment
	f.logger.Info("Checkout details accepted", zap.String("flow_id", f.id.String()))
	return nil
}

// Back moves Payment -> Details without clearing the entered details
func (f *Flow) Back() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.step != domain.StepPayment {
		return &errors.ErrInvalidStateTransition{From: f.step, To: domain.StepDetails}
	}
	f.step = domain.StepDetails
	return nil
}

// PlaceOrder validates the payment method, simulates gateway processing for
// the configured delay, then clears the cart and moves to Success. The delay
// is cancellable: when ctx is done first, the pending transition is
// discarded, the cart keeps its items, and the flow stays at Payment.
func (f *Flow) PlaceOrder(ctx context.Context, pd domain.PaymentDetails) (*domain.Order, error) {
	f.mu.Lock()
	if err := f.guardCartLocked(); err != nil {
		f.mu.Unlock()
		return nil, err
	}
	if f.step != domain.StepPayment {
		from := f.step
		f.mu.Unlock()
		return nil, &errors.ErrInvalidStateTransition{From: from, To: domain.StepSuccess}
	}
	if fields := ValidatePaymentDetails(pd); len(fields) > 0 {
		f.mu.Unlock()
		return nil, &errors.ErrValidation{Fields: fields}
	}
	details := *f.details
	delay := f.delay
	f.mu.Unlock()

	// Simulated payment gateway latency; not held under the lock so another
	// caller can still inspect the flow.
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		f.logger.Info("Checkout abandoned during payment processing",
			zap.String("flow_id", f.id.String()))
		return nil, ctx.Err()
	case <-timer.C:
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step != domain.StepPayment {
		return nil, &errors.ErrInvalidStateTransition{From: f.step, To: domain.StepSuccess}
	}

	totals := f.engine.Totals()
	now := time.Now()
	order := &domain.Order{
		ID:               uuid.New(),
		Reference:        orderReference(now),
		Customer:         details,
		PaymentMethod:    pd.Method(),
		Subtotal:         totals.Subtotal,
		Discount:         totals.DiscountAmount,
		Shipping:         totals.ShippingCost,
		Total:            totals.Total,
		ItemCount:        totals.ItemCount,
		PlacedAt:         now,
		ExpectedDelivery: "3-5 business days",
	}

	f.engine.Clear(ctx)
	f.order = order
	f.step = domain.StepSuccess
	f.logger.Info("Order placed",
		zap.String("flow_id", f.id.String()),
		zap.String("order_reference", order.Reference),
		zap.String("payment_method", string(pd.Method())),
		zap.String("total", order.Total.String()),
	)
	return order, nil
}

// guardCartLocked blocks every step except Success when the cart is empty
func (f *Flow) guardCartLocked() error {
	if f.step != domain.StepSuccess && f.engine.IsEmpty() {
		return &errors.ErrEmptyCart{}
	}
	return nil
}

// orderReference derives the display order id from the placement time,
// e.g. RM17240531
func orderReference(t time.Time) string {
	millis := strconv.FormatInt(t.UnixMilli(), 10)
	return "RM" + millis[len(millis)-8:]
}
