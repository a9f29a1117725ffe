package domain

// CheckoutStep represents where a checkout flow currently is
type CheckoutStep string

const (
	// StepDetails - collecting customer delivery details
	StepDetails CheckoutStep = "details"
	// StepPayment - choosing and validating a payment method
	StepPayment CheckoutStep = "payment"
	// StepSuccess - order placed; terminal
	StepSuccess CheckoutStep = "success"
)

// IsValid checks if the checkout step is valid
func (s CheckoutStep) IsValid() bool {
	switch s {
	case StepDetails, StepPayment, StepSuccess:
		return true
	default:
		return false
	}
}

// CanTransitionTo checks if a step transition is valid
func (s CheckoutStep) CanTransitionTo(next CheckoutStep) bool {
	switch s {
	case StepDetails:
		return next == StepPayment
	case StepPayment:
		return next == StepDetails || next == StepSuccess
	case StepSuccess:
		return false // terminal
	default:
		return false
	}
}

// PaymentMethod discriminates the payment details union
type PaymentMethod string

const (
	PaymentMethodUPI        PaymentMethod = "upi"
	PaymentMethodCard       PaymentMethod = "card"
	PaymentMethodNetBanking PaymentMethod = "netbanking"
	PaymentMethodCOD        PaymentMethod = "cod"
)

// IsValid checks if the payment method is supported
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodUPI, PaymentMethodCard, PaymentMethodNetBanking, PaymentMethodCOD:
		return true
	default:
		return false
	}
}

// Category is a catalog product category
type Category string

const (
	CategoryBreakfastMixes   Category = "Breakfast Mixes"
	CategoryMilletMixes      Category = "Millet Mixes"
	CategoryTraditionalMixes Category = "Traditional Mixes"
	CategoryQuickMeals       Category = "Quick Meals"
)

// Tag is a catalog product tag
type Tag string

const (
	TagHealthy         Tag = "Healthy"
	TagMillet          Tag = "Millet"
	TagBestseller      Tag = "Bestseller"
	TagNoPreservatives Tag = "No Preservatives"
	TagTraditional     Tag = "Traditional"
	TagQuick           Tag = "Quick"
	TagProteinRich     Tag = "Protein Rich"
)
