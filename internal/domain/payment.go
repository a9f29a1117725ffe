package domain

// PaymentDetails is the per-method payment input. Each payment method has
// its own concrete type carrying only the fields that method needs, so an
// invalid field combination cannot be constructed.
type PaymentDetails interface {
	Method() PaymentMethod
}

// UPIPayment pays through a UPI id like name@bank
type UPIPayment struct {
	UPIID string `json:"upi_id"`
}

func (UPIPayment) Method() PaymentMethod { return PaymentMethodUPI }

// CardPayment pays with a credit or debit card
type CardPayment struct {
	Number     string `json:"number"`
	Expiry     string `json:"expiry"` // MM/YY
	CVV        string `json:"cvv"`
	HolderName string `json:"holder_name"`
}

func (CardPayment) Method() PaymentMethod { return PaymentMethodCard }

// NetBankingPayment pays through a bank from the supported list
type NetBankingPayment struct {
	Bank string `json:"bank"`
}

func (NetBankingPayment) Method() PaymentMethod { return PaymentMethodNetBanking }

// CODPayment is cash on delivery; no further fields
type CODPayment struct{}

func (CODPayment) Method() PaymentMethod { return PaymentMethodCOD }
