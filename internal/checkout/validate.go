package checkout

import (
	"regexp"
	"strings"

	"github.com/shettigarlolith/LittoralWEB/internal/domain"
)

// NetBankingBanks is the supported bank list for net banking
var NetBankingBanks = []string{
	"State Bank of India",
	"HDFC Bank",
	"ICICI Bank",
	"Axis Bank",
	"Kotak Mahindra Bank",
	"Punjab National Bank",
	"Bank of Baroda",
	"Canara Bank",
	"Union Bank of India",
	"IndusInd Bank",
	"Yes Bank",
}

var (
	phoneRe      = regexp.MustCompile(`^[6-9]\d{9}$`)
	pincodeRe    = regexp.MustCompile(`^\d{6}$`)
	emailRe      = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	upiRe        = regexp.MustCompile(`^[\w.-]+@[\w.-]+$`)
	cardNumberRe = regexp.MustCompile(`^\d{13,19}$`)
	cardExpiryRe = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)
	cardCVVRe    = regexp.MustCompile(`^\d{3,4}$`)
	whitespaceRe = regexp.MustCompile(`\s`)
)

// ValidateCustomerDetails checks every delivery field and returns a
// field -> message map; an empty map means valid.
func ValidateCustomerDetails(d domain.CustomerDetails) map[string]string {
	errs := make(map[string]string)

	name := strings.TrimSpace(d.Name)
	if len(name) < 2 {
		errs["name"] = "Name must be at least 2 characters"
	} else if len(name) > 100 {
		errs["name"] = "Name is too long"
	}

	if !phoneRe.MatchString(strings.TrimSpace(d.Phone)) {
		errs["phone"] = "Enter a valid 10-digit mobile number"
	}

	email := strings.TrimSpace(d.Email)
	if !emailRe.MatchString(email) {
		errs["email"] = "Enter a valid email address"
	} else if len(email) > 255 {
		errs["email"] = "Email is too long"
	}

	address := strings.TrimSpace(d.Address)
	if len(address) < 10 {
		errs["address"] = "Address must be at least 10 characters"
	} else if len(address) > 500 {
		errs["address"] = "Address is too long"
	}

	city := strings.TrimSpace(d.City)
	if len(city) < 2 {
		errs["city"] = "City is required"
	} else if len(city) > 100 {
		errs["city"] = "City name is too long"
	}

	if !pincodeRe.MatchString(strings.TrimSpace(d.Pincode)) {
		errs["pincode"] = "Enter a valid 6-digit pincode"
	}

	return errs
}

// ValidatePaymentDetails checks the fields of the active payment method
// only; methods carry no fields for other methods by construction.
func ValidatePaymentDetails(pd domain.PaymentDetails) map[string]string {
	errs := make(map[string]string)

	switch p := pd.(type) {
	case domain.UPIPayment:
		if !upiRe.MatchString(strings.TrimSpace(p.UPIID)) {
			errs["upi_id"] = "Invalid UPI ID (e.g. name@bank)"
		}
	case *domain.UPIPayment:
		return ValidatePaymentDetails(*p)

	case domain.CardPayment:
		number := whitespaceRe.ReplaceAllString(p.Number, "")
		if !cardNumberRe.MatchString(number) {
			errs["number"] = "Enter a valid 13-19 digit card number"
		}
		if !cardExpiryRe.MatchString(p.Expiry) {
			errs["expiry"] = "Enter expiry as MM/YY"
		}
		if !cardCVVRe.MatchString(strings.TrimSpace(p.CVV)) {
			errs["cvv"] = "Enter a valid 3 or 4 digit CVV"
		}
		holder := strings.TrimSpace(p.HolderName)
		if len(holder) < 2 {
			errs["holder_name"] = "Cardholder name required"
		} else if len(holder) > 100 {
			errs["holder_name"] = "Name too long"
		}
	case *domain.CardPayment:
		return ValidatePaymentDetails(*p)

	case domain.NetBankingPayment:
		if !isSupportedBank(p.Bank) {
			errs["bank"] = "Please select your bank"
		}
	case *domain.NetBankingPayment:
		return ValidatePaymentDetails(*p)

	case domain.CODPayment, *domain.CODPayment:
		// nothing to validate

	default:
		errs["method"] = "Unsupported payment method"
	}

	return errs
}

func isSupportedBank(bank string) bool {
	for _, b := range NetBankingBanks {
		if b == bank {
			return true
		}
	}
	return false
}
