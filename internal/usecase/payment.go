package usecase

import (
	"fmt"

	"github.com/google/uuid"
)

// PaymentStrategy is the pluggable payment step of a booking. The bundled
// strategies are simulator stubs: they always succeed and only produce the
// masked details stored on the reservation.
type PaymentStrategy interface {
	// Process charges the amount and returns a transaction id.
	Process(amount float64) (string, error)
	// Details is the masked description persisted with the reservation.
	Details() string
}

type GCashPayment struct {
	Number string
}

func (p *GCashPayment) Process(amount float64) (string, error) {
	return uuid.NewString(), nil
}

func (p *GCashPayment) Details() string {
	return "GCash: " + p.Number
}

type CreditCardPayment struct {
	Number string
	Expiry string
	CVV    string
}

func (p *CreditCardPayment) Process(amount float64) (string, error) {
	return uuid.NewString(), nil
}

func (p *CreditCardPayment) Details() string {
	last4 := p.Number
	if len(last4) > 4 {
		last4 = last4[len(last4)-4:]
	}
	return fmt.Sprintf("Credit Card: XXXX-XXXX-XXXX-%s", last4)
}
