package market

import (
	"fmt"

	"github.com/google/uuid"
)

// Contract is the aggregate root produced by one atomic match at market
// clearing, per spec.md §3/§4.8/§4.9. Grounded on the teacher's
// ledger.Transaction: an immutable id plus mutable running totals
// (delivered, paid) guarded by invariant checks on every mutation.
type Contract struct {
	id             string
	sellerID       string
	buyerID        string
	resource       string
	agreedQuantity int
	pricePerUnit   float64
	delivered      int
	paid           float64
	openTick       int64
	duration       int64
}

// NewContract builds a fresh, unfulfilled contract for one matched
// quantity at one transacted price (spec.md §4.8 step 6).
func NewContract(sellerID, buyerID, resource string, agreedQuantity int, pricePerUnit float64, openTick, duration int64) (*Contract, error) {
	if sellerID == "" || buyerID == "" {
		return nil, fmt.Errorf("market: contract requires both seller and buyer ids")
	}
	if agreedQuantity <= 0 {
		return nil, fmt.Errorf("market: contract agreedQuantity must be positive")
	}
	if pricePerUnit < 0 {
		return nil, fmt.Errorf("market: contract pricePerUnit cannot be negative")
	}
	if duration <= 0 {
		return nil, fmt.Errorf("market: contract duration must be positive")
	}
	return &Contract{
		id:             uuid.New().String(),
		sellerID:       sellerID,
		buyerID:        buyerID,
		resource:       resource,
		agreedQuantity: agreedQuantity,
		pricePerUnit:   pricePerUnit,
		openTick:       openTick,
		duration:       duration,
	}, nil
}

// ReconstructContract rebuilds a contract from persisted state, bypassing
// the fresh-contract factory (spec.md §6 persistence contract).
func ReconstructContract(id, sellerID, buyerID, resource string, agreedQuantity int, pricePerUnit float64, delivered int, paid float64, openTick, duration int64) *Contract {
	return &Contract{
		id:             id,
		sellerID:       sellerID,
		buyerID:        buyerID,
		resource:       resource,
		agreedQuantity: agreedQuantity,
		pricePerUnit:   pricePerUnit,
		delivered:      delivered,
		paid:           paid,
		openTick:       openTick,
		duration:       duration,
	}
}

func (c *Contract) ID() string             { return c.id }
func (c *Contract) SellerID() string       { return c.sellerID }
func (c *Contract) BuyerID() string        { return c.buyerID }
func (c *Contract) Resource() string       { return c.resource }
func (c *Contract) AgreedQuantity() int    { return c.agreedQuantity }
func (c *Contract) PricePerUnit() float64  { return c.pricePerUnit }
func (c *Contract) Delivered() int         { return c.delivered }
func (c *Contract) Paid() float64          { return c.paid }
func (c *Contract) OpenTick() int64        { return c.openTick }
func (c *Contract) Duration() int64        { return c.duration }
func (c *Contract) TotalPrice() float64    { return float64(c.agreedQuantity) * c.pricePerUnit }

// IsActive implements spec.md §3's activity invariant:
// openTick ≤ now < openTick+duration AND delivered < agreedQuantity.
func (c *Contract) IsActive(now int64) bool {
	return c.openTick <= now && now < c.openTick+c.duration && c.delivered < c.agreedQuantity
}

// IsFulfilled reports full delivery, one of contract executor's two
// retirement conditions (spec.md §4.9).
func (c *Contract) IsFulfilled() bool {
	return c.delivered >= c.agreedQuantity
}

// IsExpired reports the other retirement condition.
func (c *Contract) IsExpired(now int64) bool {
	return c.openTick+c.duration <= now
}

func (c *Contract) pricePerUnitOrOne() float64 {
	if c.pricePerUnit == 0 {
		return 1
	}
	return c.pricePerUnit
}

// RecordDelivery bumps delivered by quantity, clamped at agreedQuantity.
// Invariant 0 ≤ delivered ≤ agreedQuantity (spec.md §3) is enforced here.
func (c *Contract) RecordDelivery(quantity int) error {
	if quantity < 0 {
		return fmt.Errorf("market: delivery quantity cannot be negative")
	}
	next := c.delivered + quantity
	if next > c.agreedQuantity {
		next = c.agreedQuantity
	}
	c.delivered = next
	return nil
}

// RecordPayment bumps paid by amount, clamped at agreedQuantity×pricePerUnit.
// Invariant 0 ≤ paid ≤ agreedQuantity×pricePerUnit (spec.md §3).
func (c *Contract) RecordPayment(amount float64) error {
	if amount < 0 {
		return fmt.Errorf("market: payment amount cannot be negative")
	}
	next := c.paid + amount
	maxPaid := c.TotalPrice()
	if next > maxPaid {
		next = maxPaid
	}
	c.paid = next
	return nil
}

// OutstandingPayment is the settlement amount owed right now, per
// spec.md §4.9: (delivered − paidUnits) × pricePerUnit, where paidUnits
// is how many units' worth of payment has already gone through.
func (c *Contract) OutstandingPayment() float64 {
	paidUnits := c.paid / c.pricePerUnitOrOne()
	owedUnits := float64(c.delivered) - paidUnits
	if owedUnits <= 0 {
		return 0
	}
	return owedUnits * c.pricePerUnit
}
