package market

import "errors"

// Side is which end of a trade an Offer stands on.
type Side string

const (
	SideBuy  Side = "buy"
	SideSell Side = "sell"
)

// Offer is a corp's current buy or sell quote for one resource, per
// spec.md §3. Grounded on the teacher's ledger.Transaction value-object
// style (plain immutable struct, constructed through a validating
// factory, exposed through getters).
type Offer struct {
	corpID   string
	side     Side
	resource string
	quantity int
	price    float64
	location string // empty means "no location premium applies"
	duration int64
}

// NewOffer validates and builds an Offer. Per spec.md §3: a seller's
// price must be at least its marginal cost; a buyer's price must be at
// most its valuation times urgency. Both of those floors/ceilings are
// computed by the caller (the corp) and passed in as price — NewOffer
// only enforces the shape invariants common to both sides.
func NewOffer(corpID string, side Side, resource string, quantity int, price float64, location string, duration int64) (Offer, error) {
	if corpID == "" {
		return Offer{}, errors.New("market: offer corpID cannot be empty")
	}
	if side != SideBuy && side != SideSell {
		return Offer{}, errors.New("market: offer side must be buy or sell")
	}
	if resource == "" {
		return Offer{}, errors.New("market: offer resource cannot be empty")
	}
	if quantity <= 0 {
		return Offer{}, errors.New("market: offer quantity must be positive")
	}
	if price < 0 {
		return Offer{}, errors.New("market: offer price cannot be negative")
	}
	if duration <= 0 {
		return Offer{}, errors.New("market: offer duration must be positive")
	}
	return Offer{
		corpID:   corpID,
		side:     side,
		resource: resource,
		quantity: quantity,
		price:    price,
		location: location,
		duration: duration,
	}, nil
}

func (o Offer) CorpID() string    { return o.corpID }
func (o Offer) Side() Side        { return o.side }
func (o Offer) Resource() string  { return o.resource }
func (o Offer) Quantity() int     { return o.quantity }
func (o Offer) Price() float64    { return o.price }
func (o Offer) Location() string  { return o.location }
func (o Offer) Duration() int64   { return o.duration }
func (o Offer) HasLocation() bool { return o.location != "" }
