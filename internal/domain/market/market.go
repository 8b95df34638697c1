package market

import "sort"

// Quoter is the narrow port the clearing engine needs from a corp: its
// current buy and sell quotes. Any domain/corp implementation satisfies
// this structurally — market never imports domain/corp (spec.md §4.7's
// corp capability interface is a superset of this one), keeping the
// dependency pointing one way, the way the teacher's ports.go files
// keep application ports pointing into adapters rather than back.
type Quoter interface {
	ID() string
	Buys(tick int64) []Offer
	Sells(tick int64) []Offer
}

// Ledger is the narrow port the clearing engine uses to settle a match.
// RecordAcquisitionCost fires on every buy-side fill; a corp that
// doesn't care about its acquisition cost (only "middleman" haul corps
// use it to set later sell prices, per spec.md §4.8 step 6) ignores it.
type Ledger interface {
	RecordRevenue(corpID string, amount float64)
	RecordCost(corpID string, amount float64)
	RecordAcquisitionCost(corpID, resource string, amount float64)
}

// Transaction is one row of the bounded transaction log (spec.md §4.8
// state, §6 persistence contract).
type Transaction struct {
	Tick     int64
	SellerID string
	BuyerID  string
	Resource string
	Quantity int
	Price    float64
}

// maxTransactionLogEntries bounds the transaction log, per spec.md
// §4.8's "a transaction log (bounded to last 1,000 entries)".
const maxTransactionLogEntries = 1000

// Result is what Clear returns, per spec.md §4.8 step 7.
type Result struct {
	Contracts      []*Contract
	TotalVolume    int
	AveragePrice   float64
	UnmatchedBuys  []Offer
	UnmatchedSells []Offer
}

// Market holds the state spec.md §4.8 names: a table of active
// contracts keyed by id and a capped transaction log. Grounded on the
// teacher's trading domain's clearing/matching shape, generalized from
// a single buy/sell arbitrage pair to an N-sided double auction.
type Market struct {
	contracts    map[string]*Contract
	transactions []Transaction
}

// NewMarket builds an empty market.
func NewMarket() *Market {
	return &Market{contracts: make(map[string]*Contract)}
}

// Contract returns a contract by id, if still tracked.
func (m *Market) Contract(id string) (*Contract, bool) {
	c, ok := m.contracts[id]
	return c, ok
}

// LoadContract restores a previously-persisted contract into active
// tracking (spec.md §6 persistence contract: "market: contracts + last-
// 1,000 transactions" must survive a round trip).
func (m *Market) LoadContract(c *Contract) {
	m.contracts[c.ID()] = c
}

// LoadTransaction restores a previously-persisted transaction log row.
func (m *Market) LoadTransaction(t Transaction) {
	m.transactions = append(m.transactions, t)
}

// ActiveContracts returns every contract the market currently tracks.
func (m *Market) ActiveContracts() []*Contract {
	out := make([]*Contract, 0, len(m.contracts))
	for _, c := range m.contracts {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// Retire removes a contract from active tracking (spec.md §4.9); the
// transaction log entries that produced it remain for auditing.
func (m *Market) Retire(contractID string) {
	delete(m.contracts, contractID)
}

// Reset discards every active contract and the transaction log,
// per spec.md §6's forgiveDebt console command ("clear market state").
func (m *Market) Reset() {
	m.contracts = make(map[string]*Contract)
	m.transactions = nil
}

// Transactions returns the bounded transaction log.
func (m *Market) Transactions() []Transaction {
	out := make([]Transaction, len(m.transactions))
	copy(out, m.transactions)
	return out
}

// Clear runs one market-clearing pass, per spec.md §4.8. Each match's
// duration is `min(seller.duration, buyer.duration)`.
func (m *Market) Clear(tick int64, corps []Quoter, ledger Ledger) (Result, error) {
	byResourceBuys := make(map[string][]Offer)
	byResourceSells := make(map[string][]Offer)
	for _, c := range corps {
		byResourceBuys = bucket(byResourceBuys, c.Buys(tick))
		byResourceSells = bucket(byResourceSells, c.Sells(tick))
	}

	var result Result
	var volumeSum int
	var priceWeightedSum float64

	resources := make([]string, 0, len(byResourceBuys))
	seen := make(map[string]bool)
	for r := range byResourceBuys {
		if !seen[r] {
			resources = append(resources, r)
			seen[r] = true
		}
	}
	for r := range byResourceSells {
		if !seen[r] {
			resources = append(resources, r)
			seen[r] = true
		}
	}
	sort.Strings(resources)

	for _, resource := range resources {
		buys := append([]Offer(nil), byResourceBuys[resource]...)
		sells := append([]Offer(nil), byResourceSells[resource]...)

		sort.SliceStable(buys, func(i, j int) bool { return buys[i].Price() > buys[j].Price() })
		sort.SliceStable(sells, func(i, j int) bool { return sells[i].Price() < sells[j].Price() })

		remainingBuy := make([]int, len(buys))
		for i, o := range buys {
			remainingBuy[i] = o.Quantity()
		}
		remainingSell := make([]int, len(sells))
		for i, o := range sells {
			remainingSell[i] = o.Quantity()
		}

		for bi := range buys {
			buyer := buys[bi]
			for si := range sells {
				if remainingBuy[bi] <= 0 {
					break
				}
				if remainingSell[si] <= 0 {
					continue
				}
				seller := sells[si]
				effectivePrice := effectiveSellPrice(seller, buyer)
				if effectivePrice > buyer.Price() {
					continue // spec.md §4.8 step 4: stop once no seller's price ≤ buyer's bid
				}

				quantity := remainingBuy[bi]
				if remainingSell[si] < quantity {
					quantity = remainingSell[si]
				}

				transactedPrice := effectivePrice
				if buyer.Price() > transactedPrice {
					transactedPrice = buyer.Price() // spec.md §4.8 step 5: max(sellerAsk, buyerBid)
				}

				duration := seller.Duration()
				if buyer.Duration() < duration {
					duration = buyer.Duration()
				}

				contract, err := NewContract(seller.CorpID(), buyer.CorpID(), resource, quantity, transactedPrice, tick, duration)
				if err != nil {
					return Result{}, err
				}
				m.contracts[contract.ID()] = contract
				result.Contracts = append(result.Contracts, contract)
				m.record(tick, seller.CorpID(), buyer.CorpID(), resource, quantity, transactedPrice)

				total := float64(quantity) * transactedPrice
				ledger.RecordRevenue(seller.CorpID(), total)
				ledger.RecordCost(buyer.CorpID(), total)
				ledger.RecordAcquisitionCost(buyer.CorpID(), resource, total)

				volumeSum += quantity
				priceWeightedSum += total
				remainingBuy[bi] -= quantity
				remainingSell[si] -= quantity
			}
		}

		for i, o := range buys {
			if remainingBuy[i] > 0 {
				result.UnmatchedBuys = append(result.UnmatchedBuys, o)
			}
		}
		for i, o := range sells {
			if remainingSell[i] > 0 {
				result.UnmatchedSells = append(result.UnmatchedSells, o)
			}
		}
	}

	result.TotalVolume = volumeSum
	if volumeSum > 0 {
		result.AveragePrice = priceWeightedSum / float64(volumeSum)
	}
	return result, nil
}

func bucket(m map[string][]Offer, offers []Offer) map[string][]Offer {
	for _, o := range offers {
		m[o.Resource()] = append(m[o.Resource()], o)
	}
	return m
}

// effectiveSellPrice applies the optional distance premium (spec.md
// §4.8 step 3) when the buyer names a location that differs from the
// seller's. The premium magnitude mirrors the haul corp's own
// destinationPremium (spec.md §4.5); here it only decides whether a
// location mismatch should be penalized when two otherwise-identical
// offers compete for the same buyer.
func effectiveSellPrice(seller, buyer Offer) float64 {
	if buyer.HasLocation() && seller.HasLocation() && buyer.Location() != seller.Location() {
		return seller.Price() * distancePremium
	}
	return seller.Price()
}

const distancePremium = 1.2

func (m *Market) record(tick int64, sellerID, buyerID, resource string, quantity int, price float64) {
	m.transactions = append(m.transactions, Transaction{
		Tick: tick, SellerID: sellerID, BuyerID: buyerID,
		Resource: resource, Quantity: quantity, Price: price,
	})
	if len(m.transactions) > maxTransactionLogEntries {
		m.transactions = m.transactions[len(m.transactions)-maxTransactionLogEntries:]
	}
}
