package corp

import (
	"math"

	"github.com/ShadyMccoy/colony-controller/internal/domain/market"
	"github.com/ShadyMccoy/colony-controller/internal/domain/shared"
	"github.com/ShadyMccoy/colony-controller/internal/domain/spawnorder"
)

// haulDestinationPremium is the markup a hauling corp is willing to pay
// over its expected resale price, per spec.md §4.7:
// "maxPrice = destinationPremium × expectedSellPrice". Same constant as
// the surveyor's hauling-corp ROI premium (spec.md §4.5).
const haulDestinationPremium = 1.2

// haulMargin is the markup a hauling corp adds over its per-unit
// acquisition cost when pricing at the sink.
const haulMargin = 0.2

// Haul buys energy at source locations and sells at sink locations, the
// "middleman" corp of spec.md §4.7/§4.8 step 6.
type Haul struct {
	Base

	sourceTile string
	sinkTile   string
	resource   string

	expectedSellPrice float64
	acquisitionCost   float64

	requiredThroughputPerTick float64
	carriedPerTick            float64

	queue *spawnorder.Queue
}

// NewHaul builds a haul corp for one source→sink pair.
func NewHaul(id, sourceTile, sinkTile, resource string, requiredThroughputPerTick float64, queue *spawnorder.Queue) *Haul {
	return &Haul{
		Base:                      NewBase(id, TypeHaul),
		sourceTile:                sourceTile,
		sinkTile:                  sinkTile,
		resource:                  resource,
		requiredThroughputPerTick: requiredThroughputPerTick,
		queue:                     queue,
	}
}

// Queue exposes the corp's spawn queue for console introspection
// (spec.md §6 "clearSpawnQueue"/"marketStatus").
func (h *Haul) Queue() *spawnorder.Queue { return h.queue }

// RecordExpectedSellPrice updates the price this corp expects to
// realize at the sink, normally read off the local market's recent
// clearing price for the resource at the sink.
func (h *Haul) RecordExpectedSellPrice(price float64) {
	h.expectedSellPrice = price
}

// RecordAcquisitionCost satisfies market.Ledger's extra hook: spec.md
// §4.8 step 6 credits "middleman" buyers with their acquisition cost so
// they can set later sell prices.
func (h *Haul) RecordAcquisitionCost(corpID, resource string, amount float64) {
	if corpID != h.ID() || resource != h.resource {
		return
	}
	h.acquisitionCost = amount
}

// RecordCarriedThroughput is how the per-agent micro-controllers report
// actual delivered energy per tick, used to detect short-delivery.
func (h *Haul) RecordCarriedThroughput(perTick float64) {
	h.carriedPerTick = perTick
}

func (h *Haul) Plan(tick int64) error { return nil }

// Buys bids up to destinationPremium × expectedSellPrice at the source.
func (h *Haul) Buys(tick int64) []market.Offer {
	if h.requiredThroughputPerTick <= 0 {
		return nil
	}
	maxPrice := haulDestinationPremium * h.expectedSellPrice
	quantity := int(math.Ceil(h.requiredThroughputPerTick * planningIntervalTicks))
	offer, err := market.NewOffer(h.ID(), market.SideBuy, h.resource, quantity, maxPrice, h.sourceTile, planningIntervalTicks)
	if err != nil {
		return nil
	}
	return []market.Offer{offer}
}

// Sells posts the carried energy at the sink at the expected sell price,
// floored at the per-unit acquisition cost of the most recent fill times
// (1+haulMargin), so the corp never sells below cost.
func (h *Haul) Sells(tick int64) []market.Offer {
	if h.requiredThroughputPerTick <= 0 {
		return nil
	}
	quantity := int(math.Ceil(h.requiredThroughputPerTick * planningIntervalTicks))
	price := h.expectedSellPrice
	if floor := h.acquisitionCost / float64(max1Int(quantity)) * (1 + haulMargin); price < floor {
		price = floor
	}
	offer, err := market.NewOffer(h.ID(), market.SideSell, h.resource, quantity, price, h.sinkTile, planningIntervalTicks)
	if err != nil {
		return nil
	}
	return []market.Offer{offer}
}

// Work requests an additional hauler when carried throughput falls
// below the required rate, proportional to the deficit (spec.md §4.7:
// "must never short-deliver").
func (h *Haul) Work(tick int64) error {
	deficit := h.requiredThroughputPerTick - h.carriedPerTick
	if deficit <= 0 {
		return nil
	}
	if h.queue.Full() {
		return shared.NewEphemeralError("haul: spawn queue full for " + h.ID())
	}
	haulDemand := int(math.Ceil(deficit))
	h.queue.Enqueue(spawnorder.NewSpawnOrder(h.ID(), spawnorder.CreepHauler, 0, haulDemand, tick))
	return nil
}

func (h *Haul) Execute(contracts []*market.Contract, tick int64) error { return nil }

func (h *Haul) Serialize() ([]byte, error) {
	return marshal(haulData{
		Base:                      h.Base,
		SourceTile:                h.sourceTile,
		SinkTile:                  h.sinkTile,
		Resource:                  h.resource,
		ExpectedSellPrice:         h.expectedSellPrice,
		AcquisitionCost:           h.acquisitionCost,
		RequiredThroughputPerTick: h.requiredThroughputPerTick,
		CarriedPerTick:            h.carriedPerTick,
	})
}

func (h *Haul) Deserialize(data []byte) error {
	var d haulData
	if err := unmarshal(data, &d); err != nil {
		return err
	}
	h.Base = d.Base
	h.sourceTile = d.SourceTile
	h.sinkTile = d.SinkTile
	h.resource = d.Resource
	h.expectedSellPrice = d.ExpectedSellPrice
	h.acquisitionCost = d.AcquisitionCost
	h.requiredThroughputPerTick = d.RequiredThroughputPerTick
	h.carriedPerTick = d.CarriedPerTick
	return nil
}

type haulData struct {
	Base                      `json:"base"`
	SourceTile                string  `json:"sourceTile"`
	SinkTile                  string  `json:"sinkTile"`
	Resource                  string  `json:"resource"`
	ExpectedSellPrice         float64 `json:"expectedSellPrice"`
	AcquisitionCost           float64 `json:"acquisitionCost"`
	RequiredThroughputPerTick float64 `json:"requiredThroughputPerTick"`
	CarriedPerTick            float64 `json:"carriedPerTick"`
}

func max1Int(v int) int {
	if v <= 0 {
		return 1
	}
	return v
}
