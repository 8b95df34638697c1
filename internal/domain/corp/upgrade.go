package corp

import (
	"github.com/ShadyMccoy/colony-controller/internal/domain/market"
)

// upgradePointsToCredits is the configured conversion rate from
// controller upgrade points to credits, per spec.md §4.7: "the
// controller awards upgrade points which translate to credits at a
// configured rate".
const upgradePointsToCredits = 1.0

// Minter is the narrow port Upgrade uses to claim credits through the
// money-supply ledger rather than writing its own balance directly
// (spec.md §5's "direct writes are disallowed"). Declared here, not in
// domain/ledger, so corp stays the consumer and ledger stays ignorant
// of its callers — the same narrow-port shape as market.Ledger.
type Minter interface {
	Mint(corpID string, tick int64, amount, balanceBefore float64, description string) error
}

// Upgrade buys energy at the controller location and produces no
// market output; it claims credits via minting instead, per spec.md
// §4.7.
type Upgrade struct {
	Base

	controllerTile string
	workParts      int

	pendingUpgradePoints float64
	minter               Minter
}

// NewUpgrade builds an upgrade corp assigned to one controller.
func NewUpgrade(id, controllerTile string, workParts int, minter Minter) *Upgrade {
	return &Upgrade{
		Base:           NewBase(id, TypeUpgrade),
		controllerTile: controllerTile,
		workParts:      workParts,
		minter:         minter,
	}
}

// RecordUpgradePoints is how the per-agent micro-controllers report
// upgrade() calls the host engine accepted this tick.
func (u *Upgrade) RecordUpgradePoints(points float64) {
	u.pendingUpgradePoints += points
}

func (u *Upgrade) Plan(tick int64) error { return nil }

// Buys bids for energy at the controller, sized to this corp's WORK
// parts (1 energy per WORK part per tick at the controller, the host
// engine's standard upgrade rate).
func (u *Upgrade) Buys(tick int64) []market.Offer {
	if u.workParts <= 0 {
		return nil
	}
	quantity := u.workParts * planningIntervalTicks
	offer, err := market.NewOffer(u.ID(), market.SideBuy, "energy", quantity, u.valuationPerUnit(), u.controllerTile, planningIntervalTicks)
	if err != nil {
		return nil
	}
	return []market.Offer{offer}
}

// valuationPerUnit is what one unit of energy is worth to this corp:
// the credit yield of the upgrade points it produces.
func (u *Upgrade) valuationPerUnit() float64 {
	return upgradePointsToCredits
}

// Sells is always empty: upgrading produces no market output.
func (u *Upgrade) Sells(tick int64) []market.Offer { return nil }

func (u *Upgrade) Work(tick int64) error { return nil }

// Execute converts accrued upgrade points into credits through the
// minting path, per spec.md §4.7.
func (u *Upgrade) Execute(contracts []*market.Contract, tick int64) error {
	if u.pendingUpgradePoints <= 0 {
		return nil
	}
	amount := u.pendingUpgradePoints * upgradePointsToCredits
	if err := u.minter.Mint(u.ID(), tick, amount, u.Balance(), "controller upgrade points"); err != nil {
		return err
	}
	u.RecordRevenue(amount)
	u.pendingUpgradePoints = 0
	return nil
}

func (u *Upgrade) Serialize() ([]byte, error) {
	return marshal(upgradeData{
		Base:                 u.Base,
		ControllerTile:       u.controllerTile,
		WorkParts:            u.workParts,
		PendingUpgradePoints: u.pendingUpgradePoints,
	})
}

func (u *Upgrade) Deserialize(data []byte) error {
	var d upgradeData
	if err := unmarshal(data, &d); err != nil {
		return err
	}
	u.Base = d.Base
	u.controllerTile = d.ControllerTile
	u.workParts = d.WorkParts
	u.pendingUpgradePoints = d.PendingUpgradePoints
	return nil
}

type upgradeData struct {
	Base                 `json:"base"`
	ControllerTile       string  `json:"controllerTile"`
	WorkParts            int     `json:"workParts"`
	PendingUpgradePoints float64 `json:"pendingUpgradePoints"`
}
