package node

// PotentialCorpType enumerates the four corp shapes the surveyor can
// propose for a node, per spec.md §4.5. This is deliberately narrower than
// (and independent of) the full corp.Type enum in domain/corp: the
// surveyor only ever proposes these four, and domain/node does not import
// domain/corp.
type PotentialCorpType string

const (
	PotentialMining    PotentialCorpType = "mining"
	PotentialSpawning  PotentialCorpType = "spawning"
	PotentialUpgrading PotentialCorpType = "upgrading"
	PotentialHauling   PotentialCorpType = "hauling"
)

// PotentialCorp is one candidate business the surveyor found for a node,
// per spec.md §3.
type PotentialCorp struct {
	Type         PotentialCorpType
	EstimatedROI float64
	ResourceID   string
}

// minPotentialCorpROI is the inclusion threshold from spec.md §4.5: a
// candidate corp below this estimated ROI is not worth surveying.
const minPotentialCorpROI = 0.1

// ROI is the surveyor's verdict on a node, per spec.md §3.
type ROI struct {
	Score             float64
	ExpansionScore    float64
	RawCorpROI        float64
	PotentialCorps    []PotentialCorp
	Openness          int
	DistanceFromOwned int
	IsOwned           bool
	SourceCount       int
	HasController     bool
}

// haulDestinationPremium rewards hauling corps that feed an owned sink,
// per spec.md §4.5.
const haulDestinationPremium = 1.2

// scoreROIScale, opennessBonusPerHeight, ownedBonus and logisticsDecayBase
// are the §4.5 scoring constants.
const (
	scoreROIScale         = 50.0
	opennessBonusPerHeight = 2.0
	ownedBonus            = 25.0
	logisticsDecayBase    = 0.8
)

// expansionDiscountHorizon is the §4.5 "max(0.1, 1 - distance/150)" horizon.
const expansionDiscountHorizon = 150.0
