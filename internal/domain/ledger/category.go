package ledger

import "fmt"

// Category is the cash-flow category a transaction rolls up into for
// the money-supply invariant (spec.md §3: `treasury + Σbalance =
// minted − taxed`).
type Category string

const (
	// CategoryMinting represents credits created from nothing — the
	// host engine's initial energy-to-credit conversion.
	CategoryMinting Category = "MINTING"

	// CategoryTaxation represents credits destroyed — a corp's balance
	// reduced without a matching corp receiving the amount.
	CategoryTaxation Category = "TAXATION"

	// CategoryTrading represents a market-clearing revenue or cost leg
	// (spec.md §4.8 steps 5-6).
	CategoryTrading Category = "TRADING"

	// CategorySettlement represents a contract executor payment leg
	// (spec.md §4.9).
	CategorySettlement Category = "SETTLEMENT"
)

// AllCategories returns every valid category.
func AllCategories() []Category {
	return []Category{CategoryMinting, CategoryTaxation, CategoryTrading, CategorySettlement}
}

// TypeToCategoryMap maps transaction types to their categories.
var TypeToCategoryMap = map[TransactionType]Category{
	TransactionTypeMint:       CategoryMinting,
	TransactionTypeTax:        CategoryTaxation,
	TransactionTypeRevenue:    CategoryTrading,
	TransactionTypeCost:       CategoryTrading,
	TransactionTypeSettlement: CategorySettlement,
}

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	switch c {
	case CategoryMinting, CategoryTaxation, CategoryTrading, CategorySettlement:
		return true
	default:
		return false
	}
}

// IsIncome reports whether the category represents a credit created
// for (or paid to) the entity it's recorded against.
func (c Category) IsIncome() bool {
	switch c {
	case CategoryMinting, CategoryTrading:
		return true
	default:
		return false
	}
}

func (c Category) IsExpense() bool {
	return !c.IsIncome()
}

func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %s", s)
	}
	return c, nil
}
