package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShadyMccoy/colony-controller/internal/domain/ledger"
)

func TestBook_MintAndTaxTrackSupplyTotals(t *testing.T) {
	b := ledger.NewBook()
	_, err := b.Mint("harvest-1", 0, 100, 0, "initial capitalization")
	require.NoError(t, err)
	_, err = b.Tax("harvest-1", 1, 20, 100, "overhead")
	require.NoError(t, err)

	assert.Equal(t, 100.0, b.Minted())
	assert.Equal(t, 20.0, b.Taxed())
	assert.Len(t, b.Entries(), 2)
}

func TestBook_RecordRevenueAndCostBalanceEachOther(t *testing.T) {
	b := ledger.NewBook()
	_, err := b.RecordRevenue("seller", 5, 50, 0, "contract-1")
	require.NoError(t, err)
	_, err = b.RecordCost("buyer", 5, 50, 200, "contract-1")
	require.NoError(t, err)

	assert.Equal(t, 0.0, b.Minted())
	assert.Equal(t, 0.0, b.Taxed())
}

func TestBook_ValidateSupplyDetectsInvariantViolation(t *testing.T) {
	b := ledger.NewBook()
	_, err := b.Mint("corp-1", 0, 500, 0, "capitalization")
	require.NoError(t, err)

	err = b.ValidateSupply(0, map[string]float64{"corp-1": 500})
	assert.NoError(t, err)

	err = b.ValidateSupply(0, map[string]float64{"corp-1": 499})
	assert.Error(t, err)
}

func TestBook_MintRejectsNonPositiveAmount(t *testing.T) {
	b := ledger.NewBook()
	_, err := b.Mint("corp-1", 0, 0, 0, "noop")
	assert.Error(t, err)
}
