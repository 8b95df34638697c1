package corp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShadyMccoy/colony-controller/internal/domain/corp"
)

type fakeMinter struct {
	minted map[string]float64
}

func newFakeMinter() *fakeMinter { return &fakeMinter{minted: make(map[string]float64)} }

func (m *fakeMinter) Mint(corpID string, tick int64, amount, balanceBefore float64, description string) error {
	m.minted[corpID] += amount
	return nil
}

func TestUpgrade_BuysEnergyScaledToWorkParts(t *testing.T) {
	u := corp.NewUpgrade("upgrade-1", "W1N1:25,25", 5, newFakeMinter())

	offers := u.Buys(0)
	require.Len(t, offers, 1)
	assert.Equal(t, "energy", offers[0].Resource())
	assert.Empty(t, u.Sells(0))
}

func TestUpgrade_ExecuteMintsCreditsFromAccruedUpgradePoints(t *testing.T) {
	minter := newFakeMinter()
	u := corp.NewUpgrade("upgrade-1", "W1N1:25,25", 5, minter)

	u.RecordUpgradePoints(10)
	require.NoError(t, u.Execute(nil, 1))

	assert.Equal(t, 10.0, minter.minted["upgrade-1"])
	assert.Equal(t, 10.0, u.Balance())
}

func TestUpgrade_ExecuteIsNoOpWithNoAccruedPoints(t *testing.T) {
	minter := newFakeMinter()
	u := corp.NewUpgrade("upgrade-1", "W1N1:25,25", 5, minter)

	require.NoError(t, u.Execute(nil, 1))
	assert.Empty(t, minter.minted)
}
