package tiers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"friendship-offers/internal/assets"
	"friendship-offers/internal/domain/tiers"
)

func loadCatalog(t *testing.T) *tiers.Catalog {
	t.Helper()
	c, err := tiers.ParseCatalog(assets.Tiers)
	require.NoError(t, err)
	return c
}

func intPtr(v int) *int { return &v }

func disabledByID(views []tiers.View) map[int]bool {
	out := make(map[int]bool, len(views))
	for _, v := range views {
		out[v.ID] = v.Disabled
	}
	return out
}

func TestEmbeddedCatalog(t *testing.T) {
	c := loadCatalog(t)

	all := c.All()
	require.Len(t, all, 8)
	assert.Equal(t, "Anonymous", all[0].Name)
	assert.Equal(t, "Soulmate", all[7].Name)

	gate, ok := c.GatingTierID()
	require.True(t, ok)
	assert.Equal(t, tiers.TierGF, gate)

	gf, ok := c.FindByName("gf")
	require.True(t, ok)
	assert.Equal(t, "Lifetime Commitment", gf.Price)
}

func TestSession_FreshSessionLocksOnlySoulmate(t *testing.T) {
	s := tiers.NewSession(loadCatalog(t))

	for id, disabled := range disabledByID(s.Tiers()) {
		assert.Equal(t, id == tiers.TierSoulmate, disabled, "tier %d", id)
	}

	views := s.Tiers()
	assert.Equal(t, "Unlock Soulmate (Requires GF Tier)", views[7].ButtonText)
}

func TestSession_SelectingGFUnlocksSoulmate(t *testing.T) {
	s := tiers.NewSession(loadCatalog(t))
	require.False(t, s.IsUnlocked(tiers.TierSoulmate))

	require.NoError(t, s.Select(tiers.TierGF))

	assert.True(t, s.IsUnlocked(tiers.TierSoulmate))
	assert.False(t, disabledByID(s.Tiers())[tiers.TierSoulmate])
	assert.Equal(t, "Unlock Soulmate", s.Tiers()[7].ButtonText)
	assert.Equal(t, tiers.TierGF, s.Selected())
}

func TestSession_OtherSelectionsLeaveSoulmateLocked(t *testing.T) {
	s := tiers.NewSession(loadCatalog(t))

	for _, id := range []int{1, 2, 3, 4, 5, 6} {
		require.NoError(t, s.Select(id))
		assert.True(t, disabledByID(s.Tiers())[tiers.TierSoulmate], "after selecting %d", id)
	}
}

func TestSession_SelectErrors(t *testing.T) {
	s := tiers.NewSession(loadCatalog(t))

	assert.ErrorIs(t, s.Select(42), tiers.ErrUnknownTier)
	assert.ErrorIs(t, s.Select(tiers.TierSoulmate), tiers.ErrTierLocked)
	assert.Equal(t, 0, s.Selected())

	require.NoError(t, s.Select(tiers.TierGF))
	assert.NoError(t, s.Select(tiers.TierSoulmate))
}

func TestNewCatalog_Validation(t *testing.T) {
	tests := []struct {
		name string
		list []tiers.Tier
	}{
		{name: "empty", list: nil},
		{name: "missing name", list: []tiers.Tier{{ID: 1}}},
		{name: "no gated tier", list: []tiers.Tier{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}},
		{name: "ids not ascending", list: []tiers.Tier{{ID: 2, Name: "b"}, {ID: 1, Name: "a"}}},
		{
			name: "requires a higher tier",
			list: []tiers.Tier{{ID: 1, Name: "a", RequiresTierID: intPtr(2)}, {ID: 2, Name: "b"}},
		},
		{
			name: "requires an unknown tier",
			list: []tiers.Tier{{ID: 1, Name: "a"}, {ID: 2, Name: "b", RequiresTierID: intPtr(0)}},
		},
		{
			name: "gated tier is not the highest",
			list: []tiers.Tier{
				{ID: 1, Name: "a"},
				{ID: 2, Name: "b", RequiresTierID: intPtr(1)},
				{ID: 3, Name: "c"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tiers.NewCatalog(tt.list)
			assert.ErrorIs(t, err, tiers.ErrInvalidCatalog)
		})
	}
}

func TestParseCatalog_BadYAML(t *testing.T) {
	_, err := tiers.ParseCatalog([]byte("tiers: [oops"))
	assert.ErrorIs(t, err, tiers.ErrInvalidCatalog)
}
