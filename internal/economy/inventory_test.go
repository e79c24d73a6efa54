package economy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/talgya/hexsettlers/internal/world"
)

func TestNewInventoryStock(t *testing.T) {
	inv := NewInventory()
	assert.Equal(t, DefaultSettlements, inv.Stock(world.Settlement))
	assert.Equal(t, DefaultCities, inv.Stock(world.City))
	assert.Equal(t, DefaultRoads, inv.Roads())
	assert.Zero(t, inv.TotalResources())
}

func TestPayIsAllOrNothing(t *testing.T) {
	inv := NewInventory()
	inv.Add(world.ResourceBrick, 1)
	inv.Add(world.ResourceLumber, 1)
	inv.Add(world.ResourceWool, 1)

	require.False(t, inv.Pay(SettlementCost))
	assert.Equal(t, 3, inv.TotalResources())

	inv.Add(world.ResourceGrain, 1)
	require.True(t, inv.Pay(SettlementCost))
	assert.Zero(t, inv.TotalResources())
}

func TestRemoveNeverGoesNegative(t *testing.T) {
	inv := NewInventory()
	inv.Add(world.ResourceOre, 2)
	assert.False(t, inv.Remove(world.ResourceOre, 3))
	assert.Equal(t, 2, inv.Resource(world.ResourceOre))
	assert.True(t, inv.Remove(world.ResourceOre, 2))
	assert.Zero(t, inv.Resource(world.ResourceOre))
}

func TestCityReturnsSettlementToStock(t *testing.T) {
	inv := NewInventory()
	require.True(t, inv.UseBuilding(world.Settlement))
	assert.Equal(t, DefaultSettlements-1, inv.Stock(world.Settlement))

	require.True(t, inv.UseBuilding(world.City))
	assert.Equal(t, DefaultSettlements, inv.Stock(world.Settlement))
	assert.Equal(t, DefaultCities-1, inv.Stock(world.City))
}

func TestStockExhaustion(t *testing.T) {
	inv := NewInventory()
	inv.SetStock(0, 0, 1)
	assert.False(t, inv.UseBuilding(world.Settlement))
	assert.False(t, inv.UseBuilding(world.City))
	assert.True(t, inv.UseRoad())
	assert.False(t, inv.UseRoad())
}

func TestStealFromSingleKind(t *testing.T) {
	inv := NewInventory()
	inv.Add(world.ResourceBrick, 3)
	for i := 0; i < 3; i++ {
		r, ok := inv.Steal(func(n int) int { return n - 1 })
		require.True(t, ok)
		assert.Equal(t, world.ResourceBrick, r)
	}
	_, ok := inv.Steal(func(int) int { return 0 })
	assert.False(t, ok)
}

func TestStealWalksFixedOrder(t *testing.T) {
	inv := NewInventory()
	inv.Add(world.ResourceBrick, 1)
	inv.Add(world.ResourceOre, 2)
	inv.Add(world.ResourceWool, 1)

	tests := []struct {
		idx  int
		want world.Resource
	}{
		{0, world.ResourceBrick},
		{1, world.ResourceOre},
		{2, world.ResourceOre},
		{3, world.ResourceWool},
	}
	for _, tt := range tests {
		probe := *inv
		r, ok := probe.Steal(func(int) int { return tt.idx })
		require.True(t, ok)
		assert.Equal(t, tt.want, r, "index %d", tt.idx)
		assert.Equal(t, inv.TotalResources()-1, probe.TotalResources())
	}
}

func TestStealConservesCards(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		inv := NewInventory()
		for _, r := range world.Resources {
			inv.Add(r, rapid.IntRange(0, 5).Draw(t, r.String()))
		}
		before := inv.Resources()
		total := inv.TotalResources()
		pick := rapid.IntRange(0, 1000).Draw(t, "pick")

		r, ok := inv.Steal(func(n int) int { return pick % n })
		if total == 0 {
			if ok {
				t.Fatal("stole from an empty hand")
			}
			return
		}
		if !ok || inv.TotalResources() != total-1 {
			t.Fatalf("steal failed: ok=%v total=%d", ok, inv.TotalResources())
		}
		if before[r] == 0 || inv.Resource(r) != before[r]-1 {
			t.Fatalf("stole %s which was not held", r)
		}
	})
}

func TestDevelopmentCards(t *testing.T) {
	inv := NewInventory()
	inv.AddDevelopmentCard(Knight)
	inv.AddDevelopmentCard(VictoryPoint)

	assert.False(t, inv.UseDevelopmentCard(VictoryPoint))
	assert.False(t, inv.UseDevelopmentCard(Monopoly))
	assert.True(t, inv.UseDevelopmentCard(Knight))
	assert.Equal(t, 1, inv.UsedKnights())
	assert.Zero(t, inv.DevelopmentCards(Knight))
	assert.Equal(t, 1, inv.VictoryPoints())
}

func TestClear(t *testing.T) {
	inv := NewInventory()
	inv.Add(world.ResourceGrain, 4)
	assert.Equal(t, 4, inv.Clear(world.ResourceGrain))
	assert.Zero(t, inv.Clear(world.ResourceGrain))
}
