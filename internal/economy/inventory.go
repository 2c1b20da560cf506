// Package economy implements the cargo inventory and the auto-trade logic
// that sells cargo to cover a fuel deficit.
package economy

import (
	"math/rand"
	"sort"

	"github.com/oliban/lander-game-sub002/internal/config"
)

// ItemType identifies a collectible cargo type.
type ItemType string

const (
	ItemGrain      ItemType = "grain"
	ItemMedicine   ItemType = "medicine"
	ItemMail       ItemType = "mail"
	ItemVodka      ItemType = "vodka"
	ItemCasinoChip ItemType = "casino_chip"
	ItemMedal      ItemType = "medal"
)

// Inventory tracks per-type cargo counts. Casino chips are special: each unit
// carries its own randomized value, drawn at acquisition from a weighted tier
// distribution and stored in acquisition order. Chips are always consumed
// oldest-first.
type Inventory struct {
	counts     map[ItemType]int
	chipValues []int // FIFO; len always equals counts[ItemCasinoChip]
	fuelValues map[ItemType]int
	tiers      []config.ChipTier
	rng        *rand.Rand
}

// NewInventory creates an empty inventory using the configured value tables.
func NewInventory(cfg config.EconomyConfig, rng *rand.Rand) *Inventory {
	fuel := make(map[ItemType]int, len(cfg.FuelValues))
	for name, v := range cfg.FuelValues {
		fuel[ItemType(name)] = v
	}
	return &Inventory{
		counts:     make(map[ItemType]int),
		fuelValues: fuel,
		tiers:      cfg.ChipTiers,
		rng:        rng,
	}
}

// Add increments the count for a type. For casino chips it draws n independent
// values from the tier distribution and appends them in acquisition order.
// Non-positive n is a defensive no-op.
func (inv *Inventory) Add(t ItemType, n int) {
	if n <= 0 {
		return
	}
	inv.counts[t] += n
	if t == ItemCasinoChip {
		for i := 0; i < n; i++ {
			inv.chipValues = append(inv.chipValues, inv.rollChipValue())
		}
	}
}

// Remove decrements the count for a type. Fails without mutating anything if
// fewer than n units are held. For casino chips the oldest n values are
// dropped from the front of the list.
func (inv *Inventory) Remove(t ItemType, n int) bool {
	if n <= 0 {
		return n == 0
	}
	if inv.counts[t] < n {
		return false
	}
	inv.counts[t] -= n
	if t == ItemCasinoChip {
		inv.chipValues = inv.chipValues[n:]
	}
	return true
}

// Count returns the held count for a type.
func (inv *Inventory) Count(t ItemType) int {
	return inv.counts[t]
}

// CasinoChipTotalValue sums the first n stored chip values without removing
// them, for previewing a sale. n beyond the held count sums everything.
func (inv *Inventory) CasinoChipTotalValue(n int) int {
	if n > len(inv.chipValues) {
		n = len(inv.chipValues)
	}
	total := 0
	for _, v := range inv.chipValues[:n] {
		total += v
	}
	return total
}

// ChipValues returns a copy of the stored chip values in acquisition order.
func (inv *Inventory) ChipValues() []int {
	out := make([]int, len(inv.chipValues))
	copy(out, inv.chipValues)
	return out
}

// FuelValue returns the fixed per-unit fuel value for a type. Casino chips
// have no fixed value; use the stored per-unit values instead.
func (inv *Inventory) FuelValue(t ItemType) int {
	return inv.fuelValues[t]
}

// SellableTypes returns the types eligible for auto-trade in deterministic
// order: fixed-value types sorted by name, then casino chips. The medal is
// never sellable.
func (inv *Inventory) SellableTypes() []ItemType {
	var fixed []ItemType
	for t, v := range inv.fuelValues {
		if t == ItemCasinoChip || t == ItemMedal || v <= 0 {
			continue
		}
		fixed = append(fixed, t)
	}
	sort.Slice(fixed, func(i, j int) bool { return fixed[i] < fixed[j] })
	return append(fixed, ItemCasinoChip)
}

// rollChipValue draws one chip value from the weighted tier distribution.
func (inv *Inventory) rollChipValue() int {
	totalWeight := 0
	for _, tier := range inv.tiers {
		totalWeight += tier.Weight
	}
	if totalWeight <= 0 {
		return 0
	}
	roll := inv.rng.Intn(totalWeight)
	for _, tier := range inv.tiers {
		roll -= tier.Weight
		if roll < 0 {
			return tier.Value
		}
	}
	return inv.tiers[len(inv.tiers)-1].Value
}
