package economy

import "math"

// TradePlan describes which units an auto-trade would sell.
type TradePlan struct {
	// Units holds how many units of each type the plan sells.
	Units map[ItemType]int
	// TotalValue is the raw sum of per-unit fuel values of all sold units.
	TotalValue int
	// Covers reports whether TotalValue reached the requested deficit.
	Covers bool
	// SingleType marks a plan produced by the single-type covering strategy.
	SingleType bool
}

// TradeResult is the applied outcome of an executed plan.
type TradeResult struct {
	Plan TradePlan
	// FuelGranted applies the landing-quality multiplier.
	FuelGranted int
	// ScoreDeduction is the unmultiplied value sum. The asymmetry with
	// FuelGranted is deliberate: a good landing earns cheaper fuel, not a
	// risk-free score multiplier.
	ScoreDeduction int
}

// PlanTrade computes the auto-trade plan for a fuel deficit.
// Two candidate strategies are compared: cheapest-first accumulation across
// all types, and the cheapest single type whose own units cover the deficit.
// The plan granting less total fuel wins, minimizing waste; ties favor the
// single-type plan. If neither covers the deficit, the better partial result
// is returned.
func PlanTrade(inv *Inventory, deficit int) TradePlan {
	if deficit <= 0 {
		return TradePlan{Units: map[ItemType]int{}}
	}

	planA := planCheapestFirst(inv, deficit)
	planB := planSingleType(inv, deficit)

	switch {
	case planA.Covers && planB.Covers:
		if planB.TotalValue <= planA.TotalValue {
			return planB
		}
		return planA
	case planA.Covers:
		return planA
	case planB.Covers:
		return planB
	default:
		// Neither covers: apply whatever accumulated more.
		if planB.TotalValue >= planA.TotalValue {
			return planB
		}
		return planA
	}
}

// ExecuteTrade plans and applies an auto-trade for the deficit.
// landingMultiplier scales fuel granted but never the score deduction.
func ExecuteTrade(inv *Inventory, deficit int, landingMultiplier float64) TradeResult {
	plan := PlanTrade(inv, deficit)
	for t, n := range plan.Units {
		inv.Remove(t, n)
	}
	if landingMultiplier <= 0 {
		landingMultiplier = 1
	}
	return TradeResult{
		Plan:           plan,
		FuelGranted:    int(math.Round(float64(plan.TotalValue) * landingMultiplier)),
		ScoreDeduction: plan.TotalValue,
	}
}

// planCheapestFirst greedily consumes the cheapest available unit across all
// sellable types until the deficit is covered. Chip units are only available
// oldest-first, so at each step the candidate chip is the oldest remaining
// one. When a chip ties a fixed-value unit, the fixed type wins.
func planCheapestFirst(inv *Inventory, deficit int) TradePlan {
	plan := TradePlan{Units: make(map[ItemType]int)}

	remaining := make(map[ItemType]int)
	for _, t := range inv.SellableTypes() {
		remaining[t] = inv.Count(t)
	}
	chips := inv.ChipValues()
	chipIdx := 0

	for plan.TotalValue < deficit {
		best := ItemType("")
		bestValue := 0
		for _, t := range inv.SellableTypes() {
			if remaining[t] <= 0 {
				continue
			}
			var v int
			if t == ItemCasinoChip {
				v = chips[chipIdx]
			} else {
				v = inv.FuelValue(t)
			}
			// Strict less-than ranks the chip type last among ties because
			// SellableTypes lists it last.
			if best == "" || v < bestValue {
				best = t
				bestValue = v
			}
		}
		if best == "" {
			break // Nothing left to sell
		}
		remaining[best]--
		if best == ItemCasinoChip {
			chipIdx++
		}
		plan.Units[best]++
		plan.TotalValue += bestValue
	}

	plan.Covers = plan.TotalValue >= deficit
	return plan
}

// planSingleType finds, for each sellable type independently, the minimum
// prefix of its own units covering the deficit, and keeps the type with the
// smallest such cumulative value.
func planSingleType(inv *Inventory, deficit int) TradePlan {
	best := TradePlan{Units: map[ItemType]int{}, SingleType: true}
	found := false

	// Track the best partial in case no type can cover the deficit.
	partial := TradePlan{Units: map[ItemType]int{}, SingleType: true}

	for _, t := range inv.SellableTypes() {
		count := inv.Count(t)
		if count == 0 {
			continue
		}
		sum := 0
		units := 0
		for i := 0; i < count; i++ {
			if t == ItemCasinoChip {
				sum = inv.CasinoChipTotalValue(i + 1)
			} else {
				sum += inv.FuelValue(t)
			}
			units = i + 1
			if sum >= deficit {
				break
			}
		}
		if sum >= deficit {
			if !found || sum < best.TotalValue {
				best = TradePlan{Units: map[ItemType]int{t: units}, TotalValue: sum, Covers: true, SingleType: true}
				found = true
			}
		} else if sum > partial.TotalValue {
			partial = TradePlan{Units: map[ItemType]int{t: units}, TotalValue: sum, SingleType: true}
		}
	}

	if found {
		return best
	}
	return partial
}
