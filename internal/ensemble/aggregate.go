package ensemble

import (
	"errors"
	"sort"
)

// ErrNoFeasibleCase reports that a completed run produced no successful
// case at all. This is a whole-run condition, distinct from the per-case
// failures recorded in the result table.
var ErrNoFeasibleCase = errors.New("no successful case in ensemble")

// BestCase selects the successful result with the lowest levelized cost.
// Ties on cost resolve to the earliest entry in table order; since the
// table is in generation order this is a documented convention, not a
// fairness guarantee.
func BestCase(table []EvaluationResult) (EvaluationResult, error) {
	best := -1
	for i, res := range table {
		if !res.Succeeded() {
			continue
		}
		if best == -1 || res.LevelizedCost < table[best].LevelizedCost {
			best = i
		}
	}
	if best == -1 {
		return EvaluationResult{}, ErrNoFeasibleCase
	}
	return table[best], nil
}

// ParetoFrontier computes the set of successful results not dominated on
// (levelized cost: minimize, renewable fraction: maximize).
//
// Skyline sweep: sort successes by cost ascending (ties by renewable
// fraction descending), then keep each point whose renewable fraction
// strictly exceeds the running maximum. Returned in ascending cost order.
func ParetoFrontier(table []EvaluationResult) []ParetoPoint {
	var successes []EvaluationResult
	for _, res := range table {
		if res.Succeeded() {
			successes = append(successes, res)
		}
	}
	if len(successes) == 0 {
		return nil
	}

	sort.SliceStable(successes, func(i, j int) bool {
		if successes[i].LevelizedCost != successes[j].LevelizedCost {
			return successes[i].LevelizedCost < successes[j].LevelizedCost
		}
		return successes[i].RenewableFraction > successes[j].RenewableFraction
	})

	var frontier []ParetoPoint
	maxRenewable := 0.0
	for i, res := range successes {
		if i == 0 || res.RenewableFraction > maxRenewable {
			frontier = append(frontier, ParetoPoint{
				Result:            res,
				Cost:              res.LevelizedCost,
				RenewableFraction: res.RenewableFraction,
			})
			maxRenewable = res.RenewableFraction
		}
	}
	return frontier
}
