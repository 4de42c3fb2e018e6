// Package ensemble evaluates sweeps of candidate power-system
// configurations and selects cost-optimal ones.
//
// A run flows through a fixed pipeline:
//
//	Case Generation → Concurrent Evaluation → Aggregation
//	  (GenerateCases)     (Runner+Evaluator)    (BestCase, ParetoFrontier)
//
// Every generated case yields exactly one EvaluationResult; failures are
// recorded as tagged result values, never propagated, so one bad case can
// never abort the rest of the sweep. Whole-run abort happens only on input
// validation, strictly before any case is created.
//
// Aggregation is independent of completion order: results land at their
// generation index regardless of which worker finishes first, and the only
// order-sensitive rule (least-cost tie-break) is defined over generation
// order, which is deterministic.
package ensemble
