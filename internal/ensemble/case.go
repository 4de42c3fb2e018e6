package ensemble

import (
	"fmt"
	"strings"
)

// Status tags the outcome of one case evaluation.
type Status string

const (
	// StatusSuccess means the case simulated and priced cleanly.
	StatusSuccess Status = "success"
	// StatusCaseInvalid means the case failed input validation before any
	// simulation ran.
	StatusCaseInvalid Status = "case_invalid"
	// StatusDomainError means the configuration is economically undefined
	// (zero lifetime energy).
	StatusDomainError Status = "domain_error"
	// StatusUnknownError covers any other collaborator failure.
	StatusUnknownError Status = "unknown_error"
)

// Case is one candidate system configuration. Cases are values: created by
// GenerateCases and never mutated.
type Case struct {
	SolarCapacityMW     int
	StoragePowerMW      int
	GeneratorCapacityMW int
	GeneratorType       string
	DatacenterLoadMW    float64
	Latitude            float64
	Longitude           float64
}

// SystemSpec renders the deterministic human-readable label for the case.
func (c Case) SystemSpec() string {
	return fmt.Sprintf("%dMW_PV_%dMW_BESS_%dMW_%s",
		c.SolarCapacityMW, c.StoragePowerMW, c.GeneratorCapacityMW,
		strings.ReplaceAll(c.GeneratorType, " ", ""))
}

// EvaluationResult is the immutable outcome of evaluating one Case.
//
// Invariant: SystemSpec, LevelizedCost, and RenewableFraction are
// meaningful iff Status == StatusSuccess; Message is set iff the status is
// a failure.
type EvaluationResult struct {
	Case

	SystemSpec        string
	LevelizedCost     float64
	RenewableFraction float64
	Status            Status
	Message           string
}

// Succeeded reports whether the case evaluated cleanly.
func (r EvaluationResult) Succeeded() bool {
	return r.Status == StatusSuccess
}

// ParetoPoint is one non-dominated success result with its objective pair.
type ParetoPoint struct {
	Result            EvaluationResult
	Cost              float64
	RenewableFraction float64
}
