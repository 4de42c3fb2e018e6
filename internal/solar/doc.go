// Package solar provides solar resource profiles for power-flow simulation.
//
// A ResourceProfile is one year of hourly AC output, normalized to 1 MW of
// installed DC capacity. Profiles are a deterministic pure function of
// location; the ProfileCache serves any number of concurrent readers and
// coalesces simultaneous first misses into one provider fetch.
package solar
