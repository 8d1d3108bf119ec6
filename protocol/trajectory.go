package protocol

import (
	"encoding/json"
	"strings"

	"github.com/katalvlaran/qcwire/core"
)

// Trajectory selects which steps of an optimization trajectory an outcome
// record keeps.
type Trajectory string

const (
	// TrajectoryAll keeps every step. Default.
	TrajectoryAll Trajectory = "all"
	// TrajectoryInitialAndFinal keeps the first and last steps.
	TrajectoryInitialAndFinal Trajectory = "initial_and_final"
	// TrajectoryFinal keeps only the last step.
	TrajectoryFinal Trajectory = "final"
	// TrajectoryNone keeps no steps.
	TrajectoryNone Trajectory = "none"
)

// ParseTrajectory normalizes s (whitespace trimmed) into a Trajectory.
// The empty string parses to TrajectoryAll, the absent-protocol default.
func ParseTrajectory(s string) (Trajectory, error) {
	t := Trajectory(strings.TrimSpace(s))
	switch t {
	case "":
		return TrajectoryAll, nil
	case TrajectoryAll, TrajectoryInitialAndFinal, TrajectoryFinal, TrajectoryNone:
		return t, nil
	}
	return "", core.Invalidf("protocols.trajectory", core.ErrValue,
		"unknown trajectory protocol %q", s)
}

// Select returns the indices of the steps to keep from a trajectory of
// length n, in ascending order. A single-step trajectory degenerates
// "initial_and_final" to the one index. Non-positive n selects nothing.
// The zero value behaves as TrajectoryAll.
func (t Trajectory) Select(n int) []int {
	if n <= 0 {
		return nil
	}
	switch t {
	case TrajectoryNone:
		return nil
	case TrajectoryFinal:
		return []int{n - 1}
	case TrajectoryInitialAndFinal:
		if n == 1 {
			return []int{0}
		}
		return []int{0, n - 1}
	default:
		keep := make([]int, n)
		for i := range keep {
			keep[i] = i
		}
		return keep
	}
}

// UnmarshalJSON accepts the wire spelling and validates it.
func (t *Trajectory) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return core.Invalidf("protocols.trajectory", core.ErrValue,
			"trajectory protocol must be a string: %v", err)
	}
	parsed, err := ParseTrajectory(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
