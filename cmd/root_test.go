package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lake-sim/lake-sim/lake"
)

func TestRunCommand_SmallStudyEndToEnd(t *testing.T) {
	// GIVEN a deliberately tiny study so the test stays fast
	rootCmd.SetArgs([]string{"run",
		"--samples", "5",
		"--steps", "10",
		"--baseline", "4",
		"--budget-lo", "2",
		"--budget-hi", "6",
		"--rounds", "3",
		"--log", "error",
	})

	// WHEN the CLI executes
	err := rootCmd.Execute()

	// THEN the study completes without error
	assert.NoError(t, err)
}

func TestFrontReporter_HandlesEmptyPartition(t *testing.T) {
	// The observer must cope with the degenerate first rounds.
	frontReporter{}.OnRound(0, 1, lake.Partition{}, lake.PointSet{})
}
