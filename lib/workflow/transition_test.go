package workflow

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ats-backend/models"
)

func TestTransitionTable(t *testing.T) {
	t.Run(`every stage has a table entry`, func(t *testing.T) {
		for _, stage := range models.AllStages {
			_, ok := transitionTable[stage]
			require.True(t, ok, "stage %q is missing from the transition table", stage)
		}
	})

	t.Run(`every target is a known stage`, func(t *testing.T) {
		known := map[models.ApplicationStage]bool{}
		for _, stage := range models.AllStages {
			known[stage] = true
		}
		for from, targets := range transitionTable {
			for _, to := range targets {
				require.True(t, known[to], "transition %q -> %q points to an unknown stage", from, to)
			}
		}
	})

	t.Run(`terminal stages have no exits`, func(t *testing.T) {
		for _, terminal := range []models.ApplicationStage{
			models.StageJoined,
			models.StageRejected,
			models.StageNotJoined,
			models.StageRejectedByCandidate,
		} {
			for _, to := range models.AllStages {
				require.False(t, IsValidTransition(terminal, to), "terminal stage %q must not allow %q", terminal, to)
			}
		}
	})

	t.Run(`self transitions are rejected`, func(t *testing.T) {
		for _, stage := range models.AllStages {
			require.False(t, IsValidTransition(stage, stage), "self transition allowed for %q", stage)
		}
	})

	t.Run(`unknown stage fails closed`, func(t *testing.T) {
		require.False(t, IsValidTransition("Phone Screen", models.StageShortlisted))
		require.False(t, IsValidTransition(models.StageApplied, "Phone Screen"))
	})

	t.Run(`happy path through the pipeline`, func(t *testing.T) {
		path := []models.ApplicationStage{
			models.StageApplied,
			models.StageShortlisted,
			models.StageL1Scheduled,
			models.StageL2Scheduled,
			models.StageHRScheduled,
			models.StageOfferReleased,
			models.StageJoined,
		}
		for i := 0; i < len(path)-1; i++ {
			require.True(t, IsValidTransition(path[i], path[i+1]), "%q -> %q", path[i], path[i+1])
		}
	})

	t.Run(`holding stages recover into scheduling`, func(t *testing.T) {
		for _, holding := range []models.ApplicationStage{models.StageOnHold, models.StageNoShow} {
			require.True(t, IsValidTransition(holding, models.StageL1Scheduled))
			require.True(t, IsValidTransition(holding, models.StageFinalScheduled))
			require.True(t, IsValidTransition(holding, models.StageRejected))
			require.False(t, IsValidTransition(holding, models.StageOfferReleased))
		}
	})

	t.Run(`no skipping into an offer before hr`, func(t *testing.T) {
		require.False(t, IsValidTransition(models.StageApplied, models.StageOfferReleased))
		require.False(t, IsValidTransition(models.StageL1Scheduled, models.StageOfferReleased))
		require.True(t, IsValidTransition(models.StageHRScheduled, models.StageOfferReleased))
		require.True(t, IsValidTransition(models.StageSelected, models.StageOfferReleased))
	})
}
