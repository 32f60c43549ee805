package workflow

import (
	"testing"

	"github.com/stretchr/testify/require"

	"ats-backend/models"
)

func TestMapRecommendation(t *testing.T) {
	cases := map[string]models.FeedbackResult{
		"hire":        models.FeedbackSelected,
		"Strong Hire": models.FeedbackSelected,
		"no hire":     models.FeedbackRejected,
		"reject":      models.FeedbackRejected,
		"Rejected":    models.FeedbackRejected,
		"maybe":       models.FeedbackOnHold,
		"hold":        models.FeedbackOnHold,
		"On Hold":     models.FeedbackOnHold,
		"no show":     models.FeedbackNoShow,
		"  hire  ":    models.FeedbackSelected,
		"gibberish":   models.FeedbackOnHold,
		"":            models.FeedbackOnHold,
	}
	for in, want := range cases {
		require.Equal(t, want, MapRecommendation(in), "input %q", in)
	}
}

func TestResolveFeedbackOutcome(t *testing.T) {
	t.Run(`hr round decides the offer`, func(t *testing.T) {
		stage, status := resolveFeedbackOutcome(models.RoundHR, models.InterviewStatusCompleted, models.FeedbackSelected)
		require.Equal(t, models.StageOfferReleased, stage)
		require.Equal(t, models.CandidateStatusOffered, status)

		stage, status = resolveFeedbackOutcome(models.RoundHR, models.InterviewStatusCompleted, models.FeedbackRejected)
		require.Equal(t, models.StageRejected, stage)
		require.Equal(t, models.CandidateStatusRejected, status)

		stage, status = resolveFeedbackOutcome(models.RoundHR, models.InterviewStatusCompleted, models.FeedbackNoShow)
		require.Equal(t, models.StageNoShow, stage)
		require.Equal(t, models.CandidateStatusAvailable, status)
	})

	t.Run(`l1 pass advances to l2`, func(t *testing.T) {
		stage, status := resolveFeedbackOutcome(models.RoundL1, models.InterviewStatusCompleted, models.FeedbackSelected)
		require.Equal(t, models.StageL2Scheduled, stage)
		require.Equal(t, models.CandidateStatusInterviewing, status)
	})

	t.Run(`l2 and final pass land on selected`, func(t *testing.T) {
		for _, round := range []models.InterviewRound{models.RoundL2, models.RoundFinal} {
			stage, status := resolveFeedbackOutcome(round, models.InterviewStatusCompleted, models.FeedbackSelected)
			require.Equal(t, models.StageSelected, stage, "round %q", round)
			require.Equal(t, models.CandidateStatusInterviewing, status)
		}
	})

	t.Run(`technical fail rejects`, func(t *testing.T) {
		for _, round := range []models.InterviewRound{models.RoundL1, models.RoundL2, models.RoundFinal} {
			stage, status := resolveFeedbackOutcome(round, models.InterviewStatusCompleted, models.FeedbackRejected)
			require.Equal(t, models.StageRejected, stage, "round %q", round)
			require.Equal(t, models.CandidateStatusRejected, status)
		}
	})

	t.Run(`incomplete technical round normalizes to its scheduled stage`, func(t *testing.T) {
		stage, status := resolveFeedbackOutcome(models.RoundL2, models.InterviewStatusScheduled, "")
		require.Equal(t, models.StageL2Scheduled, stage)
		require.Equal(t, models.CandidateStatusInterviewing, status)
	})

	t.Run(`completed technical hold falls back to shortlisted`, func(t *testing.T) {
		stage, status := resolveFeedbackOutcome(models.RoundL1, models.InterviewStatusCompleted, models.FeedbackOnHold)
		require.Equal(t, models.StageShortlisted, stage)
		require.Equal(t, models.CandidateStatusInterviewing, status)
	})

	t.Run(`every combination resolves`, func(t *testing.T) {
		rounds := []models.InterviewRound{models.RoundL1, models.RoundL2, models.RoundHR, models.RoundFinal}
		statuses := []models.InterviewStatus{models.InterviewStatusScheduled, models.InterviewStatusCompleted, models.InterviewStatusCancelled}
		results := []models.FeedbackResult{"", models.FeedbackSelected, models.FeedbackRejected, models.FeedbackOnHold, models.FeedbackNoShow}
		for _, round := range rounds {
			for _, status := range statuses {
				for _, result := range results {
					stage, candStatus := resolveFeedbackOutcome(round, status, result)
					require.NotEmpty(t, stage, "round=%v status=%v result=%v", round, status, result)
					require.NotEmpty(t, candStatus, "round=%v status=%v result=%v", round, status, result)
				}
			}
		}
	})
}
