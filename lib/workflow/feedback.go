package workflow

import (
	"strings"

	"ats-backend/models"
)

// MapRecommendation canonicalizes free-form interviewer recommendation text.
// Unrecognized text lands on On Hold rather than dropping the feedback.
func MapRecommendation(recommendation string) models.FeedbackResult {
	switch strings.ToLower(strings.TrimSpace(recommendation)) {
	case "hire", "strong hire":
		return models.FeedbackSelected
	case "no hire", "reject", "rejected":
		return models.FeedbackRejected
	case "maybe", "hold", "on hold":
		return models.FeedbackOnHold
	case "no show":
		return models.FeedbackNoShow
	default:
		return models.FeedbackOnHold
	}
}

// resolveFeedbackOutcome derives the application stage and candidate status
// implied by an interview's round, status and feedback result. Rules are
// checked highest precedence first; the final fallback always resolves, so
// no combination silently drops the event.
func resolveFeedbackOutcome(round models.InterviewRound, status models.InterviewStatus, result models.FeedbackResult) (models.ApplicationStage, models.CandidateStatus) {
	completed := status == models.InterviewStatusCompleted

	// 1. HR round outcome decides the offer
	if round == models.RoundHR && completed && result != "" {
		switch result {
		case models.FeedbackSelected:
			return models.StageOfferReleased, models.CandidateStatusOffered
		case models.FeedbackRejected:
			return models.StageRejected, models.CandidateStatusRejected
		case models.FeedbackOnHold:
			return models.StageOnHold, models.CandidateStatusInterviewing
		case models.FeedbackNoShow:
			return models.StageNoShow, models.CandidateStatusAvailable
		}
	}

	technicalRound := round == models.RoundL1 || round == models.RoundL2 || round == models.RoundFinal

	// 2. technical pass advances the pipeline
	if technicalRound && completed && result == models.FeedbackSelected {
		if round == models.RoundL1 {
			return models.StageL2Scheduled, models.CandidateStatusInterviewing
		}
		return models.StageSelected, models.CandidateStatusInterviewing
	}

	// 3. technical fail ends it
	if technicalRound && completed && result == models.FeedbackRejected {
		return models.StageRejected, models.CandidateStatusRejected
	}

	// 4. not yet completed: normalize back to the scheduled stage
	if technicalRound && !completed {
		return round.ScheduledStage(), models.CandidateStatusInterviewing
	}

	// 5. fallback
	return models.StageShortlisted, models.CandidateStatusInterviewing
}
