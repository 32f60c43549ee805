package workflow

import (
	"ats-backend/models"
)

// transitionTable is total: every stage has an entry, so an unknown stage
// fails closed. Terminal stages map to the empty set. Holding stages
// (On Hold, No Show) recover into any scheduling stage or Rejected.
var transitionTable = map[models.ApplicationStage][]models.ApplicationStage{
	models.StageApplied: {
		models.StageUnderReview,
		models.StageShortlisted,
		models.StageL1Scheduled,
		models.StageL2Scheduled,
		models.StageHRScheduled,
		models.StageFinalScheduled,
		models.StageOnHold,
		models.StageRejected,
		models.StageRejectedByCandidate,
	},
	models.StageUnderReview: {
		models.StageShortlisted,
		models.StageL1Scheduled,
		models.StageL2Scheduled,
		models.StageHRScheduled,
		models.StageFinalScheduled,
		models.StageOnHold,
		models.StageRejected,
		models.StageRejectedByCandidate,
	},
	models.StageShortlisted: {
		models.StageL1Scheduled,
		models.StageL2Scheduled,
		models.StageHRScheduled,
		models.StageFinalScheduled,
		models.StageOnHold,
		models.StageRejected,
		models.StageRejectedByCandidate,
	},
	models.StageL1Scheduled: {
		models.StageL2Scheduled,
		models.StageHRScheduled,
		models.StageFinalScheduled,
		models.StageSelected,
		models.StageOnHold,
		models.StageNoShow,
		models.StageRejected,
	},
	models.StageL2Scheduled: {
		models.StageHRScheduled,
		models.StageFinalScheduled,
		models.StageSelected,
		models.StageOnHold,
		models.StageNoShow,
		models.StageRejected,
	},
	models.StageHRScheduled: {
		models.StageSelected,
		models.StageOfferReleased,
		models.StageOnHold,
		models.StageNoShow,
		models.StageRejected,
	},
	models.StageFinalScheduled: {
		models.StageSelected,
		models.StageOnHold,
		models.StageNoShow,
		models.StageRejected,
	},
	models.StageSelected: {
		models.StageOfferReleased,
		models.StageOnHold,
		models.StageRejected,
	},
	models.StageOfferReleased: {
		models.StageJoined,
		models.StageNotJoined,
		models.StageRejected,
		models.StageRejectedByCandidate,
	},
	models.StageOnHold: {
		models.StageL1Scheduled,
		models.StageL2Scheduled,
		models.StageHRScheduled,
		models.StageFinalScheduled,
		models.StageRejected,
	},
	models.StageNoShow: {
		models.StageL1Scheduled,
		models.StageL2Scheduled,
		models.StageHRScheduled,
		models.StageFinalScheduled,
		models.StageRejected,
	},
	models.StageJoined:              {},
	models.StageRejected:            {},
	models.StageNotJoined:           {},
	models.StageRejectedByCandidate: {},
}

// IsValidTransition is a pure lookup; self-transitions are rejected since no
// stage lists itself.
func IsValidTransition(from, to models.ApplicationStage) bool {
	targets, ok := transitionTable[from]
	if !ok {
		return false
	}
	for _, target := range targets {
		if target == to {
			return true
		}
	}
	return false
}
