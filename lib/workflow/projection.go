package workflow

import (
	"ats-backend/models"
)

var statusProjection = map[models.ApplicationStage]models.CandidateStatus{
	models.StageApplied:             models.CandidateStatusInterviewing,
	models.StageUnderReview:         models.CandidateStatusInterviewing,
	models.StageShortlisted:         models.CandidateStatusInterested,
	models.StageL1Scheduled:         models.CandidateStatusInterviewing,
	models.StageL2Scheduled:         models.CandidateStatusInterviewing,
	models.StageHRScheduled:         models.CandidateStatusInterviewing,
	models.StageFinalScheduled:      models.CandidateStatusInterviewing,
	models.StageSelected:            models.CandidateStatusInterviewing,
	models.StageOfferReleased:       models.CandidateStatusOffered,
	models.StageJoined:              models.CandidateStatusJoined,
	models.StageRejected:            models.CandidateStatusRejected,
	models.StageOnHold:              models.CandidateStatusInterviewing,
	models.StageNoShow:              models.CandidateStatusAvailable,
	models.StageNotJoined:           models.CandidateStatusNotJoined,
	models.StageRejectedByCandidate: models.CandidateStatusNotInterested,
}

// ProjectCandidateStatus maps an application stage to the candidate status
// it implies. ok is false when the stage should not alter the candidate,
// which the orchestrator treats as "no candidate write".
func ProjectCandidateStatus(stage models.ApplicationStage) (status models.CandidateStatus, ok bool) {
	status, ok = statusProjection[stage]
	return status, ok
}
