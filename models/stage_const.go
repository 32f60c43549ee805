package models

// ApplicationStage is the canonical workflow state of an application.
// The transition and projection tables in lib/workflow must have an entry
// for every value listed here.
type ApplicationStage string

const (
	StageApplied             ApplicationStage = "Applied"
	StageUnderReview         ApplicationStage = "Under Review"
	StageShortlisted         ApplicationStage = "Shortlisted"
	StageL1Scheduled         ApplicationStage = "L1 Scheduled"
	StageL2Scheduled         ApplicationStage = "L2 Scheduled"
	StageHRScheduled         ApplicationStage = "HR Scheduled"
	StageFinalScheduled      ApplicationStage = "Final Scheduled"
	StageSelected            ApplicationStage = "Selected"
	StageOfferReleased       ApplicationStage = "Offer Released"
	StageJoined              ApplicationStage = "Joined"
	StageRejected            ApplicationStage = "Rejected"
	StageOnHold              ApplicationStage = "On Hold"
	StageNoShow              ApplicationStage = "No Show"
	StageNotJoined           ApplicationStage = "Not Joined"
	StageRejectedByCandidate ApplicationStage = "Rejected by Candidate"
)

// AllStages is the closed set of stages, used to assert table totality.
var AllStages = []ApplicationStage{
	StageApplied,
	StageUnderReview,
	StageShortlisted,
	StageL1Scheduled,
	StageL2Scheduled,
	StageHRScheduled,
	StageFinalScheduled,
	StageSelected,
	StageOfferReleased,
	StageJoined,
	StageRejected,
	StageOnHold,
	StageNoShow,
	StageNotJoined,
	StageRejectedByCandidate,
}

type CandidateStatus string

const (
	CandidateStatusAvailable     CandidateStatus = "Available"
	CandidateStatusInterested    CandidateStatus = "Interested"
	CandidateStatusNotInterested CandidateStatus = "Not Interested"
	CandidateStatusInterviewing  CandidateStatus = "Interviewing"
	CandidateStatusOffered       CandidateStatus = "Offered"
	CandidateStatusJoined        CandidateStatus = "Joined"
	CandidateStatusRejected      CandidateStatus = "Rejected"
	CandidateStatusNotJoined     CandidateStatus = "Not Joined"
)

type InterviewRound string

const (
	RoundL1    InterviewRound = "L1"
	RoundL2    InterviewRound = "L2"
	RoundHR    InterviewRound = "HR"
	RoundFinal InterviewRound = "Final"
)

// ScheduledStage returns the stage an application moves to when an
// interview of this round is scheduled.
func (r InterviewRound) ScheduledStage() ApplicationStage {
	switch r {
	case RoundL1:
		return StageL1Scheduled
	case RoundL2:
		return StageL2Scheduled
	case RoundHR:
		return StageHRScheduled
	case RoundFinal:
		return StageFinalScheduled
	}
	return ""
}

type InterviewMode string

const (
	ModeTeams   InterviewMode = "Teams"
	ModeOnline  InterviewMode = "Online"
	ModeOffline InterviewMode = "Offline"
)

func (m InterviewMode) NeedsMeeting() bool {
	return m == ModeTeams || m == ModeOnline
}

type InterviewStatus string

const (
	InterviewStatusScheduled InterviewStatus = "Scheduled"
	InterviewStatusCompleted InterviewStatus = "Completed"
	InterviewStatusCancelled InterviewStatus = "Cancelled"
)

type FeedbackResult string

const (
	FeedbackSelected FeedbackResult = "Selected"
	FeedbackRejected FeedbackResult = "Rejected"
	FeedbackOnHold   FeedbackResult = "On Hold"
	FeedbackNoShow   FeedbackResult = "No Show"
)

type CandidateResponse string

const (
	ResponsePending       CandidateResponse = "pending"
	ResponseInterested    CandidateResponse = "interested"
	ResponseNotInterested CandidateResponse = "not_interested"
)

type OfferStatus string

const (
	OfferStatusDraft    OfferStatus = "draft"
	OfferStatusSent     OfferStatus = "sent"
	OfferStatusAccepted OfferStatus = "accepted"
	OfferStatusDeclined OfferStatus = "declined"
)

type JobStatus string

const (
	JobStatusDraft  JobStatus = "draft"
	JobStatusActive JobStatus = "active"
	JobStatusClosed JobStatus = "closed"
	JobStatusOnHold JobStatus = "on_hold"
)
