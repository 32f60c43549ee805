package models

// Template keys known to the notification seed. Referencing an unknown key
// resolves to a non-throwing failure result at send time.
const (
	TplJobDescription        = "job_description"
	TplInterviewCandidate    = "interview_scheduled_candidate"
	TplInterviewInterviewer  = "interview_scheduled_interviewer"
	TplInterviewConfirmation = "interview_scheduled_confirmation"
	TplProgression           = "interview_progression"
	TplRejection             = "application_rejected"
	TplOfferExtended         = "offer_extended"
	TplFeedbackRequest       = "feedback_request"
	TplPortalWelcome         = "portal_welcome"
	TplJoinedWelcome         = "joined_welcome"
	TplNotJoinedFollowup     = "not_joined_followup"
)

// TemplateData carries every placeholder a message template may reference.
// The company profile is passed in explicitly per operation, never read from
// a global.
type TemplateData struct {
	CandidateName    string
	CandidateEmail   string
	JobTitle         string
	Department       string
	Stage            string
	InterviewRound   string
	InterviewMode    string
	InterviewDate    string
	InterviewerName  string
	MeetingLink      string
	ResponseLink     string
	PortalLink       string
	PortalLogin      string
	PortalPassword   string
	OfferAnnualCTC   string
	CompanyName      string
	CompanyAddress   string
	CompanyContact   string
	CompanySignatory string
}
