package notify

import (
	"ats-backend/models"
	dbmodels "ats-backend/models/db"
)

var defaultTemplates = []dbmodels.MessageTemplate{
	{
		Key:     models.TplJobDescription,
		Name:    "Job description",
		Subject: "{{.CompanyName}} - opening for {{.JobTitle}}",
		Body: "Dear {{.CandidateName}},\r\n\r\n" +
			"We came across your profile and would like to consider you for the {{.JobTitle}} position in our {{.Department}} team.\r\n\r\n" +
			"If you are interested, please confirm using the link below:\r\n{{.ResponseLink}}\r\n\r\n" +
			"Regards,\r\n{{.CompanySignatory}}\r\n{{.CompanyName}}",
	},
	{
		Key:     models.TplInterviewCandidate,
		Name:    "Interview invitation (candidate)",
		Subject: "Interview scheduled - {{.JobTitle}} ({{.InterviewRound}})",
		Body: "Dear {{.CandidateName}},\r\n\r\n" +
			"Your {{.InterviewRound}} interview for {{.JobTitle}} is scheduled on {{.InterviewDate}} ({{.InterviewMode}}).\r\n" +
			"{{if .MeetingLink}}Join link: {{.MeetingLink}}\r\n{{end}}\r\n" +
			"Regards,\r\n{{.CompanyName}}",
	},
	{
		Key:     models.TplInterviewInterviewer,
		Name:    "Interview notification (interviewer)",
		Subject: "Interview assigned - {{.JobTitle}} ({{.InterviewRound}})",
		Body: "Hello {{.InterviewerName}},\r\n\r\n" +
			"You are scheduled to interview {{.CandidateName}} for {{.JobTitle}} on {{.InterviewDate}} ({{.InterviewMode}}).\r\n" +
			"{{if .MeetingLink}}Join link: {{.MeetingLink}}\r\n{{end}}",
	},
	{
		Key:     models.TplInterviewConfirmation,
		Name:    "Interview confirmation (scheduler)",
		Subject: "Interview booked - {{.CandidateName}} / {{.JobTitle}}",
		Body: "The {{.InterviewRound}} interview for {{.CandidateName}} ({{.JobTitle}}) is booked on {{.InterviewDate}}.\r\n" +
			"Interviewer: {{.InterviewerName}}",
	},
	{
		Key:     models.TplProgression,
		Name:    "Stage progression",
		Subject: "Update on your application - {{.JobTitle}}",
		Body: "Dear {{.CandidateName}},\r\n\r\n" +
			"Good news - your application for {{.JobTitle}} has moved to the next step: {{.Stage}}.\r\n" +
			"We will reach out shortly with details.\r\n\r\nRegards,\r\n{{.CompanyName}}",
	},
	{
		Key:     models.TplRejection,
		Name:    "Application rejected",
		Subject: "Update on your application - {{.JobTitle}}",
		Body: "Dear {{.CandidateName}},\r\n\r\n" +
			"Thank you for the time you invested in the process for {{.JobTitle}}. " +
			"We will not be moving forward with your application at this time.\r\n\r\n" +
			"Regards,\r\n{{.CompanyName}}",
	},
	{
		Key:     models.TplOfferExtended,
		Name:    "Offer extended",
		Subject: "Offer of employment - {{.JobTitle}}",
		Body: "Dear {{.CandidateName}},\r\n\r\n" +
			"Congratulations! We are pleased to extend an offer for the {{.JobTitle}} position" +
			"{{if .OfferAnnualCTC}} with an annual CTC of {{.OfferAnnualCTC}}{{end}}. " +
			"Please find the offer letter attached.\r\n\r\n" +
			"Regards,\r\n{{.CompanySignatory}}\r\n{{.CompanyName}}",
	},
	{
		Key:     models.TplFeedbackRequest,
		Name:    "Feedback recorded",
		Subject: "Interview update - {{.JobTitle}}",
		Body: "Dear {{.CandidateName}},\r\n\r\n" +
			"Thank you for attending the {{.InterviewRound}} interview for {{.JobTitle}}. " +
			"Our team is reviewing the feedback and will get back to you.\r\n\r\n" +
			"Regards,\r\n{{.CompanyName}}",
	},
	{
		Key:     models.TplPortalWelcome,
		Name:    "Portal welcome",
		Subject: "Your candidate portal account",
		Body: "Dear {{.CandidateName}},\r\n\r\n" +
			"A candidate portal account has been created for you.\r\n" +
			"Login: {{.PortalLogin}}\r\nTemporary password: {{.PortalPassword}}\r\n" +
			"Portal: {{.PortalLink}}\r\n\r\n" +
			"Please change the password after the first login.",
	},
	{
		Key:     models.TplJoinedWelcome,
		Name:    "Joining confirmation",
		Subject: "Welcome aboard - {{.CompanyName}}",
		Body: "Dear {{.CandidateName}},\r\n\r\n" +
			"We are delighted that you accepted our offer for {{.JobTitle}}. " +
			"Our HR team will contact you with onboarding details.\r\n\r\n" +
			"Regards,\r\n{{.CompanyName}}",
	},
	{
		Key:     models.TplNotJoinedFollowup,
		Name:    "Offer declined follow-up",
		Subject: "Thank you - {{.CompanyName}}",
		Body: "Dear {{.CandidateName}},\r\n\r\n" +
			"We are sorry the offer for {{.JobTitle}} did not work out. " +
			"We would be glad to stay in touch for future openings.\r\n\r\n" +
			"Regards,\r\n{{.CompanyName}}",
	},
}

// seedDefaults creates any missing default template; existing rows are left
// untouched so recruiter edits survive restarts.
func (i impl) seedDefaults() error {
	for _, tpl := range defaultTemplates {
		existing, err := i.templateStore.GetByKey(tpl.Key)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		tpl.IsActive = true
		if err = i.templateStore.Create(tpl); err != nil {
			return err
		}
	}
	return nil
}
