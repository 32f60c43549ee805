package teams

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

// Provider creates online meetings for interviews. Every failure path
// returns nil: callers uniformly treat "no meeting" as a valid degraded
// outcome, an interview is never blocked on the meeting service.
type Provider interface {
	CreateOrUpdateMeeting(ctx context.Context, meetingID, subject string, start, end time.Time, organizer string, attendees []string) *MeetingHandle
}

type MeetingHandle struct {
	ID      string
	JoinURL string
}

var Instance Provider

func NewProvider(tenantID, clientID, clientSecret string, timeout time.Duration) {
	Instance = &impl{
		tenantID:     tenantID,
		clientID:     clientID,
		clientSecret: clientSecret,
		client:       &http.Client{Timeout: timeout},
	}
}

const (
	tokenPathTpl   = "https://login.microsoftonline.com/%v/oauth2/v2.0/token"
	meetingsPath   = "https://graph.microsoft.com/v1.0/users/%v/onlineMeetings"
	meetingPathTpl = "https://graph.microsoft.com/v1.0/users/%v/onlineMeetings/%v"
)

type impl struct {
	tenantID     string
	clientID     string
	clientSecret string
	client       *http.Client
}

type meetingRequest struct {
	Subject       string              `json:"subject"`
	StartDateTime string              `json:"startDateTime"`
	EndDateTime   string              `json:"endDateTime"`
	Participants  meetingParticipants `json:"participants,omitempty"`
}

type meetingParticipants struct {
	Attendees []meetingAttendee `json:"attendees,omitempty"`
}

type meetingAttendee struct {
	Upn string `json:"upn"`
}

type meetingResponse struct {
	ID      string `json:"id"`
	JoinURL string `json:"joinWebUrl"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

func (i impl) CreateOrUpdateMeeting(ctx context.Context, meetingID, subject string, start, end time.Time, organizer string, attendees []string) *MeetingHandle {
	logger := log.
		WithField("organizer", organizer).
		WithField("subject", subject)
	if i.clientID == "" || i.clientSecret == "" || i.tenantID == "" {
		logger.Warn("meeting not created, teams client is not configured")
		return nil
	}
	token, err := i.requestToken(ctx)
	if err != nil {
		logger.WithError(err).Error("failed to obtain teams token")
		return nil
	}

	reqBody := meetingRequest{
		Subject:       subject,
		StartDateTime: start.UTC().Format(time.RFC3339),
		EndDateTime:   end.UTC().Format(time.RFC3339),
	}
	for _, attendee := range attendees {
		if attendee == "" {
			continue
		}
		reqBody.Participants.Attendees = append(reqBody.Participants.Attendees, meetingAttendee{Upn: attendee})
	}
	data, err := json.Marshal(reqBody)
	if err != nil {
		logger.WithError(err).Error("failed to marshal meeting request")
		return nil
	}

	uri := fmt.Sprintf(meetingsPath, organizer)
	method := http.MethodPost
	if meetingID != "" {
		uri = fmt.Sprintf(meetingPathTpl, organizer, meetingID)
		method = http.MethodPatch
	}
	req, err := http.NewRequestWithContext(ctx, method, uri, bytes.NewReader(data))
	if err != nil {
		logger.WithError(err).Error("failed to build meeting request")
		return nil
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := i.client.Do(req)
	if err != nil {
		logger.WithError(err).Error("meeting request failed")
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		logger.
			WithField("status_code", resp.StatusCode).
			WithField("response", string(body)).
			Error("meeting service rejected the request")
		return nil
	}
	var meeting meetingResponse
	if err = json.NewDecoder(resp.Body).Decode(&meeting); err != nil {
		logger.WithError(err).Error("failed to decode meeting response")
		return nil
	}
	return &MeetingHandle{
		ID:      meeting.ID,
		JoinURL: meeting.JoinURL,
	}
}

func (i impl) requestToken(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("client_id", i.clientID)
	form.Set("client_secret", i.clientSecret)
	form.Set("scope", "https://graph.microsoft.com/.default")
	form.Set("grant_type", "client_credentials")

	uri := fmt.Sprintf(tokenPathTpl, i.tenantID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uri, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := i.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("token request failed with status %v: %v", resp.StatusCode, string(body))
	}
	var token tokenResponse
	if err = json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", err
	}
	return token.AccessToken, nil
}
