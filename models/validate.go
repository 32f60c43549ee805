package models

import "github.com/pkg/errors"

func (s ApplicationStage) Validate() error {
	for _, known := range AllStages {
		if s == known {
			return nil
		}
	}
	return errors.Errorf("unknown application stage %q", string(s))
}

func (s JobStatus) Validate() error {
	switch s {
	case JobStatusDraft, JobStatusActive, JobStatusClosed, JobStatusOnHold:
		return nil
	}
	return errors.Errorf("unknown job status %q", string(s))
}

func (r InterviewRound) Validate() error {
	switch r {
	case RoundL1, RoundL2, RoundHR, RoundFinal:
		return nil
	}
	return errors.Errorf("unknown interview round %q", string(r))
}

func (m InterviewMode) Validate() error {
	switch m {
	case ModeTeams, ModeOnline, ModeOffline:
		return nil
	}
	return errors.Errorf("unknown interview mode %q", string(m))
}

func (r CandidateResponse) Validate() error {
	switch r {
	case ResponseInterested, ResponseNotInterested:
		return nil
	}
	return errors.Errorf("unknown candidate response %q", string(r))
}
