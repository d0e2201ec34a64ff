// Pure derivation of assignment state for both the company and the
// developer views. No I/O: the server is the authority, callers re-fetch
// after every mutating action and run the fetched record through here.

package lifecycle

import (
	"math"
	"time"

	"go-devconnect-cli/internal/models"
)

type Status int

const (
	StatusAwaitingFigma Status = iota
	StatusAwaitingProject
	StatusUnderReview
	StatusApproved
	StatusNeedsRevision
)

func (s Status) Label() string {
	switch s {
	case StatusAwaitingFigma:
		return "Awaiting Figma"
	case StatusAwaitingProject:
		return "Awaiting Project"
	case StatusUnderReview:
		return "Under Review"
	case StatusApproved:
		return "Approved"
	default:
		return "Needs Revision"
	}
}

// StatusOf maps (figma_submitted, project_submitted, approved) to the
// workflow status. Approved is tri-state: nil means pending review.
func StatusOf(a models.Assignment) Status {
	if !a.FigmaSubmitted {
		return StatusAwaitingFigma
	}
	if !a.ProjectSubmitted {
		return StatusAwaitingProject
	}
	if a.Submission == nil || a.Submission.Approved == nil {
		return StatusUnderReview
	}
	if *a.Submission.Approved {
		return StatusApproved
	}
	return StatusNeedsRevision
}

// Terminal reports whether no further workflow action exists.
func Terminal(a models.Assignment) bool {
	return StatusOf(a) == StatusApproved
}

type Action string

const (
	ActionSubmitFigma   Action = "submit_figma"
	ActionSubmitProject Action = "submit_project"
	ActionReview        Action = "review"
	ActionChat          Action = "chat"
)

// ActionsFor returns the actions the given role may take in the
// assignment's current state. Submissions are developer actions, review
// is a company action, chat opens up once a revision is requested.
func ActionsFor(a models.Assignment, role models.UserType) []Action {
	switch StatusOf(a) {
	case StatusAwaitingFigma:
		if role == models.UserTypeDeveloper {
			return []Action{ActionSubmitFigma}
		}
	case StatusAwaitingProject:
		if role == models.UserTypeDeveloper {
			return []Action{ActionSubmitProject}
		}
	case StatusUnderReview:
		if role == models.UserTypeCompany {
			return []Action{ActionReview}
		}
	case StatusNeedsRevision:
		if role == models.UserTypeDeveloper {
			return []Action{ActionSubmitProject, ActionChat}
		}
		return []Action{ActionChat}
	}
	return nil
}

// DaysRemaining is max(0, ceil((deadline - now) / 1 day)). Never negative.
func DaysRemaining(deadline, now time.Time) int {
	days := int(math.Ceil(deadline.Sub(now).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}

type Band int

const (
	BandOverdue Band = iota
	BandWarning
	BandNormal
)

func (b Band) String() string {
	switch b {
	case BandOverdue:
		return "overdue"
	case BandWarning:
		return "warning"
	default:
		return "normal"
	}
}

// BandFor buckets a days-remaining value: <=0 overdue, 1..3 warning,
// >3 normal.
func BandFor(days int) Band {
	if days <= 0 {
		return BandOverdue
	}
	if days <= 3 {
		return BandWarning
	}
	return BandNormal
}
