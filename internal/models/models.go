package models

import (
	"time"
)

type UserType string

const (
	UserTypeDeveloper UserType = "developer"
	UserTypeCompany   UserType = "company"
)

type ProjectStatus string

const (
	ProjectOpen       ProjectStatus = "open"
	ProjectInProgress ProjectStatus = "in_progress"
	ProjectInReview   ProjectStatus = "review"
	ProjectCompleted  ProjectStatus = "completed"
)

type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationSelected ApplicationStatus = "selected"
	ApplicationRejected ApplicationStatus = "rejected"
)

type Profile struct {
	ID        string   `json:"id"`
	Email     string   `json:"email"`
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	UserType  UserType `json:"user_type"`
}

// Session is the bearer credential returned at login/registration.
// It is the only durable client-side state.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type,omitempty"`
	ExpiresAt    int64  `json:"expires_at,omitempty"`
}

type Project struct {
	ID                int           `json:"id"`
	Title             string        `json:"title"`
	Description       string        `json:"description"`
	Category          string        `json:"category"`
	BudgetMin         float64       `json:"budget_min"`
	BudgetMax         float64       `json:"budget_max"`
	TechStack         []string      `json:"tech_stack"`
	Complexity        string        `json:"complexity"`
	Status            ProjectStatus `json:"status"`
	Company           string        `json:"company,omitempty"`
	ApplicationsCount int           `json:"applications_count"`
	CreatedAt         time.Time     `json:"created_at"`
}

// Application carries the optional ML match sub-scores. All scores are
// pointers: absent means "not scored yet", not zero.
type Application struct {
	ID                    int               `json:"id"`
	ProjectID             int               `json:"project_id"`
	ProjectTitle          string            `json:"project_title,omitempty"`
	DeveloperID           string            `json:"developer_id,omitempty"`
	DeveloperName         string            `json:"developer_name,omitempty"`
	DeveloperEmail        string            `json:"developer_email,omitempty"`
	CoverLetter           string            `json:"cover_letter"`
	ProposedRate          float64           `json:"proposed_rate"`
	EstimatedDuration     string            `json:"estimated_duration"`
	Status                ApplicationStatus `json:"status"`
	MatchScore            *float64          `json:"match_score,omitempty"`
	SkillMatchScore       *float64          `json:"skill_match_score,omitempty"`
	ExperienceFitScore    *float64          `json:"experience_fit_score,omitempty"`
	PortfolioQualityScore *float64          `json:"portfolio_quality_score,omitempty"`
	MatchingSkills        []string          `json:"matching_skills,omitempty"`
	MissingSkills         []string          `json:"missing_skills,omitempty"`
	AIReasoning           string            `json:"ai_reasoning,omitempty"`
	AppliedAt             time.Time         `json:"applied_at"`
}

type FigmaSubmission struct {
	ID          int       `json:"id"`
	FigmaURL    string    `json:"figma_url"`
	Description string    `json:"description"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// Submission is the final deliverable. Approved is tri-state:
// nil = pending review, true = approved, false = needs revision.
type Submission struct {
	ID                 int        `json:"id"`
	Description        string     `json:"description"`
	DocumentationLinks []string   `json:"documentation_links"`
	GithubLinks        []string   `json:"github_links"`
	ProjectLinks       []string   `json:"project_links"`
	AdditionalLinks    []string   `json:"additional_links"`
	SubmittedAt        time.Time  `json:"submitted_at"`
	Approved           *bool      `json:"approved"`
	CompanyFeedback    string     `json:"company_feedback"`
	ReviewedAt         *time.Time `json:"reviewed_at,omitempty"`
}

type Assignment struct {
	ID                      int              `json:"id"`
	ProjectID               int              `json:"project"`
	ProjectTitle            string           `json:"project_title"`
	DeveloperID             string           `json:"developer"`
	DeveloperName           string           `json:"developer_name"`
	CompanyName             string           `json:"company_name"`
	AssignedAt              time.Time        `json:"assigned_at"`
	FigmaDeadline           time.Time        `json:"figma_deadline"`
	SubmissionDeadline      time.Time        `json:"submission_deadline"`
	FigmaSubmitted          bool             `json:"figma_submitted"`
	ProjectSubmitted        bool             `json:"project_submitted"`
	FigmaDaysRemaining      int              `json:"figma_days_remaining"`
	SubmissionDaysRemaining int              `json:"submission_days_remaining"`
	FigmaSubmission         *FigmaSubmission `json:"figma_submission,omitempty"`
	Submission              *Submission      `json:"submission,omitempty"`
}

type ChatMessage struct {
	ID          int       `json:"id"`
	SenderID    string    `json:"sender"`
	SenderName  string    `json:"sender_name"`
	SenderType  string    `json:"sender_type"`
	Message     string    `json:"message"`
	MessageType string    `json:"message_type"`
	CreatedAt   time.Time `json:"created_at"`
}
