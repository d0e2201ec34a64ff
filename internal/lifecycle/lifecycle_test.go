package lifecycle

import (
	"testing"
	"time"

	"go-devconnect-cli/internal/models"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool { return &b }

func assignment(figma, project bool, approved *bool) models.Assignment {
	a := models.Assignment{
		FigmaSubmitted:   figma,
		ProjectSubmitted: project,
	}
	if project {
		a.Submission = &models.Submission{Approved: approved}
	}
	return a
}

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name       string
		assignment models.Assignment
		expected   Status
		label      string
	}{
		{
			name:       "nothing submitted",
			assignment: assignment(false, false, nil),
			expected:   StatusAwaitingFigma,
			label:      "Awaiting Figma",
		},
		{
			name:       "figma in, project pending",
			assignment: assignment(true, false, nil),
			expected:   StatusAwaitingProject,
			label:      "Awaiting Project",
		},
		{
			name:       "submitted, review pending",
			assignment: assignment(true, true, nil),
			expected:   StatusUnderReview,
			label:      "Under Review",
		},
		{
			name:       "approved",
			assignment: assignment(true, true, boolPtr(true)),
			expected:   StatusApproved,
			label:      "Approved",
		},
		{
			name:       "rejected",
			assignment: assignment(true, true, boolPtr(false)),
			expected:   StatusNeedsRevision,
			label:      "Needs Revision",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, StatusOf(tt.assignment))
			assert.Equal(t, tt.label, StatusOf(tt.assignment).Label())
		})
	}
}

// a submission record without a verdict must not read as reviewed even
// when project_submitted is already true
func TestStatusOf_MissingSubmissionRecord(t *testing.T) {
	a := models.Assignment{FigmaSubmitted: true, ProjectSubmitted: true}
	assert.Equal(t, StatusUnderReview, StatusOf(a))
}

func TestActionsFor(t *testing.T) {
	dev := models.UserTypeDeveloper
	company := models.UserTypeCompany

	tests := []struct {
		name       string
		assignment models.Assignment
		role       models.UserType
		expected   []Action
	}{
		{"developer submits figma first", assignment(false, false, nil), dev, []Action{ActionSubmitFigma}},
		{"company waits for figma", assignment(false, false, nil), company, nil},
		{"developer submits project after figma", assignment(true, false, nil), dev, []Action{ActionSubmitProject}},
		{"company waits for project", assignment(true, false, nil), company, nil},
		{"company reviews", assignment(true, true, nil), company, []Action{ActionReview}},
		{"developer waits for review", assignment(true, true, nil), dev, nil},
		{"approved is terminal for developer", assignment(true, true, boolPtr(true)), dev, nil},
		{"approved is terminal for company", assignment(true, true, boolPtr(true)), company, nil},
		{"rejection re-enables resubmission", assignment(true, true, boolPtr(false)), dev, []Action{ActionSubmitProject, ActionChat}},
		{"rejection leaves company in chat", assignment(true, true, boolPtr(false)), company, []Action{ActionChat}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ActionsFor(tt.assignment, tt.role))
		})
	}
}

func TestTerminal(t *testing.T) {
	assert.True(t, Terminal(assignment(true, true, boolPtr(true))))
	assert.False(t, Terminal(assignment(true, true, boolPtr(false))))
	assert.False(t, Terminal(assignment(false, false, nil)))
}

func TestDaysRemaining(t *testing.T) {
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		deadline time.Time
		expected int
	}{
		{"past deadline clamps to zero", now.Add(-48 * time.Hour), 0},
		{"exact now is zero", now, 0},
		{"partial day rounds up", now.Add(6 * time.Hour), 1},
		{"one full day", now.Add(24 * time.Hour), 1},
		{"just over a day rounds up", now.Add(25 * time.Hour), 2},
		{"a week out", now.Add(7 * 24 * time.Hour), 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DaysRemaining(tt.deadline, now))
		})
	}
}

func TestBandFor(t *testing.T) {
	tests := []struct {
		days     int
		expected Band
	}{
		{-1, BandOverdue},
		{0, BandOverdue},
		{1, BandWarning},
		{3, BandWarning},
		{4, BandNormal},
		{30, BandNormal},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.expected, BandFor(tt.days), "days=%d", tt.days)
	}
}

func TestBandString(t *testing.T) {
	assert.Equal(t, "overdue", BandOverdue.String())
	assert.Equal(t, "warning", BandWarning.String())
	assert.Equal(t, "normal", BandNormal.String())
}

// walks the whole workflow the way the views see it: each step is the
// state a re-fetch would return after the corresponding action succeeds
func TestLifecycleWalk(t *testing.T) {
	steps := []struct {
		after    string
		state    models.Assignment
		expected Status
	}{
		{"assignment created", assignment(false, false, nil), StatusAwaitingFigma},
		{"figma submitted", assignment(true, false, nil), StatusAwaitingProject},
		{"project submitted", assignment(true, true, nil), StatusUnderReview},
		{"revision requested", assignment(true, true, boolPtr(false)), StatusNeedsRevision},
		{"project resubmitted", assignment(true, true, nil), StatusUnderReview},
		{"approved", assignment(true, true, boolPtr(true)), StatusApproved},
	}

	for _, step := range steps {
		assert.Equalf(t, step.expected, StatusOf(step.state), "after %s", step.after)
	}

	//the revision round re-enables resubmission, approval ends it
	revised := assignment(true, true, boolPtr(false))
	assert.Contains(t, ActionsFor(revised, models.UserTypeDeveloper), ActionSubmitProject)
	done := assignment(true, true, boolPtr(true))
	assert.Empty(t, ActionsFor(done, models.UserTypeDeveloper))
	assert.Empty(t, ActionsFor(done, models.UserTypeCompany))
}
