package api

import (
	"context"
	"fmt"

	"go-devconnect-cli/internal/models"
)

type SubmissionRequest struct {
	Description        string   `json:"description"`
	DocumentationLinks []string `json:"documentation_links"`
	GithubLinks        []string `json:"github_links"`
	ProjectLinks       []string `json:"project_links"`
	AdditionalLinks    []string `json:"additional_links"`
}

// AssignProject turns a pending application into an assignment. The
// server enforces at most one assignment per project and flips the
// application to selected.
func (c *Client) AssignProject(ctx context.Context, applicationID int) (models.Assignment, error) {
	var assignment models.Assignment
	body := map[string]int{"application_id": applicationID}
	if err := c.post(ctx, "/projects/assignments/assign_project/", body, &assignment); err != nil {
		return models.Assignment{}, err
	}
	return assignment, nil
}

func (c *Client) DeveloperAssignments(ctx context.Context) ([]models.Assignment, error) {
	var assignments []models.Assignment
	if err := c.get(ctx, "/projects/assignments/developer_assignments/", &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

func (c *Client) CompanyAssignments(ctx context.Context) ([]models.Assignment, error) {
	var assignments []models.Assignment
	if err := c.get(ctx, "/projects/assignments/company_assignments/", &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

// Assignment re-fetches a single assignment. Callers must do this after
// every mutating action before rendering the next state.
func (c *Client) Assignment(ctx context.Context, assignmentID int) (models.Assignment, error) {
	var assignment models.Assignment
	path := fmt.Sprintf("/projects/assignments/%d/", assignmentID)
	if err := c.get(ctx, path, &assignment); err != nil {
		return models.Assignment{}, err
	}
	return assignment, nil
}

func (c *Client) SubmitFigma(ctx context.Context, assignmentID int, figmaURL, description string) error {
	body := map[string]string{
		"figma_url":   figmaURL,
		"description": description,
	}
	path := fmt.Sprintf("/projects/assignments/%d/submit_figma/", assignmentID)
	return c.post(ctx, path, body, nil)
}

func (c *Client) SubmitProject(ctx context.Context, assignmentID int, req SubmissionRequest) error {
	path := fmt.Sprintf("/projects/assignments/%d/submit_project/", assignmentID)
	return c.post(ctx, path, req, nil)
}

// ReviewSubmission approves the submission or sends it back for
// revision with feedback.
func (c *Client) ReviewSubmission(ctx context.Context, assignmentID int, approved bool, feedback string) error {
	body := map[string]interface{}{
		"approved": approved,
		"feedback": feedback,
	}
	path := fmt.Sprintf("/projects/assignments/%d/review_submission/", assignmentID)
	return c.post(ctx, path, body, nil)
}
