package api

import (
	"context"
	"fmt"

	"go-devconnect-cli/internal/models"
)

type ProjectRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	BudgetMin   float64  `json:"budget_min"`
	BudgetMax   float64  `json:"budget_max"`
	TechStack   []string `json:"tech_stack"`
	Complexity  string   `json:"complexity"`
}

type ApplyRequest struct {
	CoverLetter       string  `json:"cover_letter"`
	ProposedRate      float64 `json:"proposed_rate"`
	EstimatedDuration string  `json:"estimated_duration"`
}

type projectsResponse struct {
	Projects []models.Project `json:"projects"`
}

type applicationsResponse struct {
	Applications []models.Application `json:"applications"`
}

// Projects lists all open projects (the browse view's source).
func (c *Client) Projects(ctx context.Context) ([]models.Project, error) {
	var resp projectsResponse
	if err := c.get(ctx, "/auth/projects/", &resp); err != nil {
		return nil, err
	}
	return resp.Projects, nil
}

// CompanyProjects lists the projects posted by the logged-in company.
func (c *Client) CompanyProjects(ctx context.Context) ([]models.Project, error) {
	var resp projectsResponse
	if err := c.get(ctx, "/auth/company/projects/", &resp); err != nil {
		return nil, err
	}
	return resp.Projects, nil
}

func (c *Client) CreateProject(ctx context.Context, req ProjectRequest) (models.Project, error) {
	var project models.Project
	if err := c.post(ctx, "/auth/company/projects/create/", req, &project); err != nil {
		return models.Project{}, err
	}
	return project, nil
}

func (c *Client) EditProject(ctx context.Context, projectID int, req ProjectRequest) (models.Project, error) {
	var project models.Project
	path := fmt.Sprintf("/auth/company/projects/%d/edit/", projectID)
	if err := c.post(ctx, path, req, &project); err != nil {
		return models.Project{}, err
	}
	return project, nil
}

// Apply submits a developer application to an open project.
func (c *Client) Apply(ctx context.Context, projectID int, req ApplyRequest) (models.Application, error) {
	var app models.Application
	path := fmt.Sprintf("/auth/projects/%d/apply/", projectID)
	if err := c.post(ctx, path, req, &app); err != nil {
		return models.Application{}, err
	}
	return app, nil
}

// ProjectApplications lists applications to one of the company's
// projects, including any ML match scores.
func (c *Client) ProjectApplications(ctx context.Context, projectID int) ([]models.Application, error) {
	var resp applicationsResponse
	path := fmt.Sprintf("/auth/company/projects/%d/applications/", projectID)
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Applications, nil
}

// MyApplications lists the logged-in developer's applications. The
// browse view uses it to suppress re-applying.
func (c *Client) MyApplications(ctx context.Context) ([]models.Application, error) {
	var resp applicationsResponse
	if err := c.get(ctx, "/projects/applications/", &resp); err != nil {
		return nil, err
	}
	return resp.Applications, nil
}
