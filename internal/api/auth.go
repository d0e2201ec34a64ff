package api

import (
	"context"
	"fmt"

	"go-devconnect-cli/internal/models"
)

type RegisterDeveloperRequest struct {
	Email           string   `json:"email"`
	Password        string   `json:"password"`
	FirstName       string   `json:"first_name"`
	LastName        string   `json:"last_name"`
	Skills          []string `json:"skills,omitempty"`
	ExperienceYears int      `json:"experience_years,omitempty"`
	HourlyRate      float64  `json:"hourly_rate,omitempty"`
	Bio             string   `json:"bio,omitempty"`
	GithubURL       string   `json:"github_url,omitempty"`
	PortfolioURL    string   `json:"portfolio_url,omitempty"`
}

type RegisterCompanyRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	CompanyName string `json:"company_name"`
	Website     string `json:"website,omitempty"`
	Industry    string `json:"industry,omitempty"`
	CompanySize string `json:"company_size,omitempty"`
	Description string `json:"description,omitempty"`
}

type LoginRequest struct {
	Email    string          `json:"email"`
	Password string          `json:"password"`
	UserType models.UserType `json:"userType"`
}

type authResponse struct {
	User    models.Profile `json:"user"`
	Session models.Session `json:"session"`
}

// RegisterDeveloper creates a developer account and persists the
// returned session, so registration doubles as login.
func (c *Client) RegisterDeveloper(ctx context.Context, req RegisterDeveloperRequest) (models.Profile, error) {
	var resp authResponse
	if err := c.postAnon(ctx, "/auth/register/developer/", req, &resp); err != nil {
		return models.Profile{}, err
	}
	return resp.User, c.persist(resp)
}

func (c *Client) RegisterCompany(ctx context.Context, req RegisterCompanyRequest) (models.Profile, error) {
	var resp authResponse
	if err := c.postAnon(ctx, "/auth/register/company/", req, &resp); err != nil {
		return models.Profile{}, err
	}
	return resp.User, c.persist(resp)
}

func (c *Client) Login(ctx context.Context, req LoginRequest) (models.Profile, error) {
	var resp authResponse
	if err := c.postAnon(ctx, "/auth/login/", req, &resp); err != nil {
		return models.Profile{}, err
	}
	return resp.User, c.persist(resp)
}

// Logout only clears local state; the token is left to expire server-side.
func (c *Client) Logout() error {
	return c.sessions.Clear()
}

func (c *Client) Profile(ctx context.Context) (models.Profile, error) {
	var resp struct {
		User models.Profile `json:"user"`
	}
	if err := c.get(ctx, "/auth/profile/", &resp); err != nil {
		return models.Profile{}, err
	}
	return resp.User, nil
}

func (c *Client) persist(resp authResponse) error {
	if resp.Session.AccessToken == "" {
		return fmt.Errorf("server returned no session token")
	}
	if err := c.sessions.Save(resp.Session, resp.User); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}
	return nil
}
