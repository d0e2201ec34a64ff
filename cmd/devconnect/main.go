package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go-devconnect-cli/internal/api"
	"go-devconnect-cli/internal/browse"
	"go-devconnect-cli/internal/config"
	"go-devconnect-cli/internal/models"
	"go-devconnect-cli/internal/session"
	"go-devconnect-cli/internal/watch"
)

const usage = `devconnect <command> [flags]

auth:      register-developer, register-company, login, logout, profile
projects:  projects, post-project, edit-project, my-projects
applying:  apply, my-applications, applications
workflow:  assign, assignments, assignment, submit-figma, submit-project, review
chat:      chat, send`

func main() {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(2)
	}

	//cancel everything on Ctrl-C
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg := config.Load()
	store := session.NewStore(cfg.SessionPath)
	client := api.New(cfg.APIBaseURL, store)

	app := &cli{cfg: cfg, store: store, client: client}

	if err := app.run(ctx, os.Args[1], os.Args[2:]); err != nil {
		if errors.Is(err, session.ErrNotLoggedIn) {
			log.Fatal("❌ Please login first (devconnect login)")
		}
		log.Fatalf("❌ %v", err)
	}
}

type cli struct {
	cfg    *config.Config
	store  *session.Store
	client *api.Client
}

func (c *cli) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "register-developer":
		return c.registerDeveloper(ctx, args)
	case "register-company":
		return c.registerCompany(ctx, args)
	case "login":
		return c.login(ctx, args)
	case "logout":
		return c.logout()
	case "profile":
		return c.profile(ctx)
	case "projects":
		return c.projects(ctx, args)
	case "post-project":
		return c.postProject(ctx, args)
	case "edit-project":
		return c.editProject(ctx, args)
	case "my-projects":
		return c.myProjects(ctx)
	case "apply":
		return c.apply(ctx, args)
	case "my-applications":
		return c.myApplications(ctx)
	case "applications":
		return c.applications(ctx, args)
	case "assign":
		return c.assign(ctx, args)
	case "assignments":
		return c.assignments(ctx)
	case "assignment":
		return c.assignment(ctx, args)
	case "submit-figma":
		return c.submitFigma(ctx, args)
	case "submit-project":
		return c.submitProject(ctx, args)
	case "review":
		return c.review(ctx, args)
	case "chat":
		return c.chat(ctx, args)
	case "send":
		return c.send(ctx, args)
	default:
		fmt.Println(usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func (c *cli) registerDeveloper(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register-developer", flag.ExitOnError)
	req := api.RegisterDeveloperRequest{}
	var skills string
	fs.StringVar(&req.Email, "email", "", "account email")
	fs.StringVar(&req.Password, "password", "", "account password")
	fs.StringVar(&req.FirstName, "first-name", "", "first name")
	fs.StringVar(&req.LastName, "last-name", "", "last name")
	fs.StringVar(&skills, "skills", "", "comma-separated skills")
	fs.IntVar(&req.ExperienceYears, "years", 0, "years of experience")
	fs.Float64Var(&req.HourlyRate, "rate", 0, "hourly rate")
	fs.StringVar(&req.Bio, "bio", "", "short bio")
	fs.StringVar(&req.GithubURL, "github", "", "github profile url")
	fs.StringVar(&req.PortfolioURL, "portfolio", "", "portfolio url")
	fs.Parse(args)
	req.Skills = splitCSV(skills)

	user, err := c.client.RegisterDeveloper(ctx, req)
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}
	log.Printf("✅ Registered and logged in as %s %s (developer)", user.FirstName, user.LastName)
	return nil
}

func (c *cli) registerCompany(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register-company", flag.ExitOnError)
	req := api.RegisterCompanyRequest{}
	fs.StringVar(&req.Email, "email", "", "account email")
	fs.StringVar(&req.Password, "password", "", "account password")
	fs.StringVar(&req.FirstName, "first-name", "", "first name")
	fs.StringVar(&req.LastName, "last-name", "", "last name")
	fs.StringVar(&req.CompanyName, "company", "", "company name")
	fs.StringVar(&req.Website, "website", "", "company website")
	fs.StringVar(&req.Industry, "industry", "", "industry")
	fs.StringVar(&req.CompanySize, "size", "", "company size")
	fs.StringVar(&req.Description, "description", "", "company description")
	fs.Parse(args)

	user, err := c.client.RegisterCompany(ctx, req)
	if err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}
	log.Printf("✅ Registered and logged in as %s (company)", user.FirstName)
	return nil
}

func (c *cli) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	var email, password, role string
	fs.StringVar(&email, "email", "", "account email")
	fs.StringVar(&password, "password", "", "account password")
	fs.StringVar(&role, "role", "developer", "developer or company")
	fs.Parse(args)

	user, err := c.client.Login(ctx, api.LoginRequest{
		Email:    email,
		Password: password,
		UserType: models.UserType(role),
	})
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}
	log.Printf("✅ Logged in as %s %s (%s)", user.FirstName, user.LastName, user.UserType)
	return nil
}

func (c *cli) logout() error {
	if err := c.client.Logout(); err != nil {
		return err
	}
	log.Println("👋 Logged out")
	return nil
}

func (c *cli) profile(ctx context.Context) error {
	user, err := c.client.Profile(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch profile: %w", err)
	}
	fmt.Printf("%s %s <%s> (%s)\n", user.FirstName, user.LastName, user.Email, user.UserType)
	return nil
}

// projects is the developer browse view: filter by tech, sort, and flag
// projects already applied to.
func (c *cli) projects(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("projects", flag.ExitOnError)
	var tech, order string
	fs.StringVar(&tech, "tech", "", "tech-stack filter tag")
	fs.StringVar(&order, "sort", browse.OrderLatest, "latest or oldest")
	fs.Parse(args)

	projects, err := c.client.Projects(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch projects: %w", err)
	}

	//the applied marks are optional enrichment: a developer session is
	//needed for it, and browsing still works when the call fails
	var apps []models.Application
	if role, err := c.store.Role(); err == nil && role == models.UserTypeDeveloper {
		if mine, err := c.client.MyApplications(ctx); err == nil {
			apps = mine
		} else {
			log.Printf("⚠️ Could not load your applications: %v", err)
		}
	}

	filtered := browse.SortByCreated(browse.FilterByTech(projects, tech), order)
	items := browse.MarkApplied(filtered, apps)

	fmt.Printf("%d project(s)", len(items))
	if tags := browse.TechStacks(projects); len(tags) > 0 {
		fmt.Printf(" — known tags: %s", strings.Join(tags, ", "))
	}
	fmt.Println()
	for _, item := range items {
		printProjectItem(item)
	}
	return nil
}

func (c *cli) postProject(ctx context.Context, args []string) error {
	req, tech, fs := projectFlags("post-project")
	fs.Parse(args)
	req.TechStack = splitCSV(*tech)

	project, err := c.client.CreateProject(ctx, *req)
	if err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	log.Printf("✅ Project #%d posted", project.ID)
	printProject(project)
	return nil
}

func (c *cli) editProject(ctx context.Context, args []string) error {
	req, tech, fs := projectFlags("edit-project")
	id := fs.Int("id", 0, "project id")
	fs.Parse(args)
	req.TechStack = splitCSV(*tech)
	if *id == 0 {
		return fmt.Errorf("-id is required")
	}

	project, err := c.client.EditProject(ctx, *id, *req)
	if err != nil {
		return fmt.Errorf("failed to edit project: %w", err)
	}
	log.Printf("✅ Project #%d updated", project.ID)
	printProject(project)
	return nil
}

func projectFlags(name string) (*api.ProjectRequest, *string, *flag.FlagSet) {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	req := &api.ProjectRequest{}
	tech := fs.String("tech", "", "comma-separated tech stack")
	fs.StringVar(&req.Title, "title", "", "project title")
	fs.StringVar(&req.Description, "description", "", "project description")
	fs.StringVar(&req.Category, "category", "", "category")
	fs.Float64Var(&req.BudgetMin, "budget-min", 0, "minimum budget")
	fs.Float64Var(&req.BudgetMax, "budget-max", 0, "maximum budget")
	fs.StringVar(&req.Complexity, "complexity", "medium", "complexity")
	return req, tech, fs
}

func (c *cli) apply(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("apply", flag.ExitOnError)
	var id int
	req := api.ApplyRequest{}
	fs.IntVar(&id, "id", 0, "project id")
	fs.StringVar(&req.CoverLetter, "cover", "", "cover letter")
	fs.Float64Var(&req.ProposedRate, "rate", 0, "proposed hourly rate")
	fs.StringVar(&req.EstimatedDuration, "duration", "", "estimated duration")
	fs.Parse(args)
	if id == 0 {
		return fmt.Errorf("-id is required")
	}

	app, err := c.client.Apply(ctx, id, req)
	if err != nil {
		return fmt.Errorf("failed to apply: %w", err)
	}
	log.Printf("✅ Applied to project #%d (application #%d)", id, app.ID)
	return nil
}

func (c *cli) myApplications(ctx context.Context) error {
	apps, err := c.client.MyApplications(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch applications: %w", err)
	}
	fmt.Printf("%d application(s)\n", len(apps))
	for _, app := range apps {
		printApplication(app)
	}
	return nil
}

func (c *cli) applications(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("applications", flag.ExitOnError)
	project := fs.Int("project", 0, "project id")
	fs.Parse(args)
	if *project == 0 {
		return fmt.Errorf("-project is required")
	}

	apps, err := c.client.ProjectApplications(ctx, *project)
	if err != nil {
		return fmt.Errorf("failed to fetch applications: %w", err)
	}
	fmt.Printf("%d application(s) for project #%d\n", len(apps), *project)
	for _, app := range apps {
		printApplication(app)
	}
	return nil
}

func (c *cli) myProjects(ctx context.Context) error {
	projects, err := c.client.CompanyProjects(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch projects: %w", err)
	}
	fmt.Printf("%d project(s)\n", len(projects))
	for _, p := range projects {
		printProject(p)
	}
	return nil
}

func (c *cli) assign(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("assign", flag.ExitOnError)
	application := fs.Int("application", 0, "application id")
	fs.Parse(args)
	if *application == 0 {
		return fmt.Errorf("-application is required")
	}

	created, err := c.client.AssignProject(ctx, *application)
	if err != nil {
		return fmt.Errorf("failed to assign project: %w", err)
	}
	log.Printf("✅ Assignment #%d created", created.ID)
	//never trust the mutation response: re-fetch before rendering
	return c.showAssignment(ctx, created.ID)
}

func (c *cli) assignments(ctx context.Context) error {
	role, err := c.store.Role()
	if err != nil {
		return err
	}

	var assignments []models.Assignment
	if role == models.UserTypeCompany {
		assignments, err = c.client.CompanyAssignments(ctx)
	} else {
		assignments, err = c.client.DeveloperAssignments(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to fetch assignments: %w", err)
	}

	fmt.Printf("%d assignment(s)\n", len(assignments))
	now := time.Now()
	for _, a := range assignments {
		printAssignment(a, role, now)
	}
	return nil
}

func (c *cli) assignment(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("assignment", flag.ExitOnError)
	id := fs.Int("id", 0, "assignment id")
	fs.Parse(args)
	if *id == 0 {
		return fmt.Errorf("-id is required")
	}
	return c.showAssignment(ctx, *id)
}

func (c *cli) showAssignment(ctx context.Context, id int) error {
	role, err := c.store.Role()
	if err != nil {
		return err
	}
	a, err := c.client.Assignment(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch assignment: %w", err)
	}
	printAssignment(a, role, time.Now())
	return nil
}

func (c *cli) submitFigma(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("submit-figma", flag.ExitOnError)
	var id int
	var url, description string
	fs.IntVar(&id, "id", 0, "assignment id")
	fs.StringVar(&url, "url", "", "figma url")
	fs.StringVar(&description, "description", "", "design notes")
	fs.Parse(args)
	if id == 0 || url == "" {
		return fmt.Errorf("-id and -url are required")
	}

	if err := c.client.SubmitFigma(ctx, id, url, description); err != nil {
		return fmt.Errorf("figma submission failed: %w", err)
	}
	log.Println("✅ Figma designs submitted")
	return c.showAssignment(ctx, id)
}

func (c *cli) submitProject(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("submit-project", flag.ExitOnError)
	var id int
	var docs, github, links, extra string
	req := api.SubmissionRequest{}
	fs.IntVar(&id, "id", 0, "assignment id")
	fs.StringVar(&req.Description, "description", "", "what was delivered")
	fs.StringVar(&docs, "docs", "", "comma-separated documentation links")
	fs.StringVar(&github, "github", "", "comma-separated github links")
	fs.StringVar(&links, "links", "", "comma-separated live project links")
	fs.StringVar(&extra, "extra", "", "comma-separated additional links")
	fs.Parse(args)
	if id == 0 {
		return fmt.Errorf("-id is required")
	}
	req.DocumentationLinks = splitCSV(docs)
	req.GithubLinks = splitCSV(github)
	req.ProjectLinks = splitCSV(links)
	req.AdditionalLinks = splitCSV(extra)

	if err := c.client.SubmitProject(ctx, id, req); err != nil {
		return fmt.Errorf("project submission failed: %w", err)
	}
	log.Println("✅ Project submitted for review")
	return c.showAssignment(ctx, id)
}

func (c *cli) review(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("review", flag.ExitOnError)
	var id int
	var approve, revise bool
	var feedback string
	fs.IntVar(&id, "id", 0, "assignment id")
	fs.BoolVar(&approve, "approve", false, "approve the submission")
	fs.BoolVar(&revise, "revise", false, "request a revision")
	fs.StringVar(&feedback, "feedback", "", "feedback for the developer")
	fs.Parse(args)
	if id == 0 {
		return fmt.Errorf("-id is required")
	}
	if approve == revise {
		return fmt.Errorf("pass exactly one of -approve or -revise")
	}

	if err := c.client.ReviewSubmission(ctx, id, approve, feedback); err != nil {
		return fmt.Errorf("review failed: %w", err)
	}
	if approve {
		log.Println("✅ Submission approved")
	} else {
		log.Println("🔁 Revision requested")
	}
	return c.showAssignment(ctx, id)
}

func (c *cli) chat(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("chat", flag.ExitOnError)
	var id int
	var follow bool
	fs.IntVar(&id, "id", 0, "assignment id")
	fs.BoolVar(&follow, "follow", false, "keep polling for new messages")
	fs.Parse(args)
	if id == 0 {
		return fmt.Errorf("-id is required")
	}

	messages, err := c.client.ChatMessages(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch chat: %w", err)
	}
	lastID := 0
	for _, m := range messages {
		printMessage(m)
		if m.ID > lastID {
			lastID = m.ID
		}
	}
	if !follow {
		return nil
	}

	//poll until Ctrl-C; the poller stops cleanly with the context
	log.Printf("👀 Following chat for assignment #%d (every %s)", id, c.cfg.PollInterval())
	poller := watch.New("chat", c.cfg.PollInterval(), func(ctx context.Context) error {
		messages, err := c.client.ChatMessages(ctx, id)
		if err != nil {
			return err
		}
		for _, m := range messages {
			if m.ID > lastID {
				printMessage(m)
				lastID = m.ID
			}
		}
		return nil
	})
	poller.Run(ctx)
	return nil
}

func (c *cli) send(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("send", flag.ExitOnError)
	var id int
	var message string
	fs.IntVar(&id, "id", 0, "assignment id")
	fs.StringVar(&message, "message", "", "message text")
	fs.Parse(args)
	if id == 0 || message == "" {
		return fmt.Errorf("-id and -message are required")
	}

	if _, err := c.client.SendMessage(ctx, id, message); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	//re-fetch so the rendered transcript is the server's, not ours
	messages, err := c.client.ChatMessages(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to fetch chat: %w", err)
	}
	for _, m := range messages {
		printMessage(m)
	}
	return nil
}

func splitCSV(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
