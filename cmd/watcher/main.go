package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go-devconnect-cli/internal/api"
	"go-devconnect-cli/internal/browse"
	"go-devconnect-cli/internal/config"
	"go-devconnect-cli/internal/dedup"
	"go-devconnect-cli/internal/lifecycle"
	"go-devconnect-cli/internal/models"
	"go-devconnect-cli/internal/reporter"
	"go-devconnect-cli/internal/session"
	"go-devconnect-cli/internal/watch"
)

// The watcher is the long-running counterpart of the CLI: it polls the
// API on fixed intervals, drops everything it has reported before, and
// pushes the rest to Telegram.
func main() {
	//load config
	cfg := config.Load()
	cfg.RequireTelegram()

	store := session.NewStore(cfg.SessionPath)
	role, err := store.Role()
	if err != nil {
		log.Fatalf("❌ Please login first (devconnect login): %v", err)
	}
	userID, err := store.UserID()
	if err != nil {
		log.Fatalf("❌ Could not resolve user id from session: %v", err)
	}

	client := api.New(cfg.APIBaseURL, store)

	//init telegram reporter
	tg, err := reporter.NewTelegramReporter(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to init Telegram reporter: %v", err)
	}
	log.Println("🤖 Telegram reporter initialized.")

	//load seen-notification cache
	cache := dedup.NewSeenCache(cfg.CachePath)

	//stop everything on Ctrl-C / SIGTERM
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log.Printf("🚀 Starting DevConnect watcher (%s)...", role)

	w := &watcher{
		client: client,
		tg:     tg,
		cache:  cache,
		role:   role,
		userID: userID,
	}

	assignmentPoller := watch.New("assignments", cfg.PollInterval(), w.pollAssignments)

	var slowPoller *watch.Poller
	if role == models.UserTypeDeveloper {
		slowPoller = watch.New("projects", cfg.ProjectPollInterval(), func(ctx context.Context) error {
			return w.pollProjects(ctx, cfg.Keywords)
		})
	} else {
		slowPoller = watch.New("applications", cfg.ProjectPollInterval(), w.pollApplications)
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		assignmentPoller.Run(ctx)
	}()
	go func() {
		defer wg.Done()
		slowPoller.Run(ctx)
	}()

	<-ctx.Done()
	wg.Wait()
	log.Println("🏁 Watcher stopped.")
}

type watcher struct {
	client *api.Client
	tg     *reporter.TelegramReporter
	cache  *dedup.SeenCache
	role   models.UserType
	userID string
}

// pollAssignments watches lifecycle changes, chat traffic and deadline
// bands across every assignment visible to this user.
func (w *watcher) pollAssignments(ctx context.Context) error {
	var assignments []models.Assignment
	var err error
	if w.role == models.UserTypeCompany {
		assignments, err = w.client.CompanyAssignments(ctx)
	} else {
		assignments, err = w.client.DeveloperAssignments(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to fetch assignments: %w", err)
	}

	var sent []string
	now := time.Now()
	for _, a := range assignments {
		sent = append(sent, w.checkLifecycle(a)...)
		sent = append(sent, w.checkDeadlines(a, now)...)
		keys, err := w.checkChat(ctx, a)
		if err != nil {
			log.Printf("⚠️ Chat check failed for assignment #%d: %v", a.ID, err)
		}
		sent = append(sent, keys...)
	}
	if len(sent) > 0 {
		w.cache.Add(sent)
	}
	return nil
}

func (w *watcher) checkLifecycle(a models.Assignment) []string {
	var sent []string

	//company cares about incoming submissions
	if w.role == models.UserTypeCompany {
		if a.FigmaSubmission != nil {
			if key := dedup.FigmaKey(a.ID, a.FigmaSubmission.SubmittedAt); !w.cache.IsSeen(key) {
				if err := w.tg.SendLifecycle(a); err != nil {
					log.Printf("⚠️ Failed to send to Telegram: %v", err)
				} else {
					sent = append(sent, key)
				}
			}
		}
		if a.Submission != nil && a.Submission.Approved == nil {
			if key := dedup.SubmissionKey(a.ID, a.Submission.SubmittedAt); !w.cache.IsSeen(key) {
				if err := w.tg.SendLifecycle(a); err != nil {
					log.Printf("⚠️ Failed to send to Telegram: %v", err)
				} else {
					sent = append(sent, key)
				}
			}
		}
		return sent
	}

	//developer cares about verdicts
	if a.Submission != nil && a.Submission.Approved != nil && a.Submission.ReviewedAt != nil {
		key := dedup.ReviewKey(a.ID, *a.Submission.Approved, *a.Submission.ReviewedAt)
		if !w.cache.IsSeen(key) {
			if err := w.tg.SendLifecycle(a); err != nil {
				log.Printf("⚠️ Failed to send to Telegram: %v", err)
			} else {
				sent = append(sent, key)
			}
		}
	}
	return sent
}

// checkDeadlines alerts once per band: entering warning fires, and the
// later slide into overdue fires again.
func (w *watcher) checkDeadlines(a models.Assignment, now time.Time) []string {
	if lifecycle.Terminal(a) {
		return nil
	}

	var sent []string
	check := func(label string, deadline time.Time, pending bool) {
		if !pending {
			return
		}
		days := lifecycle.DaysRemaining(deadline, now)
		band := lifecycle.BandFor(days)
		if band == lifecycle.BandNormal {
			return
		}
		key := fmt.Sprintf("deadline:%d:%s:%s", a.ID, label, band)
		if w.cache.IsSeen(key) {
			return
		}
		if err := w.tg.SendDeadline(a, label, days); err != nil {
			log.Printf("⚠️ Failed to send to Telegram: %v", err)
			return
		}
		sent = append(sent, key)
	}

	check("figma", a.FigmaDeadline, !a.FigmaSubmitted)
	check("submission", a.SubmissionDeadline, !a.ProjectSubmitted)
	return sent
}

func (w *watcher) checkChat(ctx context.Context, a models.Assignment) ([]string, error) {
	messages, err := w.client.ChatMessages(ctx, a.ID)
	if err != nil {
		return nil, err
	}

	var sent []string
	for _, m := range messages {
		//own messages are not news
		if m.SenderID == w.userID && m.MessageType != "system" {
			continue
		}
		key := dedup.ChatKey(a.ID, m.ID)
		if w.cache.IsSeen(key) {
			continue
		}
		if err := w.tg.SendChatMessage(a, m); err != nil {
			log.Printf("⚠️ Failed to send to Telegram: %v", err)
			continue
		}
		sent = append(sent, key)
	}
	return sent, nil
}

// pollProjects alerts a developer about fresh open projects matching the
// configured keywords.
func (w *watcher) pollProjects(ctx context.Context, keywords []string) error {
	projects, err := w.client.Projects(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch projects: %w", err)
	}

	matched := projects
	if len(keywords) > 0 {
		seen := make(map[int]bool)
		matched = nil
		for _, kw := range keywords {
			for _, p := range browse.FilterByTech(projects, kw) {
				if !seen[p.ID] {
					seen[p.ID] = true
					matched = append(matched, p)
				}
			}
		}
	}

	var sent []string
	for _, p := range matched {
		key := dedup.ProjectKey(p.ID)
		if w.cache.IsSeen(key) {
			continue
		}
		if err := w.tg.SendProject(p); err != nil {
			log.Printf("⚠️ Failed to send to Telegram: %v", err)
			continue
		}
		sent = append(sent, key)
	}
	if len(sent) > 0 {
		log.Printf("📊 Reported %d new matching project(s)", len(sent))
		w.cache.Add(sent)
	}
	return nil
}

// pollApplications alerts a company about fresh applications to its
// open projects.
func (w *watcher) pollApplications(ctx context.Context) error {
	projects, err := w.client.CompanyProjects(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch company projects: %w", err)
	}

	var sent []string
	for _, p := range projects {
		if p.ApplicationsCount == 0 {
			continue
		}
		apps, err := w.client.ProjectApplications(ctx, p.ID)
		if err != nil {
			log.Printf("⚠️ Failed to fetch applications for project #%d: %v", p.ID, err)
			continue
		}
		for _, app := range apps {
			key := dedup.ApplicationKey(app.ID)
			if w.cache.IsSeen(key) {
				continue
			}
			if app.ProjectTitle == "" {
				app.ProjectTitle = p.Title
			}
			if err := w.tg.SendApplication(app); err != nil {
				log.Printf("⚠️ Failed to send to Telegram: %v", err)
				continue
			}
			sent = append(sent, key)
		}
	}
	if len(sent) > 0 {
		log.Printf("📨 Reported %d new application(s)", len(sent))
		w.cache.Add(sent)
	}
	return nil
}
