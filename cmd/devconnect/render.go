package main

import (
	"fmt"
	"strings"
	"time"

	"go-devconnect-cli/internal/browse"
	"go-devconnect-cli/internal/lifecycle"
	"go-devconnect-cli/internal/models"
	"go-devconnect-cli/internal/score"
)

// deadlineText mirrors the deadline banding: overdue is critical, 1..3
// days is a warning, anything later is normal.
func deadlineText(days int) string {
	switch lifecycle.BandFor(days) {
	case lifecycle.BandOverdue:
		return "⛔ Overdue"
	case lifecycle.BandWarning:
		return fmt.Sprintf("⚠️ %d days left", days)
	default:
		return fmt.Sprintf("%d days left", days)
	}
}

func printProjectItem(item browse.Item) {
	applied := ""
	if item.Applied {
		applied = " [already applied]"
	}
	fmt.Printf("#%d %s%s\n", item.ID, item.Title, applied)
	fmt.Printf("   %s | $%.0f-$%.0f | %s\n", item.Category, item.BudgetMin, item.BudgetMax, item.Complexity)
	fmt.Printf("   🛠 %s\n", strings.Join(item.TechStack, ", "))
	fmt.Printf("   status: %s, applications: %d, posted: %s\n",
		item.Status, item.ApplicationsCount, item.CreatedAt.Format("2006-01-02"))
}

func printProject(p models.Project) {
	printProjectItem(browse.Item{Project: p})
}

func printApplication(app models.Application) {
	scoreText := score.Badge(app.MatchScore)
	if app.MatchScore != nil {
		scoreText = fmt.Sprintf("%s (%.0f%%)", scoreText, *app.MatchScore)
	}
	fmt.Printf("#%d %s — %s\n", app.ID, app.DeveloperName, app.ProjectTitle)
	fmt.Printf("   🤖 %s | $%.0f/hr | %s | status: %s\n",
		scoreText, app.ProposedRate, app.EstimatedDuration, app.Status)
	if app.SkillMatchScore != nil || app.ExperienceFitScore != nil || app.PortfolioQualityScore != nil {
		fmt.Printf("   sub-scores: skills %s, experience %s, portfolio %s\n",
			percentOrNA(app.SkillMatchScore), percentOrNA(app.ExperienceFitScore), percentOrNA(app.PortfolioQualityScore))
	}
	if len(app.MatchingSkills) > 0 {
		fmt.Printf("   ✅ matching: %s\n", strings.Join(app.MatchingSkills, ", "))
	}
	if len(app.MissingSkills) > 0 {
		fmt.Printf("   ❌ missing: %s\n", strings.Join(app.MissingSkills, ", "))
	}
	if app.CoverLetter != "" {
		fmt.Printf("   📄 %s\n", app.CoverLetter)
	}
}

func percentOrNA(v *float64) string {
	if v == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.0f%%", *v)
}

func printAssignment(a models.Assignment, role models.UserType, now time.Time) {
	status := lifecycle.StatusOf(a)
	fmt.Printf("#%d %s (%s ↔ %s)\n", a.ID, a.ProjectTitle, a.CompanyName, a.DeveloperName)
	fmt.Printf("   status: %s\n", status.Label())

	figmaDays := lifecycle.DaysRemaining(a.FigmaDeadline, now)
	submissionDays := lifecycle.DaysRemaining(a.SubmissionDeadline, now)
	fmt.Printf("   🎨 figma deadline: %s (%s)\n", a.FigmaDeadline.Format("2006-01-02"), deadlineText(figmaDays))
	fmt.Printf("   📦 submission deadline: %s (%s)\n", a.SubmissionDeadline.Format("2006-01-02"), deadlineText(submissionDays))

	if a.Submission != nil {
		printSubmission(*a.Submission)
	}

	if actions := lifecycle.ActionsFor(a, role); len(actions) > 0 {
		labels := make([]string, 0, len(actions))
		for _, action := range actions {
			labels = append(labels, string(action))
		}
		fmt.Printf("   ▶️ available actions: %s\n", strings.Join(labels, ", "))
	} else if lifecycle.Terminal(a) {
		fmt.Println("   🏁 approved, nothing left to do")
	}
}

func printSubmission(s models.Submission) {
	fmt.Printf("   📝 submission: %s\n", s.Description)
	printLinks("docs", s.DocumentationLinks)
	printLinks("github", s.GithubLinks)
	printLinks("live", s.ProjectLinks)
	printLinks("other", s.AdditionalLinks)
	if s.Approved == nil {
		fmt.Println("   ⏳ review pending")
	} else if *s.Approved {
		fmt.Println("   ✅ approved")
	} else {
		fmt.Printf("   🔁 needs revision — %s\n", s.CompanyFeedback)
	}
}

func printLinks(label string, links []string) {
	if len(links) > 0 {
		fmt.Printf("      %s: %s\n", label, strings.Join(links, ", "))
	}
}

func printMessage(m models.ChatMessage) {
	prefix := m.SenderName
	if m.MessageType == "system" {
		prefix = "system"
	}
	fmt.Printf("[%s] %s: %s\n", m.CreatedAt.Format("15:04"), prefix, m.Message)
}
