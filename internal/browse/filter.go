// Client-side narrowing of an already-fetched project list. Everything
// here is recomputed per fetch; nothing is cached across views.

package browse

import (
	"sort"
	"strings"
	"unicode"

	"go-devconnect-cli/internal/models"

	mapset "github.com/deckarep/golang-set/v2"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	OrderLatest = "latest"
	OrderOldest = "oldest"
)

func normalizeText(str string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, str)
	return strings.ToLower(result)
}

// FilterByTech keeps projects whose tech stack matches the selected tag.
// Matching is a case-insensitive substring check in either direction
// ("react" matches "React Native", "React Native" matches "react").
// An empty tag keeps everything.
func FilterByTech(projects []models.Project, tag string) []models.Project {
	if strings.TrimSpace(tag) == "" {
		return projects
	}

	needle := normalizeText(tag)
	var filtered []models.Project
	for _, p := range projects {
		for _, tech := range p.TechStack {
			t := normalizeText(tech)
			if strings.Contains(t, needle) || strings.Contains(needle, t) {
				filtered = append(filtered, p)
				break
			}
		}
	}
	return filtered
}

// SortByCreated orders by created_at, "latest" first by default. Stable,
// so ties keep their fetch order.
func SortByCreated(projects []models.Project, order string) []models.Project {
	sorted := make([]models.Project, len(projects))
	copy(sorted, projects)

	sort.SliceStable(sorted, func(i, j int) bool {
		if order == OrderOldest {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		}
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return sorted
}

// AppliedSet collects the project ids the developer already applied to.
func AppliedSet(apps []models.Application) mapset.Set[int] {
	applied := mapset.NewSet[int]()
	for _, app := range apps {
		applied.Add(app.ProjectID)
	}
	return applied
}

type Item struct {
	models.Project
	Applied bool
}

// MarkApplied flags projects the developer cannot apply to again.
func MarkApplied(projects []models.Project, apps []models.Application) []Item {
	applied := AppliedSet(apps)
	items := make([]Item, 0, len(projects))
	for _, p := range projects {
		items = append(items, Item{Project: p, Applied: applied.Contains(p.ID)})
	}
	return items
}

// TechStacks returns the sorted unique tags across all projects, for the
// filter dropdown.
func TechStacks(projects []models.Project) []string {
	tags := mapset.NewSet[string]()
	for _, p := range projects {
		for _, tech := range p.TechStack {
			tags.Add(tech)
		}
	}
	sorted := tags.ToSlice()
	sort.Strings(sorted)
	return sorted
}
