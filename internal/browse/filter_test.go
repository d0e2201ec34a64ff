package browse

import (
	"testing"
	"time"

	"go-devconnect-cli/internal/models"

	"github.com/stretchr/testify/assert"
)

func project(id int, tech ...string) models.Project {
	return models.Project{ID: id, TechStack: tech}
}

func ids(projects []models.Project) []int {
	var out []int
	for _, p := range projects {
		out = append(out, p.ID)
	}
	return out
}

func TestFilterByTech(t *testing.T) {
	projects := []models.Project{
		project(1, "React", "Node.js"),
		project(2, "Go", "PostgreSQL"),
		project(3, "React Native", "TypeScript"),
		project(4),
	}

	tests := []struct {
		name     string
		tag      string
		expected []int
	}{
		{"empty tag keeps everything", "", []int{1, 2, 3, 4}},
		{"exact tag", "Go", []int{2}},
		{"substring of a stack entry", "react", []int{1, 3}},
		{"stack entry as substring of the tag", "TypeScript 5", []int{3}},
		{"no match", "Haskell", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ids(FilterByTech(projects, tt.tag)))
		})
	}
}

// filtering must not care about the case of either side
func TestFilterByTech_CaseCommutative(t *testing.T) {
	projects := []models.Project{
		project(1, "React"),
		project(2, "react-router"),
		project(3, "Vue"),
	}

	lower := FilterByTech(projects, "react")
	upper := FilterByTech(projects, "React")
	assert.Equal(t, ids(lower), ids(upper))
	assert.Equal(t, []int{1, 2}, ids(lower))
}

func TestSortByCreated(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	projects := []models.Project{
		{ID: 1, CreatedAt: base.AddDate(0, 0, 1)},
		{ID: 2, CreatedAt: base.AddDate(0, 0, 3)},
		{ID: 3, CreatedAt: base.AddDate(0, 0, 2)},
	}

	latest := SortByCreated(projects, OrderLatest)
	oldest := SortByCreated(projects, OrderOldest)

	assert.Equal(t, []int{2, 3, 1}, ids(latest))
	assert.Equal(t, []int{1, 3, 2}, ids(oldest))

	//input order untouched
	assert.Equal(t, []int{1, 2, 3}, ids(projects))
}

// equal timestamps keep the fetch order in both directions
func TestSortByCreated_StableTies(t *testing.T) {
	ts := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	projects := []models.Project{
		{ID: 10, CreatedAt: ts},
		{ID: 11, CreatedAt: ts},
		{ID: 12, CreatedAt: ts},
	}

	assert.Equal(t, []int{10, 11, 12}, ids(SortByCreated(projects, OrderLatest)))
	assert.Equal(t, []int{10, 11, 12}, ids(SortByCreated(projects, OrderOldest)))
}

func TestMarkApplied(t *testing.T) {
	projects := []models.Project{project(5), project(6)}
	apps := []models.Application{{ID: 1, ProjectID: 5}}

	tests := []struct {
		name     string
		projects []models.Project
	}{
		{"fetch order", projects},
		{"reversed fetch order", []models.Project{project(6), project(5)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := MarkApplied(tt.projects, apps)
			byID := make(map[int]bool)
			for _, item := range items {
				byID[item.ID] = item.Applied
			}
			assert.True(t, byID[5])
			assert.False(t, byID[6])
		})
	}
}

func TestAppliedSet(t *testing.T) {
	apps := []models.Application{
		{ID: 1, ProjectID: 5},
		{ID: 2, ProjectID: 5}, //duplicate application, same project
		{ID: 3, ProjectID: 9},
	}
	applied := AppliedSet(apps)
	assert.Equal(t, 2, applied.Cardinality())
	assert.True(t, applied.Contains(5))
	assert.True(t, applied.Contains(9))
	assert.False(t, applied.Contains(6))
}

func TestTechStacks(t *testing.T) {
	projects := []models.Project{
		project(1, "React", "Go"),
		project(2, "Go", "PostgreSQL"),
	}
	assert.Equal(t, []string{"Go", "PostgreSQL", "React"}, TechStacks(projects))
}
