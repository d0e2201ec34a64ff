package main

import (
	"fmt"

	"go-devconnect-cli/internal/config"
)

func main() {
	fmt.Println("🔧 Testing config loading...")
	cfg := config.Load()
	fmt.Printf("✅ Config loaded successfully!\n")
	fmt.Printf("   API Base URL: %s\n", cfg.APIBaseURL)
	fmt.Printf("   Keywords: %v\n", cfg.Keywords)
	fmt.Printf("   Poll interval: %s\n", cfg.PollInterval())
	fmt.Printf("   Project poll interval: %s\n", cfg.ProjectPollInterval())
	fmt.Printf("   Session Path: %s\n", cfg.SessionPath)
	fmt.Printf("   Cache Path: %s\n", cfg.CachePath)
}
