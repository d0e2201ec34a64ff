package main

import (
	"fmt"
	"log"

	"go-devconnect-cli/internal/config"
	"go-devconnect-cli/internal/session"
)

func main() {
	fmt.Println("🔑 Testing session store...")
	cfg := config.Load()
	store := session.NewStore(cfg.SessionPath)

	sess, err := store.Current()
	if err != nil {
		log.Fatalf("❌ No session: %v", err)
	}

	role, _ := store.Role()
	userID, _ := store.UserID()
	fmt.Printf("✅ Session loaded (token length %d)\n", len(sess.AccessToken))
	fmt.Printf("   Role: %s\n", role)
	fmt.Printf("   User ID: %s\n", userID)
}
