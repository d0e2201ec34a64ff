package dedup

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

type seenEntry struct {
	Key       string `json:"key"`
	Timestamp int64  `json:"timestamp"`
}

// SeenCache remembers which notifications the watcher already sent, so
// a restart does not replay the whole chat history to Telegram.
type SeenCache struct {
	mu       sync.Mutex
	filePath string
	seen     map[string]int64
}

const thirtyDaysMs = int64(30 * 24 * 60 * 60 * 1000)

// NewSeenCache creates or loads the watcher's seen-notification cache
func NewSeenCache(cacheDir string) *SeenCache {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		log.Printf("⚠️ Failed to create cache directory: %v", err)
	}
	filePath := filepath.Join(cacheDir, "seen_notifications.json")
	cache := &SeenCache{
		filePath: filePath,
		seen:     make(map[string]int64),
	}
	cache.load()
	return cache
}

// Identity keys. A resubmitted project gets a fresh key via the
// submission timestamp, so revision rounds notify again.

func ChatKey(assignmentID, messageID int) string {
	return fmt.Sprintf("chat:%d:%d", assignmentID, messageID)
}

func ProjectKey(projectID int) string {
	return fmt.Sprintf("project:%d", projectID)
}

func ApplicationKey(applicationID int) string {
	return fmt.Sprintf("application:%d", applicationID)
}

func FigmaKey(assignmentID int, submittedAt time.Time) string {
	return fmt.Sprintf("figma:%d:%d", assignmentID, submittedAt.Unix())
}

func SubmissionKey(assignmentID int, submittedAt time.Time) string {
	return fmt.Sprintf("submission:%d:%d", assignmentID, submittedAt.Unix())
}

func ReviewKey(assignmentID int, approved bool, reviewedAt time.Time) string {
	return fmt.Sprintf("review:%d:%t:%d", assignmentID, approved, reviewedAt.Unix())
}

// IsSeen checks if a notification has already been sent
// Mutex is required because Go maps are NOT thread-safe
func (sc *SeenCache) IsSeen(key string) bool {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	_, exists := sc.seen[key]
	return exists
}

func (sc *SeenCache) Add(keys []string) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	now := time.Now().UnixMilli()
	changed := false
	for _, key := range keys {
		if _, exists := sc.seen[key]; !exists {
			sc.seen[key] = now
			changed = true
		}
	}

	if changed {
		sc.save()
	}
}

// load reads the cache from disk into the in-memory map, dropping
// entries older than 30 days
func (sc *SeenCache) load() {
	data, err := os.ReadFile(sc.filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️ Failed to read seen_notifications.json: %v", err)
		}
		return
	}

	var entries []seenEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Printf("⚠️ Failed to parse seen_notifications.json: %v", err)
		return
	}

	thirtyDaysAgo := time.Now().UnixMilli() - thirtyDaysMs
	loaded := 0
	for _, e := range entries {
		if e.Timestamp > thirtyDaysAgo {
			sc.seen[e.Key] = e.Timestamp
			loaded++
		}
	}
	log.Printf("📋 Loaded %d previously sent notifications (%d expired and removed)", loaded, len(entries)-loaded)
}

// save writes the current cache to disk
func (sc *SeenCache) save() {
	entries := make([]seenEntry, 0, len(sc.seen))
	for key, ts := range sc.seen {
		entries = append(entries, seenEntry{Key: key, Timestamp: ts})
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		log.Printf("⚠️ Failed to marshal seen notifications: %v", err)
		return
	}
	if err := os.WriteFile(sc.filePath, data, 0644); err != nil {
		log.Printf("⚠️ Failed to write seen_notifications.json: %v", err)
	}
}
