package dedup

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeenCacheRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cache := NewSeenCache(dir)

	key := ChatKey(7, 42)
	assert.False(t, cache.IsSeen(key))

	cache.Add([]string{key, ProjectKey(5)})
	assert.True(t, cache.IsSeen(key))
	assert.True(t, cache.IsSeen(ProjectKey(5)))
	assert.False(t, cache.IsSeen(ProjectKey(6)))

	//survives a reload
	reloaded := NewSeenCache(dir)
	assert.True(t, reloaded.IsSeen(key))
}

func TestSeenCacheExpiresOldEntries(t *testing.T) {
	dir := t.TempDir()

	old := time.Now().AddDate(0, 0, -40).UnixMilli()
	fresh := time.Now().UnixMilli()
	entries := []seenEntry{
		{Key: "project:1", Timestamp: old},
		{Key: "project:2", Timestamp: fresh},
	}
	data, err := json.Marshal(entries)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "seen_notifications.json"), data, 0644))

	cache := NewSeenCache(dir)
	assert.False(t, cache.IsSeen("project:1"), "entries past 30 days are dropped on load")
	assert.True(t, cache.IsSeen("project:2"))
}

func TestKeys(t *testing.T) {
	reviewedAt := time.Unix(1700000000, 0)

	assert.Equal(t, "chat:3:9", ChatKey(3, 9))
	assert.Equal(t, "project:12", ProjectKey(12))
	assert.Equal(t, "application:4", ApplicationKey(4))
	assert.Equal(t, "review:3:true:1700000000", ReviewKey(3, true, reviewedAt))
	//approve and revise verdicts on the same submission are distinct
	assert.NotEqual(t, ReviewKey(3, true, reviewedAt), ReviewKey(3, false, reviewedAt))
}
