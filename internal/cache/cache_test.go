package cache

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func setupTestCache(t *testing.T, ttl time.Duration) (*Cache, string) {
	tempDir := t.TempDir()

	c := &Cache{
		cacheDir: tempDir,
		ttl:      ttl,
		now:      time.Now,
	}

	return c, tempDir
}

func TestNewCache(t *testing.T) {
	// Arrange
	dir := filepath.Join(t.TempDir(), "nested", "cache")

	// Act
	c, err := NewCache(dir, time.Hour)

	// Assert
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}
	if c == nil {
		t.Fatal("NewCache() returned nil")
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		t.Errorf("cache directory %s was not created", dir)
	}
}

func TestCache_GenerateHash(t *testing.T) {
	c := &Cache{}

	hash1 := c.GenerateHash("acme/widget#1")
	hash2 := c.GenerateHash("acme/widget#1")
	hash3 := c.GenerateHash("acme/widget#2")

	if hash1 != hash2 {
		t.Errorf("GenerateHash() returned different results for same content")
	}
	if hash1 == hash3 {
		t.Errorf("GenerateHash() returned same result for different content")
	}
	if len(hash1) != 64 {
		t.Errorf("GenerateHash() length = %d, want 64", len(hash1))
	}
}

func TestCache_SetAndGet(t *testing.T) {
	// Arrange
	c, _ := setupTestCache(t, time.Hour)
	type testData struct {
		Score int `json:"score"`
	}
	hash := c.GenerateHash("acme/widget#1")

	// Act
	if err := c.Set(hash, testData{Score: 91}); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	resp, found, err := c.Get(hash)

	// Assert
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !found {
		t.Fatal("Get() returned found = false, want true")
	}
	var got testData
	if err := json.Unmarshal(resp, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got.Score != 91 {
		t.Errorf("Get() score = %d, want 91", got.Score)
	}
}

func TestCache_Get_NotFound(t *testing.T) {
	c, _ := setupTestCache(t, time.Hour)

	_, found, err := c.Get("non-existent-hash")

	if err != nil {
		t.Errorf("Get() error = %v, want nil", err)
	}
	if found {
		t.Errorf("Get() found = true, want false")
	}
}

func TestCache_Get_Expired(t *testing.T) {
	// Arrange
	c, tempDir := setupTestCache(t, time.Hour)
	now := time.Now()
	c.now = func() time.Time { return now }
	hash := "expired-hash"
	if err := c.Set(hash, "some data"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	now = now.Add(2 * time.Hour)

	// Act
	_, found, err := c.Get(hash)

	// Assert
	if err != nil {
		t.Errorf("Get() error = %v, want nil", err)
	}
	if found {
		t.Errorf("Get() found = true, want false for expired cache")
	}
	if _, err := os.Stat(filepath.Join(tempDir, hash+".json")); !os.IsNotExist(err) {
		t.Errorf("expired cache file was not deleted")
	}
}

func TestCache_CleanExpired(t *testing.T) {
	// Arrange
	c, tempDir := setupTestCache(t, time.Hour)
	_ = c.Set("fresh", "data")
	_ = c.Set("old", "data")
	oldFilePath := filepath.Join(tempDir, "old.json")
	oldTime := time.Now().Add(-2 * time.Hour)
	_ = os.Chtimes(oldFilePath, oldTime, oldTime)
	leftover := filepath.Join(tempDir, "crashed.123.tmp")
	_ = os.WriteFile(leftover, []byte("{"), 0644)

	// Act
	err := c.CleanExpired()

	// Assert
	if err != nil {
		t.Errorf("CleanExpired() error = %v", err)
	}
	if _, err := os.Stat(oldFilePath); !os.IsNotExist(err) {
		t.Errorf("old file was not cleaned up")
	}
	if _, err := os.Stat(leftover); !os.IsNotExist(err) {
		t.Errorf("temp file was not cleaned up")
	}
	if _, err := os.Stat(filepath.Join(tempDir, "fresh.json")); os.IsNotExist(err) {
		t.Errorf("fresh file was incorrectly cleaned up")
	}
}

func TestCache_Clean(t *testing.T) {
	c, tempDir := setupTestCache(t, time.Hour)
	_ = c.Set("hash1", "data")
	_ = c.Set("hash2", "data")

	if err := c.Clean(); err != nil {
		t.Errorf("Clean() error = %v", err)
	}
	if _, err := os.Stat(tempDir); !os.IsNotExist(err) {
		t.Errorf("cache directory was not removed by Clean()")
	}
}

func TestCache_Get_UnmarshalError(t *testing.T) {
	// Arrange
	c, tempDir := setupTestCache(t, time.Hour)
	hash := "corrupt-hash"
	filePath := filepath.Join(tempDir, hash+".json")
	_ = os.WriteFile(filePath, []byte("invalid json{"), 0644)

	// Act
	_, found, err := c.Get(hash)

	// Assert
	if err == nil {
		t.Error("Get() error = nil, want error for invalid JSON")
	}
	if found {
		t.Error("Get() found = true, want false for invalid JSON")
	}
	if _, err := os.Stat(filePath); !os.IsNotExist(err) {
		t.Errorf("corrupt cache file was not removed")
	}
}

func TestCache_ConcurrentSet(t *testing.T) {
	c, _ := setupTestCache(t, time.Hour)
	hash := c.GenerateHash("acme/widget#7")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := c.Set(hash, map[string]int{"score": 82}); err != nil {
				t.Errorf("Set() error = %v", err)
			}
		}()
	}
	wg.Wait()

	resp, found, err := c.Get(hash)
	if err != nil || !found {
		t.Fatalf("Get() = found %v, err %v", found, err)
	}
	var got map[string]int
	if err := json.Unmarshal(resp, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got["score"] != 82 {
		t.Errorf("Get() = %s", resp)
	}
}
