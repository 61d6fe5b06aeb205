package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/babyhome/solidity-gas-optimizer/internal/issue"
)

// Entry is one cached analysis result.
type Entry struct {
	Key       string `gorm:"column:cache_key;primaryKey"`
	Result    string `gorm:"column:result;not null"`
	CreatedAt time.Time
}

func (Entry) TableName() string { return "analysis_results" }

// Cache stores analysis results in SQLite keyed by file content and the
// enabled rules. It is safe for concurrent use.
type Cache struct {
	db *gorm.DB
	mu sync.Mutex
}

// Open opens or creates the cache database at path.
func Open(path string) (*Cache, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create cache directory: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open cache %s: %w", path, err)
	}
	if err := db.AutoMigrate(&Entry{}); err != nil {
		return nil, fmt.Errorf("failed to migrate cache %s: %w", path, err)
	}
	return &Cache{db: db}, nil
}

// Key hashes the file content together with the rule names.
func Key(content []byte, ruleNames []string) string {
	h := sha256.New()
	h.Write(content)
	h.Write([]byte{0})
	h.Write([]byte(strings.Join(ruleNames, ",")))
	return hex.EncodeToString(h.Sum(nil))
}

// Get returns the cached result for key. The result's File is set to file
// since identical content may live at several paths.
func (c *Cache) Get(key, file string) (issue.AnalysisResult, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var e Entry
	err := c.db.Where("cache_key = ?", key).First(&e).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return issue.AnalysisResult{}, false, nil
	}
	if err != nil {
		return issue.AnalysisResult{}, false, fmt.Errorf("cache lookup: %w", err)
	}

	var result issue.AnalysisResult
	if err := json.Unmarshal([]byte(e.Result), &result); err != nil {
		return issue.AnalysisResult{}, false, fmt.Errorf("corrupt cache entry %s: %w", key, err)
	}
	return issue.NewResult(file, result.Issues), true, nil
}

// Put stores result under key, replacing any previous entry.
func (c *Cache) Put(key string, result issue.AnalysisResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	err = c.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "cache_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"result", "created_at"}),
	}).Create(&Entry{Key: key, Result: string(data)}).Error
	if err != nil {
		return fmt.Errorf("cache store: %w", err)
	}
	return nil
}

// Len returns the number of cached entries.
func (c *Cache) Len() (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var n int64
	err := c.db.Model(&Entry{}).Count(&n).Error
	return n, err
}

// Close releases the underlying database handle.
func (c *Cache) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
