package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	_ "github.com/lib/pq"

	"scholar-metrics-go/internal/model"
)

// Cache 学者档案缓存接口
// 新鲜度判断（refresh窗口）由调用方基于ScrapedAt做，缓存只负责存取
type Cache interface {
	Get(ctx context.Context, authorID string) (*model.AuthorProfile, error)
	Set(ctx context.Context, profile *model.AuthorProfile) error
	Delete(ctx context.Context, authorID string) error
}

// MemoryCache 内存缓存实现（用于测试或单机部署）
type MemoryCache struct {
	data map[string]*model.AuthorProfile
	mu   sync.RWMutex
}

// NewMemoryCache 创建内存缓存
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		data: make(map[string]*model.AuthorProfile),
	}
}

// Get 获取缓存的档案，不存在返回nil
func (c *MemoryCache) Get(ctx context.Context, authorID string) (*model.AuthorProfile, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	profile, ok := c.data[authorID]
	if !ok {
		return nil, nil
	}
	return profile, nil
}

// Set 写入档案
func (c *MemoryCache) Set(ctx context.Context, profile *model.AuthorProfile) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data[profile.AuthorID] = profile
	return nil
}

// Delete 删除档案
func (c *MemoryCache) Delete(ctx context.Context, authorID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.data, authorID)
	return nil
}

// PostgresCache PostgreSQL档案缓存实现
type PostgresCache struct {
	db *sql.DB
}

// NewPostgresCache 创建PostgreSQL缓存
func NewPostgresCache(databaseURL string) (*PostgresCache, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresCache{db: db}, nil
}

// Get 获取缓存的档案
func (c *PostgresCache) Get(ctx context.Context, authorID string) (*model.AuthorProfile, error) {
	query := `SELECT data, scraped_at FROM author_profiles WHERE author_id = $1`

	var dataJSON []byte
	var scrapedAt time.Time

	err := c.db.QueryRowContext(ctx, query, authorID).Scan(&dataJSON, &scrapedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var profile model.AuthorProfile
	if err := json.Unmarshal(dataJSON, &profile); err != nil {
		return nil, err
	}
	profile.ScrapedAt = scrapedAt

	return &profile, nil
}

// Set 写入档案
func (c *PostgresCache) Set(ctx context.Context, profile *model.AuthorProfile) error {
	dataJSON, err := json.Marshal(profile)
	if err != nil {
		return err
	}

	query := `
	INSERT INTO author_profiles (author_id, data, scraped_at)
	VALUES ($1, $2, $3)
	ON CONFLICT (author_id)
	DO UPDATE SET data = $2, scraped_at = $3
	`

	_, err = c.db.ExecContext(ctx, query, profile.AuthorID, dataJSON, profile.ScrapedAt)
	return err
}

// Delete 删除档案
func (c *PostgresCache) Delete(ctx context.Context, authorID string) error {
	_, err := c.db.ExecContext(ctx, `DELETE FROM author_profiles WHERE author_id = $1`, authorID)
	return err
}

// Close 关闭数据库连接
func (c *PostgresCache) Close() error {
	return c.db.Close()
}
