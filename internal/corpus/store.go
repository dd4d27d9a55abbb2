package corpus

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq"

	"scholar-metrics-go/internal/matcher"
)

// QualityStore 参考语料库的只读Postgres存储
// 进程启动时读一次，之后不再访问
type QualityStore struct {
	db *sql.DB
}

// NewQualityStore 连接参考数据库
func NewQualityStore(databaseURL string) (*QualityStore, error) {
	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &QualityStore{db: db}, nil
}

// Load 加载期刊表和会议表
// 失败对启动是致命的，不提供降级的部分语料库
func (s *QualityStore) Load(ctx context.Context) (journals, conferences []matcher.VenueRecord, err error) {
	journals, err = s.loadTable(ctx, `SELECT "Title", COALESCE(rank, '') FROM journals_quality`, false)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load journals_quality: %w", err)
	}

	conferences, err = s.loadTable(ctx, `SELECT "Title", COALESCE(rank, ''), COALESCE(acronym, '') FROM conferences_quality`, true)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load conferences_quality: %w", err)
	}

	log.Printf("[Quality Store] Loaded %d journals, %d conferences", len(journals), len(conferences))
	return journals, conferences, nil
}

func (s *QualityStore) loadTable(ctx context.Context, query string, withAcronym bool) ([]matcher.VenueRecord, error) {
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []matcher.VenueRecord
	for rows.Next() {
		var rec matcher.VenueRecord
		if withAcronym {
			err = rows.Scan(&rec.Title, &rec.Rank, &rec.Acronym)
		} else {
			err = rows.Scan(&rec.Title, &rec.Rank)
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Close 关闭数据库连接
func (s *QualityStore) Close() error {
	return s.db.Close()
}
