package service

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"
	"time"

	"scholar-metrics-go/internal/cache"
	"scholar-metrics-go/internal/fetcher"
	"scholar-metrics-go/internal/matcher"
	"scholar-metrics-go/internal/model"
)

// ScholarService 学者分析服务
// matcher是进程级只读状态，可跨请求共享；venue匹配缓存是每次聚合私有的
type ScholarService struct {
	htmlFetcher fetcher.HTMLFetcher
	parser      *fetcher.ScholarParser
	matcher     *matcher.Matcher
	cache       cache.Cache
	refreshDays int
}

// NewScholarService 创建学者分析服务
func NewScholarService(htmlFetcher fetcher.HTMLFetcher, m *matcher.Matcher, c cache.Cache, refreshDays int) *ScholarService {
	if refreshDays <= 0 {
		refreshDays = 7
	}
	return &ScholarService{
		htmlFetcher: htmlFetcher,
		parser:      fetcher.NewScholarParser(),
		matcher:     m,
		cache:       c,
		refreshDays: refreshDays,
	}
}

// isScholarID 判断输入是否像scholar_id（字母数字组合，通常12位左右）
func isScholarID(query string) bool {
	matched, _ := regexp.MatchString(`^[a-zA-Z0-9_-]{10,14}$`, query)
	return matched
}

// extractScholarIDFromURL 从Google Scholar URL提取scholar_id
// 支持格式: https://scholar.google.com/citations?user=dOad5HoAAAAJ&hl=en
func extractScholarIDFromURL(url string) string {
	if !strings.Contains(url, "scholar.google") {
		return ""
	}

	idx := strings.Index(url, "user=")
	if idx == -1 {
		return ""
	}

	start := idx + 5
	end := start
	for end < len(url) && url[end] != '&' {
		end++
	}

	return url[start:end]
}

// Analyze 分析学者
// query可以是scholar_id或Google Scholar URL
func (s *ScholarService) Analyze(ctx context.Context, query string) (*model.AuthorReport, error) {
	var scholarID string

	if urlID := extractScholarIDFromURL(query); urlID != "" {
		scholarID = urlID
	} else if isScholarID(query) {
		scholarID = query
	} else {
		return nil, fmt.Errorf("not a scholar id or scholar url: %q", query)
	}

	log.Printf("[Scholar Service] Analyze started for ID: %s", scholarID)

	profile, err := s.loadOrFetchProfile(ctx, scholarID)
	if err != nil {
		return nil, err
	}

	summary, pubs := EvaluateAuthor(s.matcher, profile, time.Now().Year())

	log.Printf("[Scholar Service] Analysis complete for %s: %d publications, h-index %d",
		scholarID, summary.TotalPublications, summary.HIndex)

	return &model.AuthorReport{Summary: summary, Publications: pubs}, nil
}

// loadOrFetchProfile 在refresh窗口内复用缓存档案，过期或缺失则重新抓取
func (s *ScholarService) loadOrFetchProfile(ctx context.Context, scholarID string) (*model.AuthorProfile, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, scholarID)
		if err == nil && cached != nil && !s.isStale(cached) {
			log.Printf("[Scholar Service] Cache HIT for ID: %s", scholarID)
			return cached, nil
		}
		log.Printf("[Scholar Service] Cache MISS for ID: %s", scholarID)
	}

	htmlPages, err := s.htmlFetcher.FetchScholarPageMulti(ctx, scholarID, 3)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch scholar pages: %w", err)
	}

	profile, err := s.parser.ParseMultiPage(scholarID, htmlPages)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scholar pages: %w", err)
	}
	if profile == nil {
		return nil, fmt.Errorf("no data parsed for %s", scholarID)
	}

	if s.cache != nil {
		go s.cache.Set(context.Background(), profile)
	}

	return profile, nil
}

// isStale 档案是否超过refresh窗口
func (s *ScholarService) isStale(profile *model.AuthorProfile) bool {
	if profile.ScrapedAt.IsZero() {
		return true
	}
	age := time.Since(profile.ScrapedAt)
	return age >= time.Duration(s.refreshDays)*24*time.Hour
}
