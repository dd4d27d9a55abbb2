package fetcher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"
)

// FirecrawlFetcher Firecrawl HTML获取器
type FirecrawlFetcher struct {
	apiKey     string
	httpClient *http.Client
}

// NewFirecrawlFetcher 创建Firecrawl获取器
func NewFirecrawlFetcher(apiKey string) *FirecrawlFetcher {
	return &FirecrawlFetcher{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

type firecrawlRequest struct {
	URL     string   `json:"url"`
	Formats []string `json:"formats"`
	WaitFor int      `json:"waitFor,omitempty"` // 等待毫秒数，让JS渲染完成
}

type firecrawlResponse struct {
	Success bool `json:"success"`
	Data    struct {
		HTML string `json:"html"`
	} `json:"data"`
	Error string `json:"error,omitempty"`
}

// fetchSinglePage 获取单页论文列表（cstart是翻页偏移）
func (f *FirecrawlFetcher) fetchSinglePage(ctx context.Context, scholarID string, cstart int) (string, error) {
	scholarURL := fmt.Sprintf("https://scholar.google.com/citations?user=%s&hl=en&cstart=%d&pagesize=100", scholarID, cstart)

	reqBody := firecrawlRequest{
		URL:     scholarURL,
		Formats: []string{"html"},
		WaitFor: 3000,
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "https://api.firecrawl.dev/v1/scrape", bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+f.apiKey)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch page: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("firecrawl returned status %d: %s", resp.StatusCode, string(body))
	}

	var fcResp firecrawlResponse
	if err := json.Unmarshal(body, &fcResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	if !fcResp.Success {
		return "", fmt.Errorf("firecrawl error: %s", fcResp.Error)
	}

	if fcResp.Data.HTML == "" {
		return "", fmt.Errorf("empty HTML response")
	}

	return fcResp.Data.HTML, nil
}

// FetchScholarPageMulti 获取多页论文HTML
// 先取第一页，论文数接近满页（100篇）才并发取后续页
func (f *FirecrawlFetcher) FetchScholarPageMulti(ctx context.Context, scholarID string, maxPages int) ([]string, error) {
	if maxPages <= 0 {
		maxPages = 3
	}
	if maxPages > 5 {
		maxPages = 5
	}

	firstPage, err := f.fetchSinglePage(ctx, scholarID, 0)
	if err != nil {
		return nil, err
	}

	paperCount := strings.Count(firstPage, "gsc_a_tr")
	if paperCount < 95 || maxPages <= 1 {
		return []string{firstPage}, nil
	}

	additionalPages := maxPages - 1
	htmlResults := make([]string, additionalPages)

	var wg sync.WaitGroup
	for i := 0; i < additionalPages; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			html, err := f.fetchSinglePage(ctx, scholarID, (idx+1)*100)
			if err == nil {
				htmlResults[idx] = html
			}
		}(i)
	}
	wg.Wait()

	results := []string{firstPage}
	for _, html := range htmlResults {
		if html != "" {
			results = append(results, html)
		}
	}

	return results, nil
}
