package fetcher

import "context"

// HTMLFetcher 获取Google Scholar页面HTML (Firecrawl)
type HTMLFetcher interface {
	FetchScholarPageMulti(ctx context.Context, scholarID string, maxPages int) ([]string, error)
}
