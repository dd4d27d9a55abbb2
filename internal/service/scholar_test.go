package service

import (
	"testing"
	"time"

	"scholar-metrics-go/internal/model"
)

func TestExtractScholarIDFromURL(t *testing.T) {
	testCases := []struct {
		url  string
		want string
	}{
		{"https://scholar.google.com/citations?user=dOad5HoAAAAJ", "dOad5HoAAAAJ"},
		{"https://scholar.google.com/citations?user=dOad5HoAAAAJ&hl=en", "dOad5HoAAAAJ"},
		{"https://scholar.google.com.my/citations?hl=en&user=JicYPdAAAAAJ", "JicYPdAAAAAJ"},
		{"https://example.com/citations?user=xxx", ""},
		{"https://scholar.google.com/citations?hl=en", ""},
	}

	for _, tc := range testCases {
		if got := extractScholarIDFromURL(tc.url); got != tc.want {
			t.Errorf("extractScholarIDFromURL(%q) = %q, want %q", tc.url, got, tc.want)
		}
	}
}

func TestIsScholarID(t *testing.T) {
	testCases := []struct {
		query string
		want  bool
	}{
		{"JicYPdAAAAAJ", true},
		{"dOad5HoAAAAJ", true},
		{"Jane Doe", false},
		{"short", false},
		{"way-too-long-to-be-a-scholar-id", false},
	}

	for _, tc := range testCases {
		if got := isScholarID(tc.query); got != tc.want {
			t.Errorf("isScholarID(%q) = %v, want %v", tc.query, got, tc.want)
		}
	}
}

func TestIsStale(t *testing.T) {
	s := NewScholarService(nil, emptyMatcher(), nil, 7)

	fresh := &model.AuthorProfile{ScrapedAt: time.Now().Add(-24 * time.Hour)}
	if s.isStale(fresh) {
		t.Error("profile scraped 1 day ago must be fresh with a 7-day window")
	}

	stale := &model.AuthorProfile{ScrapedAt: time.Now().Add(-8 * 24 * time.Hour)}
	if !s.isStale(stale) {
		t.Error("profile scraped 8 days ago must be stale with a 7-day window")
	}

	if !s.isStale(&model.AuthorProfile{}) {
		t.Error("profile without scraped_at must be stale")
	}
}
