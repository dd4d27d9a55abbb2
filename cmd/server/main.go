package main

import (
	"context"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"scholar-metrics-go/config"
	"scholar-metrics-go/internal/cache"
	"scholar-metrics-go/internal/corpus"
	"scholar-metrics-go/internal/fetcher"
	"scholar-metrics-go/internal/handler"
	"scholar-metrics-go/internal/matcher"
	"scholar-metrics-go/internal/service"
)

func main() {
	// 加载 .env 文件（如果存在）
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	if cfg.FirecrawlKey == "" {
		log.Println("Warning: FIRECRAWL_API_KEY not configured, profile fetching will not work")
	}
	if cfg.DatabaseURL == "" {
		log.Fatal("DATABASE_URL is required: the reference corpus lives in PostgreSQL")
	}

	// 加载参考语料库（进程启动时一次，失败直接退出，不提供降级模式）
	log.Println("Loading quality data...")
	store, err := corpus.NewQualityStore(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to open quality store: %v", err)
	}
	journals, conferences, err := store.Load(context.Background())
	if err != nil {
		log.Fatalf("Failed to load quality data: %v", err)
	}
	store.Close()

	// 匹配器构造后只读，所有请求共享
	venueMatcher := matcher.NewMatcher(journals, conferences)

	// 档案缓存（优先PostgreSQL，失败退回内存缓存）
	var profileCache cache.Cache
	pgCache, err := cache.NewPostgresCache(cfg.DatabaseURL)
	if err != nil {
		log.Printf("Warning: Failed to connect profile cache, using memory cache: %v", err)
		profileCache = cache.NewMemoryCache()
	} else {
		log.Println("Using PostgreSQL profile cache")
		profileCache = pgCache
	}

	scholarService := service.NewScholarService(
		fetcher.NewFirecrawlFetcher(cfg.FirecrawlKey),
		venueMatcher,
		profileCache,
		cfg.RefreshDays,
	)

	scholarHandler := handler.NewScholarHandler(scholarService)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", scholarHandler.Health)
	mux.HandleFunc("/api/analyze/scholar", scholarHandler.Analyze)

	corsHandler := corsMiddleware(mux)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, corsHandler); err != nil {
		log.Fatal(err)
	}
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
