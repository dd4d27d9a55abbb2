package handler

import (
	"encoding/json"
	"log"
	"net/http"

	"scholar-metrics-go/internal/service"
)

// ScholarHandler 学者分析HTTP处理器
type ScholarHandler struct {
	service *service.ScholarService
}

// NewScholarHandler 创建处理器
func NewScholarHandler(svc *service.ScholarService) *ScholarHandler {
	return &ScholarHandler{service: svc}
}

// Analyze 处理分析请求
// POST /api/analyze/scholar
// Body: {"query": "scholar_id或scholar URL"}
func (h *ScholarHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Query == "" {
		http.Error(w, "query is required", http.StatusBadRequest)
		return
	}

	log.Printf("Starting analysis for: %s", req.Query)

	report, err := h.service.Analyze(r.Context(), req.Query)
	if err != nil {
		log.Printf("Analysis error for %s: %v", req.Query, err)
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(report); err != nil {
		log.Printf("Failed to encode response for %s: %v", req.Query, err)
	}
}

// Health 健康检查
func (h *ScholarHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
