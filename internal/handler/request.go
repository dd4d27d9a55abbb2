package handler

// AnalyzeRequest 分析请求体
type AnalyzeRequest struct {
	Query string `json:"query"`
}
