package model

import "time"

// VenueKind 匹配结果类型
type VenueKind string

const (
	KindJournal    VenueKind = "Journal"
	KindConference VenueKind = "Conference"
	KindUnranked   VenueKind = "Unranked"   // venue可以归一化但没有匹配到任何参考条目
	KindNone       VenueKind = "None"       // venue为空
)

// 匹配方法
const (
	MethodExact     = "Exact Match"
	MethodAcronym   = "Acronym"
	MethodSubstring = "Substring"
	MethodFuzzy     = "Fuzzy"
	MethodFailed    = "Failed"
	MethodNone      = "None"
)

// 作者角色
const (
	RoleSolo      = "Solo Author"
	RoleFirst     = "First Author"
	RoleLast      = "Last Author"
	RoleCoAuthor  = "Co-Author"
	RoleAmbiguous = "Ambiguous"
	RoleUnknown   = "Unknown"
)

// MatchResult venue匹配结果
type MatchResult struct {
	Kind         VenueKind `json:"match_type"`
	MatchedTitle string    `json:"matched_title,omitempty"`
	Rank         string    `json:"rank"`
	Score        float64   `json:"match_score"`
	Method       string    `json:"source"`
}

// Publication 单篇论文记录
// Authors保留原始的逗号分隔字符串，可能包含"..."（表示被省略的中间作者）
type Publication struct {
	Title     string `json:"title,omitempty"`
	Venue     string `json:"venue"`
	Authors   string `json:"authors"`
	Year      int    `json:"year"` // 0表示未知
	Citations int    `json:"citations"`

	// 匹配结果（分类后填充）
	MatchType    VenueKind `json:"match_type,omitempty"`
	MatchedTitle string    `json:"matched_title,omitempty"`
	Rank         string    `json:"rank,omitempty"`
	MatchScore   float64   `json:"match_score"`
	Method       string    `json:"source,omitempty"`

	// 作者角色（聚合时填充）
	Role string `json:"role,omitempty"`
}

// AuthorProfile 抓取到的学者档案
type AuthorProfile struct {
	AuthorID     string        `json:"author_id"`
	Name         string        `json:"name"`
	Publications []Publication `json:"publications"`
	ScrapedAt    time.Time     `json:"last_scraped"`
}

// AuthorSummary 学者聚合指标
type AuthorSummary struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	TotalPublications  int     `json:"total_p"`
	TotalCitations     int     `json:"total_c"`
	HIndex             int     `json:"h_index"`
	I10Index           int     `json:"i10_index"`
	GIndex             int     `json:"g_index"`
	AcademicAge        int     `json:"academic_age"`
	CitationsPerPaper  float64 `json:"cpp"`
	LeadershipScore    float64 `json:"leadership_score"`
	NetworkSize        int     `json:"network_size"`
	RecentPublications int     `json:"recent_p"`
	RecentCitations    int     `json:"recent_c"`
	OneHitRatio        float64 `json:"one_hit"`
}

// AuthorReport 完整分析结果：指标 + 标注后的论文表
type AuthorReport struct {
	Summary      AuthorSummary `json:"summary"`
	Publications []Publication `json:"publications"`
}
