package matcher

import (
	"strings"

	"scholar-metrics-go/internal/model"
)

// VenueRecord 参考语料库的一行（期刊或会议）
// 加载后不可变
type VenueRecord struct {
	Title     string
	TitleNorm string // 由Title归一化得到
	Acronym   string // 仅会议表有，小写无标点
	Rank      string
	Kind      model.VenueKind
}

// 外部数据里字面出现的"空"rank标记（不是真正的null）
// 封闭集合，大小写敏感
var emptyRankTokens = map[string]bool{
	"":     true,
	"-":    true,
	"nan":  true,
	"None": true,
}

// NormalizeRank 归一化rank字段，空值统一为"-"
func NormalizeRank(rank string) string {
	rank = strings.TrimSpace(rank)
	if emptyRankTokens[rank] {
		return "-"
	}
	return rank
}
