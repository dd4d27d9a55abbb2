package matcher

import (
	"regexp"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"scholar-metrics-go/internal/model"
)

// fuzzyCutoff 模糊匹配接受下限（含）
// 调高减少近似标题的误报，调低提高脏数据的覆盖率
const fuzzyCutoff = 85

// reAcronym 从原始venue字符串提取3个以上连续大写字母的词
var reAcronym = regexp.MustCompile(`\b([A-Z]{3,})\b`)

type lookupEntry struct {
	kind  model.VenueKind
	title string
	rank  string
}

// Matcher venue匹配器，持有只读的参考语料库和查找索引
// 构造后不再修改，可以安全地被并发请求共享
type Matcher struct {
	journals    []VenueRecord
	conferences []VenueRecord
	lookup      map[string]lookupEntry
	acronyms    map[string]int // 会议acronym → 行下标，首个出现的行优先
}

// NewMatcher 从期刊表和会议表构建匹配器
// 索引按期刊、会议的顺序插入，归一化标题相同时后插入者覆盖，
// 即会议会遮蔽同名期刊（既有行为，保留）
func NewMatcher(journals, conferences []VenueRecord) *Matcher {
	m := &Matcher{
		journals:    prepareRecords(journals, model.KindJournal),
		conferences: prepareRecords(conferences, model.KindConference),
		lookup:      make(map[string]lookupEntry),
		acronyms:    make(map[string]int),
	}

	for _, row := range m.journals {
		m.lookup[row.TitleNorm] = lookupEntry{kind: row.Kind, title: row.Title, rank: row.Rank}
	}
	for _, row := range m.conferences {
		m.lookup[row.TitleNorm] = lookupEntry{kind: row.Kind, title: row.Title, rank: row.Rank}
	}

	for i, row := range m.conferences {
		if row.Acronym == "" {
			continue
		}
		acronym := strings.ToLower(row.Acronym)
		if _, ok := m.acronyms[acronym]; !ok {
			m.acronyms[acronym] = i
		}
	}

	return m
}

// prepareRecords 补全记录的派生字段
func prepareRecords(rows []VenueRecord, kind model.VenueKind) []VenueRecord {
	prepared := make([]VenueRecord, len(rows))
	for i, row := range rows {
		row.Kind = kind
		row.TitleNorm = NormalizeText(row.Title)
		row.Rank = NormalizeRank(row.Rank)
		prepared[i] = row
	}
	return prepared
}

// Match 对venue字符串执行匹配级联：精确 → 缩写 → 子串 → 模糊
// 纯函数，对同一输入结果确定，批量调用方应按venue去重
func (m *Matcher) Match(venue string) model.MatchResult {
	if strings.TrimSpace(venue) == "" {
		return model.MatchResult{Kind: model.KindNone, Score: 0, Method: model.MethodNone}
	}

	venueNorm := NormalizeText(venue)
	if venueNorm == "" {
		return failedResult()
	}

	// 精确匹配
	if entry, ok := m.lookup[venueNorm]; ok {
		return model.MatchResult{
			Kind:         entry.kind,
			MatchedTitle: entry.title,
			Rank:         entry.rank,
			Score:        100.0,
			Method:       model.MethodExact,
		}
	}

	// 缩写匹配：在原始字符串上按出现顺序找大写缩写词，只查会议表
	// "Proc. of the IEEE CVPR 2021"里IEEE先出现但不是已知缩写，继续试CVPR
	for _, sub := range reAcronym.FindAllStringSubmatch(venue, -1) {
		acronym := strings.ToLower(sub[1])
		idx, ok := m.acronyms[acronym]
		if !ok {
			continue
		}
		row := m.conferences[idx]
		return model.MatchResult{
			Kind:         model.KindConference,
			MatchedTitle: row.Title,
			Rank:         row.Rank,
			Score:        100.0,
			Method:       model.MethodAcronym,
		}
	}

	// 子串/模糊搜索，按提示决定搜索范围
	var best *model.MatchResult
	switch GuessVenueKind(venue) {
	case HintConference:
		best = m.searchTable(m.conferences, model.KindConference, venueNorm)
	case HintJournal:
		best = m.searchTable(m.journals, model.KindJournal, venueNorm)
	default:
		// 无提示时两个表都搜，分数相同会议优先
		matchC := m.searchTable(m.conferences, model.KindConference, venueNorm)
		matchJ := m.searchTable(m.journals, model.KindJournal, venueNorm)
		scoreC, scoreJ := 0.0, 0.0
		if matchC != nil {
			scoreC = matchC.Score
		}
		if matchJ != nil {
			scoreJ = matchJ.Score
		}
		switch {
		case scoreC == 0 && scoreJ == 0:
			best = nil
		case scoreC >= scoreJ:
			best = matchC
		default:
			best = matchJ
		}
	}

	if best != nil {
		return *best
	}
	return failedResult()
}

// searchTable 在单个表上先做子串匹配，再做模糊匹配
func (m *Matcher) searchTable(rows []VenueRecord, kind model.VenueKind, venueNorm string) *model.MatchResult {
	// 子串匹配：取归一化标题最短的包含行（最贴合的匹配，避免过于宽泛的短标题误报）
	bestIdx := -1
	for i, row := range rows {
		if row.TitleNorm == "" || !strings.Contains(row.TitleNorm, venueNorm) {
			continue
		}
		if bestIdx == -1 || len(row.TitleNorm) < len(rows[bestIdx].TitleNorm) {
			bestIdx = i
		}
	}
	if bestIdx >= 0 {
		row := rows[bestIdx]
		return &model.MatchResult{
			Kind:         kind,
			MatchedTitle: row.Title,
			Rank:         row.Rank,
			Score:        95.0,
			Method:       model.MethodSubstring,
		}
	}

	// 模糊匹配：WRatio，首个最高分的行优先
	bestIdx = -1
	bestScore := 0
	for i, row := range rows {
		if row.TitleNorm == "" {
			continue
		}
		score := fuzzy.WRatio(venueNorm, row.TitleNorm)
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}
	if bestIdx >= 0 && bestScore >= fuzzyCutoff {
		row := rows[bestIdx]
		return &model.MatchResult{
			Kind:         kind,
			MatchedTitle: row.Title,
			Rank:         row.Rank,
			Score:        float64(bestScore),
			Method:       model.MethodFuzzy,
		}
	}

	return nil
}

func failedResult() model.MatchResult {
	return model.MatchResult{Kind: model.KindUnranked, Rank: "-", Score: 0, Method: model.MethodFailed}
}
