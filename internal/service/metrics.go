package service

import (
	"math"
	"sort"
	"strings"

	"scholar-metrics-go/internal/matcher"
	"scholar-metrics-go/internal/model"
)

// recentWindowYears 近期指标的时间窗口
const recentWindowYears = 5

// EvaluateAuthor 对学者档案做完整的指标聚合
// 返回汇总指标和标注了匹配结果、作者角色的论文表
// 纯函数：不修改输入，venue匹配缓存是本次调用私有的
func EvaluateAuthor(m *matcher.Matcher, profile *model.AuthorProfile, currentYear int) (model.AuthorSummary, []model.Publication) {
	pubs := make([]model.Publication, len(profile.Publications))
	copy(pubs, profile.Publications)

	// 基础清洗：引用数非负
	for i := range pubs {
		if pubs[i].Citations < 0 {
			pubs[i].Citations = 0
		}
	}

	// venue分类，按venue字符串去重（重复venue只匹配一次）
	venueCache := make(map[string]model.MatchResult)
	for i := range pubs {
		p := &pubs[i]
		if !needsMatch(p) {
			continue
		}
		result, ok := venueCache[p.Venue]
		if !ok {
			result = m.Match(p.Venue)
			venueCache[p.Venue] = result
		}
		p.MatchType = result.Kind
		p.MatchedTitle = result.MatchedTitle
		p.Rank = result.Rank
		p.MatchScore = result.Score
		p.Method = result.Method
	}

	summary := model.AuthorSummary{
		ID:                profile.AuthorID,
		Name:              profile.Name,
		TotalPublications: len(pubs),
	}

	// 引用指标
	citations := make([]int, len(pubs))
	for i, p := range pubs {
		citations[i] = p.Citations
	}
	sort.Sort(sort.Reverse(sort.IntSlice(citations)))

	maxCitations := 0
	for i, c := range citations {
		summary.TotalCitations += c
		if c >= i+1 {
			summary.HIndex++
		}
		if c >= 10 {
			summary.I10Index++
		}
		if c > maxCitations {
			maxCitations = c
		}
	}

	// g-index：前i篇的累计引用 >= i²的最大i
	cumulative := 0
	for i, c := range citations {
		cumulative += c
		if cumulative >= (i+1)*(i+1) {
			summary.GIndex = i + 1
		}
	}

	// 学术年龄：当前年减最早发表年，下限1
	minYear := 0
	for _, p := range pubs {
		if p.Year > 0 && (minYear == 0 || p.Year < minYear) {
			minYear = p.Year
		}
	}
	summary.AcademicAge = 1
	if minYear > 0 && currentYear-minYear > 1 {
		summary.AcademicAge = currentYear - minYear
	}

	// 作者角色和领导力
	surname := subjectSurname(profile.Name)
	leadCount := 0
	for i := range pubs {
		pubs[i].Role = classifyRole(pubs[i].Authors, surname)
		if pubs[i].Role == model.RoleSolo || pubs[i].Role == model.RoleFirst {
			leadCount++
		}
	}
	if len(pubs) > 0 {
		summary.LeadershipScore = round1(float64(leadCount) / float64(len(pubs)) * 100)
		summary.CitationsPerPaper = round1(float64(summary.TotalCitations) / float64(len(pubs)))
	}

	// 合作网络规模
	summary.NetworkSize = countCoauthors(pubs, surname)

	// 近期指标
	for _, p := range pubs {
		if p.Year >= currentYear-recentWindowYears {
			summary.RecentPublications++
			summary.RecentCitations += p.Citations
		}
	}

	// 一文成名比例：最高引用单篇占总引用的百分比
	if summary.TotalCitations > 0 {
		summary.OneHitRatio = round1(float64(maxCitations) / float64(summary.TotalCitations) * 100)
	}

	return summary, pubs
}

// needsMatch 已经带有可用rank的论文不再重复匹配（重复聚合幂等）
func needsMatch(p *model.Publication) bool {
	return p.Rank == "" || p.Rank == "-" || p.MatchType == ""
}

// subjectSurname 取展示名的最后一个词作为姓氏（小写）
func subjectSurname(name string) string {
	parts := strings.Fields(strings.ToLower(name))
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}

// classifyRole 根据作者串里姓氏的位置判断作者角色
// "..."表示被省略的中间作者：出现时跳过末位检查（末位不可信）
func classifyRole(authorsStr, surname string) string {
	if authorsStr == "" || surname == "" {
		return model.RoleUnknown
	}

	partsRaw := strings.Split(strings.ToLower(authorsStr), ",")
	hasEllipsis := false
	parts := make([]string, 0, len(partsRaw))
	for _, p := range partsRaw {
		p = strings.TrimSpace(p)
		if strings.Contains(p, "...") {
			hasEllipsis = true
			continue
		}
		parts = append(parts, p)
	}

	if len(parts) == 0 {
		return model.RoleUnknown
	}
	if len(parts) == 1 {
		if strings.Contains(parts[0], surname) {
			return model.RoleSolo
		}
		return model.RoleUnknown
	}
	if strings.Contains(parts[0], surname) {
		return model.RoleFirst
	}
	if !hasEllipsis && strings.Contains(parts[len(parts)-1], surname) {
		return model.RoleLast
	}
	for _, p := range parts[1:] {
		if strings.Contains(p, surname) {
			return model.RoleCoAuthor
		}
	}
	if hasEllipsis {
		return model.RoleAmbiguous
	}
	return model.RoleUnknown
}

// countCoauthors 统计去重后的合作者数量，不含学者本人
func countCoauthors(pubs []model.Publication, surname string) int {
	unique := make(map[string]bool)
	for _, p := range pubs {
		if p.Authors == "" {
			continue
		}
		for _, name := range strings.Split(p.Authors, ",") {
			name = strings.TrimSpace(name)
			if len(name) <= 1 || strings.Contains(name, "...") {
				continue
			}
			unique[name] = true
		}
	}

	count := 0
	for name := range unique {
		if surname != "" && strings.Contains(strings.ToLower(name), surname) {
			continue
		}
		count++
	}
	return count
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
