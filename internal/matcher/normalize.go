package matcher

import (
	"regexp"
	"strings"
)

// 归一化用的正则，顺序敏感：后面的pass假设前面的噪声已经去掉
var (
	reOrdinal     = regexp.MustCompile(`\b\d+(st|nd|rd|th)\b`)             // "21st", "3rd"
	rePageRange   = regexp.MustCompile(`\b\d+[-–]\d+\b`)                   // "12-34"页码区间
	reBiblioAbbr  = regexp.MustCompile(`\b(pp|vol|no|issue)\.?\s*\d+`)     // "pp. 12", "vol 3"
	reYear        = regexp.MustCompile(`\b(19|20)\d{2}\b`)                 // 1900-2099年份
	reDigits      = regexp.MustCompile(`\b\d+\b`)                          // 剩余的独立数字
	rePunctuation = regexp.MustCompile("[!\"#$%&'()*+,\\-./:;<=>?@\\[\\\\\\]^_`{|}~]")
	reWhitespace  = regexp.MustCompile(`\s+`)
)

// NormalizeText 归一化venue标题用于比较
// 小写 → 去序数词 → 去页码区间 → 去pp/vol/no/issue → 去年份 → 去数字 → 去标点 → 折叠空白
// 参考表和输入venue必须使用同一个归一化，否则精确/子串匹配会悄悄失效
func NormalizeText(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ToLower(s)
	s = reOrdinal.ReplaceAllString(s, "")
	s = rePageRange.ReplaceAllString(s, "")
	s = reBiblioAbbr.ReplaceAllString(s, "")
	s = reYear.ReplaceAllString(s, "")
	s = reDigits.ReplaceAllString(s, "")
	s = rePunctuation.ReplaceAllString(s, "")
	return strings.TrimSpace(reWhitespace.ReplaceAllString(s, " "))
}
