package utils

import (
	"regexp"
	"strings"
	"unicode"
)

// reCamelPiece 拆CamelCase用，如"KokShiek" → ["Kok", "Shiek"]
var reCamelPiece = regexp.MustCompile(`[A-Z][^A-Z]*`)

// NameVariations 生成一个全名的常见变体，用于作者消歧匹配
// 例如"KokShiek Wong" → "kokshiek wong", "wong kokshiek", "k wong", "ks wong", "wong ks"
// 返回值全部小写
func NameVariations(fullName string) []string {
	rawParts := strings.Fields(fullName)
	if len(rawParts) == 0 {
		return nil
	}

	// 保留原始token用于匹配，但确保首字母大写
	parts := make([]string, 0, len(rawParts))
	for _, p := range rawParts {
		if len(p) > 1 {
			parts = append(parts, strings.ToUpper(p[:1])+p[1:])
		} else {
			parts = append(parts, strings.ToUpper(p))
		}
	}

	if len(parts) == 1 {
		return []string{strings.ToLower(parts[0])}
	}

	first := parts[0]
	last := parts[len(parts)-1]
	middles := parts[1 : len(parts)-1]

	seen := make(map[string]bool)
	variants := []string{}
	add := func(v string) {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" && !seen[v] {
			seen[v] = true
			variants = append(variants, v)
		}
	}

	// 原始顺序全名
	add(strings.Join(parts, " "))

	// "Last First Middle..."
	add(last + " " + strings.Join(append([]string{first}, middles...), " "))

	// 名的首字母：CamelCase先拆开，"KokShiek" → "KS"
	givenBlock := append([]string{first}, middles...)
	expanded := []string{}
	for _, token := range givenBlock {
		expanded = append(expanded, splitCamel(token)...)
	}
	givenInitials := initials(expanded)

	// "K Wong"风格
	add(string(first[0]) + " " + last)

	// "KS Wong"和"Wong KS"风格
	add(givenInitials + " " + last)
	add(last + " " + givenInitials)

	// 有中间名时保留"WK Kok Shiek"式变体
	if len(middles) > 0 {
		add(string(last[0]) + string(first[0]) + " " + strings.Join(middles, " "))
	}

	return variants
}

// splitCamel 拆分CamelCase的token，没有额外大写字母时原样返回
func splitCamel(part string) []string {
	hasExtraUpper := false
	for _, r := range part[1:] {
		if unicode.IsUpper(r) {
			hasExtraUpper = true
			break
		}
	}
	if !hasExtraUpper {
		return []string{part}
	}

	pieces := reCamelPiece.FindAllString(part, -1)
	if len(pieces) == 0 {
		return []string{part}
	}
	return pieces
}

func initials(names []string) string {
	var b strings.Builder
	for _, name := range names {
		if name != "" {
			b.WriteString(strings.ToUpper(name[:1]))
		}
	}
	return b.String()
}
