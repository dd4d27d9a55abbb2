package matcher

import "strings"

// 会议/期刊线索关键词，只用于决定搜索顺序，不影响正确性
var (
	conferenceCues = []string{
		"conference", "conf.", "proc.", "proceedings", "workshop", "symposium",
		"neurips", "cvpr", "iccv", "icml",
	}
	journalCues = []string{
		"journal", "transactions", "trans.", "letters", "magazine",
	}
)

// venue类型提示
const (
	HintConference = "conference"
	HintJournal    = "journal"
	HintUnknown    = "unknown"
)

// GuessVenueKind 猜测venue更像会议还是期刊
// 在原始字符串（非归一化）上做小写包含检查，会议线索优先
func GuessVenueKind(venue string) string {
	v := strings.ToLower(venue)
	for _, cue := range conferenceCues {
		if strings.Contains(v, cue) {
			return HintConference
		}
	}
	for _, cue := range journalCues {
		if strings.Contains(v, cue) {
			return HintJournal
		}
	}
	return HintUnknown
}
