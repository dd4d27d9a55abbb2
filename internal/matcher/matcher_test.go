package matcher

import (
	"testing"

	"scholar-metrics-go/internal/model"
)

// 测试用的小语料库
func testMatcher() *Matcher {
	journals := []VenueRecord{
		{Title: "IEEE Transactions on Pattern Analysis and Machine Intelligence", Rank: "Q1"},
		{Title: "Journal of Machine Learning Research", Rank: "Q1"},
		{Title: "Pattern Recognition Letters", Rank: "Q2"},
		{Title: "International Journal of Computer Vision", Rank: ""},
		{Title: "International Journal of Computer Vision and Image Understanding", Rank: "Q3"},
	}
	conferences := []VenueRecord{
		{Title: "IEEE Conference on Computer Vision and Pattern Recognition", Acronym: "cvpr", Rank: "A*"},
		{Title: "International Conference on Machine Learning", Acronym: "icml", Rank: "A*"},
		{Title: "International Workshop on Pattern Recognition", Acronym: "", Rank: "C"},
		{Title: "Symposium on Discrete Algorithms", Acronym: "soda", Rank: "nan"},
	}
	return NewMatcher(journals, conferences)
}

func TestMatchExactIsReflexive(t *testing.T) {
	m := testMatcher()

	// 每个语料行的原始标题都必须精确匹配回自己
	rows := append(append([]VenueRecord{}, m.journals...), m.conferences...)
	for _, row := range rows {
		got := m.Match(row.Title)
		if got.Method != model.MethodExact {
			t.Errorf("Match(%q) method = %q, want %q", row.Title, got.Method, model.MethodExact)
			continue
		}
		if got.Kind != row.Kind || got.MatchedTitle != row.Title || got.Rank != row.Rank || got.Score != 100.0 {
			t.Errorf("Match(%q) = %+v, want kind=%s title=%s rank=%s score=100", row.Title, got, row.Kind, row.Title, row.Rank)
		}
	}
}

func TestMatchEmptyVenue(t *testing.T) {
	m := testMatcher()

	for _, venue := range []string{"", "   ", "\t"} {
		got := m.Match(venue)
		if got.Kind != model.KindNone || got.Method != model.MethodNone || got.Score != 0 {
			t.Errorf("Match(%q) = %+v, want kind=None method=None", venue, got)
		}
	}
}

func TestMatchNormalizesToEmpty(t *testing.T) {
	m := testMatcher()

	// 纯噪声venue：归一化后为空 → Unranked/Failed
	got := m.Match("2021, pp. 12-34")
	if got.Kind != model.KindUnranked || got.Method != model.MethodFailed || got.Rank != "-" {
		t.Errorf("Match(noise) = %+v, want Unranked/Failed/-", got)
	}
}

func TestMatchAcronym(t *testing.T) {
	m := testMatcher()

	// 标题不精确匹配，但原始串里有大写缩写词CVPR
	got := m.Match("Proc. of the IEEE CVPR 2021")
	if got.Method != model.MethodAcronym {
		t.Fatalf("Match method = %q, want %q", got.Method, model.MethodAcronym)
	}
	if got.Kind != model.KindConference || got.Score != 100.0 {
		t.Errorf("acronym match = %+v, want Conference/100", got)
	}
	if got.MatchedTitle != "IEEE Conference on Computer Vision and Pattern Recognition" {
		t.Errorf("acronym matched title = %q", got.MatchedTitle)
	}
}

func TestMatchAcronymNeedsThreeUppercase(t *testing.T) {
	m := testMatcher()

	// "MM 2020"只有两个大写字母，不触发缩写匹配
	got := m.Match("MM 2020")
	if got.Method == model.MethodAcronym {
		t.Errorf("two-letter token must not trigger acronym match, got %+v", got)
	}
}

func TestMatchSubstringPicksShortest(t *testing.T) {
	m := testMatcher()

	// "journal of computer vision"是两个期刊标题的子串，取归一化标题最短的
	got := m.Match("Journal of Computer Vision, vol 3")
	if got.Method != model.MethodSubstring {
		t.Fatalf("Match method = %q, want %q (result %+v)", got.Method, model.MethodSubstring, got)
	}
	if got.Kind != model.KindJournal || got.MatchedTitle != "International Journal of Computer Vision" {
		t.Errorf("substring match = %+v, want shortest containing journal title", got)
	}
	if got.Score != 95.0 {
		t.Errorf("substring score = %v, want 95", got.Score)
	}
	if got.Rank != "-" {
		t.Errorf("blank rank must normalize to %q, got %q", "-", got.Rank)
	}
}

func TestMatchConferenceWinsTies(t *testing.T) {
	m := testMatcher()

	// 无提示，"pattern recognition"在会议表和期刊表都有子串命中（都是95分）
	// 平分时会议优先
	got := m.Match("pattern recognition")
	if got.Method != model.MethodSubstring {
		t.Fatalf("Match method = %q, want %q", got.Method, model.MethodSubstring)
	}
	if got.Kind != model.KindConference {
		t.Errorf("tie must go to conference, got %+v", got)
	}
}

func TestMatchFuzzy(t *testing.T) {
	m := testMatcher()

	// 拼写错误的venue：不精确、无缩写、不是子串，落到模糊匹配
	got := m.Match("Internationl Conference on Machine Learning")
	if got.Method != model.MethodFuzzy {
		t.Fatalf("Match method = %q, want %q (result %+v)", got.Method, model.MethodFuzzy, got)
	}
	if got.Kind != model.KindConference || got.MatchedTitle != "International Conference on Machine Learning" {
		t.Errorf("fuzzy match = %+v", got)
	}
	if got.Score < 85 || got.Score > 100 {
		t.Errorf("fuzzy score %v outside [85,100]", got.Score)
	}
}

func TestMatchBelowCutoffFails(t *testing.T) {
	m := testMatcher()

	got := m.Match("Quarterly Gazette of Underwater Basket Weaving")
	if got.Kind != model.KindUnranked || got.Method != model.MethodFailed {
		t.Errorf("unrelated venue = %+v, want Unranked/Failed", got)
	}
}

func TestConferenceShadowsJournal(t *testing.T) {
	// 期刊和会议归一化标题相同时，后加载的会议覆盖期刊
	journals := []VenueRecord{{Title: "Machine Learning", Rank: "Q1"}}
	conferences := []VenueRecord{{Title: "Machine Learning", Rank: "B"}}
	m := NewMatcher(journals, conferences)

	got := m.Match("Machine Learning")
	if got.Kind != model.KindConference || got.Rank != "B" {
		t.Errorf("shadowed lookup = %+v, want Conference/B", got)
	}
}

func TestRankSentinelNormalizedInResults(t *testing.T) {
	m := testMatcher()

	// "nan" rank在结果里必须变成"-"
	got := m.Match("Symposium on Discrete Algorithms")
	if got.Rank != "-" {
		t.Errorf("rank = %q, want %q", got.Rank, "-")
	}
}

func TestGuessVenueKind(t *testing.T) {
	testCases := []struct {
		venue string
		want  string
	}{
		{"Proceedings of the 38th ICML", HintConference},
		{"NeurIPS 2023", HintConference},
		{"IEEE Transactions on Image Processing", HintJournal},
		{"Nature", HintUnknown},
		{"International Workshop on Testing", HintConference},
		{"Optics Letters", HintJournal},
	}

	for _, tc := range testCases {
		if got := GuessVenueKind(tc.venue); got != tc.want {
			t.Errorf("GuessVenueKind(%q) = %q, want %q", tc.venue, got, tc.want)
		}
	}
}
