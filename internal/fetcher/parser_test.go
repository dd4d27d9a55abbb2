package fetcher

import (
	"testing"
)

const sampleHTML = `
<html><body>
<div id="gsc_prf_in">KokShiek Wong</div>
<table><tbody id="gsc_a_b">
<tr class="gsc_a_tr">
  <td class="gsc_a_t">
    <a class="gsc_a_at">Deep venue matching for fun and profit</a>
    <div class="gs_gray">Wong KS, Smith J, Lee T</div>
    <div class="gs_gray">IEEE Transactions on Pattern Analysis and Machine Intelligence, vol 44</div>
  </td>
  <td class="gsc_a_c"><a class="gsc_a_ac">1,234</a></td>
  <td class="gsc_a_y"><span>2021</span></td>
</tr>
<tr class="gsc_a_tr">
  <td class="gsc_a_t">
    <a class="gsc_a_at">A paper with elided authors</a>
    <div class="gs_gray">Smith J, ..., Wong KS</div>
    <div class="gs_gray">CVPR 2020</div>
  </td>
  <td class="gsc_a_c"><a class="gsc_a_ac"></a></td>
  <td class="gsc_a_y"><span></span></td>
</tr>
</tbody></table>
</body></html>`

func TestParseProfile(t *testing.T) {
	parser := NewScholarParser()

	profile, err := parser.Parse("testID123", sampleHTML)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if profile.Name != "KokShiek Wong" {
		t.Errorf("name = %q, want %q", profile.Name, "KokShiek Wong")
	}
	if profile.AuthorID != "testID123" {
		t.Errorf("author id = %q", profile.AuthorID)
	}
	if len(profile.Publications) != 2 {
		t.Fatalf("publications = %d, want 2", len(profile.Publications))
	}

	first := profile.Publications[0]
	if first.Citations != 1234 {
		t.Errorf("citations = %d, want 1234", first.Citations)
	}
	if first.Year != 2021 {
		t.Errorf("year = %d, want 2021", first.Year)
	}
	if first.Authors != "Wong KS, Smith J, Lee T" {
		t.Errorf("authors = %q", first.Authors)
	}

	// 省略标记必须原样保留，缺失引用/年份归零
	second := profile.Publications[1]
	if second.Authors != "Smith J, ..., Wong KS" {
		t.Errorf("ellipsis author string was altered: %q", second.Authors)
	}
	if second.Citations != 0 || second.Year != 0 {
		t.Errorf("missing citations/year must coerce to 0, got %d/%d", second.Citations, second.Year)
	}
}

func TestParseMultiPageMergesPublications(t *testing.T) {
	parser := NewScholarParser()

	profile, err := parser.ParseMultiPage("testID123", []string{sampleHTML, sampleHTML})
	if err != nil {
		t.Fatalf("ParseMultiPage failed: %v", err)
	}
	if len(profile.Publications) != 4 {
		t.Errorf("merged publications = %d, want 4", len(profile.Publications))
	}
}
