package fetcher

import (
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"scholar-metrics-go/internal/model"
)

// ScholarParser Google Scholar HTML解析器
type ScholarParser struct{}

// NewScholarParser 创建解析器
func NewScholarParser() *ScholarParser {
	return &ScholarParser{}
}

// Parse 解析单页HTML为学者档案
// 作者串保留原始文本（逗号分隔，可能含"..."省略标记），角色分类依赖它
func (p *ScholarParser) Parse(scholarID, html string) (*model.AuthorProfile, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	profile := &model.AuthorProfile{
		AuthorID:  scholarID,
		Name:      strings.TrimSpace(doc.Find("#gsc_prf_in").Text()),
		ScrapedAt: time.Now().UTC(),
	}
	profile.Publications = parsePublications(doc)

	return profile, nil
}

// ParseMultiPage 解析多页HTML，第一页含档案信息，后续页只合并论文
func (p *ScholarParser) ParseMultiPage(scholarID string, htmlPages []string) (*model.AuthorProfile, error) {
	if len(htmlPages) == 0 {
		return nil, nil
	}

	profile, err := p.Parse(scholarID, htmlPages[0])
	if err != nil {
		return nil, err
	}

	for i := 1; i < len(htmlPages); i++ {
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlPages[i]))
		if err != nil {
			continue // 忽略解析失败的页面
		}
		profile.Publications = append(profile.Publications, parsePublications(doc)...)
	}

	return profile, nil
}

func parsePublications(doc *goquery.Document) []model.Publication {
	pubs := []model.Publication{}

	doc.Find(".gsc_a_tr").Each(func(i int, s *goquery.Selection) {
		pub := model.Publication{}

		pub.Title = strings.TrimSpace(s.Find(".gsc_a_at").Text())

		// 第一行灰字是作者，第二行是venue
		grayText := s.Find(".gs_gray")
		if grayText.Length() >= 1 {
			pub.Authors = strings.TrimSpace(grayText.Eq(0).Text())
		}
		if grayText.Length() >= 2 {
			pub.Venue = strings.TrimSpace(grayText.Eq(1).Text())
		}

		citesText := strings.TrimSpace(s.Find(".gsc_a_ac").Text())
		pub.Citations, _ = strconv.Atoi(strings.ReplaceAll(citesText, ",", ""))
		if pub.Citations < 0 {
			pub.Citations = 0
		}

		// 年份解析失败保持0（未知），聚合时排除出年龄/近期计算
		yearText := strings.TrimSpace(s.Find(".gsc_a_y span").Text())
		pub.Year, _ = strconv.Atoi(yearText)

		if pub.Title != "" {
			pubs = append(pubs, pub)
		}
	})

	return pubs
}
