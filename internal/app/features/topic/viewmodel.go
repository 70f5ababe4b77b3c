package topic

import (
	"html/template"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dalemusser/learnhub/internal/app/catalog"
	"github.com/dalemusser/learnhub/internal/app/features/shared"
	"github.com/dalemusser/learnhub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/learnhub/internal/app/system/navigation"
	"github.com/dalemusser/learnhub/internal/app/system/tabs"
	"github.com/dalemusser/learnhub/internal/app/system/viewdata"
	"github.com/dalemusser/learnhub/internal/domain/models"
)

type linkVM struct {
	Title string
	URL   string
}

type tabVM struct {
	ID     string
	Label  string
	Active bool
	URL    string
}

type exampleVM struct {
	ID          string
	Title       string
	Code        string
	Explanation string
	Copied      bool
	CopyURL     string
}

type keyPointVM struct {
	N    int
	Text string
}

type pageData struct {
	viewdata.BaseVM

	ID            string
	Icon          string
	Description   string
	Category      string
	CategoryClass string
	Dots          []shared.Dot
	Duration      string

	Tabs    []tabVM
	Section string

	Overview  template.HTML
	Concepts  []string
	Examples  []exampleVM
	Exercises []models.Exercise
	KeyPoints []keyPointVM

	Prev *linkVM
	Next *linkVM
}

// tabURL links to the topic page with section active, carrying the catalog
// return target along.
func tabURL(id string, section tabs.Section, ret string) string {
	v := url.Values{}
	v.Set("tab", string(section))
	if ret != navigation.CatalogPath {
		v.Set("return", ret)
	}
	return "/topic/" + url.PathEscape(id) + "?" + v.Encode()
}

func buildPage(r *http.Request, c *catalog.Catalog, tc models.TopicContent, active tabs.Section, copied map[string]bool) pageData {
	ret := navigation.CatalogBackURL(r)

	data := pageData{
		BaseVM:        viewdata.NewBaseVM(r, tc.Title, navigation.CatalogPath),
		ID:            tc.ID,
		Icon:          tc.Icon,
		Description:   tc.Description,
		Category:      tc.Category,
		CategoryClass: shared.CategoryClass(tc.Category),
		Dots:          shared.DifficultyDots(tc.Difficulty),
		Duration:      tc.Duration,
		Section:       string(active),
		Overview:      htmlsanitize.HTML(tc.Overview),
		Concepts:      tc.Concepts,
		Exercises:     tc.Exercises,
	}
	data.BackURL = ret

	for _, s := range tabs.Sections {
		data.Tabs = append(data.Tabs, tabVM{
			ID:     string(s),
			Label:  s.Label(),
			Active: s == active,
			URL:    tabURL(tc.ID, s, ret),
		})
	}

	for i, ex := range tc.CodeExamples {
		exID := models.ExampleID(i)
		data.Examples = append(data.Examples, exampleVM{
			ID:          exID,
			Title:       ex.Title,
			Code:        ex.Code,
			Explanation: ex.Explanation,
			Copied:      copied[exID],
			CopyURL:     "/topic/" + url.PathEscape(tc.ID) + "/examples/" + strconv.Itoa(i) + "/copy",
		})
	}

	for i, p := range tc.KeyPoints {
		data.KeyPoints = append(data.KeyPoints, keyPointVM{N: i + 1, Text: p})
	}

	if nb, ok := c.Adjacent(tc.ID); ok {
		if nb.Prev != nil {
			data.Prev = &linkVM{Title: nb.Prev.Title, URL: navigation.TopicURL(nb.Prev.ID, ret)}
		}
		if nb.Next != nil {
			data.Next = &linkVM{Title: nb.Next.Title, URL: navigation.TopicURL(nb.Next.ID, ret)}
		}
	}
	return data
}
