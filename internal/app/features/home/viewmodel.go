package home

import (
	"net/http"

	"github.com/dalemusser/learnhub/internal/app/catalog"
	"github.com/dalemusser/learnhub/internal/app/features/shared"
	"github.com/dalemusser/learnhub/internal/app/system/navigation"
	"github.com/dalemusser/learnhub/internal/app/system/viewdata"
	"github.com/dalemusser/learnhub/internal/domain/models"
)

type categoryVM struct {
	Name   string
	Active bool
	URL    string
}

type cardVM struct {
	ID            string
	Title         string
	Description   string
	Category      string
	CategoryClass string
	Dots          []shared.Dot
	Duration      string
	Icon          string
	Completed     bool
	URL           string
}

type pageData struct {
	viewdata.BaseVM

	Query      string
	Category   string
	Categories []categoryVM
	Cards      []cardVM
	Filtered   bool
	Empty      bool
	Count      int
	Completed  int
	Total      int
}

func buildPage(r *http.Request, c *catalog.Catalog, res catalog.Result) pageData {
	ret := navigation.CatalogURL(res.Query, res.Category)
	progress := c.Progress()

	data := pageData{
		BaseVM:    viewdata.NewBaseVM(r, "", "/"),
		Query:     res.Query,
		Category:  res.Category,
		Filtered:  res.Filtered(),
		Empty:     res.Empty(),
		Count:     res.Count(),
		Completed: progress.Completed,
		Total:     progress.Total,
	}

	for _, name := range models.CategorySelectors {
		data.Categories = append(data.Categories, categoryVM{
			Name:   name,
			Active: name == res.Category,
			URL:    navigation.CatalogURL(res.Query, name),
		})
	}

	data.Cards = make([]cardVM, 0, len(res.Topics))
	for _, t := range res.Topics {
		data.Cards = append(data.Cards, cardVM{
			ID:            t.ID,
			Title:         t.Title,
			Description:   t.Description,
			Category:      t.Category,
			CategoryClass: shared.CategoryClass(t.Category),
			Dots:          shared.DifficultyDots(t.Difficulty),
			Duration:      t.Duration,
			Icon:          t.Icon,
			Completed:     t.Completed,
			URL:           navigation.TopicURL(t.ID, ret),
		})
	}
	return data
}
