// Package shared holds presentation helpers used by more than one feature.
package shared

import "github.com/dalemusser/learnhub/internal/domain/models"

// Dot is one of the three difficulty indicators on a topic card.
type Dot struct {
	Class string
}

// CategoryClass returns the badge classes for a topic category.
func CategoryClass(category string) string {
	switch category {
	case models.CategoryBasic:
		return "bg-blue-100 text-blue-800 dark:bg-blue-900 dark:text-blue-300"
	case models.CategoryIntermediate:
		return "bg-yellow-100 text-yellow-800 dark:bg-yellow-900 dark:text-yellow-300"
	case models.CategoryAdvanced:
		return "bg-red-100 text-red-800 dark:bg-red-900 dark:text-red-300"
	default:
		return "bg-gray-100 text-gray-800 dark:bg-gray-900 dark:text-gray-300"
	}
}

func difficultyColor(d int) string {
	switch d {
	case 1:
		return "bg-green-500"
	case 2:
		return "bg-yellow-500"
	case 3:
		return "bg-red-500"
	default:
		return "bg-gray-500"
	}
}

// DifficultyDots returns three dots with the first d filled in the colour of
// difficulty d.
func DifficultyDots(d int) []Dot {
	dots := make([]Dot, models.MaxDifficulty)
	for i := range dots {
		if i < d {
			dots[i].Class = difficultyColor(d)
		} else {
			dots[i].Class = "bg-gray-200"
		}
	}
	return dots
}
