package insight

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/MrJamesThe3rd/wealthboard/internal/transaction"
)

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	}

	return 0
}

type Kind string

const (
	KindOverspend    Kind = "overspend"
	KindSubscription Kind = "subscription"
	KindDining       Kind = "dining"
)

type Suggestion struct {
	ID               string
	Kind             Kind
	Category         string
	CurrentSpending  float64
	AverageSpending  float64
	PercentageChange float64
	Text             string
	PotentialSavings float64
	Priority         Priority
}

const (
	// DefaultHistoryMonths is the window the historical set is assumed to span.
	DefaultHistoryMonths = 3

	overspendPercent = 20
	highPercent      = 50
	overspendFloor   = 1000
	fallbackBaseline = 0.8

	subscriptionMinCount = 3
	subscriptionSavings  = 0.2
	diningCategory       = "Dining"
	diningMaxCount       = 5
	diningSavings        = 0.3
)

var subscriptionKeywords = []string{"subscription", "netflix", "spotify"}

// Generate flags expense categories and habits worth reviewing, highest priority first.
func Generate(current, historical []*transaction.Transaction) []Suggestion {
	return GenerateOver(current, historical, DefaultHistoryMonths)
}

// GenerateOver is Generate with the historical set spanning months months.
func GenerateOver(current, historical []*transaction.Transaction, months int) []Suggestion {
	if len(current) == 0 {
		return nil
	}

	if months < 1 {
		months = DefaultHistoryMonths
	}

	var suggestions []Suggestion

	categories, currentTotals := groupTotals(current)
	_, historyTotals := groupTotals(historical)

	for _, category := range categories {
		total := currentTotals[category]

		avg := total * fallbackBaseline
		if hist, ok := historyTotals[category]; ok {
			avg = hist / float64(months)
		}

		var change float64
		if avg > 0 {
			change = (total - avg) / avg * 100
		}

		if change <= overspendPercent || total <= overspendFloor {
			continue
		}

		priority := PriorityMedium
		if change > highPercent {
			priority = PriorityHigh
		}

		suggestions = append(suggestions, Suggestion{
			ID:               "sugg-" + slug(category),
			Kind:             KindOverspend,
			Category:         category,
			CurrentSpending:  math.Round(total),
			AverageSpending:  math.Round(avg),
			PercentageChange: math.Round(change),
			Text: fmt.Sprintf("Spending on %s is %.0f%% higher than average. Review recent transactions.",
				category, math.Round(change)),
			PotentialSavings: math.Round(total - avg),
			Priority:         priority,
		})
	}

	if s, ok := subscriptions(current); ok {
		suggestions = append(suggestions, s)
	}

	if s, ok := dining(current); ok {
		suggestions = append(suggestions, s)
	}

	slices.SortStableFunc(suggestions, func(a, b Suggestion) int {
		return b.Priority.rank() - a.Priority.rank()
	})

	return suggestions
}

func subscriptions(current []*transaction.Transaction) (Suggestion, bool) {
	var (
		count int
		total float64
	)

	for _, tx := range current {
		if isSubscription(tx) {
			count++
			total += tx.Amount
		}
	}

	if count < subscriptionMinCount {
		return Suggestion{}, false
	}

	return Suggestion{
		ID:               "sugg-subs",
		Kind:             KindSubscription,
		Category:         "Subscriptions",
		CurrentSpending:  total,
		AverageSpending:  total,
		Text:             fmt.Sprintf("You have %d active subscriptions. Cancel unused ones to save.", count),
		PotentialSavings: math.Round(total * subscriptionSavings),
		Priority:         PriorityMedium,
	}, true
}

func isSubscription(tx *transaction.Transaction) bool {
	category := strings.ToLower(tx.Category)
	description := strings.ToLower(tx.Description)

	for _, kw := range subscriptionKeywords {
		if strings.Contains(category, kw) || strings.Contains(description, kw) {
			return true
		}
	}

	return false
}

func dining(current []*transaction.Transaction) (Suggestion, bool) {
	var (
		count int
		total float64
	)

	for _, tx := range current {
		if tx.Category == diningCategory {
			count++
			total += tx.Amount
		}
	}

	if count <= diningMaxCount {
		return Suggestion{}, false
	}

	return Suggestion{
		ID:               "sugg-dining",
		Kind:             KindDining,
		Category:         diningCategory,
		CurrentSpending:  total,
		Text:             fmt.Sprintf("You dined out %d times. Cooking home more often could save significantly.", count),
		PotentialSavings: math.Round(total * diningSavings),
		Priority:         PriorityLow,
	}, true
}

// groupTotals sums amounts per category, keeping categories in first-seen order.
func groupTotals(txs []*transaction.Transaction) ([]string, map[string]float64) {
	var order []string

	totals := make(map[string]float64)

	for _, tx := range txs {
		if _, seen := totals[tx.Category]; !seen {
			order = append(order, tx.Category)
		}

		totals[tx.Category] += tx.Amount
	}

	return order, totals
}

func slug(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "-")
}
