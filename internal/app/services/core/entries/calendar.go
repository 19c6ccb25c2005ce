package entries

import (
	"daily-journal-service/internal/app/models"
	"daily-journal-service/internal/pkg/constvars"
	"daily-journal-service/internal/pkg/dto/responses"
	"daily-journal-service/internal/pkg/utils"
	"fmt"
	"sort"
	"time"
)

var categoryOrder = func() map[string]int {
	order := make(map[string]int, len(constvars.EntryCategories))
	for i, category := range constvars.EntryCategories {
		order[category] = i
	}
	return order
}()

// SortEntries orders entries by date, then by category display order.
func SortEntries(entries []models.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].EntryDate != entries[j].EntryDate {
			return entries[i].EntryDate < entries[j].EntryDate
		}
		return categoryOrder[entries[i].Category] < categoryOrder[entries[j].Category]
	})
}

func emptyTotals() map[string]int {
	totals := make(map[string]int, len(constvars.EntryCategories))
	for _, category := range constvars.EntryCategories {
		totals[category] = 0
	}
	return totals
}

// CountByCategory tallies entries per category. Every category is present in the result.
func CountByCategory(entries []models.Entry) map[string]int {
	totals := emptyTotals()
	for _, entry := range entries {
		if _, ok := totals[entry.Category]; ok {
			totals[entry.Category]++
		}
	}
	return totals
}

// BuildCalendarDays lays out every day of the month with the categories recorded on it.
// today is a YYYY-MM-DD date in the service timezone.
func BuildCalendarDays(year int, month time.Month, today string, entries []models.Entry) []responses.CalendarDay {
	recorded := make(map[string]map[string]bool)
	for _, entry := range entries {
		if recorded[entry.EntryDate] == nil {
			recorded[entry.EntryDate] = make(map[string]bool)
		}
		recorded[entry.EntryDate][entry.Category] = true
	}

	daysInMonth := utils.DaysInMonth(year, month)
	days := make([]responses.CalendarDay, 0, daysInMonth)
	for day := 1; day <= daysInMonth; day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
		categories := make(map[string]bool, len(constvars.EntryCategories))
		for _, category := range constvars.EntryCategories {
			categories[category] = recorded[date][category]
		}
		days = append(days, responses.CalendarDay{
			Date:       date,
			Day:        day,
			Categories: categories,
			IsToday:    date == today,
			IsFuture:   date > today,
		})
	}
	return days
}

// CalculateStreak counts consecutive days with at least one entry, ending today or
// yesterday when nothing is recorded today yet.
func CalculateStreak(entryDates []string, today time.Time) int {
	recorded := make(map[string]struct{}, len(entryDates))
	for _, date := range entryDates {
		recorded[date] = struct{}{}
	}

	cursor := today
	if _, ok := recorded[utils.FormatDate(cursor)]; !ok {
		cursor = cursor.AddDate(0, 0, -1)
	}

	streak := 0
	for {
		if _, ok := recorded[utils.FormatDate(cursor)]; !ok {
			return streak
		}
		streak++
		cursor = cursor.AddDate(0, 0, -1)
	}
}

func monthBounds(year int, month time.Month) (string, string) {
	first := fmt.Sprintf("%04d-%02d-01", year, int(month))
	last := fmt.Sprintf("%04d-%02d-%02d", year, int(month), utils.DaysInMonth(year, month))
	return first, last
}
