package report

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/vladimiradmaev/nutrition-helper/internal/database"
)

// EmptyDayMessage is sent instead of a report when a user recorded nothing
// on the given date. Callers branch on an empty entry list themselves; the
// formatter is never invoked for an empty day.
const EmptyDayMessage = "Вы ничего не записали сегодня."

// Daily renders the on-demand report for one user and date.
func Daily(date string, entries []database.Entry, t Totals) string {
	return render(fmt.Sprintf("📊 *Отчет за %s:*\n", date), entries, t)
}

// Scheduled renders the automatic end-of-day report. Same body as Daily,
// different header.
func Scheduled(date string, entries []database.Entry, t Totals) string {
	return render(fmt.Sprintf("📊 *Автоматический отчет за %s:*\n", date), entries, t)
}

func render(header string, entries []database.Entry, t Totals) string {
	var b strings.Builder
	b.WriteString(header)

	for _, e := range entries {
		b.WriteString(fmt.Sprintf(
			"- %s: %s г\n  Калории: %.2f ккал, Б: %.2f г, Ж: %.2f г, У: %.2f г\n",
			capitalize(e.Product),
			FormatAmount(e.AmountGrams),
			e.Calories, e.Proteins, e.Fats, e.Carbs,
		))
	}

	b.WriteString(fmt.Sprintf(
		"\n*Итого за день:*\nКалории: %.2f ккал\nБелки: %.2f г\nЖиры: %.2f г\nУглеводы: %.2f г",
		t.Calories, t.Proteins, t.Fats, t.Carbs,
	))

	return b.String()
}

// FormatAmount renders a gram amount without trailing zeros: 200 stays
// "200", 150.5 stays "150.5".
func FormatAmount(grams float64) string {
	return strconv.FormatFloat(grams, 'f', -1, 64)
}

// capitalize uppercases the first letter for display. Stored product names
// stay verbatim.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
