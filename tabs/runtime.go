package tabs

import (
	"fmt"
	"math"
	"strings"

	"tuilab/internal/config"
	"tuilab/internal/preview"
	"tuilab/internal/series"
	"tuilab/internal/session"
	"tuilab/internal/todo"
)

// Deps carries the services panes read at render time. Panes reach them
// through the package-level accessors so tabs stay constructible (and
// renderable, with "not ready" bodies) before wiring runs.
type Deps struct {
	Config  config.Config
	Store   *session.Store
	Todos   *todo.Service
	Preview *preview.Service
	Series  *series.Source
}

var runtimeDeps Deps

func bindRuntime(deps Deps) {
	runtimeDeps = deps
}

func activeStore() *session.Store     { return runtimeDeps.Store }
func activeTodos() *todo.Service      { return runtimeDeps.Todos }
func activePreview() *preview.Service { return runtimeDeps.Preview }
func activeSeries() *series.Source    { return runtimeDeps.Series }
func activeConfig() config.Config     { return runtimeDeps.Config }

// formatMoney renders an amount with the configured currency symbol,
// thousands separators and two decimals.
func formatMoney(v float64) string {
	symbol := activeConfig().UI.CurrencySymbol
	if symbol == "" {
		symbol = "₹"
	}
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	whole := int64(math.Floor(v))
	cents := int64(math.Round((v - float64(whole)) * 100))
	if cents >= 100 {
		whole++
		cents -= 100
	}
	return sign + symbol + groupThousands(whole) + fmt.Sprintf(".%02d", cents)
}

func groupThousands(n int64) string {
	digits := fmt.Sprintf("%d", n)
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
