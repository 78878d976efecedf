package greenops

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer groups thousands the English way for every report.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatNumber formats an integer with thousand separators.
// Example: FormatNumber(18248) returns "18,248".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatFloat formats f with precision decimals and thousand separators.
// Example: FormatFloat(1234.567, 2) returns "1,234.57".
func FormatFloat(f float64, precision int) string {
	if precision <= 0 {
		return FormatNumber(int64(math.Round(f)))
	}

	formatted := strconv.FormatFloat(f, 'f', precision, 64)
	intPart, fracPart, _ := strings.Cut(formatted, ".")
	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return formatted
	}
	grouped := FormatNumber(n)
	if n == 0 && strings.HasPrefix(intPart, "-") {
		grouped = "-" + grouped
	}
	return grouped + "." + fracPart
}

// FormatLarge abbreviates millions and billions ("~1.5 billion") and
// groups thousands below that.
func FormatLarge(n float64) string {
	if n >= BillionThreshold {
		return fmt.Sprintf("~%.1f billion", n/BillionThreshold)
	}
	if n >= LargeNumberThreshold {
		return fmt.Sprintf("~%.1f million", n/LargeNumberThreshold)
	}
	return FormatNumber(int64(math.Round(n)))
}

// FormatTenThousands renders n in rounded units of ten thousand,
// e.g. FormatTenThousands(2_345_678, "kWh") returns "235 10K kWh".
func FormatTenThousands(n int64, unit string) string {
	return FormatNumber(int64(math.Round(float64(n)/TenThousand))) + " 10K " + unit
}

// FormatTons renders a carbon figure, e.g. "3,712 tons".
func FormatTons(tons int64) string {
	return FormatNumber(tons) + " tons"
}

// FormatPercent renders a percentage with one decimal, e.g. "62.5%".
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.1f%%", p)
}

func formatEquivalencyValue(v float64) string {
	if v >= LargeNumberThreshold {
		return FormatLarge(v)
	}
	return FormatNumber(int64(math.Round(v)))
}
