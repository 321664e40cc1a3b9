// Shared text formatting helpers for both the JSON and classic-sheet
// renderers, grounded on ali-raheem/fallout-se's
// crates/fallout_render/src/lib.rs (format_date, format_game_time,
// format_number_with_commas, month_to_name).

package render

import (
	"fmt"
	"strings"
)

func formatDate(year, month, day int16) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// formatGameTime turns the raw in-game tick count into an HHMM clock
// string: 600 ticks per hour, 10 ticks per minute.
func formatGameTime(gameTime uint32) string {
	hours := (gameTime / 600) % 24
	minutes := (gameTime / 10) % 60
	return fmt.Sprintf("%02d%02d", hours, minutes)
}

// formatNumberWithCommas renders n with thousands separators, e.g.
// 1234567 -> "1,234,567".
func formatNumberWithCommas(n int32) string {
	if n < 0 {
		return "-" + formatNumberWithCommas(-n)
	}
	s := fmt.Sprintf("%d", n)
	var b strings.Builder
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return b.String()
}

var monthNames = [...]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

func monthToName(month int16) string {
	if month < 1 || int(month) > len(monthNames) {
		return "Unknown"
	}
	return monthNames[month-1]
}
