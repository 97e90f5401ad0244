package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	MarqueeGold = lipgloss.Color("#F5C518")
	SlateDark   = lipgloss.Color("#1F2937")
	SlateLight  = lipgloss.Color("#374151")
	DimGray     = lipgloss.Color("#6B7280")
	LightGray   = lipgloss.Color("#9CA3AF")
	White       = lipgloss.Color("#F9FAFB")
	Green       = lipgloss.Color("#10B981")
	Red         = lipgloss.Color("#EF4444")
)

// Borders
var (
	ActiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(MarqueeGold)

	InactiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray)
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(MarqueeGold)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Red)

	LabelStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Bold(true).
			Width(10)
)

// Favorite marker characters (unstyled)
const (
	FavoriteChar    = "★"
	NotFavoriteChar = "☆"
)

// Pre-rendered favorite markers
var (
	FavoriteMark    = lipgloss.NewStyle().Foreground(MarqueeGold).Render(FavoriteChar)
	NotFavoriteMark = lipgloss.NewStyle().Foreground(DimGray).Render(NotFavoriteChar)
)

// Panel styles
var (
	MainPanelStyle = lipgloss.NewStyle().
			Padding(0, 1)

	FavoritesPanelStyle = lipgloss.NewStyle().
				Padding(0, 1)
)

// Card styles
var (
	CardStyle = lipgloss.NewStyle().
			Foreground(LightGray).
			Padding(0, 1)

	CardSelectedStyle = lipgloss.NewStyle().
				Foreground(White).
				Background(SlateLight).
				Padding(0, 1)
)

// Pager button styles
var (
	PagerEnabledStyle = lipgloss.NewStyle().
				Foreground(MarqueeGold).
				Padding(0, 1)

	PagerDisabledStyle = lipgloss.NewStyle().
				Foreground(SlateLight).
				Padding(0, 1)
)

// Modal styles
var (
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(MarqueeGold).
			Padding(1, 2).
			Background(SlateDark)
)

// Help styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(MarqueeGold)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// Spinner style
var (
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(MarqueeGold)
)

// Input styles
var (
	PromptStyle = lipgloss.NewStyle().
			Foreground(MarqueeGold).
			Bold(true)

	SuggestionStyle = lipgloss.NewStyle().
			Foreground(DimGray).
			Italic(true)
)

// Match highlight styles for favorites filtering
var (
	MatchHighlightStyle = lipgloss.NewStyle().
				Foreground(MarqueeGold).
				Bold(true)

	MatchHighlightSelectedStyle = lipgloss.NewStyle().
					Foreground(MarqueeGold).
					Background(SlateLight).
					Bold(true)
)

// Helper functions

// Truncate truncates a string to the given display width with ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}

// Highlight renders s with the runes at the matched positions emphasized
func Highlight(s string, matched []int, selected bool) string {
	if len(matched) == 0 {
		return s
	}

	hl := MatchHighlightStyle
	if selected {
		hl = MatchHighlightSelectedStyle
	}

	set := make(map[int]bool, len(matched))
	for _, i := range matched {
		set[i] = true
	}

	var b strings.Builder
	for i, r := range []rune(s) {
		if set[i] {
			b.WriteString(hl.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
