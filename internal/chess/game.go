package chess

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Result is the outcome recorded at the end of a game's movetext.
type Result int

const (
	ResultUnknown Result = iota
	WhiteWins
	BlackWins
	Draw
)

// Result token strings.
const (
	ResultWhiteWinString = "1-0"
	ResultBlackWinString = "0-1"
	ResultDrawString     = "1/2-1/2"
	ResultNoneString     = "*"
)

// ResultFromString maps a result token to a Result.
func ResultFromString(s string) Result {
	switch s {
	case ResultWhiteWinString:
		return WhiteWins
	case ResultBlackWinString:
		return BlackWins
	case ResultDrawString:
		return Draw
	}
	return ResultUnknown
}

// String returns the PGN token for the result.
func (r Result) String() string {
	switch r {
	case WhiteWins:
		return ResultWhiteWinString
	case BlackWins:
		return ResultBlackWinString
	case Draw:
		return ResultDrawString
	}
	return ResultNoneString
}

// Description returns the text shown when a game finishes.
func (r Result) Description() string {
	switch r {
	case WhiteWins:
		return "White wins"
	case BlackWins:
		return "Black wins"
	case Draw:
		return "Draw"
	}
	return "Game ended"
}

// Fixed widths of the short GameInfo fields.
const (
	MaxDateLen = 10
	MaxECOLen  = 3
	MaxEloLen  = 4
)

// GameInfo holds the metadata of the game being replayed.
type GameInfo struct {
	White    string
	Black    string
	WhiteElo string
	BlackElo string
	Event    string
	Round    string
	Site     string
	Date     string
	ECO      string

	// FEN is only set when the game starts from a non-standard position.
	FEN string

	Result Result

	// Extra holds tags that have no dedicated field.
	Extra map[string]string
}

// Reset clears all fields before the next game's tags are read.
func (g *GameInfo) Reset() {
	*g = GameInfo{}
}

// Update stores a tag value, replacing any previous value.
// Unrecognised tags are kept in Extra and otherwise ignored.
func (g *GameInfo) Update(tag, value string) {
	switch tag {
	case WhiteTag:
		g.White = value
	case BlackTag:
		g.Black = value
	case EventTag:
		g.Event = value
	case SiteTag:
		g.Site = value
	case RoundTag:
		if value != "?" {
			g.Round = value
		}
	case FENTag:
		g.FEN = value
	case DateTag:
		g.Date = truncate(value, MaxDateLen)
	case ECOTag:
		g.ECO = truncate(value, MaxECOLen)
	case WhiteEloTag:
		g.WhiteElo = truncate(value, MaxEloLen)
	case BlackEloTag:
		g.BlackElo = truncate(value, MaxEloLen)
	default:
		if g.Extra == nil {
			g.Extra = make(map[string]string)
		}
		g.Extra[tag] = value
	}
}

// Title returns a one-line "White - Black" description.
func (g *GameInfo) Title() string {
	white, black := orUnknown(g.White), orUnknown(g.Black)
	if g.WhiteElo != "" {
		white = fmt.Sprintf("%s (%s)", white, g.WhiteElo)
	}
	if g.BlackElo != "" {
		black = fmt.Sprintf("%s (%s)", black, g.BlackElo)
	}
	return white + " - " + black
}

// Summary returns event, round, site and date joined for logging.
func (g *GameInfo) Summary() string {
	var parts []string
	for _, s := range []string{g.Event, g.Round, g.Site, g.Date, g.ECO} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

// ExtraTags returns the names of the unrecognised tags in sorted order.
func (g *GameInfo) ExtraTags() []string {
	names := make([]string, 0, len(g.Extra))
	for name := range g.Extra {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func orUnknown(s string) string {
	if s == "" {
		return "<Unknown>"
	}
	return s
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
