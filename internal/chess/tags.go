package chess

// Tag names recognised by GameInfo.
const (
	WhiteTag    = "White"
	BlackTag    = "Black"
	WhiteEloTag = "WhiteElo"
	BlackEloTag = "BlackElo"
	EventTag    = "Event"
	RoundTag    = "Round"
	SiteTag     = "Site"
	DateTag     = "Date"
	ECOTag      = "ECO"
	FENTag      = "FEN"
	ResultTag   = "Result"
)
