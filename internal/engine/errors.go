package engine

// RuleError is an action rejected by the turn rules. A rejected action
// changes nothing; the caller may retry with corrected input.
type RuleError string

func (e RuleError) Error() string { return string(e) }

var (
	ErrActionNotAllowed    = RuleError("action not allowed in this phase")
	ErrNotYourTurn         = RuleError("not this player's turn")
	ErrAlreadyPlaced       = RuleError("settlement already placed this turn")
	ErrNoSettlementPlaced  = RuleError("place a settlement before its road")
	ErrRoadNotAtSettlement = RuleError("road must touch the settlement just placed")
	ErrSettlementOnly      = RuleError("only settlements are placed during setup")
	ErrNoStock             = RuleError("no pieces of that kind left")
	ErrInsufficient        = RuleError("not enough resources")
	ErrTradePending        = RuleError("a trade is awaiting an answer")
	ErrNoTrade             = RuleError("no trade is pending")
	ErrInvalidTrade        = RuleError("trade is not valid")
	ErrNotTradePartner     = RuleError("only the receiving player may answer a trade")
	ErrNoDiscardDue        = RuleError("player has nothing to discard")
	ErrDiscardAmount       = RuleError("discard must be exactly half the hand, rounded down")
	ErrRobberMoved         = RuleError("robber already moved")
	ErrRobberNotMovedYet   = RuleError("move the robber first")
	ErrNotVictim           = RuleError("player has no building next to the robber")
	ErrDeckEmpty           = RuleError("no development cards left")
	ErrCardNotPlayable     = RuleError("no playable card of that kind")
	ErrCardAlreadyUsed     = RuleError("a development card was already used this turn")
	ErrInvalidResource     = RuleError("not a tradeable resource")
)
