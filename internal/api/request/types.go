package request

// CreateMatchRequest is the request body for creating a match
type CreateMatchRequest struct {
	Players    int    `json:"players,omitempty"`
	Locale     string `json:"locale,omitempty"`
	TurnSource string `json:"turn_source,omitempty"`
}

// PlayerRequest is the request body for transitions that only name the player
type PlayerRequest struct {
	Player int `json:"player"`
}

// StartPlacingRequest is the request body for anchoring or rotating a word
type StartPlacingRequest struct {
	Player int `json:"player"`
	X      int `json:"x"`
	Y      int `json:"y"`
}

// TileRequest is the request body for toggling a rack tile
type TileRequest struct {
	Player int `json:"player"`
	TileID int `json:"tile_id"`
}

// RevealRequest is the request body for reporting a revealed tile
type RevealRequest struct {
	Player int `json:"player"`
	Slot   int `json:"slot"`
}
