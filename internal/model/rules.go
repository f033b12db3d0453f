package model

// Fixed game dimensions
const (
	BoardSize  = 15 // Standard board is BoardSize x BoardSize
	RackSize   = 7  // Tiles a player holds when fully refilled
	WordLength = 5  // Length of words the dictionary tree accepts
	MaxPlayers = 4  // Seats a match may be created with
)
