package models

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QRCode maps a physical code to the component it grants and the
// component its clue points toward next. Fixed catalog, immutable at
// runtime except for lazy seeding.
type QRCode struct {
	OID                 primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID                  string             `bson:"id" json:"id"`
	ComponentID         string             `bson:"componentId" json:"componentId"`
	PointsToComponentID string             `bson:"pointsToComponentId" json:"pointsToComponentId"`
	Clue                string             `bson:"clue" json:"clue"`
	Hint                string             `bson:"hint" json:"hint"`
	Difficulty          string             `bson:"difficulty" json:"difficulty"`
	Location            string             `bson:"location,omitempty" json:"location,omitempty"`
	CreatedAt           time.Time          `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// ClueEntry holds the clue text for one component.
type ClueEntry struct {
	ComponentID string `json:"componentId"`
	Clue        string `json:"clue"`
	Hint        string `json:"hint"`
	Difficulty  string `json:"difficulty"`
}

// QRCodeIDs are the fixed physical code identifiers printed on campus,
// index-aligned with DefaultComponents.
var QRCodeIDs = []string{
	"550e8400-e29b-41d4-a716-446655440000",
	"6ba7b810-9dad-11d1-80b4-00c04fd430c8",
	"9b1deb4d-3b7d-4bad-9bdd-2b0d7b3dcb6d",
	"1b9d6bcd-bbfd-4b2d-9b5d-ab8dfbbd4bed",
	"f47ac10b-58cc-4372-a567-0e02b2c3d479",
}

// CluesAndHints is the clue table, index-aligned with DefaultComponents.
var CluesAndHints = []ClueEntry{
	{
		ComponentID: "led",
		Clue:        "On the right side where fees are paid, a shining star is sleeping on the stairs, not up, not down, but in the middle heart.",
		Hint:        "Look on the middle step for a bright sticker.",
		Difficulty:  "Easy",
	},
	{
		ComponentID: "resistor",
		Clue:        "Where everyone eats lunch, a tiny wall that fights the electric flow is dancing near the place where food plates are born, but not where you sit.",
		Hint:        "Check near the food counter.",
		Difficulty:  "Above Easy",
	},
	{
		ComponentID: "breadboard",
		Clue:        "Where many books stay quiet, a big square bed where circuits grow is hiding under the king of tables, where old books whisper secrets.",
		Hint:        "Look under the biggest table in the old books area.",
		Difficulty:  "Hard",
	},
	{
		ComponentID: "jumper-wires",
		Clue:        "On the 1st floor where smart machines are made, thin snakes that tie machines together are sleeping behind a magic box where a tiny star blinks like a heartbeat.",
		Hint:        "Find a box with a blinking light on a table.",
		Difficulty:  "Super Hard",
	},
	{
		ComponentID: "battery",
		Clue:        "At the center of campus where grass grows under open sky, a box that feeds power to machines is hiding where the ground kisses the feet of the tallest green giant.",
		Hint:        "Look at the bottom of the biggest tree.",
		Difficulty:  "Difficult, Slightly Easier than Super Hard",
	},
}

// DefaultQRCodes builds the seed catalog. Each code grants the component
// at its index and points to the next component in circular order.
func DefaultQRCodes(now time.Time) []QRCode {
	codes := make([]QRCode, len(QRCodeIDs))
	for i, id := range QRCodeIDs {
		next := (i + 1) % len(DefaultComponents)
		codes[i] = QRCode{
			ID:                  id,
			ComponentID:         DefaultComponents[i].ID,
			PointsToComponentID: DefaultComponents[next].ID,
			Clue:                CluesAndHints[i].Clue,
			Hint:                CluesAndHints[i].Hint,
			Difficulty:          CluesAndHints[i].Difficulty,
			Location:            fmt.Sprintf("Location %d", i+1),
			CreatedAt:           now,
		}
	}
	return codes
}
