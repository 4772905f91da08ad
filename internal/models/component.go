package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Component is one of the five fixed collectible items. Immutable
// reference data, lazily seeded into the components collection.
type Component struct {
	OID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID          string             `bson:"id" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Image       string             `bson:"image,omitempty" json:"image,omitempty"`
}

// DefaultComponents is the fixed five-item catalog, in hunt order.
var DefaultComponents = []Component{
	{
		ID:          "led",
		Name:        "LED",
		Description: "Light Emitting Diode - the basic building block of many electronic projects.",
		Image:       "led.png",
	},
	{
		ID:          "resistor",
		Name:        "Resistor",
		Description: "Controls the flow of electrical current in a circuit.",
		Image:       "resistor.png",
	},
	{
		ID:          "breadboard",
		Name:        "Breadboard",
		Description: "A construction base for prototyping electronics without soldering.",
		Image:       "breadboard.png",
	},
	{
		ID:          "jumper-wires",
		Name:        "Jumper Wires",
		Description: "Wires that connect components on the breadboard.",
		Image:       "jumper-wires.png",
	},
	{
		ID:          "battery",
		Name:        "Battery",
		Description: "Provides power to your circuit.",
		Image:       "battery.png",
	},
}

// ComponentOrder lists the catalog component IDs in hunt order.
func ComponentOrder() []string {
	ids := make([]string, len(DefaultComponents))
	for i, c := range DefaultComponents {
		ids[i] = c.ID
	}
	return ids
}
