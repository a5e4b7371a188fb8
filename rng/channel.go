package rng

import "fmt"

// Channel identifies one logical randomness stream. The set is closed and
// grows only by adding constants here; every Registry carries a slot for
// each channel.
type Channel uint8

const (
	Gameplay Channel = iota
	Loot
	AI
	Audio
	VFX
	WorldGen

	channelCount
)

var channelNames = [channelCount]string{
	Gameplay: "gameplay",
	Loot:     "loot",
	AI:       "ai",
	Audio:    "audio",
	VFX:      "vfx",
	WorldGen: "worldgen",
}

// Valid reports whether c is one of the defined channels.
func (c Channel) Valid() bool {
	return c < channelCount
}

func (c Channel) String() string {
	if c < channelCount {
		return channelNames[c]
	}
	return fmt.Sprintf("channel(%d)", uint8(c))
}

// Channels returns every defined channel in declaration order.
func Channels() []Channel {
	out := make([]Channel, 0, channelCount)
	for c := Channel(0); c < channelCount; c++ {
		out = append(out, c)
	}
	return out
}
