package termui

// Effect is a bitmask of cell rendering attributes. The bit positions match
// the SGR parameter numbers directly, so enabling effect bit k emits ";k"
// in the SGR sequence built by the publisher (publish.go).
type Effect uint32

const (
	EffectBold         Effect = 1 << 1
	EffectItalic       Effect = 1 << 3
	EffectUnderline    Effect = 1 << 4
	EffectBlink        Effect = 1 << 5
	EffectReverseVideo Effect = 1 << 7
	EffectConceal      Effect = 1 << 8
	EffectCrossedOut   Effect = 1 << 9

	effectFirstBit = 1
	effectLastBit  = 9
)
