package termui

// Glyph is one element of a formatted codepoint stream fed to
// AddFormattedString: either a plain Unicode codepoint (values below
// 0x200000, i.e. within the 21-bit Unicode range) or an inline-format
// sentinel that changes the running style without occupying a cell.
//
// Sentinel layout mirrors the source's U32Format: bit 30 marks an effect
// change, bit 29 a foreground colour change, bit 28 a background colour
// change; the payload (an Effect or a Color) occupies the low 25 bits,
// wide enough to carry a full RGB Color.
type Glyph uint32

const (
	formatEffectMask Glyph = 1 << 30
	formatFgMask     Glyph = 1 << 29
	formatBgMask     Glyph = 1 << 28
	formatTagMask          = formatEffectMask | formatFgMask | formatBgMask
	formatValueMask  Glyph = 0x01FFFFFF
)

// BuildEffect wraps e as an inline effect-change sentinel.
func BuildEffect(e Effect) Glyph { return formatEffectMask | (Glyph(e) & formatValueMask) }

// BuildFg wraps c as an inline foreground-colour-change sentinel.
func BuildFg(c Color) Glyph { return formatFgMask | (Glyph(c) & formatValueMask) }

// BuildBg wraps c as an inline background-colour-change sentinel.
func BuildBg(c Color) Glyph { return formatBgMask | (Glyph(c) & formatValueMask) }

func (g Glyph) IsSentinel() bool { return g&formatTagMask != 0 }
func (g Glyph) IsEffect() bool   { return g&formatEffectMask != 0 }
func (g Glyph) IsFg() bool       { return g&formatFgMask != 0 }
func (g Glyph) IsBg() bool       { return g&formatBgMask != 0 }

func (g Glyph) AsEffect() Effect { return Effect(g & formatValueMask) }
func (g Glyph) AsColor() Color   { return Color(g & formatValueMask) }

// AsRune returns g as a plain codepoint. Only meaningful when !IsSentinel().
func (g Glyph) AsRune() rune { return rune(g) }

// GlyphString converts a plain string into a Glyph stream with no formatting
// sentinels, suitable input to AddFormattedString.
func GlyphString(s string) []Glyph {
	runes := []rune(s)
	out := make([]Glyph, len(runes))
	for i, r := range runes {
		out[i] = Glyph(r)
	}
	return out
}

// ExpandMarkdown scans line for adjacent identical delimiter pairs from
// {*, /, _, -} ("**", "//", "__", "--") and replaces each pair with a single
// inline effect-toggle sentinel (Bold, Italic, Underline, CrossedOut
// respectively), XORing the running effect bit so nested/repeated pairs
// toggle back off. Every other rune is copied through unchanged. The result
// is a Glyph stream ready for AddFormattedString.
func ExpandMarkdown(line []rune) []Glyph {
	out := make([]Glyph, 0, len(line))
	var effect Effect
	for i := 0; i < len(line); {
		c := line[i]
		if i+1 < len(line) && line[i+1] == c {
			var bit Effect
			switch c {
			case '*':
				bit = EffectBold
			case '/':
				bit = EffectItalic
			case '_':
				bit = EffectUnderline
			case '-':
				bit = EffectCrossedOut
			}
			if bit != 0 {
				effect ^= bit
				out = append(out, BuildEffect(effect))
				i += 2
				continue
			}
		}
		out = append(out, Glyph(c))
		i++
	}
	return out
}
