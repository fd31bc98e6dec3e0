package termui

// MatchStatus is the outcome of Identify.
type MatchStatus int

const (
	NotMatched MatchStatus = iota
	NeedMore
	Matched
)

// Identify is a pure function over the bytes following an ESC that the
// caller has already consumed. It recognises the fixed set of CSI/SS3
// sequences of §4.2 and returns the matching Event and the number of bytes
// it consumed, or NeedMore if buf is a proper prefix of a recognised
// sequence too short to disambiguate, or NotMatched if buf cannot possibly
// continue into a recognised sequence. The longest recognised sequence is
// 5 bytes.
func Identify(buf []byte) (Event, int, MatchStatus) {
	if len(buf) == 0 {
		return 0, 0, NeedMore
	}
	switch buf[0] {
	case 'O':
		return identifySS3(buf)
	case '[':
		return identifyCSI(buf)
	default:
		return 0, 0, NotMatched
	}
}

func identifySS3(buf []byte) (Event, int, MatchStatus) {
	if len(buf) < 2 {
		return 0, 0, NeedMore
	}
	switch buf[1] {
	case 'A':
		return ArrowUp, 2, Matched
	case 'B':
		return ArrowDown, 2, Matched
	case 'C':
		return ArrowRight, 2, Matched
	case 'D':
		return ArrowLeft, 2, Matched
	case 'F':
		return End, 2, Matched
	case 'H':
		return Home, 2, Matched
	case 'P':
		return F1, 2, Matched
	case 'Q':
		return F2, 2, Matched
	case 'R':
		return F3, 2, Matched
	case 'S':
		return F4, 2, Matched
	case 'M':
		return ShiftEnter, 2, Matched
	default:
		return 0, 0, NotMatched
	}
}

func identifyCSI(buf []byte) (Event, int, MatchStatus) {
	if len(buf) < 2 {
		return 0, 0, NeedMore
	}
	switch buf[1] {
	case 'A':
		return ArrowUp, 2, Matched
	case 'B':
		return ArrowDown, 2, Matched
	case 'C':
		return ArrowRight, 2, Matched
	case 'D':
		return ArrowLeft, 2, Matched
	case 'F':
		return End, 2, Matched
	case 'H':
		return Home, 2, Matched
	case 'E':
		return KeypadCenter, 2, Matched
	case 'Z':
		return ShiftTab, 2, Matched
	case '1':
		return identifyCSI1(buf)
	case '2':
		return identifyCSITilde(buf, Insert, csiF9throughF12)
	case '3':
		return identifyCSITilde(buf, Delete, nil)
	case '5':
		return identifyCSITilde(buf, PageUp, nil)
	case '6':
		return identifyCSITilde(buf, PageDown, nil)
	default:
		return 0, 0, NotMatched
	}
}

// csiF9throughF12 maps the third byte of "[2<d>~" to F9..F12, used only
// when disambiguating the '2' branch (Insert vs F9-F12 both start "[2").
var csiF9throughF12 = map[byte]Event{'0': F9, '1': F10, '3': F11, '4': F12}

// identifyCSI1 handles the two sequence families starting "[1": the
// modifier+arrow family "[1;{mod}{letter}" and the F5-F8 family "[1{d}~".
func identifyCSI1(buf []byte) (Event, int, MatchStatus) {
	if len(buf) < 3 {
		return 0, 0, NeedMore
	}
	switch buf[2] {
	case ';':
		if len(buf) < 4 {
			return 0, 0, NeedMore
		}
		var modifier Event
		switch buf[3] {
		case '2':
			modifier = Shift
		case '1':
			modifier = Alt
		case '5':
			modifier = Ctrl
		default:
			return 0, 0, NotMatched
		}
		if len(buf) < 5 {
			return 0, 0, NeedMore
		}
		var base Event
		switch buf[4] {
		case 'A':
			base = ArrowUp
		case 'B':
			base = ArrowDown
		case 'C':
			base = ArrowRight
		case 'D':
			base = ArrowLeft
		case 'F':
			base = End
		case 'H':
			base = Home
		default:
			return 0, 0, NotMatched
		}
		return base | modifier, 5, Matched
	case '5', '7', '8', '9':
		if len(buf) < 4 {
			return 0, 0, NeedMore
		}
		if buf[3] != '~' {
			return 0, 0, NotMatched
		}
		var ev Event
		switch buf[2] {
		case '5':
			ev = F5
		case '7':
			ev = F6
		case '8':
			ev = F7
		case '9':
			ev = F8
		}
		return ev, 4, Matched
	default:
		return 0, 0, NotMatched
	}
}

// identifyCSITilde handles the "[<d>~" and "[<d>;<mod>~" families for
// Insert/Delete/PageUp/PageDown (base). extraDigits, when non-nil, maps a
// third byte other than '~' or ';' to another event sharing the same first
// digit (used only for '2', which is ambiguous between Insert and F9-F12).
func identifyCSITilde(buf []byte, base Event, extraDigits map[byte]Event) (Event, int, MatchStatus) {
	if len(buf) < 3 {
		return 0, 0, NeedMore
	}
	switch buf[2] {
	case '~':
		return base, 3, Matched
	case ';':
		if len(buf) < 4 {
			return 0, 0, NeedMore
		}
		var modifier Event
		switch buf[3] {
		case '1':
			modifier = Alt
		case '2':
			modifier = Shift
		case '5':
			modifier = Ctrl
		default:
			return 0, 0, NotMatched
		}
		// PageUp/PageDown only carry Alt/Ctrl modifiers per §4.2's table.
		if modifier == Shift && (base == PageUp || base == PageDown) {
			return 0, 0, NotMatched
		}
		if len(buf) < 5 {
			return 0, 0, NeedMore
		}
		if buf[4] != '~' {
			return 0, 0, NotMatched
		}
		return base | modifier, 5, Matched
	default:
		if extraDigits != nil {
			if len(buf) < 4 {
				return 0, 0, NeedMore
			}
			if ev, ok := extraDigits[buf[2]]; ok {
				if buf[3] != '~' {
					return 0, 0, NotMatched
				}
				return ev, 4, Matched
			}
		}
		return 0, 0, NotMatched
	}
}
