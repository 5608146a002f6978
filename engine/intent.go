package engine

//go:generate go tool stringer -type=Intent

// Intent is a discrete player request collected by the host once per frame.
type Intent uint8

const (
	MoveLeft Intent = iota
	MoveRight
	SoftDrop
	HardDrop
	RotateCW
	RotateCCW
	Hold
)

const numIntents = 7

// IntentSet is a bit set of intents.
type IntentSet uint8

// NewIntentSet returns the set holding the given intents.
func NewIntentSet(intents ...Intent) IntentSet {
	var s IntentSet
	for _, i := range intents {
		s = s.With(i)
	}
	return s
}

// With returns s with i added.
func (s IntentSet) With(i Intent) IntentSet {
	if i >= numIntents {
		return s
	}
	return s | 1<<i
}

// Has reports whether i is in the set.
func (s IntentSet) Has(i Intent) bool {
	return i < numIntents && s&(1<<i) != 0
}

// Intents is the input of one tick. Pressed holds edge-triggered intents
// (went down this frame); Held holds level-triggered ones (still down).
// Rotation, hard drop and hold only react to Pressed. Shifts and soft drop
// act on Pressed and then repeat while Held.
type Intents struct {
	Pressed IntentSet `json:"p,omitempty"`
	Held    IntentSet `json:"h,omitempty"`
}

// Press returns intents with the given intents pressed this frame.
func Press(intents ...Intent) Intents {
	return Intents{Pressed: NewIntentSet(intents...)}
}

// Holding returns intents with the given intents held down.
func Holding(intents ...Intent) Intents {
	return Intents{Held: NewIntentSet(intents...)}
}

// Empty reports whether nothing is pressed or held.
func (in Intents) Empty() bool {
	return in.Pressed == 0 && in.Held == 0
}
