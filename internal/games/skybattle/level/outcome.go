package level

import "fmt"

// OutcomeKind is the result class of a tick.
type OutcomeKind int

const (
	OutcomeContinue OutcomeKind = iota
	OutcomeWin
	OutcomeLose
	OutcomeAdvance
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeContinue:
		return "continue"
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	case OutcomeAdvance:
		return "advance"
	default:
		return "unknown"
	}
}

// Outcome is what a level reports after each tick. Next is set only for
// OutcomeAdvance.
type Outcome struct {
	Kind OutcomeKind
	Next string
}

// Continue keeps the level running.
func Continue() Outcome { return Outcome{Kind: OutcomeContinue} }

// Win ends the campaign in victory.
func Win() Outcome { return Outcome{Kind: OutcomeWin} }

// Lose ends the campaign in defeat.
func Lose() Outcome { return Outcome{Kind: OutcomeLose} }

// Advance hands over to the level with the given ID.
func Advance(next string) Outcome { return Outcome{Kind: OutcomeAdvance, Next: next} }

// Final reports whether the level is over.
func (o Outcome) Final() bool {
	return o.Kind != OutcomeContinue
}

func (o Outcome) String() string {
	if o.Kind == OutcomeAdvance {
		return fmt.Sprintf("advance(%s)", o.Next)
	}
	return o.Kind.String()
}
