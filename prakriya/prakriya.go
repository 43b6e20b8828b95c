// Package prakriya implements the derivation-rule-combination stack:
// given an external, black-box derivation function that may consult
// optional rules, it enumerates every distinct derivation reachable by
// toggling those optional rules' accept/decline outcomes.
package prakriya

import "fmt"

// Decision is an optional rule's outcome within one derivation.
type Decision int

const (
	// Accept means the optional rule fired.
	Accept Decision = iota
	// Decline means the optional rule was skipped.
	Decline
)

func (d Decision) String() string {
	if d == Accept {
		return "Accept"
	}
	return "Decline"
}

// flip returns the opposite decision.
func (d Decision) flip() Decision {
	if d == Accept {
		return Decline
	}
	return Accept
}

// Choice records one optional rule's outcome, identified by its code.
type Choice struct {
	Code     string
	Decision Decision
}

func (c Choice) String() string {
	return fmt.Sprintf("%s(%s)", c.Decision, c.Code)
}

func (c Choice) flip() Choice {
	return Choice{Code: c.Code, Decision: c.Decision.flip()}
}

// Config is the configurable input to a fresh derivation.
type Config struct {
	// RuleChoices are the choices this derivation must follow, in order,
	// for as many optional rules as it encounters matching these codes.
	RuleChoices []Choice
	// LogSteps toggles retention of a per-rule trace for debugging; it does
	// not affect which derivations are produced.
	LogSteps bool
}

// Prakriya is an opaque trace of rule decisions produced by a derivation
// function. The derivation function is the only thing that appends to it;
// the stack treats it as a black box beyond reading back its choices.
type Prakriya struct {
	cfg     Config
	choices []Choice
	steps   []string
}

// WithConfig returns a fresh Prakriya pre-committed to following cfg's
// rule choices.
func WithConfig(cfg Config) *Prakriya {
	return &Prakriya{cfg: cfg}
}

// NextDecision is called by the derivation function at each optional rule
// it encounters. If cfg's configured choices have a decision recorded at
// this position for the given code, that decision is replayed and
// recorded; otherwise the caller's preferred decision is taken and
// recorded as the derivation's actual choice at this position.
//
// A derivation thus follows its configured path for as long as it lasts
// and decides freely beyond it, recording every decision (replayed or
// fresh) onto its own growing choice sequence.
func (p *Prakriya) NextDecision(code string, preferred Decision) Decision {
	idx := len(p.choices)
	var d Decision
	if idx < len(p.cfg.RuleChoices) && p.cfg.RuleChoices[idx].Code == code {
		d = p.cfg.RuleChoices[idx].Decision
	} else {
		d = preferred
	}
	p.choices = append(p.choices, Choice{Code: code, Decision: d})
	return d
}

// Log records a debugging step if the derivation was configured with
// LogSteps.
func (p *Prakriya) Log(step string) {
	if p.cfg.LogSteps {
		p.steps = append(p.steps, step)
	}
}

// Steps returns the recorded debug trace, or nil if LogSteps was false.
func (p *Prakriya) Steps() []string {
	return p.steps
}

// RuleChoices returns the full sequence of choices this derivation made,
// in order.
func (p *Prakriya) RuleChoices() []Choice {
	return p.choices
}
