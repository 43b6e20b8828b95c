package prakriya

// DeriveFunc mutates a fresh Prakriya in place, consulting its Config for
// which optional-rule decisions to replay, and returns an error if the
// derivation fails on this particular path. The stack treats it as a black
// box: it never inspects how derive reaches its decisions, only what
// choices ended up recorded.
type DeriveFunc func(p *Prakriya) error

// Stack explores all optional derivations of a derive function by toggling
// one optional-rule decision at a time.
type Stack struct {
	prakriyas []*Prakriya
	paths     [][]Choice
}

// NewStack returns an empty Stack.
func NewStack() *Stack {
	return &Stack{}
}

// FindAll runs derive repeatedly, first on an empty-choices derivation,
// then on every alternate choice path the seeding rule discovers, until no
// unexplored paths remain. It returns every successful derivation.
func (s *Stack) FindAll(derive DeriveFunc, logSteps bool) []*Prakriya {
	p := WithConfig(Config{LogSteps: logSteps})
	if err := derive(p); err == nil {
		s.addPrakriya(p, nil)
	}

	for {
		path, ok := s.popPath()
		if !ok {
			break
		}
		candidate := WithConfig(Config{RuleChoices: path, LogSteps: logSteps})
		if err := derive(candidate); err == nil {
			s.addPrakriya(candidate, path)
		}
	}

	return s.prakriyas
}

// addPrakriya records a completed derivation and seeds the stack with one
// alternate path per choice index beyond initialChoices: take the choices
// unchanged up to that index, flip the choice at that index, and discard
// everything after it.
//
// Freezing the initial prefix is essential. Without it, toggling a choice
// at or before the frozen boundary re-derives a path this stack already
// explored (or is about to), and the search never terminates.
func (s *Stack) addPrakriya(p *Prakriya, initialChoices []Choice) {
	choices := p.RuleChoices()
	offset := len(initialChoices)
	for i := offset; i < len(choices); i++ {
		path := make([]Choice, i+1)
		copy(path, choices[:i+1])
		path[i] = path[i].flip()
		s.paths = append(s.paths, path)
	}
	s.prakriyas = append(s.prakriyas, p)
}

// popPath removes and returns an unexplored path from the stack.
func (s *Stack) popPath() ([]Choice, bool) {
	n := len(s.paths)
	if n == 0 {
		return nil, false
	}
	path := s.paths[n-1]
	s.paths = s.paths[:n-1]
	return path, true
}
