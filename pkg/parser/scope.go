package parser

// scopeStack is the type-variable scope stack of §4.3: a stack of tables,
// where each table is either a normal growable list of active names or a
// reset sentinel that hides every table below it from lookup.
type scopeStack struct {
	tables []scopeTable
}

type scopeTable struct {
	reset bool
	names []string
}

func newScopeStack() *scopeStack {
	return &scopeStack{tables: []scopeTable{{}}}
}

// push starts a new, empty table. If reset is true, a reset sentinel is
// pushed first so that lookups stop at this boundary instead of falling
// through to the caller's variables.
func (s *scopeStack) push(reset bool) {
	if reset {
		s.tables = append(s.tables, scopeTable{reset: true})
	}

	s.tables = append(s.tables, scopeTable{})
}

// pop removes the top table and, if the newly exposed top is a reset
// sentinel, removes that too.
func (s *scopeStack) pop() {
	if len(s.tables) == 0 {
		return
	}

	s.tables = s.tables[:len(s.tables)-1]

	if n := len(s.tables); n > 0 && s.tables[n-1].reset {
		s.tables = s.tables[:n-1]
	}
}

// insert adds name to the top table.
func (s *scopeStack) insert(name string) {
	top := len(s.tables) - 1
	s.tables[top].names = append(s.tables[top].names, name)
}

// member reports whether name is active in the current scope, scanning
// downward from the top and stopping at the first reset sentinel.
func (s *scopeStack) member(name string) bool {
	for i := len(s.tables) - 1; i >= 0; i-- {
		t := s.tables[i]
		if t.reset {
			return false
		}

		for _, n := range t.names {
			if n == name {
				return true
			}
		}
	}

	return false
}
