package capability

import (
	"fmt"
	"sort"
)

// Catalogue is a read-only set of capability definitions. Construction
// validates the extension graph; a malformed catalogue (unknown base,
// duplicate ID, cycle) is an authoring defect rejected up front, so
// verification never has to handle it.
type Catalogue struct {
	caps  map[ID]Capability
	order []ID
}

// New builds a catalogue from the given definitions.
func New(caps ...Capability) (*Catalogue, error) {
	c := &Catalogue{caps: make(map[ID]Capability, len(caps))}
	for _, def := range caps {
		if err := c.add(def); err != nil {
			return nil, err
		}
	}
	if err := c.checkAcyclic(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Catalogue) add(def Capability) error {
	if def.ID == "" {
		return fmt.Errorf("%w: empty capability ID", ErrInvalidDefinition)
	}
	if _, exists := c.caps[def.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateCapability, def.ID)
	}
	for _, base := range def.Extends {
		if base == def.ID {
			return &CycleError{Path: []ID{def.ID, def.ID}}
		}
	}
	c.caps[def.ID] = def
	c.order = append(c.order, def.ID)
	return nil
}

// checkAcyclic walks every extension chain and rejects unknown bases and
// cycles. Runs once per construction.
func (c *Catalogue) checkAcyclic() error {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[ID]int, len(c.caps))

	var walk func(id ID, path []ID) error
	walk = func(id ID, path []ID) error {
		def, ok := c.caps[id]
		if !ok {
			return fmt.Errorf("%w: %s (required by %s)", ErrUnknownCapability, id, path[len(path)-1])
		}
		switch state[id] {
		case done:
			return nil
		case visiting:
			return &CycleError{Path: append(path, id)}
		}
		state[id] = visiting
		for _, base := range def.Extends {
			if err := walk(base, append(path, id)); err != nil {
				return err
			}
		}
		state[id] = done
		return nil
	}

	for _, id := range c.order {
		if err := walk(id, nil); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the definition for id.
func (c *Catalogue) Get(id ID) (Capability, bool) {
	def, ok := c.caps[id]
	return def, ok
}

// IDs returns every capability identifier in definition order.
func (c *Catalogue) IDs() []ID {
	out := make([]ID, len(c.order))
	copy(out, c.order)
	return out
}

// With returns a new catalogue containing this catalogue's definitions plus
// the given ones. The receiver is not modified.
func (c *Catalogue) With(caps ...Capability) (*Catalogue, error) {
	all := make([]Capability, 0, len(c.order)+len(caps))
	for _, id := range c.order {
		all = append(all, c.caps[id])
	}
	return New(append(all, caps...)...)
}

// Flatten resolves the effective requirement set of id: bases before own
// requirements, transitively, in declared base order, with duplicates
// collapsed (idempotent union). Each returned requirement carries the
// capability that declared it in Origin. The order is deterministic, so the
// "first unmet requirement" of a verification is stable.
func (c *Catalogue) Flatten(id ID) ([]Requirement, error) {
	if _, ok := c.caps[id]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownCapability, id)
	}

	var out []Requirement
	seen := make(map[string]struct{})
	visited := make(map[ID]struct{})

	var walk func(id ID)
	walk = func(id ID) {
		if _, ok := visited[id]; ok {
			return
		}
		visited[id] = struct{}{}
		def := c.caps[id]
		for _, base := range def.Extends {
			walk(base)
		}
		for _, req := range def.Requires {
			key := req.Key()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			req.Origin = id
			out = append(out, req)
		}
	}
	walk(id)
	return out, nil
}

// Ancestors returns every capability id extends, transitively, sorted by ID.
func (c *Catalogue) Ancestors(id ID) []ID {
	visited := make(map[ID]struct{})
	var walk func(id ID)
	walk = func(id ID) {
		for _, base := range c.caps[id].Extends {
			if _, ok := visited[base]; ok {
				continue
			}
			visited[base] = struct{}{}
			walk(base)
		}
	}
	if _, ok := c.caps[id]; ok {
		walk(id)
	}
	out := make([]ID, 0, len(visited))
	for b := range visited {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
