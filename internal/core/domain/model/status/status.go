// Package status defines the fixed order-status vocabulary and the catalog
// used to resolve status references coming from callers.
//
// The vocabulary is reference data: rows live in the statuses table, but the
// set of names and their progression never change at runtime. Three statuses
// form a monotonic sequence an order walks forward through; cancellation sits
// outside the sequence and is terminal.
package status

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"shop/internal/pkg/errs"
)

// Status names of the fixed vocabulary. Names are stored uppercased and
// compared uppercased.
const (
	Unapproved = "NIEZATWIERDZONE"
	Approved   = "ZATWIERDZONE"
	Fulfilled  = "ZREALIZOWANE"
	Cancelled  = "ANULOWANE"
)

// DefaultName is the status assigned to every newly created order.
const DefaultName = Unapproved

// sequence is the monotonic forward progression of an order.
// Cancelled is deliberately absent: it is reachable from any non-terminal
// state but has no rank of its own.
var sequence = []string{Unapproved, Approved, Fulfilled}

// Rank returns the position of a status name within the monotonic sequence.
// The second return value is false for names outside the sequence (Cancelled
// and anything unknown), which callers use to skip the backward-transition
// check rather than fail on terminal states.
func Rank(name string) (int, bool) {
	for i, s := range sequence {
		if s == name {
			return i, true
		}
	}
	return 0, false
}

// IsTerminal reports whether no further transition is permitted from the
// given status name.
func IsTerminal(name string) bool {
	return name == Fulfilled || name == Cancelled
}

// AllowsOpinion reports whether an order in the given status may receive an
// opinion. Opinions are admitted only once an order reached a terminal state.
func AllowsOpinion(name string) bool {
	return name == Fulfilled || name == Cancelled
}

// Status is a row of the statuses reference table.
type Status struct {
	ID   int
	Name string
}

// identifierKind tags the variant an Identifier carries.
type identifierKind int

const (
	identifierAbsent identifierKind = iota
	identifierByID
	identifierByName
)

// Identifier is a tagged reference to a status: either a numeric id or a
// name. The zero value means "absent"; construction at the boundary replaces
// runtime type sniffing inside the application core.
type Identifier struct {
	kind identifierKind
	id   int
	name string
}

// IdentifierByID creates an Identifier referencing a status by numeric id.
func IdentifierByID(id int) Identifier {
	return Identifier{kind: identifierByID, id: id}
}

// IdentifierByName creates an Identifier referencing a status by name.
// The name is uppercased for comparison against the vocabulary.
func IdentifierByName(name string) Identifier {
	return Identifier{kind: identifierByName, name: strings.ToUpper(strings.TrimSpace(name))}
}

// ParseIdentifier classifies a raw string reference. A string consisting
// solely of digits is treated as an id; everything else as a name. A status
// named entirely of digits is therefore reachable by id only.
func ParseIdentifier(raw string) Identifier {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Identifier{}
	}
	if isDigits(raw) {
		id, err := strconv.Atoi(raw)
		if err == nil {
			return IdentifierByID(id)
		}
	}
	return IdentifierByName(raw)
}

// IsZero reports whether the identifier references nothing.
func (i Identifier) IsZero() bool {
	return i.kind == identifierAbsent
}

// String renders the identifier for error messages.
func (i Identifier) String() string {
	switch i.kind {
	case identifierByID:
		return strconv.Itoa(i.id)
	case identifierByName:
		return i.name
	default:
		return ""
	}
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

// Catalog resolves status identifiers against the loaded reference data.
// It is constructed once from the statuses table at composition time and
// injected wherever status resolution is needed.
type Catalog struct {
	byID   map[int]Status
	byName map[string]Status
}

// NewCatalog builds a catalog from status rows. Every row must carry a
// positive id and a name from the fixed vocabulary, and the default status
// must be present.
func NewCatalog(statuses []Status) (Catalog, error) {
	c := Catalog{
		byID:   make(map[int]Status, len(statuses)),
		byName: make(map[string]Status, len(statuses)),
	}

	for _, s := range statuses {
		if s.ID <= 0 {
			return Catalog{}, errs.NewValueIsInvalidErrorWithCause(
				"status id", fmt.Errorf("%d is not a positive integer", s.ID))
		}

		name := strings.ToUpper(strings.TrimSpace(s.Name))
		if !isVocabularyName(name) {
			return Catalog{}, errs.NewValueIsInvalidErrorWithCause(
				"status name", fmt.Errorf("%q is not part of the status vocabulary", s.Name))
		}

		s.Name = name
		c.byID[s.ID] = s
		c.byName[s.Name] = s
	}

	if _, ok := c.byName[DefaultName]; !ok {
		return Catalog{}, errs.NewValueIsInvalidErrorWithCause(
			"status catalog", fmt.Errorf("default status %s is missing", DefaultName))
	}

	return c, nil
}

// Resolve looks up a status by identifier. An absent identifier yields the
// default status when allowDefault is set and a validation error otherwise.
// Unknown ids or names yield a not-found error.
func (c Catalog) Resolve(ident Identifier, allowDefault bool) (Status, error) {
	switch ident.kind {
	case identifierAbsent:
		if !allowDefault {
			return Status{}, errs.NewValueIsRequiredError("status")
		}
		return c.byName[DefaultName], nil

	case identifierByID:
		if ident.id <= 0 {
			return Status{}, errs.NewValueIsInvalidErrorWithCause(
				"status id", fmt.Errorf("%d is not a positive integer", ident.id))
		}
		if s, ok := c.byID[ident.id]; ok {
			return s, nil
		}
		return Status{}, errs.NewObjectNotFoundError("status", ident.id)

	default:
		if s, ok := c.byName[ident.name]; ok {
			return s, nil
		}
		return Status{}, errs.NewObjectNotFoundError("status", ident.name)
	}
}

// Default returns the status assigned to new orders.
func (c Catalog) Default() Status {
	return c.byName[DefaultName]
}

// All returns the catalog's statuses ordered by id.
func (c Catalog) All() []Status {
	all := make([]Status, 0, len(c.byID))
	for _, s := range c.byID {
		all = append(all, s)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}

func isVocabularyName(name string) bool {
	switch name {
	case Unapproved, Approved, Fulfilled, Cancelled:
		return true
	}
	return false
}
