// Package tag implements the parser's tag table collaborator: it hands
// out small integer ids for named types (gTypes/pc_addtag in the
// original compiler) and answers whether a given name is a known tag.
//
// add_tag is idempotent per name. The canonical store is a plain map —
// it is the only thing ever mutated and it never evicts. golang-lru
// fronts it purely as a repeat-lookup accelerator during a single
// parse; losing the cache (a miss) only costs a map lookup, it never
// changes what Find returns.
package tag

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// ID is an opaque tag identifier. The parser never interprets it beyond
// equality and "is this zero".
type ID int

// Builtin tags are pre-registered so the declarator grammar can test
// for them without a table lookup.
const (
	Unknown ID = 0
	Int     ID = 1
	Bool    ID = 2
	Float   ID = 3
	String  ID = 4
	Void    ID = 5
	Any     ID = 6
	Object  ID = 7
	firstUser = 8
)

var builtinNames = map[string]ID{
	"int": Int, "bool": Bool, "Float": Float, "String": String,
	"void": Void, "any": Any, "Object": Object,
}

// Table is the parser's view of the tag/type table. A Table is owned
// exclusively by one Parser and must not be shared across goroutines.
type Table struct {
	byName map[string]ID
	names  []string // names[id] == name, for diagnostics
	cache  *lru.Cache[string, ID]
}

// New creates a table pre-loaded with the language's built-in tags.
func New() *Table {
	t := &Table{
		byName: make(map[string]ID, 64),
		names:  make([]string, firstUser, 64),
	}
	for name, id := range builtinNames {
		t.byName[name] = id
		t.names[id] = name
	}
	c, err := lru.New[string, ID](256)
	if err != nil {
		// Only returns an error for a non-positive size, which is a
		// programmer error, not a runtime condition.
		panic(err)
	}
	t.cache = c
	return t
}

// Add interns name as a tag, allocating a new id the first time it is
// seen and returning the existing one on every subsequent call —
// add_tag's idempotence.
func (t *Table) Add(name string) ID {
	if id, ok := t.cache.Get(name); ok {
		return id
	}
	if id, ok := t.byName[name]; ok {
		t.cache.Add(name, id)
		return id
	}
	id := ID(len(t.names))
	t.byName[name] = id
	t.names = append(t.names, name)
	t.cache.Add(name, id)
	return id
}

// Find reports the id for name without creating one, and whether it is
// known at all.
func (t *Table) Find(name string) (ID, bool) {
	if id, ok := t.cache.Get(name); ok {
		return id, true
	}
	id, ok := t.byName[name]
	if ok {
		t.cache.Add(name, id)
	}
	return id, ok
}

// IsKnown reports whether name has been registered as a tag.
func (t *Table) IsKnown(name string) bool {
	_, ok := t.Find(name)
	return ok
}

// Name returns the spelling a tag id was created with, for diagnostics.
func (t *Table) Name(id ID) string {
	if int(id) < 0 || int(id) >= len(t.names) {
		return "<unknown tag>"
	}
	return t.names[id]
}
