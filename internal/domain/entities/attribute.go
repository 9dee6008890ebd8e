package entities

import (
	"fmt"
	"sort"
)

// Attribute is a free-form name/value annotation attached to customers,
// payment methods, subscriptions and the other top-level entities.
type Attribute struct {
	Name  string
	Value string
}

func AttributeFromRecord(r Record) (Attribute, error) {
	name, err := stringOrEmpty(r, "name")
	if err != nil {
		return Attribute{}, err
	}
	if name == "" {
		return Attribute{}, fmt.Errorf("%w: attribute requires a name", ErrInvalidArgument)
	}
	value, err := scalarString(r["value"])
	if err != nil {
		return Attribute{}, fmt.Errorf("%w: attribute %q: %v", ErrInvalidArgument, name, err)
	}
	return Attribute{Name: name, Value: value}, nil
}

func (a Attribute) Parameters() Record {
	return Record{"name": a.Name, "value": a.Value}
}

// AttributeBag holds an ordered set of attributes. The three constructors
// cover the call patterns accepted for bag initialization: typed instances,
// a sequence of records, and the flattened name->value shorthand.
type AttributeBag struct {
	Bag[Attribute]
}

func NewAttributeBag(items ...Attribute) *AttributeBag {
	b := &AttributeBag{}
	b.Replace(items)
	return b
}

// Flatten is the inverse of AttributeBagFromMap. A later duplicate name wins.
func (b *AttributeBag) Flatten() map[string]any {
	if b == nil || b.Count() == 0 {
		return nil
	}
	out := make(map[string]any, b.Count())
	for _, a := range b.All() {
		out[a.Name] = a.Value
	}
	return out
}

func AttributeBagFromRecords(records []Record) (*AttributeBag, error) {
	b := &AttributeBag{}
	for _, r := range records {
		if err := b.AddRecord(r); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// AttributeBagFromMap expands the flattened name->value shorthand. Keys are
// sorted so the resulting order is deterministic.
func AttributeBagFromMap(values map[string]any) (*AttributeBag, error) {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	b := &AttributeBag{}
	for _, name := range names {
		if err := b.AddRecord(Record{"name": name, "value": values[name]}); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (b *AttributeBag) AddRecord(r Record) error {
	a, err := AttributeFromRecord(r)
	if err != nil {
		return err
	}
	b.Add(a)
	return nil
}
