package entities

import (
	"fmt"
	"sort"
)

// TaxExemption records one jurisdiction a customer is exempt in. Active
// defaults to true when the record omits it, matching how the processor
// treats newly submitted exemptions.
type TaxExemption struct {
	ExemptionID string
	Region      string
	Active      bool
}

func TaxExemptionFromRecord(r Record) (TaxExemption, error) {
	exemptionID, err := stringOrEmpty(r, "exemptionId")
	if err != nil {
		return TaxExemption{}, err
	}
	if exemptionID == "" {
		return TaxExemption{}, fmt.Errorf("%w: tax exemption requires an exemptionId", ErrInvalidArgument)
	}
	region, err := stringOrEmpty(r, "region")
	if err != nil {
		return TaxExemption{}, err
	}
	if region == "" {
		return TaxExemption{}, fmt.Errorf("%w: tax exemption %q requires a region", ErrInvalidArgument, exemptionID)
	}
	active, err := recordBool(r, "active")
	if err != nil {
		return TaxExemption{}, err
	}
	te := TaxExemption{ExemptionID: exemptionID, Region: region, Active: true}
	if active != nil {
		te.Active = *active
	}
	return te, nil
}

func (t TaxExemption) Parameters() Record {
	return Record{"exemptionId": t.ExemptionID, "region": t.Region, "active": t.Active}
}

type TaxExemptionBag struct {
	Bag[TaxExemption]
}

func NewTaxExemptionBag(items ...TaxExemption) *TaxExemptionBag {
	b := &TaxExemptionBag{}
	b.Replace(items)
	return b
}

// Flatten is the inverse of TaxExemptionBagFromMap. The shorthand cannot
// carry the Active flag, so exemptions flatten as if active.
func (b *TaxExemptionBag) Flatten() map[string]string {
	if b == nil || b.Count() == 0 {
		return nil
	}
	out := make(map[string]string, b.Count())
	for _, te := range b.All() {
		out[te.ExemptionID] = te.Region
	}
	return out
}

func TaxExemptionBagFromRecords(records []Record) (*TaxExemptionBag, error) {
	b := &TaxExemptionBag{}
	for _, r := range records {
		if err := b.AddRecord(r); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// TaxExemptionBagFromMap expands the flattened exemptionId->region shorthand.
func TaxExemptionBagFromMap(values map[string]string) (*TaxExemptionBag, error) {
	ids := make([]string, 0, len(values))
	for id := range values {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	b := &TaxExemptionBag{}
	for _, id := range ids {
		if err := b.AddRecord(Record{"exemptionId": id, "region": values[id]}); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (b *TaxExemptionBag) AddRecord(r Record) error {
	t, err := TaxExemptionFromRecord(r)
	if err != nil {
		return err
	}
	b.Add(t)
	return nil
}
