package pdns

import (
	powerdns "github.com/joeig/go-powerdns/v3"
)

// ToPowerDNS groups records by name and type into native PowerDNS RRsets, in order
// of first appearance. The TTL of an RRset is taken from its first record.
func ToPowerDNS(records []Record) []powerdns.RRset {
	type key struct{ name, rrType string }

	var (
		index = make(map[key]int)
		sets  []powerdns.RRset
	)

	for _, rec := range records {
		if rec.Name == nil || rec.Type == nil {
			continue
		}

		k := key{name: *rec.Name, rrType: *rec.Type}

		i, ok := index[k]
		if !ok {
			name := *rec.Name
			rrType := powerdns.RRType(*rec.Type)

			set := powerdns.RRset{
				Name: &name,
				Type: &rrType,
			}

			if rec.TTL != nil {
				ttl := *rec.TTL
				set.TTL = &ttl
			}

			sets = append(sets, set)
			i = len(sets) - 1
			index[k] = i
		}

		sets[i].Records = append(sets[i].Records, powerdns.Record{
			Content:  rec.Content,
			Disabled: rec.Disabled,
			SetPTR:   rec.SetPTR,
		})
	}

	return sets
}
