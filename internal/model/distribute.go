package model

// Placement is the position one display should play from after distributing.
type Placement struct {
	ID       string
	Position float64
}

// DistributeTimes spreads the displays sharing refID's source evenly over the
// source duration. The reference keeps its position and the others follow in
// grid order, wrapping around, each duration/n further along.
// Returns nil when refID is missing or not loaded.
func DistributeTimes(displays []Display, refID string) []Placement {
	ref := -1
	for i := range displays {
		if displays[i].ID == refID {
			ref = i
			break
		}
	}
	if ref < 0 {
		return nil
	}
	duration, ok := displays[ref].liveDuration()
	if !ok {
		return nil
	}

	path := displays[ref].Source.Path
	var matching []int
	start := 0
	for i := range displays {
		if displays[i].Source.Path != path {
			continue
		}
		if i == ref {
			start = len(matching)
		}
		matching = append(matching, i)
	}

	n := len(matching)
	t1 := displays[ref].Media.Position()
	spacing := duration / float64(n)

	placements := make([]Placement, n)
	for k := 0; k < n; k++ {
		d := displays[matching[(start+k)%n]]
		placements[k] = Placement{
			ID:       d.ID,
			Position: wrapTime(t1+float64(k)*spacing, duration),
		}
	}
	return placements
}

// DistributeTimes staggers the displays sharing id's source.
// Loaded displays are seeked; displays still loading get the slot as their
// start hint so they land on it once metadata arrives.
func (s *Store) DistributeTimes(id string) bool {
	placements := DistributeTimes(s.Displays, id)
	if placements == nil {
		return false
	}
	for _, p := range placements {
		d := s.GetDisplayByID(p.ID)
		if d.Media != nil {
			d.Media.Seek(p.Position)
			continue
		}
		pos := p.Position
		d.StartHint = &pos
	}
	return true
}
