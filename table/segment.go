package table

// SegmentAll selects every row.
const SegmentAll = "all"

// Segment is a named pre-filter shown as a chip above a table.
type Segment struct {
	Key   string
	Label string
	Match func(Row) bool
}

// Segments is an ordered set of segments. The "all" segment is implicit.
type Segments []Segment

// Chip is the display state of one segment.
type Chip struct {
	Key    string
	Label  string
	Count  int
	Active bool
}

// FieldEquals matches rows whose field key has the string form value.
func FieldEquals(key string, value string) func(Row) bool {
	return func(row Row) bool {
		return row.String(key) == value
	}
}

// Find returns the segment registered under key.
func (s Segments) Find(key string) (Segment, bool) {
	for _, segment := range s {
		if segment.Key == key {
			return segment, true
		}
	}
	return Segment{}, false
}

// Normalize maps unknown keys to SegmentAll.
func (s Segments) Normalize(key string) string {
	if _, ok := s.Find(key); ok {
		return key
	}
	return SegmentAll
}

// Apply returns the rows belonging to the segment key. Unknown keys and
// SegmentAll return rows unchanged.
func (s Segments) Apply(rows []Row, key string) []Row {
	segment, ok := s.Find(key)
	if !ok || segment.Match == nil {
		return rows
	}

	selected := make([]Row, 0, len(rows))
	for _, row := range rows {
		if segment.Match(row) {
			selected = append(selected, row)
		}
	}
	return selected
}

// Chips returns the "all" chip followed by one chip per segment.
func (s Segments) Chips(rows []Row, active string) []Chip {
	active = s.Normalize(active)
	chips := []Chip{{
		Key:    SegmentAll,
		Label:  "All",
		Count:  len(rows),
		Active: active == SegmentAll,
	}}
	for _, segment := range s {
		chips = append(chips, Chip{
			Key:    segment.Key,
			Label:  segment.Label,
			Count:  len(s.Apply(rows, segment.Key)),
			Active: active == segment.Key,
		})
	}
	return chips
}
