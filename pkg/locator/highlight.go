package locator

// Marker is the rendering collaborator that turns a region into a visible
// highlight (a PDF annotation, an HTML span, ...).
type Marker interface {
	Mark(region Region) error
}

// Apply marks every region, skipping regions the marker rejects: one bad
// rectangle must not abort the rest of the page. Returns the number of
// regions actually marked.
func Apply(regions []Region, marker Marker) int {
	marked := 0
	for _, region := range regions {
		if err := marker.Mark(region); err != nil {
			continue
		}
		marked++
	}
	return marked
}
