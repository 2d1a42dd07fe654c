package locator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingMarker struct {
	marked []Region
	failOn string
}

func (m *recordingMarker) Mark(region Region) error {
	if region.Text == m.failOn {
		return errors.New("rectangle out of bounds")
	}
	m.marked = append(m.marked, region)
	return nil
}

func TestApplyMarksAllRegions(t *testing.T) {
	regions := []Region{
		{Start: 0, End: 5, Text: "alpha", Source: SourceExact},
		{Start: 10, End: 14, Text: "beta", Source: SourceSentence},
	}
	marker := &recordingMarker{}

	marked := Apply(regions, marker)

	assert.Equal(t, 2, marked)
	assert.Len(t, marker.marked, 2)
}

func TestApplySkipsRejectedRegions(t *testing.T) {
	regions := []Region{
		{Text: "alpha"},
		{Text: "broken"},
		{Text: "gamma"},
	}
	marker := &recordingMarker{failOn: "broken"}

	marked := Apply(regions, marker)

	// One bad rectangle must not abort the rest of the page.
	assert.Equal(t, 2, marked)
	assert.Equal(t, "alpha", marker.marked[0].Text)
	assert.Equal(t, "gamma", marker.marked[1].Text)
}

func TestApplyEmptyRegions(t *testing.T) {
	assert.Equal(t, 0, Apply(nil, &recordingMarker{}))
}
