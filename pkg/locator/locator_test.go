package locator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const firewallPage = `A firewall is a network security device that monitors incoming traffic. ` +
	`It establishes a barrier between trusted and untrusted networks. ` +
	`Packet filtering firewalls inspect each packet in isolation.`

func TestLocateExactMatch(t *testing.T) {
	regions := Locate(firewallPage, "A firewall is a network security device that monitors incoming traffic.")

	require.Len(t, regions, 1)
	assert.Equal(t, SourceExact, regions[0].Source)
	assert.Equal(t, 0, regions[0].Start)
	assert.Equal(t, "A firewall is a network security device that monitors incoming traffic.", regions[0].Text)
}

func TestLocateCaseInsensitive(t *testing.T) {
	regions := Locate(firewallPage, "a FIREWALL is a network security device that monitors incoming traffic.")

	require.Len(t, regions, 1)
	// The region text preserves the page's casing, not the query's.
	assert.Equal(t, "A firewall is a network security device that monitors incoming traffic.", regions[0].Text)
}

func TestLocateNormalizesWhitespace(t *testing.T) {
	page := "A firewall is a\n  network   security device."
	regions := Locate(page, "firewall is a network security device.")

	require.Len(t, regions, 1)
	assert.Equal(t, SourceExact, regions[0].Source)
}

func TestLocateSentenceFallback(t *testing.T) {
	// Answer is two sentences; only the first appears on the page, so the
	// whole-answer pass misses and the sentence pass catches it.
	answer := "It establishes a barrier between trusted and untrusted networks. This sentence is not on the page at all."
	regions := Locate(firewallPage, answer)

	require.NotEmpty(t, regions)
	for _, r := range regions {
		assert.Equal(t, SourceSentence, r.Source)
	}
	assert.Equal(t, "It establishes a barrier between trusted and untrusted networks.", regions[0].Text)
}

func TestLocateSentenceFallbackSkipsShortSentences(t *testing.T) {
	// Sentences of 15 characters or fewer never reach the page search,
	// even when they would match.
	page := "Yes it does. And a longer sentence that is definitely on the page."
	regions := Locate(page, "Yes it does. Nothing else here matches anything on that page whatsoever.")

	assert.Empty(t, regionsOfSource(regions, SourceSentence))
}

func TestLocateNgramFallback(t *testing.T) {
	// Reworded answer: no full or sentence match, but 3-word windows
	// overlap the page text.
	answer := "filtering firewalls inspect each packet carefully and separately"
	regions := Locate(firewallPage, answer)

	require.NotEmpty(t, regions)
	for _, r := range regions {
		assert.Equal(t, SourceNgram, r.Source)
	}
}

func TestLocateShortAnswerUsesSignificantWords(t *testing.T) {
	// Three words or fewer: individual words longer than three characters
	// are searched instead of windows.
	regions := Locate(firewallPage, "packet filtering")

	require.NotEmpty(t, regions)
	for _, r := range regions {
		assert.Equal(t, SourceNgram, r.Source)
	}
	// "filtering" occurs once, "packet" twice.
	assert.Len(t, regions, 3)
}

func TestLocateNotFoundSentinelShortCircuits(t *testing.T) {
	regions := Locate(firewallPage, "(Answer not found)")
	assert.Nil(t, regions)
}

func TestLocateEmptyAnswer(t *testing.T) {
	assert.Nil(t, Locate(firewallPage, ""))
	assert.Nil(t, Locate(firewallPage, "   \n\t "))
}

func TestLocateNoMatchAnywhere(t *testing.T) {
	regions := Locate(firewallPage, "quantum chromodynamics lattice simulation renormalization")
	assert.Empty(t, regions)
}

func TestPageRepeatedQueries(t *testing.T) {
	page := NewPage(firewallPage)

	first := page.Locate("Packet filtering firewalls inspect each packet in isolation.")
	second := page.Locate("Packet filtering firewalls inspect each packet in isolation.")

	assert.Equal(t, first, second)
}

func TestLocateOnPageWithLengthChangingRunes(t *testing.T) {
	// Lowercasing U+0130 shrinks its encoding and lowercasing U+023A grows
	// it, so the lowered layer drifts out of byte alignment with the page
	// text before the match even starts.
	page := "İİİİ network security device Ⱥ basics. ȺȺȺ trailing noise."
	regions := Locate(page, "network security device")

	require.Len(t, regions, 1)
	assert.Equal(t, SourceExact, regions[0].Source)
	assert.Equal(t, "network security device", regions[0].Text)

	p := NewPage(page)
	assert.Equal(t, regions[0].Text, p.Text()[regions[0].Start:regions[0].End])
}

func TestLocateCaseInsensitiveUnicode(t *testing.T) {
	page := "Ⱥ Ⱥ Ⱥ İstanbul hosts the main datacenter for the region."
	regions := Locate(page, "istanbul hosts the main datacenter")

	require.Len(t, regions, 1)
	assert.Equal(t, "İstanbul hosts the main datacenter", regions[0].Text)
}

func TestLocateMatchEndingAtPageEnd(t *testing.T) {
	page := "ȺȺȺȺ packet filtering basics"
	regions := Locate(page, "packet filtering basics")

	require.Len(t, regions, 1)
	assert.Equal(t, "packet filtering basics", regions[0].Text)
	assert.Equal(t, len("ȺȺȺȺ packet filtering basics"), regions[0].End)
}

func TestRegionOffsetsIndexNormalizedText(t *testing.T) {
	page := NewPage("Some   spaced\n\ntext with a firewall inside.")

	regions := page.Locate("text with a firewall inside.")
	require.Len(t, regions, 1)

	r := regions[0]
	assert.Equal(t, r.Text, page.Text()[r.Start:r.End])
}

func regionsOfSource(regions []Region, source Source) []Region {
	var out []Region
	for _, r := range regions {
		if r.Source == source {
			out = append(out, r)
		}
	}
	return out
}
