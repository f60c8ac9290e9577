package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashtags_CaseFoldAndDedupe(t *testing.T) {
	tags := Hashtags("Random #Tag1 and #tag2 and #tag1 again")
	assert.Equal(t, []string{"tag1", "tag2"}, tags)
}

func TestHashtags_None(t *testing.T) {
	tags := Hashtags("no tags here, just a # stray hash")
	assert.NotNil(t, tags)
	assert.Empty(t, tags)
}

func TestActionItems_ImperativeCue(t *testing.T) {
	items := ActionItems("Need to call the lawyer. #urgent #visa")
	assert.Len(t, items, 1)
	assert.Contains(t, items[0], "call the lawyer")
}

func TestActionItems_LineMarkers(t *testing.T) {
	content := "This is a note\n- TODO: write tests\n- Ship it!\n- [ ] checkbox task\nNot actionable"
	items := ActionItems(content)
	assert.Equal(t, []string{"write tests", "Ship it!", "checkbox task"}, items)
}

func TestActionItems_SentenceSplit(t *testing.T) {
	items := ActionItems("We met on Friday. You should send the forms! Nothing else happened.")
	assert.Len(t, items, 1)
	assert.Contains(t, items[0], "send the forms")
}

func TestActionItems_DedupeCaseInsensitive(t *testing.T) {
	items := ActionItems("todo: file taxes\nTODO: File Taxes")
	assert.Equal(t, []string{"file taxes"}, items)
}

func TestActionItems_Empty(t *testing.T) {
	items := ActionItems("")
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestActionItems_Deterministic(t *testing.T) {
	content := "Must renew the passport. #travel\n- [ ] book flights"
	first := ActionItems(content)
	second := ActionItems(content)
	assert.Equal(t, first, second)
}
