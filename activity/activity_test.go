package activity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalog_CoversAllBreakTools(t *testing.T) {
	profiles := Catalog()
	assert.Len(t, profiles, 8)

	ranges := map[string][2]int{
		"take_a_break":     {10, 30},
		"watch_netflix":    {20, 40},
		"show_meme":        {5, 20},
		"bathroom_break":   {15, 35},
		"coffee_mission":   {10, 25},
		"urgent_call":      {20, 40},
		"deep_thinking":    {5, 15},
		"email_organizing": {10, 25},
	}

	for _, p := range profiles {
		want, ok := ranges[p.Name]
		assert.True(t, ok, "unexpected profile %s", p.Name)
		assert.Equal(t, want[0], p.MinReduction, p.Name)
		assert.Equal(t, want[1], p.MaxReduction, p.Name)
		assert.NoError(t, p.Validate())
		assert.NotEmpty(t, p.Description)
		assert.NotEmpty(t, p.Summary)
		assert.NotEmpty(t, p.Messages)
		assert.NotEmpty(t, p.Keywords)
	}
}

func TestValidate_RejectsBadRanges(t *testing.T) {
	assert.ErrorIs(t, Profile{Name: "x", MinReduction: 5, MaxReduction: 1}.Validate(), ErrInvalidProfile)
	assert.ErrorIs(t, Profile{Name: "x", MinReduction: -1, MaxReduction: 1}.Validate(), ErrInvalidProfile)
	assert.NoError(t, Profile{Name: "x", MinReduction: 0, MaxReduction: 0}.Validate())
}

func TestLookup(t *testing.T) {
	p, ok := Lookup("watch_netflix")
	assert.True(t, ok)
	assert.Equal(t, "watch_netflix", p.Name)

	_, ok = Lookup("do_actual_work")
	assert.False(t, ok)
}

func TestMatch_KeywordContainment(t *testing.T) {
	p, ok := Match("I need a break")
	assert.True(t, ok)
	assert.Equal(t, "take_a_break", p.Name)

	p, ok = Match("넷플릭스 보고 싶어")
	assert.True(t, ok)
	assert.Equal(t, "watch_netflix", p.Name)

	p, ok = Match("커피 마시러 가자")
	assert.True(t, ok)
	assert.Equal(t, "coffee_mission", p.Name)

	p, ok = Match("funny meme please")
	assert.True(t, ok)
	assert.Equal(t, "show_meme", p.Name)

	p, ok = Match("URGENT call with the doctor")
	assert.True(t, ok)
	assert.Equal(t, "urgent_call", p.Name)

	_, ok = Match("compiling the quarterly report")
	assert.False(t, ok)
}

func TestMatch_CatalogOrderWins(t *testing.T) {
	// "break" (take_a_break) appears before "bathroom" keywords in the
	// catalog, so mixed input resolves to the earlier profile.
	p, ok := Match("bathroom break")
	assert.True(t, ok)
	assert.Equal(t, "take_a_break", p.Name)
}

func TestPickMessage(t *testing.T) {
	p, _ := Lookup("take_a_break")
	for i := 0; i < 20; i++ {
		assert.Contains(t, p.Messages, p.PickMessage())
	}

	bare := Profile{Summary: "only summary"}
	assert.Equal(t, "only summary", bare.PickMessage())
}
