package tarot_test

import (
	"strings"
	"testing"

	"arcana/pkg/tarot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedSpread(t *testing.T, spread tarot.SpreadType) []tarot.DrawnCard {
	t.Helper()
	yes, no := true, false
	cards, err := newDrawer(t, 1).ResolveSelection(
		[]tarot.Selection{{ID: 1, Reversed: &no}, {ID: 14, Reversed: &yes}, {ID: 20, Reversed: &no}},
		spread,
	)
	require.NoError(t, err)
	return cards
}

func TestBuildPrompt_TemporalEnglish(t *testing.T) {
	cards := fixedSpread(t, tarot.SpreadTemporal)
	prompt := tarot.BuildPrompt(cards, "", tarot.LanguageEn, tarot.SpreadTemporal)

	assert.True(t, strings.HasPrefix(prompt, "You are an experienced tarot reader"))
	assert.Contains(t, prompt, "🔮 Past: The Fool (upright)\n   Meaning: New beginnings, spontaneity, a leap of faith\n   Position: What has shaped the current situation")
	assert.Contains(t, prompt, "🔮 Present: Death (reversed)")
	assert.Contains(t, prompt, "Meaning: "+cards[1].MeaningReversed)
	assert.Contains(t, prompt, "🔮 Future: The Sun (upright)")
	assert.NotContains(t, prompt, "Context from user")
	assert.True(t, strings.HasSuffix(prompt, "speak about possibilities and tendencies."))
}

func TestBuildPrompt_TemporalWithContext(t *testing.T) {
	cards := fixedSpread(t, tarot.SpreadTemporal)
	prompt := tarot.BuildPrompt(cards, "new apartment", tarot.LanguageEn, tarot.SpreadTemporal)

	assert.Contains(t, prompt, "\n\nContext from user: \"new apartment\"\n\nProvide a detailed interpretation")
}

func TestBuildPrompt_QuestionContainsLiteralQuestion(t *testing.T) {
	cards := fixedSpread(t, tarot.SpreadQuestion)
	question := "Will I get the job?"

	for _, language := range []tarot.Language{tarot.LanguageEn, tarot.LanguageUk} {
		prompt := tarot.BuildPrompt(cards, question, language, tarot.SpreadQuestion)
		assert.GreaterOrEqual(t, strings.Count(prompt, question), 2, "language %s", language)
	}

	prompt := tarot.BuildPrompt(cards, question, tarot.LanguageEn, tarot.SpreadQuestion)
	assert.Contains(t, prompt, "The user asked a question: \"Will I get the job?\"\n\nTo answer this question, 3 Tarot cards were drawn:")
	assert.Contains(t, prompt, "🔮 Card 2: Death (reversed)\n   Card meaning: ")
	assert.Contains(t, prompt, "Role: Advice or outcome, direction of action")
	assert.Contains(t, prompt, "Focus EXCLUSIVELY on answering the specific question \"Will I get the job?\"")
	assert.NotContains(t, prompt, "Context from user")
}

func TestBuildPrompt_Ukrainian(t *testing.T) {
	cards := fixedSpread(t, tarot.SpreadTemporal)
	prompt := tarot.BuildPrompt(cards, "", tarot.LanguageUk, tarot.SpreadTemporal)

	assert.True(t, strings.HasPrefix(prompt, "Ти - досвідчений таролог"))
	assert.Contains(t, prompt, "🔮 Минуле: Дурень (пряма)")
	assert.Contains(t, prompt, "🔮 Теперішнє: Смерть (перевернута)\n   Значення: "+cards[1].MeaningReversedUk)
	assert.Contains(t, prompt, "Позиція: Можливий результат, якщо продовжувати поточним шляхом")
}

func TestBuildPrompt_Deterministic(t *testing.T) {
	cards := fixedSpread(t, tarot.SpreadQuestion)
	a := tarot.BuildPrompt(cards, "q", tarot.LanguageUk, tarot.SpreadQuestion)
	b := tarot.BuildPrompt(cards, "q", tarot.LanguageUk, tarot.SpreadQuestion)
	assert.Equal(t, a, b)
}
