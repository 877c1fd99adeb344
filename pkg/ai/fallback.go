package ai

import (
	"fmt"
	"strings"

	"arcana/pkg/tarot"
)

// Fallback 所有尝试失败后的本地模板解读，只依赖已校验的牌面数据，不会失败
// 问题牌阵（且问题非空）按问答口吻生成，其余按过去/现在/未来叙述
func Fallback(cards []tarot.DrawnCard, language tarot.Language, spread tarot.SpreadType, question string) string {
	if len(cards) < tarot.SelectionSize {
		return ""
	}
	uk := language == tarot.LanguageUk

	if spread == tarot.SpreadQuestion && question != "" {
		if uk {
			return questionFallbackUk(cards, question)
		}
		return questionFallbackEn(cards, question)
	}
	if uk {
		return temporalFallbackUk(cards)
	}
	return temporalFallbackEn(cards)
}

func meaningEn(c tarot.DrawnCard) string { return strings.ToLower(c.Meaning) }
func meaningUk(c tarot.DrawnCard) string { return strings.ToLower(c.MeaningUk) }

func orientationEn(c tarot.DrawnCard) string {
	if c.Reversed {
		return "(reversed)"
	}
	return "(upright)"
}

func orientationUk(c tarot.DrawnCard) string {
	if c.Reversed {
		return "(перевернута)"
	}
	return "(пряма)"
}

// pick 按正逆位选择连接词
func pick(c tarot.DrawnCard, reversed, upright string) string {
	if c.Reversed {
		return reversed
	}
	return upright
}

func questionFallbackEn(cards []tarot.DrawnCard, question string) string {
	return fmt.Sprintf(`Answer to your question "%s" through Tarot cards:

The first card %s %s indicates %s. This is the main energy influencing your situation.

The second card %s %s adds context: %s. This is what needs to be considered when making a decision.

The third card %s %s advises: %s. This is the direction for your actions.

Together, these cards speak about the importance of a conscious approach to your question. Listen to your inner voice and trust your intuition.`,
		question,
		cards[0].Name, orientationEn(cards[0]), meaningEn(cards[0]),
		cards[1].Name, orientationEn(cards[1]), meaningEn(cards[1]),
		cards[2].Name, orientationEn(cards[2]), meaningEn(cards[2]),
	)
}

func questionFallbackUk(cards []tarot.DrawnCard, question string) string {
	return fmt.Sprintf(`Відповідь на ваше питання "%s" через карти Таро:

Перша карта %s %s вказує на %s. Це основна енергія, що впливає на вашу ситуацію.

Друга карта %s %s додає контекст: %s. Це те, що потрібно врахувати при прийнятті рішення.

Третя карта %s %s радить: %s. Це напрямок для ваших дій.

Ці карти разом говорять про важливість усвідомленого підходу до вашого питання. Прислухайтеся до свого внутрішнього голосу та довіряйте своїй інтуїції.`,
		question,
		cards[0].LocalizedName(), orientationUk(cards[0]), meaningUk(cards[0]),
		cards[1].LocalizedName(), orientationUk(cards[1]), meaningUk(cards[1]),
		cards[2].LocalizedName(), orientationUk(cards[2]), meaningUk(cards[2]),
	)
}

func temporalFallbackEn(cards []tarot.DrawnCard) string {
	return fmt.Sprintf(`Your spread reveals an interesting combination of energies:

The Past is represented by %s, which %s%s.

In the Present moment, you have %s, which %s%s.

The Future is illuminated by %s, which %s%s.

Together, these cards advise you to be attentive to your inner feelings and trust the process. Remember that the future is not fixed - it is shaped by your decisions today.`,
		cards[0].Name, pick(cards[0], "in reversed position may indicate ", "symbolizes "), meaningEn(cards[0]),
		cards[1].Name, pick(cards[1], "reversed means ", "represents "), meaningEn(cards[1]),
		cards[2].Name, pick(cards[2], "reversed may bring ", "promises "), meaningEn(cards[2]),
	)
}

func temporalFallbackUk(cards []tarot.DrawnCard) string {
	return fmt.Sprintf(`Ваш розклад показує цікаву комбінацію енергій:

Минуле представлене картою %s, що %s%s.

У теперішньому момент ви маєте %s, що %s%s.

Майбутнє освітлене картою %s, яка %s%s.

Ці карти разом радять вам бути уважними до своїх внутрішніх відчуттів і довіряти процесу. Пам'ятайте, що майбутнє не є фіксованим - воно формується вашими рішеннями сьогодні.`,
		cards[0].LocalizedName(), pick(cards[0], "у перевернутому положенні може вказувати на ", "символізує "), meaningUk(cards[0]),
		cards[1].LocalizedName(), pick(cards[1], "у перевернутому стані означає ", "представляє "), meaningUk(cards[1]),
		cards[2].LocalizedName(), pick(cards[2], "перевернута і може принести ", "обіцяє "), meaningUk(cards[2]),
	)
}
