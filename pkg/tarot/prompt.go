package tarot

import (
	"fmt"
	"strings"
)

// promptLocale 某一语言下提示词的全部固定文本
type promptLocale struct {
	preamble   string
	upright    string
	reversed   string
	contextFmt string
	temporal   spreadText
	question   spreadText
}

// spreadText 某一牌阵的牌面描述模板与指令
type spreadText struct {
	intro        string // question 牌阵中包含一个 %s 占位符
	headers      [3]string
	meaningLabel string
	roleLabel    string
	roles        [3]string
	instructions string // question 牌阵中包含一个 %s 占位符
}

var promptLocales = map[Language]promptLocale{
	LanguageUk: {
		preamble:   "Ти - досвідчений таролог з глибоким розумінням символіки карт Таро. Твоя мета - надати змістовну, співчутливу та проникливу інтерпретацію розкладу з трьох карт.",
		upright:    "(пряма)",
		reversed:   "(перевернута)",
		contextFmt: "Контекст від користувача: \"%s\"",
		temporal: spreadText{
			intro:        "Користувач витягнув 3 карти Таро у розкладі Минуле-Теперішнє-Майбутнє:",
			headers:      [3]string{"Минуле", "Теперішнє", "Майбутнє"},
			meaningLabel: "Значення",
			roleLabel:    "Позиція",
			roles: [3]string{
				"Те, що сформувало поточну ситуацію",
				"Поточний стан справ, енергії зараз",
				"Можливий результат, якщо продовжувати поточним шляхом",
			},
			instructions: `Надай детальну інтерпретацію (3-4 абзаци), яка включає:
1. Загальний огляд того, що розповідають ці три карти разом
2. Як минуле вплинуло на теперішнє
3. Що означає поточна ситуація
4. Який можливий шлях у майбутньому та які поради
5. Практичні рекомендації або питання для роздумів

Використовуй теплий, підтримуючий тон. Пам'ятай, що Таро - це інструмент для саморефлексії та особистого зростання. Уникай категоричних прогнозів, натомість говори про можливості та тенденції.`,
		},
		question: spreadText{
			intro:        "Користувач поставив питання: \"%s\"\n\nДля відповіді на це питання було витягнуто 3 карти Таро:",
			headers:      [3]string{"Карта 1", "Карта 2", "Карта 3"},
			meaningLabel: "Значення карти",
			roleLabel:    "Роль",
			roles: [3]string{
				"Основний аспект відповіді, ключова енергія",
				"Додатковий контекст, що потрібно врахувати",
				"Порада або результат, напрямок дії",
			},
			instructions: `Надай детальну відповідь на питання користувача (3-4 абзаци), яка включає:
1. Пряму відповідь на питання користувача на основі всіх трьох карт
2. Як кожна карта відповідає на питання та що вона каже про ситуацію
3. Які енергії, обставини та фактори впливають на відповідь
4. Конкретні поради та рекомендації щодо дії в контексті питання
5. Практичні кроки що можна зробити прямо зараз

ВАЖЛИВО: Зосередься ВИКЛЮЧНО на відповіді на конкретне питання "%s". Інтерпретуй карти саме в контексті цього питання. Використовуй теплий, підтримуючий тон. Пам'ятай, що Таро - це інструмент для саморефлексії та особистого зростання.`,
		},
	},
	LanguageEn: {
		preamble:   "You are an experienced tarot reader with deep understanding of Tarot symbolism. Your goal is to provide meaningful, compassionate, and insightful interpretation of a three-card spread.",
		upright:    "(upright)",
		reversed:   "(reversed)",
		contextFmt: "Context from user: \"%s\"",
		temporal: spreadText{
			intro:        "The user drew 3 Tarot cards in a Past-Present-Future spread:",
			headers:      [3]string{"Past", "Present", "Future"},
			meaningLabel: "Meaning",
			roleLabel:    "Position",
			roles: [3]string{
				"What has shaped the current situation",
				"Current state of affairs, energies now",
				"Likely outcome if continuing on current path",
			},
			instructions: `Provide a detailed interpretation (3-4 paragraphs) that includes:
1. An overall view of what these three cards tell together
2. How the past has influenced the present
3. What the current situation means
4. What the possible path forward is and what advice to offer
5. Practical recommendations or questions for reflection

Use a warm, supportive tone. Remember that Tarot is a tool for self-reflection and personal growth. Avoid categorical predictions; instead, speak about possibilities and tendencies.`,
		},
		question: spreadText{
			intro:        "The user asked a question: \"%s\"\n\nTo answer this question, 3 Tarot cards were drawn:",
			headers:      [3]string{"Card 1", "Card 2", "Card 3"},
			meaningLabel: "Card meaning",
			roleLabel:    "Role",
			roles: [3]string{
				"Main aspect of the answer, key energy",
				"Additional context to consider",
				"Advice or outcome, direction of action",
			},
			instructions: `Provide a detailed answer to the user's question (3-4 paragraphs) that includes:
1. A direct answer to the user's question based on all three cards
2. How each card answers the question and what it says about the situation
3. What energies, circumstances, and factors influence the answer
4. Specific advice and recommendations for action in the context of the question
5. Practical steps that can be taken right now

IMPORTANT: Focus EXCLUSIVELY on answering the specific question "%s". Interpret the cards specifically in the context of this question. Use a warm, supportive tone. Remember that Tarot is a tool for self-reflection and personal growth.`,
		},
	},
}

// localeFor 非 uk 的语言一律使用英文模板
func localeFor(language Language) promptLocale {
	if language == LanguageUk {
		return promptLocales[LanguageUk]
	}
	return promptLocales[LanguageEn]
}

// BuildPrompt 根据三张牌、问题、语言和牌阵类型生成发送给模型的提示词
// 纯函数，调用方保证 cards 恰好 3 张
func BuildPrompt(cards []DrawnCard, question string, language Language, spread SpreadType) string {
	locale := localeFor(language)

	text := locale.temporal
	intro := text.intro
	instructions := text.instructions
	if spread == SpreadQuestion {
		text = locale.question
		intro = fmt.Sprintf(text.intro, question)
		instructions = fmt.Sprintf(text.instructions, question)
	}

	blocks := make([]string, 0, len(cards))
	for i, card := range cards {
		if i >= len(text.headers) {
			break
		}
		name, meaning := card.Name, card.Meaning
		if language == LanguageUk {
			name, meaning = card.LocalizedName(), card.MeaningUk
		}
		orientation := locale.upright
		if card.Reversed {
			orientation = locale.reversed
		}
		blocks = append(blocks, fmt.Sprintf("🔮 %s: %s %s\n   %s: %s\n   %s: %s",
			text.headers[i], name, orientation,
			text.meaningLabel, meaning,
			text.roleLabel, text.roles[i]))
	}

	parts := []string{locale.preamble, intro + "\n\n" + strings.Join(blocks, "\n\n")}
	if spread != SpreadQuestion && question != "" {
		parts = append(parts, fmt.Sprintf(locale.contextFmt, question))
	}
	parts = append(parts, instructions)

	return strings.Join(parts, "\n\n")
}
