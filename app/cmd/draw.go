package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"arcana/bootstrap"
	"arcana/pkg/ai"
	"arcana/pkg/tarot"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// CmdDraw 在终端抽一次牌并打印解读，不写数据库
var CmdDraw = &cobra.Command{
	Use:   "draw",
	Short: "Draw a three-card spread and print its interpretation",
	Long: `Draw shuffles the deck, picks three cards and asks the configured AI provider
for an interpretation. When the provider is unavailable the offline interpretation is printed.

Examples:
  arcana draw
  arcana draw --language en
  arcana draw --spread question --question "Should I move abroad?"`,
	Args: cobra.NoArgs,
	RunE: runDraw,
}

func init() {
	CmdDraw.Flags().StringP("language", "l", "uk", "interpretation language: uk or en")
	CmdDraw.Flags().StringP("spread", "s", "temporal", "spread type: temporal or question")
	CmdDraw.Flags().StringP("question", "q", "", "question to ask the cards")
	CmdDraw.Flags().Bool("no-ai", false, "skip the AI provider and print the offline interpretation")
}

func runDraw(cmd *cobra.Command, args []string) error {
	language := tarot.ParseLanguage(mustString(cmd, "language"))
	spread := tarot.ParseSpreadType(mustString(cmd, "spread"))
	question := mustString(cmd, "question")
	noAI, _ := cmd.Flags().GetBool("no-ai")

	if spread == tarot.SpreadQuestion && question == "" {
		return fmt.Errorf("--question is required for question spreads")
	}

	catalog, err := tarot.LoadCatalog()
	if err != nil {
		return err
	}
	cards, err := tarot.NewDrawer(catalog, nil).Draw(tarot.SelectionSize, spread)
	if err != nil {
		return err
	}

	var text string
	if noAI {
		text = ai.Fallback(cards, language, spread, question)
	} else {
		interpreter := bootstrap.SetupAI(context.Background())
		text, err = interpreter.Interpret(cmd.Context(), cards, question, language, spread)
		if err != nil {
			return err
		}
	}

	printSpread(cmd.OutOrStdout(), cards, language)
	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintln(cmd.OutOrStdout(), wrap(text, terminalWidth()))
	return nil
}

// printSpread 每张牌一行：位置、名称、正逆位
func printSpread(w io.Writer, cards []tarot.DrawnCard, language tarot.Language) {
	bold := color.New(color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	upright := color.New(color.FgGreen).SprintFunc()
	reversed := color.New(color.FgRed).SprintFunc()

	for _, c := range cards {
		position, name, orientation := c.Position, c.Name, upright("upright")
		if language == tarot.LanguageUk {
			position, name, orientation = c.PositionUk, c.LocalizedName(), upright("пряма")
		}
		if c.Reversed {
			orientation = reversed("reversed")
			if language == tarot.LanguageUk {
				orientation = reversed("перевернута")
			}
		}
		fmt.Fprintf(w, "%s  %s (%s)\n", cyan(strings.ToUpper(position)), bold(name), orientation)
	}
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// wrap 按空格折行，保留原有的换行
func wrap(text string, width int) string {
	var b strings.Builder
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}
		col := 0
		for j, word := range strings.Fields(line) {
			n := len([]rune(word))
			if j > 0 {
				if col+1+n > width {
					b.WriteByte('\n')
					col = 0
				} else {
					b.WriteByte(' ')
					col++
				}
			}
			b.WriteString(word)
			col += n
		}
	}
	return b.String()
}

func mustString(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}
