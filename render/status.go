package render

import (
	"fmt"

	"github.com/lixenwraith/food-drop/engine"
)

// Title prefixes the status line and the window title
const Title = "Food Drop Game"

// StatusLine reports the score and drops left, or the result once the session is over
func StatusLine(g *engine.Game) string {
	switch g.Outcome() {
	case engine.OutcomeWon:
		return fmt.Sprintf("%s | GAME OVER! YOU WIN! Final Score: %.1f", Title, g.Score())
	case engine.OutcomeLost:
		return fmt.Sprintf("%s | GAME OVER! YOU LOSE! Final Score: %.1f", Title, g.Score())
	default:
		return fmt.Sprintf("%s | Score: %.1f, Drops left: %d", Title, g.Score(), g.DropsLeft())
	}
}
