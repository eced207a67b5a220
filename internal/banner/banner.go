package banner

import (
	"github.com/charmbracelet/lipgloss"
)

func GetString() string {
	renderer := lipgloss.DefaultRenderer()

	style := renderer.NewStyle().
		Foreground(lipgloss.Color("#7D56F4")).
		Bold(true)

	ascii := `
         _                  __ _
   ___  (_)___  ____ _ / /(_)___  ___
  / _ \/ / __ \/ __ '/ / / / __ \/ _ \
 / /_/ / / / / / /_/ / / / / / / /  __/
/ .___/_/_/ /_/\__, /_/_/_/_/ /_/\___/
/_/           /____/                   `

	return "\n" + style.Render(ascii) + "\n"
}
