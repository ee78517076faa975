package aigen

import (
	"fmt"

	"github.com/jmylchreest/brandkit/internal/brand"
)

// LogoPrompt builds the prompt for an icon-only logo. The no-text
// instructions are repeated deliberately; image models tend to sneak
// letters in otherwise.
func LogoPrompt(id brand.Identity) string {
	return fmt.Sprintf(
		"Abstract minimalist logo ICON ONLY, NO TEXT NO LETTERS NO WORDS. "+
			"Simple geometric symbol using %s and %s. "+
			"%s background (%s). "+
			"Clean vector style, suitable for 16x16 favicon. "+
			"Single centered shape, flat design, high contrast. "+
			"DO NOT include any text, letters, or brand name.",
		id.Primary, id.Accent, id.Theme, id.Background,
	)
}

// OGPrompt builds the prompt for a social media banner.
func OGPrompt(id brand.Identity) string {
	return fmt.Sprintf(
		"Professional banner image for '%s', "+
			"using colors %s, %s, and %s, "+
			"%s theme, modern abstract design, "+
			"suitable for social media preview, no text, "+
			"gradient elements, professional corporate style",
		id.Name, id.Primary, id.Accent, id.Background, id.Theme,
	)
}
