package projection

import (
	"math/rand"
	"net/url"
)

var placeholderThemes = []string{"ocean", "sea", "oil spill", "coast", "boat", "storm"}

// RandomPlaceholder выбирает случайную тематическую картинку. Результат не кешируется.
func RandomPlaceholder(size string) string {
	theme := placeholderThemes[rand.Intn(len(placeholderThemes))]
	return "https://source.unsplash.com/random/" + size + "/?" + url.PathEscape(theme)
}
