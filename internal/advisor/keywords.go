package advisor

import "strings"

// Keyword catalogs shared by the questionnaire scoring and the
// free-text matcher. Single definition: handlers must not re-declare
// these lists. All entries are lowercase; inputs are lowercased before
// matching and a keyword matches as a substring anywhere in the text.
var (
	technicalKeywords = []string{
		"программирование", "ml", "data", "инженер", "математика", "разработка", "python",
	}

	productKeywords = []string{
		"менеджмент", "бизнес", "стартап", "product", "маркетинг", "управление",
	}

	// allowedTopics gates the free-text matcher: a message without any
	// of these is answered with a clarification prompt.
	allowedTopics = []string{
		"искусственный интеллект", "ai", "product", "магистратура", "итмо",
		"управление", "управление ии", "поступить", "курсы", "карьера",
		"команда", "руководитель", "сравнить", "руковод", "срав", "выбрать",
		"менеджер", "экзамен", "дата", "даты",
	}

	// Program-detection markers; the product markers are checked first
	// because "ai" is a substring of "ai_product".
	productProgramMarkers = []string{"ai_product", "ai product", "управление ии"}
	aiProgramMarkers      = []string{"ai", "искусственный интеллект"}

	compareMarkers   = []string{"сравн", "выбрать"}
	teamMarkers      = []string{"команда"}
	managerMarkers   = []string{"руковод", "менеджер"}
	admissionMarkers = []string{"поступить", "экзамен", "дата", "даты"}
)

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if keyword != "" && strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
