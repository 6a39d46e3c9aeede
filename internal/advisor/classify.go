package advisor

import (
	"strings"

	"ProgramAdvisor/internal/domain"
)

// Classify scores the three questionnaire answers against the fixed
// keyword catalogs and picks a program. Each keyword contributes at
// most one point no matter how many answers it appears in. Equal
// scores, including both zero, produce a tie.
func Classify(background, interest, startup string) domain.Decision {
	background = strings.ToLower(background)
	interest = strings.ToLower(interest)
	startup = strings.ToLower(startup)

	technicalScore := 0
	for _, keyword := range technicalKeywords {
		if strings.Contains(background, keyword) || strings.Contains(interest, keyword) {
			technicalScore++
		}
	}

	productScore := 0
	for _, keyword := range productKeywords {
		if strings.Contains(background, keyword) || strings.Contains(interest, keyword) || strings.Contains(startup, keyword) {
			productScore++
		}
	}

	switch {
	case technicalScore > productScore:
		return domain.Decision{Slug: domain.SlugAI}
	case productScore > technicalScore:
		return domain.Decision{Slug: domain.SlugAIProduct}
	default:
		return domain.Decision{Tie: true}
	}
}
