package extractor

import (
	"fmt"
	"strings"

	"ProgramAdvisor/internal/domain"
)

// unknownValue is the sentinel used when a display field is absent.
const unknownValue = "Неизвестно"

// scholarshipCatalog is a static asset attached verbatim to every
// record; the program pages do not publish scholarship data.
var scholarshipCatalog = []domain.Scholarship{
	{Name: "Государственная академическая стипендия", Amount: "До 4 100 рублей"},
	{Name: "Повышенная государственная академическая стипендия", Amount: "До 27 000 рублей"},
	{Name: "Стипендия Президента и Правительства РФ", Amount: "До 30 000 рублей"},
	{Name: "Именная стипендия Правительства Санкт-Петербурга", Amount: "7 000 рублей"},
	{Name: "Стипендия фонда Владимира Потанина", Amount: "25 000 рублей"},
	{Name: "Стипендия «Альфа-Шанс»", Amount: "До 300 000 рублей"},
}

// normalize reshapes the parsed payload into a flat ProgramRecord,
// applying all documented defaults in one place.
func normalize(props *pageProps, sourceURL string) (domain.ProgramRecord, error) {
	api := props.APIProgram
	narrative := props.JSONProgram

	if strings.TrimSpace(api.Slug) == "" {
		return domain.ProgramRecord{}, fmt.Errorf("%w: program slug is empty", ErrStructure)
	}

	record := domain.ProgramRecord{
		Title: api.Title,
		Slug:  api.Slug,
		About: domain.About{
			Lead: narrative.About.Lead,
			Desc: narrative.About.Desc,
		},
		Career:               domain.Career{Text: narrative.Career.Lead},
		EducationCost:        api.EducationCost,
		StudyPeriod:          api.Study.Label,
		Language:             api.Language,
		AcademicPlanURL:      api.AcademicPlan,
		DirectionOfEducation: api.DirectionOfEducation,
		DirectionCode:        api.DirectionCode,
		Faculty:              unknownValue,
		Manager:              domain.Manager{},
		Team:                 make([]domain.TeamMember, 0, len(props.Team)),
		Partners:             make([]string, 0, len(narrative.CareersImages)),
		Scholarships:         scholarshipCatalog,
		AdmissionMethods:     make([]string, 0, len(props.Admission.Items)),
		ExamDates:            make([]string, 0, len(props.ExamDates)),
		SocialLinks:          narrative.Social,
		VideoLinks:           make([]string, 0, len(narrative.About.Video)),
		SimilarPrograms:      make([]domain.SimilarProgram, 0, len(props.SimilarPrograms)),
		SourceURL:            sourceURL,
	}

	if record.Title == "" {
		record.Title = unknownValue
	}
	if record.EducationCost == nil {
		record.EducationCost = map[string]int64{}
	}
	if record.SocialLinks == nil {
		record.SocialLinks = map[string]string{}
	}

	if len(api.Faculties) > 0 {
		if api.Faculties[0].Title != "" {
			record.Faculty = api.Faculties[0].Title
		}
		record.FacultyLink = api.Faculties[0].Link
	}

	if props.Supervisor != nil {
		record.Manager.Name = fullName(*props.Supervisor)
	}

	for _, member := range props.Team {
		entry := domain.TeamMember{
			Name:   fullName(member),
			Degree: member.Degree,
		}
		if len(member.Positions) > 0 {
			entry.Position = member.Positions[0].PositionName
		}
		record.Team = append(record.Team, entry)
	}

	for _, logo := range narrative.CareersImages {
		record.Partners = append(record.Partners, lastPathSegment(logo))
	}

	for _, item := range props.Admission.Items {
		record.AdmissionMethods = append(record.AdmissionMethods, item.Title)
	}

	record.ExamDates = append(record.ExamDates, props.ExamDates...)

	for _, clip := range narrative.About.Video {
		record.VideoLinks = append(record.VideoLinks, clip.Content)
	}

	for _, similar := range props.SimilarPrograms {
		record.SimilarPrograms = append(record.SimilarPrograms, domain.SimilarProgram{
			Title:                similar.Title,
			Year:                 similar.Year,
			DirectionOfEducation: similar.DirectionOfEducation,
			Slug:                 similar.Slug,
		})
	}

	return record, nil
}

// fullName joins first/middle/last name parts with single spaces,
// skipping empty parts.
func fullName(p person) string {
	parts := make([]string, 0, 3)
	for _, part := range []string{p.FirstName, p.MiddleName, p.LastName} {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return strings.Join(parts, " ")
}

func lastPathSegment(rawURL string) string {
	if idx := strings.LastIndex(rawURL, "/"); idx != -1 {
		return rawURL[idx+1:]
	}
	return rawURL
}
