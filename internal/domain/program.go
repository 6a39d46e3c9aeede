package domain

// Slugs of the two tracked master's programs.
const (
	SlugAI        = "ai"
	SlugAIProduct = "ai_product"
)

// RecordKey derives the storage lookup key from a program slug.
// The key doubles as the record file base name on disk.
func RecordKey(slug string) string {
	return "itmo_" + slug + "_parsed"
}

// ProgramRecord is the normalized public profile of one master's program.
// It is produced by the extractor from a single source URL and never
// mutated afterwards; a re-scrape replaces the record wholesale.
type ProgramRecord struct {
	Title                string            `json:"title"`
	Slug                 string            `json:"slug"`
	About                About             `json:"about"`
	Career               Career            `json:"career"`
	EducationCost        map[string]int64  `json:"education_cost"`
	StudyPeriod          string            `json:"study_period"`
	Language             string            `json:"language"`
	AcademicPlanURL      string            `json:"academic_plan_url"`
	DirectionOfEducation string            `json:"direction_of_education"`
	DirectionCode        string            `json:"direction_code"`
	Faculty              string            `json:"faculty"`
	FacultyLink          string            `json:"faculty_link"`
	Manager              Manager           `json:"manager"`
	Team                 []TeamMember      `json:"team"`
	Partners             []string          `json:"partners"`
	Scholarships         []Scholarship     `json:"scholarships"`
	AdmissionMethods     []string          `json:"admission_methods"`
	ExamDates            []string          `json:"exam_dates"`
	SocialLinks          map[string]string `json:"social_links"`
	VideoLinks           []string          `json:"video_links"`
	SimilarPrograms      []SimilarProgram  `json:"similar_programs"`
	SourceURL            string            `json:"source_url"`
}

// About holds the marketing summary of a program.
type About struct {
	Lead string `json:"lead"`
	Desc string `json:"desc"`
}

// Career holds the career-outcomes blurb.
type Career struct {
	Text string `json:"text"`
}

// Manager is the program supervisor contact.
type Manager struct {
	Name string `json:"name"`
}

// TeamMember is one teaching-staff entry.
type TeamMember struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Degree   string `json:"degree"`
}

// Scholarship is one entry of the static scholarship catalog.
type Scholarship struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// SimilarProgram is a short reference to a related program.
type SimilarProgram struct {
	Title                string `json:"title"`
	Year                 int    `json:"year"`
	DirectionOfEducation string `json:"direction_of_education"`
	Slug                 string `json:"slug"`
}
