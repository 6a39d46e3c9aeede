package extractor

// Wire shapes of the Next.js hydration payload. Only the fields the
// normalization step reads are declared; everything else is ignored.

type nextData struct {
	Props *propsNode `json:"props"`
}

type propsNode struct {
	PageProps *pageProps `json:"pageProps"`
}

// pageProps carries two complementary program objects: apiProgram with
// identity and commercial fields, jsonProgram with narrative and media
// fields, plus exam dates and the teaching team at the top level.
type pageProps struct {
	APIProgram      *apiProgram      `json:"apiProgram"`
	JSONProgram     *jsonProgram     `json:"jsonProgram"`
	ExamDates       []string         `json:"examDates"`
	Team            []person         `json:"team"`
	Supervisor      *person          `json:"supervisor"`
	Admission       admission        `json:"admission"`
	SimilarPrograms []similarProgram `json:"similarPrograms"`
}

type apiProgram struct {
	Title                string           `json:"title"`
	Slug                 string           `json:"slug"`
	EducationCost        map[string]int64 `json:"educationCost"`
	Study                study            `json:"study"`
	Language             string           `json:"language"`
	AcademicPlan         string           `json:"academic_plan"`
	DirectionOfEducation string           `json:"direction_of_education"`
	DirectionCode        string           `json:"direction_code"`
	Faculties            []faculty        `json:"faculties"`
}

type study struct {
	Label string `json:"label"`
}

type faculty struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

type jsonProgram struct {
	About         aboutNode         `json:"about"`
	Career        careerNode        `json:"career"`
	CareersImages []string          `json:"careersImages"`
	Social        map[string]string `json:"social"`
}

type aboutNode struct {
	Lead  string  `json:"lead"`
	Desc  string  `json:"desc"`
	Video []video `json:"video"`
}

type video struct {
	Content string `json:"content"`
}

type careerNode struct {
	Lead string `json:"lead"`
}

type person struct {
	FirstName  string     `json:"firstName"`
	MiddleName string     `json:"middleName"`
	LastName   string     `json:"lastName"`
	Degree     string     `json:"degree"`
	Positions  []position `json:"positions"`
}

type position struct {
	PositionName string `json:"position_name"`
}

type admission struct {
	Items []admissionItem `json:"items"`
}

type admissionItem struct {
	Title string `json:"title"`
}

type similarProgram struct {
	Title                string `json:"title"`
	Year                 int    `json:"year"`
	DirectionOfEducation string `json:"direction_of_education"`
	Slug                 string `json:"slug"`
}
