package extractor

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

const sampleIsland = `{"props":{"pageProps":{` +
	`"apiProgram":{"title":"Искусственный интеллект","slug":"ai",` +
	`"educationCost":{"russian":599000,"foreigner":650000},` +
	`"study":{"label":"2 года"},"language":"русский",` +
	`"academic_plan":"https://api.itmo.su/plans/ai.pdf",` +
	`"direction_of_education":"Компьютерные науки","direction_code":"01.04.02",` +
	`"faculties":[{"title":"Факультет ИКТ","link":"https://itmo.ru/fikt"},{"title":"Второй","link":""}]},` +
	`"jsonProgram":{"about":{"lead":"Программа про ИИ","desc":"Подробное описание",` +
	`"video":[{"content":"https://video.itmo.ru/1"}]},` +
	`"career":{"lead":"ML Engineer и Data Engineer"},` +
	`"careersImages":["https://cdn.itmo.ru/logos/sber.png","https://cdn.itmo.ru/logos/yandex.svg"],` +
	`"social":{"vk":"https://vk.com/ai_itmo"}},` +
	`"examDates":["2025-07-10T10:00:00","2025-07-20T10:00:00"],` +
	`"team":[{"firstName":"Дмитрий","middleName":"","lastName":"Иванов","degree":"PhD",` +
	`"positions":[{"position_name":"Доцент"},{"position_name":"Научный сотрудник"}]}],` +
	`"supervisor":{"firstName":"Анна","middleName":"Сергеевна","lastName":"Петрова"},` +
	`"admission":{"items":[{"title":"Вступительный экзамен"},{"title":"Портфолио"}]},` +
	`"similarPrograms":[{"title":"Big Data","year":2025,"direction_of_education":"КН","slug":"big_data"}],` +
	`"__N_SSG":true}}}`

func pageWithIsland(island string) []byte {
	return []byte(`<!DOCTYPE html><html><head><title>AI</title></head><body>
	<div id="root">content</div>
	<script id="__NEXT_DATA__" type="application/json">` + island + `</script>
	</body></html>`)
}

func TestExtractFromIdentifiedScript(t *testing.T) {
	t.Parallel()

	record, err := New().Extract(pageWithIsland(sampleIsland), "https://abit.itmo.ru/program/master/ai")
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}

	if record.Title != "Искусственный интеллект" {
		t.Fatalf("unexpected title: %s", record.Title)
	}
	if record.Slug != "ai" {
		t.Fatalf("unexpected slug: %s", record.Slug)
	}
	if record.About.Lead != "Программа про ИИ" || record.Career.Text != "ML Engineer и Data Engineer" {
		t.Fatalf("unexpected narrative fields: %+v", record.About)
	}
	if record.EducationCost["russian"] != 599000 {
		t.Fatalf("unexpected cost: %v", record.EducationCost)
	}
	if record.Faculty != "Факультет ИКТ" || record.FacultyLink != "https://itmo.ru/fikt" {
		t.Fatalf("expected first faculty, got %s", record.Faculty)
	}
	if record.Manager.Name != "Анна Сергеевна Петрова" {
		t.Fatalf("unexpected manager name: %q", record.Manager.Name)
	}
	if len(record.Team) != 1 || record.Team[0].Name != "Дмитрий Иванов" || record.Team[0].Position != "Доцент" {
		t.Fatalf("unexpected team: %+v", record.Team)
	}
	if !reflect.DeepEqual(record.Partners, []string{"sber.png", "yandex.svg"}) {
		t.Fatalf("unexpected partners: %v", record.Partners)
	}
	if len(record.Scholarships) != 6 {
		t.Fatalf("expected static scholarship catalog, got %d entries", len(record.Scholarships))
	}
	if !reflect.DeepEqual(record.AdmissionMethods, []string{"Вступительный экзамен", "Портфолио"}) {
		t.Fatalf("unexpected admission methods: %v", record.AdmissionMethods)
	}
	if !reflect.DeepEqual(record.ExamDates, []string{"2025-07-10T10:00:00", "2025-07-20T10:00:00"}) {
		t.Fatalf("unexpected exam dates: %v", record.ExamDates)
	}
	if !reflect.DeepEqual(record.VideoLinks, []string{"https://video.itmo.ru/1"}) {
		t.Fatalf("unexpected video links: %v", record.VideoLinks)
	}
	if len(record.SimilarPrograms) != 1 || record.SimilarPrograms[0].Slug != "big_data" || record.SimilarPrograms[0].Year != 2025 {
		t.Fatalf("unexpected similar programs: %+v", record.SimilarPrograms)
	}
	if record.SourceURL != "https://abit.itmo.ru/program/master/ai" {
		t.Fatalf("unexpected source url: %s", record.SourceURL)
	}
}

func TestExtractFallbackScan(t *testing.T) {
	t.Parallel()

	page := []byte(`<html><body>
	<script type="application/json">{"unrelated":true}</script>
	<script type="application/json">` + sampleIsland + `</script>
	</body></html>`)

	record, err := New().Extract(page, "https://abit.itmo.ru/program/master/ai")
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if record.Slug != "ai" {
		t.Fatalf("unexpected slug: %s", record.Slug)
	}
}

func TestExtractCommentWrapped(t *testing.T) {
	t.Parallel()

	record, err := New().Extract(pageWithIsland("<!--"+sampleIsland+"-->"), "u")
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if record.Title != "Искусственный интеллект" {
		t.Fatalf("unexpected title: %s", record.Title)
	}
}

func TestExtractSalvagesMalformedIsland(t *testing.T) {
	t.Parallel()

	record, err := New().Extract(pageWithIsland("window.bootstrap();"+sampleIsland), "u")
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}
	if record.Slug != "ai" {
		t.Fatalf("unexpected slug: %s", record.Slug)
	}
}

func TestExtractNoIsland(t *testing.T) {
	t.Parallel()

	_, err := New().Extract([]byte("<html><body><p>plain page</p></body></html>"), "u")
	if !errors.Is(err, ErrNoDataIsland) {
		t.Fatalf("expected ErrNoDataIsland, got %v", err)
	}
}

func TestExtractUnsalvageablePayload(t *testing.T) {
	t.Parallel()

	page := []byte(`<html><script type="application/json">"props" __N_SSG broken</script></html>`)
	_, err := New().Extract(page, "u")
	if !errors.Is(err, ErrBadPayload) {
		t.Fatalf("expected ErrBadPayload, got %v", err)
	}
}

func TestExtractStructuralMismatch(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"no pageProps":  `{"props":{},"__N_SSG":true}`,
		"no apiProgram": `{"props":{"pageProps":{"jsonProgram":{}}},"__N_SSG":true}`,
		"empty slug":    `{"props":{"pageProps":{"apiProgram":{"title":"X","slug":""},"jsonProgram":{}}},"__N_SSG":true}`,
	}

	for name, island := range cases {
		_, err := New().Extract(pageWithIsland(island), "u")
		if !errors.Is(err, ErrStructure) {
			t.Fatalf("%s: expected ErrStructure, got %v", name, err)
		}
	}
}

func TestExtractIdempotent(t *testing.T) {
	t.Parallel()

	page := pageWithIsland(sampleIsland)
	e := New()

	first, err := e.Extract(page, "u")
	if err != nil {
		t.Fatalf("first extract: %v", err)
	}
	second, err := e.Extract(page, "u")
	if err != nil {
		t.Fatalf("second extract: %v", err)
	}

	firstJSON, _ := json.Marshal(first)
	secondJSON, _ := json.Marshal(second)
	if string(firstJSON) != string(secondJSON) {
		t.Fatalf("extraction is not idempotent:\n%s\n%s", firstJSON, secondJSON)
	}
}

func TestExtractDefaults(t *testing.T) {
	t.Parallel()

	island := `{"props":{"pageProps":{"apiProgram":{"slug":"ai"},"jsonProgram":{}}},"__N_SSG":true}`
	record, err := New().Extract(pageWithIsland(island), "u")
	if err != nil {
		t.Fatalf("Extract returned error: %v", err)
	}

	if record.Title != "Неизвестно" {
		t.Fatalf("expected title sentinel, got %q", record.Title)
	}
	if record.Faculty != "Неизвестно" {
		t.Fatalf("expected faculty sentinel, got %q", record.Faculty)
	}
	if record.Manager.Name != "" {
		t.Fatalf("expected empty manager, got %q", record.Manager.Name)
	}
	if record.Team == nil || record.Partners == nil || record.ExamDates == nil {
		t.Fatalf("expected empty, non-nil collections: %+v", record)
	}
	if len(record.Scholarships) != 6 {
		t.Fatalf("scholarship catalog must always be attached")
	}
}
