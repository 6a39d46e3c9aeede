package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"ProgramAdvisor/internal/domain"
)

// Reply-keyboard button texts; pressing a button arrives as a plain
// message with exactly this text.
const (
	buttonCompare   = "Сравнить программы"
	buttonRecommend = "Порекомендовать программу"
)

const (
	welcomeText = "Привет! Я — бот-помощник по магистратуре ИТМО.\n" +
		"Я помогу тебе выбрать между программами:\n\n" +
		"🔹 *Искусственный интеллект*\n" +
		"🔹 *Управление ИИ-продуктами*\n\n" +
		"Используй /help, чтобы начать подбор.\n" +
		"Или задай вопрос напрямую, например:\n" +
		"«Чем отличаются программы?»"

	helpText = "Выбери, что тебя интересует:"

	questionBackground = "Какой у вас образовательный бэкграунд? (например: программирование, менеджмент)"
	questionOneAnswer  = "Напишите один ответ."
	questionInterest   = "Что вас больше интересует: разработка моделей или управление продуктами?"
	questionStartup    = "Хотите ли вы запускать стартап или работать в компании?"

	tieText = "Обе программы вам подходят! Используйте /compare."

	offTopicText       = "Я отвечаю только о магистерских программах ИТМО по AI и AI Product."
	clarifyText        = "Напиши чуть подробнее свой вопрос."
	whichProgramText   = "О какой программе вы спрашиваете? Уточните: AI или AI Product?"
	useCompareText     = "Используйте /compare"
	useRecommendText   = "Используйте /recommend"
	dataMissingText    = "Данные о программах сейчас недоступны. Попробуйте позже."
	missingPlaceholder = "—"
)

var recommendReasons = map[string]string{
	domain.SlugAI:        "Ваш бэкграунд и интересы ближе к технической разработке.",
	domain.SlugAIProduct: "Вы склонны к управлению и коммерциализации.",
}

// courseCatalog is the static course-suggestion list per program slug.
var courseCatalog = map[string][]string{
	domain.SlugAI: {
		"Глубокое обучение",
		"ML в продакшене",
		"Обработка естественного языка",
		"Computer Vision",
		"Data Engineering",
	},
	domain.SlugAIProduct: {
		"Управление AI-продуктами",
		"UX для ИИ",
		"Монетизация технологий",
		"AI Project Management",
	},
}

func renderCompare(ai, aiProduct domain.ProgramRecord) string {
	return "📊 *Сравнение программ*\n\n" +
		fmt.Sprintf("🎯 *Название:* %s\n", orPlaceholder(ai.Title)) +
		"📘 *Фокус:* Техническая разработка ИИ (ML, Data Engineering)\n" +
		fmt.Sprintf("💰 *Стоимость:* %s ₽/год\n", renderCost(ai)) +
		"👥 *Карьера:* ML Engineer, Data Analyst, AI Developer\n\n" +
		fmt.Sprintf("🎯 *Название:* %s\n", orPlaceholder(aiProduct.Title)) +
		"📘 *Фокус:* Управление и коммерциализация ИИ-продуктов\n" +
		fmt.Sprintf("💰 *Стоимость:* %s ₽/год\n", renderCost(aiProduct)) +
		"👥 *Карьера:* AI Product Manager, Product Lead, AI Analyst\n\n" +
		"Используй /recommend, чтобы получить персональную рекомендацию."
}

func renderRecommendation(record domain.ProgramRecord) string {
	return fmt.Sprintf("*Рекомендуем:* %s\n\n💡 *Причина:* %s",
		record.Title, recommendReasons[record.Slug])
}

func renderCourses(slug string) string {
	courses := courseCatalog[slug]
	lines := make([]string, 0, len(courses))
	for _, course := range courses {
		lines = append(lines, "- "+course)
	}
	return "*Рекомендуемые курсы:*\n" + strings.Join(lines, "\n")
}

func renderTeam(record domain.ProgramRecord) string {
	members := record.Team
	if len(members) > 5 {
		members = members[:5]
	}
	lines := make([]string, 0, len(members))
	for _, member := range members {
		lines = append(lines, fmt.Sprintf("• %s — %s", member.Name, member.Position))
	}
	return fmt.Sprintf("*Команда программы:* %s\n\n%s", record.Title, strings.Join(lines, "\n"))
}

func renderManager(record domain.ProgramRecord) string {
	return fmt.Sprintf("*Менеджер:* %s", orPlaceholder(record.Manager.Name))
}

func renderExamDates(record domain.ProgramRecord) string {
	dates := record.ExamDates
	if len(dates) > 3 {
		dates = dates[:3]
	}
	days := make([]string, 0, len(dates))
	for _, date := range dates {
		day, _, _ := strings.Cut(date, "T")
		days = append(days, day)
	}
	return fmt.Sprintf("*Даты экзаменов:* %s", strings.Join(days, ", "))
}

func renderOverview(record domain.ProgramRecord) string {
	return fmt.Sprintf("*%s*\n\n%s\n\n*Карьера:* %s\n*Стоимость:* %s ₽/год\n*Учебный план:* [Скачать PDF](%s)",
		record.Title,
		record.About.Lead,
		record.Career.Text,
		renderCost(record),
		record.AcademicPlanURL)
}

func renderCost(record domain.ProgramRecord) string {
	if amount, ok := record.EducationCost["russian"]; ok {
		return strconv.FormatInt(amount, 10)
	}
	return missingPlaceholder
}

func orPlaceholder(value string) string {
	if value == "" {
		return missingPlaceholder
	}
	return value
}
