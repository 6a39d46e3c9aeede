package extractor

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"ProgramAdvisor/internal/domain"
)

// dataIslandID is the script element Next.js uses to embed the
// hydration payload into server-rendered pages.
const dataIslandID = "__NEXT_DATA__"

var (
	// ErrNoDataIsland means no embedded JSON payload was found at all.
	ErrNoDataIsland = errors.New("no data island found in document")
	// ErrBadPayload means a payload was found but is not parseable JSON,
	// even after the salvage pass.
	ErrBadPayload = errors.New("data island is not valid JSON")
	// ErrStructure means the payload parsed but the expected program
	// path is absent, i.e. the page layout changed.
	ErrStructure = errors.New("data island structure mismatch")
)

var (
	jsonScriptExpr = regexp.MustCompile(`(?s)<script[^>]*type\s*=\s*["']application/json["'][^>]*>(.*?)</script>`)
	commentExpr    = regexp.MustCompile(`(?s)^<!--(.*)-->$`)
)

// Extractor locates the embedded data island of a program page and
// normalizes it into a domain.ProgramRecord.
type Extractor struct{}

// New builds a stateless extractor.
func New() *Extractor {
	return &Extractor{}
}

// Extract parses one program page. It never returns a partially
// populated record: any failure surfaces as an error instead.
func (e *Extractor) Extract(page []byte, sourceURL string) (domain.ProgramRecord, error) {
	raw, err := findDataIsland(page)
	if err != nil {
		return domain.ProgramRecord{}, err
	}

	payload, err := decodePayload(raw)
	if err != nil {
		return domain.ProgramRecord{}, err
	}

	if payload.Props == nil || payload.Props.PageProps == nil {
		return domain.ProgramRecord{}, fmt.Errorf("%w: pageProps missing", ErrStructure)
	}

	props := payload.Props.PageProps
	if props.APIProgram == nil {
		return domain.ProgramRecord{}, fmt.Errorf("%w: apiProgram missing", ErrStructure)
	}
	if props.JSONProgram == nil {
		return domain.ProgramRecord{}, fmt.Errorf("%w: jsonProgram missing", ErrStructure)
	}

	return normalize(props, sourceURL)
}

// findDataIsland returns the raw JSON text of the page's data island.
// It prefers the well-known script id and falls back to scanning every
// JSON-typed script block for the hydration payload markers.
func findDataIsland(page []byte) (string, error) {
	if doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page)); err == nil {
		raw := doc.Find("script#" + dataIslandID).First().Text()
		if strings.TrimSpace(raw) != "" {
			return raw, nil
		}
	}

	for _, match := range jsonScriptExpr.FindAllSubmatch(page, -1) {
		candidate := string(match[1])
		if strings.Contains(candidate, `"props"`) && strings.Contains(candidate, "__N_SSG") {
			return candidate, nil
		}
	}

	return "", ErrNoDataIsland
}

// decodePayload parses the island text, stripping a comment wrapper if
// present and retrying once with a salvaged slice when strict parsing
// fails on a malformed fragment.
func decodePayload(raw string) (*nextData, error) {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "<!--") {
		raw = strings.TrimSpace(commentExpr.ReplaceAllString(raw, "$1"))
	}

	var payload nextData
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		salvaged, ok := salvage(raw)
		if !ok {
			return nil, fmt.Errorf("%w: %w", ErrBadPayload, err)
		}
		if retryErr := json.Unmarshal([]byte(salvaged), &payload); retryErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadPayload, err)
		}
	}

	return &payload, nil
}

// salvage slices the text between the first root-object opening
// signature and the last closing brace.
func salvage(raw string) (string, bool) {
	start := strings.Index(raw, `{"props":`)
	end := strings.LastIndex(raw, "}")
	if start == -1 || end <= start {
		return "", false
	}
	return raw[start : end+1], true
}
