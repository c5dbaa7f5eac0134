// Package skills extracts categorized skill tags from raw job description text.
//
// Extraction is a pure keyword match against fixed category tables: the same
// JD text always produces the same tags, which downstream scoring relies on.
package skills

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/jonathan/placement-readiness/internal/types"
)

// GeneralFresherSkill is the literal tag recorded when no keyword matches.
const GeneralFresherSkill = "General fresher stack"

//go:embed categories.yaml
var categoriesYAML []byte

// Category is one declared skill category with its ordered keyword list.
type Category struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

type categoryFile struct {
	Categories []Category `yaml:"categories"`
}

// categories is the fixed table loaded from the embedded YAML. Order is
// declaration order.
var categories = mustLoadCategories()

func mustLoadCategories() []Category {
	var f categoryFile
	if err := yaml.Unmarshal(categoriesYAML, &f); err != nil {
		panic(fmt.Sprintf("skills: invalid embedded category table: %v", err))
	}
	if len(f.Categories) == 0 {
		panic("skills: embedded category table is empty")
	}
	return f.Categories
}

// Categories returns a copy of the declared category table.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Extraction is the raw extractor output, keyed by display category names.
// It is converted to the canonical 7-key form at the schema boundary.
type Extraction struct {
	ByCategory       map[string][]string `json:"byCategory"`
	CategoryNames    []string            `json:"categoryNames"`
	IsGeneralFresher bool                `json:"isGeneralFresher"`
}

// Has reports whether the category matched at least one keyword.
func (e *Extraction) Has(category string) bool {
	if e == nil {
		return false
	}
	return len(e.ByCategory[category]) > 0
}

// Tags returns the matched skills for a category (nil when none).
func (e *Extraction) Tags(category string) []string {
	if e == nil {
		return nil
	}
	return e.ByCategory[category]
}

// bareC matches the C language keyword as a whole word only.
var bareC = regexp.MustCompile(`\bc\b`)

// matchKeyword tests one keyword against lower-cased JD text. The single
// keyword "C" is special-cased: whole-word match only, and suppressed
// entirely when the text mentions C++ or C# anywhere.
func matchKeyword(textLower, keyword string) bool {
	kwLower := strings.ToLower(keyword)
	if kwLower == "c" {
		if strings.Contains(textLower, "c++") || strings.Contains(textLower, "c#") {
			return false
		}
		return bareC.MatchString(textLower)
	}
	return strings.Contains(textLower, kwLower)
}

// displayCase upper-cases the first rune of a keyword.
func displayCase(keyword string) string {
	if keyword == "" {
		return keyword
	}
	runes := []rune(keyword)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// ExtractSkills categorizes JD text into skill tags by keyword match.
// Matched keywords are display-cased and de-duplicated within a category,
// in keyword declaration order. A JD matching nothing yields the general
// fresher extraction: a single synthesized General category.
func ExtractSkills(jdText string) *Extraction {
	textLower := strings.ToLower(strings.TrimSpace(jdText))

	byCategory := make(map[string][]string)
	categoryNames := make([]string, 0, len(categories))

	for _, cat := range categories {
		var found []string
		for _, kw := range cat.Keywords {
			if !matchKeyword(textLower, kw) {
				continue
			}
			display := displayCase(kw)
			if !containsString(found, display) {
				found = append(found, display)
			}
		}
		if len(found) > 0 {
			byCategory[cat.Name] = found
			categoryNames = append(categoryNames, cat.Name)
		}
	}

	isGeneralFresher := len(categoryNames) == 0
	if isGeneralFresher {
		byCategory[types.CategoryGeneral] = []string{GeneralFresherSkill}
		categoryNames = append(categoryNames, types.CategoryGeneral)
	}

	return &Extraction{
		ByCategory:       byCategory,
		CategoryNames:    categoryNames,
		IsGeneralFresher: isGeneralFresher,
	}
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
