package parsing

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/skill-intel/internal/types"
)

// skillNormalizations maps common skill name variants to canonical names
var skillNormalizations = map[string]string{
	"golang":                      "Go",
	"go lang":                     "Go",
	"javascript":                  "JavaScript",
	"js":                          "JavaScript",
	"typescript":                  "TypeScript",
	"ts":                          "TypeScript",
	"k8s":                         "Kubernetes",
	"kubernetes":                  "Kubernetes",
	"react.js":                    "React",
	"reactjs":                     "React",
	"vue.js":                      "Vue",
	"vuejs":                       "Vue",
	"node.js":                     "Node.js",
	"nodejs":                      "Node.js",
	"postgres":                    "PostgreSQL",
	"postgresql":                  "PostgreSQL",
	"mysql":                       "MySQL",
	"mongodb":                     "MongoDB",
	"ml":                          "Machine Learning",
	"machine learning":            "Machine Learning",
	"dl":                          "Deep Learning",
	"natural language processing": "Natural Language Processing",
	"tensorflow":                  "TensorFlow",
	"pytorch":                     "PyTorch",
	"numpy":                       "NumPy",
	"fastapi":                     "FastAPI",
	"github":                      "GitHub",
	"ci/cd":                       "CI/CD",
	"cicd":                        "CI/CD",
	"mlops":                       "MLOps",
	"devops":                      "DevOps",
	"power bi":                    "Power BI",
	"c++":                         "C++",
	"c#":                          "C#",
}

// maxAcronymLen bounds all-caps words kept verbatim (SQL, AWS, HTML)
const maxAcronymLen = 5

// NormalizeSkillName normalizes a skill name to its canonical form
func NormalizeSkillName(skillName string) string {
	// Trim and collapse internal whitespace
	normalized := strings.Join(strings.Fields(skillName), " ")
	if normalized == "" {
		return ""
	}

	// Check for exact match in normalization map (case-insensitive)
	lower := strings.ToLower(normalized)
	if canonical, ok := skillNormalizations[lower]; ok {
		return canonical
	}

	singleWord := !strings.Contains(normalized, " ")

	// All uppercase: short single words are acronyms, longer ones are shouted names
	if normalized == strings.ToUpper(normalized) && normalized != lower {
		if singleWord && utf8.RuneCountInString(normalized) > maxAcronymLen {
			return capitalize(lower)
		}
		return normalized
	}

	// Mixed case is taken as deliberate
	if normalized != lower {
		return normalized
	}

	// All lowercase single word: capitalize first letter
	if singleWord {
		return capitalize(normalized)
	}

	return normalized
}

// capitalize upper-cases the first rune of s
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// NormalizeSkills normalizes skill names and removes case-insensitive
// duplicates, keeping first-occurrence order.
func NormalizeSkills(names []string) []string {
	normalized := make([]string, 0, len(names))
	for _, n := range names {
		if s := NormalizeSkillName(n); s != "" {
			normalized = append(normalized, s)
		}
	}
	return types.DedupeSkills(normalized)
}
