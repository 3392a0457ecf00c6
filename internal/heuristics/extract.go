package heuristics

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxExtractedSkills caps keyword extraction results
const MaxExtractedSkills = 20

// skillVocabulary is matched in order; result order follows it.
var skillVocabulary = []string{
	// Programming languages
	"Python", "JavaScript", "TypeScript", "Java", "C++", "C#", "Go", "Rust", "Ruby", "PHP",
	// AI/ML
	"Machine Learning", "Deep Learning", "TensorFlow", "PyTorch", "Keras", "NLP", "Computer Vision",
	"Natural Language Processing", "LLM", "Neural Networks", "AI", "Data Science",
	// Web
	"React", "Angular", "Vue", "Node.js", "Express", "Django", "Flask", "FastAPI", "REST API",
	"HTML", "CSS", "Bootstrap", "Tailwind",
	// Data
	"SQL", "PostgreSQL", "MySQL", "MongoDB", "Redis", "Pandas", "NumPy", "Data Analysis",
	"Data Visualization", "Tableau", "Power BI",
	// Cloud and DevOps
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "CI/CD", "DevOps", "Linux", "Git",
	// Soft skills
	"Communication", "Leadership", "Problem Solving", "Team Collaboration", "Project Management",
}

// Vocabulary returns a copy of the keyword list used by ExtractSkills.
func Vocabulary() []string {
	return head(skillVocabulary, len(skillVocabulary))
}

// ExtractSkills finds vocabulary skills mentioned in text, matching whole
// words case-insensitively, and returns at most MaxExtractedSkills of them
// in vocabulary order.
func ExtractSkills(text string) []string {
	lower := strings.ToLower(text)
	found := []string{}
	for _, skill := range skillVocabulary {
		if containsWord(lower, strings.ToLower(skill)) {
			found = append(found, skill)
			if len(found) == MaxExtractedSkills {
				break
			}
		}
	}
	return found
}

// containsWord reports whether needle occurs in haystack with no letter or
// digit directly before or after it.
func containsWord(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	for offset := 0; offset < len(haystack); {
		idx := strings.Index(haystack[offset:], needle)
		if idx < 0 {
			return false
		}
		start := offset + idx
		end := start + len(needle)
		if boundaryBefore(haystack, start) && boundaryAfter(haystack, end) {
			return true
		}
		_, size := utf8.DecodeRuneInString(haystack[start:])
		offset = start + size
	}
	return false
}

func boundaryBefore(s string, i int) bool {
	if i == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(s[:i])
	return !isWordRune(r)
}

func boundaryAfter(s string, i int) bool {
	if i >= len(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s[i:])
	return !isWordRune(r)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
