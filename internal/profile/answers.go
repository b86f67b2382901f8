package profile

import (
	"regexp"
	"strconv"
	"strings"
)

// ExpectedFields are the answers a complete health profile must carry.
var ExpectedFields = []string{"age", "smoker", "exercise", "diet"}

var (
	keyValuePattern = regexp.MustCompile(`^([A-Za-z]+)\s*:(.*)$`)
	digitsPattern   = regexp.MustCompile(`\d+`)
)

// ParseAnswers heuristically converts recognized text lines into a
// structured profile. It handles both "Key: Value" on one line and the
// OCR-split form where "Key:" and the value land on consecutive lines.
// Age is coerced to an int and smoker to a bool when possible; values
// that resist coercion are kept as the raw string.
func ParseAnswers(lines []string) map[string]any {
	answers := make(map[string]any)
	for i := 0; i < len(lines); i++ {
		m := keyValuePattern.FindStringSubmatch(strings.TrimSpace(lines[i]))
		if m == nil {
			continue
		}
		key := strings.ToLower(strings.TrimSpace(m[1]))
		value := strings.TrimSpace(m[2])

		if value == "" && i+1 < len(lines) {
			next := strings.TrimSpace(lines[i+1])
			if !strings.Contains(next, ":") {
				value = next
				i++
			}
		}

		switch key {
		case "age":
			if digits := digitsPattern.FindString(value); digits != "" {
				if n, err := strconv.Atoi(digits); err == nil {
					answers[key] = n
					continue
				}
			}
			answers[key] = value
		case "smoker":
			switch strings.ToLower(value) {
			case "yes", "true", "y":
				answers[key] = true
			case "no", "false", "n":
				answers[key] = false
			default:
				answers[key] = value
			}
		default:
			answers[key] = value
		}
	}
	return answers
}

// MissingFields lists the expected profile fields absent from answers.
func MissingFields(answers map[string]any) []string {
	missing := make([]string, 0, len(ExpectedFields))
	for _, k := range ExpectedFields {
		if _, ok := answers[k]; !ok {
			missing = append(missing, k)
		}
	}
	return missing
}

// Incomplete reports whether more than half of the expected fields are
// missing, in which case the profile is not worth analyzing.
func Incomplete(answers map[string]any) bool {
	return len(MissingFields(answers))*2 > len(ExpectedFields)
}
