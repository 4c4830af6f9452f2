// Package matching reconciles a model's free-text answer against canonical
// person records
package matching

import (
	"strings"

	"github.com/Ramsey-B/sage/pkg/models"
	"github.com/Ramsey-B/sage/pkg/normalizers"
)

// Match returns the persons whose normalized full name contains one of the
// answer's normalized lines as a substring. The model is instructed to
// answer with bare full names, one per line; substring containment against
// the whole name tolerates minor phrasing variance without token-level
// over-matching. Result order follows the input record order, not the order
// names appear in the answer.
//
// A line holding only a name part shared by several records (a common first
// name, say) matches every one of them; the answer text carries no identifier
// to disambiguate with.
func Match(persons []models.Person, answer string) []models.Person {
	matched := make([]models.Person, 0)

	candidates := candidateNames(answer)
	if len(candidates) == 0 {
		return matched
	}

	for _, person := range persons {
		fullName := normalizers.NormalizeName(person.FullName())
		for _, candidate := range candidates {
			if strings.Contains(fullName, candidate) {
				matched = append(matched, person)
				break
			}
		}
	}

	return matched
}

// candidateNames splits an answer into its non-empty lines, each normalized
// to lowercase with collapsed whitespace
func candidateNames(answer string) []string {
	if answer == "" {
		return nil
	}

	candidates := make([]string, 0)
	for _, line := range strings.Split(answer, "\n") {
		normalized := normalizers.ApplyChain(line, "lowercase", "collapse_whitespace")
		if normalized != "" {
			candidates = append(candidates, normalized)
		}
	}
	return candidates
}
