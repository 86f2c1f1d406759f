package search

import (
	"fmt"
	"sort"
	"strings"

	pets "pawsitive/internal/domain/pets/model"
)

const (
	exactPhraseBonus = 100.0
	termMatchBonus   = 50.0
	fuzzyCredit      = 30.0
	fuzzyThreshold   = 0.7
)

// Result es el triple (pet, score, campos que matchearon).
// Efímero: se calcula por query y no se persiste.
type Result struct {
	Pet           pets.Pet `json:"pet"`
	Score         float64  `json:"score"`
	MatchedFields []string `json:"matchedFields"`
}

// Engine rankea mascotas contra una query libre.
// Sin estado entre llamadas; determinístico para (query, candidatos) iguales.
type Engine struct {
	synonyms map[string][]string
	weights  map[string]float64
}

func NewEngine() *Engine {
	return &Engine{
		synonyms: defaultSynonyms,
		weights:  defaultFieldWeights,
	}
}

// Rank devuelve los candidatos ordenados por score descendente.
// El bool indica si hubo búsqueda activa: query vacía/whitespace => false,
// y se devuelve el set completo en el orden de entrada con score 0.
// Empates conservan el orden de entrada (ranking advisory, no crítico).
func (e *Engine) Rank(query string, candidates []pets.Pet) ([]Result, bool) {
	normalized := strings.ToLower(strings.TrimSpace(query))

	if normalized == "" {
		out := make([]Result, 0, len(candidates))
		for _, p := range candidates {
			out = append(out, Result{Pet: p, Score: 0, MatchedFields: []string{}})
		}
		return out, false
	}

	terms := e.expandTerms(strings.Fields(normalized))

	out := make([]Result, 0, len(candidates))
	for _, p := range candidates {
		r := e.score(normalized, terms, p)
		if r.Score <= 0 {
			continue
		}
		out = append(out, r)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	return out, true
}

// expandTerms arma el set expandido: las palabras originales más,
// para cada palabra que sea clave o variante de la tabla, la clave
// canónica y todas sus variantes.
func (e *Engine) expandTerms(words []string) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(words))

	add := func(t string) {
		if _, ok := seen[t]; ok {
			return
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}

	for _, w := range words {
		add(w)

		if variants, ok := e.synonyms[w]; ok {
			add(w)
			for _, v := range variants {
				add(v)
			}
			continue
		}

		for canonical, variants := range e.synonyms {
			for _, v := range variants {
				if v == w {
					add(canonical)
					for _, vv := range variants {
						add(vv)
					}
				}
			}
		}
	}

	// Orden estable del set (los maps de Go no lo garantizan y el
	// scoring debe ser determinístico).
	sort.Strings(out)
	return out
}

func (e *Engine) score(normalizedQuery string, terms []string, p pets.Pet) Result {
	fields := searchableFields(p)

	total := 0.0
	matched := make([]string, 0, len(fields))

	// Orden fijo de campos para que MatchedFields sea estable.
	for _, name := range fieldOrder {
		text := fields[name]
		raw := scoreField(text, normalizedQuery, terms)
		if raw <= 0 {
			continue
		}
		matched = append(matched, name)
		total += raw * e.weights[name]
	}

	return Result{Pet: p, Score: total, MatchedFields: matched}
}

var fieldOrder = []string{"name", "breed", "description", "color", "size", "age"}

func searchableFields(p pets.Pet) map[string]string {
	return map[string]string{
		"name":        strings.ToLower(p.Name),
		"breed":       strings.ToLower(p.Breed),
		"description": strings.ToLower(p.Description),
		"color":       strings.ToLower(p.Color),
		"size":        strings.ToLower(string(p.Size)),
		// campo sintético: "3 years old" matchea queries tipo "2 years"
		"age": fmt.Sprintf("%d years old", p.Age),
	}
}

// scoreField calcula el score crudo (pre-peso) de un campo:
// - +100 si el campo contiene la query original como frase exacta
// - +50 por cada término expandido que aparezca como substring
// - si no, crédito fuzzy por palabra: similaridad Levenshtein
//   normalizada > 0.7 suma similaridad*30 (tolera typos tipo "frendly")
func scoreField(text, normalizedQuery string, terms []string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}

	score := 0.0

	if strings.Contains(text, normalizedQuery) {
		score += exactPhraseBonus
	}

	var words []string // tokenizado lazy, solo si hace falta fuzzy

	for _, term := range terms {
		if strings.Contains(text, term) {
			score += termMatchBonus
			continue
		}

		if words == nil {
			words = strings.Fields(text)
		}
		for _, w := range words {
			sim := similarity(term, w)
			if sim > fuzzyThreshold {
				score += sim * fuzzyCredit
			}
		}
	}

	return score
}

// similarity = 1 - levenshtein(a,b) / max(len(a), len(b)).
func similarity(a, b string) float64 {
	if a == "" && b == "" {
		return 1
	}
	la, lb := len([]rune(a)), len([]rune(b))
	max := la
	if lb > max {
		max = lb
	}
	if max == 0 {
		return 1
	}
	return 1 - float64(levenshtein(a, b))/float64(max)
}

// levenshtein clásico con dos filas. Palabras cortas y <=100 candidatos:
// el costo cuadrático no importa acá.
func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)

	for j := 0; j <= len(rb); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost

			m := del
			if ins < m {
				m = ins
			}
			if sub < m {
				m = sub
			}
			curr[j] = m
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}
