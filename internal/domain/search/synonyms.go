package search

// Tabla estática de sinónimos: término canónico -> variantes.
// La expansión es simétrica: buscar "puppy" expande a "dog" y al resto
// de variantes, igual que buscar "dog".
// Es data, no lógica: se puede ampliar sin tocar el scoring.
var defaultSynonyms = map[string][]string{
	"dog":      {"puppy", "canine", "pup", "doggy", "hound"},
	"cat":      {"kitten", "kitty", "feline"},
	"bird":     {"parrot", "parakeet", "avian"},
	"rabbit":   {"bunny", "hare"},
	"friendly": {"social", "outgoing", "loving", "affectionate"},
	"calm":     {"quiet", "gentle", "relaxed", "mellow"},
	"playful":  {"energetic", "active", "lively", "fun"},
	"small":    {"tiny", "little", "mini"},
	"large":    {"big", "huge", "giant"},
	"young":    {"baby", "junior"},
	"old":      {"senior", "elderly"},
	"smart":    {"intelligent", "clever", "trainable"},
}

// Pesos por campo: un match en el nombre vale mucho más que uno
// enterrado en la descripción.
var defaultFieldWeights = map[string]float64{
	"name":        10,
	"breed":       8,
	"description": 3,
	"color":       2,
	"size":        2,
	"age":         2,
}
