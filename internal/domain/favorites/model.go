package favorites

import "time"

// Favorite marca una mascota como favorita de un usuario.
// Invariante: a lo sumo una entrada por (user, pet); el alta es idempotente.
// Nunca se sincroniza con la API remota.
type Favorite struct {
	ID        string
	UserID    string
	PetID     string
	DateAdded time.Time
}
