package model

import "time"

// Species define las especies soportadas en el marketplace.
type Species string

const (
	SpeciesDog    Species = "dog"
	SpeciesCat    Species = "cat"
	SpeciesBird   Species = "bird"
	SpeciesRabbit Species = "rabbit"
	SpeciesOther  Species = "other"
)

// Gender define el sexo de la mascota.
type Gender string

const (
	GenderMale    Gender = "male"
	GenderFemale  Gender = "female"
	GenderUnknown Gender = "unknown"
)

// Size define el tamaño.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// AdoptionStatus define el estado de adopción.
type AdoptionStatus string

const (
	StatusAvailable AdoptionStatus = "available"
	StatusPending   AdoptionStatus = "pending"
	StatusAdopted   AdoptionStatus = "adopted"
)

// Image es la foto opcional del perfil.
type Image struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// Pet representa el perfil de una mascota en adopción.
// La API remota es dueña del registro; acá solo viajan copias por request.
// El ID es estable y es la join key contra favoritos.
type Pet struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	Species Species `json:"species"`
	Breed   string  `json:"breed"`
	Age     int     `json:"age"` // años, >= 0
	Gender  Gender  `json:"gender"`
	Size    Size    `json:"size"`
	Color   string  `json:"color"`

	Description    string         `json:"description"`
	AdoptionStatus AdoptionStatus `json:"adoptionStatus"`
	Location       string         `json:"location"`

	Image *Image `json:"image,omitempty"`

	Owner string `json:"owner,omitempty"`

	Created time.Time `json:"created"`
	Updated time.Time `json:"updated"`
}
