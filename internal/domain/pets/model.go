package pets

import model "pawsitive/internal/domain/pets/model"

// Los tipos del modelo viven en el subpaquete model para que petapi y
// search puedan importarlos sin ciclo; acá quedan alias idénticos.

type Species = model.Species

const (
	SpeciesDog    = model.SpeciesDog
	SpeciesCat    = model.SpeciesCat
	SpeciesBird   = model.SpeciesBird
	SpeciesRabbit = model.SpeciesRabbit
	SpeciesOther  = model.SpeciesOther
)

type Gender = model.Gender

const (
	GenderMale    = model.GenderMale
	GenderFemale  = model.GenderFemale
	GenderUnknown = model.GenderUnknown
)

type Size = model.Size

const (
	SizeSmall  = model.SizeSmall
	SizeMedium = model.SizeMedium
	SizeLarge  = model.SizeLarge
)

type AdoptionStatus = model.AdoptionStatus

const (
	StatusAvailable = model.StatusAvailable
	StatusPending   = model.StatusPending
	StatusAdopted   = model.StatusAdopted
)

type Image = model.Image

type Pet = model.Pet
