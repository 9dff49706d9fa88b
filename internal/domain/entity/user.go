package entity

// Sex valores válidos para User.Sex (solo se usan como pista de estilo en la vista).
type Sex string

const (
	SexMale   Sex = "m"
	SexFemale Sex = "f"
)

// Valid indica si el valor pertenece a la enumeración.
func (s Sex) Valid() bool {
	return s == SexMale || s == SexFemale
}

// User representa a la persona dueña de una o más categorías.
type User struct {
	ID   int
	Name string
	Sex  Sex
}
