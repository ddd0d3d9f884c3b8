package models

// RoleType represents a user role
type RoleType string

const (
	RoleAdmin   RoleType = "admin"
	RoleStudent RoleType = "student"
)

// MartialArt is one of the disciplines taught by the school
type MartialArt string

const (
	ArtTaekwondo MartialArt = "taekwondo"
	ArtHapkido   MartialArt = "hapkido"
	ArtMuayThai  MartialArt = "muay-thai"
	// ArtAll is only valid on events and federation coverage, never on students
	ArtAll MartialArt = "all"
	// ArtGeneral marks a federation that covers every discipline
	ArtGeneral MartialArt = "general"
)

// StudentMartialArts are the disciplines a student can be enrolled in
var StudentMartialArts = []MartialArt{ArtTaekwondo, ArtHapkido, ArtMuayThai}

// IsStudentMartialArt reports whether art is a discipline a student can practice
func IsStudentMartialArt(art MartialArt) bool {
	for _, a := range StudentMartialArts {
		if a == art {
			return true
		}
	}
	return false
}

// Category is the age category of a student
type Category string

const (
	CategoryChild    Category = "child"
	CategoryJuvenile Category = "juvenile"
	CategoryCadet    Category = "cadet"
	CategoryAdult    Category = "adult"
)

// IsValidCategory reports whether c is a known age category
func IsValidCategory(c Category) bool {
	switch c {
	case CategoryChild, CategoryJuvenile, CategoryCadet, CategoryAdult:
		return true
	}
	return false
}

// BeltColor is an ordinal grade in the school's curriculum.
// Colors keep their original names since they are the vocabulary
// instructors and students actually use.
type BeltColor string

const (
	BeltBlanco    BeltColor = "blanco"
	BeltAmarillo  BeltColor = "amarillo"
	BeltNaranja   BeltColor = "naranja"
	BeltVerde     BeltColor = "verde"
	BeltAzul      BeltColor = "azul"
	BeltVioleta   BeltColor = "violeta"
	BeltMarron    BeltColor = "marron"
	BeltRojo      BeltColor = "rojo"
	BeltNegro1Dan BeltColor = "negro-1dan"
	BeltNegro2Dan BeltColor = "negro-2dan"
	BeltNegro3Dan BeltColor = "negro-3dan"
	BeltNegro4Dan BeltColor = "negro-4dan"
	BeltNegro5Dan BeltColor = "negro-5dan"
	BeltNegro6Dan BeltColor = "negro-6dan"
)

// BeltLadder lists every belt in grade order. Progression is monotonic by
// convention but promotion does not enforce it.
var BeltLadder = []BeltColor{
	BeltBlanco, BeltAmarillo, BeltNaranja, BeltVerde,
	BeltAzul, BeltVioleta, BeltMarron, BeltRojo,
	BeltNegro1Dan, BeltNegro2Dan, BeltNegro3Dan,
	BeltNegro4Dan, BeltNegro5Dan, BeltNegro6Dan,
}

// IsValidBelt reports whether b is part of the belt ladder
func IsValidBelt(b BeltColor) bool {
	for _, belt := range BeltLadder {
		if belt == b {
			return true
		}
	}
	return false
}

// EventType categorizes school events
type EventType string

const (
	EventCompetition EventType = "competition"
	EventExam        EventType = "exam"
	EventTraining    EventType = "training"
	EventGeneral     EventType = "general"
)

// IsValidEventType reports whether t is a known event type
func IsValidEventType(t EventType) bool {
	switch t {
	case EventCompetition, EventExam, EventTraining, EventGeneral:
		return true
	}
	return false
}

// FederationType classifies the scope of a sporting federation
type FederationType string

const (
	FederationNational      FederationType = "national"
	FederationRegional      FederationType = "regional"
	FederationInternational FederationType = "international"
	FederationLocal         FederationType = "local"
)

// LicenseType classifies a federation-issued license
type LicenseType string

const (
	LicenseCompetition LicenseType = "competition"
	LicenseInstructor  LicenseType = "instructor"
	LicenseReferee     LicenseType = "referee"
	LicenseGeneral     LicenseType = "general"
)

// PaymentMethod is how a monthly fee was settled
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)
