package academic

import "github.com/volatiletech/null/v8"

// Filiere is an academic program/track, the root of the
// Filiere -> Niveau -> Classe -> Cours -> EmploiTemps hierarchy.
type Filiere struct {
	ID          int         `json:"id"`
	Nom         string      `json:"nom"`
	Code        string      `json:"code"`
	Description null.String `json:"description,omitempty"`
}

// NewFiliere is the create/update payload for a Filiere.
type NewFiliere struct {
	Nom         string `json:"nom" validate:"required"`
	Code        string `json:"code" validate:"required,alphanum"`
	Description string `json:"description,omitempty"`
}

// Niveau is an academic level within a program (e.g. year 1).
type Niveau struct {
	ID        int    `json:"id"`
	Nom       string `json:"nom"`
	FiliereID int    `json:"filiere_id"`
}

type NewNiveau struct {
	Nom       string `json:"nom" validate:"required"`
	FiliereID int    `json:"filiere_id" validate:"required,gt=0"`
}

// Classe is a concrete class section within a level.
type Classe struct {
	ID        int         `json:"id"`
	Nom       string      `json:"nom"`
	Code      string      `json:"code"`
	FiliereID int         `json:"filiere_id"`
	NiveauID  int         `json:"niveau_id"`
	Capacite  null.Int    `json:"capacite,omitempty"`
	Effectif  null.Int    `json:"effectif,omitempty"`
	Salle     null.String `json:"salle,omitempty"`
	Statut    null.String `json:"statut,omitempty"`
}

type NewClasse struct {
	Nom       string `json:"nom" validate:"required"`
	Code      string `json:"code" validate:"required"`
	FiliereID int    `json:"filiere_id" validate:"required,gt=0"`
	NiveauID  int    `json:"niveau_id" validate:"required,gt=0"`
	Capacite  int    `json:"capacite,omitempty" validate:"omitempty,gte=0"`
	Salle     string `json:"salle,omitempty"`
	Statut    string `json:"statut,omitempty"`
}

// Cours types
const (
	CoursTypeCM = "CM" // lecture
	CoursTypeTD = "TD" // tutorial
	CoursTypeTP = "TP" // lab
)

// Cours is a course definition, possibly taught across several classes.
type Cours struct {
	ID          int         `json:"id"`
	Nom         string      `json:"nom"`
	Code        string      `json:"code"`
	Credits     int         `json:"credits"`
	Coefficient float64     `json:"coefficient"`
	HeuresCM    null.Int    `json:"heures_cm,omitempty"`
	HeuresTD    null.Int    `json:"heures_td,omitempty"`
	HeuresTP    null.Int    `json:"heures_tp,omitempty"`
	Semestre    null.String `json:"semestre,omitempty"`
	Type        null.String `json:"type,omitempty"`
	Statut      null.String `json:"statut,omitempty"`
	TeacherID   null.Int    `json:"teacher_id,omitempty"`
	NiveauID    null.Int    `json:"niveau_id,omitempty"`
	ClasseIDs   []int       `json:"classe_ids,omitempty"`
}

type NewCours struct {
	Nom         string  `json:"nom" validate:"required"`
	Code        string  `json:"code" validate:"required"`
	Credits     int     `json:"credits" validate:"required,gt=0"`
	Coefficient float64 `json:"coefficient" validate:"required,gt=0"`
	HeuresCM    int     `json:"heures_cm,omitempty" validate:"omitempty,gte=0"`
	HeuresTD    int     `json:"heures_td,omitempty" validate:"omitempty,gte=0"`
	HeuresTP    int     `json:"heures_tp,omitempty" validate:"omitempty,gte=0"`
	Semestre    string  `json:"semestre,omitempty"`
	Type        string  `json:"type,omitempty"`
	Statut      string  `json:"statut,omitempty"`
	TeacherID   int     `json:"teacher_id,omitempty"`
	NiveauID    int     `json:"niveau_id,omitempty"`
	ClasseIDs   []int   `json:"classe_ids,omitempty"`
}

// Week days a slot may occupy. Sunday is not schedulable.
var Days = []string{"Lundi", "Mardi", "Mercredi", "Jeudi", "Vendredi", "Samedi"}

func IsValidDay(day string) bool {
	for _, d := range Days {
		if d == day {
			return true
		}
	}
	return false
}

// EmploiTemps is a scheduled timetable slot binding a class, a course, a
// teacher, a day and a time range.
type EmploiTemps struct {
	ID        int         `json:"id"`
	Code      string      `json:"code"`
	ClasseID  int         `json:"classe_id"`
	CoursID   int         `json:"cours_id"`
	TeacherID int         `json:"teacher_id"`
	Jour      string      `json:"jour"`
	HeureDeb  string      `json:"heure_debut"`
	HeureFin  string      `json:"heure_fin"`
	Salle     null.String `json:"salle,omitempty"`
	Type      null.String `json:"type,omitempty"`
	Statut    null.String `json:"statut,omitempty"`
	DateDebut null.String `json:"date_debut,omitempty"`
	DateFin   null.String `json:"date_fin,omitempty"`
	Remarques null.String `json:"remarques,omitempty"`
}

type NewEmploiTemps struct {
	Code      string `json:"code" validate:"required"`
	ClasseID  int    `json:"classe_id" validate:"required,gt=0"`
	CoursID   int    `json:"cours_id" validate:"required,gt=0"`
	TeacherID int    `json:"teacher_id" validate:"required,gt=0"`
	Jour      string `json:"jour" validate:"required"`
	HeureDeb  string `json:"heure_debut" validate:"required,time_hhmm"`
	HeureFin  string `json:"heure_fin" validate:"required,time_hhmm"`
	Salle     string `json:"salle,omitempty"`
	Type      string `json:"type,omitempty"`
	Statut    string `json:"statut,omitempty"`
	DateDebut string `json:"date_debut,omitempty"`
	DateFin   string `json:"date_fin,omitempty"`
	Remarques string `json:"remarques,omitempty"`
}

// Note is a single graded evaluation result for a student in a course,
// on the 0-20 scale.
type Note struct {
	ID             int         `json:"id"`
	StudentID      int         `json:"student_id"`
	CoursID        int         `json:"cours_id"`
	Valeur         float64     `json:"valeur"`
	Coefficient    float64     `json:"coefficient"`
	TypeEvaluation string      `json:"type_evaluation"`
	Semestre       string      `json:"semestre"`
	DateEvaluation string      `json:"date_evaluation"`
	Remarque       null.String `json:"remarque,omitempty"`
}

type NewNote struct {
	StudentID      int     `json:"student_id" validate:"required,gt=0"`
	CoursID        int     `json:"cours_id" validate:"required,gt=0"`
	Valeur         float64 `json:"valeur" validate:"note_range"`
	Coefficient    float64 `json:"coefficient" validate:"required,gt=0"`
	TypeEvaluation string  `json:"type_evaluation" validate:"required"`
	Semestre       string  `json:"semestre" validate:"required"`
	DateEvaluation string  `json:"date_evaluation" validate:"required"`
	Remarque       string  `json:"remarque,omitempty"`
}
