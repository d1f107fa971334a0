package models

// School subjects served by the portal.
const (
	SubjectArabic       = "arabic"
	SubjectEnglish      = "english"
	SubjectMath         = "math"
	SubjectChemistry    = "chemistry"
	SubjectPhysics      = "physics"
	SubjectBiology      = "biology"
	SubjectConstitution = "constitution"
	SubjectIslamic      = "islamic"
)

const (
	SemesterFirst  = "first"
	SemesterSecond = "second"
)

// Subjects lists every valid subject value, in display order.
var Subjects = []string{
	SubjectArabic,
	SubjectEnglish,
	SubjectMath,
	SubjectChemistry,
	SubjectPhysics,
	SubjectBiology,
	SubjectConstitution,
	SubjectIslamic,
}

var Semesters = []string{SemesterFirst, SemesterSecond}

func ValidSubject(s string) bool {
	for _, v := range Subjects {
		if v == s {
			return true
		}
	}
	return false
}

func ValidSemester(s string) bool {
	return s == SemesterFirst || s == SemesterSecond
}
