package synth

import "strings"

// Specialty pairs a provider specialty with its reporting category.
type Specialty struct {
	Name     string
	Category string
}

// Diagnosis is one ICD-10 code from the reference catalog.
type Diagnosis struct {
	Code        string
	Description string
	ShortLabel  string
	Chronic     bool
}

// Procedure is one CPT code with its reference base price in dollars.
type Procedure struct {
	Code        string
	Description string
	Category    string
	Invasive    bool
	BasePrice   float64
}

// Locale is a city and zip code pair. All synthetic addresses stay within
// StateCode.
type Locale struct {
	City    string
	ZipCode string
}

const StateCode = "MA"

var Specialties = []Specialty{
	{"Internal Medicine", "Primary Care"},
	{"Family Medicine", "Primary Care"},
	{"Cardiology", "Medical Specialty"},
	{"Neurology", "Medical Specialty"},
	{"Gastroenterology", "Medical Specialty"},
	{"Pulmonology", "Medical Specialty"},
	{"Orthopedics", "Surgical Specialty"},
	{"Psychiatry", "Behavioral Health"},
	{"Dermatology", "Other Specialty"},
}

var PlanTypes = []string{"HMO", "PPO", "EPO", "POS"}

// Every plan name carries exactly one plan type token so names can be
// filtered for a chosen type.
var PlanNames = []string{
	"Blue Cross HMO",
	"Blue Cross PPO",
	"Aetna PPO",
	"Aetna HMO",
	"United HMO",
	"United EPO",
	"Cigna EPO",
	"Cigna PPO",
	"Harvard Pilgrim HMO",
	"Tufts HMO",
}

var Diagnoses = []Diagnosis{
	{"E11.9", "Type 2 diabetes mellitus without complications", "Diabetes", true},
	{"I10", "Essential (primary) hypertension", "Hypertension", true},
	{"J06.9", "Acute upper respiratory infection", "Respiratory Infection", false},
	{"M54.5", "Low back pain", "Musculoskeletal", false},
	{"F32.9", "Major depressive disorder", "Depression", true},
	{"K21.0", "Gastro-esophageal reflux disease", "GERD", true},
	{"N39.0", "Urinary tract infection", "UTI", false},
	{"G43.909", "Migraine unspecified", "Migraine", true},
	{"L30.9", "Dermatitis unspecified", "Dermatitis", false},
	{"J45.909", "Unspecified asthma", "Asthma", true},
}

var Procedures = []Procedure{
	{"99212", "Office visit level 2", "E&M", false, 100},
	{"99213", "Office visit level 3", "E&M", false, 150},
	{"99214", "Office visit level 4", "E&M", false, 200},
	{"99215", "Office visit level 5", "E&M", false, 250},
	{"82947", "Glucose blood test", "Lab", false, 45},
	{"83036", "Hemoglobin A1c", "Lab", false, 85},
	{"93000", "Electrocardiogram", "Cardiology", false, 75},
	{"80053", "Comprehensive metabolic panel", "Lab", false, 120},
	{"71046", "Chest X-ray 2 views", "Radiology", false, 350},
	{"72148", "MRI lumbar spine", "Radiology", false, 1200},
	{"43239", "Upper GI endoscopy", "Surgery", true, 2500},
}

var Locales = []Locale{
	{"Boston", "02101"},
	{"Cambridge", "02139"},
	{"Worcester", "01601"},
	{"Springfield", "01103"},
	{"Lowell", "01852"},
	{"Quincy", "02169"},
	{"Somerville", "02143"},
	{"Newton", "02458"},
	{"Brookline", "02445"},
	{"Medford", "02155"},
}

var nonInvasiveProcedures = func() []Procedure {
	procedures := make([]Procedure, 0, len(Procedures))
	for _, p := range Procedures {
		if !p.Invasive {
			procedures = append(procedures, p)
		}
	}
	return procedures
}()

// planNamesFor returns the plan names carrying the plan type token. The
// static catalog has a match for every plan type; the unfiltered fallback
// guards against a type without branded names.
func planNamesFor(planType string) []string {
	var names []string
	for _, name := range PlanNames {
		if strings.Contains(name, planType) {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return PlanNames
	}
	return names
}
