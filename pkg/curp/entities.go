package curp

import "sort"

// UnknownEntity is the name reported for entity codes outside the catalogue.
const UnknownEntity = "unknown entity"

// Entity is a birth entity: a federal state, the former federal district,
// or NE for people born abroad.
type Entity struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// entities is never written after package initialization.
var entities = map[string]string{
	"AS": "AGUASCALIENTES",
	"BC": "BAJA CALIFORNIA",
	"BS": "BAJA CALIFORNIA SUR",
	"CC": "CAMPECHE",
	"CL": "COAHUILA",
	"CM": "COLIMA",
	"CS": "CHIAPAS",
	"CH": "CHIHUAHUA",
	"DF": "DISTRITO FEDERAL",
	"DG": "DURANGO",
	"GT": "GUANAJUATO",
	"GR": "GUERRERO",
	"HG": "HIDALGO",
	"JC": "JALISCO",
	"MC": "MÉXICO",
	"MN": "MICHOACÁN",
	"MS": "MORELOS",
	"NT": "NAYARIT",
	"NL": "NUEVO LEÓN",
	"OC": "OAXACA",
	"PL": "PUEBLA",
	"QT": "QUERÉTARO",
	"QR": "QUINTANA ROO",
	"SP": "SAN LUIS POTOSÍ",
	"SL": "SINALOA",
	"SR": "SONORA",
	"TC": "TABASCO",
	"TS": "TAMAULIPAS",
	"TL": "TLAXCALA",
	"VZ": "VERACRUZ",
	"YN": "YUCATÁN",
	"ZS": "ZACATECAS",
	"NE": "NACIDO EN EL EXTRANJERO",
}

// LookupEntity resolves a two-letter entity code. The code is matched as
// given; callers pass the already normalized substring.
func LookupEntity(code string) (string, bool) {
	name, ok := entities[code]
	return name, ok
}

// EntityName resolves code, degrading to UnknownEntity on a miss.
func EntityName(code string) string {
	if name, ok := entities[code]; ok {
		return name
	}
	return UnknownEntity
}

// Entities returns a copy of the catalogue ordered by code.
func Entities() []Entity {
	out := make([]Entity, 0, len(entities))
	for code, name := range entities {
		out = append(out, Entity{Code: code, Name: name})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
