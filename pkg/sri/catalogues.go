// Package sri contiene catálogos y validaciones de identificación tributaria del
// Ecuador (Registro Civil / SRI): cédula de ciudadanía, RUC de persona natural y
// códigos de provincia.
package sri

import "strings"

// =============================================================================
// Códigos de provincia (dos primeros dígitos de la cédula)
// =============================================================================

// ProvinceForeignResidents código asignado a ecuatorianos registrados en el exterior.
const ProvinceForeignResidents = 30

// Provinces nombre oficial por código de provincia.
var Provinces = map[int]string{
	1:  "AZUAY",
	2:  "BOLIVAR",
	3:  "CAÑAR",
	4:  "CARCHI",
	5:  "COTOPAXI",
	6:  "CHIMBORAZO",
	7:  "EL ORO",
	8:  "ESMERALDAS",
	9:  "GUAYAS",
	10: "IMBABURA",
	11: "LOJA",
	12: "LOS RIOS",
	13: "MANABI",
	14: "MORONA SANTIAGO",
	15: "NAPO",
	16: "PASTAZA",
	17: "PICHINCHA",
	18: "TUNGURAHUA",
	19: "ZAMORA CHINCHIPE",
	20: "GALAPAGOS",
	21: "SUCUMBIOS",
	22: "ORELLANA",
	23: "SANTO DOMINGO DE LOS TSACHILAS",
	24: "SANTA ELENA",
}

// IsValidProvinceCode indica si el código puede encabezar una cédula.
func IsValidProvinceCode(code int) bool {
	_, ok := Provinces[code]
	return ok || code == ProvinceForeignResidents
}

// IsKnownProvince compara el nombre sin distinguir mayúsculas.
func IsKnownProvince(name string) bool {
	n := strings.ToUpper(strings.TrimSpace(name))
	for _, p := range Provinces {
		if p == n {
			return true
		}
	}
	return false
}
