package sri

import (
	"fmt"
	"unicode"
)

// coeficientes del módulo 10 aplicados a los 9 primeros dígitos de la cédula.
var cedulaWeights = [9]int{2, 1, 2, 1, 2, 1, 2, 1, 2}

// naturalPersonRUCSuffix establecimiento principal de un RUC de persona natural.
const naturalPersonRUCSuffix = "001"

// ValidateCedula valida una cédula ecuatoriana de 10 dígitos: código de provincia,
// tercer dígito menor a 6 y dígito verificador módulo 10.
// Acepta separadores ("171003406-5").
func ValidateCedula(ci string) error {
	digits := extractDigits(ci)
	if len(digits) != 10 {
		return fmt.Errorf("sri: la cédula debe tener 10 dígitos, se encontraron %d", len(digits))
	}
	province := int(digits[0]-'0')*10 + int(digits[1]-'0')
	if !IsValidProvinceCode(province) {
		return fmt.Errorf("sri: código de provincia inválido: %02d", province)
	}
	if digits[2]-'0' >= 6 {
		return fmt.Errorf("sri: el tercer dígito de una cédula debe ser menor a 6, se recibió %c", digits[2])
	}
	expected := ComputeCedulaVerificationDigit(digits[:9])
	if digits[9] != expected {
		return fmt.Errorf("sri: dígito verificador de la cédula inválido: esperado %c, recibido %c", expected, digits[9])
	}
	return nil
}

// ComputeCedulaVerificationDigit calcula el dígito verificador para los 9 primeros dígitos.
func ComputeCedulaVerificationDigit(base []byte) byte {
	var sum int
	for i, d := range base[:9] {
		p := int(d-'0') * cedulaWeights[i]
		if p > 9 {
			p -= 9
		}
		sum += p
	}
	return byte('0' + (10-sum%10)%10)
}

// ValidateRUC valida un RUC de persona natural: cédula válida seguida de "001".
func ValidateRUC(ruc string) error {
	digits := extractDigits(ruc)
	if len(digits) != 13 {
		return fmt.Errorf("sri: el RUC debe tener 13 dígitos, se encontraron %d", len(digits))
	}
	if string(digits[10:]) != naturalPersonRUCSuffix {
		return fmt.Errorf("sri: el RUC de persona natural debe terminar en %s", naturalPersonRUCSuffix)
	}
	if err := ValidateCedula(string(digits[:10])); err != nil {
		return fmt.Errorf("sri: RUC: %w", err)
	}
	return nil
}

func extractDigits(s string) []byte {
	var out []byte
	for _, r := range s {
		if unicode.IsDigit(r) {
			out = append(out, byte(r))
		}
	}
	return out
}
