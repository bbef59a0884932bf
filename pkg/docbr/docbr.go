// Package docbr valida y formatea documentos brasileños (CPF de personas y CNPJ de empresas)
// con el algoritmo módulo 11 de la Receita Federal.
package docbr

import (
	"fmt"
	"unicode"
)

var (
	cpfWeights1  = [9]int{10, 9, 8, 7, 6, 5, 4, 3, 2}
	cpfWeights2  = [10]int{11, 10, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights1 = [12]int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	cnpjWeights2 = [13]int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// ValidateCPF valida un CPF con o sin máscara ("529.982.247-25" o "52998224725").
func ValidateCPF(cpf string) error {
	digits := extractDigits(cpf)
	if len(digits) != 11 {
		return fmt.Errorf("docbr: CPF debe tener 11 dígitos, se encontraron %d", len(digits))
	}
	if allEqual(digits) {
		return fmt.Errorf("docbr: CPF con dígitos repetidos no es válido")
	}
	d1 := cpfDigit(digits[:9], cpfWeights1[:])
	d2 := cpfDigit(digits[:10], cpfWeights2[:])
	if digits[9] != d1 || digits[10] != d2 {
		return fmt.Errorf("docbr: dígitos verificadores del CPF inválidos: esperado %c%c, recibido %c%c", d1, d2, digits[9], digits[10])
	}
	return nil
}

// ValidateCNPJ valida un CNPJ con o sin máscara ("11.222.333/0001-81" o "11222333000181").
func ValidateCNPJ(cnpj string) error {
	digits := extractDigits(cnpj)
	if len(digits) != 14 {
		return fmt.Errorf("docbr: CNPJ debe tener 14 dígitos, se encontraron %d", len(digits))
	}
	if allEqual(digits) {
		return fmt.Errorf("docbr: CNPJ con dígitos repetidos no es válido")
	}
	d1 := cnpjDigit(digits[:12], cnpjWeights1[:])
	d2 := cnpjDigit(digits[:13], cnpjWeights2[:])
	if digits[12] != d1 || digits[13] != d2 {
		return fmt.Errorf("docbr: dígitos verificadores del CNPJ inválidos: esperado %c%c, recibido %c%c", d1, d2, digits[12], digits[13])
	}
	return nil
}

// FormatCPF aplica la máscara 000.000.000-00. Devuelve el texto original si no tiene 11 dígitos.
func FormatCPF(cpf string) string {
	d := extractDigits(cpf)
	if len(d) != 11 {
		return cpf
	}
	return fmt.Sprintf("%s.%s.%s-%s", d[0:3], d[3:6], d[6:9], d[9:11])
}

// FormatCNPJ aplica la máscara 00.000.000/0000-00. Devuelve el texto original si no tiene 14 dígitos.
func FormatCNPJ(cnpj string) string {
	d := extractDigits(cnpj)
	if len(d) != 14 {
		return cnpj
	}
	return fmt.Sprintf("%s.%s.%s/%s-%s", d[0:2], d[2:5], d[5:8], d[8:12], d[12:14])
}

func cpfDigit(base []byte, weights []int) byte {
	var sum int
	for i, d := range base {
		sum += int(d-'0') * weights[i]
	}
	r := (sum * 10) % 11
	if r == 10 {
		r = 0
	}
	return byte('0' + r)
}

func cnpjDigit(base []byte, weights []int) byte {
	var sum int
	for i, d := range base {
		sum += int(d-'0') * weights[i]
	}
	r := sum % 11
	if r < 2 {
		return '0'
	}
	return byte('0' + (11 - r))
}

func allEqual(digits []byte) bool {
	for _, d := range digits[1:] {
		if d != digits[0] {
			return false
		}
	}
	return true
}

func extractDigits(s string) []byte {
	var out []byte
	for _, r := range s {
		if unicode.IsDigit(r) && r < unicode.MaxASCII {
			out = append(out, byte(r))
		}
	}
	return out
}
