package utils

import "strings"

// NormalizarDocumento remove pontuação de CPF/CNPJ, mantendo apenas dígitos.
// "123.456.789-09" e "12345678909" identificam o mesmo corretor no login.
func NormalizarDocumento(doc string) string {
	var b strings.Builder
	for _, r := range doc {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
