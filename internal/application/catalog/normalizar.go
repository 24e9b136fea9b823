package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Decomposição NFD seguida da remoção das marcas combinantes (acentos, cedilha).
var semDiacriticos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalizar prepara uma string para busca: decompõe Unicode, remove
// diacríticos, descarta tudo que não for alfanumérico ASCII e rebaixa para
// minúsculas. "Maçã" e "maca" normalizam para o mesmo valor.
func Normalizar(s string) string {
	limpo, _, err := transform.String(semDiacriticos, s)
	if err != nil {
		limpo = s
	}
	var b strings.Builder
	b.Grow(len(limpo))
	for _, r := range limpo {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
