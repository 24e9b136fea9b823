package catalog

import (
	"strings"

	"github.com/telasecia/vitrine/internal/domain/entity"
)

// Filtrar retém os produtos cujo nome, descrição, marca ou nome da categoria
// embutida contenham o termo normalizado como substring. Termo vazio retém
// todos. A operação é idempotente sobre o mesmo termo.
func Filtrar(produtos []entity.Produto, termo string) []entity.Produto {
	termoNorm := Normalizar(termo)
	if termoNorm == "" {
		return produtos
	}
	filtrados := make([]entity.Produto, 0, len(produtos))
	for _, p := range produtos {
		if correspondeProduto(p, termoNorm) {
			filtrados = append(filtrados, p)
		}
	}
	return filtrados
}

func correspondeProduto(p entity.Produto, termoNorm string) bool {
	campos := []string{p.Nome, p.Descricao, p.Marca}
	if p.Categoria != nil {
		campos = append(campos, p.Categoria.Nome)
	}
	for _, campo := range campos {
		if strings.Contains(Normalizar(campo), termoNorm) {
			return true
		}
	}
	return false
}
