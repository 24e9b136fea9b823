package catalog

import (
	"math/rand"

	"github.com/telasecia/vitrine/internal/domain/entity"
)

// Embaralhar aplica uma permutação uniforme in place. Usado quando nenhuma
// categoria está selecionada; com categoria ativa a ordem do backend é mantida.
func Embaralhar(produtos []entity.Produto) {
	rand.Shuffle(len(produtos), func(i, j int) {
		produtos[i], produtos[j] = produtos[j], produtos[i]
	})
}
