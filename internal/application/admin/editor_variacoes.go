package admin

import (
	"context"
	"fmt"

	"github.com/telasecia/vitrine/internal/domain"
	"github.com/telasecia/vitrine/internal/domain/entity"
	"github.com/telasecia/vitrine/internal/domain/repository"
)

// ItemVariacao variação em edição, com identidade local explícita.
type ItemVariacao struct {
	Registro entity.RegistroID
	Valor    entity.VariacaoProduto
}

// EditorVariacoes lista de edição das variações de um produto, com o mesmo
// contrato do editor de subcategorias: pendentes ficam locais até o produto
// dono ser salvo.
type EditorVariacoes struct {
	repo  repository.VariacaoProdutoRepository
	itens []ItemVariacao
}

// NewEditorVariacoes constrói o editor partindo das variações já persistidas.
func NewEditorVariacoes(repo repository.VariacaoProdutoRepository, existentes []entity.VariacaoProduto) *EditorVariacoes {
	e := &EditorVariacoes{repo: repo}
	for _, v := range existentes {
		e.itens = append(e.itens, ItemVariacao{Registro: entity.Persistido(v.ID), Valor: v})
	}
	return e
}

// Itens devolve a lista corrente.
func (e *EditorVariacoes) Itens() []ItemVariacao {
	return e.itens
}

// Pendentes devolve só os itens ainda não persistidos.
func (e *EditorVariacoes) Pendentes() []entity.VariacaoProduto {
	var pend []entity.VariacaoProduto
	for _, it := range e.itens {
		if !it.Registro.EstaPersistido() {
			pend = append(pend, it.Valor)
		}
	}
	return pend
}

// Adicionar acrescenta uma variação pendente à lista local.
func (e *EditorVariacoes) Adicionar(v entity.VariacaoProduto) entity.RegistroID {
	reg := entity.Pendente()
	e.itens = append(e.itens, ItemVariacao{Registro: reg, Valor: v})
	return reg
}

// Remover tira um item da lista; persistido é excluído no backend na hora.
func (e *EditorVariacoes) Remover(ctx context.Context, reg entity.RegistroID) error {
	for i, it := range e.itens {
		if it.Registro == reg {
			if reg.EstaPersistido() {
				if err := e.repo.Excluir(ctx, reg.Valor()); err != nil {
					return err
				}
			}
			e.itens = append(e.itens[:i], e.itens[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: item não está na lista", domain.ErrNaoEncontrado)
}

// Descarregar envia os pendentes em lote para o produto já persistido.
func (e *EditorVariacoes) Descarregar(ctx context.Context, produtoID int64) error {
	if produtoID == 0 {
		return fmt.Errorf("%w: produto dono ainda sem id", domain.ErrRegistroLocal)
	}
	pendentes := e.Pendentes()
	if len(pendentes) == 0 {
		return nil
	}
	criadas, err := e.repo.CriarLote(ctx, produtoID, pendentes)
	if err != nil {
		return err
	}
	j := 0
	for i := range e.itens {
		if e.itens[i].Registro.EstaPersistido() {
			continue
		}
		if j < len(criadas) {
			e.itens[i].Valor = criadas[j]
			e.itens[i].Registro = entity.Persistido(criadas[j].ID)
			j++
		}
	}
	return nil
}
