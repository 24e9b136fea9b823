package admin

import (
	"context"
	"fmt"

	"github.com/telasecia/vitrine/internal/domain"
	"github.com/telasecia/vitrine/internal/domain/entity"
	"github.com/telasecia/vitrine/internal/domain/repository"
)

// ItemSubcategoria subcategoria em edição, com identidade local explícita:
// persistida (id do backend) ou pendente (chave local).
type ItemSubcategoria struct {
	Registro entity.RegistroID
	Valor    entity.Subcategoria
}

// EditorSubcategorias lista de edição das subcategorias de uma categoria.
// Itens adicionados enquanto a categoria ainda não foi salva ficam pendentes
// em memória; Descarregar os envia em lote quando a dona ganha id.
type EditorSubcategorias struct {
	repo  repository.SubcategoriaRepository
	itens []ItemSubcategoria
}

// NewEditorSubcategorias constrói o editor partindo das subcategorias já persistidas.
func NewEditorSubcategorias(repo repository.SubcategoriaRepository, existentes []entity.Subcategoria) *EditorSubcategorias {
	e := &EditorSubcategorias{repo: repo}
	for _, s := range existentes {
		e.itens = append(e.itens, ItemSubcategoria{Registro: entity.Persistido(s.ID), Valor: s})
	}
	return e
}

// Itens devolve a lista corrente (persistidos e pendentes intercalados na ordem de edição).
func (e *EditorSubcategorias) Itens() []ItemSubcategoria {
	return e.itens
}

// Pendentes devolve só os itens ainda não persistidos.
func (e *EditorSubcategorias) Pendentes() []entity.Subcategoria {
	var pend []entity.Subcategoria
	for _, it := range e.itens {
		if !it.Registro.EstaPersistido() {
			pend = append(pend, it.Valor)
		}
	}
	return pend
}

// Adicionar acrescenta uma subcategoria pendente à lista local. Nenhuma
// chamada ao backend acontece aqui, mesmo que a categoria dona já exista.
func (e *EditorSubcategorias) Adicionar(s entity.Subcategoria) entity.RegistroID {
	reg := entity.Pendente()
	e.itens = append(e.itens, ItemSubcategoria{Registro: reg, Valor: s})
	return reg
}

// Remover tira um item da lista. Pendente só some da memória; persistido é
// excluído no backend na hora.
func (e *EditorSubcategorias) Remover(ctx context.Context, reg entity.RegistroID) error {
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

// Descarregar envia os pendentes em lote para a categoria já persistida e os
// promove a persistidos com os ids atribuídos. Sem pendentes, não chama o backend.
func (e *EditorSubcategorias) Descarregar(ctx context.Context, categoriaID int64) error {
	if categoriaID == 0 {
		return fmt.Errorf("%w: categoria dona ainda sem id", domain.ErrRegistroLocal)
	}
	pendentes := e.Pendentes()
	if len(pendentes) == 0 {
		return nil
	}
	criadas, err := e.repo.CriarLote(ctx, categoriaID, pendentes)
	if err != nil {
		return err
	}
	// Promove na ordem de envio; o backend preserva a ordem do lote.
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
