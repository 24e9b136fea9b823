package catalog

import "github.com/telasecia/vitrine/internal/domain/entity"

// TamanhoPagina quantidade fixa de produtos por página da vitrine.
const TamanhoPagina = 12

// Paginar devolve a janela da página pedida (1-based) com TamanhoPagina itens.
// Página além da última devolve fatia vazia: nenhum clamp é aplicado, o
// seletor de páginas é quem deve se manter no intervalo.
func Paginar(produtos []entity.Produto, pagina int) []entity.Produto {
	return PaginarCom(produtos, pagina, TamanhoPagina)
}

// PaginarCom como Paginar, com tamanho de página explícito.
func PaginarCom(produtos []entity.Produto, pagina, tamanho int) []entity.Produto {
	if pagina < 1 || tamanho < 1 {
		return nil
	}
	inicio := (pagina - 1) * tamanho
	if inicio >= len(produtos) {
		return nil
	}
	fim := inicio + tamanho
	if fim > len(produtos) {
		fim = len(produtos)
	}
	return produtos[inicio:fim]
}

// TotalPaginas devolve ceil(n / TamanhoPagina).
func TotalPaginas(n int) int {
	return TotalPaginasCom(n, TamanhoPagina)
}

// TotalPaginasCom como TotalPaginas, com tamanho de página explícito.
func TotalPaginasCom(n, tamanho int) int {
	if n <= 0 || tamanho < 1 {
		return 0
	}
	return (n + tamanho - 1) / tamanho
}
