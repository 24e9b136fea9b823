package repository

import (
	"context"
	"io"
)

// ArmazenamentoArquivos colaborador externo de armazenamento de imagens.
// O núcleo nunca implementa armazenamento: só consome esta interface.
type ArmazenamentoArquivos interface {
	// Upload envia o conteúdo e devolve a URL pública do arquivo.
	Upload(ctx context.Context, conteudo io.Reader, nome string) (string, error)
	Excluir(ctx context.Context, url string) error
	ObterURL(ctx context.Context, nome string) (string, error)
}
