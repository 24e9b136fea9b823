package localfs

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/telasecia/vitrine/internal/domain/repository"
)

var _ repository.ArmazenamentoArquivos = (*Armazenamento)(nil)

// Armazenamento implementação em disco local da porta ArmazenamentoArquivos,
// usada pelo backend stub de desenvolvimento. Em produção o armazenamento de
// imagens é um serviço externo.
type Armazenamento struct {
	dir     string
	baseURL string
}

// New constrói o armazenamento local. baseURL prefixa as URLs devolvidas
// (ex.: http://localhost:3000/uploads).
func New(dir, baseURL string) *Armazenamento {
	return &Armazenamento{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}
}

// Upload grava o conteúdo em disco e devolve a URL pública.
func (a *Armazenamento) Upload(ctx context.Context, conteudo io.Reader, nome string) (string, error) {
	if err := os.MkdirAll(a.dir, 0o755); err != nil {
		return "", fmt.Errorf("criar diretório de uploads: %w", err)
	}
	nome = filepath.Base(nome) // nunca aceitar caminhos relativos do cliente
	destino := filepath.Join(a.dir, nome)
	f, err := os.Create(destino)
	if err != nil {
		return "", fmt.Errorf("criar arquivo %s: %w", nome, err)
	}
	defer f.Close()
	if _, err := io.Copy(f, conteudo); err != nil {
		return "", fmt.Errorf("gravar arquivo %s: %w", nome, err)
	}
	return a.baseURL + "/" + nome, nil
}

// Excluir remove o arquivo referenciado pela URL.
func (a *Armazenamento) Excluir(ctx context.Context, url string) error {
	nome := filepath.Base(url)
	if err := os.Remove(filepath.Join(a.dir, nome)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("excluir arquivo %s: %w", nome, err)
	}
	return nil
}

// ObterURL devolve a URL pública de um arquivo já armazenado.
func (a *Armazenamento) ObterURL(ctx context.Context, nome string) (string, error) {
	nome = filepath.Base(nome)
	if _, err := os.Stat(filepath.Join(a.dir, nome)); err != nil {
		return "", fmt.Errorf("arquivo %s: %w", nome, err)
	}
	return a.baseURL + "/" + nome, nil
}
