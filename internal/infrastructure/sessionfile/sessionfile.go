package sessionfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/telasecia/vitrine/internal/domain/entity"
)

// Snapshot par persistido da sessão: snapshot do usuário autenticado e o
// bearer token opaco. Equivale às duas chaves de armazenamento do cliente.
type Snapshot struct {
	Usuario *entity.Usuario `json:"usuario"`
	Token   string          `json:"token"`
}

// Arquivo persistência da sessão em um arquivo JSON no disco.
// Lida na inicialização, escrita no login, apagada no logout ou em 401/403.
type Arquivo struct {
	caminho string
}

// New constrói a persistência apontando para o caminho dado.
func New(caminho string) *Arquivo {
	return &Arquivo{caminho: caminho}
}

// Carregar lê o snapshot persistido. Devolve (nil, nil) quando não há sessão
// gravada: começar anônimo não é erro.
func (a *Arquivo) Carregar() (*Snapshot, error) {
	dados, err := os.ReadFile(a.caminho)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("ler sessão: %w", err)
	}
	var s Snapshot
	if err := json.Unmarshal(dados, &s); err != nil {
		// Arquivo corrompido equivale a sessão ausente; será regravado no próximo login.
		return nil, nil
	}
	if s.Usuario == nil || s.Token == "" {
		return nil, nil
	}
	return &s, nil
}

// Salvar grava o snapshot com permissão restrita ao usuário (carrega token).
func (a *Arquivo) Salvar(s Snapshot) error {
	if err := os.MkdirAll(filepath.Dir(a.caminho), 0o700); err != nil {
		return fmt.Errorf("criar diretório de sessão: %w", err)
	}
	dados, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar sessão: %w", err)
	}
	if err := os.WriteFile(a.caminho, dados, 0o600); err != nil {
		return fmt.Errorf("gravar sessão: %w", err)
	}
	return nil
}

// Limpar remove o snapshot; ausência do arquivo não é erro.
func (a *Arquivo) Limpar() error {
	if err := os.Remove(a.caminho); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("limpar sessão: %w", err)
	}
	return nil
}
