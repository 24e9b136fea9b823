package entity

import "time"

// PermissaoTipoUsuario chave de permissão pertencente a um papel,
// comparada por igualdade de string (ex.: "criar_produto").
type PermissaoTipoUsuario struct {
	ID            int64      `json:"id"`
	TipoUsuarioID int64      `json:"tipo_usuario_id"`
	Permissao     string     `json:"permissao"`
	Descricao     string     `json:"descricao,omitempty"`
	CreatedAt     *time.Time `json:"created_at,omitempty"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}
