package entity

// TipoUsuario papel de acesso. Um usuário tem exatamente um papel; um papel
// carrega uma lista de chaves de permissão.
type TipoUsuario struct {
	ID         int64                  `json:"id"`
	Tipo       string                 `json:"tipo"`
	Permissoes []PermissaoTipoUsuario `json:"permissoes"`
}
