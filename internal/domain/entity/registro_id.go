package entity

import "github.com/google/uuid"

// RegistroID identidade local de um registro em edição: persistido (id do
// backend) ou pendente (chave local). Substitui o sentinela "id = 0" dos
// editores de lista, que colidiria com ids reais caso o backend mudasse a
// numeração.
type RegistroID struct {
	id    int64
	chave string
}

// Persistido constrói a identidade de um registro já salvo no backend.
func Persistido(id int64) RegistroID {
	return RegistroID{id: id}
}

// Pendente constrói a identidade de um registro ainda não salvo,
// com chave local única para uso em listas de edição.
func Pendente() RegistroID {
	return RegistroID{chave: uuid.NewString()}
}

// EstaPersistido informa se o registro já existe no backend.
func (r RegistroID) EstaPersistido() bool {
	return r.chave == ""
}

// Valor devolve o id do backend; 0 enquanto pendente.
func (r RegistroID) Valor() int64 {
	return r.id
}

// ChaveLocal devolve a chave local; vazia quando persistido.
func (r RegistroID) ChaveLocal() string {
	return r.chave
}
