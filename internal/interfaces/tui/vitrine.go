// Package tui implementa a vitrine interativa do catálogo no terminal.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/telasecia/vitrine/internal/application/catalog"
	"github.com/telasecia/vitrine/internal/domain/entity"
	"github.com/telasecia/vitrine/internal/domain/repository"
	"github.com/telasecia/vitrine/pkg/logger"
)

var (
	estiloTitulo    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	estiloCategoria = lipgloss.NewStyle().Padding(0, 1)
	estiloAtiva     = estiloCategoria.Reverse(true)
	estiloProduto   = lipgloss.NewStyle().PaddingLeft(2)
	estiloPreco     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	estiloRodape    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	estiloErro      = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// categoriasMsg resultado do carregamento das categorias.
type categoriasMsg struct {
	categorias []entity.Categoria
	err        error
}

// produtosMsg resultado de uma busca do conjunto de trabalho. Carrega a
// geração da busca: respostas de gerações antigas são descartadas, então uma
// troca rápida de categoria nunca é sobrescrita por uma resposta atrasada.
type produtosMsg struct {
	geracao  int
	produtos []entity.Produto
	err      error
}

// Model estado da vitrine interativa. O índice de categoria -1 significa
// "todas": catálogo completo, embaralhado a cada rebusca.
type Model struct {
	produtos   repository.ProdutoRepository
	categorias repository.CategoriaRepository
	log        *logger.Logger

	cats     []entity.Categoria
	catIndex int
	conjunto []entity.Produto
	busca    textinput.Model
	pagina   int

	geracao    int
	carregando bool
	err        error
	largura    int
}

// New constrói a vitrine. O conjunto inicial é buscado no Init.
func New(produtos repository.ProdutoRepository, categorias repository.CategoriaRepository, log *logger.Logger) Model {
	if log == nil {
		log = logger.NewNop()
	}
	busca := textinput.New()
	busca.Placeholder = "buscar por nome, marca ou categoria"
	busca.Prompt = "/ "
	busca.CharLimit = 80
	return Model{
		produtos:   produtos,
		categorias: categorias,
		log:        log,
		catIndex:   -1,
		busca:      busca,
		pagina:     1,
	}
}

// Init dispara o carregamento das categorias e do catálogo completo.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.carregarCategorias(), m.buscarConjunto(1, nil))
}

func (m Model) carregarCategorias() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		cats, err := m.categorias.ListarTodas(ctx)
		return categoriasMsg{categorias: cats, err: err}
	}
}

// buscarConjunto rebusca o conjunto de trabalho. Com id nil o catálogo
// completo é embaralhado; com id a ordem do backend é preservada.
func (m Model) buscarConjunto(geracao int, id *int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		var (
			produtos []entity.Produto
			err      error
		)
		if id != nil {
			produtos, err = m.produtos.ListarPorCategoria(ctx, *id)
		} else {
			produtos, err = m.produtos.ListarTodos(ctx)
			if err == nil {
				catalog.Embaralhar(produtos)
			}
		}
		return produtosMsg{geracao: geracao, produtos: produtos, err: err}
	}
}

// Update trata teclado e chegada de dados.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.largura = msg.Width
		return m, nil

	case categoriasMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.cats = msg.categorias
		return m, nil

	case produtosMsg:
		if msg.geracao != m.geracao {
			// Resposta de uma seleção que o usuário já abandonou.
			return m, nil
		}
		m.carregando = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.conjunto = msg.produtos
		m.pagina = 1
		return m, nil

	case tea.KeyMsg:
		if m.busca.Focused() {
			switch msg.Type {
			case tea.KeyEsc, tea.KeyEnter:
				m.busca.Blur()
				return m, nil
			}
			// Digitar refiltra em memória e não mexe na página.
			var cmd tea.Cmd
			m.busca, cmd = m.busca.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "/":
			m.busca.Focus()
			return m, textinput.Blink
		case "left", "h":
			if m.pagina > 1 {
				m.pagina--
			}
			return m, nil
		case "right", "l":
			if m.pagina < m.totalPaginas() {
				m.pagina++
			}
			return m, nil
		case "tab":
			return m.trocarCategoria(1)
		case "shift+tab":
			return m.trocarCategoria(-1)
		case "r":
			return m.rebuscar()
		}
	}
	return m, nil
}

// trocarCategoria cicla a seleção (todas -> cat1 -> ... -> catN -> todas) e
// rebusca o conjunto de trabalho com uma geração nova.
func (m Model) trocarCategoria(delta int) (tea.Model, tea.Cmd) {
	if len(m.cats) == 0 {
		return m, nil
	}
	m.catIndex += delta
	if m.catIndex >= len(m.cats) {
		m.catIndex = -1
	}
	if m.catIndex < -1 {
		m.catIndex = len(m.cats) - 1
	}
	return m.rebuscar()
}

func (m Model) rebuscar() (tea.Model, tea.Cmd) {
	m.geracao++
	m.carregando = true
	var id *int64
	if m.catIndex >= 0 {
		id = &m.cats[m.catIndex].ID
	}
	return m, m.buscarConjunto(m.geracao, id)
}

func (m Model) filtrados() []entity.Produto {
	return catalog.Filtrar(m.conjunto, m.busca.Value())
}

func (m Model) totalPaginas() int {
	return catalog.TotalPaginas(len(m.filtrados()))
}

// View desenha a vitrine: categorias, busca, página de produtos e rodapé.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(estiloTitulo.Render("Telas e Cia RS"))
	b.WriteString("\n\n")

	b.WriteString(m.barraCategorias())
	b.WriteString("\n")
	b.WriteString(m.busca.View())
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(estiloErro.Render(fmt.Sprintf("Não foi possível carregar o catálogo: %v", m.err)))
		b.WriteString("\n")
	case m.carregando:
		b.WriteString(estiloRodape.Render("carregando..."))
		b.WriteString("\n")
	default:
		filtrados := m.filtrados()
		itens := catalog.Paginar(filtrados, m.pagina)
		if len(itens) == 0 {
			b.WriteString(estiloRodape.Render("nenhum produto encontrado"))
			b.WriteString("\n")
		}
		for _, p := range itens {
			linha := fmt.Sprintf("%-40s %s", recortar(p.Nome, 40), estiloPreco.Render("R$ "+p.Preco.StringFixed(2)))
			if p.Marca != "" {
				linha += estiloRodape.Render("  " + p.Marca)
			}
			b.WriteString(estiloProduto.Render(linha))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(estiloRodape.Render(fmt.Sprintf("página %d/%d · %d produtos", m.pagina, m.totalPaginas(), len(filtrados))))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(estiloRodape.Render("tab categoria · ←/→ página · / busca · r recarrega · q sai"))
	b.WriteString("\n")
	return b.String()
}

func (m Model) barraCategorias() string {
	nomes := make([]string, 0, len(m.cats)+1)
	if m.catIndex == -1 {
		nomes = append(nomes, estiloAtiva.Render("Todas"))
	} else {
		nomes = append(nomes, estiloCategoria.Render("Todas"))
	}
	for i, c := range m.cats {
		if i == m.catIndex {
			nomes = append(nomes, estiloAtiva.Render(c.Nome))
		} else {
			nomes = append(nomes, estiloCategoria.Render(c.Nome))
		}
	}
	return strings.Join(nomes, " ")
}

func recortar(s string, n int) string {
	runas := []rune(s)
	if len(runas) <= n {
		return s
	}
	return string(runas[:n-1]) + "…"
}
