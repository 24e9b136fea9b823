package console

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/telasecia/vitrine/internal/application/catalog"
	"github.com/telasecia/vitrine/internal/interfaces/tui"
)

func newCatalogoCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalogo",
		Short: "Navega o catálogo da loja",
		Long:  "Abre a vitrine interativa. Use 'catalogo listar' para a saída não interativa.",
		RunE: func(cmd *cobra.Command, args []string) error {
			modelo := tui.New(app.Produtos, app.Categorias, app.Log)
			_, err := tea.NewProgram(modelo, tea.WithAltScreen()).Run()
			return err
		},
	}
	cmd.AddCommand(newCatalogoListarCmd(app))
	return cmd
}

func newCatalogoListarCmd(app *App) *cobra.Command {
	var categoriaID int64
	var busca string
	var pagina int
	cmd := &cobra.Command{
		Use:   "listar",
		Short: "Lista uma página do catálogo",
		RunE: func(cmd *cobra.Command, args []string) error {
			consulta := catalog.NovaConsulta(app.Produtos, app.Log)
			var err error
			if categoriaID > 0 {
				err = consulta.SelecionarCategoria(cmd.Context(), &categoriaID)
			} else {
				err = consulta.Carregar(cmd.Context())
			}
			if err != nil {
				return err
			}
			consulta.DefinirBusca(busca)
			consulta.DefinirPagina(pagina)

			itens := consulta.Pagina()
			if len(itens) == 0 {
				fmt.Println(estiloFraco.Render("Nenhum produto nesta página."))
				return nil
			}
			for _, p := range itens {
				linha := fmt.Sprintf("%4d  %-40s R$ %8s  estoque %d", p.ID, p.Nome, p.Preco.StringFixed(2), p.Estoque)
				fmt.Println(linha)
			}
			fmt.Println(estiloFraco.Render(fmt.Sprintf("página %d de %d (%d produtos)",
				consulta.PaginaAtual(), consulta.TotalPaginas(), len(consulta.Filtrados()))))
			return nil
		},
	}
	cmd.Flags().Int64Var(&categoriaID, "categoria", 0, "filtra por id de categoria")
	cmd.Flags().StringVar(&busca, "busca", "", "termo de busca (ignora acentos e caixa)")
	cmd.Flags().IntVar(&pagina, "pagina", 1, "página a exibir (12 por página)")
	return cmd
}
