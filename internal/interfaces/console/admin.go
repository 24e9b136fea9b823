package console

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/telasecia/vitrine/internal/application/admin"
	"github.com/telasecia/vitrine/internal/domain"
	"github.com/telasecia/vitrine/internal/domain/entity"
)

func newAdminCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Administra o catálogo da loja",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !app.Sessao.Autenticado() {
				return fmt.Errorf("%w: entre com 'vitrine login' antes de administrar", domain.ErrSessaoAusente)
			}
			// O backend é quem decide de verdade; aqui só evitamos a viagem.
			if !app.Sessao.TemPermissao("criar_produto") {
				return fmt.Errorf("sua conta não tem permissão de administração")
			}
			return nil
		},
	}
	cmd.AddCommand(
		newAdminCategoriaCmd(app),
		newAdminProdutoCmd(app),
		newAdminTipoCmd(app),
	)
	return cmd
}

// ─── Categorias ───────────────────────────────────────────────────────────────

func newAdminCategoriaCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categoria",
		Short: "Gerencia categorias e suas subcategorias",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "listar",
		Short: "Lista as categorias com subcategorias",
		RunE: func(cmd *cobra.Command, args []string) error {
			categorias, err := app.Categorias.ListarTodas(cmd.Context())
			if err != nil {
				return err
			}
			for _, c := range categorias {
				fmt.Printf("%4d  %s\n", c.ID, estiloTitulo.Render(c.Nome))
				for _, s := range c.Subcategorias {
					fmt.Printf("      %4d  %s\n", s.ID, s.Nome)
				}
			}
			return nil
		},
	})

	var nome, imagem string
	var subs []string
	criar := &cobra.Command{
		Use:   "criar",
		Short: "Cria uma categoria, com subcategorias opcionais",
		Long:  "As subcategorias ficam pendentes em memória e são enviadas em lote depois que a categoria ganha id.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if nome == "" {
				return fmt.Errorf("--nome é obrigatório")
			}
			editor := admin.NewEditorSubcategorias(app.Subcategorias, nil)
			for _, espec := range subs {
				n, d, _ := strings.Cut(espec, ":")
				editor.Adicionar(entity.Subcategoria{Nome: n, Descricao: d})
			}
			c := entity.Categoria{Nome: nome, Imagem: imagem}
			if err := app.Categorias.Criar(cmd.Context(), &c); err != nil {
				return err
			}
			if err := editor.Descarregar(cmd.Context(), c.ID); err != nil {
				return fmt.Errorf("categoria %d criada, mas o lote de subcategorias falhou: %w", c.ID, err)
			}
			fmt.Println(estiloOk.Render(fmt.Sprintf("Categoria %d criada com %d subcategoria(s).", c.ID, len(editor.Itens()))))
			return nil
		},
	}
	criar.Flags().StringVar(&nome, "nome", "", "nome da categoria")
	criar.Flags().StringVar(&imagem, "imagem", "", "URL da imagem")
	criar.Flags().StringArrayVar(&subs, "subcategoria", nil, "subcategoria nome[:descricao]; repetível")
	cmd.AddCommand(criar)

	var excluirID int64
	excluir := &cobra.Command{
		Use:   "excluir",
		Short: "Exclui uma categoria (subcategorias vão junto)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if excluirID == 0 {
				return fmt.Errorf("--id é obrigatório")
			}
			if err := app.Categorias.Excluir(cmd.Context(), excluirID); err != nil {
				return err
			}
			fmt.Println(estiloOk.Render(fmt.Sprintf("Categoria %d excluída.", excluirID)))
			return nil
		},
	}
	excluir.Flags().Int64Var(&excluirID, "id", 0, "id da categoria")
	cmd.AddCommand(excluir)

	return cmd
}

// ─── Produtos ─────────────────────────────────────────────────────────────────

func newAdminProdutoCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "produto",
		Short: "Gerencia produtos e suas variações",
	}

	var nome, descricao, preco, marca, imagem string
	var estoque int
	var categoriaID, subcategoriaID int64
	var variacoes []string
	criar := &cobra.Command{
		Use:   "criar",
		Short: "Cria um produto, com variações opcionais",
		RunE: func(cmd *cobra.Command, args []string) error {
			valor, err := decimal.NewFromString(preco)
			if err != nil {
				return fmt.Errorf("preço inválido %q: %w", preco, err)
			}
			p := entity.Produto{
				Nome:        nome,
				Descricao:   descricao,
				Preco:       valor,
				Marca:       marca,
				Imagem:      imagem,
				Estoque:     estoque,
				CategoriaID: categoriaID,
			}
			if subcategoriaID > 0 {
				p.SubcategoriaID = &subcategoriaID
			}
			if err := p.Validar(); err != nil {
				return err
			}
			editor := admin.NewEditorVariacoes(app.Variacoes, nil)
			for _, espec := range variacoes {
				n, d, _ := strings.Cut(espec, ":")
				editor.Adicionar(entity.VariacaoProduto{Nome: n, Descricao: d})
			}
			if err := app.Produtos.Criar(cmd.Context(), &p); err != nil {
				return err
			}
			if err := editor.Descarregar(cmd.Context(), p.ID); err != nil {
				return fmt.Errorf("produto %d criado, mas o lote de variações falhou: %w", p.ID, err)
			}
			fmt.Println(estiloOk.Render(fmt.Sprintf("Produto %d criado.", p.ID)))
			return nil
		},
	}
	criar.Flags().StringVar(&nome, "nome", "", "nome do produto")
	criar.Flags().StringVar(&descricao, "descricao", "", "descrição")
	criar.Flags().StringVar(&preco, "preco", "0", "preço, ex.: 24.90")
	criar.Flags().StringVar(&marca, "marca", "", "marca")
	criar.Flags().StringVar(&imagem, "imagem", "", "URL da imagem")
	criar.Flags().IntVar(&estoque, "estoque", 0, "quantidade em estoque")
	criar.Flags().Int64Var(&categoriaID, "categoria", 0, "id da categoria")
	criar.Flags().Int64Var(&subcategoriaID, "subcategoria", 0, "id da subcategoria (opcional)")
	criar.Flags().StringArrayVar(&variacoes, "variacao", nil, "variação nome[:descricao]; repetível")
	cmd.AddCommand(criar)

	var atualizarID int64
	var novoPreco string
	var novoEstoque int
	atualizar := &cobra.Command{
		Use:   "atualizar",
		Short: "Atualiza preço e estoque de um produto",
		Long:  "Sobrescreve o registro no backend: a última escrita vence, sem detecção de edição concorrente.",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Produtos.BuscarPorID(cmd.Context(), atualizarID)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("preco") {
				valor, err := decimal.NewFromString(novoPreco)
				if err != nil {
					return fmt.Errorf("preço inválido %q: %w", novoPreco, err)
				}
				p.Preco = valor
			}
			if cmd.Flags().Changed("estoque") {
				p.Estoque = novoEstoque
			}
			if err := p.Validar(); err != nil {
				return err
			}
			if err := app.Produtos.Atualizar(cmd.Context(), p); err != nil {
				return err
			}
			fmt.Println(estiloOk.Render(fmt.Sprintf("Produto %d atualizado.", p.ID)))
			return nil
		},
	}
	atualizar.Flags().Int64Var(&atualizarID, "id", 0, "id do produto")
	atualizar.Flags().StringVar(&novoPreco, "preco", "", "novo preço")
	atualizar.Flags().IntVar(&novoEstoque, "estoque", 0, "novo estoque")
	cmd.AddCommand(atualizar)

	var excluirID int64
	excluir := &cobra.Command{
		Use:   "excluir",
		Short: "Exclui um produto (variações vão junto)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if excluirID == 0 {
				return fmt.Errorf("--id é obrigatório")
			}
			if err := app.Produtos.Excluir(cmd.Context(), excluirID); err != nil {
				return err
			}
			fmt.Println(estiloOk.Render(fmt.Sprintf("Produto %d excluído.", excluirID)))
			return nil
		},
	}
	excluir.Flags().Int64Var(&excluirID, "id", 0, "id do produto")
	cmd.AddCommand(excluir)

	return cmd
}

// ─── Papéis e permissões ──────────────────────────────────────────────────────

func newAdminTipoCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tipo",
		Short: "Consulta papéis de usuário e permissões",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "listar",
		Short: "Lista os papéis com suas permissões",
		RunE: func(cmd *cobra.Command, args []string) error {
			tipos, err := app.Tipos.ListarTodos(cmd.Context())
			if err != nil {
				return err
			}
			for _, t := range tipos {
				fmt.Printf("%4d  %s\n", t.ID, estiloTitulo.Render(t.Tipo))
				for _, p := range t.Permissoes {
					fmt.Printf("      %s  %s\n", p.Permissao, estiloFraco.Render(p.Descricao))
				}
			}
			return nil
		},
	})
	return cmd
}
