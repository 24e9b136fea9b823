package console

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/telasecia/vitrine/internal/domain"
	"github.com/telasecia/vitrine/internal/domain/entity"
)

func newLoginCmd(app *App) *cobra.Command {
	var email, senha string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Entra na conta e guarda a sessão",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if email == "" {
				if email, err = perguntar("Email: "); err != nil {
					return err
				}
			}
			if senha == "" {
				if senha, err = perguntarSenha("Senha: "); err != nil {
					return err
				}
			}
			token, usuario, err := app.Usuarios.Login(cmd.Context(), email, senha)
			if err != nil {
				if errors.Is(err, domain.ErrNaoAutorizado) {
					return fmt.Errorf("email ou senha incorretos")
				}
				return err
			}
			if err := app.Sessao.Login(usuario, token); err != nil {
				return err
			}
			fmt.Println(estiloOk.Render(fmt.Sprintf("Bem-vindo(a), %s!", usuario.Nome)))
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email da conta")
	cmd.Flags().StringVar(&senha, "senha", "", "senha (se omitida, será pedida sem eco)")
	return cmd
}

func newLogoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sai da conta e apaga a sessão guardada",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Sessao.Autenticado() {
				fmt.Println(estiloFraco.Render("Nenhuma sessão ativa."))
				return nil
			}
			if err := app.Sessao.Logout(); err != nil {
				return err
			}
			fmt.Println(estiloOk.Render("Sessão encerrada."))
			return nil
		},
	}
}

func newPerfilCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "perfil",
		Short: "Mostra a conta da sessão atual",
		RunE: func(cmd *cobra.Command, args []string) error {
			u := app.Sessao.Usuario()
			if u == nil {
				fmt.Println(estiloFraco.Render("Anônimo. Entre com 'vitrine login'."))
				return nil
			}
			fmt.Println(estiloTitulo.Render(u.Nome))
			fmt.Printf("Email: %s\n", u.Email)
			if u.TipoUsuario != nil {
				fmt.Printf("Papel: %s\n", u.TipoUsuario.Tipo)
				for _, p := range u.TipoUsuario.Permissoes {
					fmt.Printf("  - %s\n", p.Permissao)
				}
			}
			return nil
		},
	}
}

func newCadastroCmd(app *App) *cobra.Command {
	var nome, email string
	cmd := &cobra.Command{
		Use:   "cadastro",
		Short: "Cria uma conta de cliente",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if nome == "" {
				if nome, err = perguntar("Nome: "); err != nil {
					return err
				}
			}
			if email == "" {
				if email, err = perguntar("Email: "); err != nil {
					return err
				}
			}
			senha, err := perguntarSenha("Senha: ")
			if err != nil {
				return err
			}
			confirmar, err := perguntarSenha("Confirme a senha: ")
			if err != nil {
				return err
			}
			u := entity.Usuario{
				Nome:          nome,
				Email:         email,
				Senha:         senha,
				TipoUsuarioID: entity.TipoUsuarioCliente,
			}
			if err := u.ValidarCadastro(confirmar); err != nil {
				return err
			}
			if err := app.Usuarios.Criar(cmd.Context(), &u); err != nil {
				if errors.Is(err, domain.ErrEmailJaExiste) {
					return fmt.Errorf("já existe uma conta com o email %s", email)
				}
				return err
			}
			fmt.Println(estiloOk.Render("Conta criada. Entre com 'vitrine login'."))
			return nil
		},
	}
	cmd.Flags().StringVar(&nome, "nome", "", "nome completo")
	cmd.Flags().StringVar(&email, "email", "", "email da conta")
	return cmd
}

func newResetSenhaCmd(app *App) *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "reset-senha",
		Short: "Pede o email de recuperação de senha",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if email == "" {
				if email, err = perguntar("Email: "); err != nil {
					return err
				}
			}
			if err := entity.ValidarEmail(email); err != nil {
				return err
			}
			if err := app.Usuarios.SolicitarResetSenha(cmd.Context(), email); err != nil {
				return err
			}
			fmt.Println(estiloOk.Render("Se o email existir, as instruções foram enviadas."))
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email da conta")
	return cmd
}

func perguntar(rotulo string) (string, error) {
	fmt.Print(rotulo)
	r := bufio.NewReader(os.Stdin)
	linha, err := r.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("ler entrada: %w", err)
	}
	return strings.TrimSpace(linha), nil
}

func perguntarSenha(rotulo string) (string, error) {
	fmt.Print(rotulo)
	b, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("ler senha: %w", err)
	}
	return string(b), nil
}
