package console

import (
	"github.com/spf13/cobra"
)

// NewRootCmd monta a árvore de comandos do console da loja.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "vitrine",
		Short:         "Vitrine da Telas e Cia RS no terminal",
		Long:          "Cliente de terminal da loja Telas e Cia RS: catálogo, conta e administração.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newCatalogoCmd(app),
		newLoginCmd(app),
		newLogoutCmd(app),
		newPerfilCmd(app),
		newCadastroCmd(app),
		newResetSenhaCmd(app),
		newContatoCmd(app),
		newAdminCmd(app),
	)
	return root
}
