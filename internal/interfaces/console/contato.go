package console

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/telasecia/vitrine/internal/domain/entity"
)

func newContatoCmd(app *App) *cobra.Command {
	var numero, email, mensagem string
	cmd := &cobra.Command{
		Use:   "contato",
		Short: "Envia uma mensagem para a loja",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if email == "" {
				if email, err = perguntar("Email: "); err != nil {
					return err
				}
			}
			if numero == "" {
				if numero, err = perguntar("Telefone (opcional): "); err != nil {
					return err
				}
			}
			if mensagem == "" {
				if mensagem, err = perguntar("Mensagem: "); err != nil {
					return err
				}
			}
			m := entity.MensagemContato{Numero: numero, Email: email, Mensagem: mensagem}
			if err := m.Validar(); err != nil {
				return err
			}
			if err := app.Contato.Enviar(cmd.Context(), m); err != nil {
				return err
			}
			fmt.Println(estiloOk.Render("Mensagem enviada. Obrigado pelo contato!"))
			return nil
		},
	}
	cmd.Flags().StringVar(&numero, "numero", "", "telefone de contato")
	cmd.Flags().StringVar(&email, "email", "", "email para resposta")
	cmd.Flags().StringVar(&mensagem, "mensagem", "", "texto da mensagem")
	return cmd
}
