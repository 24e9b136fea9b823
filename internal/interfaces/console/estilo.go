package console

import "github.com/charmbracelet/lipgloss"

// Estilos compartilhados da saída do console.
var (
	estiloTitulo = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	estiloOk     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	estiloErro   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	estiloFraco  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)
