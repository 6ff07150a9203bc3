package console

// Códigos ANSI usados por la consola.
const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiRed    = "\033[31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiCyan   = "\033[36m"
)

// Style colorea los mensajes si está habilitado; deshabilitado devuelve el texto tal cual.
type Style struct {
	enabled bool
}

// NewStyle construye el estilo. enabled=false para salidas que no son terminal.
func NewStyle(enabled bool) Style {
	return Style{enabled: enabled}
}

func (s Style) paint(code, text string) string {
	if !s.enabled {
		return text
	}
	return code + text + ansiReset
}

func (s Style) Error(text string) string   { return s.paint(ansiRed, text) }
func (s Style) Success(text string) string { return s.paint(ansiYellow, text) }
func (s Style) Prompt(text string) string  { return s.paint(ansiGreen, text) }
func (s Style) Title(text string) string   { return s.paint(ansiCyan+ansiBold, text) }
func (s Style) Info(text string) string    { return s.paint(ansiCyan, text) }
