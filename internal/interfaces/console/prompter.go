package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario/internal/domain/entity"
	"github.com/jhoicas/inventario/internal/domain/validation"
)

// ErrInputClosed indica que la fuente de entrada terminó (EOF); el menú lo trata como salida.
var ErrInputClosed = errors.New("entrada cerrada")

const (
	msgInvalidInt   = "Entrada inválida. Por favor, ingrese un número entero no negativo."
	msgInvalidFloat = "Entrada inválida. Por favor, ingrese un número no negativo."
)

// Prompter lee líneas de una fuente de entrada y escribe mensajes al operador.
// Los métodos Read* repiten la pregunta hasta recibir un valor válido.
type Prompter struct {
	in    *bufio.Reader
	out   io.Writer
	style Style
}

// NewPrompter construye el prompter sobre in/out (os.Stdin/os.Stdout o un guion en tests).
func NewPrompter(in io.Reader, out io.Writer, style Style) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out, style: style}
}

// ReadLine muestra prompt y devuelve la línea sin el salto final.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(p.out)
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("leer entrada: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadNonNegativeInt repite hasta recibir un entero >= 0. Con allowBlank, una línea vacía
// devuelve blank=true sin volver a preguntar.
func (p *Prompter) ReadNonNegativeInt(prompt string, allowBlank bool) (int, bool, error) {
	for {
		raw, err := p.ReadLine(p.style.Prompt(prompt))
		if err != nil {
			return 0, false, err
		}
		if raw == "" && allowBlank {
			return 0, true, nil
		}
		n, err := validation.ParseNonNegativeInt(raw)
		if err == nil {
			return n, false, nil
		}
		p.Errorln(msgInvalidInt)
	}
}

// ReadNonNegativePrice repite hasta recibir un número >= 0.
func (p *Prompter) ReadNonNegativePrice(prompt string) (decimal.Decimal, error) {
	for {
		raw, err := p.ReadLine(p.style.Prompt(prompt))
		if err != nil {
			return decimal.Zero, err
		}
		d, err := validation.ParseNonNegativePrice(raw)
		if err == nil {
			return d, nil
		}
		p.Errorln(msgInvalidFloat)
	}
}

// ReadNonBlank repite hasta recibir texto no vacío; emptyMsg se muestra en cada rechazo.
func (p *Prompter) ReadNonBlank(prompt, emptyMsg string) (string, error) {
	for {
		raw, err := p.ReadLine(p.style.Prompt(prompt))
		if err != nil {
			return "", err
		}
		s, err := validation.RequireNonBlank(raw)
		if err == nil {
			return s, nil
		}
		p.Errorln(emptyMsg)
	}
}

// ReadCategory repite hasta que la entrada normalizada pertenezca al conjunto cerrado.
func (p *Prompter) ReadCategory(prompt string) (string, error) {
	for {
		raw, err := p.ReadLine(p.style.Prompt(prompt))
		if err != nil {
			return "", err
		}
		c, err := validation.ParseCategory(raw)
		if err == nil {
			return c, nil
		}
		p.Errorln("Categoría no encontrada. Las categorías válidas son: " + strings.Join(entity.Categories, ", ") + ".")
	}
}

// Println escribe una línea sin formato.
func (p *Prompter) Println(text string) {
	fmt.Fprintln(p.out, text)
}

// Errorln escribe un mensaje de error.
func (p *Prompter) Errorln(text string) {
	fmt.Fprintln(p.out, p.style.Error(text))
}

// Successln escribe un mensaje de éxito precedido de una línea en blanco.
func (p *Prompter) Successln(text string) {
	fmt.Fprintln(p.out, "\n"+p.style.Success(text))
}

// Out expone el destino de escritura para los renderizadores.
func (p *Prompter) Out() io.Writer {
	return p.out
}
