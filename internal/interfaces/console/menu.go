package console

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/inventario/internal/application/usecase"
	"github.com/jhoicas/inventario/pkg/logger"
)

// menuItem es una opción numerada del menú principal.
type menuItem struct {
	Label         string
	NeedsProducts bool // se rechaza si no hay productos registrados
	Action        func(ctx context.Context) error
	Exit          bool
}

// Menu muestra el menú principal y despacha a los handlers hasta que el operador sale.
type Menu struct {
	uc    *usecase.ProductUseCase
	p     *Prompter
	log   *logger.Logger
	items []menuItem
}

// NewMenu construye el menú con sus siete opciones.
func NewMenu(uc *usecase.ProductUseCase, h *ProductHandler, p *Prompter, log *logger.Logger) *Menu {
	return &Menu{
		uc:  uc,
		p:   p,
		log: log,
		items: []menuItem{
			{Label: "Agregar producto", Action: h.Add},
			{Label: "Mostrar productos", NeedsProducts: true, Action: h.List},
			{Label: "Actualizar producto", NeedsProducts: true, Action: h.Update},
			{Label: "Eliminar producto", NeedsProducts: true, Action: h.Delete},
			{Label: "Buscar producto", NeedsProducts: true, Action: h.Search},
			{Label: "Reporte bajo stock", NeedsProducts: true, Action: h.LowStock},
			{Label: "Salir", Exit: true},
		},
	}
}

// Run ejecuta el ciclo del menú. Devuelve nil al elegir "Salir" o si la entrada se cierra.
func (m *Menu) Run(ctx context.Context) error {
	for {
		count, err := m.uc.Count(ctx)
		if err != nil {
			return fmt.Errorf("contar productos: %w", err)
		}

		m.printMenu()
		option, _, err := m.p.ReadNonNegativeInt("Seleccione una opción: ", false)
		if err != nil {
			return m.stop(err)
		}

		if option < 1 || option > len(m.items) {
			m.p.Errorln("\nOpción inválida. Intente nuevamente.")
			continue
		}
		item := m.items[option-1]
		if item.NeedsProducts && count == 0 {
			m.p.Errorln("\nDebe agregar productos para la opción seleccionada.")
			continue
		}
		if item.Exit {
			m.p.Println("\n" + m.p.style.Success("Saliendo de la aplicación. ¡Hasta luego!"))
			m.log.Info().Msg("salida solicitada por el operador")
			return nil
		}

		m.log.Debug().Int("option", option).Str("label", item.Label).Msg("opción seleccionada")
		if err := item.Action(ctx); err != nil {
			return m.stop(err)
		}
	}
}

func (m *Menu) stop(err error) error {
	if errors.Is(err, ErrInputClosed) {
		m.log.Info().Msg("entrada cerrada, saliendo")
		return nil
	}
	return err
}

func (m *Menu) printMenu() {
	rule := m.p.style.Title(strings.Repeat("=", 35))
	m.p.Println("\n" + rule)
	m.p.Println(m.p.style.Title("       MENÚ PRINCIPAL"))
	m.p.Println(rule)
	for i, item := range m.items {
		m.p.Println(m.p.style.Prompt(fmt.Sprintf("%d. ", i+1)) + item.Label)
	}
	m.p.Println(rule)
}
