package console

import (
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/inventario-console/internal/domain/entity"
)

// DefaultLocale locale de la consola si no se configura otro.
const DefaultLocale = "es-CO"

// Formatter formatea números y fechas para el locale configurado.
type Formatter struct {
	tag      language.Tag
	printer  *message.Printer
	dateTime string
	date     string
}

// NewFormatter construye el formatter. Un locale inválido cae en es-CO.
func NewFormatter(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse(DefaultLocale)
	}
	f := &Formatter{
		tag:      tag,
		printer:  message.NewPrinter(tag),
		dateTime: "02/01/2006, 15:04:05",
		date:     "02/01/2006",
	}
	if base, _ := tag.Base(); base.String() == "en" {
		f.dateTime = "1/2/2006, 3:04:05 PM"
		f.date = "1/2/2006"
	}
	return f
}

// Locale etiqueta BCP 47 efectiva.
func (f *Formatter) Locale() string { return f.tag.String() }

// Int cantidad con separadores del locale.
func (f *Formatter) Int(n int) string {
	return f.printer.Sprintf("%d", n)
}

// ID identificador numérico, sin separadores.
func (f *Formatter) ID(id int64) string {
	return strconv.FormatInt(id, 10)
}

// DateTime fecha y hora; "-" si no hay valor.
func (f *Formatter) DateTime(t entity.LocalDateTime) string {
	if t.IsZero() {
		return emptyCell
	}
	return t.Time.Format(f.dateTime)
}

// Date solo la fecha; "-" si no hay valor.
func (f *Formatter) Date(t entity.LocalDateTime) string {
	if t.IsZero() {
		return emptyCell
	}
	return t.Time.Format(f.date)
}

// Timestamp formatea un time.Time (pie de reportes).
func (f *Formatter) Timestamp(t time.Time) string {
	return t.Format(f.dateTime)
}
