package console

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-console/internal/domain"
)

func TestNavigate_SeccionDesconocida(t *testing.T) {
	gw := &fakeGateway{}
	c, _ := newTestConsole(gw)

	err := c.Router.Navigate(context.Background(), "reportes")
	assert.ErrorIs(t, err, domain.ErrValidationFailed)
	assert.ErrorIs(t, err, domain.ErrUnknownSection)
	assert.Equal(t, SectionDashboard, c.Router.Current())
	assert.Empty(t, gw.Calls())
}

func TestNavigate_CargaPorSeccion(t *testing.T) {
	cases := []struct {
		section string
		calls   []string
	}{
		{"productos", []string{"ListProducts"}},
		{"stock", nil},
		{"movimientos", nil},
		{"alertas", []string{"ListAlerts"}},
		{"dashboard", []string{"ListProducts", "ListAlerts"}},
	}
	for _, tc := range cases {
		t.Run(tc.section, func(t *testing.T) {
			gw := &fakeGateway{}
			c, _ := newTestConsole(gw)

			require.NoError(t, c.Router.Navigate(context.Background(), tc.section))
			assert.Equal(t, Section(tc.section), c.Router.Current())
			assert.Equal(t, tc.calls, gw.Calls())
		})
	}
}
