package render

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stamp struct {
	r       rune
	log     *[]rune
	visible bool
}

func (s *stamp) Render(ctx RenderContext, buf *RenderBuffer) {
	*s.log = append(*s.log, s.r)
	buf.Set(0, 0, s.r, StyleDefault)
}

func (s *stamp) IsVisible() bool { return s.visible }

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(w, h)
	return screen
}

func TestOrchestratorPriorityOrder(t *testing.T) {
	screen := newScreen(t, 10, 5)
	defer screen.Fini()

	var order []rune
	o := NewRenderOrchestrator(screen)
	o.Register(&stamp{r: 'u', log: &order, visible: true}, PriorityUI)
	o.Register(&stamp{r: 'b', log: &order, visible: true}, PriorityBackground)
	o.Register(&stamp{r: 'e', log: &order, visible: true}, PriorityEntities)
	o.Register(&stamp{r: 'f', log: &order, visible: true}, PriorityEntities)
	o.Register(&stamp{r: 'h', log: &order, visible: false}, PriorityDebug)

	o.RenderFrame(RenderContext{})

	assert.Equal(t, []rune{'b', 'e', 'f', 'u'}, order)

	mainc, _, _, _ := screen.GetContent(0, 0)
	assert.Equal(t, 'u', mainc, "last renderer wins the cell")
}

func TestBufferClipsAndClears(t *testing.T) {
	b := NewRenderBuffer(4, 2)
	b.Set(-1, 0, 'x', StyleDefault)
	b.Set(4, 0, 'x', StyleDefault)
	b.SetString(2, 1, "abc", StyleDefault)

	assert.Equal(t, 'a', b.Get(2, 1).Rune)
	assert.Equal(t, 'b', b.Get(3, 1).Rune)
	assert.Equal(t, ' ', b.Get(9, 9).Rune)

	b.Clear()
	assert.Equal(t, ' ', b.Get(2, 1).Rune)

	b.Resize(0, 0)
	b.Clear()
	w, h := b.Size()
	assert.Equal(t, 0, w*h)
}
