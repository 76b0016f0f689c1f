package main

import (
	"fmt"
	"image"
	"image/color"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidImage(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, c)
		}
	}

	return img
}

func TestModel_View_RendersNonEmptyFrame(t *testing.T) {
	t.Parallel()

	m := newModel(solidImage(64, 64, color.RGBA{R: 200, A: 255}), 20, 10, "test.map", nil)

	m.View()
	assert.NotEmpty(t, m.buf.String())
	assert.Contains(t, m.buf.String(), "test.map")
}

func TestModel_Update_WindowResizeRebuildsViewport(t *testing.T) {
	t.Parallel()

	m := newModel(solidImage(16, 16, color.Black), 10, 5, "x", nil)
	before := m.viewport

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	resized, ok := updated.(*model)
	require.True(t, ok)
	assert.Equal(t, 40, resized.cols)
	assert.Equal(t, 20, resized.rows)
	assert.NotSame(t, before, resized.viewport)
}

func TestModel_Init_NilSubscriptionReturnsNoCmd(t *testing.T) {
	t.Parallel()

	m := newModel(solidImage(4, 4, color.Black), 10, 5, "x", nil)

	assert.Nil(t, m.Init())
}

func TestModel_Update_LogLineAppendsAndTrims(t *testing.T) {
	t.Parallel()

	m := newModel(solidImage(4, 4, color.Black), 10, 5, "x", nil)

	for i := range maxLogLines + 2 {
		updated, cmd := m.Update(logLineMsg{line: fmt.Sprintf("line %d", i), ok: true})
		m = updated.(*model)
		assert.NotNil(t, cmd)
	}

	assert.Len(t, m.logPane, maxLogLines)
}

func TestModel_Update_LogLineClosedStopsReading(t *testing.T) {
	t.Parallel()

	m := newModel(solidImage(4, 4, color.Black), 10, 5, "x", nil)

	_, cmd := m.Update(logLineMsg{ok: false})
	assert.Nil(t, cmd)
	assert.Empty(t, m.logPane)
}

func TestRenderFrame_WritesOneLinePerRow(t *testing.T) {
	t.Parallel()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))

	var buf strings.Builder
	renderFrame(img, 4, 2, &buf)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 2)
}
