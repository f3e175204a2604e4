package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderLink(t *testing.T) {
	link := OrderLink("542346698477", "Yerba Mate")
	assert.Equal(t, "https://wa.me/542346698477?text=Hola%21%20Me%20interesa%20Yerba%20Mate", link)
}

func TestOrderLinkEncodesSpacesAsPercent20(t *testing.T) {
	link := OrderLink("542346698477", "Agua Mineral 500ml")
	assert.NotContains(t, link, "+")
	assert.Contains(t, link, "Agua%20Mineral%20500ml")
}

func TestOrderLinkSameProductSameLink(t *testing.T) {
	// Grid card and modal button build their links through the same call.
	assert.Equal(t,
		OrderLink("542346698477", "Gaseosa Cola"),
		OrderLink("542346698477", "Gaseosa Cola"))
}
