// Package code renders the links of a slide as terminal QR codes.
package code

import (
	"bytes"
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/maaslalani/pitchdeck/styles"
	"github.com/mdp/qrterminal/v3"
)

// ErrNoLinks is returned when there is nothing to encode.
var ErrNoLinks = errors.New("no links to render")

// QR renders url as a half-block QR code.
func QR(url string) string {
	var buff bytes.Buffer

	config := qrterminal.Config{
		Level:          qrterminal.L,
		Writer:         &buff,
		HalfBlocks:     true,
		BlackChar:      qrterminal.BLACK_BLACK,
		WhiteBlackChar: qrterminal.WHITE_BLACK,
		WhiteChar:      qrterminal.WHITE_WHITE,
		BlackWhiteChar: qrterminal.BLACK_WHITE,
		QuietZone:      1,
	}
	qrterminal.GenerateWithConfig(strings.TrimSpace(url), config)
	return buff.String()
}

// RenderQR lays out one QR code per url side by side, each captioned with
// its url.
func RenderQR(urls []string) (string, error) {
	var codes []string
	for _, url := range urls {
		url = strings.TrimSpace(url)
		if url == "" {
			continue
		}
		codes = append(codes, lipgloss.
			NewStyle().
			PaddingRight(8).
			Render(
				lipgloss.JoinVertical(
					lipgloss.Left,
					QR(url),
					styles.Link.Render(url),
				),
			))
	}
	if len(codes) == 0 {
		return "", ErrNoLinks
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, codes...), nil
}
