package main

import (
	"bytes"
	"testing"

	"github.com/iziplay/isbn-api/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func run(t *testing.T, cfg *config.Config, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp(&out, cfg)
	app.ExitErrHandler = func(*cli.Context, error) {}
	err := app.Run(append([]string{"isbn"}, args...))
	return out.String(), err
}

func TestValidateCommand(t *testing.T) {
	out, err := run(t, &config.Config{}, "validate", "978-3-16-148410-0", "316148410X")
	require.NoError(t, err)
	assert.Equal(t, "978-3-16-148410-0: valid isbn13\n316148410X: valid isbn10\n", out)

	out, err = run(t, &config.Config{}, "check", "3878313798")
	assert.Error(t, err)
	assert.Contains(t, out, "3878313798: ISBN is not valid: check digit mismatch")
}

func TestValidateCommandInt(t *testing.T) {
	out, err := run(t, &config.Config{}, "validate", "--int", "586185038", "9780586185032")
	require.NoError(t, err)
	assert.Equal(t, "586185038: valid isbn10\n9780586185032: valid isbn13\n", out)

	out, err = run(t, &config.Config{}, "validate", "--int", "12ab")
	assert.Error(t, err)
	assert.Contains(t, out, "ISBN is not valid: malformed")
}

func TestConvertCommand(t *testing.T) {
	out, err := run(t, &config.Config{}, "convert", "0-5861-8503-8", "ttt")
	require.NoError(t, err)
	assert.Equal(t, "0-5861-8503-8: 9780586185032\nttt: \n", out)

	out, err = run(t, &config.Config{}, "convert", "--int", "9780586185032")
	require.NoError(t, err)
	assert.Equal(t, "9780586185032: 0586185038\n", out)
}

func TestNormalizeCommand(t *testing.T) {
	out, err := run(t, &config.Config{}, "normalize", "15 8488 5408")
	require.NoError(t, err)
	assert.Equal(t, "1584885408\n", out)

	_, err = run(t, &config.Config{}, "normalize")
	assert.EqualError(t, err, "ISBN is null")

	_, err = run(t, &config.Config{}, "normalize", "")
	assert.EqualError(t, err, "ISBN is empty")
}

func TestURLCommand(t *testing.T) {
	out, err := run(t, &config.Config{}, "url", "978-1720890713")
	require.NoError(t, err)
	assert.Equal(t, "https://amzn.com/1720890714\n", out)

	out, err = run(t, &config.Config{BookBaseURL: "https://books.example.com/isbn/"}, "url", "0-8436-1072-7")
	require.NoError(t, err)
	assert.Equal(t, "https://books.example.com/isbn/0843610727\n", out)

	out, err = run(t, &config.Config{}, "url", "--base", "https://shop.example.org/b/", "316148410X")
	require.NoError(t, err)
	assert.Equal(t, "https://shop.example.org/b/316148410X\n", out)

	_, err = run(t, &config.Config{}, "url", "not-an-isbn")
	assert.EqualError(t, err, "ISBN is not valid")
}
