package isbn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string {
	return &s
}

func TestBookURL(t *testing.T) {
	url, err := BookURL("", ptr("978-1720890713"))
	require.NoError(t, err)
	assert.Equal(t, "https://amzn.com/1720890714", url)

	url, err = BookURL("", ptr("0-8436-1072-7"))
	require.NoError(t, err)
	assert.Equal(t, "https://amzn.com/0843610727", url)

	url, err = BookURL("short", ptr("316148410X"))
	require.NoError(t, err)
	assert.Equal(t, "https://amzn.com/316148410X", url)

	url, err = BookURL("https://books.example.com/isbn/", ptr("978-3-16-148410-0"))
	require.NoError(t, err)
	assert.Equal(t, "https://books.example.com/isbn/316148410X", url)
}

func TestBookURLErrors(t *testing.T) {
	_, err := BookURL("", ptr(""))
	assert.EqualError(t, err, "ISBN is empty")

	_, err = BookURL("", nil)
	assert.EqualError(t, err, "ISBN is null")

	_, err = BookURL("", ptr("not-an-isbn"))
	assert.EqualError(t, err, "ISBN is not valid")

	_, err = BookURL("", ptr("KAKMONSTREN ATTACKERAR!"))
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = BookURL("https://books.example.com/isbn/", ptr(" "))
	assert.ErrorIs(t, err, ErrInvalid)
}
