package cli

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("hello world\n"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
	assert.Equal(t, "Name?\n> ", out.String())
}

func TestGetSimpleTextEOF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetSimpleText(rdr("lastline"), "Name?", &out)
	require.NoError(t, err)
	assert.Equal(t, "lastline", got)

	_, err = GetSimpleText(rdr(""), "Name?", &out)
	require.Error(t, err)
}

func TestGetTextWithDefault(t *testing.T) {
	var out bytes.Buffer
	got, err := GetTextWithDefault(rdr("\n"), "Enter email", "a@b.com", &out)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", got)
	assert.Contains(t, out.String(), "Enter email [a@b.com]")

	got, err = GetTextWithDefault(rdr("c@d.com\n"), "Enter email", "a@b.com", &out)
	require.NoError(t, err)
	assert.Equal(t, "c@d.com", got)

	out.Reset()
	_, err = GetTextWithDefault(rdr("x\n"), "Enter email", "", &out)
	require.NoError(t, err)
	assert.Equal(t, "Enter email\n> ", out.String())
}

func TestGetMultiline_DoubleEnter(t *testing.T) {
	var out bytes.Buffer
	got, err := GetMultiline(rdr("a\nb\n\n\n"), "Enter text", &out)
	require.NoError(t, err)
	assert.Equal(t, "a\nb", got)
}

func TestGetMultiline_EOFAndCRLF(t *testing.T) {
	var out bytes.Buffer
	got, err := GetMultiline(rdr("a\r\nb"), "Enter text", &out)
	require.NoError(t, err)
	assert.Equal(t, "a\nb", got)
}

func stubTerminal(t *testing.T, tty bool, pw []byte, err error) {
	t.Helper()
	origTTY, origRead := isTerminal, readPassword
	isTerminal = func(int) bool { return tty }
	readPassword = func(int) ([]byte, error) { return pw, err }
	t.Cleanup(func() {
		isTerminal = origTTY
		readPassword = origRead
	})
}

func TestGetPassword_Terminal(t *testing.T) {
	stubTerminal(t, true, []byte("s3cret"), nil)

	var out bytes.Buffer
	pw, err := GetPassword(rdr("ignored\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, "s3cret", string(pw))
	assert.Equal(t, "Enter password: \n", out.String())
}

func TestGetPassword_Error(t *testing.T) {
	stubTerminal(t, true, nil, errors.New("boom"))

	var out bytes.Buffer
	_, err := GetPassword(rdr(""), &out)
	require.Error(t, err)
}

func TestGetPassword_PipedInput(t *testing.T) {
	stubTerminal(t, false, nil, errors.New("must not be called"))

	var out bytes.Buffer
	pw, err := GetPassword(rdr("piped\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, "piped", string(pw))
}

func TestGetPassword_PipedKeepsSpaces(t *testing.T) {
	stubTerminal(t, false, nil, errors.New("must not be called"))

	tests := []struct {
		in   string
		want string
	}{
		{" pa ss \n", " pa ss "},
		{"   \r\n", "   "},
		{"\ttab\r\n", "\ttab"},
		{"no-newline ", "no-newline "},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			pw, err := GetPassword(rdr(tt.in), io.Discard)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(pw))
		})
	}
}

func TestGetPassword_PipedEOF(t *testing.T) {
	stubTerminal(t, false, nil, errors.New("must not be called"))

	_, err := GetPassword(rdr(""), io.Discard)
	require.ErrorIs(t, err, io.EOF)
}
