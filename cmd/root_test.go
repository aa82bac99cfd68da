package cmd

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anas-shakeel/bmpfilter/internal/bmp"
)

var errBroken = errors.New("broken")

// countingReader records how often it was read from.
type countingReader struct {
	r     io.Reader
	reads int
}

func (c *countingReader) Read(p []byte) (int, error) {
	c.reads++
	return c.r.Read(p)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errBroken }

type unseekableReader struct{ io.Reader }

func (unseekableReader) Seek(int64, int) (int64, error) { return 0, errBroken }

type hugeReader struct{ io.Reader }

func (hugeReader) Seek(_ int64, whence int) (int64, error) {
	if whence == io.SeekEnd {
		return 1 << 40, nil
	}
	return 0, nil
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errBroken }

// twoPixelBitmap returns a 2x1 bitmap holding pixels (10,20,30) and (40,50,60).
func twoPixelBitmap(t *testing.T) []byte {
	t.Helper()
	buf, err := bmp.NewBuffer(2, 1)
	require.NoError(t, err)
	copy(buf[54:], []byte{10, 20, 30, 40, 50, 60})
	return buf
}

func execute(t *testing.T, in io.Reader, out io.Writer, args ...string) (int, string) {
	t.Helper()

	// A nil slice would make cobra fall back to os.Args.
	if args == nil {
		args = []string{}
	}

	var stderr bytes.Buffer
	command := NewRootCommand()
	command.SetArgs(args)
	command.SetIn(in)
	command.SetOut(out)
	command.SetErr(&stderr)

	err := command.Execute()
	if err == nil {
		return int(ExitCodeSuccess), stderr.String()
	}

	exitCodeError := &ExitCodeError{}
	require.ErrorAs(t, err, &exitCodeError)
	return exitCodeError.ExitCode(), stderr.String()
}

func TestFilterModes(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []byte
	}{
		{"no arguments", nil, []byte{0, 0, 0, 0, 0, 0}},
		{"grayscale", []string{"-g"}, []byte{20, 20, 20, 50, 50, 50}},
		{"long grayscale", []string{"--grayscale"}, []byte{20, 20, 20, 50, 50, 50}},
		{"other argument", []string{"gray"}, []byte{0, 0, 0, 0, 0, 0}},
		{"lone unknown flag", []string{"-x"}, []byte{0, 0, 0, 0, 0, 0}},
		{"lone combined flags", []string{"-gg"}, []byte{0, 0, 0, 0, 0, 0}},
		{"log level does not count", []string{"--log-level=info", "-g"}, []byte{20, 20, 20, 50, 50, 50}},
		{"debug logging", []string{"-g", "--log-level", "debug"}, []byte{20, 20, 20, 50, 50, 50}},
	}

	for i := range tests {
		t.Run(tests[i].name, func(t *testing.T) {
			input := twoPixelBitmap(t)
			var out bytes.Buffer

			code, _ := execute(t, bytes.NewReader(input), &out, tests[i].args...)
			require.Equal(t, int(ExitCodeSuccess), code)

			got := out.Bytes()
			require.Len(t, got, len(input))
			assert.Equal(t, input[:54], got[:54])
			assert.Equal(t, tests[i].want, got[54:60])
			assert.Equal(t, input[60:], got[60:])
		})
	}
}

func TestDebugLogging(t *testing.T) {
	var out bytes.Buffer
	code, stderr := execute(t, bytes.NewReader(twoPixelBitmap(t)), &out, "--log-level=debug")
	require.Equal(t, int(ExitCodeSuccess), code)

	assert.Contains(t, stderr, "fileSizeInBytes=62")
	assert.Contains(t, stderr, "offsetFirstBytePixelArray=54")
	assert.Contains(t, stderr, "padding=2")
	assert.Contains(t, stderr, "mode=threshold")
	assert.Contains(t, stderr, "pixels=2")
}

func TestTooManyArguments(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"two arguments", []string{"a", "b"}},
		{"grayscale and argument", []string{"-g", "a"}},
		{"grayscale twice", []string{"-g", "-g"}},
		{"two unknown flags", []string{"-x", "-y"}},
		{"grayscale and unknown flag", []string{"-g", "-x"}},
		{"unknown flag and argument", []string{"-x", "a"}},
		{"two arguments with log level", []string{"--log-level", "debug", "a", "b"}},
		{"dangling log level", []string{"-g", "--log-level"}},
	}

	for i := range tests {
		t.Run(tests[i].name, func(t *testing.T) {
			in := &countingReader{r: bytes.NewReader(twoPixelBitmap(t))}
			var out bytes.Buffer

			code, stderr := execute(t, in, &out, tests[i].args...)
			assert.Equal(t, int(ExitCodeArguments), code)
			assert.Contains(t, stderr, "Usage: bmpfilter [-g]")
			assert.Zero(t, in.reads)
			assert.Zero(t, out.Len())
		})
	}
}

func TestExitCodes(t *testing.T) {
	truncated := twoPixelBitmap(t)[:58]

	negativeWidth := twoPixelBitmap(t)
	binary.LittleEndian.PutUint32(negativeWidth[18:], 0xffffffff)

	negativeHeight := twoPixelBitmap(t)
	binary.LittleEndian.PutUint32(negativeHeight[22:], 0xffffffff)

	tests := []struct {
		name string
		in   io.Reader
		out  io.Writer
		args []string
		want ExitCode
	}{
		{"seek failure", unseekableReader{bytes.NewReader(twoPixelBitmap(t))}, &bytes.Buffer{}, nil, ExitCodeSeek},
		{"read failure", failingReader{}, &bytes.Buffer{}, nil, ExitCodeRead},
		{"empty input", bytes.NewReader(nil), &bytes.Buffer{}, nil, ExitCodeRead},
		{"allocation failure", hugeReader{bytes.NewReader(nil)}, &bytes.Buffer{}, nil, ExitCodeAlloc},
		{"write failure", bytes.NewReader(twoPixelBitmap(t)), failingWriter{}, nil, ExitCodeWrite},
		{"short header", bytes.NewReader(make([]byte, 20)), &bytes.Buffer{}, nil, ExitCodeBounds},
		{"truncated pixel array", bytes.NewReader(truncated), &bytes.Buffer{}, nil, ExitCodeBounds},
		{"negative width", bytes.NewReader(negativeWidth), &bytes.Buffer{}, []string{"-g"}, ExitCodeBounds},
		{"negative height", bytes.NewReader(negativeHeight), &bytes.Buffer{}, []string{"-g"}, ExitCodeBounds},
		{"invalid log level", bytes.NewReader(twoPixelBitmap(t)), &bytes.Buffer{}, []string{"--log-level", "loud"}, ExitCodeArguments},
	}

	for i := range tests {
		t.Run(tests[i].name, func(t *testing.T) {
			code, _ := execute(t, tests[i].in, tests[i].out, tests[i].args...)
			assert.Equal(t, int(tests[i].want), code)

			if out, ok := tests[i].out.(*bytes.Buffer); ok {
				assert.Zero(t, out.Len())
			}
		})
	}
}

func TestHelp(t *testing.T) {
	for _, arg := range []string{"-h", "--help"} {
		in := &countingReader{r: bytes.NewReader(twoPixelBitmap(t))}
		var out bytes.Buffer

		code, _ := execute(t, in, &out, arg)
		assert.Equal(t, int(ExitCodeSuccess), code)
		assert.Zero(t, in.reads)
		assert.Contains(t, out.String(), "When stdin is a pipe it is read until EOF")
		assert.Contains(t, out.String(), "--log-level")
	}
}

func TestSplitArguments(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		wantSettings []string
		wantCounted  []string
	}{
		{"empty", []string{}, nil, nil},
		{"flag and value", []string{"--log-level", "debug", "-g"}, []string{"--log-level", "debug"}, []string{"-g"}},
		{"joined value", []string{"a", "--log-level=warn"}, []string{"--log-level=warn"}, []string{"a"}},
		{"missing value", []string{"--log-level"}, nil, []string{"--log-level"}},
		{"unknown flags", []string{"-x", "-y"}, nil, []string{"-x", "-y"}},
	}

	for i := range tests {
		t.Run(tests[i].name, func(t *testing.T) {
			settings, counted := splitArguments(tests[i].args)
			assert.Equal(t, tests[i].wantSettings, settings)
			assert.Equal(t, tests[i].wantCounted, counted)
		})
	}
}

func TestClassifyKeepsExitCodeError(t *testing.T) {
	err := newExitCodeError(errBroken, ExitCodeWrite)
	assert.Same(t, err, classify(err, ExitCodeRead))
	assert.NoError(t, classify(nil, ExitCodeRead))

	exitCodeError := &ExitCodeError{}
	require.ErrorAs(t, classify(errBroken, ExitCodeRead), &exitCodeError)
	assert.Equal(t, int(ExitCodeRead), exitCodeError.ExitCode())
	assert.ErrorIs(t, exitCodeError, errBroken)
}
