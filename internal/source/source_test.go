package source

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fredrander/chessviewerscreensaver/internal/errors"
)

const twoGames = `[Event "One"]
[White "A"]
[Black "B"]

1. e4 e5 1-0

[Event "Two"]
[White "C"]
[Black "D"]

1. d4 d5 *
`

func readN(t *testing.T, src Source, n int) string {
	t.Helper()
	var sb strings.Builder
	for i := 0; i < n; i++ {
		c, err := src.ReadByte()
		require.NoError(t, err)
		sb.WriteByte(c)
	}
	return sb.String()
}

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestBuiltin_Cycles(t *testing.T) {
	b := NewBuiltin()
	n := len(BuiltinPGN)

	first := readN(t, b, n)
	assert.Equal(t, BuiltinPGN, first)
	assert.Equal(t, int64(0), b.Offset(), "offset wraps after the last byte")

	again := readN(t, b, 10)
	assert.Equal(t, BuiltinPGN[:10], again)
}

func TestBuiltin_Seek(t *testing.T) {
	b := NewBuiltin()
	require.NoError(t, b.Seek(1))
	c, err := b.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte('E'), c)

	require.NoError(t, b.Seek(b.Size()+100))
	assert.Equal(t, int64(0), b.Offset())
	assert.Equal(t, BuiltinName, b.Name())
	assert.True(t, strings.HasSuffix(BuiltinPGN, "44. Qa7 1-0\n"))
}

func TestStreamSource_WrapsAtEnd(t *testing.T) {
	src := NewMemorySource("mem", []byte("abc"))

	assert.Equal(t, "abcabca", readN(t, src, 7))
	assert.Equal(t, int64(1), src.Offset())
}

func TestStreamSource_OffsetAcrossBlocks(t *testing.T) {
	data := bytes.Repeat([]byte("0123456789"), ReadBufferSize/5)
	src := NewMemorySource("mem", data)

	readN(t, src, ReadBufferSize+17)
	assert.Equal(t, int64(ReadBufferSize+17), src.Offset())

	require.NoError(t, src.Seek(12345))
	assert.Equal(t, int64(12345), src.Offset())
	c, err := src.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, data[12345], c)
	assert.Equal(t, int64(12346), src.Offset())
}

func TestStreamSource_SeekClamps(t *testing.T) {
	src := NewMemorySource("mem", []byte("xyz"))
	require.NoError(t, src.Seek(-5))
	assert.Equal(t, int64(0), src.Offset())

	require.NoError(t, src.Seek(99))
	c, err := src.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte('x'), c, "reading at the end wraps to the start")
}

func TestStreamSource_Empty(t *testing.T) {
	src := NewMemorySource("empty", nil)
	_, err := src.ReadByte()
	assert.ErrorIs(t, err, io.EOF)
}

func TestOpenFile(t *testing.T) {
	path := writeTemp(t, "games.pgn", []byte(twoGames))

	src, err := Open(path)
	require.NoError(t, err)
	defer src.Close()

	assert.Equal(t, int64(len(twoGames)), src.Size())
	assert.Equal(t, path, src.Name())
	assert.Equal(t, twoGames, readN(t, src, len(twoGames)))
}

func TestOpen_Missing(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.pgn"))
	assert.ErrorIs(t, err, errors.ErrSourceUnavailable)

	_, err = Open(t.TempDir())
	assert.ErrorIs(t, err, errors.ErrSourceUnavailable)
}

func TestOpen_Zstd(t *testing.T) {
	var buf bytes.Buffer
	enc, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	_, err = enc.Write([]byte(twoGames))
	require.NoError(t, err)
	require.NoError(t, enc.Close())

	path := writeTemp(t, "games.pgn.zst", buf.Bytes())
	src, err := Open(path)
	require.NoError(t, err)
	defer src.Close()

	assert.Equal(t, int64(len(twoGames)), src.Size())
	assert.Equal(t, twoGames, readN(t, src, len(twoGames)))
}

func TestOpen_Bzip2(t *testing.T) {
	var buf bytes.Buffer
	w, err := bzip2.NewWriter(&buf, nil)
	require.NoError(t, err)
	_, err = w.Write([]byte(twoGames))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	path := writeTemp(t, "games.PGN.BZ2", buf.Bytes())
	src, err := Open(path)
	require.NoError(t, err)
	defer src.Close()

	assert.Equal(t, twoGames, readN(t, src, len(twoGames)))
}

func TestOpen_CorruptZstd(t *testing.T) {
	path := writeTemp(t, "bad.zst", []byte("not zstd at all"))
	_, err := Open(path)
	assert.ErrorIs(t, err, errors.ErrSourceUnavailable)
}

func TestOpenOrBuiltin(t *testing.T) {
	var log bytes.Buffer

	src := OpenOrBuiltin("", &log)
	assert.Equal(t, BuiltinName, src.Name())
	assert.Empty(t, log.String())

	src = OpenOrBuiltin(filepath.Join(t.TempDir(), "nope.pgn"), &log)
	assert.Equal(t, BuiltinName, src.Name())
	assert.Contains(t, log.String(), "using built-in game")

	log.Reset()
	path := writeTemp(t, "games.pgn", []byte(twoGames))
	src = OpenOrBuiltin(path, &log)
	defer src.Close()
	assert.Equal(t, path, src.Name())
	assert.Contains(t, log.String(), "Reading games from")
}

func TestHumanSize(t *testing.T) {
	assert.Equal(t, "1.00KB", HumanSize(1024))
	assert.Equal(t, "1.50MB", HumanSize(3*512*1024))
}
