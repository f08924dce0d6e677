package lhset

import (
	"bytes"
	"errors"
	"testing"

	"github.com/zeebo/assert"

	"github.com/histdb/linhash"
)

type failWriter struct{}

var errWrite = errors.New("write failed")

func (failWriter) Write(p []byte) (int, error) { return 0, errWrite }

func TestDump(t *testing.T) {
	s := newSet(t, 3)
	s.InsertAll(1, 2, 3)

	var buf bytes.Buffer
	assert.NoError(t, s.Dump(&buf))
	assert.Equal(t, buf.String(), ""+
		"curr_size = 3, table_size = 1\n"+
		"d = 0, next_to_split = 0\n"+
		"N = 3\n"+
		"0: [(1)(2)(3)]\n")
	assert.Equal(t, buf.String(), s.String())
}

func TestDumpEmpty(t *testing.T) {
	var s T[linhash.Str]
	assert.Equal(t, s.String(), ""+
		"curr_size = 0, table_size = 0\n"+
		"d = 0, next_to_split = 0\n"+
		"N = 13\n")
}

func TestDumpStrings(t *testing.T) {
	s, err := New[linhash.Str](Config{BucketSize: 2})
	assert.NoError(t, err)
	s.InsertAll("a")
	assert.Equal(t, s.String(), ""+
		"curr_size = 1, table_size = 1\n"+
		"d = 0, next_to_split = 0\n"+
		"N = 2\n"+
		"0: [(a)(-)]\n")
}

func TestDumpWriteError(t *testing.T) {
	s := Of[linhash.U64](1)
	err := s.Dump(failWriter{})
	assert.Error(t, err)
	assert.That(t, errors.Is(err, errWrite))
}
