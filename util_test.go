package main

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"io/ioutil"
	"strconv"
	"testing"
)

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := ioutil.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

type vector struct {
	sum []byte
	msg string
}

// readVectorFile reads lines of the form
//
//	<hex digest> <quoted message>
func readVectorFile(t *testing.T, path string) []vector {
	t.Helper()
	var vs []vector
	s := bufio.NewScanner(bytes.NewReader(readFile(t, path)))
	for line := 1; s.Scan(); line++ {
		text := s.Text()
		if text == "" {
			continue
		}
		i := bytes.IndexByte(s.Bytes(), ' ')
		if i < 0 {
			t.Fatalf("%s:%d: missing message", path, line)
		}
		sum, err := hex.DecodeString(text[:i])
		if err != nil {
			t.Fatalf("%s:%d: decoding hex: %v", path, line, err)
		}
		msg, err := strconv.Unquote(text[i+1:])
		if err != nil {
			t.Fatalf("%s:%d: unquoting message: %v", path, line, err)
		}
		vs = append(vs, vector{sum: sum, msg: msg})
	}
	if err := s.Err(); err != nil {
		t.Fatal(err)
	}
	return vs
}
