package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrettyJson(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{name: "mapa", in: map[string]int{"a": 1}, want: "{\n\t\"a\": 1\n}"},
		{name: "bytes", in: []byte(`{"b":[1,2]}`), want: "{\n\t\"b\": [\n\t\t1,\n\t\t2\n\t]\n}"},
		{name: "bytes inválidos", in: []byte("não é json"), want: "não é json"},
		{name: "não serializável", in: make(chan int), want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PrettyJson(tt.in))
		})
	}
}
