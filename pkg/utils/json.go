package utils

import (
	"bytes"
	stdjson "encoding/json"

	"github.com/sirupsen/logrus"
)

// PrettyJson indenta o JSON para logs de depuração; aceita []byte ou qualquer valor serializável
func PrettyJson(in any) string {
	buffer, ok := in.([]byte)
	if !ok {
		var err error
		buffer, err = json.Marshal(in)
		if err != nil {
			logrus.WithError(err).Debug("PrettyJson: valor não serializável")
			return ""
		}
	}

	// jsoniter não expõe Indent
	var out bytes.Buffer
	if err := stdjson.Indent(&out, buffer, "", "\t"); err != nil {
		return string(buffer)
	}

	return out.String()
}
