package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commercial-publisher-api/pkg/apiErrors"
	"github.com/vfg2006/commercial-publisher-api/pkg/validation"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxBodySize limita o corpo das requisições e callbacks
const maxBodySize = 1 << 20

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao codificar resposta")
	}
}

// decodeRequest lê o JSON do corpo e aplica as regras de validação; em caso de erro já responde
func decodeRequest(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(dst); err != nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", err.Error())
		return false
	}

	return validateRequest(w, dst)
}

func validateRequest(w http.ResponseWriter, req any) bool {
	fields, err := validation.Struct(req)
	if err == nil {
		return true
	}
	if fields == nil {
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Requisição inválida", err.Error())
		return false
	}

	apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Campos inválidos", fields)
	return false
}
